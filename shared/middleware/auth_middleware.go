package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"storefront/shared/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenVerifier определяет функцию, которая проверяет строку токена и возвращает claims.
// Ошибки могут быть models.ErrTokenInvalid, models.ErrTokenExpired, models.ErrTokenMalformed и т.д.
type TokenVerifier func(ctx context.Context, tokenString string) (*models.Claims, error)

// BearerAuth создает gin middleware для проверки JWT из заголовка Authorization.
// On success the claims are stored both in gin.Context and in the request
// context.Context under models.ClaimsContextKey. Any failure aborts with 401.
func BearerAuth(verifier TokenVerifier, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		log := logger.With(zap.String("path", c.Request.URL.Path))

		tokenString, ok := BearerToken(c.GetHeader("Authorization"))
		if !ok {
			log.Warn("Authorization header missing or malformed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized: Missing or malformed bearer token"})
			return
		}

		claims, err := verifier(c.Request.Context(), tokenString)
		if err != nil {
			msg := "Unauthorized: Invalid token"
			if errors.Is(err, models.ErrTokenExpired) {
				msg = "Unauthorized: Token expired"
			}
			log.Warn("Token verification failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: msg})
			return
		}

		c.Set(models.ClaimsContextKey, claims)
		c.Request = c.Request.WithContext(models.ContextWithClaims(c.Request.Context(), claims))
		log.Debug("Request authenticated", zap.String("subject", claims.Subject))
		c.Next()
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func BearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// ClaimsFromGin returns the claims stored by BearerAuth.
func ClaimsFromGin(c *gin.Context) (*models.Claims, bool) {
	v, exists := c.Get(models.ClaimsContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*models.Claims)
	return claims, ok && claims != nil
}
