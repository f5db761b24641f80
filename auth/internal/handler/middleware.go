package handler

import (
	"context"

	"storefront/shared/middleware"
	"storefront/shared/models"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a valid bearer token before they reach
// the handler and counts the outcome of every verification.
func (h *AuthHandler) AuthMiddleware() gin.HandlerFunc {
	return middleware.BearerAuth(h.verifyAndCount, h.logger)
}

func (h *AuthHandler) verifyAndCount(ctx context.Context, tokenString string) (*models.Claims, error) {
	claims, err := h.authService.VerifyToken(ctx, tokenString)
	if err != nil {
		tokenVerificationsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}
	tokenVerificationsTotal.WithLabelValues("success").Inc()
	return claims, nil
}
