package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/shared/middleware"
	"storefront/shared/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func stubVerifier(valid string, err error) middleware.TokenVerifier {
	return func(ctx context.Context, tokenString string) (*models.Claims, error) {
		if tokenString == valid {
			c := &models.Claims{Name: models.StringPtr("alice")}
			c.Subject = "alice"
			return c, nil
		}
		return nil, err
	}
}

func newAuthRouter(verifier middleware.TokenVerifier) *gin.Engine {
	r := gin.New()
	r.GET("/protected", middleware.BearerAuth(verifier, nil), func(c *gin.Context) {
		claims, ok := middleware.ClaimsFromGin(c)
		ctxClaims, ctxOK := models.GetClaimsFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"ginOK": ok,
			"ctxOK": ctxOK && ctxClaims == claims,
			"sub":   claims.Subject,
		})
	})
	return r
}

func TestBearerAuth(t *testing.T) {
	router := newAuthRouter(stubVerifier("good-token", models.ErrTokenInvalid))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good-token", http.StatusUnauthorized},
		{"no token", "Bearer ", http.StatusUnauthorized},
		{"invalid token", "Bearer bad-token", http.StatusUnauthorized},
		{"valid token", "Bearer good-token", http.StatusOK},
		{"case insensitive scheme", "bearer good-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				var body map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, true, body["ginOK"])
				assert.Equal(t, true, body["ctxOK"])
				assert.Equal(t, "alice", body["sub"])
				return
			}
			var errResp models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
			assert.NotEmpty(t, errResp.Error)
		})
	}
}

func TestBearerAuth_ExpiredMessage(t *testing.T) {
	router := newAuthRouter(stubVerifier("good-token", models.ErrTokenExpired))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer old-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized: Token expired"}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(middleware.RequestIDKey)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(middleware.RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))
}
