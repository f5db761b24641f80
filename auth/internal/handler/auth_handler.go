package handler

import (
	"storefront/auth/internal/config"
	"storefront/auth/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService service.AuthService
	cfg         *config.Config
	logger      *zap.Logger
}

func NewAuthHandler(authService service.AuthService, cfg *config.Config, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
		logger:      logger.Named("AuthHandler"),
	}
}

// RegisterRoutes mounts the /auth group. tokenLimiter guards token issuance.
func (h *AuthHandler) RegisterRoutes(router gin.IRouter, tokenLimiter gin.HandlerFunc) {
	authGroup := router.Group("/auth")
	{
		authGroup.GET("/health", h.health)
		authGroup.HEAD("/health", h.health)
		if tokenLimiter != nil {
			authGroup.POST("/token", tokenLimiter, h.generateToken)
		} else {
			authGroup.POST("/token", h.generateToken)
		}
		authGroup.GET("/validate", h.AuthMiddleware(), h.validateToken)
	}
}
