package handler

import (
	"errors"
	"io"
	"net/http"

	"storefront/shared/middleware"
	"storefront/shared/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @Summary Проверка состояния сервиса
// @Tags auth
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /auth/health [get]
func (h *AuthHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, models.NewHealthResponse(h.cfg.ServiceName))
}

// @Summary Выдача токена
// @Description Выпускает подписанный JWT для указанного имени пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.TokenRequest true "Имя пользователя"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} models.ErrorResponse "Имя пользователя не указано"
// @Failure 429 {object} models.ErrorResponse "Слишком много запросов"
// @Router /auth/token [post]
func (h *AuthHandler) generateToken(c *gin.Context) {
	var req models.TokenRequest
	// Пустое тело трактуем как отсутствующий username
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Debug("Invalid token request body", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.authService.GenerateToken(c.Request.Context(), req.Username)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	tokensIssuedTotal.Inc()
	c.JSON(http.StatusOK, resp)
}

// @Summary Проверка токена
// @Description Возвращает данные пользователя из предъявленного токена
// @Tags auth
// @Produce json
// @Success 200 {object} models.ValidationResponse
// @Failure 401 {object} models.ErrorResponse "Токен отсутствует, истёк или невалиден"
// @Security BearerAuth
// @Router /auth/validate [get]
func (h *AuthHandler) validateToken(c *gin.Context) {
	claims, ok := middleware.ClaimsFromGin(c)
	if !ok {
		// Сюда можно попасть только если маршрут зарегистрирован без AuthMiddleware
		h.logger.Error("Claims missing in context on /auth/validate")
		handleServiceError(c, models.ErrUnauthorized)
		return
	}

	c.JSON(http.StatusOK, models.ValidationResponse{
		Valid:         true,
		Username:      claims.Name,
		UserID:        claims.NameID,
		Authenticated: true,
	})
}
