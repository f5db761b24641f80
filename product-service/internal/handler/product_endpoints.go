package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"storefront/shared/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @Summary Проверка состояния сервиса
// @Tags product
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /api/product/health [get]
func (h *ProductHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, models.NewHealthResponse(h.serviceName))
}

// @Summary Список товаров
// @Tags product
// @Produce json
// @Success 200 {array} models.Product
// @Router /api/product [get]
func (h *ProductHandler) listProducts(c *gin.Context) {
	products, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// @Summary Товар по ID
// @Tags product
// @Produce json
// @Param id path int true "ID товара"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /api/product/{id} [get]
func (h *ProductHandler) getProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}
	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Создание товара
// @Tags product
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Данные товара"
// @Success 201 {object} models.Product
// @Header 201 {string} Location "/api/product/{id}"
// @Failure 400 {object} models.ErrorResponse
// @Router /api/product [post]
func (h *ProductHandler) createProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid create product body", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	h.recordMutation(c, "create")
	c.Header("Location", fmt.Sprintf("/api/product/%d", p.ID))
	c.JSON(http.StatusCreated, p)
}

// @Summary Частичное обновление товара
// @Tags product
// @Accept json
// @Produce json
// @Param id path int true "ID товара"
// @Param request body models.UpdateProductRequest true "Изменяемые поля"
// @Success 200 {object} models.Product
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/product/{id} [put]
func (h *ProductHandler) updateProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid update product body", zap.Int("id", id), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	h.recordMutation(c, "update")
	c.JSON(http.StatusOK, p)
}

// @Summary Удаление товара
// @Tags product
// @Param id path int true "ID товара"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /api/product/{id} [delete]
func (h *ProductHandler) deleteProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	h.recordMutation(c, "delete")
	c.Status(http.StatusNoContent)
}

// parseProductID reads the :id path parameter. Anything that is not a positive
// integer cannot name a product, so it is answered with 404.
func parseProductID(c *gin.Context) (int, bool) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, models.ErrorResponse{Error: fmt.Sprintf("Product with ID %s not found", raw)})
		return 0, false
	}
	return id, true
}

func (h *ProductHandler) recordMutation(c *gin.Context, operation string) {
	productMutationsTotal.WithLabelValues(operation).Inc()
	if n, err := h.service.Count(c.Request.Context()); err == nil {
		catalogSize.Set(float64(n))
	}
}
