package handler

import (
	"storefront/product-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductHandler обрабатывает HTTP запросы каталога товаров.
type ProductHandler struct {
	service     service.ProductService
	serviceName string
	logger      *zap.Logger
}

// NewProductHandler создает новый ProductHandler.
func NewProductHandler(s service.ProductService, serviceName string, logger *zap.Logger) *ProductHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductHandler{
		service:     s,
		serviceName: serviceName,
		logger:      logger.Named("ProductHandler"),
	}
}

// RegisterRoutes mounts /api/product. mutationMiddleware (rate limiting, optional
// bearer auth) is applied to POST, PUT and DELETE only.
func (h *ProductHandler) RegisterRoutes(router gin.IRouter, mutationMiddleware ...gin.HandlerFunc) {
	products := router.Group("/api/product")
	{
		products.GET("/health", h.health)
		products.GET("", h.listProducts)
		products.GET("/:id", h.getProduct)
	}

	mutations := products.Group("", mutationMiddleware...)
	{
		mutations.POST("", h.createProduct)
		mutations.PUT("/:id", h.updateProduct)
		mutations.DELETE("/:id", h.deleteProduct)
	}
}
