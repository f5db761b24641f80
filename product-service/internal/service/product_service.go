package service

import (
	"context"
	"errors"
	"fmt"

	"storefront/shared/interfaces"
	"storefront/shared/models"

	"go.uber.org/zap"
)

const priceValidationMessage = "Price must be greater than 0"

// ProductService defines the catalog operations exposed over HTTP.
type ProductService interface {
	ListAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	Create(ctx context.Context, req models.CreateProductRequest) (*models.Product, error)
	Update(ctx context.Context, id int, req models.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

var _ ProductService = (*productServiceImpl)(nil)

type productServiceImpl struct {
	repo   interfaces.ProductRepository
	logger *zap.Logger
}

// NewProductService creates a new ProductService backed by repo.
func NewProductService(repo interfaces.ProductRepository, logger *zap.Logger) ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &productServiceImpl{
		repo:   repo,
		logger: logger.Named("ProductService"),
	}
}

func (s *productServiceImpl) ListAll(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *productServiceImpl) GetByID(ctx context.Context, id int) (*models.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(id, err)
	}
	return p, nil
}

// Create validates the request and stores a new product; the id is assigned by the store.
func (s *productServiceImpl) Create(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	name := req.Name
	if name == "" {
		return nil, models.NewValidationError("Product name is required")
	}
	if req.Price <= 0 {
		return nil, models.NewValidationError(priceValidationMessage)
	}

	p, err := s.repo.Create(ctx, models.Product{
		Name:    name,
		Price:   req.Price,
		InStock: req.InStock,
	})
	if err != nil {
		s.logger.Error("Failed to create product", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("Product created", zap.Int("id", p.ID), zap.String("name", p.Name))
	return p, nil
}

// Update applies only the supplied fields. An empty name is treated as not supplied.
// If the price is invalid nothing is changed.
func (s *productServiceImpl) Update(ctx context.Context, id int, req models.UpdateProductRequest) (*models.Product, error) {
	p, err := s.repo.Update(ctx, id, func(p *models.Product) error {
		if req.Name != nil {
			if *req.Name != "" {
				p.Name = *req.Name
			}
		}
		if req.Price != nil {
			if *req.Price <= 0 {
				return models.NewValidationError(priceValidationMessage)
			}
			p.Price = *req.Price
		}
		if req.InStock != nil {
			p.InStock = *req.InStock
		}
		return nil
	})
	if err != nil {
		return nil, s.mapRepoError(id, err)
	}

	s.logger.Info("Product updated", zap.Int("id", id))
	return p, nil
}

func (s *productServiceImpl) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepoError(id, err)
	}
	s.logger.Info("Product deleted", zap.Int("id", id))
	return nil
}

func (s *productServiceImpl) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *productServiceImpl) mapRepoError(id int, err error) error {
	switch {
	case errors.Is(err, models.ErrProductNotFound):
		return ProductNotFound(id)
	case errors.Is(err, models.ErrValidation):
		return err
	default:
		s.logger.Error("Product repository error", zap.Int("id", id), zap.Error(err))
		return fmt.Errorf("product repository error: %w", err)
	}
}

// ProductNotFound builds the error returned for an unknown product id.
func ProductNotFound(id int) error {
	return models.NewNotFoundError(fmt.Sprintf("Product with ID %d not found", id), models.ErrProductNotFound)
}
