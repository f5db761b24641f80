package mocks

import (
	"context"

	"storefront/shared/interfaces"
	"storefront/shared/models"

	"github.com/stretchr/testify/mock"
)

// Mock ProductRepository
type ProductRepository struct {
	mock.Mock
}

var _ interfaces.ProductRepository = (*ProductRepository)(nil)

func (m *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Product)
	return p, args.Error(1)
}

func (m *ProductRepository) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(*models.Product)
	return created, args.Error(1)
}

// Update runs mutate against the product passed to Return, mimicking the real store.
func (m *ProductRepository) Update(ctx context.Context, id int, mutate interfaces.ProductMutator) (*models.Product, error) {
	args := m.Called(ctx, id, mutate)
	current, _ := args.Get(0).(*models.Product)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	updated := *current
	if err := mutate(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (m *ProductRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProductRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
