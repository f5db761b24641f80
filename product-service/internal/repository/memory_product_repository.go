package repository

import (
	"context"
	"fmt"
	"sync"

	"storefront/shared/interfaces"
	"storefront/shared/models"

	"go.uber.org/zap"
)

// Compile-time check
var _ interfaces.ProductRepository = (*MemoryProductRepository)(nil)

// MemoryProductRepository keeps the catalog in process memory.
// Reads run concurrently; writes are serialized by mu. Ids come from nextID,
// which only grows, so ids are never reused even after the newest product is deleted.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	nextID   int
	logger   *zap.Logger
}

// DefaultProducts returns the catalog a fresh process starts with.
func DefaultProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Laptop", Price: 999.99, InStock: true},
		{ID: 2, Name: "Mouse", Price: 29.99, InStock: true},
		{ID: 3, Name: "Keyboard", Price: 79.99, InStock: false},
	}
}

// NewMemoryProductRepository creates a store holding seed in the given order.
// Seed ids must be positive and unique.
func NewMemoryProductRepository(logger *zap.Logger, seed ...models.Product) (*MemoryProductRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &MemoryProductRepository{
		products: make([]models.Product, 0, len(seed)),
		nextID:   1,
		logger:   logger.Named("MemoryProductRepo"),
	}
	seen := make(map[int]struct{}, len(seed))
	for _, p := range seed {
		if p.ID <= 0 {
			return nil, fmt.Errorf("seed product %q has non-positive id %d", p.Name, p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("duplicate seed product id %d", p.ID)
		}
		seen[p.ID] = struct{}{}
		r.products = append(r.products, p)
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	r.logger.Info("Product store initialized", zap.Int("count", len(r.products)), zap.Int("nextID", r.nextID))
	return r, nil
}

func (r *MemoryProductRepository) List(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *MemoryProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: id %d", models.ErrProductNotFound, id)
	}
	p := r.products[idx]
	return &p, nil
}

func (r *MemoryProductRepository) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.products = append(r.products, p)

	r.logger.Debug("Product created", zap.Int("id", p.ID), zap.String("name", p.Name))
	return &p, nil
}

func (r *MemoryProductRepository) Update(ctx context.Context, id int, mutate interfaces.ProductMutator) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: id %d", models.ErrProductNotFound, id)
	}

	// Мутируем копию, чтобы ошибка валидации не оставила частичных изменений
	updated := r.products[idx]
	if err := mutate(&updated); err != nil {
		return nil, err
	}
	updated.ID = id
	r.products[idx] = updated

	r.logger.Debug("Product updated", zap.Int("id", id))
	return &updated, nil
}

func (r *MemoryProductRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: id %d", models.ErrProductNotFound, id)
	}
	r.products = append(r.products[:idx], r.products[idx+1:]...)

	r.logger.Debug("Product deleted", zap.Int("id", id))
	return nil
}

func (r *MemoryProductRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products), nil
}

// indexOf must be called with mu held.
func (r *MemoryProductRepository) indexOf(id int) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}
