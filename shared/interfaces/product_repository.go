package interfaces

import (
	"context"

	"storefront/shared/models"
)

// ProductMutator modifies a product in place. Returning an error aborts the
// update and leaves the stored product unchanged.
type ProductMutator func(p *models.Product) error

// ProductRepository defines the interface for the product catalog store.
// Implementations return copies; callers never hold references into the store.
type ProductRepository interface {
	// List returns all products in insertion order.
	List(ctx context.Context) ([]models.Product, error)

	// GetByID returns models.ErrProductNotFound if id is unknown.
	GetByID(ctx context.Context, id int) (*models.Product, error)

	// Create assigns a new unique id to p, appends it and returns the stored copy.
	Create(ctx context.Context, p models.Product) (*models.Product, error)

	// Update applies mutate atomically to the product with the given id.
	// Returns models.ErrProductNotFound if id is unknown, or the mutator's error.
	Update(ctx context.Context, id int, mutate ProductMutator) (*models.Product, error)

	// Delete removes the product. Returns models.ErrProductNotFound if id is unknown.
	Delete(ctx context.Context, id int) error

	// Count returns the number of stored products.
	Count(ctx context.Context) (int, error)
}
