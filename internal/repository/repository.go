package repository

import (
	"context"

	"estoque/internal/model"
)

// ProductRepository defines the interface for product data access operations.
// Lookups that match no row return a nil product and a nil error.
type ProductRepository interface {
	// List retrieves every product, newest id first.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create inserts the supplied fields and returns the stored row.
	// Omitted columns take their storage defaults.
	Create(ctx context.Context, input model.ProductInput) (*model.Product, error)

	// Update changes only the supplied fields, refreshes updated_at and
	// returns the stored row.
	Update(ctx context.Context, id int64, input model.ProductInput) (*model.Product, error)

	// Delete removes the product and returns its last known state.
	Delete(ctx context.Context, id int64) (*model.Product, error)
}
