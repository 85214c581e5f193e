package service

import (
	"context"

	"estoque/internal/model"
)

// ProductService defines operations for product management.
type ProductService interface {
	// List retrieves all products, newest first.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create validates the input and stores a new product.
	Create(ctx context.Context, input model.ProductInput) (*model.Product, error)

	// Update validates the supplied fields and applies them to the product.
	Update(ctx context.Context, id int64, input model.ProductInput) (*model.Product, error)

	// Delete removes a product and returns its last known state.
	Delete(ctx context.Context, id int64) (*model.Product, error)
}
