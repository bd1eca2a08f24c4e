package repositories

import (
	"context"

	"github.com/defterpro/defter_backend/internal/core/domain"
)

// ProductReader defines read operations for the product catalog
type ProductReader interface {
	// FindProductByID retrieves a specific product by its ID.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProducts retrieves products ordered by name.
	FindProducts(ctx context.Context, limit, offset int) ([]domain.Product, error)
}

// ProductWriter defines write operations for the product catalog
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct updates an existing product's details.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct removes a product permanently.
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
