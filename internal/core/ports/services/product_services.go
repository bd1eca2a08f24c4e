package services

import (
	"context"

	"github.com/defterpro/defter_backend/internal/core/domain"
	"github.com/defterpro/defter_backend/internal/dto"
)

// ProductReaderSvc defines read operations for the product catalog
type ProductReaderSvc interface {
	// GetProductByID retrieves a product by ID.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves products ordered by name.
	ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error)
}

// ProductWriterSvc defines write operations for the product catalog
type ProductWriterSvc interface {
	// CreateProduct adds a new catalog entry.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)

	// UpdateProduct updates an existing catalog entry.
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error)

	// DeleteProduct removes a catalog entry permanently.
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductSvcFacade combines all product-related service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
