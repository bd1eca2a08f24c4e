package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/defterpro/defter_backend/internal/apperrors"
	"github.com/defterpro/defter_backend/internal/core/domain"
	portsrepo "github.com/defterpro/defter_backend/internal/core/ports/repositories"
	portssvc "github.com/defterpro/defter_backend/internal/core/ports/services"
	"github.com/defterpro/defter_backend/internal/dto"
	"github.com/defterpro/defter_backend/internal/middleware"
	"github.com/google/uuid"
)

// ProductService handles the product catalog business logic.
type ProductService struct {
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &ProductService{productRepo: productRepo}
}

// Ensure ProductService implements the facade
var _ portssvc.ProductSvcFacade = (*ProductService)(nil)

func (s *ProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit price cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	product := domain.Product{
		ProductID:  uuid.NewString(),
		Name:       req.Name,
		Unit:       req.Unit,
		UnitPrice:  req.UnitPrice.Round(2),
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		logger.Error("Failed to save product", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Product created", slog.String("product_id", product.ProductID))
	return &product, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, productID)
}

func (s *ProductService) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	return s.productRepo.FindProducts(ctx, limit, offset)
}

func (s *ProductService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidation)
		}
		product.Name = *req.Name
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.UnitPrice != nil {
		if req.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: unit price cannot be negative", apperrors.ErrValidation)
		}
		product.UnitPrice = req.UnitPrice.Round(2)
	}
	product.UpdatedAt = time.Now()

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		logger.Error("Failed to update product", slog.String("error", err.Error()), slog.String("product_id", productID))
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, productID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		return err
	}
	logger.Info("Product deleted", slog.String("product_id", productID))
	return nil
}
