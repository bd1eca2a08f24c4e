package dto

import (
	"time"

	"github.com/defterpro/defter_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the payload for a new catalog entry.
type CreateProductRequest struct {
	Name      string          `json:"name" binding:"required,max=100"`
	Unit      string          `json:"unit" binding:"required,max=20"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
}

// UpdateProductRequest defines the payload for updating a catalog entry.
type UpdateProductRequest struct {
	Name      *string          `json:"name" binding:"omitempty,max=100"`
	Unit      *string          `json:"unit" binding:"omitempty,max=20"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// ProductResponse is the API shape of a catalog entry.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToProductResponse converts a domain product to its API shape.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ProductID,
		Name:      p.Name,
		Unit:      p.Unit,
		UnitPrice: p.UnitPrice,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToProductResponseSlice converts a slice of domain products.
func ToProductResponseSlice(ps []domain.Product) []ProductResponse {
	out := make([]ProductResponse, len(ps))
	for i := range ps {
		out[i] = ToProductResponse(&ps[i])
	}
	return out
}
