package dto

import (
	"time"

	"github.com/defterpro/defter_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateReceiptItemRequest is a single sale line. UnitPrice may be omitted,
// in which case the product's catalog price is used.
type CreateReceiptItemRequest struct {
	ProductID string           `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal  `json:"quantity" binding:"required"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// CreateReceiptRequest defines the payload for posting a sales receipt.
type CreateReceiptRequest struct {
	CustomerID string                     `json:"customer_id" binding:"required"`
	Date       string                     `json:"date" binding:"required,businessdate"`
	TaxRate    decimal.Decimal            `json:"tax_rate"`
	Notes      string                     `json:"notes" binding:"max=500"`
	Items      []CreateReceiptItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ListReceiptsParams holds query parameters for the receipt listing.
type ListReceiptsParams struct {
	CustomerID string `form:"customer_id"`
	Limit      int    `form:"limit,default=100" binding:"omitempty,min=1,max=500"`
	Offset     int    `form:"offset" binding:"omitempty,min=0"`
}

// ReceiptItemResponse is the API shape of a receipt line.
type ReceiptItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductUnit string          `json:"product_unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// ReceiptResponse is the API shape of a posted receipt.
type ReceiptResponse struct {
	ID           string                `json:"id"`
	CustomerID   string                `json:"customer_id"`
	CustomerName string                `json:"customer_name"`
	ReceiptNo    string                `json:"receipt_no"`
	TotalAmount  decimal.Decimal       `json:"total_amount"`
	TaxRate      decimal.Decimal       `json:"tax_rate"`
	TaxAmount    decimal.Decimal       `json:"tax_amount"`
	GrandTotal   decimal.Decimal       `json:"grand_total"`
	Notes        string                `json:"notes"`
	Date         string                `json:"date"`
	CreatedAt    time.Time             `json:"created_at"`
	Items        []ReceiptItemResponse `json:"items"`
}

// NextReceiptNoResponse carries the next free receipt number.
type NextReceiptNoResponse struct {
	ReceiptNo string `json:"receipt_no"`
}

// ToReceiptItemResponse converts a domain receipt line to its API shape.
func ToReceiptItemResponse(it *domain.ReceiptItem) ReceiptItemResponse {
	return ReceiptItemResponse{
		ID:          it.ReceiptItemID,
		ProductID:   it.ProductID,
		ProductName: it.ProductName,
		ProductUnit: it.ProductUnit,
		Quantity:    it.Quantity,
		UnitPrice:   it.UnitPrice,
		TotalPrice:  it.TotalPrice,
	}
}

// ToReceiptResponse converts a domain receipt to its API shape.
func ToReceiptResponse(r *domain.Receipt) ReceiptResponse {
	items := make([]ReceiptItemResponse, len(r.Items))
	for i := range r.Items {
		items[i] = ToReceiptItemResponse(&r.Items[i])
	}
	return ReceiptResponse{
		ID:           r.ReceiptID,
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		ReceiptNo:    r.ReceiptNo,
		TotalAmount:  r.TotalAmount,
		TaxRate:      r.TaxRate,
		TaxAmount:    r.TaxAmount,
		GrandTotal:   r.GrandTotal,
		Notes:        r.Notes,
		Date:         r.Date.Format(domain.DateLayout),
		CreatedAt:    r.CreatedAt,
		Items:        items,
	}
}

// ToReceiptResponseSlice converts a slice of domain receipts.
func ToReceiptResponseSlice(rs []domain.Receipt) []ReceiptResponse {
	out := make([]ReceiptResponse, len(rs))
	for i := range rs {
		out[i] = ToReceiptResponse(&rs[i])
	}
	return out
}
