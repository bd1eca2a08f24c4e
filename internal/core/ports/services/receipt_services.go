package services

import (
	"context"

	"github.com/defterpro/defter_backend/internal/core/domain"
	"github.com/defterpro/defter_backend/internal/dto"
)

// ReceiptReaderSvc defines read operations for sales receipts
type ReceiptReaderSvc interface {
	// GetReceiptByID retrieves a receipt with its line items.
	GetReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error)

	// ListReceipts retrieves receipts per the given filters.
	ListReceipts(ctx context.Context, params dto.ListReceiptsParams) ([]domain.Receipt, error)

	// PeekNextReceiptNo returns the next receipt number without reserving it.
	PeekNextReceiptNo(ctx context.Context) (string, error)
}

// ReceiptWriterSvc defines write operations for sales receipts
type ReceiptWriterSvc interface {
	// CreateReceipt posts a sales receipt: assigns the next number, computes
	// the totals, and records the matching debt on the customer's ledger.
	CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest) (*domain.Receipt, error)

	// DeleteReceipt removes a receipt and its line items. The debt entry
	// posted at creation time stays on the customer's ledger.
	DeleteReceipt(ctx context.Context, receiptID string) error
}

// ReceiptSvcFacade combines all receipt-related service interfaces
type ReceiptSvcFacade interface {
	ReceiptReaderSvc
	ReceiptWriterSvc
}
