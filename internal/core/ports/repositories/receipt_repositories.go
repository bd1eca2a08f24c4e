package repositories

import (
	"context"

	"github.com/defterpro/defter_backend/internal/core/domain"
)

// ReceiptReader defines read operations for sales receipts
type ReceiptReader interface {
	// FindReceiptByID retrieves a receipt with its line items.
	FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error)

	// FindReceipts retrieves receipts newest first, optionally filtered by customer.
	FindReceipts(ctx context.Context, customerID *string, limit, offset int) ([]domain.Receipt, error)

	// PeekNextReceiptNo returns the next receipt number without reserving it.
	PeekNextReceiptNo(ctx context.Context) (string, error)
}

// ReceiptWriter defines write operations for sales receipts
type ReceiptWriter interface {
	// SaveReceipt atomically assigns the next receipt number, persists the
	// receipt with its line items, and posts the matching debt entry to the
	// customer ledger. The saved receipt is returned with its assigned number.
	SaveReceipt(ctx context.Context, receipt domain.Receipt, debtDescription func(receiptNo string) string) (*domain.Receipt, error)

	// DeleteReceipt removes a receipt and its line items permanently.
	// Ledger entries posted from the receipt are left untouched.
	DeleteReceipt(ctx context.Context, receiptID string) error
}

// ReceiptRepositoryFacade combines all receipt-related repository interfaces
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptWriter
}
