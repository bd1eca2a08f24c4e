package repositories

import (
	"context"
	"time"

	"github.com/defterpro/defter_backend/internal/core/domain"
)

// CashTransactionReader defines read operations for cash book entries
type CashTransactionReader interface {
	// FindCashTransactionByID retrieves a specific cash book entry by its ID.
	FindCashTransactionByID(ctx context.Context, transactionID string) (*domain.CashTransaction, error)

	// FindCashTransactions retrieves cash book entries newest first, optionally
	// filtered by type and date range.
	FindCashTransactions(ctx context.Context, txnType *domain.CashTransactionType, from, to *time.Time, limit, offset int) ([]domain.CashTransaction, error)
}

// CashTransactionWriter defines write operations for cash book entries
type CashTransactionWriter interface {
	// SaveCashTransaction persists a new cash book entry.
	SaveCashTransaction(ctx context.Context, txn domain.CashTransaction) error

	// UpdateCashTransaction updates an existing cash book entry.
	UpdateCashTransaction(ctx context.Context, txn domain.CashTransaction) error

	// DeleteCashTransaction removes a cash book entry permanently.
	DeleteCashTransaction(ctx context.Context, transactionID string) error
}

// CashTransactionRepositoryFacade combines all cash book repository interfaces
type CashTransactionRepositoryFacade interface {
	CashTransactionReader
	CashTransactionWriter
}
