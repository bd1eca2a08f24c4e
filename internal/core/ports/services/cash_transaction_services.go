package services

import (
	"context"

	"github.com/defterpro/defter_backend/internal/core/domain"
	"github.com/defterpro/defter_backend/internal/dto"
)

// CashTransactionReaderSvc defines read operations for cash book entries
type CashTransactionReaderSvc interface {
	// GetCashTransactionByID retrieves a cash book entry by ID.
	GetCashTransactionByID(ctx context.Context, transactionID string) (*domain.CashTransaction, error)

	// ListCashTransactions retrieves cash book entries per the given filters.
	ListCashTransactions(ctx context.Context, params dto.ListCashTransactionsParams) ([]domain.CashTransaction, error)
}

// CashTransactionWriterSvc defines write operations for cash book entries
type CashTransactionWriterSvc interface {
	// CreateCashTransaction records a new income or expense entry.
	CreateCashTransaction(ctx context.Context, req dto.CreateCashTransactionRequest) (*domain.CashTransaction, error)

	// UpdateCashTransaction updates an existing entry.
	UpdateCashTransaction(ctx context.Context, transactionID string, req dto.UpdateCashTransactionRequest) (*domain.CashTransaction, error)

	// DeleteCashTransaction removes an entry permanently.
	DeleteCashTransaction(ctx context.Context, transactionID string) error
}

// CashTransactionSvcFacade combines all cash book service interfaces
type CashTransactionSvcFacade interface {
	CashTransactionReaderSvc
	CashTransactionWriterSvc
}
