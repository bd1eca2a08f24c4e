package services

import (
	"context"

	"github.com/defterpro/defter_backend/internal/core/domain"
	"github.com/defterpro/defter_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// CustomerReaderSvc defines read operations for customer accounts
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves a customer by ID, with their current balance.
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves customers ordered by name, with balances.
	ListCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error)

	// GetCustomerBalance computes a customer's current balance.
	GetCustomerBalance(ctx context.Context, customerID string) (decimal.Decimal, error)

	// ListCustomerTransactions retrieves a customer's ledger entries newest first.
	ListCustomerTransactions(ctx context.Context, customerID string, limit, offset int) ([]domain.CustomerTransaction, error)
}

// CustomerWriterSvc defines write operations for customer accounts
type CustomerWriterSvc interface {
	// CreateCustomer registers a new customer.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)

	// UpdateCustomer updates an existing customer's details.
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error)

	// DeleteCustomer removes a customer together with their ledger entries.
	DeleteCustomer(ctx context.Context, customerID string) error

	// CreateCustomerTransaction posts a debt or payment entry to a customer's ledger.
	CreateCustomerTransaction(ctx context.Context, customerID string, req dto.CreateCustomerTransactionRequest) (*domain.CustomerTransaction, error)

	// UpdateCustomerTransaction updates an existing ledger entry.
	UpdateCustomerTransaction(ctx context.Context, transactionID string, req dto.UpdateCustomerTransactionRequest) (*domain.CustomerTransaction, error)

	// DeleteCustomerTransaction removes a ledger entry permanently.
	DeleteCustomerTransaction(ctx context.Context, transactionID string) error
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
