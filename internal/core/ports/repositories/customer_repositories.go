package repositories

import (
	"context"

	"github.com/defterpro/defter_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CustomerReader defines read operations for customer accounts
type CustomerReader interface {
	// FindCustomerByID retrieves a specific customer by their ID.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// FindCustomers retrieves customers ordered by name, with their current balances.
	FindCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error)

	// GetCustomerBalance computes the current balance (debts minus payments) for a customer.
	GetCustomerBalance(ctx context.Context, customerID string) (decimal.Decimal, error)
}

// CustomerWriter defines write operations for customer accounts
type CustomerWriter interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomer updates an existing customer's details.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	// DeleteCustomer removes a customer and their ledger entries permanently.
	DeleteCustomer(ctx context.Context, customerID string) error
}

// CustomerTransactionReader defines read operations for customer ledger entries
type CustomerTransactionReader interface {
	// FindCustomerTransactionByID retrieves a specific ledger entry by its ID.
	FindCustomerTransactionByID(ctx context.Context, transactionID string) (*domain.CustomerTransaction, error)

	// FindCustomerTransactions retrieves a customer's ledger entries newest first.
	FindCustomerTransactions(ctx context.Context, customerID string, limit, offset int) ([]domain.CustomerTransaction, error)
}

// CustomerTransactionWriter defines write operations for customer ledger entries
type CustomerTransactionWriter interface {
	// SaveCustomerTransaction persists a new ledger entry.
	SaveCustomerTransaction(ctx context.Context, txn domain.CustomerTransaction) error

	// UpdateCustomerTransaction updates an existing ledger entry.
	UpdateCustomerTransaction(ctx context.Context, txn domain.CustomerTransaction) error

	// DeleteCustomerTransaction removes a ledger entry permanently.
	DeleteCustomerTransaction(ctx context.Context, transactionID string) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
	CustomerTransactionReader
	CustomerTransactionWriter
}
