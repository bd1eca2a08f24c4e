package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/defterpro/defter_backend/internal/apperrors"
	"github.com/defterpro/defter_backend/internal/core/domain"
	portsrepo "github.com/defterpro/defter_backend/internal/core/ports/repositories"
	"github.com/defterpro/defter_backend/internal/models"
	"github.com/defterpro/defter_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxCustomerRepository struct {
	db *pgxpool.Pool
}

func newPgxCustomerRepository(db *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{db: db}
}

// Ensure PgxCustomerRepository implements the facade
var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

// balanceExpr sums debts minus payments over a customer's ledger entries.
const balanceExpr = `COALESCE(SUM(CASE WHEN ct.type = 'debt' THEN ct.amount ELSE -ct.amount END), 0)`

func scanCustomer(row pgx.Row) (*models.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
		&m.Name,
		&m.Phone,
		&m.Notes,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.Balance,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
        INSERT INTO customers (customer_id, name, phone, notes, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		m.CustomerID,
		m.Name,
		m.Phone,
		m.Notes,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `
        SELECT c.customer_id, c.name, c.phone, c.notes, c.created_at, c.updated_at, ` + balanceExpr + ` AS balance
        FROM customers c
        LEFT JOIN customer_transactions ct ON ct.customer_id = c.customer_id
        WHERE c.customer_id = $1
        GROUP BY c.customer_id;
    `
	m, err := scanCustomer(r.db.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", customerID, err)
	}
	d := mapping.ToDomainCustomer(*m)
	return &d, nil
}

func (r *PgxCustomerRepository) FindCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT c.customer_id, c.name, c.phone, c.notes, c.created_at, c.updated_at, ` + balanceExpr + ` AS balance
        FROM customers c
        LEFT JOIN customer_transactions ct ON ct.customer_id = c.customer_id
        GROUP BY c.customer_id
        ORDER BY c.name ASC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, mapping.ToDomainCustomer(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", rows.Err())
	}
	return customers, nil
}

func (r *PgxCustomerRepository) GetCustomerBalance(ctx context.Context, customerID string) (decimal.Decimal, error) {
	// Existence check first so an unknown customer is not reported as zero.
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE customer_id = $1);`, customerID).Scan(&exists); err != nil {
		return decimal.Zero, fmt.Errorf("failed to check customer existence: %w", err)
	}
	if !exists {
		return decimal.Zero, apperrors.ErrNotFound
	}

	query := `
        SELECT ` + balanceExpr + `
        FROM customer_transactions ct
        WHERE ct.customer_id = $1;
    `
	var balance decimal.Decimal
	if err := r.db.QueryRow(ctx, query, customerID).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute customer balance: %w", err)
	}
	return balance, nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
        UPDATE customers
        SET name = $1, phone = $2, notes = $3, updated_at = $4
        WHERE customer_id = $5;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.Phone,
		m.Notes,
		m.UpdatedAt,
		m.CustomerID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update customer query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("customer not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	// Ledger entries go with the customer via ON DELETE CASCADE. Receipts do
	// not cascade, so a customer with receipts cannot be removed.
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1;`, customerID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewConflictError("customer has receipts and cannot be deleted")
		}
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("customer not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func scanCustomerTransaction(row pgx.Row) (*models.CustomerTransaction, error) {
	var m models.CustomerTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.CustomerID,
		&m.Type,
		&m.Amount,
		&m.Description,
		&m.Date,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxCustomerRepository) SaveCustomerTransaction(ctx context.Context, txn domain.CustomerTransaction) error {
	m := mapping.ToModelCustomerTransaction(txn)
	query := `
        INSERT INTO customer_transactions (transaction_id, customer_id, type, amount, description, date, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		m.TransactionID,
		m.CustomerID,
		m.Type,
		m.Amount,
		m.Description,
		m.Date,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("customer not found: %w", apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to save customer transaction: %w", err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerTransactionByID(ctx context.Context, transactionID string) (*domain.CustomerTransaction, error) {
	query := `
        SELECT transaction_id, customer_id, type, amount, description, date, created_at
        FROM customer_transactions
        WHERE transaction_id = $1;
    `
	m, err := scanCustomerTransaction(r.db.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer transaction by ID %s: %w", transactionID, err)
	}
	d := mapping.ToDomainCustomerTransaction(*m)
	return &d, nil
}

func (r *PgxCustomerRepository) FindCustomerTransactions(ctx context.Context, customerID string, limit, offset int) ([]domain.CustomerTransaction, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT transaction_id, customer_id, type, amount, description, date, created_at
        FROM customer_transactions
        WHERE customer_id = $1
        ORDER BY date DESC, created_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query customer transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.CustomerTransaction{}
	for rows.Next() {
		m, err := scanCustomerTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer transaction row: %w", err)
		}
		txns = append(txns, mapping.ToDomainCustomerTransaction(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating customer transaction rows: %w", rows.Err())
	}
	return txns, nil
}

func (r *PgxCustomerRepository) UpdateCustomerTransaction(ctx context.Context, txn domain.CustomerTransaction) error {
	m := mapping.ToModelCustomerTransaction(txn)
	query := `
        UPDATE customer_transactions
        SET type = $1, amount = $2, description = $3, date = $4
        WHERE transaction_id = $5;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Type,
		m.Amount,
		m.Description,
		m.Date,
		m.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update customer transaction query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("customer transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCustomerRepository) DeleteCustomerTransaction(ctx context.Context, transactionID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM customer_transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete customer transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("customer transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
