package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/defterpro/defter_backend/internal/apperrors"
	"github.com/defterpro/defter_backend/internal/core/domain"
	portsrepo "github.com/defterpro/defter_backend/internal/core/ports/repositories"
	"github.com/defterpro/defter_backend/internal/models"
	"github.com/defterpro/defter_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCashTransactionRepository struct {
	db *pgxpool.Pool
}

func newPgxCashTransactionRepository(db *pgxpool.Pool) portsrepo.CashTransactionRepositoryFacade {
	return &PgxCashTransactionRepository{db: db}
}

// Ensure PgxCashTransactionRepository implements the facade
var _ portsrepo.CashTransactionRepositoryFacade = (*PgxCashTransactionRepository)(nil)

const cashTxnColumns = `transaction_id, type, amount, description, date, created_at, updated_at`

func scanCashTransaction(row pgx.Row) (*models.CashTransaction, error) {
	var m models.CashTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.Type,
		&m.Amount,
		&m.Description,
		&m.Date,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxCashTransactionRepository) SaveCashTransaction(ctx context.Context, txn domain.CashTransaction) error {
	m := mapping.ToModelCashTransaction(txn)
	query := `
        INSERT INTO transactions (transaction_id, type, amount, description, date, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		m.TransactionID,
		m.Type,
		m.Amount,
		m.Description,
		m.Date,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save cash transaction: %w", err)
	}
	return nil
}

func (r *PgxCashTransactionRepository) FindCashTransactionByID(ctx context.Context, transactionID string) (*domain.CashTransaction, error) {
	query := `SELECT ` + cashTxnColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanCashTransaction(r.db.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cash transaction by ID %s: %w", transactionID, err)
	}
	d := mapping.ToDomainCashTransaction(*m)
	return &d, nil
}

func (r *PgxCashTransactionRepository) FindCashTransactions(ctx context.Context, txnType *domain.CashTransactionType, from, to *time.Time, limit, offset int) ([]domain.CashTransaction, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + cashTxnColumns + ` FROM transactions WHERE 1=1`
	args := []any{}
	argN := 1
	if txnType != nil {
		query += fmt.Sprintf(" AND type = $%d", argN)
		args = append(args, string(*txnType))
		argN++
	}
	if from != nil {
		query += fmt.Sprintf(" AND date >= $%d", argN)
		args = append(args, *from)
		argN++
	}
	if to != nil {
		query += fmt.Sprintf(" AND date <= $%d", argN)
		args = append(args, *to)
		argN++
	}
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d;", argN, argN+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.CashTransaction{}
	for rows.Next() {
		m, err := scanCashTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cash transaction row: %w", err)
		}
		txns = append(txns, mapping.ToDomainCashTransaction(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating cash transaction rows: %w", rows.Err())
	}
	return txns, nil
}

func (r *PgxCashTransactionRepository) UpdateCashTransaction(ctx context.Context, txn domain.CashTransaction) error {
	m := mapping.ToModelCashTransaction(txn)
	query := `
        UPDATE transactions
        SET type = $1, amount = $2, description = $3, date = $4, updated_at = $5
        WHERE transaction_id = $6;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Type,
		m.Amount,
		m.Description,
		m.Date,
		m.UpdatedAt,
		m.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update cash transaction query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("cash transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCashTransactionRepository) DeleteCashTransaction(ctx context.Context, transactionID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete cash transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("cash transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
