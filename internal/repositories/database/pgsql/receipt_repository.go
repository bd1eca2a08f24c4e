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
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// receiptNoLockKey serializes receipt number assignment across connections.
const receiptNoLockKey = 824211

// nextReceiptSeqQuery derives the next free sequence from the highest
// assigned receipt number.
const nextReceiptSeqQuery = `
    SELECT COALESCE(MAX(CAST(SUBSTRING(receipt_no FROM 2) AS INTEGER)), 0) + 1
    FROM receipts;
`

type PgxReceiptRepository struct {
	BaseRepository
}

func newPgxReceiptRepository(db *pgxpool.Pool) portsrepo.ReceiptRepositoryFacade {
	return &PgxReceiptRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxReceiptRepository implements the facade
var _ portsrepo.ReceiptRepositoryFacade = (*PgxReceiptRepository)(nil)

const receiptColumns = `r.receipt_id, r.customer_id, c.name, r.receipt_no, r.total_amount, r.tax_rate, r.tax_amount, r.grand_total, r.notes, r.date, r.created_at`

func scanReceipt(row pgx.Row) (*models.Receipt, error) {
	var m models.Receipt
	err := row.Scan(
		&m.ReceiptID,
		&m.CustomerID,
		&m.CustomerName,
		&m.ReceiptNo,
		&m.TotalAmount,
		&m.TaxRate,
		&m.TaxAmount,
		&m.GrandTotal,
		&m.Notes,
		&m.Date,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanReceiptItem(row pgx.Row) (*models.ReceiptItem, error) {
	var m models.ReceiptItem
	err := row.Scan(
		&m.ReceiptItemID,
		&m.ReceiptID,
		&m.ProductID,
		&m.ProductName,
		&m.ProductUnit,
		&m.Quantity,
		&m.UnitPrice,
		&m.TotalPrice,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt, debtDescription func(receiptNo string) string) (*domain.Receipt, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	// Number assignment and posting happen under one advisory lock so two
	// concurrent posts cannot draw the same receipt number.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1);`, receiptNoLockKey); err != nil {
		return nil, fmt.Errorf("failed to acquire receipt number lock: %w", err)
	}

	var seq int
	if err := tx.QueryRow(ctx, nextReceiptSeqQuery).Scan(&seq); err != nil {
		return nil, fmt.Errorf("failed to compute next receipt number: %w", err)
	}
	receipt.ReceiptNo = domain.FormatReceiptNo(seq)

	m := mapping.ToModelReceipt(receipt)
	insertReceipt := `
        INSERT INTO receipts (receipt_id, customer_id, receipt_no, total_amount, tax_rate, tax_amount, grand_total, notes, date, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err = tx.Exec(ctx, insertReceipt,
		m.ReceiptID,
		m.CustomerID,
		m.ReceiptNo,
		m.TotalAmount,
		m.TaxRate,
		m.TaxAmount,
		m.GrandTotal,
		m.Notes,
		m.Date,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation on receipt_no
				return nil, apperrors.NewConflictError("receipt number " + m.ReceiptNo + " already assigned")
			}
			if pgErr.Code == "23503" { // foreign_key_violation on customer
				return nil, fmt.Errorf("customer not found: %w", apperrors.ErrNotFound)
			}
		}
		return nil, fmt.Errorf("failed to save receipt: %w", err)
	}

	batch := &pgx.Batch{}
	insertItem := `
        INSERT INTO receipt_items (receipt_item_id, receipt_id, product_id, quantity, unit_price, total_price)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	for i := range receipt.Items {
		it := mapping.ToModelReceiptItem(receipt.Items[i])
		batch.Queue(insertItem, it.ReceiptItemID, m.ReceiptID, it.ProductID, it.Quantity, it.UnitPrice, it.TotalPrice)
	}
	br := tx.SendBatch(ctx, batch)
	for range receipt.Items {
		if _, err := br.Exec(); err != nil {
			br.Close()
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation on product
				return nil, fmt.Errorf("product not found: %w", apperrors.ErrNotFound)
			}
			return nil, fmt.Errorf("failed to save receipt item: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, fmt.Errorf("failed to close receipt item batch: %w", err)
	}

	// Post the matching debt to the customer's ledger in the same transaction.
	insertDebt := `
        INSERT INTO customer_transactions (transaction_id, customer_id, type, amount, description, date, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err = tx.Exec(ctx, insertDebt,
		uuid.NewString(),
		m.CustomerID,
		string(domain.Debt),
		m.GrandTotal,
		debtDescription(m.ReceiptNo),
		m.Date,
		time.Now(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to post receipt debt entry: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (r *PgxReceiptRepository) PeekNextReceiptNo(ctx context.Context) (string, error) {
	var seq int
	if err := r.Pool.QueryRow(ctx, nextReceiptSeqQuery).Scan(&seq); err != nil {
		return "", fmt.Errorf("failed to compute next receipt number: %w", err)
	}
	return domain.FormatReceiptNo(seq), nil
}

func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	query := `
        SELECT ` + receiptColumns + `
        FROM receipts r
        JOIN customers c ON c.customer_id = r.customer_id
        WHERE r.receipt_id = $1;
    `
	m, err := scanReceipt(r.Pool.QueryRow(ctx, query, receiptID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find receipt by ID %s: %w", receiptID, err)
	}

	items, err := r.findItemsForReceipts(ctx, []string{receiptID})
	if err != nil {
		return nil, err
	}

	d := mapping.ToDomainReceipt(*m)
	d.Items = mapping.ToDomainReceiptItemSlice(items[receiptID])
	return &d, nil
}

func (r *PgxReceiptRepository) FindReceipts(ctx context.Context, customerID *string, limit, offset int) ([]domain.Receipt, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + receiptColumns + `
        FROM receipts r
        JOIN customers c ON c.customer_id = r.customer_id
    `
	args := []any{}
	if customerID != nil {
		query += ` WHERE r.customer_id = $1 ORDER BY r.date DESC, r.created_at DESC LIMIT $2 OFFSET $3;`
		args = append(args, *customerID, limit, offset)
	} else {
		query += ` ORDER BY r.date DESC, r.created_at DESC LIMIT $1 OFFSET $2;`
		args = append(args, limit, offset)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipts: %w", err)
	}
	defer rows.Close()

	receipts := []domain.Receipt{}
	ids := []string{}
	for rows.Next() {
		m, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan receipt row: %w", err)
		}
		receipts = append(receipts, mapping.ToDomainReceipt(*m))
		ids = append(ids, m.ReceiptID)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating receipt rows: %w", rows.Err())
	}
	if len(receipts) == 0 {
		return receipts, nil
	}

	itemsByReceipt, err := r.findItemsForReceipts(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range receipts {
		receipts[i].Items = mapping.ToDomainReceiptItemSlice(itemsByReceipt[receipts[i].ReceiptID])
	}
	return receipts, nil
}

func (r *PgxReceiptRepository) findItemsForReceipts(ctx context.Context, receiptIDs []string) (map[string][]models.ReceiptItem, error) {
	query := `
        SELECT ri.receipt_item_id, ri.receipt_id, ri.product_id, p.name, p.unit, ri.quantity, ri.unit_price, ri.total_price
        FROM receipt_items ri
        JOIN products p ON p.product_id = ri.product_id
        WHERE ri.receipt_id = ANY($1)
        ORDER BY ri.receipt_item_id;
    `
	rows, err := r.Pool.Query(ctx, query, receiptIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipt items: %w", err)
	}
	defer rows.Close()

	out := map[string][]models.ReceiptItem{}
	for rows.Next() {
		m, err := scanReceiptItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan receipt item row: %w", err)
		}
		out[m.ReceiptID] = append(out[m.ReceiptID], *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating receipt item rows: %w", rows.Err())
	}
	return out, nil
}

func (r *PgxReceiptRepository) DeleteReceipt(ctx context.Context, receiptID string) error {
	// Line items cascade; the debt entry on the customer ledger is kept.
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM receipts WHERE receipt_id = $1;`, receiptID)
	if err != nil {
		return fmt.Errorf("failed to delete receipt: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("receipt not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
