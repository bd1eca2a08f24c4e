//go:build integration

package pgsql

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/defterpro/defter_backend/internal/core/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Runs against a real, migrated Postgres:
//
//	DEFTER_TEST_DATABASE_URL=postgres://... go test -tags integration ./internal/repositories/database/pgsql/
func integrationPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("DEFTER_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("DEFTER_TEST_DATABASE_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestSaveReceipt_ConcurrentPostsGetDistinctNumbers(t *testing.T) {
	pool := integrationPool(t)
	ctx := context.Background()

	customerID := uuid.NewString()
	productID := uuid.NewString()
	_, err := pool.Exec(ctx,
		`INSERT INTO customers (customer_id, name) VALUES ($1, $2);`,
		customerID, "Eşzamanlı Müşteri "+customerID[:8])
	require.NoError(t, err)
	_, err = pool.Exec(ctx,
		`INSERT INTO products (product_id, name, unit_price) VALUES ($1, $2, 10.00);`,
		productID, "Test Ürünü "+productID[:8])
	require.NoError(t, err)

	repo := newPgxReceiptRepository(pool)

	t.Cleanup(func() {
		// Receipts block the customer delete, so they go first; line items
		// and ledger entries cascade.
		pool.Exec(ctx, `DELETE FROM receipts WHERE customer_id = $1;`, customerID)
		pool.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1;`, customerID)
		pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	})

	const posters = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers []string
		errs    []error
	)
	for i := 0; i < posters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			qty := decimal.NewFromInt(1)
			price := decimal.NewFromFloat(10.00)
			items := []domain.ReceiptItem{{
				ReceiptItemID: uuid.NewString(),
				ProductID:     productID,
				Quantity:      qty,
				UnitPrice:     price,
			}}
			subtotal, taxAmount, grandTotal := domain.ComputeReceiptTotals(items, decimal.NewFromInt(20))
			receipt := domain.Receipt{
				ReceiptID:   uuid.NewString(),
				CustomerID:  customerID,
				TotalAmount: subtotal,
				TaxRate:     decimal.NewFromInt(20),
				TaxAmount:   taxAmount,
				GrandTotal:  grandTotal,
				Date:        time.Now(),
				CreatedAt:   time.Now(),
				Items:       items,
			}
			saved, err := repo.SaveReceipt(ctx, receipt, func(no string) string {
				return domain.ReceiptDebtDescription(no, "")
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			numbers = append(numbers, saved.ReceiptNo)
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	require.Len(t, numbers, posters)
	seen := map[string]bool{}
	for _, no := range numbers {
		require.False(t, seen[no], "receipt number %s assigned twice", no)
		seen[no] = true
		_, err := domain.ParseReceiptNo(no)
		require.NoError(t, err)
	}
}
