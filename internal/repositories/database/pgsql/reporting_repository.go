package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/defterpro/defter_backend/internal/core/domain"
	portsrepo "github.com/defterpro/defter_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	db *pgxpool.Pool
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{db: db}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetDashboardStats computes all dashboard figures in a single round trip.
func (r *PgxReportingRepository) GetDashboardStats(ctx context.Context, today time.Time) (*domain.DashboardStats, error) {
	query := `
        SELECT
            (SELECT COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE -amount END), 0) FROM transactions) AS cash_balance,
            (SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE type = 'income') AS total_income,
            (SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE type = 'expense') AS total_expense,
            (SELECT COALESCE(SUM(CASE WHEN type = 'debt' THEN amount ELSE -amount END), 0) FROM customer_transactions) AS total_customer_debt,
            (SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE type = 'income' AND date = $1) AS today_income,
            (SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE type = 'expense' AND date = $1) AS today_expense;
    `
	day := today.Format("2006-01-02")

	var stats domain.DashboardStats
	err := r.db.QueryRow(ctx, query, day).Scan(
		&stats.CashBalance,
		&stats.TotalIncome,
		&stats.TotalExpense,
		&stats.TotalCustomerDebt,
		&stats.TodayIncome,
		&stats.TodayExpense,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute dashboard stats: %w", err)
	}
	return &stats, nil
}
