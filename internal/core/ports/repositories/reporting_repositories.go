package repositories

import (
	"context"
	"time"

	"github.com/defterpro/defter_backend/internal/core/domain"
)

// ReportingRepository defines operations for retrieving dashboard report data
type ReportingRepository interface {
	// GetDashboardStats computes the aggregate figures for the dashboard.
	// The today parameter bounds the "today" income and expense sums.
	GetDashboardStats(ctx context.Context, today time.Time) (*domain.DashboardStats, error)
}
