package services

import (
	"context"
	"time"

	"github.com/defterpro/defter_backend/internal/core/domain"
)

// ReportingService defines operations for dashboard reporting
type ReportingService interface {
	// GetDashboardStats computes the aggregate dashboard figures.
	GetDashboardStats(ctx context.Context, today time.Time) (*domain.DashboardStats, error)
}
