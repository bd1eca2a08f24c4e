package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/defterpro/defter_backend/internal/core/domain"
	portsrepo "github.com/defterpro/defter_backend/internal/core/ports/repositories"
	portssvc "github.com/defterpro/defter_backend/internal/core/ports/services"
	"github.com/defterpro/defter_backend/internal/middleware"
)

// ReportingService computes dashboard figures from the ledgers.
type ReportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &ReportingService{reportingRepo: reportingRepo}
}

// Ensure ReportingService implements the port
var _ portssvc.ReportingService = (*ReportingService)(nil)

func (s *ReportingService) GetDashboardStats(ctx context.Context, today time.Time) (*domain.DashboardStats, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	stats, err := s.reportingRepo.GetDashboardStats(ctx, today)
	if err != nil {
		logger.Error("Failed to compute dashboard stats", slog.String("error", err.Error()))
		return nil, err
	}
	return stats, nil
}
