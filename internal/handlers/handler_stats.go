package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/defterpro/defter_backend/internal/core/ports/services"
	"github.com/defterpro/defter_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// statsHandler serves the dashboard summary.
type statsHandler struct {
	reportingService portssvc.ReportingService
}

func newStatsHandler(rs portssvc.ReportingService) *statsHandler {
	return &statsHandler{reportingService: rs}
}

func registerStatsRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newStatsHandler(reportingService)

	stats := rg.Group("/stats")
	{
		stats.GET("/dashboard", h.dashboard)
	}
}

// dashboard godoc
// @Summary Dashboard summary
// @Description Aggregate cash balance, income/expense totals, outstanding customer debt, and today's figures.
// @Tags stats
// @Produce json
// @Success 200 {object} dto.DashboardStatsResponse
// @Security BearerAuth
// @Router /stats/dashboard [get]
func (h *statsHandler) dashboard(c *gin.Context) {
	stats, err := h.reportingService.GetDashboardStats(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}
