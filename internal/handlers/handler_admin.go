package handlers

import (
	"net/http"

	portssvc "github.com/defterpro/defter_backend/internal/core/ports/services"
	"github.com/defterpro/defter_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler serves maintenance operations.
type adminHandler struct {
	backupService portssvc.BackupSvcFacade
}

func newAdminHandler(bs portssvc.BackupSvcFacade) *adminHandler {
	return &adminHandler{backupService: bs}
}

func registerAdminRoutes(rg *gin.RouterGroup, backupService portssvc.BackupSvcFacade) {
	h := newAdminHandler(backupService)

	admin := rg.Group("/admin", middleware.RequireAdmin())
	{
		admin.POST("/backup", h.runBackup)
	}
}

// runBackup godoc
// @Summary Run a database backup
// @Description Dumps the database and, when configured, uploads the dump to Google Drive.
// @Tags admin
// @Produce json
// @Success 200 {object} services.BackupResult
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Backups disabled"
// @Security BearerAuth
// @Router /admin/backup [post]
func (h *adminHandler) runBackup(c *gin.Context) {
	if h.backupService == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "backups are not enabled"})
		return
	}

	result, err := h.backupService.RunBackup(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
