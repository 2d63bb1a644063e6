package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_manager/internal/core/ports/services"
	"github.com/SscSPs/finance_manager/internal/dto"
	"github.com/SscSPs/finance_manager/internal/middleware"
	"github.com/gin-gonic/gin"
)

type maintenanceHandler struct {
	maintenanceService portssvc.MaintenanceService
}

func registerMaintenanceRoutes(rg *gin.RouterGroup, maintenanceService portssvc.MaintenanceService) {
	h := &maintenanceHandler{maintenanceService: maintenanceService}

	maintenance := rg.Group("/maintenance")
	{
		maintenance.POST("/backup", h.backup)
		maintenance.POST("/verify", h.verify)
		maintenance.POST("/recalculate", h.recalculate)
	}
}

// backup godoc
// @Summary Back up the database
// @Description Writes backup_<YYYYMMDD_HHMMSS>.db next to the database file
// @Tags maintenance
// @Produce  json
// @Success 201 {object} dto.BackupResponse
// @Failure 500 {object} dto.ErrorResponse "Backup failed"
// @Router /maintenance/backup [post]
func (h *maintenanceHandler) backup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	path, err := h.maintenanceService.Backup(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Backup failed")
		return
	}
	logger.Info("Backup written", slog.String("path", path))
	c.JSON(http.StatusCreated, dto.BackupResponse{Path: path})
}

// verify godoc
// @Summary Verify stored data
// @Description Runs the integrity and foreign key checks and re-validates every stored row
// @Tags maintenance
// @Produce  json
// @Success 200 {object} dto.VerificationResponse
// @Router /maintenance/verify [post]
func (h *maintenanceHandler) verify(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.maintenanceService.Verify(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Verification failed")
		return
	}
	c.JSON(http.StatusOK, dto.VerificationResponse{OK: report.OK(), Report: *report})
}

// recalculate godoc
// @Summary Recalculate stock totals
// @Description Rewrites total_price where it no longer equals quantity * unit_price
// @Tags maintenance
// @Produce  json
// @Success 200 {object} dto.RecalculateResponse
// @Router /maintenance/recalculate [post]
func (h *maintenanceHandler) recalculate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	updated, err := h.maintenanceService.RecalculateTotals(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Recalculation failed")
		return
	}
	c.JSON(http.StatusOK, dto.RecalculateResponse{Updated: updated})
}
