package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_manager/internal/adapters/csvexport"
	portssvc "github.com/SscSPs/finance_manager/internal/core/ports/services"
	"github.com/SscSPs/finance_manager/internal/middleware"
	"github.com/gin-gonic/gin"
)

type exportHandler struct {
	exportService portssvc.ExportService
}

func registerExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportService) {
	h := &exportHandler{exportService: exportService}

	rg.GET("/export/:view", h.exportView)
}

// exportView godoc
// @Summary Export a table as CSV
// @Tags export
// @Produce text/csv
// @Param   view path string true "stock, income, expense or categories"
// @Success 200 {string} string "CSV document"
// @Failure 400 {object} dto.ErrorResponse "Unknown view"
// @Router /export/{view} [get]
func (h *exportHandler) exportView(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	view := c.Param("view")

	table, err := h.exportService.Table(c.Request.Context(), view)
	if err != nil {
		respondError(c, logger, err, "Failed to export "+view)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, table.Name))
	c.Status(http.StatusOK)
	if err := csvexport.Write(c.Writer, table); err != nil {
		logger.Error("Failed to stream export", slog.String("view", view), slog.String("error", err.Error()))
		return
	}
	logger.Info("Export streamed", slog.String("view", view), slog.Int("rows", len(table.Rows)))
}
