package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/finance_manager/internal/core/ports/services"
	"github.com/SscSPs/finance_manager/internal/dto"
	"github.com/SscSPs/finance_manager/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reportingHandler struct {
	reportingService portssvc.ReportingService
	currencyCode     string
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, currencyCode string) {
	h := &reportingHandler{reportingService: reportingService, currencyCode: currencyCode}

	reports := rg.Group("/reports")
	reports.GET("/profit-loss", h.getProfitLoss)
}

// getProfitLoss godoc
// @Summary Get the profit and loss report
// @Description Sums every stored income and expense entry, optionally within a date range
// @Tags reports
// @Produce  json
// @Param   from query string false "Earliest date (YYYY-MM-DD)"
// @Param   to query string false "Latest date (YYYY-MM-DD)"
// @Success 200 {object} dto.ProfitLossResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid date range"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Router /reports/profit-loss [get]
func (h *reportingHandler) getProfitLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ProfitLossParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}
	from, to, err := params.Range()
	if err != nil {
		respondError(c, logger, err, "Invalid date range")
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to generate report")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfitLossResponse(report, h.currencyCode))
}
