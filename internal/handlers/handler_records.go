package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/finance_manager/internal/core/ports/services"
	"github.com/SscSPs/finance_manager/internal/dto"
	"github.com/SscSPs/finance_manager/internal/middleware"
	"github.com/gin-gonic/gin"
)

// recordHandler handles HTTP requests related to income and expense entries.
type recordHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newRecordHandler(ls portssvc.LedgerSvcFacade) *recordHandler {
	return &recordHandler{ledgerService: ls}
}

func registerRecordRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newRecordHandler(ledgerService)

	records := rg.Group("/records")
	{
		records.POST("", h.createRecord)
		records.GET("", h.listRecords)
		records.GET("/:id", h.getRecord)
		records.POST("/:id/verify", h.verifyRecord)
	}
}

// createRecord godoc
// @Summary Record an income or expense entry
// @Tags records
// @Accept  json
// @Produce  json
// @Param   record body dto.CreateRecordRequest true "Ledger entry"
// @Success 201 {object} dto.RecordResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to record entry"
// @Router /records [post]
func (h *recordHandler) createRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}

	record, err := h.ledgerService.RecordEntry(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to record entry")
		return
	}

	logger.Info("Ledger entry created", slog.Int64("id", record.ID), slog.String("type", string(record.Type)))
	c.JSON(http.StatusCreated, dto.ToRecordResponse(record))
}

// getRecord godoc
// @Summary Get a ledger entry
// @Tags records
// @Produce  json
// @Param   id path int true "Record ID"
// @Success 200 {object} dto.RecordResponse
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /records/{id} [get]
func (h *recordHandler) getRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, logger, "Invalid record ID", err)
		return
	}

	record, err := h.ledgerService.GetRecord(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve record")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}

// listRecords godoc
// @Summary List ledger entries
// @Tags records
// @Produce  json
// @Param   type query string false "income or expense"
// @Param   category query string false "Category name"
// @Param   from query string false "Earliest date (YYYY-MM-DD)"
// @Param   to query string false "Latest date (YYYY-MM-DD)"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListRecordsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Router /records [get]
func (h *recordHandler) listRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}

	records, next, err := h.ledgerService.ListRecords(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list records")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRecordsResponse(records, next))
}

// verifyRecord godoc
// @Summary Set the verified flag of a ledger entry
// @Tags records
// @Accept  json
// @Produce  json
// @Param   id path int true "Record ID"
// @Param   body body dto.VerifyRecordRequest false "Verified flag, true when omitted"
// @Success 200 {object} dto.RecordResponse
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /records/{id}/verify [post]
func (h *recordHandler) verifyRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, logger, "Invalid record ID", err)
		return
	}

	var req dto.VerifyRecordRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, logger, "Invalid request format", err)
			return
		}
	}
	verified := true
	if req.Verified != nil {
		verified = *req.Verified
	}

	record, err := h.ledgerService.MarkVerified(c.Request.Context(), id, verified)
	if err != nil {
		respondError(c, logger, err, "Failed to update record")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}
