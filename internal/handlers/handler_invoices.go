package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_manager/internal/apperrors"
	portssvc "github.com/SscSPs/finance_manager/internal/core/ports/services"
	"github.com/SscSPs/finance_manager/internal/dto"
	"github.com/SscSPs/finance_manager/internal/middleware"
	"github.com/gin-gonic/gin"
)

type invoiceHandler struct {
	invoiceService portssvc.InvoiceService
	currencyCode   string
}

func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceService, currencyCode string, limit gin.HandlerFunc) {
	h := &invoiceHandler{invoiceService: invoiceService, currencyCode: currencyCode}

	rg.POST("/invoices", limit, h.createInvoice)
}

// createInvoice godoc
// @Summary Generate an invoice
// @Description Computes subtotal, tax and total and writes Invoice_<number>.pdf. Line items come from items followed by stockIds.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Invoice number already used"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Invoice generation failed"
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}

	inv, err := h.invoiceService.GenerateInvoice(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrRender) && !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Invoice generation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Invoice generation failed"})
			return
		}
		respondError(c, logger, err, "Failed to generate invoice")
		return
	}

	logger.Info("Invoice generated", slog.String("number", inv.Number))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(inv, h.currencyCode))
}
