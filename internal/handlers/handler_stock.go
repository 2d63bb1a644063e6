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

// stockHandler handles HTTP requests related to stock transactions.
type stockHandler struct {
	stockService portssvc.StockSvcFacade
}

func newStockHandler(ss portssvc.StockSvcFacade) *stockHandler {
	return &stockHandler{stockService: ss}
}

// registerStockRoutes registers routes related to stock transactions.
func registerStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockSvcFacade) {
	h := newStockHandler(stockService)

	stock := rg.Group("/stock")
	{
		stock.POST("", h.createStock)
		stock.GET("", h.listStock)
		stock.GET("/:id", h.getStock)
	}
}

// createStock godoc
// @Summary Record a stock transaction
// @Description Records a purchase or sale. The total price is derived from quantity and unit price.
// @Tags stock
// @Accept  json
// @Produce  json
// @Param   stock body dto.CreateStockRequest true "Stock transaction"
// @Success 201 {object} dto.StockResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Same date, type, vendor and item already recorded"
// @Failure 500 {object} dto.ErrorResponse "Failed to record stock transaction"
// @Router /stock [post]
func (h *stockHandler) createStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}

	txn, err := h.stockService.RecordStock(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to record stock transaction")
		return
	}

	logger.Info("Stock transaction created", slog.Int64("id", txn.ID))
	c.JSON(http.StatusCreated, dto.ToStockResponse(txn))
}

// getStock godoc
// @Summary Get a stock transaction
// @Tags stock
// @Produce  json
// @Param   id path int true "Stock transaction ID"
// @Success 200 {object} dto.StockResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Stock transaction not found"
// @Router /stock/{id} [get]
func (h *stockHandler) getStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, logger, "Invalid stock transaction ID", err)
		return
	}

	txn, err := h.stockService.GetStock(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve stock transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToStockResponse(txn))
}

// listStock godoc
// @Summary List stock transactions
// @Description Lists stock transactions newest first using token based pagination
// @Tags stock
// @Produce  json
// @Param   type query string false "Purchase or Sale"
// @Param   from query string false "Earliest date (YYYY-MM-DD)"
// @Param   to query string false "Latest date (YYYY-MM-DD)"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListStockResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Router /stock [get]
func (h *stockHandler) listStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListStockParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}

	txns, next, err := h.stockService.ListStock(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list stock transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListStockResponse(txns, next))
}
