package dto

import (
	"github.com/SscSPs/finance_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateStockRequest defines the data needed to record a purchase or sale.
// Field rules are checked by the domain so every violation is reported at once.
type CreateStockRequest struct {
	Date            string          `json:"date" example:"2024-03-01"` // YYYY-MM-DD
	TransactionType string          `json:"transactionType" example:"Purchase"`
	VendorName      string          `json:"vendorName"`
	ItemName        string          `json:"itemName"`
	Quantity        decimal.Decimal `json:"quantity" swaggertype:"string" example:"3"`
	UnitPrice       decimal.Decimal `json:"unitPrice" swaggertype:"string" example:"10.00"`
}

// ListStockParams defines the query parameters for listing stock transactions.
type ListStockParams struct {
	TransactionType string `form:"type" binding:"omitempty,oneof=Purchase Sale"`
	From            string `form:"from"`
	To              string `form:"to"`
	Limit           int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken       string `form:"nextToken"`
}

// StockResponse defines the data returned for a stock transaction.
type StockResponse struct {
	ID              int64           `json:"id"`
	Date            string          `json:"date"`
	TransactionType string          `json:"transactionType"`
	VendorName      string          `json:"vendorName"`
	ItemName        string          `json:"itemName"`
	Quantity        decimal.Decimal `json:"quantity" swaggertype:"string"`
	UnitPrice       decimal.Decimal `json:"unitPrice" swaggertype:"string"`
	TotalPrice      decimal.Decimal `json:"totalPrice" swaggertype:"string"`
}

// ListStockResponse wraps a page of stock transactions.
type ListStockResponse struct {
	Items     []StockResponse `json:"items"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToStockResponse converts a domain.StockTransaction to StockResponse DTO
func ToStockResponse(t *domain.StockTransaction) StockResponse {
	return StockResponse{
		ID:              t.ID,
		Date:            formatDate(t.Date),
		TransactionType: string(t.TransactionType),
		VendorName:      t.VendorName,
		ItemName:        t.ItemName,
		Quantity:        t.Quantity,
		UnitPrice:       t.UnitPrice,
		TotalPrice:      t.TotalPrice,
	}
}

// ToListStockResponse converts a page of stock transactions
func ToListStockResponse(txns []domain.StockTransaction, nextToken *string) ListStockResponse {
	items := make([]StockResponse, len(txns))
	for i := range txns {
		items[i] = ToStockResponse(&txns[i])
	}
	return ListStockResponse{Items: items, NextToken: nextToken}
}
