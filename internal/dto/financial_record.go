package dto

import (
	"github.com/SscSPs/finance_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecordRequest defines the data needed to add an income or expense entry.
type CreateRecordRequest struct {
	Type        string          `json:"type" example:"income"`
	Date        string          `json:"date" example:"2024-03-01"` // YYYY-MM-DD
	Category    string          `json:"category" example:"Sales"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"250.00"`
	Verified    bool            `json:"verified"`
}

// ListRecordsParams defines the query parameters for listing ledger entries.
type ListRecordsParams struct {
	Type      string `form:"type" binding:"omitempty,oneof=income expense"`
	Category  string `form:"category"`
	From      string `form:"from"`
	To        string `form:"to"`
	Limit     int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// VerifyRecordRequest sets or clears the verified flag.
type VerifyRecordRequest struct {
	Verified *bool `json:"verified"` // defaults to true
}

// RecordResponse defines the data returned for a ledger entry.
type RecordResponse struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string"`
	Verified    bool            `json:"verified"`
}

// ListRecordsResponse wraps a page of ledger entries.
type ListRecordsResponse struct {
	Items     []RecordResponse `json:"items"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ToRecordResponse converts a domain.FinancialRecord to RecordResponse DTO
func ToRecordResponse(r *domain.FinancialRecord) RecordResponse {
	return RecordResponse{
		ID:          r.ID,
		Type:        string(r.Type),
		Date:        formatDate(r.Date),
		Category:    r.Category,
		Description: r.Description,
		Amount:      r.Amount,
		Verified:    r.Verified,
	}
}

// ToListRecordsResponse converts a page of ledger entries
func ToListRecordsResponse(records []domain.FinancialRecord, nextToken *string) ListRecordsResponse {
	items := make([]RecordResponse, len(records))
	for i := range records {
		items[i] = ToRecordResponse(&records[i])
	}
	return ListRecordsResponse{Items: items, NextToken: nextToken}
}
