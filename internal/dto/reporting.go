package dto

import (
	"time"

	"github.com/SscSPs/finance_manager/internal/apperrors"
	"github.com/SscSPs/finance_manager/internal/core/domain"
	"github.com/SscSPs/finance_manager/internal/models"
	"github.com/SscSPs/finance_manager/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// ProfitLossParams defines the optional date range of a profit and loss report.
type ProfitLossParams struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// Range parses the optional bounds. Empty bounds are nil.
func (p ProfitLossParams) Range() (from, to *time.Time, err error) {
	var messages []string
	parse := func(value, name string) *time.Time {
		if value == "" {
			return nil
		}
		t, perr := time.Parse(models.DateLayout, value)
		if perr != nil {
			messages = append(messages, name+" date must use the YYYY-MM-DD format")
			return nil
		}
		return &t
	}
	from = parse(p.From, "From")
	to = parse(p.To, "To")
	if from != nil && to != nil && to.Before(*from) {
		messages = append(messages, "From date must not be after To date")
	}
	if len(messages) > 0 {
		return nil, nil, apperrors.NewValidationError(messages)
	}
	return from, to, nil
}

// ProfitLossResponse defines the data returned for a profit and loss report.
type ProfitLossResponse struct {
	From         string          `json:"from,omitempty"`
	To           string          `json:"to,omitempty"`
	TotalIncome  decimal.Decimal `json:"totalIncome" swaggertype:"string"`
	TotalExpense decimal.Decimal `json:"totalExpense" swaggertype:"string"`
	NetProfit    decimal.Decimal `json:"netProfit" swaggertype:"string"`
	Status       string          `json:"status"`
	Label        string          `json:"label" example:"Loss: $200.00"`
}

// ToProfitLossResponse converts a report, labelling it in currencyCode
func ToProfitLossResponse(r *domain.PAndLReport, currencyCode string) ProfitLossResponse {
	resp := ProfitLossResponse{
		TotalIncome:  r.TotalIncome,
		TotalExpense: r.TotalExpense,
		NetProfit:    r.NetProfit,
		Status:       string(r.Status()),
		Label:        accounting.PAndLLabel(*r, currencyCode),
	}
	if r.From != nil {
		resp.From = formatDate(*r.From)
	}
	if r.To != nil {
		resp.To = formatDate(*r.To)
	}
	return resp
}

// BackupResponse reports where a snapshot was written.
type BackupResponse struct {
	Path string `json:"path"`
}

// RecalculateResponse reports how many stock totals were rewritten.
type RecalculateResponse struct {
	Updated int64 `json:"updated"`
}

// VerificationResponse wraps a verification report with its verdict.
type VerificationResponse struct {
	OK     bool                      `json:"ok"`
	Report domain.VerificationReport `json:"report"`
}
