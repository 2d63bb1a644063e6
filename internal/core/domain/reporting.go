package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProfitLossStatus names the sign of a net result.
type ProfitLossStatus string

const (
	Profit ProfitLossStatus = "Profit"
	Loss   ProfitLossStatus = "Loss"
)

// PAndLReport represents a profit and loss report built from the persisted ledger.
type PAndLReport struct {
	From         *time.Time      `json:"from,omitempty"`
	To           *time.Time      `json:"to,omitempty"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetProfit    decimal.Decimal `json:"netProfit"` // total income minus total expense
}

// Status is Profit for a non-negative net result and Loss otherwise.
func (r PAndLReport) Status() ProfitLossStatus {
	if r.NetProfit.IsNegative() {
		return Loss
	}
	return Profit
}

// RowIssue describes a stored row that no longer satisfies its entity rules.
type RowIssue struct {
	Table    string   `json:"table"`
	ID       int64    `json:"id"`
	Messages []string `json:"messages"`
}

// VerificationReport collects the findings of a data verification pass.
type VerificationReport struct {
	IntegrityMessages    []string           `json:"integrityMessages"`
	ForeignKeyViolations int                `json:"foreignKeyViolations"`
	InvalidRows          []RowIssue         `json:"invalidRows"`
	TotalMismatches      []StockTransaction `json:"totalMismatches"`
}

// OK reports whether verification found nothing to fix.
func (r VerificationReport) OK() bool {
	integrityOK := len(r.IntegrityMessages) == 0 ||
		(len(r.IntegrityMessages) == 1 && r.IntegrityMessages[0] == "ok")
	return integrityOK && r.ForeignKeyViolations == 0 &&
		len(r.InvalidRows) == 0 && len(r.TotalMismatches) == 0
}
