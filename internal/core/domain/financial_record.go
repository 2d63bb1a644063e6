package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordType scopes ledger entries and categories to income or expense.
type RecordType string

const (
	Income  RecordType = "income"
	Expense RecordType = "expense"
)

// IsValid reports whether t is one of the known record types.
func (t RecordType) IsValid() bool {
	return t == Income || t == Expense
}

// FinancialRecord is a single income or expense ledger entry.
type FinancialRecord struct {
	ID          int64           `json:"id"`
	Type        RecordType      `json:"type" validate:"oneof=income expense"`
	Date        time.Time       `json:"date" validate:"required"`
	Category    string          `json:"category" validate:"notblank"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	Verified    bool            `json:"verified"`
}

var recordMessages = map[string]string{
	"Type.oneof":        "Record type must be 'income' or 'expense'",
	"Date.required":     "Date is required",
	"Category.notblank": "Category cannot be empty",
	"Amount.gt":         "Amount must be positive",
}

// Validate returns every field violation; an empty slice means the entry can be stored.
func (r FinancialRecord) Validate() []string {
	return collectMessages(r, recordMessages)
}

// RecordFilter narrows ledger listings. Zero values match everything.
type RecordFilter struct {
	Type     RecordType
	Category string
	From, To *time.Time
}
