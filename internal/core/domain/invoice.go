package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one billed row of an invoice.
type LineItem struct {
	Description string          `json:"description" validate:"notblank"`
	Quantity    decimal.Decimal `json:"quantity" validate:"gt=0"`
	Price       decimal.Decimal `json:"price" validate:"gt=0"`
}

// Total returns quantity * price for the line.
func (li LineItem) Total() decimal.Decimal {
	return li.Quantity.Mul(li.Price)
}

// Invoice is computed on demand and never persisted. Items keep the order
// they were supplied in for rendering.
type Invoice struct {
	Number          string          `json:"number"`
	Date            time.Time       `json:"date"`
	CustomerName    string          `json:"customerName" validate:"notblank"`
	CustomerAddress string          `json:"customerAddress"`
	Items           []LineItem      `json:"items" validate:"min=1,dive"`
	TaxRate         decimal.Decimal `json:"taxRate" validate:"gte=0"`
}

var invoiceMessages = map[string]string{
	"CustomerName.notblank": "Customer name cannot be empty",
	"Items.min":             "Invoice must have at least one item",
	"Description.notblank":  "Item description cannot be empty",
	"Quantity.gt":           "Item quantity must be positive",
	"Price.gt":              "Item price must be positive",
	"TaxRate.gte":           "Tax rate cannot be negative",
}

// Validate returns every field violation, one message per offending item field.
func (inv Invoice) Validate() []string {
	return collectMessages(inv, invoiceMessages)
}

// InvoiceTotals are derived from the line items and tax rate on every generation.
type InvoiceTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// GeneratedInvoice is an invoice with its totals and the document written for it.
type GeneratedInvoice struct {
	Invoice
	InvoiceTotals
	Company  Settings `json:"company"`
	FilePath string   `json:"filePath"`
}
