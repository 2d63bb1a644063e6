package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockTransactionType indicates whether stock came in or went out.
type StockTransactionType string

const (
	Purchase StockTransactionType = "Purchase"
	Sale     StockTransactionType = "Sale"
)

// StockTransaction is one purchase or sale of an item from a vendor.
// (Date, TransactionType, VendorName, ItemName) is unique in storage.
type StockTransaction struct {
	ID              int64                `json:"id"`
	Date            time.Time            `json:"date" validate:"required"`
	TransactionType StockTransactionType `json:"transactionType" validate:"oneof=Purchase Sale"`
	VendorName      string               `json:"vendorName" validate:"notblank"`
	ItemName        string               `json:"itemName" validate:"notblank"`
	Quantity        decimal.Decimal      `json:"quantity" validate:"gt=0"`
	UnitPrice       decimal.Decimal      `json:"unitPrice" validate:"gte=0"`
	TotalPrice      decimal.Decimal      `json:"totalPrice"` // quantity * unit price
}

var stockMessages = map[string]string{
	"Date.required":         "Date is required",
	"TransactionType.oneof": "Transaction type must be 'Purchase' or 'Sale'",
	"VendorName.notblank":   "Vendor name cannot be empty",
	"ItemName.notblank":     "Item name cannot be empty",
	"Quantity.gt":           "Quantity must be positive",
	"UnitPrice.gte":         "Unit price cannot be negative",
}

// Validate returns every field violation; an empty slice means the entry can be stored.
func (t StockTransaction) Validate() []string {
	return collectMessages(t, stockMessages)
}

// ComputeTotal derives the total price from quantity and unit price.
func (t StockTransaction) ComputeTotal() decimal.Decimal {
	return t.Quantity.Mul(t.UnitPrice)
}

// WithDerivedTotal returns a copy whose TotalPrice is recomputed from its inputs.
func (t StockTransaction) WithDerivedTotal() StockTransaction {
	t.TotalPrice = t.ComputeTotal()
	return t
}

// StockFilter narrows stock listings. Zero values match everything.
type StockFilter struct {
	TransactionType StockTransactionType
	From, To        *time.Time
}
