package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount with the symbol and precision of a currency.
// Rounding happens here, never while amounts are accumulated.
// Example: amount 200 with USD returns "$200.00"
func FormatMoney(amount decimal.Decimal, currencyCode string) string {
	// to get a never nil currency the Money constructor has to be called
	cur := *money.New(0, currencyCode).Currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// FormatWithPrecision formats an amount with the given precision
// Example: amount 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
