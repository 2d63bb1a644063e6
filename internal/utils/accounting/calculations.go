package accounting

import (
	"fmt"

	"github.com/SscSPs/finance_manager/internal/core/domain"
	"github.com/SscSPs/finance_manager/internal/utils"
	"github.com/shopspring/decimal"
)

// ComputeInvoiceTotals derives subtotal, tax and total from the line items.
// Amounts stay exact; nothing is rounded until presentation.
// Input is expected to be validated (non-empty items, positive quantities and prices).
func ComputeInvoiceTotals(items []domain.LineItem, taxRate decimal.Decimal) domain.InvoiceTotals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Total())
	}
	tax := subtotal.Mul(taxRate)
	return domain.InvoiceTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// SumAmounts adds ledger amounts without intermediate rounding.
func SumAmounts(amounts []decimal.Decimal) decimal.Decimal {
	return decimal.Sum(decimal.Zero, amounts...)
}

// BuildPAndL computes the net result of the given income and expense totals.
func BuildPAndL(totalIncome, totalExpense decimal.Decimal) domain.PAndLReport {
	return domain.PAndLReport{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		NetProfit:    totalIncome.Sub(totalExpense),
	}
}

// PAndLLabel renders the report as "<Status>: <absolute amount>", e.g. "Loss: $200.00".
func PAndLLabel(report domain.PAndLReport, currencyCode string) string {
	return fmt.Sprintf("%s: %s", report.Status(), utils.FormatMoney(report.NetProfit.Abs(), currencyCode))
}

// TotalDrifted reports whether a stored total no longer matches quantity * unit price
// once both are rounded to cents.
func TotalDrifted(txn domain.StockTransaction) bool {
	return !txn.TotalPrice.Round(2).Equal(txn.ComputeTotal().Round(2))
}
