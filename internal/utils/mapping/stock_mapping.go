package mapping

import (
	"database/sql"

	"github.com/SscSPs/finance_manager/internal/core/domain"
	"github.com/SscSPs/finance_manager/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelStock converts a domain StockTransaction to a model Stock
func ToModelStock(d domain.StockTransaction) models.Stock {
	return models.Stock{
		ID:              d.ID,
		Date:            ToModelDate(d.Date),
		TransactionType: sql.NullString{String: string(d.TransactionType), Valid: d.TransactionType != ""},
		VendorName:      d.VendorName,
		ItemName:        d.ItemName,
		Quantity:        d.Quantity.InexactFloat64(),
		UnitPrice:       d.UnitPrice.InexactFloat64(),
		TotalPrice:      d.TotalPrice.InexactFloat64(),
	}
}

// ToDomainStock converts a model Stock to a domain StockTransaction
func ToDomainStock(m models.Stock) domain.StockTransaction {
	return domain.StockTransaction{
		ID:              m.ID,
		Date:            ToDomainDate(m.Date),
		TransactionType: domain.StockTransactionType(m.TransactionType.String),
		VendorName:      m.VendorName,
		ItemName:        m.ItemName,
		Quantity:        decimal.NewFromFloat(m.Quantity),
		UnitPrice:       decimal.NewFromFloat(m.UnitPrice),
		TotalPrice:      decimal.NewFromFloat(m.TotalPrice),
	}
}

// ToDomainStockSlice converts a slice of model Stock rows to domain StockTransactions
func ToDomainStockSlice(ms []models.Stock) []domain.StockTransaction {
	ds := make([]domain.StockTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStock(m)
	}
	return ds
}
