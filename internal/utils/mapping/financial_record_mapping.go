package mapping

import (
	"database/sql"

	"github.com/SscSPs/finance_manager/internal/core/domain"
	"github.com/SscSPs/finance_manager/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelFinancialRecord converts a domain FinancialRecord to a model FinancialRecord
func ToModelFinancialRecord(d domain.FinancialRecord) models.FinancialRecord {
	return models.FinancialRecord{
		ID:          d.ID,
		Type:        sql.NullString{String: string(d.Type), Valid: d.Type != ""},
		Date:        ToModelDate(d.Date),
		Category:    d.Category,
		Description: sql.NullString{String: d.Description, Valid: d.Description != ""},
		Amount:      d.Amount.InexactFloat64(),
		Verified:    sql.NullBool{Bool: d.Verified, Valid: true},
	}
}

// ToDomainFinancialRecord converts a model FinancialRecord to a domain FinancialRecord
func ToDomainFinancialRecord(m models.FinancialRecord) domain.FinancialRecord {
	return domain.FinancialRecord{
		ID:          m.ID,
		Type:        domain.RecordType(m.Type.String),
		Date:        ToDomainDate(m.Date),
		Category:    m.Category,
		Description: m.Description.String,
		Amount:      decimal.NewFromFloat(m.Amount),
		Verified:    m.Verified.Bool,
	}
}

// ToDomainFinancialRecordSlice converts model rows to domain FinancialRecords
func ToDomainFinancialRecordSlice(ms []models.FinancialRecord) []domain.FinancialRecord {
	ds := make([]domain.FinancialRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFinancialRecord(m)
	}
	return ds
}
