package mapping

import (
	"database/sql"

	"github.com/SscSPs/finance_manager/internal/core/domain"
	"github.com/SscSPs/finance_manager/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelSettings converts domain Settings to the singleton model row
func ToModelSettings(d domain.Settings) models.Settings {
	return models.Settings{
		ID:             domain.SettingsID,
		CompanyName:    d.CompanyName,
		LogoPath:       sql.NullString{String: d.LogoPath, Valid: true},
		Address:        sql.NullString{String: d.Address, Valid: true},
		TaxRate:        d.TaxRate.InexactFloat64(),
		InvoiceCounter: sql.NullInt64{Int64: d.InvoiceCounter, Valid: true},
	}
}

// ToDomainSettings converts the singleton model row to domain Settings
func ToDomainSettings(m models.Settings) domain.Settings {
	counter := m.InvoiceCounter.Int64
	if !m.InvoiceCounter.Valid {
		counter = 1
	}
	return domain.Settings{
		CompanyName:    m.CompanyName,
		LogoPath:       m.LogoPath.String,
		Address:        m.Address.String,
		TaxRate:        decimal.NewFromFloat(m.TaxRate),
		InvoiceCounter: counter,
	}
}

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		ID:   d.ID,
		Type: sql.NullString{String: string(d.Type), Valid: d.Type != ""},
		Name: d.Name,
	}
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		ID:   m.ID,
		Type: domain.RecordType(m.Type.String),
		Name: m.Name,
	}
}
