package models

import "database/sql"

// Settings mirrors the singleton row of the settings table.
type Settings struct {
	ID             int64          `db:"id"`
	CompanyName    string         `db:"company_name"`
	LogoPath       sql.NullString `db:"logo_path"`
	Address        sql.NullString `db:"address"`
	TaxRate        float64        `db:"tax_rate"`
	InvoiceCounter sql.NullInt64  `db:"invoice_counter"`
}
