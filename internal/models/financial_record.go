package models

import "database/sql"

// FinancialRecord mirrors a row of the financial_records table.
type FinancialRecord struct {
	ID          int64          `db:"id"`
	Type        sql.NullString `db:"type"`
	Date        string         `db:"date"`
	Category    string         `db:"category"`
	Description sql.NullString `db:"description"` // Nullable
	Amount      float64        `db:"amount"`
	Verified    sql.NullBool   `db:"verified"`
}
