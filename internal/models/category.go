package models

import "database/sql"

// Category mirrors a row of the categories table.
type Category struct {
	ID   int64          `db:"id"`
	Type sql.NullString `db:"type"`
	Name string         `db:"name"`
}
