package models

import "database/sql"

// DateLayout is how ledger dates are stored in TEXT columns.
const DateLayout = "2006-01-02"

// Stock mirrors a row of the stock table.
type Stock struct {
	ID              int64          `db:"id"`
	Date            string         `db:"date"`
	TransactionType sql.NullString `db:"transaction_type"`
	VendorName      string         `db:"vendor_name"`
	ItemName        string         `db:"item_name"`
	Quantity        float64        `db:"quantity"`
	UnitPrice       float64        `db:"unit_price"`
	TotalPrice      float64        `db:"total_price"`
}
