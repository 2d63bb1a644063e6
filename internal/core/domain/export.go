package domain

// Table is a tabular view of stored data ready to be written out.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}
