package domain

// Category groups ledger entries of one record type. (Type, Name) is unique.
type Category struct {
	ID   int64      `json:"id"`
	Type RecordType `json:"type" validate:"oneof=income expense"`
	Name string     `json:"name" validate:"notblank"`
}

var categoryMessages = map[string]string{
	"Type.oneof":    "Category type must be 'income' or 'expense'",
	"Name.notblank": "Category name cannot be empty",
}

// Validate returns every field violation; an empty slice means the category can be stored.
func (c Category) Validate() []string {
	return collectMessages(c, categoryMessages)
}

// DefaultCategories are seeded on initialization. Re-seeding is a no-op.
var DefaultCategories = []Category{
	{Type: Income, Name: "Sales"},
	{Type: Income, Name: "Services"},
	{Type: Expense, Name: "Supplies"},
	{Type: Expense, Name: "Rent"},
}
