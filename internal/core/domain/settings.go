package domain

import "github.com/shopspring/decimal"

// SettingsID is the fixed primary key of the singleton settings row.
const SettingsID = 1

// Settings holds company identity, the default tax rate and the invoice counter.
type Settings struct {
	CompanyName    string          `json:"companyName" validate:"notblank"`
	LogoPath       string          `json:"logoPath"`
	Address        string          `json:"address"`
	TaxRate        decimal.Decimal `json:"taxRate" validate:"gte=0"`
	InvoiceCounter int64           `json:"invoiceCounter"` // next number to hand out
}

var settingsMessages = map[string]string{
	"CompanyName.notblank": "Company name cannot be empty",
	"TaxRate.gte":          "Tax rate cannot be negative",
}

// Validate returns every field violation; an empty slice means the settings can be stored.
func (s Settings) Validate() []string {
	return collectMessages(s, settingsMessages)
}

// DefaultSettings mirrors the column defaults of the settings table.
func DefaultSettings() Settings {
	return Settings{
		CompanyName:    "My Business",
		LogoPath:       "assets/logo.png",
		TaxRate:        decimal.Zero,
		InvoiceCounter: 1,
	}
}
