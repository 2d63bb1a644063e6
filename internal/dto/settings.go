package dto

import (
	"github.com/SscSPs/finance_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest replaces company identity and the default tax rate.
type UpdateSettingsRequest struct {
	CompanyName string          `json:"companyName" example:"My Business"`
	LogoPath    string          `json:"logoPath" example:"assets/logo.png"`
	Address     string          `json:"address"`
	TaxRate     decimal.Decimal `json:"taxRate" swaggertype:"string" example:"0.10"`
}

// SettingsResponse defines the data returned for the settings.
type SettingsResponse struct {
	CompanyName    string          `json:"companyName"`
	LogoPath       string          `json:"logoPath"`
	Address        string          `json:"address"`
	TaxRate        decimal.Decimal `json:"taxRate" swaggertype:"string"`
	InvoiceCounter int64           `json:"invoiceCounter"`
}

// ToSettingsResponse converts domain.Settings to SettingsResponse DTO
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{
		CompanyName:    s.CompanyName,
		LogoPath:       s.LogoPath,
		Address:        s.Address,
		TaxRate:        s.TaxRate,
		InvoiceCounter: s.InvoiceCounter,
	}
}
