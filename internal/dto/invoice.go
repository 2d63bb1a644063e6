package dto

import (
	"github.com/SscSPs/finance_manager/internal/core/domain"
	"github.com/SscSPs/finance_manager/internal/utils"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one explicit invoice row.
type LineItemRequest struct {
	Description string          `json:"description" example:"Widget"`
	Quantity    decimal.Decimal `json:"quantity" swaggertype:"string" example:"3"`
	Price       decimal.Decimal `json:"price" swaggertype:"string" example:"10.00"`
}

// CreateInvoiceRequest defines the data needed to generate an invoice.
// Items are taken from Items followed by the stock rows named in StockIDs.
type CreateInvoiceRequest struct {
	Number          string            `json:"number"`                    // allocated when empty
	Date            string            `json:"date" example:"2024-03-01"` // today when empty
	CustomerName    string            `json:"customerName"`
	CustomerAddress string            `json:"customerAddress"`
	Items           []LineItemRequest `json:"items"`
	StockIDs        []int64           `json:"stockIds"`
	TaxRate         *decimal.Decimal  `json:"taxRate,omitempty" swaggertype:"string"` // settings tax rate when omitted
}

// LineItemResponse is one rendered invoice row.
type LineItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity" swaggertype:"string"`
	Price       decimal.Decimal `json:"price" swaggertype:"string"`
	Total       decimal.Decimal `json:"total" swaggertype:"string"`
}

// InvoiceResponse defines the data returned for a generated invoice.
type InvoiceResponse struct {
	Number          string             `json:"number"`
	Date            string             `json:"date"`
	CustomerName    string             `json:"customerName"`
	CustomerAddress string             `json:"customerAddress"`
	Items           []LineItemResponse `json:"items"`
	TaxRate         decimal.Decimal    `json:"taxRate" swaggertype:"string"`
	Subtotal        decimal.Decimal    `json:"subtotal" swaggertype:"string"`
	Tax             decimal.Decimal    `json:"tax" swaggertype:"string"`
	Total           decimal.Decimal    `json:"total" swaggertype:"string"`
	TotalDisplay    string             `json:"totalDisplay"`
	FilePath        string             `json:"filePath"`
}

// ToInvoiceResponse converts a generated invoice, formatting the total in currencyCode
func ToInvoiceResponse(inv *domain.GeneratedInvoice, currencyCode string) InvoiceResponse {
	items := make([]LineItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = LineItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Total:       item.Total(),
		}
	}
	return InvoiceResponse{
		Number:          inv.Number,
		Date:            formatDate(inv.Date),
		CustomerName:    inv.CustomerName,
		CustomerAddress: inv.CustomerAddress,
		Items:           items,
		TaxRate:         inv.TaxRate,
		Subtotal:        inv.Subtotal,
		Tax:             inv.Tax,
		Total:           inv.Total,
		TotalDisplay:    utils.FormatMoney(inv.Total, currencyCode),
		FilePath:        inv.FilePath,
	}
}
