package services

import (
	"context"

	"github.com/SscSPs/finance_manager/internal/core/domain"
	"github.com/SscSPs/finance_manager/internal/dto"
)

// InvoiceService builds, validates and renders invoices
type InvoiceService interface {
	// GenerateInvoice computes the totals of an invoice and writes its document.
	GenerateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.GeneratedInvoice, error)
}

// InvoiceRenderer writes the document of a computed invoice and returns its path.
type InvoiceRenderer interface {
	Render(ctx context.Context, invoice domain.GeneratedInvoice) (string, error)
}
