package services

import (
	"context"

	"github.com/SscSPs/finance_manager/internal/core/domain"
)

// ExportService turns a named view of the data into a table
type ExportService interface {
	// Views lists the names accepted by Table.
	Views() []string

	// Table builds the rows of one view. An unknown view is a validation error.
	Table(ctx context.Context, view string) (*domain.Table, error)
}
