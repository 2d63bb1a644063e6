package repositories

import (
	"context"

	"github.com/SscSPs/finance_manager/internal/core/domain"
)

// SettingsReader defines read operations for the settings singleton
type SettingsReader interface {
	// GetSettings retrieves the settings row.
	GetSettings(ctx context.Context) (*domain.Settings, error)
}

// SettingsWriter defines write operations for the settings singleton
type SettingsWriter interface {
	// UpdateSettings stores company identity and tax rate. The invoice counter is left untouched.
	UpdateSettings(ctx context.Context, settings domain.Settings) error

	// AllocateInvoiceNumber returns the current invoice counter and increments
	// it in the same transaction.
	AllocateInvoiceNumber(ctx context.Context) (int64, error)

	// ReleaseInvoiceNumber hands n back if it is still the latest allocation.
	// It reports whether the counter moved back.
	ReleaseInvoiceNumber(ctx context.Context, n int64) (bool, error)
}

// SettingsRepositoryFacade combines all settings repository interfaces
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
