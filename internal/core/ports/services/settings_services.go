package services

import (
	"context"

	"github.com/SscSPs/finance_manager/internal/core/domain"
	"github.com/SscSPs/finance_manager/internal/dto"
)

// SettingsSvcFacade defines the operations on the company settings
type SettingsSvcFacade interface {
	// GetSettings retrieves the current settings.
	GetSettings(ctx context.Context) (*domain.Settings, error)

	// UpdateSettings validates and stores new settings and returns the stored values.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.Settings, error)
}
