package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/finance_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_manager/internal/core/ports/services"
	"github.com/SscSPs/finance_manager/internal/dto"
)

type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read settings")
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.Settings, error) {
	settings := domain.Settings{
		CompanyName: strings.TrimSpace(req.CompanyName),
		LogoPath:    strings.TrimSpace(req.LogoPath),
		Address:     strings.TrimSpace(req.Address),
		TaxRate:     req.TaxRate,
	}
	if messages := settings.Validate(); len(messages) > 0 {
		return nil, s.Rejected(ctx, "settings", messages)
	}

	if err := s.settingsRepo.UpdateSettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "Failed to update settings")
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	s.LogInfo(ctx, "Settings updated")
	return s.GetSettings(ctx)
}
