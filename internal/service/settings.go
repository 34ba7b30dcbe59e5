package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/avc/storefront-bot/internal/domain"
)

// SettingsService реализует domain.SettingsService
type SettingsService struct {
	settingsRepo domain.SettingsRepository
}

// NewSettingsService создает новый SettingsService
func NewSettingsService(settingsRepo domain.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings возвращает типизированный снимок всех настроек магазина
func (s *SettingsService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("settings service: failed to get settings: %w", err)
	}

	return settings, nil
}

// UpdateSetting записывает значение настройки. Ключи вне закрытого
// перечисления отклоняются
func (s *SettingsService) UpdateSetting(ctx context.Context, key domain.SettingKey, value string) error {
	if !isKnownSettingKey(key) {
		return domain.ErrUnknownSettingKey
	}

	if key == domain.SettingCancellationMinutes {
		minutes, err := strconv.Atoi(value)
		if err != nil || minutes <= 0 {
			return domain.ErrInvalidSettingValue
		}
	}

	if err := s.settingsRepo.SetSetting(ctx, key, value); err != nil {
		return fmt.Errorf("settings service: failed to update setting %q: %w", key, err)
	}

	return nil
}

func isKnownSettingKey(key domain.SettingKey) bool {
	for _, known := range domain.KnownSettingKeys {
		if key == known {
			return true
		}
	}
	return false
}
