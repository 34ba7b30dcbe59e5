package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/avc/storefront-bot/internal/domain"
	"github.com/jackc/pgx/v5"
)

// SettingsRepository реализует domain.SettingsRepository
type SettingsRepository struct {
	db DBTX
}

// NewSettingsRepository создает новый SettingsRepository
func NewSettingsRepository(db DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSetting получает значение настройки по ключу
func (r *SettingsRepository) GetSetting(ctx context.Context, key domain.SettingKey) (string, error) {
	var value string

	err := r.db.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrUnknownSettingKey
		}
		return "", fmt.Errorf("repository: failed to get setting %q: %w", key, err)
	}

	return value, nil
}

// SetSetting записывает значение настройки
func (r *SettingsRepository) SetSetting(ctx context.Context, key domain.SettingKey, value string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO settings (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to set setting %q: %w", key, err)
	}

	return nil
}

// GetSettings собирает типизированный снимок всех настроек
func (r *SettingsRepository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	rows, err := r.db.Query(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get settings: %w", err)
	}
	defer rows.Close()

	settings := &domain.Settings{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("repository: failed to scan setting: %w", err)
		}

		switch domain.SettingKey(key) {
		case domain.SettingWalletAddress:
			settings.WalletAddress = value
		case domain.SettingSupportContact:
			settings.SupportContact = value
		case domain.SettingCurrencySymbol:
			settings.CurrencySymbol = value
		case domain.SettingWelcomeMessage:
			settings.WelcomeMessage = value
		case domain.SettingAdminWelcomeMessage:
			settings.AdminWelcomeMessage = value
		case domain.SettingCancellationMinutes:
			minutes, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("repository: invalid cancellation_minutes %q: %w", value, err)
			}
			settings.CancellationMinutes = minutes
		case domain.SettingFAQText:
			settings.FAQText = value
		case domain.SettingSuggestionThanks:
			settings.SuggestionThanks = value
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating settings: %w", err)
	}

	return settings, nil
}
