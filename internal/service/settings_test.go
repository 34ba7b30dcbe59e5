package service

import (
	"context"
	"testing"

	"github.com/avc/storefront-bot/internal/domain"
	domainmocks "github.com/avc/storefront-bot/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_GetSettings(t *testing.T) {
	ctx := context.Background()

	settingsRepo := domainmocks.NewSettingsRepositoryMock(t)
	svc := NewSettingsService(settingsRepo)

	settings := &domain.Settings{CancellationMinutes: 30, CurrencySymbol: "USDT"}
	settingsRepo.EXPECT().GetSettings(mock.Anything).Return(settings, nil).Once()

	result, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings, result)
}

func TestSettingsService_UpdateSetting(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		settingsRepo := domainmocks.NewSettingsRepositoryMock(t)
		svc := NewSettingsService(settingsRepo)

		settingsRepo.EXPECT().SetSetting(mock.Anything, domain.SettingCurrencySymbol, "EUR").Return(nil).Once()

		assert.NoError(t, svc.UpdateSetting(ctx, domain.SettingCurrencySymbol, "EUR"))
	})

	t.Run("Unknown key", func(t *testing.T) {
		settingsRepo := domainmocks.NewSettingsRepositoryMock(t)
		svc := NewSettingsService(settingsRepo)

		err := svc.UpdateSetting(ctx, domain.SettingKey("theme_color"), "red")
		assert.ErrorIs(t, err, domain.ErrUnknownSettingKey)
	})

	t.Run("Cancellation minutes must be a positive integer", func(t *testing.T) {
		settingsRepo := domainmocks.NewSettingsRepositoryMock(t)
		svc := NewSettingsService(settingsRepo)

		for _, value := range []string{"abc", "0", "-5", "1.5", ""} {
			err := svc.UpdateSetting(ctx, domain.SettingCancellationMinutes, value)
			assert.ErrorIs(t, err, domain.ErrInvalidSettingValue, "value %q", value)
		}
	})

	t.Run("Valid cancellation minutes", func(t *testing.T) {
		settingsRepo := domainmocks.NewSettingsRepositoryMock(t)
		svc := NewSettingsService(settingsRepo)

		settingsRepo.EXPECT().SetSetting(mock.Anything, domain.SettingCancellationMinutes, "45").Return(nil).Once()

		assert.NoError(t, svc.UpdateSetting(ctx, domain.SettingCancellationMinutes, "45"))
	})
}
