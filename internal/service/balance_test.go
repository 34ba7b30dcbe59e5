package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/avc/storefront-bot/internal/domain"
	domainmocks "github.com/avc/storefront-bot/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBalanceService_GetBalance(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)

	t.Run("Success", func(t *testing.T) {
		ledgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		svc := NewBalanceService(ledgerRepo, nil, nil, zap.NewNop())

		ledgerRepo.EXPECT().GetBalance(mock.Anything, userID).Return(100.5, nil).Once()

		balance, err := svc.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 100.5, balance)
	})

	t.Run("Unknown user starts at zero", func(t *testing.T) {
		ledgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		svc := NewBalanceService(ledgerRepo, nil, nil, zap.NewNop())

		ledgerRepo.EXPECT().GetBalance(mock.Anything, userID).Return(0.0, nil).Once()

		balance, err := svc.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 0.0, balance)
	})
}

func TestBalanceService_AdjustBalance(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)

	t.Run("Credit", func(t *testing.T) {
		ledgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		notifier := domainmocks.NewNotifierMock(t)
		svc := NewBalanceService(ledgerRepo, nil, notifier, zap.NewNop())

		ledgerRepo.EXPECT().AdjustBalance(mock.Anything, userID, 50.0).Return(150.0, nil).Once()
		notifier.EXPECT().NotifyUser(mock.Anything, userID, mock.Anything).Return(nil).Once()

		balance, err := svc.AdjustBalance(ctx, userID, 50.0)
		require.NoError(t, err)
		assert.Equal(t, 150.0, balance)
	})

	t.Run("Debit", func(t *testing.T) {
		ledgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		notifier := domainmocks.NewNotifierMock(t)
		svc := NewBalanceService(ledgerRepo, nil, notifier, zap.NewNop())

		ledgerRepo.EXPECT().AdjustBalance(mock.Anything, userID, -30.0).Return(70.0, nil).Once()
		notifier.EXPECT().NotifyUser(mock.Anything, userID, mock.Anything).Return(nil).Once()

		balance, err := svc.AdjustBalance(ctx, userID, -30.0)
		require.NoError(t, err)
		assert.Equal(t, 70.0, balance)
	})

	t.Run("Zero delta rejected", func(t *testing.T) {
		ledgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		svc := NewBalanceService(ledgerRepo, nil, nil, zap.NewNop())

		_, err := svc.AdjustBalance(ctx, userID, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("Notification failure does not fail adjustment", func(t *testing.T) {
		ledgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		notifier := domainmocks.NewNotifierMock(t)
		svc := NewBalanceService(ledgerRepo, nil, notifier, zap.NewNop())

		ledgerRepo.EXPECT().AdjustBalance(mock.Anything, userID, 50.0).Return(150.0, nil).Once()
		notifier.EXPECT().NotifyUser(mock.Anything, userID, mock.Anything).Return(errors.New("gateway down")).Once()

		balance, err := svc.AdjustBalance(ctx, userID, 50.0)
		require.NoError(t, err)
		assert.Equal(t, 150.0, balance)
	})
}

// fakeLedger хранит балансы в памяти для сквозных проверок арифметики
type fakeLedger struct {
	mu       sync.Mutex
	balances map[int64]float64
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{balances: make(map[int64]float64)}
}

func (f *fakeLedger) GetBalance(_ context.Context, userID int64) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balances[userID], nil
}

func (f *fakeLedger) AdjustBalance(_ context.Context, userID int64, delta float64) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balances[userID] += delta
	return f.balances[userID], nil
}

func (f *fakeLedger) GetAllUserIDs(_ context.Context) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]int64, 0, len(f.balances))
	for id := range f.balances {
		ids = append(ids, id)
	}
	return ids, nil
}

func TestBalanceService_AdjustRoundTrip(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)

	ledger := newFakeLedger()
	ledger.balances[userID] = 100.0

	notifier := domainmocks.NewNotifierMock(t)
	notifier.EXPECT().NotifyUser(mock.Anything, userID, mock.Anything).Return(nil).Times(2)

	svc := NewBalanceService(ledger, nil, notifier, zap.NewNop())

	_, err := svc.AdjustBalance(ctx, userID, 25.0)
	require.NoError(t, err)

	balance, err := svc.AdjustBalance(ctx, userID, -25.0)
	require.NoError(t, err)
	assert.Equal(t, 100.0, balance)

	balance, err = svc.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, balance)
}

func TestBalanceService_DeclareDeposit(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)

	t.Run("Success", func(t *testing.T) {
		settingsRepo := domainmocks.NewSettingsRepositoryMock(t)
		notifier := domainmocks.NewNotifierMock(t)
		svc := NewBalanceService(nil, settingsRepo, notifier, zap.NewNop())

		settingsRepo.EXPECT().GetSetting(mock.Anything, domain.SettingWalletAddress).Return("TXYZabc123", nil).Once()
		settingsRepo.EXPECT().GetSetting(mock.Anything, domain.SettingCurrencySymbol).Return("USDT", nil).Once()
		notifier.EXPECT().NotifyAdmin(mock.Anything, mock.Anything).Return(nil).Once()

		intent, err := svc.DeclareDeposit(ctx, userID, 25.0)
		require.NoError(t, err)
		assert.Equal(t, userID, intent.UserID)
		assert.Equal(t, 25.0, intent.Amount)
		assert.Equal(t, "TXYZabc123", intent.WalletAddress)
		assert.Equal(t, "USDT", intent.Currency)
	})

	t.Run("Non-positive amount rejected", func(t *testing.T) {
		svc := NewBalanceService(nil, nil, nil, zap.NewNop())

		_, err := svc.DeclareDeposit(ctx, userID, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)

		_, err = svc.DeclareDeposit(ctx, userID, -5)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}
