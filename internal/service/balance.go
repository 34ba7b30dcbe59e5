package service

import (
	"context"
	"fmt"

	"github.com/avc/storefront-bot/internal/domain"
	"go.uber.org/zap"
)

// BalanceService реализует domain.BalanceService
type BalanceService struct {
	ledgerRepo   domain.LedgerRepository
	settingsRepo domain.SettingsRepository
	notifier     domain.Notifier
	logger       *zap.Logger
}

// NewBalanceService создает новый BalanceService
func NewBalanceService(
	ledgerRepo domain.LedgerRepository,
	settingsRepo domain.SettingsRepository,
	notifier domain.Notifier,
	logger *zap.Logger,
) *BalanceService {
	return &BalanceService{
		ledgerRepo:   ledgerRepo,
		settingsRepo: settingsRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// GetBalance получает баланс пользователя, лениво создавая его
func (s *BalanceService) GetBalance(ctx context.Context, userID int64) (float64, error) {
	balance, err := s.ledgerRepo.GetBalance(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("balance service: failed to get balance for user %d: %w", userID, err)
	}

	return balance, nil
}

// AdjustBalance изменяет баланс пользователя на delta (ручная корректировка
// админом: зачисление депозита или списание). Пользователь уведомляется
// best-effort
func (s *BalanceService) AdjustBalance(ctx context.Context, userID int64, delta float64) (float64, error) {
	if delta == 0 {
		return 0, domain.ErrInvalidAmount
	}

	balance, err := s.ledgerRepo.AdjustBalance(ctx, userID, delta)
	if err != nil {
		return 0, fmt.Errorf("balance service: failed to adjust balance for user %d: %w", userID, err)
	}

	s.logger.Info("balance adjusted",
		zap.Int64("user_id", userID),
		zap.Float64("delta", delta),
		zap.Float64("balance", balance))

	text := fmt.Sprintf("Your balance was adjusted by %.2f. New balance: %.2f", delta, balance)
	if err := s.notifier.NotifyUser(ctx, userID, text); err != nil {
		s.logger.Warn("balance notification failed", zap.Int64("user_id", userID), zap.Error(err))
	}

	return balance, nil
}

// DeclareDeposit регистрирует заявку пользователя на пополнение.
// Зачисление выполняется админом вручную после сверки перевода
func (s *BalanceService) DeclareDeposit(ctx context.Context, userID int64, amount float64) (*domain.DepositIntent, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	wallet, err := s.settingsRepo.GetSetting(ctx, domain.SettingWalletAddress)
	if err != nil {
		return nil, fmt.Errorf("balance service: failed to get wallet address: %w", err)
	}

	currency, err := s.settingsRepo.GetSetting(ctx, domain.SettingCurrencySymbol)
	if err != nil {
		return nil, fmt.Errorf("balance service: failed to get currency symbol: %w", err)
	}

	text := fmt.Sprintf("User %d declared a deposit of %.2f %s", userID, amount, currency)
	if err := s.notifier.NotifyAdmin(ctx, text); err != nil {
		s.logger.Warn("deposit notification failed", zap.Int64("user_id", userID), zap.Error(err))
	}

	return &domain.DepositIntent{
		UserID:        userID,
		Amount:        amount,
		WalletAddress: wallet,
		Currency:      currency,
	}, nil
}
