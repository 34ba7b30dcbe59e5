package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/avc/storefront-bot/internal/domain"
	"github.com/avc/storefront-bot/internal/metrics"
	"github.com/avc/storefront-bot/internal/worker"
	"go.uber.org/zap"
)

// MessagingService реализует domain.MessagingService: предложения
// пользователей, рассылки и прямые сообщения
type MessagingService struct {
	ledgerRepo   domain.LedgerRepository
	settingsRepo domain.SettingsRepository
	notifier     domain.Notifier
	pool         *worker.Pool
	metrics      *metrics.StoreMetrics
	logger       *zap.Logger
}

// NewMessagingService создает новый MessagingService
func NewMessagingService(
	ledgerRepo domain.LedgerRepository,
	settingsRepo domain.SettingsRepository,
	notifier domain.Notifier,
	pool *worker.Pool,
	storeMetrics *metrics.StoreMetrics,
	logger *zap.Logger,
) *MessagingService {
	return &MessagingService{
		ledgerRepo:   ledgerRepo,
		settingsRepo: settingsRepo,
		notifier:     notifier,
		pool:         pool,
		metrics:      storeMetrics,
		logger:       logger,
	}
}

// Suggest пересылает предложение пользователя админу и возвращает
// текст благодарности из настроек
func (s *MessagingService) Suggest(ctx context.Context, userID int64, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrInvalidInput
	}

	if err := s.notifier.NotifyAdmin(ctx, fmt.Sprintf("Suggestion from user %d: %s", userID, text)); err != nil {
		s.metrics.RecordNotifyFailure()
		return "", fmt.Errorf("messaging service: failed to forward suggestion: %w", err)
	}

	thanks, err := s.settingsRepo.GetSetting(ctx, domain.SettingSuggestionThanks)
	if err != nil {
		return "", fmt.Errorf("messaging service: failed to get suggestion thanks: %w", err)
	}

	return thanks, nil
}

// Broadcast ставит в очередь рассылку всем известным пользователям
// и возвращает количество поставленных заданий. Сводка отправляется
// админу после завершения всей партии
func (s *MessagingService) Broadcast(ctx context.Context, text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, domain.ErrInvalidInput
	}

	userIDs, err := s.ledgerRepo.GetAllUserIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("messaging service: failed to get user ids: %w", err)
	}

	var (
		wg     sync.WaitGroup
		sent   atomic.Int64
		failed atomic.Int64
	)

	queued := 0
	for _, userID := range userIDs {
		id := userID
		wg.Add(1)
		err := s.pool.Submit(func(jobCtx context.Context) {
			defer wg.Done()
			if err := s.notifier.NotifyUser(jobCtx, id, text); err != nil {
				failed.Add(1)
				s.metrics.RecordNotifyFailure()
				s.logger.Warn("broadcast message failed", zap.Int64("user_id", id), zap.Error(err))
				return
			}
			sent.Add(1)
			s.metrics.RecordBroadcastMessage()
		})
		if err != nil {
			wg.Done()
			failed.Add(1)
			s.logger.Warn("broadcast job rejected", zap.Int64("user_id", id), zap.Error(err))
			continue
		}
		queued++
	}

	// Сводка после того, как партия разойдется по воркерам
	go func() {
		wg.Wait()
		summary := fmt.Sprintf("Broadcast finished: %d sent, %d failed", sent.Load(), failed.Load())
		if err := s.notifier.NotifyAdmin(context.WithoutCancel(ctx), summary); err != nil {
			s.logger.Warn("broadcast summary failed", zap.Error(err))
		}
	}()

	s.logger.Info("broadcast queued", zap.Int("users", len(userIDs)), zap.Int("queued", queued))

	return queued, nil
}

// DirectMessage отправляет сообщение одному пользователю
func (s *MessagingService) DirectMessage(ctx context.Context, userID int64, text string) error {
	if strings.TrimSpace(text) == "" {
		return domain.ErrInvalidInput
	}

	if err := s.notifier.NotifyUser(ctx, userID, text); err != nil {
		s.metrics.RecordNotifyFailure()
		return fmt.Errorf("messaging service: failed to send direct message to user %d: %w", userID, err)
	}

	return nil
}
