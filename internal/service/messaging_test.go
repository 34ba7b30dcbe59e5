package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/storefront-bot/internal/domain"
	domainmocks "github.com/avc/storefront-bot/internal/domain/mocks"
	"github.com/avc/storefront-bot/internal/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMessagingService_Suggest(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)

	t.Run("Success", func(t *testing.T) {
		settingsRepo := domainmocks.NewSettingsRepositoryMock(t)
		notifier := domainmocks.NewNotifierMock(t)
		svc := NewMessagingService(nil, settingsRepo, notifier, nil, newTestMetrics(), zap.NewNop())

		notifier.EXPECT().NotifyAdmin(mock.Anything, mock.Anything).Return(nil).Once()
		settingsRepo.EXPECT().GetSetting(mock.Anything, domain.SettingSuggestionThanks).
			Return("Thanks for the idea!", nil).Once()

		thanks, err := svc.Suggest(ctx, userID, "add gift cards")
		require.NoError(t, err)
		assert.Equal(t, "Thanks for the idea!", thanks)
	})

	t.Run("Empty text", func(t *testing.T) {
		svc := NewMessagingService(nil, nil, nil, nil, newTestMetrics(), zap.NewNop())

		_, err := svc.Suggest(ctx, userID, "  ")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Forwarding failure", func(t *testing.T) {
		notifier := domainmocks.NewNotifierMock(t)
		svc := NewMessagingService(nil, nil, notifier, nil, newTestMetrics(), zap.NewNop())

		notifier.EXPECT().NotifyAdmin(mock.Anything, mock.Anything).Return(errors.New("gateway down")).Once()

		_, err := svc.Suggest(ctx, userID, "add gift cards")
		assert.Error(t, err)
	})
}

func TestMessagingService_Broadcast(t *testing.T) {
	t.Run("Delivers to every user and reports summary", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		ledgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		notifier := domainmocks.NewNotifierMock(t)

		// Интервал уборки больше длительности теста, чтобы ticker не сработал
		pool := worker.NewPool(2, 10, orderRepo, newTestMetrics(), zap.NewNop(), time.Hour)
		pool.Start(ctx)
		defer func() {
			cancel()
			pool.Stop()
		}()

		svc := NewMessagingService(ledgerRepo, nil, notifier, pool, newTestMetrics(), zap.NewNop())

		ledgerRepo.EXPECT().GetAllUserIDs(mock.Anything).Return([]int64{1, 2, 3}, nil).Once()
		notifier.EXPECT().NotifyUser(mock.Anything, mock.Anything, "hello").Return(nil).Times(3)

		summaryDone := make(chan string, 1)
		notifier.EXPECT().NotifyAdmin(mock.Anything, mock.Anything).
			Run(func(_ context.Context, text string) {
				summaryDone <- text
			}).
			Return(nil).Once()

		queued, err := svc.Broadcast(ctx, "hello")
		require.NoError(t, err)
		assert.Equal(t, 3, queued)

		select {
		case summary := <-summaryDone:
			assert.Contains(t, summary, "3 sent")
			assert.Contains(t, summary, "0 failed")
		case <-time.After(3 * time.Second):
			t.Fatal("broadcast summary was not sent")
		}
	})

	t.Run("Failed recipient counted in summary", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		ledgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		notifier := domainmocks.NewNotifierMock(t)

		pool := worker.NewPool(2, 10, orderRepo, newTestMetrics(), zap.NewNop(), time.Hour)
		pool.Start(ctx)
		defer func() {
			cancel()
			pool.Stop()
		}()

		svc := NewMessagingService(ledgerRepo, nil, notifier, pool, newTestMetrics(), zap.NewNop())

		ledgerRepo.EXPECT().GetAllUserIDs(mock.Anything).Return([]int64{1, 2}, nil).Once()
		notifier.EXPECT().NotifyUser(mock.Anything, int64(1), "hello").Return(nil).Once()
		notifier.EXPECT().NotifyUser(mock.Anything, int64(2), "hello").Return(errors.New("blocked")).Once()

		summaryDone := make(chan string, 1)
		notifier.EXPECT().NotifyAdmin(mock.Anything, mock.Anything).
			Run(func(_ context.Context, text string) {
				summaryDone <- text
			}).
			Return(nil).Once()

		queued, err := svc.Broadcast(ctx, "hello")
		require.NoError(t, err)
		assert.Equal(t, 2, queued)

		select {
		case summary := <-summaryDone:
			assert.Contains(t, summary, "1 sent")
			assert.Contains(t, summary, "1 failed")
		case <-time.After(3 * time.Second):
			t.Fatal("broadcast summary was not sent")
		}
	})

	t.Run("Empty text", func(t *testing.T) {
		svc := NewMessagingService(nil, nil, nil, nil, newTestMetrics(), zap.NewNop())

		_, err := svc.Broadcast(context.Background(), " ")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestMessagingService_DirectMessage(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)

	t.Run("Success", func(t *testing.T) {
		notifier := domainmocks.NewNotifierMock(t)
		svc := NewMessagingService(nil, nil, notifier, nil, newTestMetrics(), zap.NewNop())

		notifier.EXPECT().NotifyUser(mock.Anything, userID, "hi").Return(nil).Once()

		assert.NoError(t, svc.DirectMessage(ctx, userID, "hi"))
	})

	t.Run("Empty text", func(t *testing.T) {
		svc := NewMessagingService(nil, nil, nil, nil, newTestMetrics(), zap.NewNop())

		assert.ErrorIs(t, svc.DirectMessage(ctx, userID, ""), domain.ErrInvalidInput)
	})

	t.Run("Gateway failure", func(t *testing.T) {
		notifier := domainmocks.NewNotifierMock(t)
		svc := NewMessagingService(nil, nil, notifier, nil, newTestMetrics(), zap.NewNop())

		notifier.EXPECT().NotifyUser(mock.Anything, userID, "hi").Return(errors.New("gateway down")).Once()

		assert.Error(t, svc.DirectMessage(ctx, userID, "hi"))
	})
}
