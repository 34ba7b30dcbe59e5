package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/avc/storefront-bot/internal/domain"
	domainmocks "github.com/avc/storefront-bot/internal/domain/mocks"
	"github.com/avc/storefront-bot/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMetrics() *metrics.StoreMetrics {
	return metrics.NewStoreMetricsWithRegisterer(prometheus.NewRegistry())
}

func TestStoreService_Purchase(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)
	productID := int64(7)
	product := &domain.Product{ID: productID, Name: "Premium Pack", Price: 40.0}

	t.Run("Success", func(t *testing.T) {
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		productRepo := domainmocks.NewProductRepositoryMock(t)
		ledgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		settingsRepo := domainmocks.NewSettingsRepositoryMock(t)
		notifier := domainmocks.NewNotifierMock(t)
		svc := NewStoreService(orderRepo, productRepo, ledgerRepo, settingsRepo, notifier, newTestMetrics(), zap.NewNop(), true)

		order := &domain.Order{ID: 1, UserID: userID, ProductName: product.Name, Price: product.Price,
			Status: domain.OrderStatusCompleted, DeliveryStatus: domain.DeliveryStatusPending}

		productRepo.EXPECT().GetProductByID(mock.Anything, productID).Return(product, nil).Once()
		ledgerRepo.EXPECT().GetBalance(mock.Anything, userID).Return(100.0, nil).Once()
		settingsRepo.EXPECT().GetSetting(mock.Anything, domain.SettingCancellationMinutes).Return("30", nil).Once()
		orderRepo.EXPECT().CreatePurchase(mock.Anything, userID, product.Name, product.Price, mock.Anything).
			Run(func(_ context.Context, _ int64, _ string, _ float64, expiresAt time.Time) {
				// Окно отмены должно закрываться примерно через 30 минут
				assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)
			}).
			Return(order, 60.0, nil).Once()
		notifier.EXPECT().NotifyAdmin(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := svc.Purchase(ctx, userID, productID)
		require.NoError(t, err)
		assert.Equal(t, order, result.Order)
		assert.Equal(t, 60.0, result.NewBalance)
	})

	t.Run("Product not found", func(t *testing.T) {
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		productRepo := domainmocks.NewProductRepositoryMock(t)
		ledgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		settingsRepo := domainmocks.NewSettingsRepositoryMock(t)
		notifier := domainmocks.NewNotifierMock(t)
		svc := NewStoreService(orderRepo, productRepo, ledgerRepo, settingsRepo, notifier, newTestMetrics(), zap.NewNop(), true)

		productRepo.EXPECT().GetProductByID(mock.Anything, productID).Return(nil, domain.ErrProductNotFound).Once()

		result, err := svc.Purchase(ctx, userID, productID)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		assert.Nil(t, result)
	})

	t.Run("Insufficient funds - one unit short, no mutation", func(t *testing.T) {
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		productRepo := domainmocks.NewProductRepositoryMock(t)
		ledgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		settingsRepo := domainmocks.NewSettingsRepositoryMock(t)
		notifier := domainmocks.NewNotifierMock(t)
		svc := NewStoreService(orderRepo, productRepo, ledgerRepo, settingsRepo, notifier, newTestMetrics(), zap.NewNop(), true)

		productRepo.EXPECT().GetProductByID(mock.Anything, productID).Return(product, nil).Once()
		ledgerRepo.EXPECT().GetBalance(mock.Anything, userID).Return(39.0, nil).Once()
		// CreatePurchase не вызывается: покупка отклонена до транзакции

		result, err := svc.Purchase(ctx, userID, productID)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Nil(t, result)
	})

	t.Run("Balance exactly equals price", func(t *testing.T) {
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		productRepo := domainmocks.NewProductRepositoryMock(t)
		ledgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		settingsRepo := domainmocks.NewSettingsRepositoryMock(t)
		notifier := domainmocks.NewNotifierMock(t)
		svc := NewStoreService(orderRepo, productRepo, ledgerRepo, settingsRepo, notifier, newTestMetrics(), zap.NewNop(), true)

		order := &domain.Order{ID: 2, UserID: userID, ProductName: product.Name, Price: product.Price,
			Status: domain.OrderStatusCompleted, DeliveryStatus: domain.DeliveryStatusPending}

		productRepo.EXPECT().GetProductByID(mock.Anything, productID).Return(product, nil).Once()
		ledgerRepo.EXPECT().GetBalance(mock.Anything, userID).Return(40.0, nil).Once()
		settingsRepo.EXPECT().GetSetting(mock.Anything, domain.SettingCancellationMinutes).Return("30", nil).Once()
		orderRepo.EXPECT().CreatePurchase(mock.Anything, userID, product.Name, product.Price, mock.Anything).
			Return(order, 0.0, nil).Once()
		notifier.EXPECT().NotifyAdmin(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := svc.Purchase(ctx, userID, productID)
		require.NoError(t, err)
		assert.Equal(t, 0.0, result.NewBalance)
	})

	t.Run("Lost race inside transaction", func(t *testing.T) {
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		productRepo := domainmocks.NewProductRepositoryMock(t)
		ledgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		settingsRepo := domainmocks.NewSettingsRepositoryMock(t)
		notifier := domainmocks.NewNotifierMock(t)
		svc := NewStoreService(orderRepo, productRepo, ledgerRepo, settingsRepo, notifier, newTestMetrics(), zap.NewNop(), true)

		productRepo.EXPECT().GetProductByID(mock.Anything, productID).Return(product, nil).Once()
		ledgerRepo.EXPECT().GetBalance(mock.Anything, userID).Return(100.0, nil).Once()
		settingsRepo.EXPECT().GetSetting(mock.Anything, domain.SettingCancellationMinutes).Return("30", nil).Once()
		orderRepo.EXPECT().CreatePurchase(mock.Anything, userID, product.Name, product.Price, mock.Anything).
			Return(nil, 0.0, domain.ErrInsufficientFunds).Once()

		result, err := svc.Purchase(ctx, userID, productID)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Nil(t, result)
	})

	t.Run("Admin notification failure does not fail purchase", func(t *testing.T) {
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		productRepo := domainmocks.NewProductRepositoryMock(t)
		ledgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		settingsRepo := domainmocks.NewSettingsRepositoryMock(t)
		notifier := domainmocks.NewNotifierMock(t)
		svc := NewStoreService(orderRepo, productRepo, ledgerRepo, settingsRepo, notifier, newTestMetrics(), zap.NewNop(), true)

		order := &domain.Order{ID: 3, UserID: userID, ProductName: product.Name, Price: product.Price}

		productRepo.EXPECT().GetProductByID(mock.Anything, productID).Return(product, nil).Once()
		ledgerRepo.EXPECT().GetBalance(mock.Anything, userID).Return(100.0, nil).Once()
		settingsRepo.EXPECT().GetSetting(mock.Anything, domain.SettingCancellationMinutes).Return("30", nil).Once()
		orderRepo.EXPECT().CreatePurchase(mock.Anything, userID, product.Name, product.Price, mock.Anything).
			Return(order, 60.0, nil).Once()
		notifier.EXPECT().NotifyAdmin(mock.Anything, mock.Anything).Return(errors.New("gateway down")).Once()

		result, err := svc.Purchase(ctx, userID, productID)
		require.NoError(t, err)
		assert.NotNil(t, result)
	})
}

func TestStoreService_Cancel(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)
	orderID := int64(7)

	t.Run("Success - refund equals price", func(t *testing.T) {
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		notifier := domainmocks.NewNotifierMock(t)
		svc := NewStoreService(orderRepo, nil, nil, nil, notifier, newTestMetrics(), zap.NewNop(), true)

		cancelled := &domain.Order{ID: orderID, UserID: userID, ProductName: "Premium Pack", Price: 40.0,
			Status: domain.OrderStatusCancelled, DeliveryStatus: domain.DeliveryStatusNone}

		orderRepo.EXPECT().CancelOrder(mock.Anything, orderID, userID, mock.Anything).Return(cancelled, nil).Once()
		notifier.EXPECT().NotifyAdmin(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := svc.Cancel(ctx, orderID, userID)
		require.NoError(t, err)
		assert.Equal(t, 40.0, result.Refunded)
		assert.Equal(t, domain.OrderStatusCancelled, result.Order.Status)
	})

	t.Run("Not cancellable", func(t *testing.T) {
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		notifier := domainmocks.NewNotifierMock(t)
		svc := NewStoreService(orderRepo, nil, nil, nil, notifier, newTestMetrics(), zap.NewNop(), true)

		orderRepo.EXPECT().CancelOrder(mock.Anything, orderID, userID, mock.Anything).
			Return(nil, domain.ErrNotCancellable).Once()

		result, err := svc.Cancel(ctx, orderID, userID)
		assert.ErrorIs(t, err, domain.ErrNotCancellable)
		assert.Nil(t, result)
	})
}

func TestStoreService_Deliver(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)
	orderID := int64(7)
	payload := "code: ABCD-1234"

	delivered := &domain.Order{ID: orderID, UserID: userID, ProductName: "Premium Pack", Price: 40.0,
		Status: domain.OrderStatusCompleted, DeliveryStatus: domain.DeliveryStatusDelivered}

	t.Run("Success - first delivery", func(t *testing.T) {
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		notifier := domainmocks.NewNotifierMock(t)
		svc := NewStoreService(orderRepo, nil, nil, nil, notifier, newTestMetrics(), zap.NewNop(), true)

		orderRepo.EXPECT().MarkDelivered(mock.Anything, orderID, true).Return(delivered, true, nil).Once()
		notifier.EXPECT().SendPayload(mock.Anything, userID, payload).Return(nil).Once()

		result, err := svc.Deliver(ctx, orderID, payload)
		require.NoError(t, err)
		assert.False(t, result.Redelivered)
		assert.Equal(t, domain.DeliveryStatusDelivered, result.Order.DeliveryStatus)
	})

	t.Run("Cancelled order loses the race", func(t *testing.T) {
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		notifier := domainmocks.NewNotifierMock(t)
		svc := NewStoreService(orderRepo, nil, nil, nil, notifier, newTestMetrics(), zap.NewNop(), true)

		orderRepo.EXPECT().MarkDelivered(mock.Anything, orderID, true).
			Return(nil, false, domain.ErrOrderCancelled).Once()

		result, err := svc.Deliver(ctx, orderID, payload)
		assert.ErrorIs(t, err, domain.ErrOrderCancelled)
		assert.Nil(t, result)
	})

	t.Run("Unreachable target keeps delivered status", func(t *testing.T) {
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		notifier := domainmocks.NewNotifierMock(t)
		svc := NewStoreService(orderRepo, nil, nil, nil, notifier, newTestMetrics(), zap.NewNop(), true)

		orderRepo.EXPECT().MarkDelivered(mock.Anything, orderID, true).Return(delivered, true, nil).Once()
		notifier.EXPECT().SendPayload(mock.Anything, userID, payload).Return(errors.New("gateway down")).Once()

		result, err := svc.Deliver(ctx, orderID, payload)
		assert.ErrorIs(t, err, domain.ErrDeliveryUnreachable)
		require.NotNil(t, result)
		assert.Equal(t, domain.DeliveryStatusDelivered, result.Order.DeliveryStatus)
	})

	t.Run("Redelivery", func(t *testing.T) {
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		notifier := domainmocks.NewNotifierMock(t)
		svc := NewStoreService(orderRepo, nil, nil, nil, notifier, newTestMetrics(), zap.NewNop(), true)

		orderRepo.EXPECT().MarkDelivered(mock.Anything, orderID, true).Return(delivered, false, nil).Once()
		notifier.EXPECT().SendPayload(mock.Anything, userID, payload).Return(nil).Once()

		result, err := svc.Deliver(ctx, orderID, payload)
		require.NoError(t, err)
		assert.True(t, result.Redelivered)
	})

	t.Run("Redelivery disabled - no payload sent", func(t *testing.T) {
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		notifier := domainmocks.NewNotifierMock(t)
		svc := NewStoreService(orderRepo, nil, nil, nil, notifier, newTestMetrics(), zap.NewNop(), false)

		orderRepo.EXPECT().MarkDelivered(mock.Anything, orderID, false).Return(delivered, false, nil).Once()
		// SendPayload не вызывается

		result, err := svc.Deliver(ctx, orderID, payload)
		require.NoError(t, err)
		assert.False(t, result.Redelivered)
	})
}

// fakeOrderRepo моделирует семантику отмены в памяти для проверки гонок:
// окно удаляется под мьютексом, вторая отмена его уже не находит
type fakeOrderRepo struct {
	domain.OrderRepository

	mu        sync.Mutex
	window    *domain.CancellableOrder
	order     *domain.Order
	refunds   int
	refundSum float64
}

func (f *fakeOrderRepo) CancelOrder(_ context.Context, orderID, userID int64, now time.Time) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.window == nil || f.window.OrderID != orderID || f.window.UserID != userID || !f.window.ExpiresAt.After(now) {
		return nil, domain.ErrNotCancellable
	}
	if f.order.Status != domain.OrderStatusCompleted || f.order.DeliveryStatus != domain.DeliveryStatusPending {
		return nil, domain.ErrNotCancellable
	}

	f.window = nil
	f.order.Status = domain.OrderStatusCancelled
	f.order.DeliveryStatus = domain.DeliveryStatusNone
	f.refunds++
	f.refundSum += f.order.Price

	cancelled := *f.order
	return &cancelled, nil
}

func TestStoreService_ConcurrentDoubleCancel(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)
	orderID := int64(7)

	repo := &fakeOrderRepo{
		window: &domain.CancellableOrder{OrderID: orderID, UserID: userID, ExpiresAt: time.Now().Add(30 * time.Minute)},
		order: &domain.Order{ID: orderID, UserID: userID, ProductName: "Premium Pack", Price: 40.0,
			Status: domain.OrderStatusCompleted, DeliveryStatus: domain.DeliveryStatusPending},
	}

	notifier := domainmocks.NewNotifierMock(t)
	notifier.EXPECT().NotifyAdmin(mock.Anything, mock.Anything).Return(nil).Maybe()

	svc := NewStoreService(repo, nil, nil, nil, notifier, newTestMetrics(), zap.NewNop(), true)

	const attempts = 8
	errs := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Cancel(ctx, orderID, userID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	rejected := 0
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrNotCancellable):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Ровно одна отмена выигрывает, возврат выполняется один раз
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, rejected)
	assert.Equal(t, 1, repo.refunds)
	assert.Equal(t, 40.0, repo.refundSum)
}

func TestStoreService_CancelAfterDeliver(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)
	orderID := int64(7)

	// Окно еще живо, но заказ уже доставлен: отмена должна проиграть
	repo := &fakeOrderRepo{
		window: &domain.CancellableOrder{OrderID: orderID, UserID: userID, ExpiresAt: time.Now().Add(30 * time.Minute)},
		order: &domain.Order{ID: orderID, UserID: userID, ProductName: "Premium Pack", Price: 40.0,
			Status: domain.OrderStatusCompleted, DeliveryStatus: domain.DeliveryStatusDelivered},
	}

	svc := NewStoreService(repo, nil, nil, nil, nil, newTestMetrics(), zap.NewNop(), true)

	_, err := svc.Cancel(ctx, orderID, userID)
	assert.ErrorIs(t, err, domain.ErrNotCancellable)
	assert.Equal(t, 0, repo.refunds)
	assert.Equal(t, domain.DeliveryStatusDelivered, repo.order.DeliveryStatus)
}

func TestStoreService_CancelAfterExpiry(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)
	orderID := int64(7)

	repo := &fakeOrderRepo{
		window: &domain.CancellableOrder{OrderID: orderID, UserID: userID, ExpiresAt: time.Now().Add(-time.Minute)},
		order: &domain.Order{ID: orderID, UserID: userID, ProductName: "Premium Pack", Price: 40.0,
			Status: domain.OrderStatusCompleted, DeliveryStatus: domain.DeliveryStatusPending},
	}

	svc := NewStoreService(repo, nil, nil, nil, nil, newTestMetrics(), zap.NewNop(), true)

	_, err := svc.Cancel(ctx, orderID, userID)
	assert.ErrorIs(t, err, domain.ErrNotCancellable)
	assert.Equal(t, 0, repo.refunds)
	assert.Equal(t, domain.OrderStatusCompleted, repo.order.Status)
}

func TestStoreService_GetCancellableOrder(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)

	t.Run("Found", func(t *testing.T) {
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		svc := NewStoreService(orderRepo, nil, nil, nil, nil, newTestMetrics(), zap.NewNop(), true)

		co := &domain.CancellableOrder{OrderID: 7, UserID: userID, ExpiresAt: time.Now().Add(10 * time.Minute)}
		orderRepo.EXPECT().GetCancellableOrder(mock.Anything, userID, mock.Anything).Return(co, nil).Once()

		result, err := svc.GetCancellableOrder(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, co, result)
	})

	t.Run("None", func(t *testing.T) {
		orderRepo := domainmocks.NewOrderRepositoryMock(t)
		svc := NewStoreService(orderRepo, nil, nil, nil, nil, newTestMetrics(), zap.NewNop(), true)

		orderRepo.EXPECT().GetCancellableOrder(mock.Anything, userID, mock.Anything).Return(nil, nil).Once()

		result, err := svc.GetCancellableOrder(ctx, userID)
		require.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestStoreService_GetOrderHistory(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)

	orderRepo := domainmocks.NewOrderRepositoryMock(t)
	svc := NewStoreService(orderRepo, nil, nil, nil, nil, newTestMetrics(), zap.NewNop(), true)

	orders := []*domain.Order{{ID: 2}, {ID: 1}}
	orderRepo.EXPECT().GetOrdersByUserID(mock.Anything, userID, orderHistoryLimit).Return(orders, nil).Once()

	result, err := svc.GetOrderHistory(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}
