package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/avc/storefront-bot/internal/domain"
	"github.com/avc/storefront-bot/internal/metrics"
	"go.uber.org/zap"
)

const orderHistoryLimit = 10

// StoreService реализует domain.StoreService: покупка, отмена и доставка заказа
type StoreService struct {
	orderRepo      domain.OrderRepository
	productRepo    domain.ProductRepository
	ledgerRepo     domain.LedgerRepository
	settingsRepo   domain.SettingsRepository
	notifier       domain.Notifier
	metrics        *metrics.StoreMetrics
	logger         *zap.Logger
	allowRedeliver bool
}

// NewStoreService создает новый StoreService
func NewStoreService(
	orderRepo domain.OrderRepository,
	productRepo domain.ProductRepository,
	ledgerRepo domain.LedgerRepository,
	settingsRepo domain.SettingsRepository,
	notifier domain.Notifier,
	storeMetrics *metrics.StoreMetrics,
	logger *zap.Logger,
	allowRedeliver bool,
) *StoreService {
	return &StoreService{
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		ledgerRepo:     ledgerRepo,
		settingsRepo:   settingsRepo,
		notifier:       notifier,
		metrics:        storeMetrics,
		logger:         logger,
		allowRedeliver: allowRedeliver,
	}
}

// Purchase выполняет покупку товара: списывает цену с баланса и создает
// заказ с окном отмены. Предварительная проверка баланса отсекает заведомо
// неудачные покупки без обращения к движку; решающая проверка выполняется
// повторно внутри транзакции под блокировкой
func (s *StoreService) Purchase(ctx context.Context, userID, productID int64) (*domain.PurchaseResult, error) {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("store service: failed to get product %d: %w", productID, err)
	}

	balance, err := s.ledgerRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("store service: failed to get balance for user %d: %w", userID, err)
	}

	if balance < product.Price {
		s.metrics.RecordPurchaseRejected()
		return nil, domain.ErrInsufficientFunds
	}

	window, err := s.cancellationWindow(ctx)
	if err != nil {
		return nil, err
	}

	order, newBalance, err := s.orderRepo.CreatePurchase(ctx, userID, product.Name, product.Price, time.Now().Add(window))
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			// Баланс изменился между предварительной проверкой и транзакцией
			s.metrics.RecordPurchaseRejected()
			return nil, domain.ErrInsufficientFunds
		}
		return nil, fmt.Errorf("store service: failed to create purchase for user %d: %w", userID, err)
	}

	s.metrics.RecordPurchase()
	s.logger.Info("purchase completed",
		zap.Int64("user_id", userID),
		zap.Int64("order_id", order.ID),
		zap.String("product", product.Name),
		zap.Float64("price", product.Price))

	s.notifyAdmin(ctx, fmt.Sprintf("New order #%d: %s (%.2f) by user %d", order.ID, product.Name, product.Price, userID))

	return &domain.PurchaseResult{Order: order, NewBalance: newBalance}, nil
}

// Cancel отменяет заказ в пределах окна отмены и возвращает средства
func (s *StoreService) Cancel(ctx context.Context, orderID, userID int64) (*domain.CancelResult, error) {
	order, err := s.orderRepo.CancelOrder(ctx, orderID, userID, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNotCancellable) {
			return nil, domain.ErrNotCancellable
		}
		return nil, fmt.Errorf("store service: failed to cancel order %d: %w", orderID, err)
	}

	s.metrics.RecordCancellation()
	s.logger.Info("order cancelled",
		zap.Int64("user_id", userID),
		zap.Int64("order_id", orderID),
		zap.Float64("refunded", order.Price))

	s.notifyAdmin(ctx, fmt.Sprintf("Order #%d cancelled by user %d, %.2f refunded", orderID, userID, order.Price))

	return &domain.CancelResult{Order: order, Refunded: order.Price}, nil
}

// Deliver помечает заказ доставленным и пересылает покупателю данные заказа.
// Статус фиксируется до отправки: сбой получателя не откатывает доставку
// и возвращается вызывающему вместе с результатом
func (s *StoreService) Deliver(ctx context.Context, orderID int64, payload string) (*domain.DeliverResult, error) {
	order, first, err := s.orderRepo.MarkDelivered(ctx, orderID, s.allowRedeliver)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) || errors.Is(err, domain.ErrOrderCancelled) {
			return nil, err
		}
		return nil, fmt.Errorf("store service: failed to deliver order %d: %w", orderID, err)
	}

	result := &domain.DeliverResult{Order: order, Redelivered: !first && s.allowRedeliver}

	if !first && !s.allowRedeliver {
		// Заказ уже доставлен, повторная отправка отключена
		return result, nil
	}

	s.metrics.RecordDelivery()
	s.logger.Info("order delivered",
		zap.Int64("order_id", orderID),
		zap.Int64("user_id", order.UserID),
		zap.Bool("redelivered", result.Redelivered))

	if err := s.notifier.SendPayload(ctx, order.UserID, payload); err != nil {
		s.metrics.RecordNotifyFailure()
		s.logger.Warn("delivery target unreachable",
			zap.Int64("order_id", orderID),
			zap.Int64("user_id", order.UserID),
			zap.Error(err))
		return result, domain.ErrDeliveryUnreachable
	}

	return result, nil
}

// GetCancellableOrder возвращает последний отменяемый заказ пользователя
// или nil, если такого нет
func (s *StoreService) GetCancellableOrder(ctx context.Context, userID int64) (*domain.CancellableOrder, error) {
	co, err := s.orderRepo.GetCancellableOrder(ctx, userID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("store service: failed to get cancellable order for user %d: %w", userID, err)
	}

	return co, nil
}

// GetOrderHistory возвращает последние заказы пользователя, новые первыми
func (s *StoreService) GetOrderHistory(ctx context.Context, userID int64) ([]*domain.Order, error) {
	orders, err := s.orderRepo.GetOrdersByUserID(ctx, userID, orderHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("store service: failed to get order history for user %d: %w", userID, err)
	}

	return orders, nil
}

// cancellationWindow читает длительность окна отмены из настроек
func (s *StoreService) cancellationWindow(ctx context.Context) (time.Duration, error) {
	value, err := s.settingsRepo.GetSetting(ctx, domain.SettingCancellationMinutes)
	if err != nil {
		return 0, fmt.Errorf("store service: failed to get cancellation window: %w", err)
	}

	minutes, err := strconv.Atoi(value)
	if err != nil || minutes <= 0 {
		return 0, fmt.Errorf("store service: invalid cancellation window %q", value)
	}

	return time.Duration(minutes) * time.Minute, nil
}

func (s *StoreService) notifyAdmin(ctx context.Context, text string) {
	if err := s.notifier.NotifyAdmin(ctx, text); err != nil {
		s.metrics.RecordNotifyFailure()
		s.logger.Warn("admin notification failed", zap.Error(err))
	}
}
