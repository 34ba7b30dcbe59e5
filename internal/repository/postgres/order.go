package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/storefront-bot/internal/domain"
	"github.com/jackc/pgx/v5"
)

// OrderRepository реализует domain.OrderRepository
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreatePurchase атомарно списывает цену с баланса и создает заказ
// вместе с окном отмены. Advisory lock по пользователю исключает
// параллельное списание между проверкой и дебетом
func (r *OrderRepository) CreatePurchase(ctx context.Context, userID int64, productName string, price float64, expiresAt time.Time) (*domain.Order, float64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to begin purchase for user %d: %w", userID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to acquire lock for user %d: %w", userID, err)
	}

	// Ленивая инициализация строки пользователя
	_, err = tx.Exec(ctx, `INSERT INTO users (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to ensure user %d: %w", userID, err)
	}

	var balance float64
	err = tx.QueryRow(ctx, `SELECT balance FROM users WHERE id = $1`, userID).Scan(&balance)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to get balance for user %d: %w", userID, err)
	}

	// Повторная проверка под блокировкой: границей служит balance >= price
	if balance < price {
		return nil, 0, domain.ErrInsufficientFunds
	}

	var newBalance float64
	err = tx.QueryRow(ctx,
		`UPDATE users SET balance = balance - $1, last_activity = now() WHERE id = $2 RETURNING balance`,
		price, userID,
	).Scan(&newBalance)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to debit user %d: %w", userID, err)
	}

	order := &domain.Order{
		UserID:         userID,
		ProductName:    productName,
		Price:          price,
		Status:         domain.OrderStatusCompleted,
		DeliveryStatus: domain.DeliveryStatusPending,
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO orders (user_id, product_name, price, status, delivery_status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		userID, productName, price, order.Status, order.DeliveryStatus,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to create order for user %d: %w", userID, err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO cancellable_orders (order_id, user_id, expires_at) VALUES ($1, $2, $3)`,
		order.ID, userID, expiresAt,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to create cancellation window for order %d: %w", order.ID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, 0, fmt.Errorf("repository: failed to commit purchase: %w", err)
	}

	return order, newBalance, nil
}

// CancelOrder атомарно отменяет заказ: удаляет окно отмены, помечает заказ
// Cancelled/N/A и возвращает цену на баланс. Любое нарушение условий отмены
// оставляет состояние нетронутым
func (r *OrderRepository) CancelOrder(ctx context.Context, orderID, userID int64, now time.Time) (*domain.Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin cancel for order %d: %w", orderID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	// Отрицательное пространство ключей: блокировки заказов не пересекаются
	// с блокировками пользователей в CreatePurchase
	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(-$1::bigint)`, orderID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to acquire lock for order %d: %w", orderID, err)
	}

	order := &domain.Order{}
	err = tx.QueryRow(ctx,
		`SELECT o.id, o.user_id, o.product_name, o.price, o.status, o.delivery_status, o.created_at
		 FROM cancellable_orders co
		 JOIN orders o ON co.order_id = o.id
		 WHERE co.order_id = $1 AND co.user_id = $2 AND co.expires_at > $3`,
		orderID, userID, now,
	).Scan(&order.ID, &order.UserID, &order.ProductName, &order.Price, &order.Status, &order.DeliveryStatus, &order.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Окна нет, оно чужое или просрочено
			return nil, domain.ErrNotCancellable
		}
		return nil, fmt.Errorf("repository: failed to look up cancellation window for order %d: %w", orderID, err)
	}

	// Доставка и отмена гонятся за одним заказом: победившая доставка
	// делает окно недействительным даже до его истечения
	if order.Status != domain.OrderStatusCompleted || order.DeliveryStatus != domain.DeliveryStatusPending {
		return nil, domain.ErrNotCancellable
	}

	_, err = tx.Exec(ctx, `DELETE FROM cancellable_orders WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to delete cancellation window for order %d: %w", orderID, err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE orders SET status = $1, delivery_status = $2 WHERE id = $3`,
		domain.OrderStatusCancelled, domain.DeliveryStatusNone, orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to mark order %d cancelled: %w", orderID, err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE users SET balance = balance + $1 WHERE id = $2`,
		order.Price, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to refund user %d: %w", userID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit cancel: %w", err)
	}

	order.Status = domain.OrderStatusCancelled
	order.DeliveryStatus = domain.DeliveryStatusNone
	return order, nil
}

// MarkDelivered помечает заказ доставленным под той же блокировкой заказа,
// что и CancelOrder: из гонки доставки и отмены выигрывает первый.
// first=true при переходе Pending -> Delivered
func (r *OrderRepository) MarkDelivered(ctx context.Context, orderID int64, redeliver bool) (*domain.Order, bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("repository: failed to begin delivery for order %d: %w", orderID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(-$1::bigint)`, orderID)
	if err != nil {
		return nil, false, fmt.Errorf("repository: failed to acquire lock for order %d: %w", orderID, err)
	}

	order := &domain.Order{}
	err = tx.QueryRow(ctx,
		`SELECT id, user_id, product_name, price, status, delivery_status, created_at
		 FROM orders
		 WHERE id = $1`,
		orderID,
	).Scan(&order.ID, &order.UserID, &order.ProductName, &order.Price, &order.Status, &order.DeliveryStatus, &order.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, domain.ErrOrderNotFound
		}
		return nil, false, fmt.Errorf("repository: failed to get order %d: %w", orderID, err)
	}

	// Отмененный заказ доставлять нечем
	if order.Status == domain.OrderStatusCancelled || order.DeliveryStatus == domain.DeliveryStatusNone {
		return nil, false, domain.ErrOrderCancelled
	}

	first := order.DeliveryStatus == domain.DeliveryStatusPending

	if !first && !redeliver {
		// Повторная доставка запрещена конфигурацией: no-op
		if err = tx.Commit(ctx); err != nil {
			return nil, false, fmt.Errorf("repository: failed to commit delivery: %w", err)
		}
		return order, false, nil
	}

	_, err = tx.Exec(ctx,
		`UPDATE orders SET delivery_status = $1 WHERE id = $2`,
		domain.DeliveryStatusDelivered, orderID,
	)
	if err != nil {
		return nil, false, fmt.Errorf("repository: failed to mark order %d delivered: %w", orderID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("repository: failed to commit delivery: %w", err)
	}

	order.DeliveryStatus = domain.DeliveryStatusDelivered
	return order, first, nil
}

// GetOrderByID получает заказ по идентификатору
func (r *OrderRepository) GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	order := &domain.Order{}

	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, product_name, price, status, delivery_status, created_at
		 FROM orders
		 WHERE id = $1`,
		orderID,
	).Scan(&order.ID, &order.UserID, &order.ProductName, &order.Price, &order.Status, &order.DeliveryStatus, &order.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %d: %w", orderID, err)
	}

	return order, nil
}

// GetOrdersByUserID получает последние заказы пользователя, новые первыми
func (r *OrderRepository) GetOrdersByUserID(ctx context.Context, userID int64, limit int) ([]*domain.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, product_name, price, status, delivery_status, created_at
		 FROM orders
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get orders for user %d: %w", userID, err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order := &domain.Order{}
		err := rows.Scan(&order.ID, &order.UserID, &order.ProductName, &order.Price, &order.Status, &order.DeliveryStatus, &order.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}

	return orders, nil
}

// GetCancellableOrder возвращает последний отменяемый заказ пользователя:
// самое свежее окно (по order_id) с непрошедшим сроком и недоставленным заказом.
// Правило выбора централизовано здесь и больше нигде не повторяется
func (r *OrderRepository) GetCancellableOrder(ctx context.Context, userID int64, now time.Time) (*domain.CancellableOrder, error) {
	co := &domain.CancellableOrder{}

	err := r.db.QueryRow(ctx,
		`SELECT co.order_id, co.user_id, o.product_name, o.price, co.expires_at
		 FROM cancellable_orders co
		 JOIN orders o ON co.order_id = o.id
		 WHERE co.user_id = $1 AND co.expires_at > $2 AND o.delivery_status = $3
		 ORDER BY co.order_id DESC
		 LIMIT 1`,
		userID, now, domain.DeliveryStatusPending,
	).Scan(&co.OrderID, &co.UserID, &co.ProductName, &co.Price, &co.ExpiresAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to get cancellable order for user %d: %w", userID, err)
	}

	return co, nil
}

// DeleteExpiredWindows удаляет просроченные окна отмены. Уборка best-effort:
// просроченное окно и так неактивно, удаление лишь освобождает место
func (r *OrderRepository) DeleteExpiredWindows(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.Exec(ctx,
		`DELETE FROM cancellable_orders WHERE expires_at <= $1`,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to delete expired windows: %w", err)
	}

	return result.RowsAffected(), nil
}
