package postgres

import (
	"context"
	"fmt"

	"github.com/avc/storefront-bot/internal/domain"
)

// StatsRepository реализует domain.StatsRepository
type StatsRepository struct {
	db DBTX
}

// NewStatsRepository создает новый StatsRepository
func NewStatsRepository(db DBTX) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetStatistics собирает сводку магазина. Выручка считается по заказам
// Completed: отмененные заказы в нее не входят
func (r *StatsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats := &domain.Statistics{}

	err := r.db.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(id) FROM users),
			(SELECT COUNT(id) FROM products),
			(SELECT COUNT(id) FROM orders WHERE status = $1),
			(SELECT COALESCE(SUM(price), 0) FROM orders WHERE status = $1)`,
		domain.OrderStatusCompleted,
	).Scan(&stats.Users, &stats.Products, &stats.Orders, &stats.Revenue)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get statistics: %w", err)
	}

	return stats, nil
}
