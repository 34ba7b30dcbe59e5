package postgres

import (
	"context"
	"fmt"
)

// LedgerRepository реализует domain.LedgerRepository
type LedgerRepository struct {
	db DBTX
}

// NewLedgerRepository создает новый LedgerRepository
func NewLedgerRepository(db DBTX) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// GetBalance возвращает баланс пользователя, лениво создавая строку
// с нулевым балансом и обновляя last_activity
func (r *LedgerRepository) GetBalance(ctx context.Context, userID int64) (float64, error) {
	var balance float64

	err := r.db.QueryRow(ctx,
		`INSERT INTO users (id)
		 VALUES ($1)
		 ON CONFLICT (id) DO UPDATE SET last_activity = now()
		 RETURNING balance`,
		userID,
	).Scan(&balance)

	if err != nil {
		return 0, fmt.Errorf("repository: failed to get balance for user %d: %w", userID, err)
	}

	return balance, nil
}

// AdjustBalance атомарно изменяет баланс пользователя на delta.
// Одиночный upsert исключает потерянные обновления при параллельных корректировках
func (r *LedgerRepository) AdjustBalance(ctx context.Context, userID int64, delta float64) (float64, error) {
	var balance float64

	err := r.db.QueryRow(ctx,
		`INSERT INTO users (id, balance)
		 VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET balance = users.balance + EXCLUDED.balance, last_activity = now()
		 RETURNING balance`,
		userID, delta,
	).Scan(&balance)

	if err != nil {
		return 0, fmt.Errorf("repository: failed to adjust balance for user %d: %w", userID, err)
	}

	return balance, nil
}

// GetAllUserIDs возвращает идентификаторы всех известных пользователей
func (r *LedgerRepository) GetAllUserIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get user ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("repository: failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating user ids: %w", err)
	}

	return ids, nil
}
