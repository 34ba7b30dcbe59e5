package postgres

import (
	"context"
	"fmt"

	"github.com/avc/storefront-bot/internal/domain"
)

// ButtonRepository реализует domain.ButtonRepository
type ButtonRepository struct {
	db DBTX
}

// NewButtonRepository создает новый ButtonRepository
func NewButtonRepository(db DBTX) *ButtonRepository {
	return &ButtonRepository{db: db}
}

// GetButtons получает все произвольные кнопки
func (r *ButtonRepository) GetButtons(ctx context.Context) ([]*domain.CustomButton, error) {
	rows, err := r.db.Query(ctx, `SELECT id, text, url FROM custom_buttons ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get custom buttons: %w", err)
	}
	defer rows.Close()

	var buttons []*domain.CustomButton
	for rows.Next() {
		button := &domain.CustomButton{}
		if err := rows.Scan(&button.ID, &button.Text, &button.URL); err != nil {
			return nil, fmt.Errorf("repository: failed to scan custom button: %w", err)
		}
		buttons = append(buttons, button)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating custom buttons: %w", err)
	}

	return buttons, nil
}

// AddButton создает новую кнопку
func (r *ButtonRepository) AddButton(ctx context.Context, text, url string) (*domain.CustomButton, error) {
	button := &domain.CustomButton{Text: text, URL: url}

	err := r.db.QueryRow(ctx,
		`INSERT INTO custom_buttons (text, url) VALUES ($1, $2) RETURNING id`,
		text, url,
	).Scan(&button.ID)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to add custom button %q: %w", text, err)
	}

	return button, nil
}

// DeleteButton удаляет кнопку
func (r *ButtonRepository) DeleteButton(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM custom_buttons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete custom button %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrButtonNotFound
	}

	return nil
}
