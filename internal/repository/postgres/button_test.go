package postgres

import (
	"context"
	"testing"

	"github.com/avc/storefront-bot/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonRepository_AddButton(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewButtonRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO custom_buttons`).
		WithArgs("Support", "https://example.com/support").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

	button, err := repo.AddButton(ctx, "Support", "https://example.com/support")
	require.NoError(t, err)
	assert.Equal(t, int64(1), button.ID)
	assert.Equal(t, "Support", button.Text)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestButtonRepository_DeleteButton(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewButtonRepository(mock)

		mock.ExpectExec(`DELETE FROM custom_buttons`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.DeleteButton(ctx, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewButtonRepository(mock)

		mock.ExpectExec(`DELETE FROM custom_buttons`).
			WithArgs(int64(99)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.DeleteButton(ctx, 99), domain.ErrButtonNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStatsRepository_GetStatistics(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStatsRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT`).
		WithArgs(domain.OrderStatusCompleted).
		WillReturnRows(pgxmock.NewRows([]string{"users", "products", "orders", "revenue"}).
			AddRow(int64(10), int64(5), int64(7), 280.0))

	stats, err := repo.GetStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.Users)
	assert.Equal(t, int64(5), stats.Products)
	assert.Equal(t, int64(7), stats.Orders)
	assert.Equal(t, 280.0, stats.Revenue)

	assert.NoError(t, mock.ExpectationsWereMet())
}
