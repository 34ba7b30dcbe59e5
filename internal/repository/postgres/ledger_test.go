package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRepository_GetBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	ctx := context.Background()

	t.Run("Success - existing user", func(t *testing.T) {
		userID := int64(42)

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(150.0))

		balance, err := repo.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 150.0, balance)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - new user starts at zero", func(t *testing.T) {
		userID := int64(999)

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(0.0))

		balance, err := repo.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 0.0, balance)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		userID := int64(42)

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(userID).
			WillReturnError(errors.New("database error"))

		_, err := repo.GetBalance(ctx, userID)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_AdjustBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	ctx := context.Background()

	t.Run("Success - credit", func(t *testing.T) {
		userID := int64(42)
		delta := 100.0

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(userID, delta).
			WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(250.0))

		balance, err := repo.AdjustBalance(ctx, userID, delta)
		require.NoError(t, err)
		assert.Equal(t, 250.0, balance)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - debit", func(t *testing.T) {
		userID := int64(42)
		delta := -30.0

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(userID, delta).
			WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(220.0))

		balance, err := repo.AdjustBalance(ctx, userID, delta)
		require.NoError(t, err)
		assert.Equal(t, 220.0, balance)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		userID := int64(42)

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(userID, 10.0).
			WillReturnError(errors.New("database error"))

		_, err := repo.AdjustBalance(ctx, userID, 10.0)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_GetAllUserIDs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id"}).
			AddRow(int64(1)).
			AddRow(int64(2)).
			AddRow(int64(42))

		mock.ExpectQuery(`SELECT id FROM users`).
			WillReturnRows(rows)

		ids, err := repo.GetAllUserIDs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 42}, ids)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No users", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id FROM users`).
			WillReturnRows(pgxmock.NewRows([]string{"id"}))

		ids, err := repo.GetAllUserIDs(ctx)
		require.NoError(t, err)
		assert.Empty(t, ids)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
