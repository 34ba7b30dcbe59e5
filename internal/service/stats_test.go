package service

import (
	"context"
	"errors"
	"testing"

	"github.com/avc/storefront-bot/internal/domain"
	domainmocks "github.com/avc/storefront-bot/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatsService_GetStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		statsRepo := domainmocks.NewStatsRepositoryMock(t)
		svc := NewStatsService(statsRepo)

		stats := &domain.Statistics{Users: 10, Products: 5, Orders: 7, Revenue: 280.0}
		statsRepo.EXPECT().GetStatistics(mock.Anything).Return(stats, nil).Once()

		result, err := svc.GetStatistics(ctx)
		require.NoError(t, err)
		assert.Equal(t, stats, result)
	})

	t.Run("Repository error", func(t *testing.T) {
		statsRepo := domainmocks.NewStatsRepositoryMock(t)
		svc := NewStatsService(statsRepo)

		statsRepo.EXPECT().GetStatistics(mock.Anything).Return(nil, errors.New("db down")).Once()

		_, err := svc.GetStatistics(ctx)
		assert.Error(t, err)
	})
}
