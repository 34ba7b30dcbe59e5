package service

import (
	"context"
	"fmt"

	"github.com/avc/storefront-bot/internal/domain"
)

// StatsService реализует domain.StatsService
type StatsService struct {
	statsRepo domain.StatsRepository
}

// NewStatsService создает новый StatsService
func NewStatsService(statsRepo domain.StatsRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

// GetStatistics возвращает сводку магазина
func (s *StatsService) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats, err := s.statsRepo.GetStatistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats service: failed to get statistics: %w", err)
	}

	return stats, nil
}
