package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avc/storefront-bot/internal/domain"
	"github.com/avc/storefront-bot/internal/metrics"
	"go.uber.org/zap"
)

// ErrQueueFull возвращается при переполненной очереди заданий
var ErrQueueFull = errors.New("worker queue is full")

// Job представляет единицу фоновой работы
type Job func(ctx context.Context)

// Pool представляет пул воркеров для рассылок и фоновой уборки
// просроченных окон отмены
type Pool struct {
	workers       int
	queue         chan Job
	orderRepo     domain.OrderRepository
	metrics       *metrics.StoreMetrics
	logger        *zap.Logger
	wg            sync.WaitGroup
	sweepInterval time.Duration
}

// NewPool создает новый worker pool
func NewPool(
	workers int,
	queueSize int,
	orderRepo domain.OrderRepository,
	storeMetrics *metrics.StoreMetrics,
	logger *zap.Logger,
	sweepInterval time.Duration,
) *Pool {
	return &Pool{
		workers:       workers,
		queue:         make(chan Job, queueSize),
		orderRepo:     orderRepo,
		metrics:       storeMetrics,
		logger:        logger,
		sweepInterval: sweepInterval,
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	// Запускаем воркеры
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	// Запускаем уборщик просроченных окон отмены
	p.wg.Add(1)
	go p.sweeper(ctx)
}

// Stop останавливает worker pool
func (p *Pool) Stop() {
	close(p.queue)
	p.wg.Wait()
}

// Submit добавляет задание в очередь. При заполненной очереди задание
// отклоняется, а не блокирует вызывающего
func (p *Pool) Submit(job Job) error {
	select {
	case p.queue <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// worker обрабатывает задания из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case job, ok := <-p.queue:
			if !ok {
				return
			}
			job(ctx)
		}
	}
}

// sweeper периодически удаляет просроченные окна отмены.
// Истечение окна проверяется лениво при каждой операции движка,
// уборка лишь освобождает место
func (p *Pool) sweeper(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("sweeper stopping")
			return
		case <-ticker.C:
			p.sweepExpiredWindows(ctx)
		}
	}
}

// sweepExpiredWindows удаляет окна с истекшим сроком
func (p *Pool) sweepExpiredWindows(ctx context.Context) {
	deleted, err := p.orderRepo.DeleteExpiredWindows(ctx, time.Now())
	if err != nil {
		p.logger.Error("failed to sweep expired windows", zap.Error(err))
		return
	}

	if deleted > 0 {
		p.metrics.RecordExpiredWindows(deleted)
		p.logger.Debug("expired windows swept", zap.Int64("deleted", deleted))
	}
}
