package app

import (
	"github.com/avc/storefront-bot/internal/config"
	"github.com/avc/storefront-bot/internal/domain"
	"github.com/avc/storefront-bot/internal/handlers"
	"github.com/avc/storefront-bot/internal/metrics"
	"github.com/avc/storefront-bot/internal/repository/postgres"
	"github.com/avc/storefront-bot/internal/service"
	"github.com/avc/storefront-bot/internal/utils/jwt"
	"github.com/avc/storefront-bot/internal/utils/secret"
	"github.com/avc/storefront-bot/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// repositories содержит все репозитории приложения
type repositories struct {
	ledger   domain.LedgerRepository
	order    domain.OrderRepository
	product  domain.ProductRepository
	category domain.CategoryRepository
	button   domain.ButtonRepository
	settings domain.SettingsRepository
	stats    domain.StatsRepository
}

// services содержит все сервисы приложения
type services struct {
	gateway   domain.GatewayService
	store     domain.StoreService
	balance   domain.BalanceService
	catalog   domain.CatalogService
	settings  domain.SettingsService
	messaging domain.MessagingService
	stats     domain.StatsService
	notifier  domain.Notifier
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	gateway *handlers.GatewayHandler
	orders  *handlers.OrdersHandler
	balance *handlers.BalanceHandler
	catalog *handlers.CatalogHandler
	admin   *handlers.AdminHandler
	support *handlers.SupportHandler
	health  *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
	metrics    *metrics.StoreMetrics
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) *dependencies {
	// Создание репозиториев
	repos := &repositories{
		ledger:   postgres.NewLedgerRepository(dbPool),
		order:    postgres.NewOrderRepository(dbPool),
		product:  postgres.NewProductRepository(dbPool),
		category: postgres.NewCategoryRepository(dbPool),
		button:   postgres.NewButtonRepository(dbPool),
		settings: postgres.NewSettingsRepository(dbPool),
		stats:    postgres.NewStatsRepository(dbPool),
	}

	// Создание утилит
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)
	keyVerifier := secret.NewVerifier(cfg.GatewayKeyHash)
	storeMetrics := metrics.NewStoreMetrics()

	// Создание worker pool: рассылки + уборка просроченных окон отмены
	workerPool := worker.NewPool(
		cfg.BroadcastWorkers,
		cfg.BroadcastQueueSize,
		repos.order,
		storeMetrics,
		logger,
		cfg.SweepInterval,
	)

	// Создание сервисов
	notifier := service.NewNotifier(cfg.GatewayAddress, cfg.AdminID)
	svcs := &services{
		gateway: service.NewGatewayService(keyVerifier, jwtManager, logger),
		store: service.NewStoreService(
			repos.order, repos.product, repos.ledger, repos.settings,
			notifier, storeMetrics, logger, cfg.AllowRedelivery,
		),
		balance:   service.NewBalanceService(repos.ledger, repos.settings, notifier, logger),
		catalog:   service.NewCatalogService(repos.product, repos.category, repos.button),
		settings:  service.NewSettingsService(repos.settings),
		messaging: service.NewMessagingService(repos.ledger, repos.settings, notifier, workerPool, storeMetrics, logger),
		stats:     service.NewStatsService(repos.stats),
		notifier:  notifier,
	}

	// Создание handlers
	hdlrs := &handlerSet{
		gateway: handlers.NewGatewayHandler(svcs.gateway, logger),
		orders:  handlers.NewOrdersHandler(svcs.store, logger),
		balance: handlers.NewBalanceHandler(svcs.balance, logger),
		catalog: handlers.NewCatalogHandler(svcs.catalog, logger),
		admin:   handlers.NewAdminHandler(svcs.store, svcs.balance, svcs.settings, svcs.stats, svcs.messaging, logger),
		support: handlers.NewSupportHandler(svcs.messaging, svcs.settings, logger),
		health:  handlers.NewHealthHandler(dbPool, logger),
	}

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		workerPool: workerPool,
		metrics:    storeMetrics,
	}
}
