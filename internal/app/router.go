package app

import (
	"github.com/avc/storefront-bot/internal/config"
	"github.com/avc/storefront-bot/internal/handlers"
	"github.com/avc/storefront-bot/internal/utils/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(cfg *config.Config, deps *dependencies, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, cfg, deps, deps.jwtManager)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, cfg *config.Config, deps *dependencies, jwtManager *jwt.Manager) {
	// Служебные эндпоинты
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)
	r.Handle("/metrics", promhttp.Handler())

	// Единственный публичный эндпоинт API: выдача токена шлюзу
	r.Post("/api/gateway/token", deps.handlers.gateway.IssueToken)

	// Эндпоинты пользователя
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))

		r.Get("/api/balance", deps.handlers.balance.GetBalance)
		r.Post("/api/balance/deposit", deps.handlers.balance.DeclareDeposit)

		r.Get("/api/categories", deps.handlers.catalog.GetCategories)
		r.Get("/api/products", deps.handlers.catalog.GetProducts)
		r.Get("/api/buttons", deps.handlers.catalog.GetButtons)

		r.Post("/api/orders", deps.handlers.orders.Purchase)
		r.Get("/api/orders", deps.handlers.orders.GetOrders)
		r.Get("/api/orders/cancellable", deps.handlers.orders.GetCancellableOrder)
		r.Post("/api/orders/{orderID}/cancel", deps.handlers.orders.Cancel)

		r.Post("/api/suggest", deps.handlers.support.Suggest)
		r.Get("/api/faq", deps.handlers.support.FAQ)
	})

	// Эндпоинты администратора
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))
		r.Use(handlers.AdminMiddleware(cfg.AdminID))

		r.Post("/api/admin/products", deps.handlers.catalog.AddProduct)
		r.Delete("/api/admin/products/{productID}", deps.handlers.catalog.DeleteProduct)
		r.Post("/api/admin/categories", deps.handlers.catalog.AddCategory)
		r.Delete("/api/admin/categories/{categoryID}", deps.handlers.catalog.DeleteCategory)
		r.Post("/api/admin/buttons", deps.handlers.catalog.AddButton)
		r.Delete("/api/admin/buttons/{buttonID}", deps.handlers.catalog.DeleteButton)

		r.Post("/api/admin/orders/{orderID}/deliver", deps.handlers.admin.Deliver)
		r.Post("/api/admin/balance", deps.handlers.admin.AdjustBalance)
		r.Get("/api/admin/statistics", deps.handlers.admin.GetStatistics)
		r.Get("/api/admin/settings", deps.handlers.admin.GetSettings)
		r.Put("/api/admin/settings", deps.handlers.admin.UpdateSetting)
		r.Post("/api/admin/broadcast", deps.handlers.admin.Broadcast)
		r.Post("/api/admin/messages", deps.handlers.admin.DirectMessage)
	})
}
