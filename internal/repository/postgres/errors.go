package postgres

import "github.com/avc/storefront-bot/internal/domain"

// Репозитории возвращают доменные ошибки, чтобы вызывающий слой
// сравнивал их через errors.Is без привязки к хранилищу
var (
	ErrProductNotFound   = domain.ErrProductNotFound
	ErrCategoryExists    = domain.ErrCategoryExists
	ErrCategoryNotFound  = domain.ErrCategoryNotFound
	ErrButtonNotFound    = domain.ErrButtonNotFound
	ErrOrderNotFound     = domain.ErrOrderNotFound
	ErrOrderCancelled    = domain.ErrOrderCancelled
	ErrNotCancellable    = domain.ErrNotCancellable
	ErrInsufficientFunds = domain.ErrInsufficientFunds
	ErrUnknownSettingKey = domain.ErrUnknownSettingKey
)
