package domain

import "errors"

// Ошибки каталога
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrButtonNotFound   = errors.New("custom button not found")
	ErrInvalidButtonURL = errors.New("button url must start with http:// or https://")
)

// Ошибки жизненного цикла заказа и баланса
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotCancellable    = errors.New("order is not cancellable")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderCancelled    = errors.New("order already cancelled")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidInput      = errors.New("invalid input")
)

// Ошибки настроек и доступа
var (
	ErrUnknownSettingKey   = errors.New("unknown setting key")
	ErrInvalidSettingValue = errors.New("invalid setting value")
	ErrUnauthorizedGateway = errors.New("invalid gateway key")
)

// ErrDeliveryUnreachable сообщает о недоставленном уведомлении.
// Некритична: состояние заказа при этом не откатывается
var ErrDeliveryUnreachable = errors.New("delivery target unreachable")
