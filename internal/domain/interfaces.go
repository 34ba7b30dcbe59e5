package domain

import (
	"context"
	"time"
)

// LedgerRepository определяет методы для работы с балансами пользователей
type LedgerRepository interface {
	// GetBalance возвращает баланс, лениво создавая пользователя с нулевым балансом
	GetBalance(ctx context.Context, userID int64) (float64, error)
	// AdjustBalance атомарно изменяет баланс на delta и возвращает новое значение.
	// Нижняя граница на этом уровне не проверяется
	AdjustBalance(ctx context.Context, userID int64, delta float64) (float64, error)
	GetAllUserIDs(ctx context.Context) ([]int64, error)
}

// OrderRepository определяет методы для работы с заказами и окнами отмены
type OrderRepository interface {
	// CreatePurchase атомарно списывает цену с баланса и создает заказ
	// вместе с окном отмены. Возвращает заказ и новый баланс
	CreatePurchase(ctx context.Context, userID int64, productName string, price float64, expiresAt time.Time) (*Order, float64, error)
	// CancelOrder атомарно удаляет окно отмены, помечает заказ отмененным
	// и возвращает цену на баланс
	CancelOrder(ctx context.Context, orderID, userID int64, now time.Time) (*Order, error)
	// MarkDelivered помечает заказ доставленным. first=true при переходе
	// Pending -> Delivered; при redeliver=false повторная доставка уже
	// доставленного заказа становится no-op
	MarkDelivered(ctx context.Context, orderID int64, redeliver bool) (order *Order, first bool, err error)
	GetOrderByID(ctx context.Context, orderID int64) (*Order, error)
	GetOrdersByUserID(ctx context.Context, userID int64, limit int) ([]*Order, error)
	// GetCancellableOrder возвращает последний отменяемый заказ пользователя
	// или nil, если такого нет
	GetCancellableOrder(ctx context.Context, userID int64, now time.Time) (*CancellableOrder, error)
	// DeleteExpiredWindows удаляет просроченные окна отмены (фоновая уборка)
	DeleteExpiredWindows(ctx context.Context, now time.Time) (int64, error)
}

// ProductRepository определяет методы для работы с товарами
type ProductRepository interface {
	GetProductByID(ctx context.Context, id int64) (*Product, error)
	GetProducts(ctx context.Context, categoryID *int64) ([]*Product, error)
	AddProduct(ctx context.Context, name string, price float64, categoryID int64) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// CategoryRepository определяет методы для работы с разделами каталога
type CategoryRepository interface {
	GetCategories(ctx context.Context) ([]*Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*Category, error)
	AddCategory(ctx context.Context, name string) (*Category, error)
	// DeleteCategory удаляет раздел, отвязывая его товары (category_id = NULL)
	DeleteCategory(ctx context.Context, id int64) error
}

// ButtonRepository определяет методы для работы с произвольными кнопками
type ButtonRepository interface {
	GetButtons(ctx context.Context) ([]*CustomButton, error)
	AddButton(ctx context.Context, text, url string) (*CustomButton, error)
	DeleteButton(ctx context.Context, id int64) error
}

// SettingsRepository определяет методы для работы с настройками магазина
type SettingsRepository interface {
	GetSetting(ctx context.Context, key SettingKey) (string, error)
	SetSetting(ctx context.Context, key SettingKey, value string) error
	GetSettings(ctx context.Context) (*Settings, error)
}

// StatsRepository определяет методы получения статистики магазина
type StatsRepository interface {
	GetStatistics(ctx context.Context) (*Statistics, error)
}

// Notifier определяет взаимодействие со шлюзом чат-бота.
// Все отправки best-effort: ошибка получателя не откатывает операцию движка
type Notifier interface {
	NotifyAdmin(ctx context.Context, text string) error
	NotifyUser(ctx context.Context, userID int64, text string) error
	// SendPayload пересылает покупателю данные заказа (доставка)
	SendPayload(ctx context.Context, userID int64, payload string) error
}

// GatewayService определяет выдачу сессионных токенов шлюзу чат-бота
type GatewayService interface {
	// IssueToken проверяет ключ шлюза и выдает JWT для пользователя чата
	IssueToken(ctx context.Context, gatewayKey string, userID int64) (string, error)
}

// StoreService определяет движок жизненного цикла заказа
type StoreService interface {
	Purchase(ctx context.Context, userID, productID int64) (*PurchaseResult, error)
	Cancel(ctx context.Context, orderID, userID int64) (*CancelResult, error)
	Deliver(ctx context.Context, orderID int64, payload string) (*DeliverResult, error)
	GetCancellableOrder(ctx context.Context, userID int64) (*CancellableOrder, error)
	GetOrderHistory(ctx context.Context, userID int64) ([]*Order, error)
}

// BalanceService определяет методы работы с балансом
type BalanceService interface {
	GetBalance(ctx context.Context, userID int64) (float64, error)
	AdjustBalance(ctx context.Context, userID int64, delta float64) (float64, error)
	DeclareDeposit(ctx context.Context, userID int64, amount float64) (*DepositIntent, error)
}

// CatalogService определяет методы просмотра и управления каталогом
type CatalogService interface {
	GetCategories(ctx context.Context) ([]*Category, error)
	GetProducts(ctx context.Context, categoryID *int64) ([]*Product, error)
	AddProduct(ctx context.Context, name string, price float64, categoryID int64) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	AddCategory(ctx context.Context, name string) (*Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	GetButtons(ctx context.Context) ([]*CustomButton, error)
	AddButton(ctx context.Context, text, url string) (*CustomButton, error)
	DeleteButton(ctx context.Context, id int64) error
}

// SettingsService определяет методы работы с настройками
type SettingsService interface {
	GetSettings(ctx context.Context) (*Settings, error)
	UpdateSetting(ctx context.Context, key SettingKey, value string) error
}

// MessagingService определяет рассылки и обращения в поддержку
type MessagingService interface {
	Suggest(ctx context.Context, userID int64, text string) (string, error)
	Broadcast(ctx context.Context, text string) (int, error)
	DirectMessage(ctx context.Context, userID int64, text string) error
}

// StatsService определяет методы получения статистики
type StatsService interface {
	GetStatistics(ctx context.Context) (*Statistics, error)
}
