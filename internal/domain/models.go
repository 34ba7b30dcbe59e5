package domain

import "time"

// OrderStatus представляет статус заказа
type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// DeliveryStatus представляет статус доставки заказа
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "Pending"
	DeliveryStatusDelivered DeliveryStatus = "Delivered"
	DeliveryStatusNone      DeliveryStatus = "N/A"
)

// User представляет пользователя магазина
// Создается лениво при первом обращении, никогда не удаляется
type User struct {
	ID           int64     `json:"id"`
	Balance      float64   `json:"balance"`
	LastActivity time.Time `json:"last_activity"`
}

// Category представляет раздел каталога
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product представляет товар каталога
type Product struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	CategoryID *int64  `json:"category_id,omitempty"` // NULL после удаления раздела
}

// Order представляет заказ. Название и цена товара фиксируются
// в момент покупки и не зависят от дальнейших изменений каталога
type Order struct {
	ID             int64          `json:"id"`
	UserID         int64          `json:"-"`
	ProductName    string         `json:"product_name"`
	Price          float64        `json:"price"`
	Status         OrderStatus    `json:"status"`
	DeliveryStatus DeliveryStatus `json:"delivery_status"`
	CreatedAt      time.Time      `json:"created_at"`
}

// CancellableOrder представляет окно отмены заказа
type CancellableOrder struct {
	OrderID     int64     `json:"order_id"`
	UserID      int64     `json:"-"`
	ProductName string    `json:"product_name"`
	Price       float64   `json:"price"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// CustomButton представляет произвольную ссылку в меню пользователя
type CustomButton struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
	URL  string `json:"url"`
}

// SettingKey представляет ключ настройки из закрытого перечисления
type SettingKey string

const (
	SettingWalletAddress       SettingKey = "wallet_address"
	SettingSupportContact      SettingKey = "support_contact"
	SettingCurrencySymbol      SettingKey = "currency_symbol"
	SettingWelcomeMessage      SettingKey = "welcome_message"
	SettingAdminWelcomeMessage SettingKey = "admin_welcome_message"
	SettingCancellationMinutes SettingKey = "cancellation_minutes"
	SettingFAQText             SettingKey = "faq_text"
	SettingSuggestionThanks    SettingKey = "suggestion_thanks"
)

// KnownSettingKeys перечисляет все допустимые ключи настроек
var KnownSettingKeys = []SettingKey{
	SettingWalletAddress,
	SettingSupportContact,
	SettingCurrencySymbol,
	SettingWelcomeMessage,
	SettingAdminWelcomeMessage,
	SettingCancellationMinutes,
	SettingFAQText,
	SettingSuggestionThanks,
}

// Settings представляет типизированный снимок всех настроек магазина
type Settings struct {
	WalletAddress       string `json:"wallet_address"`
	SupportContact      string `json:"support_contact"`
	CurrencySymbol      string `json:"currency_symbol"`
	WelcomeMessage      string `json:"welcome_message"`
	AdminWelcomeMessage string `json:"admin_welcome_message"`
	CancellationMinutes int    `json:"cancellation_minutes"`
	FAQText             string `json:"faq_text"`
	SuggestionThanks    string `json:"suggestion_thanks"`
}

// Statistics представляет сводку магазина для админа
type Statistics struct {
	Users    int64   `json:"users"`
	Products int64   `json:"products"`
	Orders   int64   `json:"orders"`
	Revenue  float64 `json:"revenue"`
}

// PurchaseResult представляет результат успешной покупки
type PurchaseResult struct {
	Order      *Order  `json:"order"`
	NewBalance float64 `json:"new_balance"`
}

// CancelResult представляет результат успешной отмены
type CancelResult struct {
	Order    *Order  `json:"order"`
	Refunded float64 `json:"refunded"`
}

// DeliverResult представляет результат доставки заказа
type DeliverResult struct {
	Order *Order `json:"order"`
	// Redelivered выставляется при повторной доставке уже доставленного заказа
	Redelivered bool `json:"redelivered"`
}

// DepositIntent представляет заявленный пользователем депозит
// Зачисление выполняется админом вручную после сверки
type DepositIntent struct {
	UserID        int64   `json:"user_id"`
	Amount        float64 `json:"amount"`
	WalletAddress string  `json:"wallet_address"`
	Currency      string  `json:"currency"`
}
