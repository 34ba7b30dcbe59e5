package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics содержит метрики жизненного цикла заказа
type StoreMetrics struct {
	purchases         prometheus.Counter
	purchasesRejected prometheus.Counter
	cancellations     prometheus.Counter
	deliveries        prometheus.Counter
	notifyFailures    prometheus.Counter
	broadcastMessages prometheus.Counter
	expiredWindows    prometheus.Counter
}

// NewStoreMetrics создает метрики и регистрирует их в реестре по умолчанию
func NewStoreMetrics() *StoreMetrics {
	return NewStoreMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewStoreMetricsWithRegisterer создает метрики с указанным реестром.
// Отдельный реестр нужен тестам для изоляции
func NewStoreMetricsWithRegisterer(registerer prometheus.Registerer) *StoreMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &StoreMetrics{
		purchases: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_purchases_total",
			Help: "Total number of completed purchases",
		}),
		purchasesRejected: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_purchases_rejected_total",
			Help: "Total number of purchases rejected for insufficient funds",
		}),
		cancellations: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_cancellations_total",
			Help: "Total number of cancelled orders",
		}),
		deliveries: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_deliveries_total",
			Help: "Total number of delivered orders",
		}),
		notifyFailures: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_notify_failures_total",
			Help: "Total number of failed gateway notifications",
		}),
		broadcastMessages: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_broadcast_messages_total",
			Help: "Total number of broadcast messages sent",
		}),
		expiredWindows: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_expired_windows_total",
			Help: "Total number of expired cancellation windows swept",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

// RecordPurchase увеличивает счетчик покупок
func (m *StoreMetrics) RecordPurchase() {
	m.purchases.Inc()
}

// RecordPurchaseRejected увеличивает счетчик отклоненных покупок
func (m *StoreMetrics) RecordPurchaseRejected() {
	m.purchasesRejected.Inc()
}

// RecordCancellation увеличивает счетчик отмен
func (m *StoreMetrics) RecordCancellation() {
	m.cancellations.Inc()
}

// RecordDelivery увеличивает счетчик доставок
func (m *StoreMetrics) RecordDelivery() {
	m.deliveries.Inc()
}

// RecordNotifyFailure увеличивает счетчик неудачных уведомлений
func (m *StoreMetrics) RecordNotifyFailure() {
	m.notifyFailures.Inc()
}

// RecordBroadcastMessage увеличивает счетчик отправленных сообщений рассылки
func (m *StoreMetrics) RecordBroadcastMessage() {
	m.broadcastMessages.Inc()
}

// RecordExpiredWindows увеличивает счетчик убранных просроченных окон
func (m *StoreMetrics) RecordExpiredWindows(n int64) {
	m.expiredWindows.Add(float64(n))
}
