package metrics

import "github.com/prometheus/client_golang/prometheus"

// OrderMetrics содержит метрики слайса заказов.
type OrderMetrics struct {
	// Счётчики операций
	ordersCreated  prometheus.Counter
	ordersRejected *prometheus.CounterVec
	discountsUsed  prometheus.Counter

	// Гистограмма итоговой суммы заказа (до скидки)
	orderTotal prometheus.Histogram
}

// Причины отказа для лейбла reason.
const (
	RejectReasonEmptyOrder      = "empty_order"
	RejectReasonMissingPrice    = "missing_price"
	RejectReasonMissingProduct  = "missing_product_id"
	RejectReasonInvalidQty      = "invalid_quantity"
	RejectReasonInvalidDiscount = "invalid_discount"
)

// NewOrderMetrics создаёт новый экземпляр метрик заказов.
func NewOrderMetrics() *OrderMetrics {
	return newOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "bos_orders_created_total",
			Help: "Total number of orders successfully created",
		}),
		ordersRejected: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "bos_orders_rejected_total",
			Help: "Total number of order requests rejected by validation",
		}, []string{"reason"}),
		discountsUsed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "bos_discounts_applied_total",
			Help: "Total number of orders with a positive discount applied",
		}),
		orderTotal: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "bos_order_total",
			Help:    "Distribution of pre-discount order totals",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
	}
}

// RecordOrderCreated учитывает успешно созданный заказ и его сумму до скидки.
func (m *OrderMetrics) RecordOrderCreated(total float64) {
	m.ordersCreated.Inc()
	m.orderTotal.Observe(total)
}

// RecordOrderRejected учитывает отклонённый запрос с причиной отказа.
func (m *OrderMetrics) RecordOrderRejected(reason string) {
	m.ordersRejected.WithLabelValues(reason).Inc()
}

// RecordDiscountApplied учитывает заказ с применённой скидкой.
func (m *OrderMetrics) RecordDiscountApplied() {
	m.discountsUsed.Inc()
}
