package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewOrderMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := newOrderMetricsWithRegisterer(registry)

	if metrics.ordersCreated == nil {
		t.Error("ordersCreated counter should not be nil")
	}
	if metrics.ordersRejected == nil {
		t.Error("ordersRejected counter vec should not be nil")
	}
	if metrics.discountsUsed == nil {
		t.Error("discountsUsed counter should not be nil")
	}
	if metrics.orderTotal == nil {
		t.Error("orderTotal histogram should not be nil")
	}
}

func TestOrderMetrics_Record(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := newOrderMetricsWithRegisterer(registry)

	metrics.RecordOrderCreated(30)
	metrics.RecordDiscountApplied()
	metrics.RecordOrderRejected(RejectReasonEmptyOrder)
	metrics.RecordOrderRejected(RejectReasonMissingPrice)

	if got := counterValue(t, metrics.ordersCreated); got != 1 {
		t.Fatalf("expected 1 created order, got %v", got)
	}
	if got := counterValue(t, metrics.discountsUsed); got != 1 {
		t.Fatalf("expected 1 applied discount, got %v", got)
	}
	if got := counterValue(t, metrics.ordersRejected.WithLabelValues(RejectReasonMissingPrice)); got != 1 {
		t.Fatalf("expected 1 missing_price rejection, got %v", got)
	}
}
