package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNewStorefrontMetrics(t *testing.T) {
	metrics := newStorefrontMetricsWithRegisterer(prometheus.NewRegistry())

	if metrics == nil {
		t.Fatal("newStorefrontMetricsWithRegisterer should not return nil")
	}
	if metrics.ordersCreated == nil {
		t.Error("ordersCreated counter should not be nil")
	}
	if metrics.ordersRejected == nil {
		t.Error("ordersRejected counter vec should not be nil")
	}
	if metrics.checkoutDuration == nil {
		t.Error("checkoutDuration histogram should not be nil")
	}
	if metrics.httpRequests == nil {
		t.Error("httpRequests counter vec should not be nil")
	}
	if metrics.httpDuration == nil {
		t.Error("httpDuration histogram vec should not be nil")
	}
	if metrics.pendingOrders == nil {
		t.Error("pendingOrders gauge should not be nil")
	}
}

func TestNewStorefrontMetrics_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()

	first := newStorefrontMetricsWithRegisterer(reg)
	second := newStorefrontMetricsWithRegisterer(reg)

	first.RecordOrderCreated()
	second.RecordOrderCreated()

	metric := &dto.Metric{}
	if err := first.ordersCreated.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2.0 {
		t.Errorf("expected shared counter value 2.0, got %f", metric.Counter.GetValue())
	}
}

func TestRecordOrderCreated(t *testing.T) {
	reg := prometheus.NewRegistry()

	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_orders_created_total",
		Help: "Test counter",
	})
	pendingOrders := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "test_pending_orders",
		Help: "Test gauge",
	})

	reg.MustRegister(ordersCreated, pendingOrders)

	metrics := &StorefrontMetrics{
		ordersCreated: ordersCreated,
		pendingOrders: pendingOrders,
	}

	metrics.RecordOrderCreated()

	metric := &dto.Metric{}
	if err := ordersCreated.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 1.0 {
		t.Errorf("expected counter value 1.0, got %f", metric.Counter.GetValue())
	}

	gaugeMetric := &dto.Metric{}
	if err := pendingOrders.Write(gaugeMetric); err != nil {
		t.Fatalf("failed to write gauge: %v", err)
	}
	if gaugeMetric.Gauge.GetValue() != 1.0 {
		t.Errorf("expected pending orders 1.0, got %f", gaugeMetric.Gauge.GetValue())
	}
}

func TestRecordOrderRejected(t *testing.T) {
	metrics := newStorefrontMetricsWithRegisterer(prometheus.NewRegistry())

	metrics.RecordOrderRejected("empty_order")
	metrics.RecordOrderRejected("empty_order")
	metrics.RecordOrderRejected("product_not_found")

	metric := &dto.Metric{}
	if err := metrics.ordersRejected.WithLabelValues("empty_order").Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2.0 {
		t.Errorf("expected counter value 2.0, got %f", metric.Counter.GetValue())
	}
}

func TestRecordCheckoutDuration(t *testing.T) {
	metrics := newStorefrontMetricsWithRegisterer(prometheus.NewRegistry())

	metrics.RecordCheckoutDuration(150 * time.Millisecond)

	metric := &dto.Metric{}
	if err := metrics.checkoutDuration.Write(metric); err != nil {
		t.Fatalf("failed to write histogram: %v", err)
	}
	if metric.Histogram.GetSampleCount() != 1 {
		t.Errorf("expected 1 observation, got %d", metric.Histogram.GetSampleCount())
	}
}

func TestRecordHTTPRequest(t *testing.T) {
	metrics := newStorefrontMetricsWithRegisterer(prometheus.NewRegistry())

	metrics.RecordHTTPRequest("GET", "/api/products", "200", 5*time.Millisecond)
	metrics.RecordHTTPRequest("GET", "/api/products", "200", 7*time.Millisecond)

	metric := &dto.Metric{}
	if err := metrics.httpRequests.WithLabelValues("GET", "/api/products", "200").Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2.0 {
		t.Errorf("expected counter value 2.0, got %f", metric.Counter.GetValue())
	}
}
