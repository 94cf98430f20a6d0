package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds Prometheus metrics for business-level observability.
// All webhook metrics include the event_type label so dashboards can segment
// the calculate/confirm/refund/cancel flows.
type BusinessMetrics struct {
	// Webhooks
	WebhookReceived  *prometheus.CounterVec
	WebhookProcessed *prometheus.CounterVec
	WebhookFailed    *prometheus.CounterVec
	WebhookLatency   *prometheus.HistogramVec

	// Tax calculation outcomes
	TaxCalculations *prometheus.CounterVec
	TaxLineCount    *prometheus.HistogramVec
	OrdersConfirmed *prometheus.CounterVec
	OrdersRefunded  *prometheus.CounterVec
	OrdersCancelled *prometheus.CounterVec

	// External API performance
	ProviderAPILatency  *prometheus.HistogramVec
	ProviderAPIFailures *prometheus.CounterVec
}

// NewBusinessMetrics creates and registers all business metrics
func NewBusinessMetrics(namespace string) *BusinessMetrics {
	if namespace == "" {
		namespace = "taxbridge"
	}

	subsystem := "business"

	m := &BusinessMetrics{
		// =======================================================================
		// Webhooks
		// =======================================================================
		WebhookReceived: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "webhook_received_total",
				Help:      "Total webhooks received",
			},
			[]string{"event_type"},
		),
		WebhookProcessed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "webhook_processed_total",
				Help:      "Total webhooks successfully processed",
			},
			[]string{"event_type"},
		),
		WebhookFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "webhook_failed_total",
				Help:      "Total webhook processing failures",
			},
			[]string{"event_type", "error_type"},
		),
		WebhookLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "webhook_processing_seconds",
				Help:      "Webhook processing duration",
				Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"event_type"},
		),

		// =======================================================================
		// Tax Calculation Outcomes
		// =======================================================================
		TaxCalculations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "tax_calculations_total",
				Help:      "Total tax calculations by source object type",
			},
			[]string{"source_type"}, // source_type: Checkout, Order
		),
		TaxLineCount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "tax_calculation_line_count",
				Help:      "Number of lines per tax calculation",
				Buckets:   []float64{1, 2, 3, 5, 10, 20, 50, 100},
			},
			[]string{"source_type"},
		),
		OrdersConfirmed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "orders_confirmed_total",
				Help:      "Total order transactions recorded with the provider",
			},
			[]string{"provider"},
		),
		OrdersRefunded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "orders_refunded_total",
				Help:      "Total order refunds recorded with the provider",
			},
			[]string{"provider"},
		),
		OrdersCancelled: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "orders_cancelled_total",
				Help:      "Total order transactions voided with the provider",
			},
			[]string{"provider"},
		),

		// =======================================================================
		// External API Performance
		// =======================================================================
		ProviderAPILatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "provider_api_duration_seconds",
				Help:      "Tax provider API call duration (helps differentiate app slowness from provider issues)",
				Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"provider", "operation"}, // operation: create_transaction, commit, void, refund, ping
		),
		ProviderAPIFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "provider_api_failures_total",
				Help:      "Total tax provider API call failures",
			},
			[]string{"provider", "operation"},
		),
	}

	return m
}

// Global instance for easy access from handlers
var Business *BusinessMetrics

// InitBusinessMetrics initializes the global business metrics instance
func InitBusinessMetrics(namespace string) *BusinessMetrics {
	Business = NewBusinessMetrics(namespace)
	return Business
}

// RecordProviderCall records the latency and outcome of one provider API
// round trip. Safe to call before InitBusinessMetrics (no-op).
func RecordProviderCall(provider, operation string, start time.Time, err error) {
	if Business == nil {
		return
	}
	Business.ProviderAPILatency.WithLabelValues(provider, operation).Observe(time.Since(start).Seconds())
	if err != nil {
		Business.ProviderAPIFailures.WithLabelValues(provider, operation).Inc()
	}
}
