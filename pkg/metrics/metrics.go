package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Authentication metrics
	LoginAttemptsTotal prometheus.Counter
	LoginFailuresTotal prometheus.Counter

	// Storefront metrics
	CartOperationsTotal   *prometheus.CounterVec
	OrdersPlacedTotal     prometheus.Counter
	KycSubmissionsTotal   prometheus.Counter
	KycDecisionsTotal     *prometheus.CounterVec
	ImageUploadBytesTotal prometheus.Counter

	initOnce sync.Once
)

// Init registers all Prometheus metrics with the given name prefix
func Init(prefix string) {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		)

		LoginAttemptsTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_login_attempts_total",
				Help: "Total number of login attempts",
			},
		)

		LoginFailuresTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_login_failures_total",
				Help: "Total number of failed login attempts",
			},
		)

		CartOperationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_cart_operations_total",
				Help: "Total number of cart operations",
			},
			[]string{"operation"},
		)

		OrdersPlacedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_orders_placed_total",
				Help: "Total number of orders placed at checkout",
			},
		)

		KycSubmissionsTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_kyc_submissions_total",
				Help: "Total number of KYC submissions",
			},
		)

		KycDecisionsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_kyc_decisions_total",
				Help: "Total number of admin KYC decisions",
			},
			[]string{"decision"},
		)

		ImageUploadBytesTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_image_upload_bytes_total",
				Help: "Total bytes uploaded to image storage",
			},
		)
	})
}

// RecordCartOperation increments the counter for cart operations
func RecordCartOperation(operation string) {
	if CartOperationsTotal != nil {
		CartOperationsTotal.WithLabelValues(operation).Inc()
	}
}

// RecordKycDecision increments the counter for admin KYC decisions
func RecordKycDecision(decision string) {
	if KycDecisionsTotal != nil {
		KycDecisionsTotal.WithLabelValues(decision).Inc()
	}
}
