// Package metrics exposes Prometheus instrumentation for the HTTP surface and
// for registration validation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomePassed = "passed"
	OutcomeFailed = "failed"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ValidationOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registration_validation_total",
			Help: "Registration validations by outcome",
		},
		[]string{"outcome"},
	)

	// ValidationFieldErrors counts individual rule failures, so one request
	// can add several to the same field.
	ValidationFieldErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registration_validation_field_errors_total",
			Help: "Registration rule failures by field",
		},
		[]string{"field"},
	)
)

// RecordAPIRequest records one served request.
func RecordAPIRequest(method, path, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, path, status).Inc()
	APIRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordValidation records a validation run given the field of every failed rule.
func RecordValidation(failedFields []string) {
	if len(failedFields) == 0 {
		ValidationOutcomes.WithLabelValues(OutcomePassed).Inc()
		return
	}
	ValidationOutcomes.WithLabelValues(OutcomeFailed).Inc()
	for _, field := range failedFields {
		ValidationFieldErrors.WithLabelValues(field).Inc()
	}
}
