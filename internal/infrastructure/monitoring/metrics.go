package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics manages the Prometheus metrics of one service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	TokenIssued         *prometheus.CounterVec
	TokenVerifications  *prometheus.CounterVec
}

// NewMetrics creates and registers the metrics for the named service.
func NewMetrics(service string) *Metrics {
	labels := prometheus.Labels{"service": service}
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "ecomovil_http_requests_total",
				Help:        "Total number of HTTP requests.",
				ConstLabels: labels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "ecomovil_http_request_duration_seconds",
				Help:        "Latency of HTTP requests.",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: labels,
			},
			[]string{"method", "path"},
		),
		TokenIssued: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "ecomovil_tokens_issued_total",
				Help:        "Total number of tokens issued.",
				ConstLabels: labels,
			},
			[]string{"result"},
		),
		TokenVerifications: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "ecomovil_token_verifications_total",
				Help:        "Total number of inbound token verifications.",
				ConstLabels: labels,
			},
			[]string{"result"},
		),
	}
}

// RecordHTTPRequest records one completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordTokenIssued records a token issuance outcome ("success"/"failure").
func (m *Metrics) RecordTokenIssued(result string) {
	m.TokenIssued.WithLabelValues(result).Inc()
}

// RecordTokenVerification records an inbound verification outcome.
func (m *Metrics) RecordTokenVerification(result string) {
	m.TokenVerifications.WithLabelValues(result).Inc()
}
