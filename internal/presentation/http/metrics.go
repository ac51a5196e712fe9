package http

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the per-service HTTP RED instruments.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the HTTP request counter and duration histogram with
// the given registerer. Each service passes its own registerer, so tests can
// use an isolated registry.
func NewMetrics(reg prometheus.Registerer, service string) *Metrics {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: prometheus.Labels{"service": service},
		},
		[]string{"method", "route", "status"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Duration of HTTP requests in seconds.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: prometheus.Labels{"service": service},
		},
		[]string{"method", "route"},
	)
	reg.MustRegister(requests, duration)
	return &Metrics{requests: requests, duration: duration}
}
