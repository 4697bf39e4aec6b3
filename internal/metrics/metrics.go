// internal/metrics/metrics.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Calculation outcomes.
const (
	OutcomeOK            = "ok"
	OutcomeNotFound      = "not_found"
	OutcomeInvalidAmount = "invalid_amount"
	OutcomeError         = "error"
)

type Metrics struct {
	registry     *prometheus.Registry
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	calculations *prometheus.CounterVec
}

// New registers the collectors on a private registry, so tests can build as
// many instances as they like.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "loan_catalog",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "loan_catalog",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "loan_catalog",
			Name:      "calculations_total",
			Help:      "Loan calculations by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.duration,
		m.calculations,
	)
	return m
}

func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	m.requests.WithLabelValues(method, route, status).Inc()
	m.duration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) ObserveCalculation(outcome string) {
	m.calculations.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
