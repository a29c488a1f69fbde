// Package metrics exposes prometheus counters for analyses, exports and HTTP traffic.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cng-analyzer/internal/model"
)

type Metrics struct {
	registry *prometheus.Registry

	analyses        *prometheus.CounterVec
	exports         *prometheus.CounterVec
	logAppendErrors prometheus.Counter
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// New registers every collector on its own registry, not the global default.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cng_analyses_total",
			Help: "Analyses run, by recommendation tier.",
		}, []string{"tier"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cng_exports_total",
			Help: "Reports exported, by format.",
		}, []string{"format"}),
		logAppendErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cng_log_append_errors_total",
			Help: "Failed usage log appends.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}

	m.registry.MustRegister(
		m.analyses,
		m.exports,
		m.logAppendErrors,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

func (m *Metrics) ObserveAnalysis(tier model.Recommendation) {
	m.analyses.WithLabelValues(string(tier)).Inc()
}

func (m *Metrics) ObserveExport(format string) {
	m.exports.WithLabelValues(format).Inc()
}

func (m *Metrics) ObserveLogAppendError() {
	m.logAppendErrors.Inc()
}

func (m *Metrics) ObserveHTTP(route, status string, seconds float64) {
	m.httpRequests.WithLabelValues(route, status).Inc()
	m.httpDuration.WithLabelValues(route).Observe(seconds)
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
