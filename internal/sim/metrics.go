// Package sim implements a stand-in for the AgenticSeek backend.
package sim

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments exposed on GET /metrics.
// They live in a private registry so tests can run simulators side by
// side without duplicate registration panics.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	QueriesTotal    prometheus.Counter
	AgentBusy       prometheus.Gauge
}

// NewMetrics creates and registers the simulator metrics.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "seeksim",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, by path and status code",
	}, []string{"path", "code"})

	m.RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "seeksim",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds, by path",
	}, []string{"path"})

	m.QueriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "seeksim",
		Subsystem: "agent",
		Name:      "queries_total",
		Help:      "Queries accepted by the agent",
	})

	m.AgentBusy = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "seeksim",
		Subsystem: "agent",
		Name:      "busy",
		Help:      "Whether the agent is processing a query (1) or idle (0)",
	})

	m.registry.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.QueriesTotal,
		m.AgentBusy,
	)

	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
