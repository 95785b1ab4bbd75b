// Package metrics owns the Prometheus registry of the service and the
// collectors fed by the event publisher, the stale-orders job and the HTTP
// middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Metrics struct {
	Registry *prometheus.Registry

	// Transitions counts committed transitions by entity type and event.
	Transitions *prometheus.CounterVec

	// PublishFailures counts events the bus refused.
	PublishFailures *prometheus.CounterVec

	// StaleOrders is the size of the last stale-orders report.
	StaleOrders prometheus.Gauge

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New builds the collectors on a dedicated registry, together with the Go
// and process collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dispatch",
				Name:      "transitions_total",
				Help:      "Committed state transitions by entity type and event.",
			},
			[]string{"entity_type", "event"},
		),
		PublishFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dispatch",
				Name:      "event_publish_failures_total",
				Help:      "Events that could not be handed to the bus.",
			},
			[]string{"event_type"},
		),
		StaleOrders: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "dispatch",
			Name:      "stale_orders",
			Help:      "Validated orders not dispatched within the configured threshold.",
		}),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
	}

	m.Registry.MustRegister(
		m.Transitions,
		m.PublishFailures,
		m.StaleOrders,
		m.HTTPRequests,
		m.HTTPDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}
