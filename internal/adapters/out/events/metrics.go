package events

import (
	"context"

	"dispatch/internal/adapters/out/metrics"
	"dispatch/internal/core/domain/model/history"
)

// MetricsPublisher counts transitions per entity type and event.
type MetricsPublisher struct {
	metrics *metrics.Metrics
}

func NewMetricsPublisher(m *metrics.Metrics) *MetricsPublisher {
	return &MetricsPublisher{metrics: m}
}

func (p *MetricsPublisher) Publish(_ context.Context, entries []history.Entry) {
	for _, e := range entries {
		p.metrics.Transitions.WithLabelValues(string(e.EntityType), e.Event).Inc()
	}
}
