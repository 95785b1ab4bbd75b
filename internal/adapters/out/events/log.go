package events

import (
	"context"

	"dispatch/internal/core/domain/model/history"

	"go.uber.org/zap"
)

type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With(zap.String("component", "events"))}
}

func (p *LogPublisher) Publish(_ context.Context, entries []history.Entry) {
	for _, e := range entries {
		p.logger.Debug("transition committed",
			zap.String("event", e.EventType()),
			zap.Stringer("entityId", e.EntityID),
			zap.String("from", e.From),
			zap.String("to", e.To),
			zap.String("note", e.Note),
			zap.Time("at", e.At),
		)
	}
}
