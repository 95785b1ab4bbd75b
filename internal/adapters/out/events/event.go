// Package events turns committed history entries into outbound events. Every
// publisher here is fire-and-forget: failures are logged and counted, never
// returned to the workflow that produced the transition.
package events

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/ports"
)

// Event is the JSON body put on the bus.
type Event struct {
	Type       string    `json:"type"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to"`
	Note       string    `json:"note,omitempty"`
	At         time.Time `json:"at"`
}

func FromEntry(e history.Entry) Event {
	return Event{
		Type:       e.EventType(),
		EntityType: string(e.EntityType),
		EntityID:   e.EntityID.String(),
		From:       e.From,
		To:         e.To,
		Note:       e.Note,
		At:         e.At.UTC(),
	}
}

// Fanout hands every batch to each publisher in turn.
type Fanout []ports.EventPublisher

func (f Fanout) Publish(ctx context.Context, entries []history.Entry) {
	for _, p := range f {
		if p != nil {
			p.Publish(ctx, entries)
		}
	}
}
