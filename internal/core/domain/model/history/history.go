// Package history models the append-only audit log kept for every entity.
// Each state transition becomes one Entry; entries are persisted in the same
// transaction as the state change and published as events after commit.
package history

import (
	"sort"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

type EntityType string

const (
	EntityOrder    EntityType = "order"
	EntityRoute    EntityType = "route"
	EntityDelivery EntityType = "delivery"
	EntityVehicle  EntityType = "vehicle"
)

func (t EntityType) Valid() bool {
	switch t {
	case EntityOrder, EntityRoute, EntityDelivery, EntityVehicle:
		return true
	}
	return false
}

// Entry is one transition of one entity. From and To are status names; they
// are equal for events that do not change status (stop added, evidence
// attached, incident reported).
type Entry struct {
	EntityType EntityType
	EntityID   kernel.UUID
	Event      string
	From       string
	To         string
	Note       string
	At         time.Time
}

// EventType is the routing name of the event emitted for this entry,
// e.g. "route.published".
func (e Entry) EventType() string {
	return string(e.EntityType) + "." + e.Event
}

// Recorder accumulates the transitions of one aggregate until a repository
// pulls them.
type Recorder struct {
	pending []Entry
}

func (r *Recorder) Record(entry Entry) {
	r.pending = append(r.pending, entry)
}

// HasTransitions reports whether entries are waiting to be pulled, i.e.
// whether the aggregate changed since it was loaded or last saved.
func (r *Recorder) HasTransitions() bool {
	return len(r.pending) > 0
}

// PullTransitions returns the recorded entries and forgets them.
func (r *Recorder) PullTransitions() []Entry {
	out := r.pending
	r.pending = nil
	return out
}

// Replay reconstructs the status an entity had at instant at. The second
// result is false when the entity did not exist yet.
func Replay(entries []Entry, at time.Time) (string, bool) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].At.Before(sorted[j].At)
	})

	status, found := "", false
	for _, e := range sorted {
		if e.At.After(at) {
			break
		}
		status, found = e.To, true
	}
	return status, found
}
