package history_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestRecorder_PullTransitions(t *testing.T) {
	var r history.Recorder
	id := kernel.NewUUID()
	assert.False(t, r.HasTransitions())

	r.Record(history.Entry{EntityType: history.EntityRoute, EntityID: id, Event: "created", To: "draft"})
	r.Record(history.Entry{EntityType: history.EntityRoute, EntityID: id, Event: "published", From: "draft", To: "published"})

	assert.True(t, r.HasTransitions())

	pulled := r.PullTransitions()
	assert.Len(t, pulled, 2)
	assert.Equal(t, "route.published", pulled[1].EventType())
	assert.Empty(t, r.PullTransitions())
	assert.False(t, r.HasTransitions())
}

func TestReplay(t *testing.T) {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	id := kernel.NewUUID()
	entries := []history.Entry{
		{EntityType: history.EntityDelivery, EntityID: id, Event: "departed", From: "pending", To: "en_route", At: base.Add(time.Hour)},
		{EntityType: history.EntityDelivery, EntityID: id, Event: "created", To: "pending", At: base},
		{EntityType: history.EntityDelivery, EntityID: id, Event: "completed", From: "en_route", To: "delivered_complete", At: base.Add(3 * time.Hour)},
	}

	tests := []struct {
		name      string
		at        time.Time
		want      string
		wantFound bool
	}{
		{name: "before creation", at: base.Add(-time.Minute)},
		{name: "at creation", at: base, want: "pending", wantFound: true},
		{name: "between transitions", at: base.Add(2 * time.Hour), want: "en_route", wantFound: true},
		{name: "after completion", at: base.Add(24 * time.Hour), want: "delivered_complete", wantFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := history.Replay(entries, tt.at)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntityType_Valid(t *testing.T) {
	assert.True(t, history.EntityOrder.Valid())
	assert.True(t, history.EntityVehicle.Valid())
	assert.False(t, history.EntityType("stop").Valid())
}
