package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type staleOrdersFunc func(ctx context.Context, query queries.GetStaleOrdersQuery) ([]queries.OrderSummary, error)

func (f staleOrdersFunc) Handle(ctx context.Context, query queries.GetStaleOrdersQuery) ([]queries.OrderSummary, error) {
	return f(ctx, query)
}

func newGauge() prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{Name: "stale_orders"})
}

func TestStaleOrdersReportJob_Run(t *testing.T) {
	now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
	validatedAt := now.Add(-30 * time.Hour)
	stale := []queries.OrderSummary{
		{ID: kernel.NewUUID(), ValidatedAt: &validatedAt},
		{ID: kernel.NewUUID(), ValidatedAt: &validatedAt},
	}

	var cutoff time.Time
	gauge := newGauge()
	core, logs := observer.New(zapcore.InfoLevel)
	job := NewStaleOrdersReportJob(staleOrdersFunc(func(_ context.Context, q queries.GetStaleOrdersQuery) ([]queries.OrderSummary, error) {
		cutoff = q.Cutoff()
		return stale, nil
	}), gauge, "0 */15 * * * *", 24*time.Hour, zap.New(core))
	job.now = func() time.Time { return now }

	require.NoError(t, job.Run(context.Background()))

	assert.Equal(t, now.Add(-24*time.Hour), cutoff)
	assert.InDelta(t, 2, testutil.ToFloat64(gauge), 0)
	entries := logs.FilterMessage("Validated orders waiting for dispatch").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["count"])
	assert.Equal(t, "stale_orders_report_job", entries[0].ContextMap()["component"])
}

func TestStaleOrdersReportJob_RunWithNothingStale(t *testing.T) {
	gauge := newGauge()
	gauge.Set(5)
	core, logs := observer.New(zapcore.InfoLevel)
	job := NewStaleOrdersReportJob(staleOrdersFunc(func(context.Context, queries.GetStaleOrdersQuery) ([]queries.OrderSummary, error) {
		return nil, nil
	}), gauge, "0 */15 * * * *", time.Hour, zap.New(core))

	require.NoError(t, job.Run(context.Background()))

	assert.InDelta(t, 0, testutil.ToFloat64(gauge), 0)
	assert.Zero(t, logs.FilterMessage("Validated orders waiting for dispatch").Len())
}

func TestStaleOrdersReportJob_RunKeepsGaugeOnFailure(t *testing.T) {
	gauge := newGauge()
	gauge.Set(3)
	job := NewStaleOrdersReportJob(staleOrdersFunc(func(context.Context, queries.GetStaleOrdersQuery) ([]queries.OrderSummary, error) {
		return nil, errors.New("database is down")
	}), gauge, "0 */15 * * * *", time.Hour, zap.NewNop())

	require.Error(t, job.Run(context.Background()))
	assert.InDelta(t, 3, testutil.ToFloat64(gauge), 0)
}

func TestStaleOrdersReportJob_InvalidThreshold(t *testing.T) {
	job := NewStaleOrdersReportJob(staleOrdersFunc(func(context.Context, queries.GetStaleOrdersQuery) ([]queries.OrderSummary, error) {
		t.Fatal("query must not run")
		return nil, nil
	}), newGauge(), "0 */15 * * * *", 0, zap.NewNop())

	assert.Error(t, job.Run(context.Background()))
}

func TestJobManager_StartAndStop(t *testing.T) {
	job := NewStaleOrdersReportJob(staleOrdersFunc(func(context.Context, queries.GetStaleOrdersQuery) ([]queries.OrderSummary, error) {
		return nil, nil
	}), newGauge(), "0 0 3 * * *", time.Hour, zap.NewNop())
	manager := NewJobManager(job)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestJobManager_InvalidSchedule(t *testing.T) {
	job := NewStaleOrdersReportJob(staleOrdersFunc(func(context.Context, queries.GetStaleOrdersQuery) ([]queries.OrderSummary, error) {
		return nil, nil
	}), newGauge(), "every quarter hour", time.Hour, zap.NewNop())

	err := NewJobManager(job).StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "stale orders report")
}
