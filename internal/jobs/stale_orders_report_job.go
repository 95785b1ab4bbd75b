package jobs

import (
	"context"
	"time"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// reportedOrders caps the order ids written to one report line.
const reportedOrders = 20

type staleOrdersQueryHandler interface {
	Handle(ctx context.Context, query queries.GetStaleOrdersQuery) ([]queries.OrderSummary, error)
}

// StaleOrdersReportJob periodically reports validated orders that have not
// been dispatched within the threshold. It only reports; orders are never
// expired or touched.
type StaleOrdersReportJob struct {
	handler   staleOrdersQueryHandler
	gauge     prometheus.Gauge
	schedule  string
	threshold time.Duration
	timeout   time.Duration
	now       func() time.Time
	cron      *cron.Cron
	logger    *zap.Logger
}

// NewStaleOrdersReportJob creates the report job. schedule is a six-field
// cron expression (seconds first).
func NewStaleOrdersReportJob(
	handler staleOrdersQueryHandler,
	gauge prometheus.Gauge,
	schedule string,
	threshold time.Duration,
	logger *zap.Logger,
) *StaleOrdersReportJob {
	return &StaleOrdersReportJob{
		handler:   handler,
		gauge:     gauge,
		schedule:  schedule,
		threshold: threshold,
		timeout:   30 * time.Second,
		now:       func() time.Time { return time.Now().UTC() },
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With(zap.String("component", "stale_orders_report_job")),
	}
}

// Start schedules the report.
func (j *StaleOrdersReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()

		if err := j.Run(ctx); err != nil {
			j.logger.Error("Stale orders report failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Stale orders report job started",
		zap.String("schedule", j.schedule),
		zap.Duration("threshold", j.threshold),
	)
	return nil
}

// Run produces one report: the gauge is set to the number of stale orders
// and, when there are any, their ids are logged oldest first.
func (j *StaleOrdersReportJob) Run(ctx context.Context) error {
	query, err := queries.NewGetStaleOrdersQuery(j.threshold, j.now())
	if err != nil {
		return err
	}

	orders, err := j.handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	j.gauge.Set(float64(len(orders)))
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, 0, min(len(orders), reportedOrders))
	for _, o := range orders[:min(len(orders), reportedOrders)] {
		ids = append(ids, o.ID.String())
	}

	fields := []zap.Field{
		zap.Int("count", len(orders)),
		zap.Time("cutoff", query.Cutoff()),
		zap.Strings("orderIds", ids),
	}
	if oldest := orders[0].ValidatedAt; oldest != nil {
		fields = append(fields, zap.Duration("oldestWaiting", j.now().Sub(*oldest)))
	}
	j.logger.Warn("Validated orders waiting for dispatch", fields...)
	return nil
}

// Stop stops the schedule and waits for a running report to finish.
func (j *StaleOrdersReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Stale orders report job stopped")
}
