// Package jobs provides scheduled background tasks for the dispatch service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and managed through JobManager:
//
//	jobManager := jobs.NewJobManager(staleOrdersReportJob)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// StaleOrdersReportJob lists validated orders that have waited longer than
// the configured threshold without being dispatched. It logs the oldest ones
// and sets the dispatch_stale_orders gauge. It is a business report and never
// changes an order.
package jobs
