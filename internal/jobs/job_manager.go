package jobs

import "fmt"

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []namedJob
	started int
}

type namedJob struct {
	name string
	job  job
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(staleOrdersReportJob *StaleOrdersReportJob) *JobManager {
	return &JobManager{
		jobs: []namedJob{
			{name: "stale orders report", job: staleOrdersReportJob},
		},
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start; jobs already started are
// stopped again.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", j.name, err)
		}
		jm.started = i + 1
	}
	return nil
}

// StopAll stops all started jobs gracefully, in reverse start order.
func (jm *JobManager) StopAll() {
	for i := jm.started - 1; i >= 0; i-- {
		jm.jobs[i].job.Stop()
	}
	jm.started = 0
}
