package jobs

import (
	"fmt"
	"log/slog"

	"waybill/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	waybillMonitoringJob *WaybillMonitoringJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	uncompletedWaybillsHandler queries.GetUncompletedWaybillsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		waybillMonitoringJob: NewWaybillMonitoringJob(uncompletedWaybillsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.waybillMonitoringJob.Start(); err != nil {
		return fmt.Errorf("failed to start waybill monitoring job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.waybillMonitoringJob.Stop()
}
