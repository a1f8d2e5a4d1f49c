package jobs

import (
	"context"
	"log/slog"

	"waybill/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// monitoringSchedule fires at second 0 of every minute (seconds-field cron syntax).
const monitoringSchedule = "0 * * * * *"

// WaybillMonitoringJob periodically reports how many waybills are still in
// flight. Runs every minute and logs the count per status, giving operators a
// heartbeat view of the pipeline without a metrics stack.
type WaybillMonitoringJob struct {
	handler queries.GetUncompletedWaybillsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewWaybillMonitoringJob creates a new job for monitoring in-flight waybills.
func NewWaybillMonitoringJob(
	handler queries.GetUncompletedWaybillsQueryHandler,
	logger *slog.Logger,
) *WaybillMonitoringJob {
	return &WaybillMonitoringJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "waybill_monitoring_job"),
	}
}

// Start begins the monitoring job to run every minute.
func (j *WaybillMonitoringJob) Start() error {
	_, err := j.cron.AddFunc(monitoringSchedule, func() {
		ctx := context.Background()
		query := queries.NewGetUncompletedWaybillsQuery()

		waybills, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Waybill monitoring job failed", "error", handleErr)
			return
		}

		perStatus := make(map[string]int)
		for _, wb := range waybills {
			perStatus[wb.Status.String()]++
		}

		j.logger.InfoContext(ctx, "Waybills in flight",
			"total", len(waybills),
			"perStatus", perStatus,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Waybill monitoring job started (running every minute)")
	return nil
}

// Stop stops the monitoring job.
func (j *WaybillMonitoringJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Waybill monitoring job stopped")
}
