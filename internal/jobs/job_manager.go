// Package jobs provides the cron-scheduled background tasks of the bakery
// service, currently the pending order reminder sweep.
package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"bakery/internal/core/application/usecases/commands"
)

// JobManager coordinates the application's scheduled jobs.
type JobManager struct {
	pendingOrderReminderJob *PendingOrderReminderJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	remindHandler commands.RemindPendingOrdersCommandHandler,
	reminderSchedule string,
	reminderOlderThan time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingOrderReminderJob: NewPendingOrderReminderJob(remindHandler, reminderSchedule, reminderOlderThan, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingOrderReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending order reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingOrderReminderJob.Stop()
}
