package jobs

import (
	"context"
	"log/slog"
	"time"

	"bakery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PendingOrderReminderJob periodically nudges the operator about orders that
// have sat in pending status past the staleness threshold.
type PendingOrderReminderJob struct {
	handler   commands.RemindPendingOrdersCommandHandler
	schedule  string
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPendingOrderReminderJob creates the reminder job. The schedule is a
// standard five-field cron expression; olderThan is how long an order may
// stay pending before a reminder goes out.
func NewPendingOrderReminderJob(
	handler commands.RemindPendingOrdersCommandHandler,
	schedule string,
	olderThan time.Duration,
	logger *slog.Logger,
) *PendingOrderReminderJob {
	return &PendingOrderReminderJob{
		handler:   handler,
		schedule:  schedule,
		olderThan: olderThan,
		cron:      cron.New(),
		logger:    logger.With("component", "pending_order_reminder_job"),
	}
}

// Start schedules the reminder sweep.
func (j *PendingOrderReminderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewRemindPendingOrdersCommand(j.olderThan)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending order reminder job misconfigured", "error", err)
			return
		}

		reminded, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending order reminder job failed", "error", err)
			return
		}

		if reminded > 0 {
			j.logger.InfoContext(ctx, "Dispatched pending order reminders", "count", reminded)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order reminder job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reminder job.
func (j *PendingOrderReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending order reminder job stopped")
}
