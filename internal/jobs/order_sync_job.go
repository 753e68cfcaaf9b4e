package jobs

import (
	"context"
	"log/slog"

	"pharmadmin/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderSyncer runs one order sync cycle.
type OrderSyncer interface {
	Handle(ctx context.Context, cmd commands.SyncOrdersCommand) (commands.SyncReport, error)
}

// OrderSyncJob refreshes the order index from the backend on a cron schedule.
type OrderSyncJob struct {
	handler OrderSyncer
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderSyncJob creates a job that runs handler on every tick.
func NewOrderSyncJob(handler OrderSyncer, logger *slog.Logger) *OrderSyncJob {
	return &OrderSyncJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.With("component", "order_sync_job"),
	}
}

// RunNow performs one sync cycle synchronously. Failures are logged and
// returned; the handler has already recorded them.
func (j *OrderSyncJob) RunNow(ctx context.Context) error {
	cmd := commands.NewSyncOrdersCommand()
	if _, err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Order sync failed", "cycle_id", cmd.CycleID(), "error", err)
		return err
	}
	return nil
}

// Start schedules the sync on schedule, a six-field cron expression.
func (j *OrderSyncJob) Start(schedule string) error {
	_, err := j.cron.AddFunc(schedule, func() {
		_ = j.RunNow(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order sync job started", "schedule", schedule)
	return nil
}

// Stop stops the schedule and waits for a running cycle to finish.
func (j *OrderSyncJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order sync job stopped")
}
