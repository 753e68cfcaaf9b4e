package jobs

import (
	"context"
	"log/slog"

	"pharmadmin/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// InTransitSyncer runs one in-transit sync cycle.
type InTransitSyncer interface {
	Handle(ctx context.Context, cmd commands.SyncInTransitOrdersCommand) (commands.SyncReport, error)
}

// InTransitSyncJob refreshes the in-transit index from the backend on a
// cron schedule.
type InTransitSyncJob struct {
	handler InTransitSyncer
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewInTransitSyncJob creates a job that runs handler on every tick.
func NewInTransitSyncJob(handler InTransitSyncer, logger *slog.Logger) *InTransitSyncJob {
	return &InTransitSyncJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.With("component", "in_transit_sync_job"),
	}
}

// RunNow performs one sync cycle synchronously.
func (j *InTransitSyncJob) RunNow(ctx context.Context) error {
	cmd := commands.NewSyncInTransitOrdersCommand()
	if _, err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "In-transit sync failed", "cycle_id", cmd.CycleID(), "error", err)
		return err
	}
	return nil
}

// Start schedules the sync on schedule.
func (j *InTransitSyncJob) Start(schedule string) error {
	_, err := j.cron.AddFunc(schedule, func() {
		_ = j.RunNow(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "In-transit sync job started", "schedule", schedule)
	return nil
}

// Stop stops the schedule and waits for a running cycle to finish.
func (j *InTransitSyncJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "In-transit sync job stopped")
}
