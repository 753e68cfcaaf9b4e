package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// JobManager coordinates the sync jobs of both collections.
type JobManager struct {
	orderSyncJob     *OrderSyncJob
	inTransitSyncJob *InTransitSyncJob
	schedule         string
	started          bool
}

// NewJobManager creates the sync jobs. An empty schedule disables periodic
// refresh; RunAll still works.
func NewJobManager(
	orderSyncer OrderSyncer,
	inTransitSyncer InTransitSyncer,
	schedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderSyncJob:     NewOrderSyncJob(orderSyncer, logger),
		inTransitSyncJob: NewInTransitSyncJob(inTransitSyncer, logger),
		schedule:         schedule,
	}
}

// RunAll runs one sync cycle of each collection. Both cycles run even when
// the first fails; the failures are joined.
func (jm *JobManager) RunAll(ctx context.Context) error {
	return errors.Join(
		jm.orderSyncJob.RunNow(ctx),
		jm.inTransitSyncJob.RunNow(ctx),
	)
}

// StartAll schedules both jobs. It is a no-op without a schedule.
func (jm *JobManager) StartAll() error {
	if jm.schedule == "" {
		return nil
	}

	if err := jm.orderSyncJob.Start(jm.schedule); err != nil {
		return fmt.Errorf("failed to start order sync job: %w", err)
	}

	if err := jm.inTransitSyncJob.Start(jm.schedule); err != nil {
		jm.orderSyncJob.Stop()
		return fmt.Errorf("failed to start in-transit sync job: %w", err)
	}

	jm.started = true
	return nil
}

// StopAll stops both jobs and waits for running cycles.
func (jm *JobManager) StopAll() {
	if !jm.started {
		return
	}
	jm.inTransitSyncJob.Stop()
	jm.orderSyncJob.Stop()
	jm.started = false
}
