package commands

import (
	"context"
	"log/slog"
	"time"

	"pharmadmin/internal/core/domain/services"
	"pharmadmin/internal/core/ports"
)

// SyncInTransitOrdersCommandHandler refreshes the in-transit index the same
// way SyncOrdersCommandHandler refreshes the order index.
type SyncInTransitOrdersCommandHandler struct {
	source   ports.InTransitOrderSource
	store    InTransitOrderStore
	recorder SyncRecorder
	logger   *slog.Logger
}

func NewSyncInTransitOrdersCommandHandler(
	source ports.InTransitOrderSource,
	store InTransitOrderStore,
	recorder SyncRecorder,
	logger *slog.Logger,
) SyncInTransitOrdersCommandHandler {
	return SyncInTransitOrdersCommandHandler{
		source:   source,
		store:    store,
		recorder: recorder,
		logger:   logger.With("component", "sync_in_transit_orders"),
	}
}

// Handle runs one sync cycle.
func (h *SyncInTransitOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd SyncInTransitOrdersCommand,
) (SyncReport, error) {
	if err := cmd.Validate(); err != nil {
		return SyncReport{}, err
	}

	logger := h.logger.With("cycle_id", cmd.CycleID())
	startedAt := time.Now().UTC()

	batch, err := h.source.FetchInTransitOrders(ctx)
	if err != nil {
		h.recorder.RecordFailure(services.CollectionInTransitOrders, cmd.CycleID(), startedAt, time.Now().UTC(), err)
		logger.ErrorContext(ctx, "In-transit sync failed, keeping previous snapshot", "error", err)
		return SyncReport{}, err
	}

	for _, skipped := range batch.Skipped {
		logger.WarnContext(ctx, "Skipped in-transit record", "error", skipped)
	}

	if err = h.store.ReplaceAll(batch.Orders); err != nil {
		h.recorder.RecordFailure(services.CollectionInTransitOrders, cmd.CycleID(), startedAt, time.Now().UTC(), err)
		logger.ErrorContext(ctx, "In-transit index swap rejected", "error", err)
		return SyncReport{}, err
	}

	report := SyncReport{
		CycleID: cmd.CycleID(),
		Loaded:  len(batch.Orders),
		Skipped: len(batch.Skipped),
	}
	h.recorder.RecordSuccess(services.CollectionInTransitOrders, report.CycleID, startedAt, time.Now().UTC(),
		report.Loaded, report.Skipped)
	logger.InfoContext(ctx, "In-transit sync completed", "loaded", report.Loaded, "skipped", report.Skipped)

	return report, nil
}
