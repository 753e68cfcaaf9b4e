package commands

import (
	"context"
	"log/slog"
	"time"

	"pharmadmin/internal/core/domain/services"
	"pharmadmin/internal/core/ports"
)

// SyncOrdersCommandHandler refreshes the order index from the backend.
// The fetched batch is upserted by order id in one step; orders the backend
// no longer returns stay indexed for the life of the process. A failed fetch
// changes nothing and is recorded on the SyncRecorder.
//
// Example:
//
//	handler := NewSyncOrdersCommandHandler(backendClient, orderManager, syncStatus, logger)
//	report, err := handler.Handle(ctx, NewSyncOrdersCommand())
type SyncOrdersCommandHandler struct {
	source   ports.OrderSource
	store    OrderStore
	recorder SyncRecorder
	logger   *slog.Logger
}

// NewSyncOrdersCommandHandler creates a handler for order sync cycles.
func NewSyncOrdersCommandHandler(
	source ports.OrderSource,
	store OrderStore,
	recorder SyncRecorder,
	logger *slog.Logger,
) SyncOrdersCommandHandler {
	return SyncOrdersCommandHandler{
		source:   source,
		store:    store,
		recorder: recorder,
		logger:   logger.With("component", "sync_orders"),
	}
}

// Handle runs one sync cycle.
func (h *SyncOrdersCommandHandler) Handle(ctx context.Context, cmd SyncOrdersCommand) (SyncReport, error) {
	if err := cmd.Validate(); err != nil {
		return SyncReport{}, err
	}

	logger := h.logger.With("cycle_id", cmd.CycleID())
	startedAt := time.Now().UTC()

	batch, err := h.source.FetchOrders(ctx)
	if err != nil {
		h.recorder.RecordFailure(services.CollectionOrders, cmd.CycleID(), startedAt, time.Now().UTC(), err)
		logger.ErrorContext(ctx, "Order sync failed, keeping previous snapshot", "error", err)
		return SyncReport{}, err
	}

	for _, skipped := range batch.Skipped {
		logger.WarnContext(ctx, "Skipped order record", "error", skipped)
	}

	if err = h.store.AddAll(batch.Orders); err != nil {
		h.recorder.RecordFailure(services.CollectionOrders, cmd.CycleID(), startedAt, time.Now().UTC(), err)
		logger.ErrorContext(ctx, "Order batch rejected", "error", err)
		return SyncReport{}, err
	}

	report := SyncReport{
		CycleID: cmd.CycleID(),
		Loaded:  len(batch.Orders),
		Skipped: len(batch.Skipped),
	}
	h.recorder.RecordSuccess(services.CollectionOrders, report.CycleID, startedAt, time.Now().UTC(),
		report.Loaded, report.Skipped)
	logger.InfoContext(ctx, "Order sync completed", "loaded", report.Loaded, "skipped", report.Skipped)

	return report, nil
}
