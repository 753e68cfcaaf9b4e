package commands

import (
	"context"
	"log/slog"

	"pharmadmin/internal/core/domain/services"
)

// CancelInTransitOrderCommandHandler applies the in-transit cancellation guard.
// Delivered and already cancelled records are refused.
type CancelInTransitOrderCommandHandler struct {
	store  InTransitOrderStore
	logger *slog.Logger
}

func NewCancelInTransitOrderCommandHandler(
	store InTransitOrderStore,
	logger *slog.Logger,
) CancelInTransitOrderCommandHandler {
	return CancelInTransitOrderCommandHandler{
		store:  store,
		logger: logger.With("component", "cancel_in_transit_order"),
	}
}

func (h *CancelInTransitOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CancelInTransitOrderCommand,
) (services.CancelResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.CancelResult{}, err
	}

	result := h.store.CancelOrder(cmd.OrderID())
	h.logger.InfoContext(ctx, "In-transit cancellation requested",
		"order_id", cmd.OrderID(), "outcome", result.Outcome.String())

	return result, nil
}
