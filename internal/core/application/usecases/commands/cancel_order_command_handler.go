package commands

import (
	"context"
	"log/slog"

	"pharmadmin/internal/core/domain/services"
)

// CancelOrderCommandHandler applies the cancellation guard to an order.
// A refused or unknown order is not a handler error: the outcome and the
// user-facing message are in the returned CancelResult.
type CancelOrderCommandHandler struct {
	store  OrderStore
	logger *slog.Logger
}

func NewCancelOrderCommandHandler(store OrderStore, logger *slog.Logger) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		store:  store,
		logger: logger.With("component", "cancel_order"),
	}
}

// Handle returns an error only when the command itself is invalid.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (services.CancelResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.CancelResult{}, err
	}

	result := h.store.CancelOrder(cmd.OrderID())
	h.logger.InfoContext(ctx, "Order cancellation requested",
		"order_id", cmd.OrderID(), "outcome", result.Outcome.String())

	return result, nil
}
