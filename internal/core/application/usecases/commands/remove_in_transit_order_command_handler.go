package commands

import (
	"context"

	"pharmadmin/internal/pkg/errs"
)

// RemoveInTransitOrderCommandHandler removes a record from the in-transit index.
type RemoveInTransitOrderCommandHandler struct {
	store InTransitOrderStore
}

func NewRemoveInTransitOrderCommandHandler(store InTransitOrderStore) RemoveInTransitOrderCommandHandler {
	return RemoveInTransitOrderCommandHandler{store: store}
}

func (h *RemoveInTransitOrderCommandHandler) Handle(_ context.Context, cmd RemoveInTransitOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.store.RemoveOrder(cmd.OrderID()) {
		return errs.NewObjectNotFoundError("orderId", cmd.OrderID())
	}
	return nil
}
