package commands

import (
	"context"

	"pharmadmin/internal/pkg/errs"
)

// RemoveOrderCommandHandler removes an order from the index.
type RemoveOrderCommandHandler struct {
	store OrderStore
}

func NewRemoveOrderCommandHandler(store OrderStore) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{store: store}
}

// Handle returns an errs.ObjectNotFoundError when the id is not indexed.
func (h *RemoveOrderCommandHandler) Handle(_ context.Context, cmd RemoveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.store.RemoveOrder(cmd.OrderID()) {
		return errs.NewObjectNotFoundError("orderId", cmd.OrderID())
	}
	return nil
}
