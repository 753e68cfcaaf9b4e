package commands

import (
	"errors"

	"pharmadmin/internal/pkg/guard"
)

var (
	ErrRemoveOrderCommandIsNotConstructed = errors.New(
		"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
	)
)

// RemoveOrderCommand drops an order from the local index. The order comes
// back on the next sync cycle if the backend still reports it.
type RemoveOrderCommand struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewRemoveOrderCommand(orderID int64) (RemoveOrderCommand, error) {
	if err := validateOrderID(orderID); err != nil {
		return RemoveOrderCommand{}, err
	}

	return RemoveOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

func (c RemoveOrderCommand) OrderID() int64 {
	return c.orderID
}
