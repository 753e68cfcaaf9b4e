package commands

import (
	"errors"

	"pharmadmin/internal/pkg/guard"
)

var (
	ErrRemoveInTransitOrderCommandIsNotConstructed = errors.New(
		"RemoveInTransitOrderCommand must be created via NewRemoveInTransitOrderCommand constructor",
	)
)

// RemoveInTransitOrderCommand drops a shipment-tracking record from the local index.
type RemoveInTransitOrderCommand struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewRemoveInTransitOrderCommand(orderID int64) (RemoveInTransitOrderCommand, error) {
	if err := validateOrderID(orderID); err != nil {
		return RemoveInTransitOrderCommand{}, err
	}

	return RemoveInTransitOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveInTransitOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveInTransitOrderCommandIsNotConstructed)
}

func (c RemoveInTransitOrderCommand) OrderID() int64 {
	return c.orderID
}
