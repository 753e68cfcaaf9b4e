package commands

import (
	"errors"

	"pharmadmin/internal/pkg/guard"
)

var (
	ErrCancelInTransitOrderCommandIsNotConstructed = errors.New(
		"CancelInTransitOrderCommand must be created via NewCancelInTransitOrderCommand constructor",
	)
)

// CancelInTransitOrderCommand asks to cancel a shipment-tracking record.
type CancelInTransitOrderCommand struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewCancelInTransitOrderCommand(orderID int64) (CancelInTransitOrderCommand, error) {
	if err := validateOrderID(orderID); err != nil {
		return CancelInTransitOrderCommand{}, err
	}

	return CancelInTransitOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelInTransitOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelInTransitOrderCommandIsNotConstructed)
}

func (c CancelInTransitOrderCommand) OrderID() int64 {
	return c.orderID
}
