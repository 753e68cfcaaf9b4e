package commands

import (
	"errors"

	"pharmadmin/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand asks to move an e-commerce order to CancelledByCustomer.
// The change applies to the in-memory snapshot only; the next sync cycle
// reflects whatever the backend reports.
//
// Example:
//
//	cmd, err := NewCancelOrderCommand(1042)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	if err == nil && !result.OK() {
//	    fmt.Println(result.Message)
//	}
type CancelOrderCommand struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a cancel command. The id must be positive.
func NewCancelOrderCommand(orderID int64) (CancelOrderCommand, error) {
	if err := validateOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() int64 {
	return c.orderID
}
