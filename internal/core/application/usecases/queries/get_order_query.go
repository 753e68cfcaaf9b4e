package queries

import (
	"errors"

	"pharmadmin/internal/core/domain/model/kernel"
	"pharmadmin/internal/core/domain/model/order"
	"pharmadmin/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery reads one order with its line items and payment.
type GetOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if err := validateOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// GetOrderQueryResponse is the full view of one order. Reconciliation and
// MismatchedDetails report inconsistencies in the backend data; they are
// informational and never block a read.
type GetOrderQueryResponse struct {
	Header            order.Header
	StatusLabel       string
	Step              int
	Cancellable       bool
	Details           []order.Detail
	DetailsTotal      kernel.Money
	Payment           order.Payment
	Reconciliation    order.Reconciliation
	MismatchedDetails []order.Detail
}
