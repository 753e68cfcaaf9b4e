package queries

import (
	"errors"

	"pharmadmin/internal/pkg/guard"
)

var (
	ErrGetInTransitOrderQueryIsNotConstructed = errors.New(
		"GetInTransitOrderQuery must be created via NewGetInTransitOrderQuery constructor",
	)
)

// GetInTransitOrderQuery reads one shipment-tracking record.
type GetInTransitOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetInTransitOrderQuery(orderID int64) (GetInTransitOrderQuery, error) {
	if err := validateOrderID(orderID); err != nil {
		return GetInTransitOrderQuery{}, err
	}
	return GetInTransitOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetInTransitOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetInTransitOrderQueryIsNotConstructed)
}

func (q GetInTransitOrderQuery) OrderID() int64 {
	return q.orderID
}
