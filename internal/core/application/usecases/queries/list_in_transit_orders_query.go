package queries

import (
	"errors"

	"pharmadmin/internal/core/domain/model/shipment"
	"pharmadmin/internal/pkg/errs"
	"pharmadmin/internal/pkg/guard"
)

// MaxOlderThanDays bounds the age filter of the in-transit list.
const MaxOlderThanDays = 3650

var (
	ErrListInTransitOrdersQueryIsNotConstructed = errors.New(
		"ListInTransitOrdersQuery must be created via NewListInTransitOrdersQuery constructor",
	)
)

// ListInTransitOrdersQuery selects shipment-tracking records. A nil status
// keeps every status; a nil olderThan keeps every age. When olderThan is
// set only records strictly older than that many days are kept.
type ListInTransitOrdersQuery struct {
	status    *shipment.Status
	olderThan *int

	guard guard.ConstructorGuard
}

func NewListInTransitOrdersQuery(status *shipment.Status, olderThan *int) (ListInTransitOrdersQuery, error) {
	var statusErr, daysErr error
	if status != nil {
		statusErr = status.Validate()
	}
	if olderThan != nil && (*olderThan < 0 || *olderThan > MaxOlderThanDays) {
		daysErr = errs.NewValueIsOutOfRangeError("older_than", *olderThan, 0, MaxOlderThanDays)
	}
	if err := errors.Join(statusErr, daysErr); err != nil {
		return ListInTransitOrdersQuery{}, err
	}

	return ListInTransitOrdersQuery{
		status:    status,
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListInTransitOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListInTransitOrdersQueryIsNotConstructed)
}

// Status returns the status filter and whether it is set.
func (q ListInTransitOrdersQuery) Status() (shipment.Status, bool) {
	if q.status == nil {
		return shipment.Unknown, false
	}
	return *q.status, true
}

// OlderThan returns the age filter in days and whether it is set.
func (q ListInTransitOrdersQuery) OlderThan() (int, bool) {
	if q.olderThan == nil {
		return 0, false
	}
	return *q.olderThan, true
}

// InTransitOrderView is a tracking record as the dashboard shows it.
type InTransitOrderView struct {
	Order       shipment.InTransitOrder
	StatusLabel string
	StatusSlug  string
	Step        int
	Cancellable bool
}

func newInTransitOrderView(o shipment.InTransitOrder) InTransitOrderView {
	return InTransitOrderView{
		Order:       o,
		StatusLabel: o.StatusLabel(),
		StatusSlug:  o.Status.Slug(),
		Step:        o.Status.Step(),
		Cancellable: o.IsCancellable(),
	}
}
