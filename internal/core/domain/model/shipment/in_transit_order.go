package shipment

import (
	"errors"
	"fmt"
	"time"

	"pharmadmin/internal/core/domain/model/kernel"
	"pharmadmin/internal/pkg/errs"
)

// InTransitOrder is a shipment-tracking record.
//
// DaysSinceOrder is the backend's snapshot at fetch time and is not
// recomputed against the wall clock.
type InTransitOrder struct {
	ID              int64
	UserID          int64
	CartID          int64
	CustomerPhone   string
	CustomerAddress string
	PaymentMode     string
	AmountPaid      kernel.Money
	Balance         kernel.Money

	// ProductDetails is the raw JSON object as received.
	ProductDetails string

	Status Status

	// StatusText is the tracking text as received, or the canonical label
	// after a local transition.
	StatusText string

	CreatedOn      time.Time
	DaysSinceOrder int
}

// NewInTransitOrder builds a record with its status parsed from statusText.
func NewInTransitOrder(id int64, statusText string) InTransitOrder {
	return InTransitOrder{
		ID:         id,
		Status:     ParseStatus(statusText),
		StatusText: statusText,
	}
}

// Validate checks the id and the age snapshot.
func (o InTransitOrder) Validate() error {
	var idErr, daysErr error
	if o.ID <= 0 {
		idErr = errs.NewValueIsInvalidErrorWithCause("in_transit.id", fmt.Errorf("%d is not positive", o.ID))
	}
	if o.DaysSinceOrder < 0 {
		daysErr = errs.NewValueIsInvalidErrorWithCause("in_transit.days_since_order",
			fmt.Errorf("%d is negative", o.DaysSinceOrder))
	}
	return errors.Join(idErr, daysErr)
}

// StatusLabel returns the text to show for the tracking status.
func (o InTransitOrder) StatusLabel() string {
	if o.Status == Unknown && o.StatusText != "" {
		return o.StatusText
	}
	return o.Status.String()
}

// IsCancellable is false exactly for Delivered and CancelledByCustomer.
func (o InTransitOrder) IsCancellable() bool {
	return !o.Status.IsTerminal()
}

// IsOlderThan compares the age snapshot strictly.
func (o InTransitOrder) IsOlderThan(days int) bool {
	return o.DaysSinceOrder > days
}

// Cancel moves the record to CancelledByCustomer or returns an
// errs.StatusIsTerminalError and leaves it unchanged.
func (o *InTransitOrder) Cancel() error {
	newStatus, err := o.Status.Cancel()
	if err != nil {
		return errs.NewStatusIsTerminalErrorWithCause(o.ID, o.StatusLabel(), err)
	}
	o.Status = newStatus
	o.StatusText = newStatus.String()
	return nil
}

// ParsedProductDetails decodes the embedded product list.
func (o InTransitOrder) ParsedProductDetails() (ProductDetailsMap, error) {
	return ParseProductDetails(o.ProductDetails)
}
