package order

import (
	"errors"
	"fmt"
	"slices"

	"pharmadmin/internal/core/domain/model/kernel"
	"pharmadmin/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a single e-commerce order. It owns its
// header, its line items and its payment, and is the only place where the
// cancellation guard is applied.
//
// Order follows these invariants:
//   - The header id is positive and the grand total is not negative
//   - Every line item has a positive quantity
//   - Can only be created through NewOrder
//
// Accessors return copies, so callers cannot change the aggregate behind
// its owner's back.
type Order struct {
	header  Header
	details []Detail
	payment Payment

	isConstructed bool
}

// NewOrder assembles an Order from the three backend records.
//
// Parameters:
//   - header: order summary; its Status must already be parsed (see NewHeader)
//   - details: line items, may be empty
//   - payment: settlement record
//
// Returns:
//   - *Order: the aggregate if all validations pass
//   - error: every validation failure joined together
func NewOrder(header Header, details []Detail, payment Payment) (*Order, error) {
	validationErrs := []error{header.Validate()}
	for _, d := range details {
		validationErrs = append(validationErrs, d.Validate())
	}
	if err := errors.Join(validationErrs...); err != nil {
		return nil, err
	}

	return &Order{
		header:        header,
		details:       slices.Clone(details),
		payment:       payment,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the header id.
func (o *Order) ID() int64 {
	return o.header.ID
}

// Header returns a copy of the order header.
func (o *Order) Header() Header {
	return o.header
}

// Details returns a copy of the line items.
func (o *Order) Details() []Detail {
	return slices.Clone(o.details)
}

// Payment returns a copy of the payment record.
func (o *Order) Payment() Payment {
	return o.payment
}

// Status returns the parsed header status.
func (o *Order) Status() Status {
	return o.header.Status
}

// ItemCount is the sum of line-item quantities.
func (o *Order) ItemCount() int {
	total := 0
	for _, d := range o.details {
		total += d.Quantity
	}
	return total
}

// Clone returns a deep copy of the order.
func (o *Order) Clone() *Order {
	c := *o
	c.details = slices.Clone(o.details)
	return &c
}

// Cancel applies the cancellation edge of the status machine.
//
// Business rules:
//   - Delivered and Received orders are refused with an error wrapping
//     errs.ErrStatusIsTerminal and are left untouched
//   - Any other order, including one already cancelled, ends in
//     CancelledByCustomer with the canonical description
func (o *Order) Cancel() error {
	newStatus, err := o.header.Status.Cancel()
	if err != nil {
		return errs.NewStatusIsTerminalErrorWithCause(o.header.ID, o.header.StatusLabel(), err)
	}

	o.header.Status = newStatus
	o.header.StatusDescription = newStatus.String()
	return nil
}

// Reconcile compares the payment total with the header grand total plus charges.
func (o *Order) Reconcile() Reconciliation {
	return o.payment.Reconcile(o.header.GrandTotal)
}

// MismatchedDetails returns the line items whose sub-total is not quantity × unit price.
func (o *Order) MismatchedDetails() []Detail {
	var mismatched []Detail
	for _, d := range o.details {
		if !d.SubTotalMatches() {
			mismatched = append(mismatched, d)
		}
	}
	return mismatched
}

// DetailsTotal sums the backend sub-totals of all line items.
func (o *Order) DetailsTotal() kernel.Money {
	total := kernel.ZeroMoney
	for _, d := range o.details {
		total = total.Add(d.SubTotal)
	}
	return total
}

func (o *Order) String() string {
	return fmt.Sprintf("Order(%d, %s)", o.header.ID, o.header.StatusLabel())
}
