package order

import (
	"fmt"

	"pharmadmin/internal/core/domain/model/kernel"
	"pharmadmin/internal/pkg/errs"
)

// Detail is a single product line within an order.
type Detail struct {
	ID              int64
	ReferenceNumber string
	ProductID       string
	ItemName        string
	Quantity        int
	UnitPrice       kernel.Money
	SubTotal        kernel.Money
}

// Validate requires a positive quantity and a non-negative unit price.
func (d Detail) Validate() error {
	if d.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("detail.qty",
			fmt.Errorf("%d is not greater than 0 for product %s", d.Quantity, d.ProductID))
	}
	return d.UnitPrice.ValidateNonNegative("detail.unit_price")
}

// ExpectedSubTotal is Quantity × UnitPrice.
func (d Detail) ExpectedSubTotal() kernel.Money {
	return d.UnitPrice.Times(d.Quantity)
}

// SubTotalMatches reports whether the backend sub-total equals Quantity × UnitPrice.
func (d Detail) SubTotalMatches() bool {
	return d.SubTotal.Equal(d.ExpectedSubTotal())
}
