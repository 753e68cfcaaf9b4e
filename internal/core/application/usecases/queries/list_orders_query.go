package queries

import (
	"errors"
	"fmt"

	"pharmadmin/internal/core/domain/model/kernel"
	"pharmadmin/internal/core/domain/services"
	"pharmadmin/internal/pkg/errs"
	"pharmadmin/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery selects orders by the dashboard filters and orders the
// result by one header column.
//
// Example:
//
//	status := order.Delivered
//	query, err := NewListOrdersQuery(services.OrderFilter{Status: &status}, services.SortByCreated, true)
//	if err != nil {
//	    return err
//	}
//	rows, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	filter services.OrderFilter
	sortBy services.HeaderSortField
	desc   bool

	guard guard.ConstructorGuard
}

// NewListOrdersQuery validates the filter. Amount bounds must not be
// negative and each range must have its lower bound first.
func NewListOrdersQuery(
	filter services.OrderFilter,
	sortBy services.HeaderSortField,
	desc bool,
) (ListOrdersQuery, error) {
	if err := validateOrderFilter(filter); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		filter: filter,
		sortBy: sortBy,
		desc:   desc,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func validateOrderFilter(f services.OrderFilter) error {
	var statusErr, minErr, maxErr, amountErr, dateErr error

	if f.Status != nil {
		statusErr = f.Status.Validate()
	}
	if f.MinAmount != nil {
		minErr = f.MinAmount.ValidateNonNegative("min_amount")
	}
	if f.MaxAmount != nil {
		maxErr = f.MaxAmount.ValidateNonNegative("max_amount")
	}
	if f.MinAmount != nil && f.MaxAmount != nil && f.MinAmount.Cmp(*f.MaxAmount) > 0 {
		amountErr = errs.NewValueIsOutOfRangeError("min_amount", f.MinAmount.String(),
			kernel.ZeroMoney.String(), f.MaxAmount.String())
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		dateErr = errs.NewValueIsInvalidErrorWithCause("from",
			fmt.Errorf("%s is after %s", f.From.Format("2006-01-02"), f.To.Format("2006-01-02")))
	}

	return errors.Join(statusErr, minErr, maxErr, amountErr, dateErr)
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() services.OrderFilter {
	return q.filter
}

func (q ListOrdersQuery) SortBy() services.HeaderSortField {
	return q.sortBy
}

func (q ListOrdersQuery) Desc() bool {
	return q.desc
}

// ListOrdersQueryResponse is one row of the order list.
type ListOrdersQueryResponse struct {
	ID               int64
	ReferenceNumber  string
	Status           string
	Step             int
	GrandTotal       kernel.Money
	TotalOrderAmount kernel.Money
	PaymentType      string
	PaymentStatus    string
	ItemCount        int
	Created          string
	ModifiedAt       string
}
