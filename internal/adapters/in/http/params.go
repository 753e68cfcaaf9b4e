package http

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pharmadmin/internal/adapters/in/http/api"
	"pharmadmin/internal/core/domain/model/kernel"
	"pharmadmin/internal/core/domain/model/order"
	"pharmadmin/internal/core/domain/model/shipment"
	"pharmadmin/internal/core/domain/services"
	"pharmadmin/internal/pkg/errs"
)

type orderListOptions struct {
	filter services.OrderFilter
	sortBy services.HeaderSortField
	desc   bool
}

// parseOrderListParams turns query strings into a filter. Lists default to
// newest first. A bare date in "to" covers that whole day.
func parseOrderListParams(p api.ListOrdersParams) (orderListOptions, error) {
	opts := orderListOptions{sortBy: services.SortByCreated, desc: true}
	var problems []error

	if v := value(p.Status); v != "" {
		status := order.ParseStatus(v)
		if status == order.Unknown {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("status",
				fmt.Errorf("%q is not a known order status", v)))
		} else {
			opts.filter.Status = &status
		}
	}
	opts.filter.PaymentType = value(p.PaymentType)
	opts.filter.PaymentStatus = value(p.PaymentStatus)

	if v := value(p.MinAmount); v != "" {
		m, err := kernel.ParseMoney("min_amount", v)
		problems = append(problems, err)
		if err == nil {
			opts.filter.MinAmount = &m
		}
	}
	if v := value(p.MaxAmount); v != "" {
		m, err := kernel.ParseMoney("max_amount", v)
		problems = append(problems, err)
		if err == nil {
			opts.filter.MaxAmount = &m
		}
	}
	if v := value(p.From); v != "" {
		t, err := kernel.ParseTimestamp("from", v)
		problems = append(problems, err)
		if err == nil {
			opts.filter.From = &t
		}
	}
	if v := value(p.To); v != "" {
		t, err := kernel.ParseTimestamp("to", v)
		problems = append(problems, err)
		if err == nil {
			if isDateOnly(v) {
				t = t.Add(24*time.Hour - time.Nanosecond)
			}
			opts.filter.To = &t
		}
	}

	if v := value(p.Sort); v != "" {
		field, ok := services.ParseHeaderSortField(v)
		if !ok {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("sort",
				fmt.Errorf("%q is not one of created, modified_at, grand_total, id", v)))
		}
		opts.sortBy = field
	}
	switch strings.ToLower(value(p.Order)) {
	case "", "desc":
	case "asc":
		opts.desc = false
	default:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("%q is not asc or desc", value(p.Order))))
	}

	if err := errors.Join(problems...); err != nil {
		return orderListOptions{}, err
	}
	return opts, nil
}

// parseInTransitStatus accepts labels and tab slugs. Empty and "all" mean no filter.
func parseInTransitStatus(p *string) (*shipment.Status, error) {
	v := strings.TrimSpace(value(p))
	if v == "" || strings.EqualFold(v, "all") {
		return nil, nil //nolint:nilnil // no filter
	}

	status, ok := shipment.ParseSlug(v)
	if !ok {
		status = shipment.ParseStatus(v)
	}
	if status == shipment.Unknown {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a known tracking status", v))
	}
	return &status, nil
}

func isDateOnly(s string) bool {
	_, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	return err == nil
}

func value(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}
