package services

import (
	"slices"
	"time"

	"pharmadmin/internal/core/domain/model/kernel"
	"pharmadmin/internal/core/domain/model/order"
)

// OrderFilter combines the order filters. Nil and empty fields match
// everything; bounds are inclusive.
type OrderFilter struct {
	Status        *order.Status
	PaymentType   string
	PaymentStatus string
	MinAmount     *kernel.Money
	MaxAmount     *kernel.Money
	From          *time.Time
	To            *time.Time
}

// Matches reports whether o passes every set criterion. Amounts are compared
// with the payment's total order amount and dates with the header's created time.
func (f OrderFilter) Matches(o *order.Order) bool {
	header := o.Header()
	payment := o.Payment()

	if f.Status != nil && header.Status != *f.Status {
		return false
	}
	if f.PaymentType != "" && !payment.HasType(f.PaymentType) {
		return false
	}
	if f.PaymentStatus != "" && !payment.HasStatus(f.PaymentStatus) {
		return false
	}
	if f.MinAmount != nil && payment.TotalOrderAmount.Cmp(*f.MinAmount) < 0 {
		return false
	}
	if f.MaxAmount != nil && payment.TotalOrderAmount.Cmp(*f.MaxAmount) > 0 {
		return false
	}
	if f.From != nil && header.Created.Before(*f.From) {
		return false
	}
	if f.To != nil && header.Created.After(*f.To) {
		return false
	}
	return true
}

// HeaderSortField selects the header column used for ordering.
type HeaderSortField int

const (
	SortByCreated HeaderSortField = iota
	SortByModifiedAt
	SortByGrandTotal
	SortByID
)

// ParseHeaderSortField accepts "created", "modified_at", "grand_total" and "id".
func ParseHeaderSortField(s string) (HeaderSortField, bool) {
	switch s {
	case "", "created":
		return SortByCreated, true
	case "modified_at":
		return SortByModifiedAt, true
	case "grand_total":
		return SortByGrandTotal, true
	case "id":
		return SortByID, true
	}
	return 0, false
}

// SortOrders orders os in place by field, ties broken by id.
func SortOrders(os []*order.Order, field HeaderSortField, desc bool) {
	slices.SortFunc(os, func(a, b *order.Order) int {
		if desc {
			return compareHeaders(b.Header(), a.Header(), field)
		}
		return compareHeaders(a.Header(), b.Header(), field)
	})
}

func compareHeaders(a, b order.Header, field HeaderSortField) int {
	var c int
	switch field {
	case SortByCreated:
		c = a.Created.Compare(b.Created)
	case SortByModifiedAt:
		c = a.ModifiedAt.Compare(b.ModifiedAt)
	case SortByGrandTotal:
		c = a.GrandTotal.Cmp(b.GrandTotal)
	case SortByID:
	}
	if c != 0 {
		return c
	}
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	}
	return 0
}
