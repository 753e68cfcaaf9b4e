package shipment

import (
	"fmt"
	"strings"

	"pharmadmin/internal/pkg/errs"
)

// Status is the tracking state of an in-transit order.
//
// State transitions:
//
//	InTransit ──> InWarehouse ──> OnTheWayForDelivery ──> Delivered
//	    │              │                   │
//	    └──────────────┴───────────────────┴──> CancelledByCustomer
//
// Delivered and CancelledByCustomer are terminal.
type Status int

const (
	// Unknown is any tracking text not recognised. Unknown shipments are
	// cancellable.
	Unknown Status = iota
	InTransit
	InWarehouse
	OnTheWayForDelivery
	Delivered
	CancelledByCustomer
)

type statusInfo struct {
	label string
	slug  string
}

func getStatusInfo() map[Status]statusInfo {
	return map[Status]statusInfo{
		InTransit:           {label: "INTRANSIT", slug: "intransit"},
		InWarehouse:         {label: "IN WAREHOUSE", slug: "inwarehouse"},
		OnTheWayForDelivery: {label: "ON THE WAY FOR DELIVERY", slug: "outfordelivery"},
		Delivered:           {label: "DELIVERED", slug: "delivered"},
		CancelledByCustomer: {label: "CANCELLED BY CUSTOMER", slug: "cancelled"},
	}
}

// getOpenStatusKeys maps the spellings of the non-terminal statuses with
// case, spacing and punctuation removed.
func getOpenStatusKeys() map[string]Status {
	return map[string]Status{
		"intransit":           InTransit,
		"inwarehouse":         InWarehouse,
		"onthewayfordelivery": OnTheWayForDelivery,
	}
}

// ParseStatus maps backend tracking text onto a Status. The terminal
// statuses match only their exact labels, ignoring case and surrounding
// spaces, so near spellings such as "Cancelled" stay cancellable. The open
// statuses also accept the backend's mixed-case spellings ("Intransit",
// "InWarehouse", "On the Way for Delivery"). Unrecognised text yields Unknown.
func ParseStatus(text string) Status {
	text = strings.TrimSpace(text)
	switch {
	case strings.EqualFold(text, Delivered.String()):
		return Delivered
	case strings.EqualFold(text, CancelledByCustomer.String()):
		return CancelledByCustomer
	}
	if s, ok := getOpenStatusKeys()[statusKey(text)]; ok {
		return s
	}
	return Unknown
}

// ParseSlug returns the status whose Slug is slug, ignoring case.
func ParseSlug(slug string) (Status, bool) {
	for _, s := range Statuses() {
		if strings.EqualFold(strings.TrimSpace(slug), s.Slug()) {
			return s, true
		}
	}
	return Unknown, false
}

func statusKey(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Statuses returns every known status in lifecycle order.
func Statuses() []Status {
	return []Status{InTransit, InWarehouse, OnTheWayForDelivery, Delivered, CancelledByCustomer}
}

// String returns the canonical upper-case label.
func (s Status) String() string {
	if info, ok := getStatusInfo()[s]; ok {
		return info.label
	}
	return "UNKNOWN"
}

// Slug returns the short lower-case name used in query strings and file names.
func (s Status) Slug() string {
	if info, ok := getStatusInfo()[s]; ok {
		return info.slug
	}
	return "unknown"
}

func (s Status) Validate() error {
	if _, ok := getStatusInfo()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal is true for Delivered and CancelledByCustomer only.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == CancelledByCustomer
}

// Cancel transitions to CancelledByCustomer unless the status is terminal.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return 0, fmt.Errorf("%w: %s cannot be cancelled", errs.ErrStatusIsTerminal, s)
	}
	return CancelledByCustomer, nil
}

// Step returns the tracker position, or -1 for cancelled and unknown shipments.
func (s Status) Step() int {
	switch s {
	case InTransit:
		return 0
	case InWarehouse:
		return 1
	case OnTheWayForDelivery:
		return 2
	case Delivered:
		return 3
	case Unknown, CancelledByCustomer:
		return -1
	}
	return -1
}
