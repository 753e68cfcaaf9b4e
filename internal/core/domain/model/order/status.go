package order

import (
	"fmt"
	"strings"

	"pharmadmin/internal/pkg/errs"
)

// Status is the lifecycle state of an order as reported by the backend.
//
// State transitions:
//
//	Received ──> AcknowledgedAwaitingProcessing ──> ProcessingCompleted ──> Delivered
//	    │                    │                               │
//	    └────────────────────┴───────────────────────────────┴──> CancelledByCustomer
//
// Only the cancellation edge is taken locally; every other transition comes
// from a backend sync. Received and Delivered refuse cancellation.
type Status int

const (
	// Unknown is any status text the order desk does not recognise.
	// The original text is kept on the Header so it can still be shown.
	Unknown Status = iota

	// Received is the first status of a freshly placed order.
	Received

	// AcknowledgedAwaitingProcessing means the store accepted the order.
	AcknowledgedAwaitingProcessing

	// ProcessingCompleted means the order is packed and ready to leave.
	ProcessingCompleted

	// Delivered is final.
	Delivered

	// CancelledByCustomer is final.
	CancelledByCustomer
)

// getStatusLabels returns the backend spelling of each status.
func getStatusLabels() map[Status]string {
	return map[Status]string{
		Unknown:                        "Unknown",
		Received:                       "Received",
		AcknowledgedAwaitingProcessing: "Acknowledged – Awaiting Processing",
		ProcessingCompleted:            "Processing Completed",
		Delivered:                      "Delivered",
		CancelledByCustomer:            "Cancelled by Customer",
	}
}

// getStatusKeys maps normalised status text to its Status.
func getStatusKeys() map[string]Status {
	return map[string]Status{
		"received":                         Received,
		"acknowledged awaiting processing": AcknowledgedAwaitingProcessing,
		"acknowledged":                     AcknowledgedAwaitingProcessing,
		"processing completed":             ProcessingCompleted,
		"delivered":                        Delivered,
		"cancelled by customer":            CancelledByCustomer,
		"canceled by customer":             CancelledByCustomer,
	}
}

// ParseStatus normalises backend status text. Matching ignores case, dash
// variants and extra whitespace. Unrecognised text yields Unknown.
func ParseStatus(text string) Status {
	if s, ok := getStatusKeys()[normalizeStatusText(text)]; ok {
		return s
	}
	return Unknown
}

func normalizeStatusText(text string) string {
	text = strings.ToLower(text)
	text = strings.NewReplacer("–", " ", "—", " ", "-", " ", "_", " ").Replace(text)
	return strings.Join(strings.Fields(text), " ")
}

// Statuses returns every known status in lifecycle order.
func Statuses() []Status {
	return []Status{
		Received,
		AcknowledgedAwaitingProcessing,
		ProcessingCompleted,
		Delivered,
		CancelledByCustomer,
	}
}

// String returns the backend spelling of the status.
func (s Status) String() string {
	if str, ok := getStatusLabels()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > CancelledByCustomer {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsFinal reports whether no further backend transition is expected.
func (s Status) IsFinal() bool {
	return s == Delivered || s == CancelledByCustomer
}

// CanCancel reports whether the cancellation guard lets the order through.
// Unknown statuses are cancellable.
func (s Status) CanCancel() bool {
	return s != Delivered && s != Received
}

// Cancel transitions the status to CancelledByCustomer.
//
// Returns:
//   - (CancelledByCustomer, nil) for every status except Delivered and Received
//   - (0, error wrapping errs.ErrStatusIsTerminal) otherwise
func (s Status) Cancel() (Status, error) {
	if !s.CanCancel() {
		return 0, fmt.Errorf("%w: %s cannot be cancelled", errs.ErrStatusIsTerminal, s)
	}
	return CancelledByCustomer, nil
}

// Step returns the position of the status on the order tracker, starting at 0
// for Received. Cancelled and unknown orders are not on the tracker and
// return -1.
func (s Status) Step() int {
	switch s {
	case Received:
		return 0
	case AcknowledgedAwaitingProcessing:
		return 1
	case ProcessingCompleted:
		return 2
	case Delivered:
		return 3
	case Unknown, CancelledByCustomer:
		return -1
	}
	return -1
}
