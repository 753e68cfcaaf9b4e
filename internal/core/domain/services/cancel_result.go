package services

import (
	"pharmadmin/internal/pkg/errs"
)

// Messages shown to dashboard users after a cancellation attempt.
const (
	MessageOrderNotFound           = "Order not found."
	MessageOrderCancelled          = "Order has been successfully cancelled."
	MessageOrderNotCancellable     = "This order cannot be cancelled as it has already been delivered or received."
	MessageInTransitNotCancellable = "Order cannot be cancelled because it is either delivered or already cancelled."
)

// CancelOutcome is the closed set of cancellation results.
type CancelOutcome int

const (
	// Cancelled means the record now carries the cancelled status.
	Cancelled CancelOutcome = iota + 1

	// AlreadyTerminal means the status guard refused the transition.
	AlreadyTerminal

	// NotFound means no record has the requested id.
	NotFound
)

func (o CancelOutcome) String() string {
	switch o {
	case Cancelled:
		return "Cancelled"
	case AlreadyTerminal:
		return "AlreadyTerminal"
	case NotFound:
		return "NotFound"
	}
	return "Unknown"
}

// CancelResult describes what a cancel call did.
type CancelResult struct {
	Outcome CancelOutcome
	Message string
	err     error
}

// OK reports a successful cancellation.
func (r CancelResult) OK() bool {
	return r.Outcome == Cancelled
}

// Err returns nil for Cancelled, an errs.ObjectNotFoundError for NotFound
// and an errs.StatusIsTerminalError for AlreadyTerminal.
func (r CancelResult) Err() error {
	return r.err
}

func cancelled() CancelResult {
	return CancelResult{Outcome: Cancelled, Message: MessageOrderCancelled}
}

func cancelNotFound(id int64) CancelResult {
	return CancelResult{
		Outcome: NotFound,
		Message: MessageOrderNotFound,
		err:     errs.NewObjectNotFoundError("orderId", id),
	}
}

func cancelRefused(message string, err error) CancelResult {
	return CancelResult{Outcome: AlreadyTerminal, Message: message, err: err}
}
