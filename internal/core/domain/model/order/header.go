package order

import (
	"errors"
	"fmt"
	"time"

	"pharmadmin/internal/core/domain/model/kernel"
	"pharmadmin/internal/pkg/errs"
)

// Header is the order-level summary record: totals, status and timestamps.
type Header struct {
	ID                   int64
	ReferenceNumber      string
	Source               int
	UserID               int64
	GrandTotal           kernel.Money
	Created              time.Time
	Received             time.Time
	StoreID              string
	StoreProcessingOrder string
	ModifiedAt           time.Time
	StatusID             int

	// Status is the parsed form of StatusDescription.
	Status Status

	// StatusDescription is the status text as the backend sent it, or the
	// canonical label after a local transition.
	StatusDescription string
}

// NewHeader builds a Header and derives Status from statusDescription.
func NewHeader(id int64, statusDescription string) Header {
	return Header{
		ID:                id,
		Status:            ParseStatus(statusDescription),
		StatusDescription: statusDescription,
	}
}

// Validate checks the invariants a header must hold before it is indexed.
func (h Header) Validate() error {
	var idErr error
	if h.ID <= 0 {
		idErr = errs.NewValueIsInvalidErrorWithCause("header.id", fmt.Errorf("%d is not positive", h.ID))
	}
	return errors.Join(
		idErr,
		h.GrandTotal.ValidateNonNegative("header.grand_total"),
	)
}

// StatusLabel returns the text to show for the header's status.
func (h Header) StatusLabel() string {
	if h.Status == Unknown && h.StatusDescription != "" {
		return h.StatusDescription
	}
	return h.Status.String()
}
