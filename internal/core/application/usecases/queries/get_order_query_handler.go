package queries

import (
	"context"

	"pharmadmin/internal/pkg/errs"
)

// GetOrderQueryHandler reads one order from the index.
type GetOrderQueryHandler struct {
	reader OrderReader
}

func NewGetOrderQueryHandler(reader OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

// Handle returns an errs.ObjectNotFoundError for unknown ids.
func (h GetOrderQueryHandler) Handle(_ context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, ok := h.reader.GetOrder(query.OrderID())
	if !ok {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	header := o.Header()
	return GetOrderQueryResponse{
		Header:            header,
		StatusLabel:       header.StatusLabel(),
		Step:              header.Status.Step(),
		Cancellable:       header.Status.CanCancel(),
		Details:           o.Details(),
		DetailsTotal:      o.DetailsTotal(),
		Payment:           o.Payment(),
		Reconciliation:    o.Reconcile(),
		MismatchedDetails: o.MismatchedDetails(),
	}, nil
}
