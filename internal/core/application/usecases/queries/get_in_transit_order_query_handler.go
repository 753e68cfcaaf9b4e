package queries

import (
	"context"

	"pharmadmin/internal/pkg/errs"
)

type GetInTransitOrderQueryHandler struct {
	reader InTransitOrderReader
}

func NewGetInTransitOrderQueryHandler(reader InTransitOrderReader) GetInTransitOrderQueryHandler {
	return GetInTransitOrderQueryHandler{reader: reader}
}

// Handle returns an errs.ObjectNotFoundError for unknown ids.
func (h GetInTransitOrderQueryHandler) Handle(
	_ context.Context,
	query GetInTransitOrderQuery,
) (InTransitOrderView, error) {
	if err := query.Validate(); err != nil {
		return InTransitOrderView{}, err
	}

	o, ok := h.reader.GetOrderByID(query.OrderID())
	if !ok {
		return InTransitOrderView{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	return newInTransitOrderView(o), nil
}
