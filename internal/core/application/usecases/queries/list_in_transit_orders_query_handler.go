package queries

import (
	"context"

	"pharmadmin/internal/core/domain/model/shipment"
)

// ListInTransitOrdersQueryHandler reads the in-transit index.
type ListInTransitOrdersQueryHandler struct {
	reader InTransitOrderReader
}

func NewListInTransitOrdersQueryHandler(reader InTransitOrderReader) ListInTransitOrdersQueryHandler {
	return ListInTransitOrdersQueryHandler{reader: reader}
}

// Handle returns matching records in ascending id order.
func (h ListInTransitOrdersQueryHandler) Handle(
	_ context.Context,
	query ListInTransitOrdersQuery,
) ([]InTransitOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]InTransitOrderView, 0)
	for _, o := range selectInTransitOrders(h.reader, query) {
		views = append(views, newInTransitOrderView(o))
	}
	return views, nil
}

func selectInTransitOrders(reader InTransitOrderReader, query ListInTransitOrdersQuery) []shipment.InTransitOrder {
	status, byStatus := query.Status()
	days, byAge := query.OlderThan()

	var selected []shipment.InTransitOrder
	switch {
	case byStatus:
		selected = reader.GetOrdersByStatus(status)
	case byAge:
		return reader.GetOrdersOlderThan(days)
	default:
		return reader.GetAllOrders()
	}

	if !byAge {
		return selected
	}
	kept := selected[:0]
	for _, o := range selected {
		if o.IsOlderThan(days) {
			kept = append(kept, o)
		}
	}
	return kept
}
