package queries

import (
	"context"

	"pharmadmin/internal/core/domain/model/order"
	"pharmadmin/internal/core/domain/model/shipment"
	"pharmadmin/internal/core/domain/services"
)

// GetStatusSummaryQueryHandler builds the dashboard summary cards.
type GetStatusSummaryQueryHandler struct {
	orders    OrderReader
	inTransit InTransitOrderReader
	syncs     SyncStatusReader
}

func NewGetStatusSummaryQueryHandler(
	orders OrderReader,
	inTransit InTransitOrderReader,
	syncs SyncStatusReader,
) GetStatusSummaryQueryHandler {
	return GetStatusSummaryQueryHandler{
		orders:    orders,
		inTransit: inTransit,
		syncs:     syncs,
	}
}

// Handle lists every known status in lifecycle order, including empty ones.
// Unknown appears last and only when some record carries it.
func (h GetStatusSummaryQueryHandler) Handle(
	_ context.Context,
	query GetStatusSummaryQuery,
) (GetStatusSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStatusSummaryQueryResponse{}, err
	}

	orderCounts := h.orders.CountByStatus()
	ordersByStatus := make([]StatusCount, 0, len(order.Statuses())+1)
	for _, s := range order.Statuses() {
		ordersByStatus = append(ordersByStatus, StatusCount{Status: s.String(), Count: orderCounts[s]})
	}
	if n := orderCounts[order.Unknown]; n > 0 {
		ordersByStatus = append(ordersByStatus, StatusCount{Status: order.Unknown.String(), Count: n})
	}

	transitCounts := h.inTransit.CountByStatus()
	transitByStatus := make([]StatusCount, 0, len(shipment.Statuses())+1)
	for _, s := range shipment.Statuses() {
		transitByStatus = append(transitByStatus, StatusCount{Status: s.String(), Count: transitCounts[s]})
	}
	if n := transitCounts[shipment.Unknown]; n > 0 {
		transitByStatus = append(transitByStatus, StatusCount{Status: shipment.Unknown.String(), Count: n})
	}

	return GetStatusSummaryQueryResponse{
		Orders: CollectionSummary{
			Total:    h.orders.Len(),
			ByStatus: ordersByStatus,
			Sync:     h.syncView(services.CollectionOrders),
		},
		InTransitOrders: CollectionSummary{
			Total:    h.inTransit.Len(),
			ByStatus: transitByStatus,
			Sync:     h.syncView(services.CollectionInTransitOrders),
		},
	}, nil
}

func (h GetStatusSummaryQueryHandler) syncView(c services.Collection) SyncView {
	rec, ok := h.syncs.Get(c)
	if !ok {
		return SyncView{}
	}
	return SyncView{
		Ran:         true,
		CycleID:     rec.CycleID,
		LastSuccess: rec.LastSuccess,
		FinishedAt:  rec.FinishedAt,
		Loaded:      rec.Loaded,
		Skipped:     rec.Skipped,
		LastError:   rec.LastError,
	}
}
