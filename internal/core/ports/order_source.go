// Package ports defines the contracts between the order desk core and the
// systems around it. The core depends on these interfaces only; adapters
// under internal/adapters implement them.
package ports

import (
	"context"

	"pharmadmin/internal/core/domain/model/order"
	"pharmadmin/internal/core/domain/model/shipment"
)

// OrderSource reads e-commerce orders from the pharmacy backend.
type OrderSource interface {
	// FetchOrders returns every order the backend currently reports.
	// Records that cannot be mapped are skipped and reported in the result.
	FetchOrders(ctx context.Context) (OrderBatch, error)
}

// InTransitOrderSource reads shipment-tracking records from the pharmacy backend.
type InTransitOrderSource interface {
	// FetchInTransitOrders returns every in-transit record the backend
	// currently reports. Records that cannot be mapped are skipped and
	// reported in the result.
	FetchInTransitOrders(ctx context.Context) (InTransitBatch, error)
}

// OrderBatch is one fetch of orders.
type OrderBatch struct {
	Orders  []*order.Order
	Skipped []error
}

// InTransitBatch is one fetch of in-transit records.
type InTransitBatch struct {
	Orders  []shipment.InTransitOrder
	Skipped []error
}
