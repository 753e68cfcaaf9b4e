// Package queries contains the read-only operations of the order desk.
// Implements the Query pattern for the read side of the CQRS architecture;
// handlers read the in-memory snapshots and never change them.
package queries

import (
	"pharmadmin/internal/core/domain/model/order"
	"pharmadmin/internal/core/domain/model/shipment"
	"pharmadmin/internal/core/domain/services"
)

type (
	// OrderReader is the read side of the e-commerce order index.
	OrderReader interface {
		Filter(f services.OrderFilter) []*order.Order
		GetOrder(orderID int64) (*order.Order, bool)
		CountByStatus() map[order.Status]int
		Len() int
	}

	// InTransitOrderReader is the read side of the in-transit index.
	InTransitOrderReader interface {
		GetAllOrders() []shipment.InTransitOrder
		GetOrderByID(orderID int64) (shipment.InTransitOrder, bool)
		GetParsedProductDetails(orderID int64) (shipment.ProductDetailsMap, error)
		GetOrdersByStatus(status shipment.Status) []shipment.InTransitOrder
		GetOrdersOlderThan(days int) []shipment.InTransitOrder
		CountByStatus() map[shipment.Status]int
		Len() int
	}

	// SyncStatusReader exposes the last sync outcome per collection.
	SyncStatusReader interface {
		Get(c services.Collection) (services.SyncRecord, bool)
	}
)
