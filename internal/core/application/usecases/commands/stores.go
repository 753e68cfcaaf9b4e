// Package commands contains the operations that change the order desk state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every command is built through a guarded constructor and validated by its handler.
package commands

import (
	"time"

	"pharmadmin/internal/core/domain/model/order"
	"pharmadmin/internal/core/domain/model/shipment"
	"pharmadmin/internal/core/domain/services"
)

// Stores hold the in-memory snapshots the commands act on.
// services.OrderManager and services.InTransitOrderManager implement them.
type (
	// OrderStore is the write side of the e-commerce order index.
	// Orders are never evicted by a sync, so it upserts.
	OrderStore interface {
		AddAll(orders []*order.Order) error
		CancelOrder(orderID int64) services.CancelResult
		RemoveOrder(orderID int64) bool
	}

	// InTransitOrderStore is the write side of the in-transit index.
	InTransitOrderStore interface {
		ReplaceAll(orders []shipment.InTransitOrder) error
		CancelOrder(orderID int64) services.CancelResult
		RemoveOrder(orderID int64) bool
	}

	// SyncRecorder keeps the outcome of every sync cycle.
	// services.SyncStatus implements it.
	SyncRecorder interface {
		RecordSuccess(c services.Collection, cycleID string, startedAt, finishedAt time.Time, loaded, skipped int)
		RecordFailure(c services.Collection, cycleID string, startedAt, finishedAt time.Time, err error)
	}
)

// SyncReport summarises one completed sync cycle.
type SyncReport struct {
	CycleID string
	Loaded  int
	Skipped int
}
