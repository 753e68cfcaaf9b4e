package services

import (
	"slices"
	"sync"

	"pharmadmin/internal/core/domain/model/shipment"
	"pharmadmin/internal/pkg/errs"
)

// InTransitOrderManager is the in-memory index of shipment-tracking records
// keyed by record id.
type InTransitOrderManager struct {
	mu     sync.RWMutex
	orders map[int64]shipment.InTransitOrder
}

// NewInTransitOrderManager returns an empty manager.
func NewInTransitOrderManager() *InTransitOrderManager {
	return &InTransitOrderManager{orders: make(map[int64]shipment.InTransitOrder)}
}

// AddOrder stores o under its id, replacing whatever was there.
func (m *InTransitOrderManager) AddOrder(o shipment.InTransitOrder) error {
	if err := o.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[o.ID] = o
	return nil
}

// ReplaceAll swaps the whole index. Nothing is replaced when any record is invalid.
func (m *InTransitOrderManager) ReplaceAll(orders []shipment.InTransitOrder) error {
	next := make(map[int64]shipment.InTransitOrder, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		next[o.ID] = o
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = next
	return nil
}

func (m *InTransitOrderManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.orders)
}

// GetAllOrders returns every record in ascending id order.
func (m *InTransitOrderManager) GetAllOrders() []shipment.InTransitOrder {
	return m.collect(func(shipment.InTransitOrder) bool { return true })
}

func (m *InTransitOrderManager) GetOrderByID(orderID int64) (shipment.InTransitOrder, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.orders[orderID]
	return o, ok
}

// GetParsedProductDetails decodes the product list of a record. The error
// wraps errs.ErrObjectNotFound when the id is unknown and
// errs.ErrPayloadIsMalformed when the stored JSON cannot be decoded.
func (m *InTransitOrderManager) GetParsedProductDetails(orderID int64) (shipment.ProductDetailsMap, error) {
	o, ok := m.GetOrderByID(orderID)
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", orderID)
	}
	return o.ParsedProductDetails()
}

// GetOrdersByStatus keeps records in the given status.
func (m *InTransitOrderManager) GetOrdersByStatus(status shipment.Status) []shipment.InTransitOrder {
	return m.collect(func(o shipment.InTransitOrder) bool { return o.Status == status })
}

// GetOrdersOlderThan keeps records whose DaysSinceOrder is strictly greater than days.
func (m *InTransitOrderManager) GetOrdersOlderThan(days int) []shipment.InTransitOrder {
	return m.collect(func(o shipment.InTransitOrder) bool { return o.IsOlderThan(days) })
}

// IsOrderCancellable is false for unknown ids and for terminal records.
func (m *InTransitOrderManager) IsOrderCancellable(orderID int64) bool {
	o, ok := m.GetOrderByID(orderID)
	return ok && o.IsCancellable()
}

// CancelOrder applies the cancellation guard to the stored record.
func (m *InTransitOrderManager) CancelOrder(orderID int64) CancelResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[orderID]
	if !ok {
		return cancelNotFound(orderID)
	}

	if err := o.Cancel(); err != nil {
		return cancelRefused(MessageInTransitNotCancellable, err)
	}
	m.orders[orderID] = o
	return cancelled()
}

// RemoveOrder deletes the record and reports whether it existed.
func (m *InTransitOrderManager) RemoveOrder(orderID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.orders[orderID]; !ok {
		return false
	}
	delete(m.orders, orderID)
	return true
}

// CountByStatus returns the number of records per status.
func (m *InTransitOrderManager) CountByStatus() map[shipment.Status]int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[shipment.Status]int)
	for _, o := range m.orders {
		counts[o.Status]++
	}
	return counts
}

func (m *InTransitOrderManager) collect(keep func(shipment.InTransitOrder) bool) []shipment.InTransitOrder {
	m.mu.RLock()
	result := make([]shipment.InTransitOrder, 0, len(m.orders))
	for _, o := range m.orders {
		if keep(o) {
			result = append(result, o)
		}
	}
	m.mu.RUnlock()

	slices.SortFunc(result, func(a, b shipment.InTransitOrder) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return result
}
