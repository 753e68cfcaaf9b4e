package services

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"pharmadmin/internal/core/domain/model/kernel"
	"pharmadmin/internal/core/domain/model/order"
	"pharmadmin/internal/pkg/errs"
)

// OrderManager is the in-memory index of order aggregates keyed by order id.
//
// Example usage:
//
//	m := services.NewOrderManager()
//	if err := m.AddOrder(101, header, details, payment); err != nil {
//	    return err
//	}
//	res := m.CancelOrder(101)
//	if !res.OK() {
//	    log.Println(res.Message)
//	}
type OrderManager struct {
	mu     sync.RWMutex
	orders map[int64]*order.Order
}

// NewOrderManager returns an empty manager.
func NewOrderManager() *OrderManager {
	return &OrderManager{orders: make(map[int64]*order.Order)}
}

// AddOrder builds an aggregate from its records and stores it under orderID,
// replacing whatever was there. orderID must equal header.ID.
func (m *OrderManager) AddOrder(orderID int64, header order.Header, details []order.Detail, payment order.Payment) error {
	if orderID != header.ID {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d does not match header id %d", orderID, header.ID))
	}
	o, err := order.NewOrder(header, details, payment)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[orderID] = o
	return nil
}

// Add stores a constructed aggregate under its header id.
func (m *OrderManager) Add(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[o.ID()] = o.Clone()
	return nil
}

// AddAll upserts orders by header id and keeps every other indexed order.
// Nothing is stored when any order is invalid.
func (m *OrderManager) AddAll(orders []*order.Order) error {
	clones := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		clones = append(clones, o.Clone())
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range clones {
		m.orders[o.ID()] = o
	}
	return nil
}

// Len returns the number of indexed orders.
func (m *OrderManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.orders)
}

// GetAllHeaders returns every header in ascending id order.
func (m *OrderManager) GetAllHeaders() []order.Header {
	return m.GetAllHeadersSorted(SortByID, false)
}

// GetAllHeadersSorted returns every header ordered by field, ties broken by id.
func (m *OrderManager) GetAllHeadersSorted(field HeaderSortField, desc bool) []order.Header {
	m.mu.RLock()
	headers := make([]order.Header, 0, len(m.orders))
	for _, o := range m.orders {
		headers = append(headers, o.Header())
	}
	m.mu.RUnlock()

	slices.SortFunc(headers, func(a, b order.Header) int {
		if desc {
			return compareHeaders(b, a, field)
		}
		return compareHeaders(a, b, field)
	})
	return headers
}

// GetOrder returns a copy of the aggregate stored under orderID.
func (m *OrderManager) GetOrder(orderID int64) (*order.Order, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.orders[orderID]
	if !ok {
		return nil, false
	}
	return o.Clone(), true
}

func (m *OrderManager) GetHeaderByOrderID(orderID int64) (order.Header, bool) {
	o, ok := m.GetOrder(orderID)
	if !ok {
		return order.Header{}, false
	}
	return o.Header(), true
}

func (m *OrderManager) GetDetailsByOrderID(orderID int64) ([]order.Detail, bool) {
	o, ok := m.GetOrder(orderID)
	if !ok {
		return nil, false
	}
	return o.Details(), true
}

func (m *OrderManager) GetPaymentByOrderID(orderID int64) (order.Payment, bool) {
	o, ok := m.GetOrder(orderID)
	if !ok {
		return order.Payment{}, false
	}
	return o.Payment(), true
}

// RemoveOrder deletes the order and reports whether it existed.
func (m *OrderManager) RemoveOrder(orderID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.orders[orderID]; !ok {
		return false
	}
	delete(m.orders, orderID)
	return true
}

// CancelOrder applies the cancellation guard to the stored order.
func (m *OrderManager) CancelOrder(orderID int64) CancelResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[orderID]
	if !ok {
		return cancelNotFound(orderID)
	}

	if err := o.Cancel(); err != nil {
		return cancelRefused(MessageOrderNotCancellable, err)
	}
	return cancelled()
}

// Filter returns copies of the orders matching f, in ascending id order.
func (m *OrderManager) Filter(f OrderFilter) []*order.Order {
	m.mu.RLock()
	matched := make([]*order.Order, 0)
	for _, o := range m.orders {
		if f.Matches(o) {
			matched = append(matched, o.Clone())
		}
	}
	m.mu.RUnlock()

	slices.SortFunc(matched, func(a, b *order.Order) int {
		return compareHeaders(a.Header(), b.Header(), SortByID)
	})
	return matched
}

// FilterByPaymentAmount keeps orders whose total order amount lies in [minAmount, maxAmount].
func (m *OrderManager) FilterByPaymentAmount(minAmount, maxAmount kernel.Money) []*order.Order {
	return m.Filter(OrderFilter{MinAmount: &minAmount, MaxAmount: &maxAmount})
}

// FilterByPaymentType keeps orders paid with paymentType, ignoring case.
func (m *OrderManager) FilterByPaymentType(paymentType string) []*order.Order {
	if paymentType == "" {
		return []*order.Order{}
	}
	return m.Filter(OrderFilter{PaymentType: paymentType})
}

// FilterByDateRange keeps orders created within [from, to].
func (m *OrderManager) FilterByDateRange(from, to time.Time) []*order.Order {
	return m.Filter(OrderFilter{From: &from, To: &to})
}

// FilterByPaymentStatus keeps orders whose payment status equals paymentStatus, ignoring case.
func (m *OrderManager) FilterByPaymentStatus(paymentStatus string) []*order.Order {
	if paymentStatus == "" {
		return []*order.Order{}
	}
	return m.Filter(OrderFilter{PaymentStatus: paymentStatus})
}

// GetOrdersByStatus keeps orders in the given status.
func (m *OrderManager) GetOrdersByStatus(status order.Status) []*order.Order {
	return m.Filter(OrderFilter{Status: &status})
}

// CountByStatus returns the number of orders per status. Statuses with no
// orders are absent.
func (m *OrderManager) CountByStatus() map[order.Status]int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[order.Status]int)
	for _, o := range m.orders {
		counts[o.Status()]++
	}
	return counts
}
