package services_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"pharmadmin/internal/core/domain/model/kernel"
	"pharmadmin/internal/core/domain/model/order"
	"pharmadmin/internal/core/domain/services"
	"pharmadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	header  order.Header
	details []order.Detail
	payment order.Payment
}

func newOrderFixture(id int64, status string, created time.Time, total int64, paymentType, paymentStatus string) orderFixture {
	h := order.NewHeader(id, status)
	h.ReferenceNumber = fmt.Sprintf("RFN-%d", id)
	h.GrandTotal = kernel.NewMoneyFromInt(total)
	h.Created = created
	h.ModifiedAt = created.Add(time.Hour)

	return orderFixture{
		header: h,
		details: []order.Detail{{
			ID:        id * 10,
			ProductID: "P-1",
			ItemName:  "Cetirizine 10mg",
			Quantity:  1,
			UnitPrice: kernel.NewMoneyFromInt(total),
			SubTotal:  kernel.NewMoneyFromInt(total),
		}},
		payment: order.Payment{
			ID:               id * 100,
			PaymentType:      paymentType,
			PaymentStatus:    paymentStatus,
			TotalOrderAmount: kernel.NewMoneyFromInt(total),
		},
	}
}

func day(d int) time.Time {
	return time.Date(2024, time.June, d, 9, 0, 0, 0, time.UTC)
}

func seededOrderManager(t *testing.T) *services.OrderManager {
	t.Helper()
	m := services.NewOrderManager()
	for _, f := range []orderFixture{
		newOrderFixture(101, "Received", day(1), 100, "M-Pesa", "Paid"),
		newOrderFixture(102, "Processing Completed", day(3), 250, "Card", "Paid"),
		newOrderFixture(103, "Delivered", day(5), 500, "M-Pesa", "Pending"),
		newOrderFixture(104, "Acknowledged – Awaiting Processing", day(7), 750, "Cash", "pending"),
	} {
		require.NoError(t, m.AddOrder(f.header.ID, f.header, f.details, f.payment))
	}
	return m
}

func TestOrderManager_Lookups(t *testing.T) {
	t.Run("should return absence for unknown ids", func(t *testing.T) {
		m := services.NewOrderManager()

		_, ok := m.GetHeaderByOrderID(999)
		assert.False(t, ok)
		_, ok = m.GetDetailsByOrderID(999)
		assert.False(t, ok)
		_, ok = m.GetPaymentByOrderID(999)
		assert.False(t, ok)
		_, ok = m.GetOrder(999)
		assert.False(t, ok)
	})

	t.Run("should round-trip the inserted records", func(t *testing.T) {
		m := services.NewOrderManager()
		f := newOrderFixture(7, "Received", day(2), 320, "Card", "Paid")

		require.NoError(t, m.AddOrder(7, f.header, f.details, f.payment))

		header, ok := m.GetHeaderByOrderID(7)
		require.True(t, ok)
		assert.Equal(t, f.header, header)
		details, ok := m.GetDetailsByOrderID(7)
		require.True(t, ok)
		assert.Equal(t, f.details, details)
		payment, ok := m.GetPaymentByOrderID(7)
		require.True(t, ok)
		assert.Equal(t, f.payment, payment)
	})

	t.Run("should overwrite on re-add", func(t *testing.T) {
		m := services.NewOrderManager()
		first := newOrderFixture(7, "Received", day(2), 320, "Card", "Paid")
		second := newOrderFixture(7, "Delivered", day(2), 320, "Card", "Paid")

		require.NoError(t, m.AddOrder(7, first.header, first.details, first.payment))
		require.NoError(t, m.AddOrder(7, second.header, second.details, second.payment))

		header, _ := m.GetHeaderByOrderID(7)
		assert.Equal(t, order.Delivered, header.Status)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("should reject an id that differs from the header", func(t *testing.T) {
		m := services.NewOrderManager()
		f := newOrderFixture(7, "Received", day(2), 320, "Card", "Paid")

		err := m.AddOrder(8, f.header, f.details, f.payment)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 0, m.Len())
	})

	t.Run("should reject invalid records", func(t *testing.T) {
		m := services.NewOrderManager()
		f := newOrderFixture(7, "Received", day(2), 320, "Card", "Paid")
		f.details[0].Quantity = 0

		err := m.AddOrder(7, f.header, f.details, f.payment)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 0, m.Len())
	})

	t.Run("should hand out copies", func(t *testing.T) {
		m := seededOrderManager(t)

		details, _ := m.GetDetailsByOrderID(102)
		details[0].Quantity = 50
		o, _ := m.GetOrder(102)
		require.NoError(t, o.Cancel())

		again, _ := m.GetDetailsByOrderID(102)
		assert.Equal(t, 1, again[0].Quantity)
		header, _ := m.GetHeaderByOrderID(102)
		assert.Equal(t, order.ProcessingCompleted, header.Status)
	})
}

func TestOrderManager_GetAllHeaders(t *testing.T) {
	m := seededOrderManager(t)

	t.Run("should return every header", func(t *testing.T) {
		headers := m.GetAllHeaders()

		require.Len(t, headers, 4)
		assert.Equal(t, int64(101), headers[0].ID)
	})

	t.Run("should sort by created descending", func(t *testing.T) {
		headers := m.GetAllHeadersSorted(services.SortByCreated, true)

		ids := make([]int64, 0, len(headers))
		for _, h := range headers {
			ids = append(ids, h.ID)
		}
		assert.Equal(t, []int64{104, 103, 102, 101}, ids)
	})

	t.Run("should sort by grand total ascending", func(t *testing.T) {
		headers := m.GetAllHeadersSorted(services.SortByGrandTotal, false)
		assert.Equal(t, int64(101), headers[0].ID)
		assert.Equal(t, int64(104), headers[3].ID)
	})
}

func TestOrderManager_CancelOrder(t *testing.T) {
	t.Run("should refuse a received order and keep its status", func(t *testing.T) {
		m := seededOrderManager(t)

		res := m.CancelOrder(101)

		assert.Equal(t, services.AlreadyTerminal, res.Outcome)
		assert.Contains(t, res.Message, "cannot be cancelled")
		assert.ErrorIs(t, res.Err(), errs.ErrStatusIsTerminal)
		header, _ := m.GetHeaderByOrderID(101)
		assert.Equal(t, "Received", header.StatusDescription)
	})

	t.Run("should refuse a delivered order", func(t *testing.T) {
		m := seededOrderManager(t)

		res := m.CancelOrder(103)

		assert.False(t, res.OK())
		assert.Equal(t, services.MessageOrderNotCancellable, res.Message)
		header, _ := m.GetHeaderByOrderID(103)
		assert.Equal(t, order.Delivered, header.Status)
	})

	t.Run("should cancel a processing-completed order", func(t *testing.T) {
		m := seededOrderManager(t)

		res := m.CancelOrder(102)

		assert.True(t, res.OK())
		assert.Contains(t, res.Message, "successfully cancelled")
		require.NoError(t, res.Err())
		header, _ := m.GetHeaderByOrderID(102)
		assert.Equal(t, "Cancelled by Customer", header.StatusDescription)
		assert.Equal(t, order.CancelledByCustomer, header.Status)
	})

	t.Run("should cancel an acknowledged order", func(t *testing.T) {
		m := seededOrderManager(t)

		res := m.CancelOrder(104)

		assert.Equal(t, services.Cancelled, res.Outcome)
		header, _ := m.GetHeaderByOrderID(104)
		assert.Equal(t, "Cancelled by Customer", header.StatusDescription)
	})

	t.Run("should treat re-cancelling as success", func(t *testing.T) {
		m := seededOrderManager(t)

		require.True(t, m.CancelOrder(102).OK())
		assert.True(t, m.CancelOrder(102).OK())
	})

	t.Run("should report unknown ids", func(t *testing.T) {
		m := seededOrderManager(t)

		res := m.CancelOrder(999)

		assert.Equal(t, services.NotFound, res.Outcome)
		assert.Equal(t, "Order not found.", res.Message)
		assert.ErrorIs(t, res.Err(), errs.ErrObjectNotFound)
	})
}

func TestOrderManager_Filters(t *testing.T) {
	m := seededOrderManager(t)

	ids := func(orders []*order.Order) []int64 {
		out := make([]int64, 0, len(orders))
		for _, o := range orders {
			out = append(out, o.ID())
		}
		return out
	}

	t.Run("payment amount bounds are inclusive", func(t *testing.T) {
		got := m.FilterByPaymentAmount(kernel.NewMoneyFromInt(250), kernel.NewMoneyFromInt(500))
		assert.Equal(t, []int64{102, 103}, ids(got))
	})

	t.Run("payment type ignores case", func(t *testing.T) {
		assert.Equal(t, []int64{101, 103}, ids(m.FilterByPaymentType("m-pesa")))
		assert.Empty(t, m.FilterByPaymentType("Bitcoin"))
		assert.Empty(t, m.FilterByPaymentType(""))
	})

	t.Run("date range bounds are inclusive", func(t *testing.T) {
		got := m.FilterByDateRange(day(3), day(5))
		assert.Equal(t, []int64{102, 103}, ids(got))
	})

	t.Run("payment status ignores case", func(t *testing.T) {
		assert.Equal(t, []int64{103, 104}, ids(m.FilterByPaymentStatus("PENDING")))
	})

	t.Run("status filter", func(t *testing.T) {
		assert.Equal(t, []int64{104}, ids(m.GetOrdersByStatus(order.AcknowledgedAwaitingProcessing)))
	})

	t.Run("combined filter", func(t *testing.T) {
		minAmount := kernel.NewMoneyFromInt(200)
		got := m.Filter(services.OrderFilter{PaymentStatus: "paid", MinAmount: &minAmount})
		assert.Equal(t, []int64{102}, ids(got))
	})
}

func TestOrderManager_RemoveAndReplace(t *testing.T) {
	t.Run("should remove an order once", func(t *testing.T) {
		m := seededOrderManager(t)

		assert.True(t, m.RemoveOrder(101))
		assert.False(t, m.RemoveOrder(101))
		_, ok := m.GetHeaderByOrderID(101)
		assert.False(t, ok)
	})

	t.Run("should upsert a batch and keep the other orders", func(t *testing.T) {
		m := seededOrderManager(t)
		added := newOrderFixture(900, "Received", day(9), 10, "Cash", "Paid")
		o, err := order.NewOrder(added.header, added.details, added.payment)
		require.NoError(t, err)
		updated := newOrderFixture(101, "Delivered", day(1), 100, "M-Pesa", "Paid")
		u, err := order.NewOrder(updated.header, updated.details, updated.payment)
		require.NoError(t, err)

		require.NoError(t, m.AddAll([]*order.Order{o, u}))

		assert.Equal(t, 5, m.Len())
		_, ok := m.GetOrder(900)
		assert.True(t, ok)
		header, _ := m.GetHeaderByOrderID(101)
		assert.Equal(t, order.Delivered, header.Status)
	})

	t.Run("should store nothing when a batch member is invalid", func(t *testing.T) {
		m := seededOrderManager(t)
		f := newOrderFixture(900, "Received", day(9), 10, "Cash", "Paid")
		o, err := order.NewOrder(f.header, f.details, f.payment)
		require.NoError(t, err)

		err = m.AddAll([]*order.Order{o, {}})

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
		assert.Equal(t, 4, m.Len())
	})
}

func TestOrderManager_CountByStatus(t *testing.T) {
	m := seededOrderManager(t)
	m.CancelOrder(102)

	counts := m.CountByStatus()

	assert.Equal(t, 1, counts[order.Received])
	assert.Equal(t, 1, counts[order.CancelledByCustomer])
	assert.Equal(t, 1, counts[order.Delivered])
	assert.Equal(t, 0, counts[order.ProcessingCompleted])
}

func TestOrderManager_ConcurrentCancel(t *testing.T) {
	m := seededOrderManager(t)

	var wg sync.WaitGroup
	results := make([]services.CancelResult, 50)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = m.CancelOrder(104)
			_ = m.GetAllHeaders()
		}()
	}
	wg.Wait()

	for _, r := range results {
		assert.True(t, r.OK())
	}
	header, _ := m.GetHeaderByOrderID(104)
	assert.Equal(t, order.CancelledByCustomer, header.Status)
}

func TestSortOrders(t *testing.T) {
	m := seededOrderManager(t)
	all := m.Filter(services.OrderFilter{})
	require.NotEmpty(t, all)

	services.SortOrders(all, services.SortByGrandTotal, true)
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].Header().GrandTotal.Cmp(all[i].Header().GrandTotal), 0)
	}

	services.SortOrders(all, services.SortByID, false)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID(), all[i].ID())
	}
}
