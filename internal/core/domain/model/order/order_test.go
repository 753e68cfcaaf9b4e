package order_test

import (
	"testing"

	"pharmadmin/internal/core/domain/model/kernel"
	"pharmadmin/internal/core/domain/model/order"
	"pharmadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHeader(id int64, status string) order.Header {
	h := order.NewHeader(id, status)
	h.ReferenceNumber = "RFN-1"
	h.GrandTotal = kernel.NewMoneyFromInt(1000)
	return h
}

func newDetail(qty int, unitPrice, subTotal int64) order.Detail {
	return order.Detail{
		ID:        1,
		ProductID: "P-1",
		ItemName:  "Paracetamol 500mg",
		Quantity:  qty,
		UnitPrice: kernel.NewMoneyFromInt(unitPrice),
		SubTotal:  kernel.NewMoneyFromInt(subTotal),
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order with valid records", func(t *testing.T) {
		o, err := order.NewOrder(newHeader(101, "Received"), []order.Detail{newDetail(2, 250, 500)}, order.Payment{ID: 9})

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(101), o.ID())
		assert.Equal(t, order.Received, o.Status())
		assert.Equal(t, 2, o.ItemCount())
		assert.Equal(t, int64(9), o.Payment().ID)
	})

	t.Run("should join every validation failure", func(t *testing.T) {
		h := newHeader(0, "Received")
		h.GrandTotal = kernel.NewMoneyFromInt(-5)

		_, err := order.NewOrder(h, []order.Detail{newDetail(0, 10, 0)}, order.Payment{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "header.id")
		assert.Contains(t, err.Error(), "header.grand_total")
		assert.Contains(t, err.Error(), "detail.qty")
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

		var nilOrder *order.Order
		require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AccessorsReturnCopies(t *testing.T) {
	o, err := order.NewOrder(newHeader(1, "Received"), []order.Detail{newDetail(1, 10, 10)}, order.Payment{})
	require.NoError(t, err)

	details := o.Details()
	details[0].Quantity = 99
	header := o.Header()
	header.StatusDescription = "tampered"

	assert.Equal(t, 1, o.Details()[0].Quantity)
	assert.Equal(t, "Received", o.Header().StatusDescription)
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should refuse a delivered order and leave it unchanged", func(t *testing.T) {
		o, _ := order.NewOrder(newHeader(7, "Delivered"), nil, order.Payment{})

		err := o.Cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStatusIsTerminal)
		assert.IsType(t, &errs.StatusIsTerminalError{}, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, "Delivered", o.Header().StatusDescription)
	})

	t.Run("should refuse a received order", func(t *testing.T) {
		o, _ := order.NewOrder(newHeader(101, "Received"), nil, order.Payment{})

		require.ErrorIs(t, o.Cancel(), errs.ErrStatusIsTerminal)
		assert.Equal(t, "Received", o.Header().StatusDescription)
	})

	t.Run("should cancel an order awaiting processing", func(t *testing.T) {
		o, _ := order.NewOrder(newHeader(5, "Acknowledged – Awaiting Processing"), nil, order.Payment{})

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.CancelledByCustomer, o.Status())
		assert.Equal(t, "Cancelled by Customer", o.Header().StatusDescription)
	})

	t.Run("should accept cancelling twice", func(t *testing.T) {
		o, _ := order.NewOrder(newHeader(102, "Processing Completed"), nil, order.Payment{})

		require.NoError(t, o.Cancel())
		require.NoError(t, o.Cancel())
		assert.Equal(t, order.CancelledByCustomer, o.Status())
	})

	t.Run("should cancel an order with unknown status text", func(t *testing.T) {
		o, _ := order.NewOrder(newHeader(8, "On Hold"), nil, order.Payment{})

		assert.Equal(t, "On Hold", o.Header().StatusLabel())
		require.NoError(t, o.Cancel())
		assert.Equal(t, "Cancelled by Customer", o.Header().StatusLabel())
	})
}

func TestOrder_Clone(t *testing.T) {
	o, _ := order.NewOrder(newHeader(3, "Processing Completed"), []order.Detail{newDetail(1, 10, 10)}, order.Payment{})

	c := o.Clone()
	require.NoError(t, c.Cancel())

	assert.Equal(t, order.ProcessingCompleted, o.Status())
	assert.Equal(t, order.CancelledByCustomer, c.Status())
}

func TestOrder_Checks(t *testing.T) {
	h := newHeader(4, "Received")
	h.GrandTotal = kernel.NewMoneyFromInt(700)
	payment := order.Payment{
		DeliveryCharges:     kernel.NewMoneyFromInt(150),
		PackagingCost:       kernel.NewMoneyFromInt(50),
		PromotionalDiscount: kernel.NewMoneyFromInt(100),
		CustomDiscount:      kernel.NewMoneyFromInt(0),
		TotalOrderAmount:    kernel.NewMoneyFromInt(800),
	}
	o, err := order.NewOrder(h, []order.Detail{newDetail(2, 250, 500), newDetail(1, 200, 150)}, payment)
	require.NoError(t, err)

	t.Run("should reconcile payment against grand total", func(t *testing.T) {
		r := o.Reconcile()

		assert.True(t, r.Balanced())
		assert.Equal(t, "800.00", r.Expected.String())
	})

	t.Run("should report mismatched sub-totals", func(t *testing.T) {
		mismatched := o.MismatchedDetails()

		require.Len(t, mismatched, 1)
		assert.Equal(t, "200.00", mismatched[0].ExpectedSubTotal().String())
		assert.Equal(t, "650.00", o.DetailsTotal().String())
	})
}

func TestPayment_Matchers(t *testing.T) {
	p := order.Payment{PaymentType: "M-Pesa", PaymentStatus: "PAID"}

	assert.True(t, p.HasType("m-pesa"))
	assert.True(t, p.HasType(" M-PESA "))
	assert.False(t, p.HasType("Card"))
	assert.True(t, p.HasStatus("paid"))
	assert.False(t, p.HasStatus("pending"))
}
