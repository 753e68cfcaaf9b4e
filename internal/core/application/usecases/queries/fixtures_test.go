package queries_test

import (
	"testing"
	"time"

	"pharmadmin/internal/core/domain/model/kernel"
	"pharmadmin/internal/core/domain/model/order"
	"pharmadmin/internal/core/domain/model/shipment"
	"pharmadmin/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, time.June, d, 9, 0, 0, 0, time.UTC)
}

func addOrder(t *testing.T, m *services.OrderManager, id int64, status string, created time.Time, total int64, paymentType string) {
	t.Helper()
	h := order.NewHeader(id, status)
	h.GrandTotal = kernel.NewMoneyFromInt(total)
	h.Created = created
	h.ModifiedAt = created

	details := []order.Detail{{
		ID:        id * 10,
		ProductID: "P-1",
		ItemName:  "Amoxicillin 500mg",
		Quantity:  2,
		UnitPrice: kernel.NewMoneyFromInt(total / 2),
		SubTotal:  kernel.NewMoneyFromInt(total),
	}}
	payment := order.Payment{
		ID:               id,
		PaymentType:      paymentType,
		PaymentStatus:    "Paid",
		TotalOrderAmount: kernel.NewMoneyFromInt(total),
	}
	require.NoError(t, m.AddOrder(id, h, details, payment))
}

func seededOrders(t *testing.T) *services.OrderManager {
	t.Helper()
	m := services.NewOrderManager()
	addOrder(t, m, 1, "Received", day(1), 100, "M-Pesa")
	addOrder(t, m, 2, "Processing Completed", day(2), 300, "Card")
	addOrder(t, m, 3, "Delivered", day(3), 200, "M-Pesa")
	addOrder(t, m, 4, "Awaiting courier", day(4), 50, "Cash")
	return m
}

func newTransit(id int64, status string, days int, products string) shipment.InTransitOrder {
	o := shipment.NewInTransitOrder(id, status)
	o.UserID = id + 1000
	o.PaymentMode = "M-Pesa"
	o.AmountPaid = kernel.NewMoneyFromInt(id * 100)
	o.DaysSinceOrder = days
	o.CreatedOn = day(int(id))
	o.ProductDetails = products
	return o
}

func seededInTransit(t *testing.T) *services.InTransitOrderManager {
	t.Helper()
	m := services.NewInTransitOrderManager()
	for _, o := range []shipment.InTransitOrder{
		newTransit(1, "INTRANSIT", 2, `{"A1":{"name":"Panadol","quantity":2,"price":150}}`),
		newTransit(2, "IN WAREHOUSE", 8, `{"B2":{"name":"Zyrtec","quantity":1,"price":900},"C3":{"name":"ORS","quantity":3,"price":"40.50"}}`),
		newTransit(3, "DELIVERED", 15, `{}`),
		newTransit(4, "INTRANSIT", 20, `not json`),
	} {
		require.NoError(t, m.AddOrder(o))
	}
	return m
}
