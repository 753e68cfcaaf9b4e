package order

import (
	"strings"

	"pharmadmin/internal/core/domain/model/kernel"
)

// Payment is the settlement record attached one-to-one to an order.
type Payment struct {
	ID                  int64
	ReferenceNumber     string
	PaymentStatus       string
	PaymentType         string
	TransactionID       string
	DeliveryCharges     kernel.Money
	PackagingCost       kernel.Money
	PromotionalDiscount kernel.Money
	CustomDiscount      kernel.Money
	TotalOrderAmount    kernel.Money
}

// HasType compares the payment type ignoring case and surrounding spaces.
func (p Payment) HasType(paymentType string) bool {
	return strings.EqualFold(strings.TrimSpace(p.PaymentType), strings.TrimSpace(paymentType))
}

// HasStatus compares the payment status ignoring case and surrounding spaces.
func (p Payment) HasStatus(paymentStatus string) bool {
	return strings.EqualFold(strings.TrimSpace(p.PaymentStatus), strings.TrimSpace(paymentStatus))
}

// Reconciliation compares the charged amount with what the parts add up to.
type Reconciliation struct {
	Expected   kernel.Money
	Charged    kernel.Money
	Difference kernel.Money
}

// Balanced reports a zero difference.
func (r Reconciliation) Balanced() bool {
	return r.Difference.IsZero()
}

// Reconcile computes grandTotal + delivery + packaging - discounts and
// compares it with TotalOrderAmount.
func (p Payment) Reconcile(grandTotal kernel.Money) Reconciliation {
	expected := grandTotal.
		Add(p.DeliveryCharges).
		Add(p.PackagingCost).
		Sub(p.PromotionalDiscount).
		Sub(p.CustomDiscount)

	return Reconciliation{
		Expected:   expected,
		Charged:    p.TotalOrderAmount,
		Difference: p.TotalOrderAmount.Sub(expected),
	}
}
