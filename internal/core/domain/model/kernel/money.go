package kernel

import (
	"fmt"

	"pharmadmin/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is an immutable currency amount in the store currency (KES).
// The backend sends amounts as JSON numbers; Money keeps them as decimals so
// that totals and reconciliation never suffer float rounding.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney is the zero amount.
var ZeroMoney = Money{amount: decimal.Zero}

// NewMoney wraps a decimal amount.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// NewMoneyFromFloat converts a float amount. Use it only for values that
// already arrived as floats.
func NewMoneyFromFloat(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount)}
}

// NewMoneyFromInt converts a whole amount.
func NewMoneyFromInt(amount int64) Money {
	return Money{amount: decimal.NewFromInt(amount)}
}

// ParseMoney parses a decimal string such as "1250.50".
func ParseMoney(paramName, s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return Money{amount: d}, nil
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Times multiplies the amount by a quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Cmp returns -1, 0 or +1 as m is less than, equal to or greater than other.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Between reports whether minAmount <= m <= maxAmount.
func (m Money) Between(minAmount, maxAmount Money) bool {
	return m.Cmp(minAmount) >= 0 && m.Cmp(maxAmount) <= 0
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// ValidateNonNegative returns a ValueIsInvalidError naming paramName when m < 0.
func (m Money) ValidateNonNegative(paramName string) error {
	if m.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%s is negative", m))
	}
	return nil
}

// Float64 returns the nearest float value, for presentation only.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String formats the amount with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// MarshalJSON writes the amount as a bare JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.amount.String()), nil
}

// UnmarshalJSON accepts both numbers and quoted numbers.
func (m *Money) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		m.amount = decimal.Zero
		return nil
	}
	return m.amount.UnmarshalJSON(data)
}
