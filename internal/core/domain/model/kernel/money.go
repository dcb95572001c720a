package kernel

import (
	"fmt"

	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits kept for currency amounts.
const moneyScale = 2

// Money is a non-negative currency amount held as an exact decimal.
// The zero value is a valid amount of 0.00.
type Money struct {
	amount decimal.Decimal
}

// Zero returns an amount of 0.00.
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney builds an amount from a decimal, rejecting negatives and
// values with more than two fractional digits.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", amount))
	}
	if !amount.Equal(amount.Round(moneyScale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s has more than %d decimal places", amount, moneyScale),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses amounts such as "5.99" or "12".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewMoney(amount)
}

// MustMoney parses s and panics on failure. Intended for literals.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times returns m multiplied by a whole quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Decimal exposes the underlying exact value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Equal compares by value, so 5.9 equals 5.90.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is 0.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String renders the amount with exactly two decimals, e.g. "20.97".
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
