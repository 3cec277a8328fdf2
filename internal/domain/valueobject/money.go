// Package valueobject defines the immutable, self-validating value objects of the domain.
package valueobject

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// Money represents a non-negative monetary amount in minor currency units
// (cents). Amounts are stored as integers; display conversion divides by 100.
type Money struct {
	cents int64
}

// NewMoney creates a Money from an amount in cents.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, domainerror.NewValidationError(
			domainerror.ErrCodeNegativeAmount,
			"amount cannot be negative",
		)
	}
	return Money{cents: cents}, nil
}

// ZeroMoney returns a Money of zero cents.
func ZeroMoney() Money {
	return Money{}
}

// Cents returns the amount in minor currency units.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two Money values. It fails when the result would
// overflow the representable range.
func (m Money) Add(other Money) (Money, error) {
	if m.cents > math.MaxInt64-other.cents {
		return Money{}, domainerror.NewValidationError(
			domainerror.ErrCodeAmountTooLarge,
			"amount is too large",
		)
	}
	return Money{cents: m.cents + other.cents}, nil
}

// Sub returns the difference of two Money values. It fails when the result
// would be negative.
func (m Money) Sub(other Money) (Money, error) {
	result := m.cents - other.cents
	if result < 0 {
		return Money{}, domainerror.NewValidationError(
			domainerror.ErrCodeNegativeAmount,
			"subtraction would result in negative amount",
		)
	}
	return Money{cents: result}, nil
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.cents > other.cents
}

// LessThan reports whether m is strictly less than other.
func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// Equals reports whether two Money values represent the same amount.
func (m Money) Equals(other Money) bool {
	return m.cents == other.cents
}

// ToDecimal converts the amount to major currency units for display.
func (m Money) ToDecimal() decimal.Decimal {
	return decimal.NewFromInt(m.cents).Div(decimal.NewFromInt(100))
}

// String returns the amount in cents as a string.
func (m Money) String() string {
	return strconv.FormatInt(m.cents, 10)
}
