package domain

import (
	"fmt"
	"math/big"
)

// Money represents a monetary amount with precise decimal arithmetic using
// big.Rat, so cart totals never accumulate floating-point drift.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a Money from numerator and denominator.
// Example: NewMoney(4500, 100) represents 45.00.
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator == 0 {
		return nil, fmt.Errorf("denominator cannot be zero")
	}
	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// MoneyFromFloat converts a catalog unit price into Money.
// Catalog prices are display values, so the nearest rational is exact
// enough here; all subsequent arithmetic is precise.
func MoneyFromFloat(value float64) *Money {
	rat := new(big.Rat)
	rat.SetFloat64(value)
	return &Money{rat: rat}
}

// ZeroMoney returns a zero amount.
func ZeroMoney() *Money {
	return &Money{rat: big.NewRat(0, 1)}
}

// Add returns the sum of both amounts as a new Money.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// MultiplyInt64 returns this amount multiplied by a whole quantity.
func (m *Money) MultiplyInt64(quantity int64) *Money {
	factor := new(big.Rat).SetInt64(quantity)
	return &Money{rat: new(big.Rat).Mul(m.rat, factor)}
}

// IsZero returns true if the amount is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// Float64 returns an approximate float64 representation (for display only).
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String returns the amount formatted with two decimal places.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}
