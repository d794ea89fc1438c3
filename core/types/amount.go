package types

import (
	"math/big"

	"github.com/holiman/uint256"
)

// Amount is a 256-bit unsigned fixed-point token quantity. It wraps
// uint256.Int rather than math/big so that overflow/underflow are
// detected without an extra comparison against a bound, matching the
// checked-arithmetic and saturating-arithmetic policies entry points
// require per operation.
type Amount struct {
	inner uint256.Int
}

// ZeroAmount is the additive identity.
func ZeroAmount() Amount {
	return Amount{}
}

// NewAmountFromUint64 builds an Amount from a machine integer; convenient
// for tests and genesis manifests.
func NewAmountFromUint64(v uint64) Amount {
	var a Amount
	a.inner.SetUint64(v)
	return a
}

// AmountFromDecimal constructs an Amount from a decimal string, rejecting
// negative or malformed values.
func AmountFromDecimal(s string) (Amount, bool) {
	var a Amount
	ok := a.inner.SetFromDecimal(s)
	return a, ok == nil
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool {
	return a.inner.IsZero()
}

// Cmp compares two amounts the way bytes.Compare compares slices.
func (a Amount) Cmp(other Amount) int {
	return a.inner.Cmp(&other.inner)
}

// GreaterThan reports whether a > other.
func (a Amount) GreaterThan(other Amount) bool {
	return a.Cmp(other) > 0
}

// LessThanOrEqual reports whether a <= other.
func (a Amount) LessThanOrEqual(other Amount) bool {
	return a.Cmp(other) <= 0
}

// CheckedAdd returns a+b and true, or the zero value and false if the sum
// overflows 256 bits.
func (a Amount) CheckedAdd(b Amount) (Amount, bool) {
	var out Amount
	overflow := out.inner.AddOverflow(&a.inner, &b.inner)
	if overflow {
		return Amount{}, false
	}
	return out, true
}

// CheckedSub returns a-b and true, or the zero value and false if the
// subtraction would underflow.
func (a Amount) CheckedSub(b Amount) (Amount, bool) {
	var out Amount
	underflow := out.inner.SubOverflow(&a.inner, &b.inner)
	if underflow {
		return Amount{}, false
	}
	return out, true
}

// SaturatingAdd returns a+b clamped to the maximum representable amount.
func (a Amount) SaturatingAdd(b Amount) Amount {
	sum, ok := a.CheckedAdd(b)
	if ok {
		return sum
	}
	var max Amount
	max.inner.SetAllOne()
	return max
}

// SaturatingSub returns a-b clamped to zero.
func (a Amount) SaturatingSub(b Amount) Amount {
	diff, ok := a.CheckedSub(b)
	if ok {
		return diff
	}
	return ZeroAmount()
}

// String renders the amount in base 10.
func (a Amount) String() string {
	return a.inner.Dec()
}

// Float64 approximates the amount as a float64, for metrics gauges where
// exact 256-bit precision isn't meaningful (Prometheus samples are
// float64 anyway).
func (a Amount) Float64() float64 {
	f := new(big.Float).SetInt(a.inner.ToBig())
	out, _ := f.Float64()
	return out
}

// Bytes32 returns the big-endian 32-byte encoding used for persistence.
func (a Amount) Bytes32() [32]byte {
	return a.inner.Bytes32()
}

// AmountFromBytes32 reconstructs an Amount from its big-endian encoding.
func AmountFromBytes32(b [32]byte) Amount {
	var a Amount
	a.inner.SetBytes(b[:])
	return a
}
