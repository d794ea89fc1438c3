package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckedAddOverflow(t *testing.T) {
	max, ok := AmountFromDecimal("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	require.True(t, ok)

	_, ok = max.CheckedAdd(NewAmountFromUint64(1))
	require.False(t, ok)
}

func TestCheckedSubUnderflow(t *testing.T) {
	_, ok := ZeroAmount().CheckedSub(NewAmountFromUint64(1))
	require.False(t, ok)
}

func TestSaturatingAddClampsAtMax(t *testing.T) {
	max, ok := AmountFromDecimal("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	require.True(t, ok)

	result := max.SaturatingAdd(NewAmountFromUint64(1))
	require.Equal(t, max.String(), result.String())
}

func TestSaturatingSubClampsAtZero(t *testing.T) {
	result := NewAmountFromUint64(3).SaturatingSub(NewAmountFromUint64(10))
	require.True(t, result.IsZero())
}

func TestBytes32RoundTrip(t *testing.T) {
	original := NewAmountFromUint64(123456789)
	restored := AmountFromBytes32(original.Bytes32())
	require.Equal(t, original.String(), restored.String())
}

func TestFloat64Approximation(t *testing.T) {
	require.InDelta(t, 123456789.0, NewAmountFromUint64(123456789).Float64(), 1)
	require.Equal(t, 0.0, ZeroAmount().Float64())
}
