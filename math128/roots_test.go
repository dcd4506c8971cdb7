package math128_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/float128"
	"github.com/db47h/float128/math128"
)

func TestSqrtBasic(t *testing.T) {
	approxEqual(t, math128.Sqrt(float128.FromBigIntSmall(4)), float128.FromBigIntSmall(2), "sqrt(4)")
	approxEqual(t, math128.Sqrt(float128.FromBigIntSmall(2)).Mul(math128.Sqrt(float128.FromBigIntSmall(2))), float128.FromBigIntSmall(2), "sqrt(2)^2")
	assert.True(t, math128.Sqrt(float128.Zero).IsZero())
}

func TestSqrtNegativeIsSentinel(t *testing.T) {
	got := math128.Sqrt(float128.NegOne)
	assert.True(t, got.IsNaN())
}

func TestSqrtInf(t *testing.T) {
	got := math128.Sqrt(float128.Inf(false))
	assert.True(t, got.IsInf())
	assert.False(t, got.Signbit())
}

func TestCbrtBasic(t *testing.T) {
	approxEqual(t, math128.Cbrt(float128.FromBigIntSmall(27)), float128.FromBigIntSmall(3), "cbrt(27)")
	approxEqual(t, math128.Cbrt(float128.FromBigIntSmall(-27)), float128.FromBigIntSmall(-3), "cbrt(-27) preserves sign")
}

func TestRootNBasic(t *testing.T) {
	got, err := math128.RootN(float128.FromBigIntSmall(16), 4)
	require.NoError(t, err)
	approxEqual(t, got, float128.FromBigIntSmall(2), "16^(1/4)")
}

func TestRootNZeroIsArgumentError(t *testing.T) {
	_, err := math128.RootN(float128.One, 0)
	require.Error(t, err)
	var argErr *float128.ArgumentError
	require.ErrorAs(t, err, &argErr)
}

func TestRootNNegativeEvenIsSentinel(t *testing.T) {
	got, err := math128.RootN(float128.NegOne, 2)
	require.NoError(t, err)
	assert.True(t, got.IsNaN())
}

func TestRootNNegativeOddPreservesSign(t *testing.T) {
	got, err := math128.RootN(float128.FromBigIntSmall(-8), 3)
	require.NoError(t, err)
	approxEqual(t, got, float128.FromBigIntSmall(-2), "(-8)^(1/3)")
}

func TestHypot(t *testing.T) {
	approxEqual(t, math128.Hypot(float128.FromBigIntSmall(3), float128.FromBigIntSmall(4)), float128.FromBigIntSmall(5), "3-4-5 triangle")
}

func TestHypotNaNInf(t *testing.T) {
	assert.True(t, math128.Hypot(float128.QuietNaN, float128.One).IsNaN())
	assert.True(t, math128.Hypot(float128.Inf(false), float128.One).IsInf())
}
