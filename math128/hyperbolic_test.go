package math128_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/db47h/float128"
	"github.com/db47h/float128/math128"
)

func TestSinhCoshBasic(t *testing.T) {
	assert.True(t, math128.Sinh(float128.Zero).IsZero())
	approxEqual(t, math128.Cosh(float128.Zero), float128.One, "cosh(0)")
}

// cosh^2 - sinh^2 == 1.
func TestSinhCoshIdentity(t *testing.T) {
	for k := -2; k <= 2; k++ {
		x := float128.FromBigIntSmall(k)
		s := math128.Sinh(x)
		c := math128.Cosh(x)
		diff := c.Mul(c).Sub(s.Mul(s))
		approxEqual(t, diff, float128.One, "cosh^2-sinh^2 at x=%d", k)
	}
}

func TestTanhBasicAndInf(t *testing.T) {
	assert.True(t, math128.Tanh(float128.Zero).IsZero())
	got := math128.Tanh(float128.Inf(false))
	approxEqual(t, got, float128.One, "tanh(+Inf)")
	got = math128.Tanh(float128.Inf(true))
	approxEqual(t, got, float128.NegOne, "tanh(-Inf)")
}

// Asinh/Acosh/Atanh invert Sinh/Cosh/Tanh to within Newton-loop
// tolerance.
func TestInverseHyperbolicRoundTrip(t *testing.T) {
	for k := 1; k <= 3; k++ {
		x := float128.FromBigIntSmall(k)
		got := math128.Asinh(math128.Sinh(x))
		approxEqual(t, got, x, "asinh(sinh(%d))", k)

		gotC := math128.Acosh(math128.Cosh(x))
		approxEqual(t, gotC, x, "acosh(cosh(%d))", k)
	}

	half := float128.One.Quo(float128.FromBigIntSmall(2))
	got := math128.Atanh(math128.Tanh(half))
	approxEqual(t, got, half, "atanh(tanh(0.5))")
}

func TestAcoshOutOfDomain(t *testing.T) {
	got := math128.Acosh(float128.Zero)
	assert.True(t, got.IsNaN())
}

func TestAtanhOutOfDomain(t *testing.T) {
	got := math128.Atanh(float128.FromBigIntSmall(2))
	assert.True(t, got.IsNaN())
}
