package math128_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/float128"
	"github.com/db47h/float128/math128"
)

// tol is the tolerance spec.md's own property tests (P9) use for the
// Newton/CORDIC-based transcendentals: 10^-3.
var tol = func() float128.Float128 {
	v, _ := float128.Parse("0.001")
	return v
}()

func approxEqual(t *testing.T, got, want float128.Float128, msgAndArgs ...interface{}) {
	diff := got.Sub(want).Abs()
	cmp, _ := diff.Cmp(tol)
	assert.LessOrEqual(t, cmp, 0, msgAndArgs...)
}

// angle returns num/den * pi, e.g. angle(1,6) = pi/6 = 30 degrees.
func angle(num, den int) float128.Float128 {
	n := float128.FromBigIntSmall(num)
	d := float128.FromBigIntSmall(den)
	return n.Mul(float128.Pi).Quo(d)
}

func TestSinCosBasicValues(t *testing.T) {
	r := math128.SinCos(float128.Zero)
	approxEqual(t, r.Sin, float128.Zero, "sin(0)")
	approxEqual(t, r.Cos, float128.One, "cos(0)")

	r = math128.SinCos(float128.PiOver2)
	approxEqual(t, r.Sin, float128.One, "sin(pi/2)")
	approxEqual(t, r.Cos, float128.Zero, "cos(pi/2)")

	r = math128.SinCos(float128.Pi)
	approxEqual(t, r.Sin, float128.Zero, "sin(pi)")
	approxEqual(t, r.Cos, float128.NegOne, "cos(pi)")
}

// P8: trig quadrant signs, tested at 15-degree increments (pi/12 steps)
// across a full revolution.
func TestTrigQuadrantSigns(t *testing.T) {
	for k := 1; k < 24; k++ {
		alpha := angle(k, 12) // k * 15 degrees
		r := math128.SinCos(alpha)
		switch {
		case k < 6: // (0, pi/2)
			assert.True(t, r.Sin.IsPositive(), "k=%d sin should be > 0", k)
			assert.True(t, r.Cos.IsPositive(), "k=%d cos should be > 0", k)
		case k > 6 && k < 12: // (pi/2, pi)
			assert.True(t, r.Sin.IsPositive(), "k=%d sin should be > 0", k)
			assert.True(t, r.Cos.IsNegative(), "k=%d cos should be < 0", k)
		case k > 12 && k < 18: // (pi, 3pi/2)
			assert.True(t, r.Sin.IsNegative(), "k=%d sin should be < 0", k)
			assert.True(t, r.Cos.IsNegative(), "k=%d cos should be < 0", k)
		case k > 18 && k < 24: // (3pi/2, 2pi)
			assert.True(t, r.Sin.IsNegative(), "k=%d sin should be < 0", k)
			assert.True(t, r.Cos.IsPositive(), "k=%d cos should be > 0", k)
		}
	}
}

// P10: sin^2 + cos^2 == 1, modulo rounding.
func TestSinCosIdentity(t *testing.T) {
	for k := 0; k < 12; k++ {
		alpha := angle(k, 6)
		r := math128.SinCos(alpha)
		sum := r.Sin.Mul(r.Sin).Add(r.Cos.Mul(r.Cos))
		approxEqual(t, sum, float128.One, "sin^2+cos^2 at k=%d", k)
	}
}

func TestTanAgreesWithSinCos(t *testing.T) {
	alpha := angle(1, 6) // pi/6
	r := math128.SinCos(alpha)
	want := r.Sin.Quo(r.Cos)
	got := math128.Tan(alpha)
	assert.True(t, got.Equal(want))
}

func TestSinCosNaNInf(t *testing.T) {
	r := math128.SinCos(float128.QuietNaN)
	require.True(t, r.Sin.IsNaN())
	require.True(t, r.Cos.IsNaN())
	r = math128.SinCos(float128.Inf(false))
	require.True(t, r.Sin.IsNaN())
}

func TestSinPiCosPi(t *testing.T) {
	half := float128.One.Quo(float128.FromBigIntSmall(2))
	approxEqual(t, math128.SinPi(half), float128.One, "sin(0.5*pi)")
	approxEqual(t, math128.CosPi(float128.One), float128.NegOne, "cos(pi)")
}
