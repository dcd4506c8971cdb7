package math128_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/db47h/float128"
	"github.com/db47h/float128/math128"
)

func TestLog2PowersOfTwo(t *testing.T) {
	for k := -4; k <= 8; k++ {
		x := float128.One.ScaleB(int32(k))
		got := math128.Log2(x)
		want := float128.FromBigIntSmall(k)
		approxEqual(t, got, want, "log2(2^%d)", k)
	}
}

func TestLog2OutOfDomain(t *testing.T) {
	assert.True(t, math128.Log2(float128.Zero).IsNaN())
	assert.True(t, math128.Log2(float128.NegOne).IsNaN())
}

func TestLogAndLog10Identities(t *testing.T) {
	approxEqual(t, math128.Log(float128.E), float128.One, "ln(e)")
	approxEqual(t, math128.Log10(float128.FromBigIntSmall(100)), float128.FromBigIntSmall(2), "log10(100)")
}

func TestLogBase(t *testing.T) {
	eight := float128.FromBigIntSmall(8)
	two := float128.FromBigIntSmall(2)
	approxEqual(t, math128.LogBase(eight, two), float128.FromBigIntSmall(3), "log2(8) via LogBase")
}

func TestExpBasic(t *testing.T) {
	approxEqual(t, math128.Exp(float128.Zero), float128.One, "exp(0)")
	approxEqual(t, math128.Exp(float128.One), float128.E, "exp(1)")
}

func TestExpSpecialValues(t *testing.T) {
	assert.True(t, math128.Exp(float128.QuietNaN).IsNaN())
	got := math128.Exp(float128.Inf(false))
	assert.True(t, got.IsInf())
	assert.False(t, got.Signbit())
	assert.True(t, math128.Exp(float128.Inf(true)).IsZero())
}

func TestExp2AndExp10(t *testing.T) {
	approxEqual(t, math128.Exp2(float128.FromBigIntSmall(3)), float128.FromBigIntSmall(8), "2^3")
	approxEqual(t, math128.Exp10(float128.FromBigIntSmall(2)), float128.FromBigIntSmall(100), "10^2")
}

// P7: Exp and Log are inverse to within Newton-loop tolerance.
func TestExpLogRoundTrip(t *testing.T) {
	for k := -3; k <= 3; k++ {
		x := float128.FromBigIntSmall(k)
		got := math128.Log(math128.Exp(x))
		approxEqual(t, got, x, "log(exp(%d))", k)
	}
}

func TestPowBasic(t *testing.T) {
	two := float128.FromBigIntSmall(2)
	ten := float128.FromBigIntSmall(10)
	approxEqual(t, math128.Pow(two, float128.FromBigIntSmall(10)), float128.FromBigIntSmall(1024), "2^10")
	approxEqual(t, math128.Pow(ten, float128.Zero), float128.One, "x^0 == 1")
}

func TestPowZeroBase(t *testing.T) {
	got := math128.Pow(float128.Zero, float128.One)
	assert.True(t, got.IsZero())
	got = math128.Pow(float128.Zero, float128.NegOne)
	assert.True(t, got.IsInf())
}
