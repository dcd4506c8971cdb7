package math128

import (
	"sync"

	"github.com/db47h/float128"
)

var two = float128.FromBigIntSmall(2)

// log2Frac computes the fractional log2 of y, a value already reduced
// into [1, 2), to n bits of precision by repeated squaring: each step
// squares y, extracts one bit of the answer depending on whether the
// square spills into [2, 4), and halves the running remainder. See
// DESIGN.md for why this is the standard repeated-squaring form rather
// than a more literal step-by-step description.
func log2Frac(y float128.Float128, n int) float128.Float128 {
	if n == 0 {
		return float128.Zero
	}
	y2 := y.Mul(y)
	bit := float128.Zero
	if cmp, _ := y2.Cmp(two); cmp >= 0 {
		bit = float128.One
		y2 = y2.Quo(two)
	}
	return bit.Add(log2Frac(y2, n-1)).ScaleB(-1)
}

// log2Iterations is N in the log2(x) = n + log2Frac(y, N) formula.
const log2Iterations = 25

// Log2 returns log2(x). x <= 0 is out of domain and yields the sentinel
// NaN.
func Log2(x float128.Float128) float128.Float128 {
	if x.IsNaN() {
		return float128.QuietNaN
	}
	if !x.IsPositive() {
		return float128.SentinelNaN
	}
	n := x.Ilogb()
	y := x.ScaleB(-n)
	nf := float128.FromBigIntSmall(int(n))
	if y.Equal(float128.One) {
		return nf
	}
	return nf.Add(log2Frac(y, log2Iterations))
}

var (
	log2EOnce sync.Once
	log2ECst  float128.Float128
	log2TOnce sync.Once
	log2TCst  float128.Float128
)

func log2E() float128.Float128 {
	log2EOnce.Do(func() { log2ECst = Log2(float128.E) })
	return log2ECst
}

func log2Ten() float128.Float128 {
	log2TOnce.Do(func() { log2TCst = Log2(float128.FromBigIntSmall(10)) })
	return log2TCst
}

// Log returns the natural logarithm of x.
func Log(x float128.Float128) float128.Float128 { return Log2(x).Quo(log2E()) }

// Log10 returns the base-10 logarithm of x.
func Log10(x float128.Float128) float128.Float128 { return Log2(x).Quo(log2Ten()) }

// LogBase returns the base-`base` logarithm of x.
func LogBase(x, base float128.Float128) float128.Float128 { return Log2(x).Quo(Log2(base)) }

// expIterations is the Newton-iteration count for Exp/Exp2/Exp10.
const expIterations = 25

// Exp returns e^y: an initial guess x = e^trunc(y) built by repeated
// multiplication/division, refined by 25 Newton steps of
// x <- x + x*(y - ln x).
func Exp(y float128.Float128) float128.Float128 {
	if y.IsNaN() {
		return float128.QuietNaN
	}
	if y.IsZero() {
		return float128.One
	}
	if y.IsInf() {
		if y.Signbit() {
			return float128.Zero
		}
		return float128.Inf(false)
	}
	// e^y overflows/underflows binary128 range well before |y| reaches
	// 16384*ln2 ~= 11357; bail out before the integer seeding loop below
	// would otherwise run an enormous number of times.
	const boundDigits = 12000
	if cmp, _ := y.Abs().Cmp(float128.FromBigIntSmall(boundDigits)); cmp > 0 {
		if y.Signbit() {
			return float128.Zero
		}
		return float128.Inf(false)
	}

	k := y.Int64()
	x := float128.One
	if k > 0 {
		for i := int64(0); i < k; i++ {
			x = x.Mul(float128.E)
		}
	} else if k < 0 {
		for i := int64(0); i < -k; i++ {
			x = x.Quo(float128.E)
		}
	}
	for i := 0; i < expIterations; i++ {
		x = x.Add(x.Mul(y.Sub(Log(x))))
	}
	return x
}

// Exp2 returns 2^y, computed as Exp(y*ln2) analogously to Exp10.
func Exp2(y float128.Float128) float128.Float128 {
	return powViaExpLog(y, float128.FromBigIntSmall(2))
}

// Exp10 returns 10^y.
func Exp10(y float128.Float128) float128.Float128 {
	return powViaExpLog(y, float128.FromBigIntSmall(10))
}

func powViaExpLog(y, base float128.Float128) float128.Float128 {
	if y.IsNaN() {
		return float128.QuietNaN
	}
	return Exp(y.Mul(Log(base)))
}

// Pow returns x^y = exp(y*log(x)).
func Pow(x, y float128.Float128) float128.Float128 {
	if x.IsNaN() || y.IsNaN() {
		return float128.QuietNaN
	}
	if y.IsZero() {
		return float128.One
	}
	if x.IsZero() {
		if y.IsNegative() {
			return float128.Inf(false)
		}
		return float128.Zero
	}
	return Exp(y.Mul(Log(x)))
}
