package math128

import "github.com/db47h/float128"

// rootIterations is the Newton-iteration count for Sqrt/Cbrt/RootN.
const rootIterations = 25

// Sqrt returns the square root of x via Newton iteration
// y <- (y + x/y)/2, 25 steps, y0 = x/2. Negative x yields the sentinel
// NaN.
func Sqrt(x float128.Float128) float128.Float128 {
	if x.IsNaN() {
		return float128.QuietNaN
	}
	if x.IsZero() {
		return x
	}
	if x.IsNegative() {
		return float128.SentinelNaN
	}
	if x.IsInf() {
		return x
	}
	y := x.Quo(two)
	for i := 0; i < rootIterations; i++ {
		y = y.Add(x.Quo(y)).Quo(two)
	}
	return y
}

// Cbrt returns the cube root of x via Newton iteration on
// y <- y - (y^3-x)/(3y^2) = (2y + x/y^2)/3, preserving x's sign (cube
// root is defined for negative x, unlike Sqrt).
func Cbrt(x float128.Float128) float128.Float128 {
	if x.IsNaN() || x.IsZero() || x.IsInf() {
		return x
	}
	three := float128.FromBigIntSmall(3)
	neg := x.Signbit()
	ax := x.Abs()
	y := ax.Quo(two)
	for i := 0; i < rootIterations; i++ {
		y2 := y.Mul(y)
		y = two.Mul(y).Add(ax.Quo(y2)).Quo(three)
	}
	if neg {
		return y.Neg()
	}
	return y
}

// RootN returns the n'th root of x via Newton iteration on
// y <- ((n-1)*y + x/y^(n-1))/n. n == 0 is an argument error; negative x
// with an even n is out of domain (sentinel NaN); negative x with an odd
// n preserves sign as Cbrt does.
func RootN(x float128.Float128, n int) (float128.Float128, error) {
	if n == 0 {
		return float128.Float128{}, &float128.ArgumentError{Func: "RootN", Msg: "n must be nonzero"}
	}
	if x.IsNaN() || x.IsZero() || x.IsInf() {
		return x, nil
	}
	if n == 1 {
		return x, nil
	}
	if n == 2 {
		return Sqrt(x), nil
	}
	if n == 3 {
		return Cbrt(x), nil
	}
	neg := x.Signbit()
	if neg && n%2 == 0 {
		return float128.SentinelNaN, nil
	}
	invert := n < 0
	un := n
	if invert {
		un = -n
	}
	ax := x.Abs()
	nf := float128.FromBigIntSmall(un)
	nm1 := float128.FromBigIntSmall(un - 1)
	y := ax
	for i := 0; i < rootIterations; i++ {
		yPow := powIntExact(y, un-1)
		y = nm1.Mul(y).Add(ax.Quo(yPow)).Quo(nf)
	}
	if invert {
		y = float128.One.Quo(y)
	}
	if neg {
		return y.Neg(), nil
	}
	return y, nil
}

// powIntExact returns y^k for a small non-negative machine int k via
// repeated squaring, used internally to evaluate RootN's Newton update.
func powIntExact(y float128.Float128, k int) float128.Float128 {
	result := float128.One
	base := y
	for k > 0 {
		if k&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		k >>= 1
	}
	return result
}

// Hypot returns sqrt(x^2 + y^2).
func Hypot(x, y float128.Float128) float128.Float128 {
	if x.IsNaN() || y.IsNaN() {
		return float128.QuietNaN
	}
	if x.IsInf() || y.IsInf() {
		return float128.Inf(false)
	}
	return Sqrt(x.Mul(x).Add(y.Mul(y)))
}
