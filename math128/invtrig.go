package math128

import "github.com/db47h/float128"

// newtonIterations is the fixed iteration count used for every
// inverse-trig Newton loop (logexp.go has its own counts): no adaptive stopping, no
// convergence check, just 25 fixed steps.
const newtonIterations = 25

// Asin returns asin(x) via Newton iteration on sin(y) - x, 25 steps
// starting from y0 = 0. |x| > 1 is out of domain and yields the
// sentinel NaN.
func Asin(x float128.Float128) float128.Float128 {
	if x.IsNaN() {
		return float128.QuietNaN
	}
	if cmp, _ := x.Abs().Cmp(float128.One); cmp > 0 {
		return float128.SentinelNaN
	}
	y := float128.Zero
	for i := 0; i < newtonIterations; i++ {
		r := SinCos(y)
		y = y.Add(x.Sub(r.Sin).Quo(r.Cos))
	}
	return y
}

// Acos returns acos(x) via Newton iteration on cos(y) - x, 25 steps
// starting from y0 = 1. |x| > 1 is out of domain and yields the
// sentinel NaN.
func Acos(x float128.Float128) float128.Float128 {
	if x.IsNaN() {
		return float128.QuietNaN
	}
	if cmp, _ := x.Abs().Cmp(float128.One); cmp > 0 {
		return float128.SentinelNaN
	}
	y := float128.One
	for i := 0; i < newtonIterations; i++ {
		r := SinCos(y)
		y = y.Add(r.Cos.Sub(x).Quo(r.Sin))
	}
	return y
}

// Atan returns atan(x) via 25 Newton steps of
// y <- x*cos(y)^2 - sin(y)*cos(y) + y, starting from y0 = 0.
func Atan(x float128.Float128) float128.Float128 {
	if x.IsNaN() {
		return float128.QuietNaN
	}
	y := float128.Zero
	for i := 0; i < newtonIterations; i++ {
		r := SinCos(y)
		cy2 := r.Cos.Mul(r.Cos)
		y = x.Mul(cy2).Sub(r.Sin.Mul(r.Cos)).Add(y)
	}
	return y
}

// Atan2 returns the four-quadrant arctangent of y/x, per the standard
// piecewise definition in terms of Atan.
func Atan2(y, x float128.Float128) float128.Float128 {
	if x.IsNaN() || y.IsNaN() {
		return float128.QuietNaN
	}
	switch {
	case x.IsPositive():
		return Atan(y.Quo(x))
	case x.IsNegative():
		if !y.Signbit() {
			return Atan(y.Quo(x)).Add(float128.Pi)
		}
		return Atan(y.Quo(x)).Sub(float128.Pi)
	case x.IsZero():
		switch {
		case y.IsZero():
			return float128.Zero
		case !y.Signbit():
			return float128.PiOver2
		default:
			return float128.PiOver2.Neg()
		}
	default:
		return float128.QuietNaN
	}
}
