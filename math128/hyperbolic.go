package math128

import "github.com/db47h/float128"

// Sinh, Cosh, Tanh and their inverses follow directly from Exp once it
// exists -- see DESIGN.md.

// Sinh returns sinh(x) = (e^x - e^-x)/2.
func Sinh(x float128.Float128) float128.Float128 {
	if x.IsNaN() {
		return float128.QuietNaN
	}
	if x.IsZero() || x.IsInf() {
		return x
	}
	ex := Exp(x)
	return ex.Sub(float128.One.Quo(ex)).Quo(two)
}

// Cosh returns cosh(x) = (e^x + e^-x)/2.
func Cosh(x float128.Float128) float128.Float128 {
	if x.IsNaN() {
		return float128.QuietNaN
	}
	if x.IsInf() {
		return float128.Inf(false)
	}
	ex := Exp(x)
	return ex.Add(float128.One.Quo(ex)).Quo(two)
}

// Tanh returns sinh(x)/cosh(x), computed directly from e^2x to avoid
// needlessly computing e^x and e^-x separately.
func Tanh(x float128.Float128) float128.Float128 {
	if x.IsNaN() {
		return float128.QuietNaN
	}
	if x.IsZero() {
		return x
	}
	if x.IsInf() {
		if x.Signbit() {
			return float128.NegOne
		}
		return float128.One
	}
	e2x := Exp(x.Add(x))
	return e2x.Sub(float128.One).Quo(e2x.Add(float128.One))
}

// Asinh returns asinh(x) = ln(x + sqrt(x^2+1)).
func Asinh(x float128.Float128) float128.Float128 {
	if x.IsNaN() || x.IsZero() || x.IsInf() {
		return x
	}
	return Log(x.Add(Sqrt(x.Mul(x).Add(float128.One))))
}

// Acosh returns acosh(x) = ln(x + sqrt(x^2-1)) for x >= 1; x < 1 is out
// of domain and yields the sentinel NaN.
func Acosh(x float128.Float128) float128.Float128 {
	if x.IsNaN() {
		return float128.QuietNaN
	}
	if cmp, _ := x.Cmp(float128.One); cmp < 0 {
		return float128.SentinelNaN
	}
	return Log(x.Add(Sqrt(x.Mul(x).Sub(float128.One))))
}

// Atanh returns atanh(x) = 0.5*ln((1+x)/(1-x)) for |x| < 1; |x| >= 1 is
// out of domain and yields the sentinel NaN.
func Atanh(x float128.Float128) float128.Float128 {
	if x.IsNaN() {
		return float128.QuietNaN
	}
	if cmp, _ := x.Abs().Cmp(float128.One); cmp >= 0 {
		return float128.SentinelNaN
	}
	num := float128.One.Add(x)
	den := float128.One.Sub(x)
	return Log(num.Quo(den)).Quo(two)
}
