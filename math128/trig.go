package math128

import "github.com/db47h/float128"

// SinCosResult holds the paired sine/cosine CORDIC produces in one
// pass: computing one without the other is no cheaper, so SinCos is
// the primitive and Sin/Cos are thin wrappers.
type SinCosResult struct {
	Sin, Cos float128.Float128
}

// SinCos computes sin(alpha) and cos(alpha) with a single CORDIC
// rotation:
//  1. Argument reduction: phi = IEEE remainder of alpha and tau, folded
//     into [-pi/2, pi/2] by adding/subtracting pi.
//  2. Pseudo-rotate (x, y) from (1, 0) toward angle phi in
//     float128.CordicIterations steps, accumulating the swept angle
//     theta and choosing each step's direction sigma by comparing theta
//     to phi.
//  3. Scale the result by the fixed CORDIC gain K_n.
func SinCos(alpha float128.Float128) SinCosResult {
	if alpha.IsNaN() || alpha.IsInf() {
		return SinCosResult{Sin: float128.QuietNaN, Cos: float128.QuietNaN}
	}

	phi := alpha.Remainder(float128.Tau)
	negate := false
	if cmp, _ := phi.Cmp(float128.PiOver2); cmp > 0 {
		phi = phi.Sub(float128.Pi)
		negate = true
	} else if cmp, _ := phi.Cmp(float128.PiOver2.Neg()); cmp < 0 {
		phi = phi.Add(float128.Pi)
		negate = true
	}

	x := float128.One
	y := float128.Zero
	theta := float128.Zero
	for i := 0; i < float128.CordicIterations; i++ {
		cmp, _ := theta.Cmp(phi)
		sigma := float128.One
		if cmp > 0 {
			sigma = float128.NegOne
		}
		xScaled := x.ScaleB(-int32(i))
		yScaled := y.ScaleB(-int32(i))
		newX := x.Sub(sigma.Mul(yScaled))
		newY := xScaled.Mul(sigma).Add(y)
		x, y = newX, newY
		theta = theta.Add(sigma.Mul(float128.CordicTheta(i)))
	}

	gain := float128.CordicGain()
	s := y.Mul(gain)
	c := x.Mul(gain)
	if negate {
		s, c = s.Neg(), c.Neg()
	}
	return SinCosResult{Sin: s, Cos: c}
}

// Sin returns sin(alpha).
func Sin(alpha float128.Float128) float128.Float128 { return SinCos(alpha).Sin }

// Cos returns cos(alpha).
func Cos(alpha float128.Float128) float128.Float128 { return SinCos(alpha).Cos }

// Tan returns sin(alpha)/cos(alpha).
func Tan(alpha float128.Float128) float128.Float128 {
	r := SinCos(alpha)
	return r.Sin.Quo(r.Cos)
}

// SinPi returns sin(x*pi), computed as Sin(x*Pi): x is multiplied by the
// rounded Pi constant before argument reduction, so the rounding error
// of that product grows with |x|.
func SinPi(x float128.Float128) float128.Float128 { return Sin(x.Mul(float128.Pi)) }

// CosPi returns cos(x*pi).
func CosPi(x float128.Float128) float128.Float128 { return Cos(x.Mul(float128.Pi)) }
