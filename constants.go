package float128

// Static constants and bootstrap tables. The bootstrap order --
// decimal-literal parse, then a pow-10 table, then CORDIC tables -- is a
// real dependency chain, but Go's init() is already a compiler-enforced,
// dependency-ordered, exactly-once guard, so that chain is expressed
// here as a sequence of package-level var blocks and init functions
// rather than a hand-rolled one-shot guard: Zero/One/Pi/E first, the
// CORDIC tables last, since they depend on Pi and on Float128 arithmetic
// being usable.

// Zero, One, NegOne and the unexported two are the small integer constants the rest of
// this file (and math128) build on.
var (
	Zero   = Float128{}
	One    = Float128{bits: U128{Hi: uint64(expBias) << 48}}
	NegOne = One.Neg()
	two    = Float128{bits: U128{Hi: uint64(expBias+1) << 48}}
)

// Epsilon is the difference between 1 and the next representable
// Float128 greater than 1: 2^-112.
var Epsilon = One.Ulp()

// Pi, E, Tau, PiOver2, PiOver4 are parsed from literal decimal digit
// strings, except Tau/PiOver2/PiOver4, which are derived from Pi by
// exact halving/doubling instead of carrying three more long literals
// to transcribe.
var (
	Pi      Float128
	E       Float128
	Tau     Float128
	PiOver2 Float128
	PiOver4 Float128
)

func init() {
	Pi, _ = Parse("3.14159265358979323846264338327950288419716939937510")
	E, _ = Parse("2.71828182845904523536028747135266249775724709369995")
	Tau = Pi.Add(Pi)
	PiOver2 = Pi.Quo(two)
	PiOver4 = PiOver2.Quo(two)
}

// cordicIterations is the number of pseudo-rotations the CORDIC
// algorithm performs, and the length of thetaTable.
const cordicIterations = 32

// thetaTable[k] holds atan(2^-k) for k = 0..cordicIterations-1.
var thetaTable [cordicIterations]Float128

// cordicGain is K_n = product_{k=0}^{N-1} cos(theta_k), the CORDIC
// scaling constant applied once after the rotation loop.
var cordicGain Float128

func init() {
	thetaTable[0] = PiOver4 // atan(1) == pi/4 exactly; no series needed.
	for k := 1; k < cordicIterations; k++ {
		thetaTable[k] = atanSeriesSmall(pow2(int32(-k)), 90)
	}

	// cos(theta_k) = 1/sqrt(1+2^-2k), so K_n = 1/sqrt(product(1+2^-2k)):
	// one sqrt instead of N.
	s := One
	for k := 0; k < cordicIterations; k++ {
		s = s.Mul(One.Add(pow2(int32(-2 * k))))
	}
	cordicGain = One.Quo(sqrtBootstrap(s))
}

// atanSeriesSmall computes atan(x) via its Taylor series, valid for
// |x| <= 0.5 (the only range thetaTable's init loop calls it with,
// k >= 1 so x <= 0.5): sum_{n>=0} (-1)^n x^(2n+1)/(2n+1). terms=90 gives
// far more than binary128's ~113 bits of precision for that range since
// the series' ratio is x^2 <= 0.25.
func atanSeriesSmall(x Float128, terms int) Float128 {
	xx := x.Mul(x)
	term := x
	sum := Float128{}
	neg := false
	for n := 0; n < terms; n++ {
		denom := FromBigIntSmall(2*n + 1)
		t := term.Quo(denom)
		if neg {
			sum = sum.Sub(t)
		} else {
			sum = sum.Add(t)
		}
		term = term.Mul(xx)
		neg = !neg
	}
	return sum
}

// FromBigIntSmall converts a machine int of either sign to Float128 (via
// uintToFloat128 on its magnitude), a convenience for the bootstrap code
// in this file and for math128 without requiring callers to import
// math/big themselves.
func FromBigIntSmall(n int) Float128 {
	neg := n < 0
	u := uint64(n)
	if neg {
		u = uint64(-n)
	}
	v := uintToFloat128(U128{Lo: u})
	if neg {
		return v.Neg()
	}
	return v
}

// CordicIterations is the fixed iteration count the CORDIC algorithm
// runs for.
const CordicIterations = cordicIterations

// CordicTheta returns the bootstrap table entry atan(2^-k) for
// k in [0, CordicIterations).
func CordicTheta(k int) Float128 { return thetaTable[k] }

// CordicGain returns K_n = product_{k=0}^{N-1} cos(theta_k), the CORDIC
// scaling constant.
func CordicGain() Float128 { return cordicGain }

// sqrtBootstrap is a self-contained Newton-iteration square root used
// only to compute cordicGain during package initialization, before
// math128's public Sqrt (which math128 cannot lend back to this package,
// since math128 imports float128) is available. It is not exported:
// math128.Sqrt is the one callers should use.
func sqrtBootstrap(x Float128) Float128 {
	if x.IsZero() {
		return x
	}
	_, _, e := x.decode()
	y := pow2(e / 2)
	for i := 0; i < 40; i++ {
		y = y.Add(x.Quo(y)).Quo(two)
	}
	return y
}
