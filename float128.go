package float128

// Float128 is an IEEE 754-2019 binary128 (quadruple-precision)
// floating-point value. It is a plain 128-bit value type: copying a
// Float128 copies its bits, there is no heap allocation anywhere in
// this package's arithmetic paths, and the zero value of Float128 is
// +0, just as the zero value of float64 is +0.
//
// Bit layout, packed into a U128:
//
//	bit  127       sign
//	bits 126..112  15-bit biased exponent (bias 16383)
//	bits 111..0    112-bit trailing significand
type Float128 struct {
	bits U128
}

const (
	significandBits = 112
	expBits         = 15
	expBias         = 16383

	// expMin is the unbiased exponent shared by subnormals and the
	// smallest normal (E=0 in the encoded form): e = 1 − 16383 = −16382
	// for E=0.
	expMin = -16382
	// expMax is the largest unbiased exponent of a normal (E=32766).
	expMax = 16383
	// expInfNaN is the sentinel unbiased-exponent value (not a real
	// exponent) used by decode/encode to mean E=32767: ±Inf or NaN.
	expInfNaN = 16384

	maxBiasedExp = 0x7fff // 32767
)

// tMask masks the 112-bit trailing significand within a U128's low bits.
var tMask = U128{Lo: ^uint64(0), Hi: 0xffffffffffff}

// implicitBit is bit 112, the implicit leading 1 of a normal significand.
var implicitBit = U128{Lo: 0, Hi: 1 << 48}

// FromBits reinterprets the raw 128-bit word b as a Float128, with no
// validation: any bit pattern is a valid (if possibly non-canonical)
// Float128.
func FromBits(b U128) Float128 { return Float128{bits: b} }

// Bits returns f's raw 128-bit encoding.
func (f Float128) Bits() U128 { return f.bits }

func rawEncode(sign bool, E uint32, T U128) Float128 {
	hi := (uint64(E) & 0x7fff << 48) | (T.Hi & 0xffffffffffff)
	if sign {
		hi |= 1 << 63
	}
	return Float128{bits: U128{Lo: T.Lo, Hi: hi}}
}

// encode builds a Float128 from a sign, a significand m, and an
// unbiased exponent e:
//
//   - e == expInfNaN means ±Inf (m==0) or NaN (m!=0); m is used directly
//     as the trailing significand T.
//   - e == expMin and m's bit 112 is clear means a subnormal (or, if m
//     is entirely zero, a signed zero); m is used directly as T.
//   - otherwise m must have bit 112 set (the implicit leading one of a
//     normal) and e must be in [expMin, expMax]; T is m with bit 112
//     masked off and E = e + expBias.
func encode(sign bool, m U128, e int32) Float128 {
	switch {
	case e == expInfNaN:
		return rawEncode(sign, maxBiasedExp, m)
	case e == expMin && !testBit128(m, significandBits):
		return rawEncode(sign, 0, m)
	default:
		if e < expMin || e > expMax {
			panic("float128: encode: exponent out of range")
		}
		return rawEncode(sign, uint32(e+expBias), m.And(tMask))
	}
}

// decode extracts the sign, significand-with-implicit-bit (or bare T for
// subnormals/zero), and unbiased exponent (using expMin for subnormals
// and expInfNaN for ±Inf/NaN) of f.
func (f Float128) decode() (sign bool, m U128, e int32) {
	sign = f.bits.Hi>>63 != 0
	E := uint32(f.bits.Hi>>48) & 0x7fff
	T := U128{Lo: f.bits.Lo, Hi: f.bits.Hi & 0xffffffffffff}
	switch E {
	case 0:
		return sign, T, expMin
	case maxBiasedExp:
		return sign, T, expInfNaN
	default:
		m = T.Or(implicitBit)
		return sign, m, int32(E) - expBias
	}
}

// rawSign, rawExp, rawSignificand expose the undecoded fields: the raw
// sign bit, raw exponent code, and raw trailing significand.
func (f Float128) rawSign() bool       { return f.bits.Hi>>63 != 0 }
func (f Float128) rawExp() uint32      { return uint32(f.bits.Hi>>48) & 0x7fff }
func (f Float128) rawSignificand() U128 {
	return U128{Lo: f.bits.Lo, Hi: f.bits.Hi & 0xffffffffffff}
}

// Sign returns -1, 0, or +1 matching the sign of f; NaN's sign is
// undefined by IEEE 754 and Sign follows the raw sign bit for it as a
// convenience (callers that care should check IsNaN first).
func (x Float128) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.Signbit() {
		return -1
	}
	return 1
}

// Signbit reports whether f's sign bit is set (true for -0, negative
// finite values, -Inf, and a negatively-signed NaN).
func (f Float128) Signbit() bool { return f.rawSign() }

// Neg returns f with its sign bit flipped. Per IEEE 754, Neg(NaN) is
// still a NaN with the opposite sign bit; it does not "quiet" anything.
func (f Float128) Neg() Float128 {
	return Float128{bits: U128{Lo: f.bits.Lo, Hi: f.bits.Hi ^ (1 << 63)}}
}

// Abs returns f with its sign bit cleared.
func (f Float128) Abs() Float128 {
	return Float128{bits: U128{Lo: f.bits.Lo, Hi: f.bits.Hi &^ (1 << 63)}}
}

// Copy returns f unchanged. For a value type this has no effect beyond
// documenting intent at a call site -- there is no mutable receiver to
// copy into.
func (f Float128) Copy() Float128 { return f }

// Equal reports whether x == y per IEEE 754 equality: any NaN compares
// unequal to everything including itself, and +0 == -0.
func (x Float128) Equal(y Float128) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	if x.IsZero() && y.IsZero() {
		return true
	}
	return x.bits == y.bits
}

// Cmp returns -1, 0, +1 if x <, ==, > y, and a second result reporting
// whether the comparison is unordered (true iff x or y is NaN, in which
// case the numeric result is meaningless).
func (x Float128) Cmp(y Float128) (cmp int, unordered bool) {
	if x.IsNaN() || y.IsNaN() {
		return 0, true
	}
	if x.IsZero() && y.IsZero() {
		return 0, false
	}
	xs, ys := x.Signbit(), y.Signbit()
	switch {
	case xs && !ys:
		return -1, false
	case !xs && ys:
		return 1, false
	}
	// same sign: compare magnitude via raw bits (exponent:significand is
	// monotonic in magnitude for same-sign finite/infinite values).
	mx, my := x.bits, y.bits
	mx.Hi &^= 1 << 63
	my.Hi &^= 1 << 63
	c := mx.Cmp(my)
	if xs {
		c = -c
	}
	return c, false
}

// CmpAbs compares |x| and |y|, ignoring sign; -1/0/+1, or unordered for
// NaN.
func (x Float128) CmpAbs(y Float128) (cmp int, unordered bool) {
	return x.Abs().Cmp(y.Abs())
}
