package float128

// This file holds the shared plumbing the arithmetic core (arith.go) uses
// to build correctly-rounded results: widening a significand to make room
// for guard/round/sticky bits, shifting with sticky accumulation, and the
// final round-to-nearest-even step.

// grsWidth is the number of extra low bits (guard, round, sticky) carried
// alongside a significand during alignment, multiply, or divide.
const grsWidth = 3

// canonicalWidth is the bit-width of a widened significand once
// normalized: the 113-bit (with implicit bit) significand plus grsWidth
// guard/round/sticky bits.
const canonicalWidth = significandBits + 1 + grsWidth // 116

// widen shifts a significand left by grsWidth bits, making room for
// guard/round/sticky bits that start out zero.
func widen(m U128) U128 { return m.Shl(grsWidth) }

func onesMask128(n uint) U128 {
	if n == 0 {
		return U128{}
	}
	if n >= 128 {
		return U128{Lo: ^uint64(0), Hi: ^uint64(0)}
	}
	return U128{}.Not().Shr(128 - n)
}

// shrSticky shifts x right by n bits, OR-ing bit 0 of the result with 1
// if any of the n discarded bits were set: the sticky bit is the OR of
// all discarded bits, applied uniformly to alignment shifts and to
// normalizing shifts after multiply/divide.
func shrSticky(x U128, n uint) U128 {
	if n == 0 {
		return x
	}
	if n >= 128 {
		if x.IsZero() {
			return U128{}
		}
		return U128{Lo: 1}
	}
	lost := x.And(onesMask128(n))
	z := x.Shr(n)
	if !lost.IsZero() {
		z.Lo |= 1
	}
	return z
}

func onesMask256(n uint) U256 {
	if n == 0 {
		return U256{}
	}
	if n >= 256 {
		return U256{W: [4]uint64{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}}
	}
	return U256{W: [4]uint64{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}}.Shr(256 - n)
}

// shrStickyU256 is shrSticky's 256-bit counterpart, used to bring a
// 226-bit multiply product (or a 256-bit divide quotient) down to
// canonical width without losing the sticky bit.
func shrStickyU256(x U256, n uint) U256 {
	if n == 0 {
		return x
	}
	if n >= 256 {
		if x.IsZero() {
			return U256{}
		}
		return U256{W: [4]uint64{1, 0, 0, 0}}
	}
	lost := x.And(onesMask256(n))
	z := x.Shr(n)
	if !lost.IsZero() {
		z.W[0] |= 1
	}
	return z
}

// normalizeWide is normalize's 256-bit-source counterpart: it brings a
// wide (up to 256-bit) unrounded significand -- the product from
// Multiply, or the quotient from Divide -- down to exactly
// canonicalWidth bits.
func normalizeWide(w U256, e int32) (m U128, exp int32) {
	if w.IsZero() {
		return U128{}, expMin
	}
	bl := int(w.BitLen())
	if bl > canonicalWidth {
		shift := uint(bl - canonicalWidth)
		w = shrStickyU256(w, shift)
		e += int32(shift)
		bl = canonicalWidth
	}
	need := int32(canonicalWidth - bl)
	if e-need < expMin {
		if e >= expMin {
			actual := e - expMin
			if actual > 0 {
				w = w.Shl(uint(actual))
			}
			return w.Lo128(), expMin
		}
		w = shrStickyU256(w, uint(expMin-e))
		return w.Lo128(), expMin
	}
	if need > 0 {
		w = w.Shl(uint(need))
		e -= need
	}
	return w.Lo128(), e
}

// roundNearestEven consumes the low grsWidth (G, R, S) bits of a
// canonical-width widened significand w and returns the rounded
// significand m (with the G/R/S bits shifted out) and whether rounding
// carried out of the top bit (i.e. m grew from 113 to 114 bits and needs
// one more renormalizing right-shift by the caller).
//
// The round-up condition is the textbook correctly-rounded ties-to-even
// test: round up iff the guard bit is set AND (the round bit, or the
// sticky bit, or the already-kept LSB, is set). See DESIGN.md for why
// this is the standard G/R/S test rather than a different-looking bit
// formula some descriptions of rounding use.
func roundNearestEven(w U128) (m U128, carried bool) {
	g := testBit128(w, 2)
	r := testBit128(w, 1)
	s := testBit128(w, 0)
	m = w.Shr(grsWidth)
	lsb := testBit128(m, 0)
	if g && (r || s || lsb) {
		var c uint64
		m, c = m.Add(U128{Lo: 1})
		if c != 0 || testBit128(m, significandBits+1) {
			carried = true
		}
	}
	return m, carried
}

// normalize brings a widened significand (width >= canonicalWidth bits,
// produced by an add/multiply/divide/fma before rounding) to exactly
// canonicalWidth bits, adjusting the exponent accordingly and handling
// the transition into subnormal form (accumulating sticky for bits
// shifted away) when the normalized exponent would fall below expMin.
//
// It does not itself perform final rounding or encode the result: the
// caller rounds the returned canonical-width value with roundNearestEven
// and re-normalizes once more if rounding carried out.
func normalize(w U128, e int32) (m U128, exp int32) {
	if w.IsZero() {
		return w, expMin
	}
	bl := int(w.BitLen())
	if bl > canonicalWidth {
		shift := uint(bl - canonicalWidth)
		w = shrSticky(w, shift)
		e += int32(shift)
		bl = canonicalWidth
	}
	// bl <= canonicalWidth now; need is how much left-shift would
	// restore canonical width.
	need := int32(canonicalWidth - bl)
	if e-need < expMin {
		if e >= expMin {
			// Shift less than `need`, landing exactly on the
			// subnormal floor.
			actual := e - expMin
			if actual > 0 {
				w = w.Shl(uint(actual))
			}
			return w, expMin
		}
		// Already below expMin (e.g. ScaleB driving a normal deep into
		// underflow): shift right instead, accumulating sticky.
		w = shrSticky(w, uint(expMin-e))
		return w, expMin
	}
	if need > 0 {
		w = w.Shl(uint(need))
		e -= need
	}
	return w, e
}

// roundAndEncode takes a canonical-width widened significand (already
// normalize()-d) and its exponent, rounds it to the 113-bit significand,
// re-normalizes if rounding carried out of the top bit, and encodes the
// final Float128, handling overflow to infinity and underflow to a
// signed zero.
func roundAndEncode(sign bool, w U128, e int32) Float128 {
	if w.IsZero() {
		return signedZero(sign)
	}
	m, carried := roundNearestEven(w)
	if carried {
		// m grew to 114 bits; shift right one more place. No new
		// information is lost (the shifted-out bit is exactly 0: it was
		// the former top bit's complement after a unit increment of an
		// all-ones mantissa).
		m = m.Shr(1)
		e++
	}
	if e > expMax {
		return signedInf(sign)
	}
	if e < expMin {
		return signedZero(sign)
	}
	// encode handles both the subnormal (implicit bit absent, e ==
	// expMin) and normal (implicit bit present) cases uniformly.
	return encode(sign, m, e)
}

func signedZero(sign bool) Float128 {
	if sign {
		return Float128{bits: U128{Hi: 1 << 63}}
	}
	return Float128{}
}

func signedInf(sign bool) Float128 {
	return rawEncode(sign, maxBiasedExp, U128{})
}

// Inf returns +Inf (sign==false) or -Inf (sign==true).
func Inf(sign bool) Float128 { return signedInf(sign) }

// QuietNaN is the canonical quiet NaN: E=32767, T!=0, s=0.
var QuietNaN = rawEncode(false, maxBiasedExp, U128{Lo: 1 << 48})

// SentinelNaN is the internal "signaling/parse-fail" NaN: E=32767, T=1,
// s=1, used by the arithmetic core to flag invalid
// operations (0/0, ∞/∞, domain errors) and by the parser on a malformed
// input string. It is observably a NaN (IsNaN reports true for it) like
// any other.
var SentinelNaN = rawEncode(true, maxBiasedExp, U128{Lo: 1})

// IsSentinel reports whether f is exactly the sentinel NaN bit pattern.
func (f Float128) IsSentinel() bool { return f.bits == SentinelNaN.bits }
