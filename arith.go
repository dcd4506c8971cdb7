package float128

// The arithmetic core: Add, Sub, Mul, Quo, FMA, Remainder, ScaleB,
// BitIncrement/BitDecrement and Mod. Every operation here follows the
// same shape: classify special cases first, then align
// or combine raw significands in a wide (128- or 256-bit) intermediate
// with guard/round/sticky bits, normalize, and round-and-encode exactly
// once. There is exactly one rounding step per operation, which is what
// makes FMA meaningfully different from a plain Mul followed by Add.

// Add returns x+y, correctly rounded to the nearest representable
// Float128, ties to even. A normal operand added to a subnormal one
// returns the normal operand unchanged, without aligning the two.
func (x Float128) Add(y Float128) Float128 {
	switch {
	case x.IsNaN() || y.IsNaN():
		return QuietNaN
	case x.IsInf() && y.IsInf():
		if x.Signbit() != y.Signbit() {
			return SentinelNaN // ∞ + (-∞)
		}
		return x
	case x.IsInf():
		return x
	case y.IsInf():
		return y
	case x.IsZero() && y.IsZero():
		if x.Signbit() == y.Signbit() {
			return signedZero(x.Signbit())
		}
		return signedZero(false) // (+0)+(-0) == +0
	case x.IsZero():
		return y
	case y.IsZero():
		return x
	case x.IsNormal() && y.IsSubnormal():
		return x
	case x.IsSubnormal() && y.IsNormal():
		return y
	}

	xs, xm, xe := x.decode()
	ys, ym, ye := y.decode()

	// Align the smaller-exponent operand's widened significand under the
	// larger exponent, accumulating the shifted-out bits into a sticky
	// bit rather than discarding them.
	var wa, wb U128
	var e int32
	switch {
	case xe == ye:
		wa, wb, e = widen(xm), widen(ym), xe
	case xe > ye:
		wa, e = widen(xm), xe
		wb = shrSticky(widen(ym), uint(xe-ye))
	default:
		wb, e = widen(ym), ye
		wa = shrSticky(widen(xm), uint(ye-xe))
	}

	if xs == ys {
		sum, carry := wa.Add(wb)
		if carry != 0 {
			// Overflowed the widened width by one bit: fold it back in
			// by shifting right (the new LSB, which becomes the sticky
			// bit, is exactly the bit that was about to be shifted out
			// of the sum -- OR it in rather than losing it).
			lost := sum.Lo & 1
			sum = sum.Shr(1)
			sum.Hi |= 1 << 63
			sum.Lo |= lost
			e++
		}
		nm, ne := normalize(sum, e)
		return roundAndEncode(xs, nm, ne)
	}

	// Opposite signs: subtract the smaller magnitude from the larger,
	// and the result takes the sign of the larger-magnitude operand.
	c := wa.Cmp(wb)
	if c == 0 {
		return signedZero(false) // x + (-x) == +0
	}
	var diff U128
	var sign bool
	if c > 0 {
		diff, _ = wa.Sub(wb)
		sign = xs
	} else {
		diff, _ = wb.Sub(wa)
		sign = ys
	}
	nm, ne := normalize(diff, e)
	return roundAndEncode(sign, nm, ne)
}

// Sub returns x-y ("Subtract(x, y) = Add(x, Neg(y))").
func (x Float128) Sub(y Float128) Float128 { return x.Add(y.Neg()) }

// Mul returns x*y, correctly rounded.
//
// Any multiply where either operand is ±Inf (including 0 * ∞) resolves
// to the quiet NaN, rather than a signed ±Inf as a strict IEEE 754
// reading of finite-nonzero * ∞ would give. See DESIGN.md.
func (x Float128) Mul(y Float128) Float128 {
	if x.IsNaN() || y.IsNaN() || x.IsInf() || y.IsInf() {
		return QuietNaN
	}
	sign := x.Signbit() != y.Signbit()
	switch {
	case x.IsZero() && y.IsZero():
		return signedZero(false) // 0*0 == +0
	case x.IsZero() || y.IsZero():
		return signedZero(sign)
	}

	_, xm, xe := x.decode()
	_, ym, ye := y.decode()
	product := Mul128x128to256(xm, ym)
	// value = product * 2^(xe+ye-224); normalizeWide expects
	// value = w*2^(e-115), so e = xe+ye-224+115 = xe+ye-109.
	e := xe + ye - 109
	nm, ne := normalizeWide(product, e)
	return roundAndEncode(sign, nm, ne)
}

// Quo returns x/y, correctly rounded (Divide).
// Special-case order matches the usual IEEE 754 table, including the
// documented "(∞ or 0)/(∞ or 0) ⇒ sentinel NaN" rule, which (applied
// literally, in order) also covers ∞/0 -- a divergence from IEEE 754's
// ∞/0=∞ that this package flags rather than silently "fixes". See DESIGN.md.
// A normal dividend over a subnormal divisor returns ±∞ without dividing.
func (x Float128) Quo(y Float128) Float128 {
	switch {
	case x.IsFinite() && y.IsInf():
		return signedZero(x.Signbit() != y.Signbit())
	case (y.IsInf() || y.IsZero()) && (x.IsInf() || x.IsZero()):
		return SentinelNaN
	case x.IsNaN() || y.IsNaN():
		return QuietNaN
	case (x.IsInf() && y.IsFinite() && !y.IsZero()) ||
		(x.IsFinite() && !x.IsZero() && y.IsZero()) ||
		(x.IsNormal() && y.IsSubnormal()):
		return signedInf(x.Signbit() != y.Signbit())
	}

	sign := x.Signbit() != y.Signbit()
	_, xm, xe := x.decode()
	_, ym, ye := y.decode()
	if xm.IsZero() {
		return signedZero(sign)
	}

	// Extend the dividend by 128 bits before dividing, so the quotient
	// carries plenty of guard/round/sticky precision beyond the 113
	// bits actually needed.
	dividend := u256FromU128(U128{}, xm)
	q, r := DivRem256by128(dividend, ym)
	if !r.IsZero() {
		q.W[0] |= 1
	}
	// value = q * 2^(xe-ye-128); e = xe-ye-128+115 = xe-ye-13.
	e := xe - ye - 13
	nm, ne := normalizeWide(q, e)
	return roundAndEncode(sign, nm, ne)
}

// FMA returns x*y+z with a single rounding: the exact
// product of x and y is combined with z before any rounding occurs,
// which is what distinguishes it from x.Mul(y).Add(z).
func (x Float128) FMA(y, z Float128) Float128 {
	if x.IsNaN() || y.IsNaN() || z.IsNaN() {
		return QuietNaN
	}
	if x.IsInf() || y.IsInf() {
		if x.IsZero() || y.IsZero() {
			return SentinelNaN // 0 * ∞
		}
		psign := x.Signbit() != y.Signbit()
		return signedInf(psign).Add(z)
	}
	if z.IsInf() {
		return z
	}

	psign := x.Signbit() != y.Signbit()
	_, xm, xe := x.decode()
	_, ym, ye := y.decode()
	product := Mul128x128to256(xm, ym) // exact, up to 226 bits
	pe := xe + ye - 109                // same convention as Mul

	if z.IsZero() {
		if x.IsZero() && y.IsZero() {
			return signedZero(false) // 0*0 == +0, same as Mul
		}
		nm, ne := normalizeWide(product, pe)
		return roundAndEncode(psign, nm, ne)
	}

	zsign, zm, ze := z.decode()
	zWide := u256FromU128(widen(zm), U128{}) // value = zWide*2^(ze-115)

	eCommon := pe
	if ze > eCommon {
		eCommon = ze
	}
	prodAligned := shrStickyU256(product, uint(eCommon-pe))
	zAligned := shrStickyU256(zWide, uint(eCommon-ze))

	if psign == zsign {
		sum, carry := prodAligned.Add(zAligned)
		if carry != 0 {
			lost := sum.W[0] & 1
			sum = sum.Shr(1)
			sum.W[3] |= 1 << 63
			sum.W[0] |= lost
			eCommon++
		}
		nm, ne := normalizeWide(sum, eCommon)
		return roundAndEncode(psign, nm, ne)
	}

	c := prodAligned.Cmp(zAligned)
	if c == 0 {
		return signedZero(false)
	}
	var diff U256
	var sign bool
	if c > 0 {
		diff, _ = prodAligned.Sub(zAligned)
		sign = psign
	} else {
		diff, _ = zAligned.Sub(prodAligned)
		sign = zsign
	}
	nm, ne := normalizeWide(diff, eCommon)
	return roundAndEncode(sign, nm, ne)
}

// Remainder returns the IEEE 754 remainder of x/y: x - y*n, where n is
// x/y rounded to the nearest integer, ties to even. For remainder(5.5,
// 2.0), x/y = 2.75 rounds to the nearest integer n=3, giving -0.5, not
// the 1.5 that the truncated quotient n=2 would give; this package
// supports only the ties-to-even rounding mode, so Remainder follows it
// consistently. See DESIGN.md.
func (x Float128) Remainder(y Float128) Float128 {
	if x.IsNaN() || y.IsNaN() || x.IsInf() || y.IsZero() {
		return SentinelNaN
	}
	if y.IsInf() {
		return x
	}
	if x.IsZero() {
		return x
	}
	q := x.Quo(y)
	if q.IsInf() {
		// y subnormal enough that x/y overflowed: the quotient's true
		// value rounds to an integer far larger than y itself, so the
		// remainder is x unchanged to the precision available.
		return x
	}
	n := q.Round()
	return x.Sub(n.Mul(y))
}

// Mod returns x - y*floor(x/y), the sign-of-divisor modulus, as a
// companion to Remainder's nearest-integer result, whose sign may match
// either operand. Not part of IEEE
// 754 itself, but a common pairing (cf. math.Mod vs Go's % for ints)
// that pairs naturally alongside Remainder.
func (x Float128) Mod(y Float128) Float128 {
	if x.IsNaN() || y.IsNaN() || x.IsInf() || y.IsZero() {
		return SentinelNaN
	}
	if y.IsInf() || x.IsZero() {
		return x
	}
	q := x.Quo(y)
	if q.IsInf() {
		return x
	}
	n := q.Floor()
	return x.Sub(n.Mul(y))
}

// ScaleB returns x * 2^n, computed by exponent manipulation rather than
// an actual multiply. Any NaN yields QuietNaN; ±Inf passes through
// unchanged; ±0 scaled by anything is still ±0.
func (x Float128) ScaleB(n int32) Float128 {
	if x.IsNaN() {
		return QuietNaN
	}
	if x.IsZero() || x.IsInf() {
		return x
	}
	sign, m, e := x.decode()
	e2 := int64(e) + int64(n)
	if e2 > expMax {
		return signedInf(sign)
	}
	if e2 < expMin-int64(significandBits)-2 {
		// So far below the subnormal floor that even the sticky bit
		// can't survive: underflows to zero outright.
		return signedZero(sign)
	}
	nm, ne := normalize(widen(m), int32(e2))
	return roundAndEncode(sign, nm, ne)
}

// ulpExponent returns the unbiased exponent of x's unit in the last
// place: for a normal x with unbiased exponent e, that's e-significandBits;
// for a subnormal (e == expMin) it's expMin-significandBits, same formula.
func ulpExponent(e int32) int32 { return e - significandBits }

// pow2 returns the Float128 value 2^k exactly, including the subnormal
// range (k < expMin), underflowing to +0 for k small enough that 2^k
// isn't representable at all.
func pow2(k int32) Float128 {
	if k >= expMin {
		if k > expMax {
			return signedInf(false)
		}
		return encode(false, implicitBit, k)
	}
	shift := expMin - k
	if shift > significandBits {
		return signedZero(false)
	}
	var m U128
	setBit128(&m, uint(significandBits-shift))
	return encode(false, m, expMin)
}

// Ulp returns the unit in the last place of x: the gap between x and its
// nearest representable neighbor in the direction of larger magnitude.
// NaN and ±Inf have no meaningful ulp and map to NaN; the ulp of ±0 is
// the smallest positive subnormal.
func (x Float128) Ulp() Float128 {
	if x.IsNaN() || x.IsInf() {
		return QuietNaN
	}
	if x.IsZero() {
		return Float128{bits: U128{Lo: 1}}
	}
	_, _, e := x.decode()
	return pow2(ulpExponent(e))
}

// maxFinite returns the largest-magnitude finite Float128 of the given
// sign: biased exponent maxBiasedExp-1, all-ones trailing significand.
func maxFinite(sign bool) Float128 {
	return rawEncode(sign, maxBiasedExp-1, tMask)
}

// BitIncrement returns the smallest Float128 strictly greater than x
// (nextafter toward +Inf). NaN maps to NaN; -Inf
// maps to the most negative finite value; +Inf is a fixed point.
//
// The raw 128-bit encoding of binary128 is monotonic in magnitude for a
// fixed sign (Cmp relies on the same property), so stepping
// toward +Inf is just bits+1 for a positive value and bits-1 for a
// negative one.
func (x Float128) BitIncrement() Float128 {
	if x.IsNaN() {
		return QuietNaN
	}
	if x.IsInf() {
		if x.Signbit() {
			return maxFinite(true)
		}
		return x
	}
	if x.IsZero() {
		return Float128{bits: U128{Lo: 1}} // smallest positive subnormal
	}
	bits := x.Bits()
	if x.Signbit() {
		newBits, _ := bits.Sub(U128{Lo: 1})
		return FromBits(newBits)
	}
	newBits, carry := bits.Add(U128{Lo: 1})
	if carry != 0 {
		return signedInf(false)
	}
	return FromBits(newBits)
}

// BitDecrement returns the largest Float128 strictly less than x
// (nextafter toward -Inf), the mirror of BitIncrement.
func (x Float128) BitDecrement() Float128 {
	if x.IsNaN() {
		return QuietNaN
	}
	if x.IsInf() {
		if x.Signbit() {
			return x
		}
		return maxFinite(false)
	}
	if x.IsZero() {
		return Float128{bits: U128{Lo: 1, Hi: 1 << 63}} // smallest negative subnormal
	}
	bits := x.Bits()
	if x.Signbit() {
		newBits, carry := bits.Add(U128{Lo: 1})
		if carry != 0 {
			return signedInf(true)
		}
		return FromBits(newBits)
	}
	newBits, _ := bits.Sub(U128{Lo: 1})
	return FromBits(newBits)
}
