package float128

// Round, Floor, Ceiling, and the digit-rounding Round(x, digits) variant.
// Round (no digits) always rounds to the nearest integer, ties to even,
// matching the arithmetic core's rounding contract; this package
// implements no other integer-rounding mode.

// Round returns f rounded to the nearest integer value, ties to even. NaN,
// ±Inf and ±0 are returned unchanged.
func (f Float128) Round() Float128 {
	if f.IsNaN() || f.IsInf() || f.IsZero() {
		return f
	}
	sign, m, e := f.decode()
	if e >= significandBits {
		// Already an integer (or too large to have a fractional part at
		// this precision): no bits below the binary point to round away.
		return f
	}
	fracBitsI := int(significandBits) - int(e)
	if fracBitsI > 128 {
		// |f| is small enough that the halfway point for any tie lies
		// beyond m's 128 bits: never a tie, always rounds to 0.
		return signedZero(sign)
	}
	// bit (significandBits-e) of m is the integer part's LSB; everything
	// below it, down to bit 0, is fractional.
	fracBits := uint(fracBitsI)
	frac := m.And(onesMask128(fracBits))
	half := U128{}
	setBit128(&half, fracBits-1)
	intPart, _ := m.Sub(frac)
	switch frac.Cmp(half) {
	case 1:
		// > halfway: round up.
		intPart = bumpInteger(intPart, fracBits)
	case 0:
		// exactly halfway: round to even, i.e. round up iff the integer
		// bit just above the fraction (bit fracBits of m) is set.
		if testBit128(m, fracBits) {
			intPart = bumpInteger(intPart, fracBits)
		}
	}
	nm, ne := normalize(widen(intPart), e)
	return roundAndEncode(sign, nm, ne)
}

// bumpInteger adds one unit at bit fracBits to m (whose bits below
// fracBits are assumed already zeroed), propagating any carry.
func bumpInteger(m U128, fracBits uint) U128 {
	unit := U128{}
	setBit128(&unit, fracBits)
	z, _ := m.Add(unit)
	return z
}

// Floor returns the largest integer value <= f.
func (f Float128) Floor() Float128 {
	if f.IsNaN() || f.IsInf() || f.IsZero() {
		return f
	}
	if f.Signbit() {
		return f.Abs().Ceiling().Neg()
	}
	return f.truncToward(false)
}

// Ceiling returns the smallest integer value >= f.
func (f Float128) Ceiling() Float128 {
	if f.IsNaN() || f.IsInf() || f.IsZero() {
		return f
	}
	if f.Signbit() {
		return f.Abs().Floor().Neg()
	}
	return f.truncToward(true)
}

// truncToward truncates the magnitude of a non-negative, finite, nonzero f
// toward zero, then rounds up by one unit in the kept precision if
// roundUp is true and any fractional bits were discarded.
func (f Float128) truncToward(roundUp bool) Float128 {
	sign, m, e := f.decode()
	if e >= significandBits {
		return f
	}
	if e < 0 {
		if roundUp {
			return Float128{bits: U128{Lo: 0, Hi: 1 << 48}} // +1.0
		}
		return signedZero(sign)
	}
	fracBits := uint(significandBits - e)
	frac := m.And(onesMask128(fracBits))
	intPart, _ := m.Sub(frac)
	if roundUp && !frac.IsZero() {
		intPart = bumpInteger(intPart, fracBits)
	}
	nm, ne := normalize(widen(intPart), e)
	return roundAndEncode(sign, nm, ne)
}

// maxRoundDigits bounds the digits argument to Round(x, digits): beyond
// roughly 36 decimal digits there is no representable binary128 fraction
// left to round away, so larger values are accepted but behave as an
// identity.
const maxRoundDigits = 37

// pow10Table37 holds 10^0 .. 10^37 as U128 values, one entry per digits
// value up to maxRoundDigits (10^37 < 2^123, so every entry fits).
var pow10Table37 [maxRoundDigits + 1]U128

func init() {
	pow10Table37[0] = U128{Lo: 1}
	ten := U128{Lo: 10}
	for i := 1; i <= maxRoundDigits; i++ {
		pow10Table37[i] = mul128BySmall(pow10Table37[i-1], ten)
	}
}

func mul128BySmall(x, y U128) U128 {
	p := Mul128x128to256(x, y)
	return p.Lo128()
}

// RoundDigits rounds f to the given number of fractional decimal digits
// (ties to even). digits must be >= 0; a negative digits is an
// ArgumentError, a programmer error rather than an arithmetic edge
// case, so it is not folded into a NaN result.
func (f Float128) RoundDigits(digits int) (Float128, error) {
	if digits < 0 {
		return Float128{}, &ArgumentError{Func: "Round", Msg: "digits must be >= 0"}
	}
	if f.IsNaN() || f.IsInf() || f.IsZero() {
		return f, nil
	}
	if digits > maxRoundDigits {
		return f, nil
	}
	scale := pow10Table37[digits]
	scaled := f.mulByU128Exact(scale)
	rounded := scaled.Round()
	result := rounded.divByU128Exact(scale)
	return result, nil
}

// mulByU128Exact multiplies f by the exact integer value of scale (a
// small power of ten), used only internally by Round(x, digits) where
// scale is known to keep the product well within range for ordinary
// finite inputs.
func (f Float128) mulByU128Exact(scale U128) Float128 {
	return f.Mul(uintToFloat128(scale))
}

func (f Float128) divByU128Exact(scale U128) Float128 {
	return f.Quo(uintToFloat128(scale))
}

// uintToFloat128 converts an exact, non-negative U128 integer (such as a
// power of ten up to 10^37) to the nearest Float128, ties to even.
func uintToFloat128(x U128) Float128 {
	if x.IsZero() {
		return Float128{}
	}
	e := int32(significandBits)
	w := widen(x)
	nm, ne := normalize(w, e)
	return roundAndEncode(false, nm, ne)
}
