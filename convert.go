package float128

import (
	"math"
	"math/big"
)

// This file implements the conversion layer: exact widening from the
// narrower IEEE binary formats and from integers, and
// round-to-nearest-even (narrowing) or truncate-toward-zero-with-
// saturation (to integer) in the other direction.

// --- binary16/32/64 -------------------------------------------------

// narrowToFloat128 builds the Float128 for sig * 2^(eTrue-pNarrow), where
// sig is a narrow format's significand (with its implicit bit already
// ORed in for normals) and pNarrow is that format's trailing-significand
// width. Because pNarrow is always far smaller than Float128's own
// 112-bit significand, this never needs to round: normalize/roundAndEncode
// leaves every guard/round/sticky bit zero and just repositions sig.
func narrowToFloat128(sign bool, sig uint64, eTrue, pNarrow int32) Float128 {
	if sig == 0 {
		return signedZero(sign)
	}
	w := U128{Lo: sig}
	e := eTrue - pNarrow + (canonicalWidth - 1)
	m, exp := normalize(w, e)
	return roundAndEncode(sign, m, exp)
}

// FromFloat16 widens an IEEE binary16 value (given as its raw 16-bit
// encoding, since Go has no native half-precision type) to Float128.
func FromFloat16(bits uint16) Float128 {
	sign := bits&0x8000 != 0
	E := uint32(bits>>10) & 0x1f
	T := uint64(bits) & 0x3ff
	switch {
	case E == 0x1f:
		if T == 0 {
			return signedInf(sign)
		}
		return QuietNaN
	case E == 0:
		if T == 0 {
			return signedZero(sign)
		}
		return narrowToFloat128(sign, T, 1-15, 10)
	default:
		return narrowToFloat128(sign, T|(1<<10), int32(E)-15, 10)
	}
}

// FromFloat32 widens an IEEE binary32 (float32) value to Float128, exactly.
func FromFloat32(x float32) Float128 {
	bits := math.Float32bits(x)
	sign := bits&0x80000000 != 0
	E := (bits >> 23) & 0xff
	T := uint64(bits) & 0x7fffff
	switch {
	case E == 0xff:
		if T == 0 {
			return signedInf(sign)
		}
		return QuietNaN
	case E == 0:
		if T == 0 {
			return signedZero(sign)
		}
		return narrowToFloat128(sign, T, 1-127, 23)
	default:
		return narrowToFloat128(sign, T|(1<<23), int32(E)-127, 23)
	}
}

// FromFloat64 widens an IEEE binary64 (float64) value to Float128, exactly.
func FromFloat64(x float64) Float128 {
	bits := math.Float64bits(x)
	sign := bits&0x8000000000000000 != 0
	E := (bits >> 52) & 0x7ff
	T := bits & 0xfffffffffffff
	switch {
	case E == 0x7ff:
		if T == 0 {
			return signedInf(sign)
		}
		return QuietNaN
	case E == 0:
		if T == 0 {
			return signedZero(sign)
		}
		return narrowToFloat128(sign, T, 1-1023, 52)
	default:
		return narrowToFloat128(sign, T|(1<<52), int32(E)-1023, 52)
	}
}

// roundShiftRight rounds m right by shift bits, ties to even, returning
// the shifted value and whether the round carried into a new top bit.
// It is roundNearestEven generalized to an arbitrary shift instead of
// the fixed grsWidth used when rounding a canonical-width significand.
func roundShiftRight(m U128, shift uint) (U128, bool) {
	if shift == 0 {
		return m, false
	}
	if shift >= 128 {
		return U128{}, false
	}
	kept := m.Shr(shift)
	guard := testBit128(m, shift-1)
	sticky := shift >= 2 && !m.And(onesMask128(shift-1)).IsZero()
	lsb := testBit128(kept, 0)
	if guard && (sticky || lsb) {
		before := kept.BitLen()
		kept, _ = kept.Add(U128{Lo: 1})
		return kept, kept.BitLen() > before
	}
	return kept, false
}

// narrowFromFloat128 rounds f to the nearest value representable with a
// pNarrow-bit trailing significand and the given exponent bias/width:
// round-to-nearest-even, overflow to ±∞, underflow (flush to zero) to
// ±0.
func narrowFromFloat128(f Float128, pNarrow uint, biasNarrow int32, maxBiasedNarrow uint32) (sign bool, E uint32, T uint64) {
	sign = f.Signbit()
	if f.IsNaN() {
		return sign, maxBiasedNarrow, uint64(1) << (pNarrow - 1)
	}
	if f.IsInf() {
		return sign, maxBiasedNarrow, 0
	}
	if f.IsZero() {
		return sign, 0, 0
	}

	_, m, e := f.decode()
	minExp := 1 - biasNarrow
	maxExp := int32(maxBiasedNarrow) - 1 - biasNarrow
	shift := uint(significandBits) - pNarrow

	if e < minExp {
		// Below the narrow format's normal range: flushes to zero.
		return sign, 0, 0
	}

	sig, carried := roundShiftRight(m, shift)
	if carried {
		// Rounding carried into the next binade: sig is 2^(pNarrow+1).
		e++
		sig = sig.Shr(1)
	}
	if e > maxExp {
		return sign, maxBiasedNarrow, 0
	}
	return sign, uint32(e-minExp) + 1, sig.Lo & (uint64(1)<<pNarrow - 1)
}

// Float16 rounds f to the nearest binary16 value, returning its raw
// 16-bit encoding.
func (f Float128) Float16() uint16 {
	sign, E, T := narrowFromFloat128(f, 10, 15, 0x1f)
	b := uint16(E)<<10 | uint16(T)
	if sign {
		b |= 0x8000
	}
	return b
}

// Float32 rounds f to the nearest float32 value.
func (f Float128) Float32() float32 {
	sign, E, T := narrowFromFloat128(f, 23, 127, 0xff)
	b := E<<23 | uint32(T)
	if sign {
		b |= 0x80000000
	}
	return math.Float32frombits(b)
}

// Float64 rounds f to the nearest float64 value.
func (f Float128) Float64() float64 {
	sign, E, T := narrowFromFloat128(f, 52, 1023, 0x7ff)
	b := uint64(E)<<52 | T
	if sign {
		b |= 0x8000000000000000
	}
	return math.Float64frombits(b)
}

// --- integers ---------------------------------------------------------

// FromBigInt converts an arbitrary-precision integer to the nearest
// Float128, ties to even, via the same normalize/roundAndEncode pipeline
// the arithmetic core and the parser use: the generic convert dispatch
// every fixed-width integer conversion below is a thin, range-checked
// wrapper around.
func FromBigInt(n *big.Int) Float128 {
	if n.Sign() == 0 {
		return Float128{}
	}
	neg := n.Sign() < 0
	mag := new(big.Int).Abs(n)
	bl := mag.BitLen()
	e := int32(bl - 1)
	shift := canonicalWidth - 1 - (bl - 1)

	var w U128
	if shift >= 0 {
		w = bigIntToU128(new(big.Int).Lsh(mag, uint(shift)))
	} else {
		s := uint(-shift)
		lost := new(big.Int).And(mag, new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), s), big.NewInt(1)))
		w = bigIntToU128(new(big.Int).Rsh(mag, s))
		if lost.Sign() != 0 {
			w.Lo |= 1
		}
	}
	m, exp := normalize(w, e)
	return roundAndEncode(neg, m, exp)
}

// ToBigInt converts f to an exact arbitrary-precision integer, truncating
// any fractional part toward zero. It fails for NaN and ±∞.
func (f Float128) ToBigInt() (*big.Int, error) {
	if f.IsNaN() || f.IsInf() {
		return nil, &ConversionError{Target: "big.Int", Value: f}
	}
	if f.IsZero() {
		return big.NewInt(0), nil
	}
	sign, m, e := f.decode()
	mag := u128ToBigInt(m)
	shift := int(e) - significandBits
	if shift >= 0 {
		mag.Lsh(mag, uint(shift))
	} else {
		mag.Rsh(mag, uint(-shift))
	}
	if sign {
		mag.Neg(mag)
	}
	return mag, nil
}

func saturate(v, min, max *big.Int) *big.Int {
	if v.Cmp(min) < 0 {
		return min
	}
	if v.Cmp(max) > 0 {
		return max
	}
	return v
}

var (
	maxU64Big = new(big.Int).SetUint64(^uint64(0))
	minI64Big = big.NewInt(-1 << 63)
	maxI64Big = big.NewInt(1<<63 - 1)
	zeroBig   = big.NewInt(0)

	maxU128Big = func() *big.Int {
		b := new(big.Int).Lsh(big.NewInt(1), 128)
		return b.Sub(b, big.NewInt(1))
	}()
	minI128Big = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxI128Big = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

// Int64 converts f to an int64, truncating toward zero and saturating to
// [math.MinInt64, math.MaxInt64] for out-of-range or non-finite f.
func (f Float128) Int64() int64 {
	v, err := f.ToBigInt()
	if err != nil {
		if f.IsNaN() {
			return 0
		}
		if f.Signbit() {
			return minI64Big.Int64()
		}
		return maxI64Big.Int64()
	}
	return saturate(v, minI64Big, maxI64Big).Int64()
}

// Uint64 converts f to a uint64, truncating toward zero and saturating
// to [0, math.MaxUint64].
func (f Float128) Uint64() uint64 {
	v, err := f.ToBigInt()
	if err != nil {
		if f.IsNaN() || f.Signbit() {
			return 0
		}
		return maxU64Big.Uint64()
	}
	return saturate(v, zeroBig, maxU64Big).Uint64()
}

func (f Float128) Int32() int32 { return int32(clampI64(f.Int64(), -1<<31, 1<<31-1)) }
func (f Float128) Int16() int16 { return int16(clampI64(f.Int64(), -1<<15, 1<<15-1)) }
func (f Float128) Int8() int8   { return int8(clampI64(f.Int64(), -1<<7, 1<<7-1)) }

func (f Float128) Uint32() uint32 { return uint32(clampU64(f.Uint64(), 1<<32-1)) }
func (f Float128) Uint16() uint16 { return uint16(clampU64(f.Uint64(), 1<<16-1)) }
func (f Float128) Uint8() uint8   { return uint8(clampU64(f.Uint64(), 1<<8-1)) }

func clampI64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampU64(v, hi uint64) uint64 {
	if v > hi {
		return hi
	}
	return v
}

// Uint128 converts f to a U128, truncating toward zero and saturating to
// [0, 2^128-1].
func (f Float128) Uint128() U128 {
	v, err := f.ToBigInt()
	if err != nil {
		if f.IsNaN() || f.Signbit() {
			return U128{}
		}
		return U128{Lo: ^uint64(0), Hi: ^uint64(0)}
	}
	return bigIntToU128(saturate(v, zeroBig, maxU128Big))
}

// FromUint128 converts a U128 to the nearest Float128.
func FromUint128(x U128) Float128 { return FromBigInt(u128ToBigInt(x)) }

// Int128 converts f to a signed 128-bit integer, returned as a magnitude
// and sign (Go has no native int128), truncating toward zero and
// saturating to [-2^127, 2^127-1].
func (f Float128) Int128() (mag U128, neg bool) {
	v, err := f.ToBigInt()
	if err != nil {
		if f.IsNaN() {
			return U128{}, false
		}
		if f.Signbit() {
			return bigIntToU128(new(big.Int).Abs(minI128Big)), true
		}
		return bigIntToU128(maxI128Big), false
	}
	v = saturate(v, minI128Big, maxI128Big)
	neg = v.Sign() < 0
	return bigIntToU128(new(big.Int).Abs(v)), neg
}

// FromInt128 converts a signed 128-bit integer, given as a magnitude and
// sign, to the nearest Float128.
func FromInt128(mag U128, neg bool) Float128 {
	n := u128ToBigInt(mag)
	if neg {
		n.Neg(n)
	}
	return FromBigInt(n)
}
