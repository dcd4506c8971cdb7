package float128

import "math/bits"

// This file implements an encoded storage format: explicit
// big/little-endian byte writers for the unbiased exponent and trailing
// significand, plus the "shortest bit length" helpers a compact/sparse
// on-disk encoding would use to decide how many bytes it actually needs
// to write.

// ExponentByteCount is the fixed byte width WriteExponentBE/LE use: 2
// bytes for the signed 16-bit unbiased exponent.
const ExponentByteCount = 2

// SignificandByteCount is the fixed byte width WriteSignificandBE/LE
// use: 14 bytes for the 112-bit trailing significand.
const SignificandByteCount = 14

// unbiasedExponent16 returns f's unbiased exponent as an int16: expMin
// for subnormals and zero, expInfNaN (16384) for ±Inf/NaN, otherwise the
// decoded exponent. All of these fit comfortably in 16 bits.
func (f Float128) unbiasedExponent16() int16 {
	_, _, e := f.decode()
	return int16(e)
}

// WriteExponentBE writes f's unbiased exponent as 2 big-endian bytes
// into buf and returns the number of bytes written (always
// ExponentByteCount). buf must have length >= ExponentByteCount.
func (f Float128) WriteExponentBE(buf []byte) int {
	e := uint16(f.unbiasedExponent16())
	buf[0] = byte(e >> 8)
	buf[1] = byte(e)
	return ExponentByteCount
}

// WriteExponentLE is WriteExponentBE with byte order reversed.
func (f Float128) WriteExponentLE(buf []byte) int {
	e := uint16(f.unbiasedExponent16())
	buf[0] = byte(e)
	buf[1] = byte(e >> 8)
	return ExponentByteCount
}

// WriteSignificandBE writes f's 112-bit trailing significand as 14
// big-endian bytes (most significant byte first) into buf and returns
// the number of bytes written (always SignificandByteCount). buf must
// have length >= SignificandByteCount.
func (f Float128) WriteSignificandBE(buf []byte) int {
	t := f.rawSignificand()
	for i := 0; i < SignificandByteCount; i++ {
		shift := uint(SignificandByteCount-1-i) * 8
		buf[i] = byteAt(t, shift)
	}
	return SignificandByteCount
}

// WriteSignificandLE is WriteSignificandBE with byte order reversed.
func (f Float128) WriteSignificandLE(buf []byte) int {
	t := f.rawSignificand()
	for i := 0; i < SignificandByteCount; i++ {
		buf[i] = byteAt(t, uint(i)*8)
	}
	return SignificandByteCount
}

// byteAt extracts the byte at bit offset shift (0 = least significant)
// from a 112-bit-or-narrower U128.
func byteAt(x U128, shift uint) byte {
	return byte(x.Shr(shift).Lo)
}

// ExponentShortestBitLength returns the number of bits required to hold
// f's unbiased exponent's magnitude (15 - leading_zeros(|exponent|),
// leading zeros counted over a 15-bit field; 0 for a zero exponent),
// for callers that want to pack the exponent into a variable-width
// field.
func (f Float128) ExponentShortestBitLength() int {
	e := int32(f.unbiasedExponent16())
	mag := uint16(e)
	if e < 0 {
		mag = uint16(-e)
	}
	return 15 - (bits.LeadingZeros16(mag) - 1) // mag fits in 15 bits; drop the 16-bit word's top bit from the count.
}

// SignificandBitLength returns the number of bits required to hold f's
// significand with its implicit bit restored (113 -
// leading_zeros(significand_with_implicit)).
func (f Float128) SignificandBitLength() int {
	_, m, _ := f.decode()
	return 113 - int(m.LeadingZeros()-15) // m is stored in a 128-bit word; the top 15 bits above bit 112 are always zero.
}
