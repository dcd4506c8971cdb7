package float128

import "math/bits"

// addWW and subWW are the single-limb carry/borrow primitives that the
// U128/U256/U512 add/sub chains are built from, using math/bits.Add64
// and math/bits.Sub64 directly rather than hand-rolled carry logic.
func addWW(x, y, carry uint64) (z, c uint64) {
	z, c = bits.Add64(x, y, carry)
	return
}

func subWW(x, y, borrow uint64) (z, b uint64) {
	z, b = bits.Sub64(x, y, borrow)
	return
}

func leadingZeros64(x uint64) uint  { return uint(bits.LeadingZeros64(x)) }
func trailingZeros64(x uint64) uint { return uint(bits.TrailingZeros64(x)) }

// mulWW returns the 128-bit product of two 64-bit words as (hi, lo),
// delegating straight to math/bits. hostAccelerator.Mul64 is the only
// caller; everything else in the wide-multiply layer goes through
// DefaultAccelerator.Mul64 instead (accel.go), so that substituting
// SoftwareAccelerator actually changes which code computes the product.
func mulWW(x, y uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(x, y)
	return
}
