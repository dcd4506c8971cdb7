package float128

// U128 is an unsigned 128-bit integer stored as two 64-bit limbs in
// little-endian limb order: Lo holds bits 0..63, Hi holds bits 64..127.
// The limb order is independent of host byte order; see io_bytes.go for
// the explicit big/little-endian byte encoders.
type U128 struct {
	Lo, Hi uint64
}

// U256 is an unsigned 256-bit integer stored as four 64-bit limbs, W[0]
// least significant.
type U256 struct {
	W [4]uint64
}

// U512 is an unsigned 512-bit integer stored as eight 64-bit limbs, W[0]
// least significant.
type U512 struct {
	W [8]uint64
}

func u128(lo, hi uint64) U128 { return U128{Lo: lo, Hi: hi} }

// IsZero reports whether x == 0.
func (x U128) IsZero() bool { return x.Lo == 0 && x.Hi == 0 }

// Cmp returns -1, 0 or +1 depending on whether x <, ==, > y.
func (x U128) Cmp(y U128) int {
	if x.Hi != y.Hi {
		if x.Hi < y.Hi {
			return -1
		}
		return 1
	}
	if x.Lo != y.Lo {
		if x.Lo < y.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// Add returns x+y and the carry out of the top limb (0 or 1).
func (x U128) Add(y U128) (z U128, carry uint64) {
	var c0, c1 uint64
	z.Lo, c0 = addWW(x.Lo, y.Lo, 0)
	z.Hi, c1 = addWW(x.Hi, y.Hi, c0)
	return z, c1
}

// Sub returns x-y and the borrow out of the top limb (0 or 1).
func (x U128) Sub(y U128) (z U128, borrow uint64) {
	var b0, b1 uint64
	z.Lo, b0 = subWW(x.Lo, y.Lo, 0)
	z.Hi, b1 = subWW(x.Hi, y.Hi, b0)
	return z, b1
}

// And, Or, Xor, Not are the usual bitwise operators, limb-wise.
func (x U128) And(y U128) U128 { return U128{x.Lo & y.Lo, x.Hi & y.Hi} }
func (x U128) Or(y U128) U128  { return U128{x.Lo | y.Lo, x.Hi | y.Hi} }
func (x U128) Xor(y U128) U128 { return U128{x.Lo ^ y.Lo, x.Hi ^ y.Hi} }
func (x U128) Not() U128       { return U128{^x.Lo, ^x.Hi} }

// Shl returns x<<n. Shl by n>=128 returns 0.
func (x U128) Shl(n uint) U128 {
	switch {
	case n == 0:
		return x
	case n >= 128:
		return U128{}
	case n >= 64:
		return U128{Lo: 0, Hi: x.Lo << (n - 64)}
	default:
		return U128{Lo: x.Lo << n, Hi: (x.Hi << n) | (x.Lo >> (64 - n))}
	}
}

// Shr returns x>>n (logical, never sign-extends). Shr by n>=128 returns 0.
func (x U128) Shr(n uint) U128 {
	switch {
	case n == 0:
		return x
	case n >= 128:
		return U128{}
	case n >= 64:
		return U128{Lo: x.Hi >> (n - 64), Hi: 0}
	default:
		return U128{Lo: (x.Lo >> n) | (x.Hi << (64 - n)), Hi: x.Hi >> n}
	}
}

// LeadingZeros returns the number of leading zero bits in x, over the
// full 128-bit width (so LeadingZeros of zero is 128).
func (x U128) LeadingZeros() uint {
	if x.Hi != 0 {
		return leadingZeros64(x.Hi)
	}
	return 64 + leadingZeros64(x.Lo)
}

// TrailingZeros returns the number of trailing zero bits in x, over the
// full 128-bit width (so TrailingZeros of zero is 128).
func (x U128) TrailingZeros() uint {
	if x.Lo != 0 {
		return trailingZeros64(x.Lo)
	}
	return 64 + trailingZeros64(x.Hi)
}

// BitLen returns the minimum number of bits required to represent x; 0 for x==0.
func (x U128) BitLen() uint { return 128 - x.LeadingZeros() }

func u256(w0, w1, w2, w3 uint64) U256 { return U256{W: [4]uint64{w0, w1, w2, w3}} }

func (x U256) IsZero() bool {
	return x.W[0] == 0 && x.W[1] == 0 && x.W[2] == 0 && x.W[3] == 0
}

func (x U256) Cmp(y U256) int {
	for i := 3; i >= 0; i-- {
		if x.W[i] != y.W[i] {
			if x.W[i] < y.W[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (x U256) Add(y U256) (z U256, carry uint64) {
	var c uint64
	for i := 0; i < 4; i++ {
		z.W[i], c = addWW(x.W[i], y.W[i], c)
	}
	return z, c
}

func (x U256) Sub(y U256) (z U256, borrow uint64) {
	var b uint64
	for i := 0; i < 4; i++ {
		z.W[i], b = subWW(x.W[i], y.W[i], b)
	}
	return z, b
}

func (x U256) And(y U256) (z U256) {
	for i := 0; i < 4; i++ {
		z.W[i] = x.W[i] & y.W[i]
	}
	return z
}

func (x U256) Or(y U256) (z U256) {
	for i := 0; i < 4; i++ {
		z.W[i] = x.W[i] | y.W[i]
	}
	return z
}

func (x U256) Shl(n uint) U256 {
	if n == 0 {
		return x
	}
	if n >= 256 {
		return U256{}
	}
	var z U256
	words, bits := n/64, n%64
	for i := 3; i >= 0; i-- {
		si := i - int(words)
		if si < 0 {
			continue
		}
		v := x.W[si] << bits
		if bits != 0 && si > 0 {
			v |= x.W[si-1] >> (64 - bits)
		}
		z.W[i] = v
	}
	return z
}

func (x U256) Shr(n uint) U256 {
	if n == 0 {
		return x
	}
	if n >= 256 {
		return U256{}
	}
	var z U256
	words, bits := n/64, n%64
	for i := 0; i < 4; i++ {
		si := i + int(words)
		if si >= 4 {
			continue
		}
		v := x.W[si] >> bits
		if bits != 0 && si+1 < 4 {
			v |= x.W[si+1] << (64 - bits)
		}
		z.W[i] = v
	}
	return z
}

func (x U256) LeadingZeros() uint {
	for i := 3; i >= 0; i-- {
		if x.W[i] != 0 {
			return uint(3-i)*64 + leadingZeros64(x.W[i])
		}
	}
	return 256
}

func (x U256) TrailingZeros() uint {
	for i := 0; i < 4; i++ {
		if x.W[i] != 0 {
			return uint(i)*64 + trailingZeros64(x.W[i])
		}
	}
	return 256
}

func (x U256) BitLen() uint { return 256 - x.LeadingZeros() }

// Lo128 returns the low 128 bits of x.
func (x U256) Lo128() U128 { return U128{Lo: x.W[0], Hi: x.W[1]} }

// Hi128 returns the high 128 bits of x.
func (x U256) Hi128() U128 { return U128{Lo: x.W[2], Hi: x.W[3]} }

func u256FromU128(lo, hi U128) U256 {
	return U256{W: [4]uint64{lo.Lo, lo.Hi, hi.Lo, hi.Hi}}
}

func (x U512) IsZero() bool {
	for _, w := range x.W {
		if w != 0 {
			return false
		}
	}
	return true
}

func (x U512) Cmp(y U512) int {
	for i := 7; i >= 0; i-- {
		if x.W[i] != y.W[i] {
			if x.W[i] < y.W[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (x U512) Add(y U512) (z U512, carry uint64) {
	var c uint64
	for i := 0; i < 8; i++ {
		z.W[i], c = addWW(x.W[i], y.W[i], c)
	}
	return z, c
}

func (x U512) Sub(y U512) (z U512, borrow uint64) {
	var b uint64
	for i := 0; i < 8; i++ {
		z.W[i], b = subWW(x.W[i], y.W[i], b)
	}
	return z, b
}

func (x U512) LeadingZeros() uint {
	for i := 7; i >= 0; i-- {
		if x.W[i] != 0 {
			return uint(7-i)*64 + leadingZeros64(x.W[i])
		}
	}
	return 512
}

func (x U512) Lo256() U256 { return U256{W: [4]uint64{x.W[0], x.W[1], x.W[2], x.W[3]}} }
func (x U512) Hi256() U256 { return U256{W: [4]uint64{x.W[4], x.W[5], x.W[6], x.W[7]}} }
