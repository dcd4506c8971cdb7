package float128

// addLimbsAt adds the little-endian limb slice v into z starting at
// limb index offset, propagating carry out past len(v) until it dies or
// runs off the end of z: the sum-with-carry-propagation step used when
// combining partial products.
func addLimbsAt(z []uint64, offset int, v []uint64) {
	c := uint64(0)
	i := 0
	for ; i < len(v); i++ {
		if offset+i >= len(z) {
			return
		}
		z[offset+i], c = addWW(z[offset+i], v[i], c)
	}
	for c != 0 && offset+i < len(z) {
		z[offset+i], c = addWW(z[offset+i], 0, c)
		i++
	}
}

// Mul128 returns the exact 128-bit product of two 64-bit words as a U128
// (64×64→128, the base case of the partial-product multiplier), computed
// through DefaultAccelerator so substituting SoftwareAccelerator changes
// how this product is actually formed.
func Mul128(a, b uint64) U128 {
	lo, hi := DefaultAccelerator.Mul64(a, b)
	return U128{Lo: lo, Hi: hi}
}

// Mul128x128to256 returns the exact 256-bit product of two 128-bit
// operands via four 64×64→128 partial products (each routed through
// DefaultAccelerator.Mul64) combined with carry propagation.
func Mul128x128to256(a, b U128) U256 {
	var w [4]uint64
	l, h := DefaultAccelerator.Mul64(a.Lo, b.Lo)
	addLimbsAt(w[:], 0, []uint64{l, h})
	l, h = DefaultAccelerator.Mul64(a.Lo, b.Hi)
	addLimbsAt(w[:], 1, []uint64{l, h})
	l, h = DefaultAccelerator.Mul64(a.Hi, b.Lo)
	addLimbsAt(w[:], 1, []uint64{l, h})
	l, h = DefaultAccelerator.Mul64(a.Hi, b.Hi)
	addLimbsAt(w[:], 2, []uint64{l, h})
	return U256{W: w}
}

// Mul256x256to512 returns the exact 512-bit product of two 256-bit
// operands via four 128×128→256 partial products.
func Mul256x256to512(a, b U256) U512 {
	var w [8]uint64
	aLo, aHi := a.Lo128(), a.Hi128()
	bLo, bHi := b.Lo128(), b.Hi128()

	p := Mul128x128to256(aLo, bLo)
	addLimbsAt(w[:], 0, p.W[:])
	p = Mul128x128to256(aLo, bHi)
	addLimbsAt(w[:], 2, p.W[:])
	p = Mul128x128to256(aHi, bLo)
	addLimbsAt(w[:], 2, p.W[:])
	p = Mul128x128to256(aHi, bHi)
	addLimbsAt(w[:], 4, p.W[:])
	return U512{W: w}
}
