package float128

// Accelerator is a capability seam: two primitives, a 64×64→128
// multiply and a 128÷128→128 division with remainder. Every wide
// multiply is built on Mul64; DivRem128 serves DivRem256by128 when the
// dividend fits in 128 bits. Swapping the
// Accelerator implementation never changes any observable Float128
// result — it only changes how the underlying words get multiplied and
// divided.
//
// Expressed as a Go interface rather than a build-tag-selected pair of
// files, because math/bits.Mul64/Div64 already compile to the host's
// wide multiply/divide instructions on every platform the Go toolchain
// targets — there is no separate "pure Go" codepath to fall back to at
// the instruction level. The software Accelerator below still exists as
// a from-scratch WideInt-only implementation, for platforms or
// embedders that want to avoid math/bits or audit the arithmetic
// without trusting the compiler's intrinsic lowering.
type Accelerator interface {
	// Mul64 returns the full 128-bit product of a and b as (lo, hi).
	Mul64(a, b uint64) (lo, hi uint64)
	// DivRem128 returns the quotient and remainder of n/d. d must be
	// non-zero.
	DivRem128(n, d U128) (q, r U128)
}

// hostAccelerator delegates multiplication directly to math/bits, which
// lowers to the host's native wide multiply instruction where available;
// its DivRem128 is the WideInt layer's restoring DivRem128, the same one
// softwareAccelerator uses.
type hostAccelerator struct{}

func (hostAccelerator) Mul64(a, b uint64) (lo, hi uint64) {
	hi, lo = mulWW(a, b)
	return
}

func (hostAccelerator) DivRem128(n, d U128) (q, r U128) {
	return DivRem128(n, d)
}

// softwareAccelerator implements both primitives purely in terms of the
// WideInt layer's own 32×32→64 partial products and restoring division,
// without relying on math/bits to fold down to hardware intrinsics.
type softwareAccelerator struct{}

func (softwareAccelerator) Mul64(a, b uint64) (lo, hi uint64) {
	const mask32 = 0xffffffff
	a0, a1 := a&mask32, a>>32
	b0, b1 := b&mask32, b>>32

	t := a0 * b0
	w0 := t & mask32
	k := t >> 32

	t = a1*b0 + k
	w1 := t & mask32
	w2 := t >> 32

	t = a0*b1 + w1
	w1 = t & mask32
	k = t >> 32

	t = a1*b1 + w2 + k
	w2 = t & mask32
	w3 := t >> 32

	return w1<<32 | w0, w3<<32 | w2
}

func (softwareAccelerator) DivRem128(n, d U128) (q, r U128) {
	return DivRem128(n, d)
}

// DefaultAccelerator is the Accelerator used by all package-level
// arithmetic. It is a variable, not a constant, so an embedder can
// substitute SoftwareAccelerator (or any other Accelerator) at
// program-init time; the arithmetic core is written entirely against
// the interface and never assumes a particular backend.
var DefaultAccelerator Accelerator = hostAccelerator{}

// SoftwareAccelerator is a pure, from-scratch software implementation of
// the Accelerator capability, provided for platforms that cannot or do
// not want to rely on math/bits' intrinsic lowering.
var SoftwareAccelerator Accelerator = softwareAccelerator{}
