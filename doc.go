// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package float128 implements IEEE 754-2019 binary128 (quadruple-precision)
floating-point arithmetic entirely in software, for hosts whose widest
native integer is 64 bits.

Float128 is a value type: it is 128 bits wide, holds no pointers, and is
freely copied like any other numeric type. There is no heap allocation on
any arithmetic path. This makes the API look rather different from
math/big's reference-based types: instead of

	z.Add(x, y)

operations are plain value-returning functions and methods:

	z := x.Add(y)

Rounding is always round-to-nearest, ties-to-even (the only mode IEEE
754-2019 requires binary128 implementations to support unconditionally).
Arithmetic never panics: every edge case defined by IEEE 754 resolves to a
NaN, an infinity, or a (possibly subnormal) zero per the table in the
package-level documentation for Add, Mul, Quo and FMA.

The low-level word arithmetic backing the 128×128→256 multiply and
256÷128→256 divide used throughout the package is provided by the
Accelerator interface (see accel.go) and the WideInt layer (U128, U256,
U512; see wideint*.go) — a seam that lets a platform substitute a
hardware-assisted implementation without changing any observable result.

Transcendental functions (trigonometric, logarithmic, exponential, and
inverse-hyperbolic) live in the sibling math128 package, keeping the
arithmetic core free of iterative numerical methods. A context
subpackage wraps rounding-mode selection and NaN-sticky error capture
for call chains that want big.Float-style ergonomics.
*/
package float128
