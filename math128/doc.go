// Package math128 layers transcendental functions on top of
// github.com/db47h/float128's arithmetic core: CORDIC-based sin/cos,
// Newton-iterated inverse trig, log/exp built on a recursive log2, and
// Newton-iterated roots. Every iteration count here is a fixed bound
// (25 Newton steps, or 32 CORDIC pseudo-rotations): these functions do
// not adapt precision or retry, they run a fixed number of steps and
// return.
package math128
