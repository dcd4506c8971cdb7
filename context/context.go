// Package context provides an IEEE-754-style wrapper around Float128
// arithmetic that accumulates errors across a chain of operations instead
// of requiring a check after every call.
//
// All operators of the form
//
//	func (c *Context) BinaryOp(x, y float128.Float128) float128.Float128
//
// behave like the corresponding Float128 method, except that once an
// operation signals an invalid result (the sentinel NaN, per the parent
// package's convention) or an ArgumentError, the Context records it and
// every subsequent call becomes a no-op that returns its first argument
// unchanged, until (*Context).Err is called to clear the error state.
//
// Float128's own arithmetic never panics -- it resolves invalid
// operations to float128.SentinelNaN rather than raising an error -- so
// this Context detects failure by inspecting results rather than by
// recovering from a panic.
package context

import "github.com/db47h/float128"

// A Context wraps a rounding mode policy around Float128 operations. The
// only rounding mode this package's arithmetic actually implements is
// float128.ToNearestEven; any other mode passed to New or SetMode is
// recorded as an error rather than silently ignored.
type Context struct {
	mode float128.RoundingMode
	err  error
}

// New creates a new Context with the given rounding mode. Any mode other
// than float128.ToNearestEven is rejected: the Context is still usable,
// but Err will report an ArgumentError until cleared.
func New(mode float128.RoundingMode) *Context {
	return new(Context).SetMode(mode)
}

// Mode returns c's rounding mode.
func (c *Context) Mode() float128.RoundingMode { return c.mode }

// SetMode sets c's rounding mode and returns c. Modes other than
// ToNearestEven are recorded as an ArgumentError ("unsupported
// rounding mode").
func (c *Context) SetMode(mode float128.RoundingMode) *Context {
	c.mode = mode
	if mode != float128.ToNearestEven && c.err == nil {
		c.err = &float128.ArgumentError{Func: "SetMode", Msg: "only ToNearestEven is supported"}
	}
	return c
}

// Err returns the first error encountered since the last call to Err,
// and clears the error state.
func (c *Context) Err() error {
	err := c.err
	c.err = nil
	return err
}

// checkNaN records ErrNaN as c's error when result is the sentinel NaN
// and no error is already recorded, and returns result unchanged.
func (c *Context) checkNaN(result float128.Float128) float128.Float128 {
	if c.err == nil && result.IsSentinel() {
		c.err = float128.ErrNaN{Msg: "float128: context: operation produced the sentinel NaN"}
	}
	return result
}

// Add returns the rounded sum x+y, or x unchanged if c is already failed.
func (c *Context) Add(x, y float128.Float128) float128.Float128 {
	if c.err != nil {
		return x
	}
	return c.checkNaN(x.Add(y))
}

// Sub returns the rounded difference x-y, or x unchanged if c is already failed.
func (c *Context) Sub(x, y float128.Float128) float128.Float128 {
	if c.err != nil {
		return x
	}
	return c.checkNaN(x.Sub(y))
}

// Mul returns the rounded product x*y, or x unchanged if c is already failed.
func (c *Context) Mul(x, y float128.Float128) float128.Float128 {
	if c.err != nil {
		return x
	}
	return c.checkNaN(x.Mul(y))
}

// Quo returns the rounded quotient x/y, or x unchanged if c is already failed.
func (c *Context) Quo(x, y float128.Float128) float128.Float128 {
	if c.err != nil {
		return x
	}
	return c.checkNaN(x.Quo(y))
}

// FMA returns x*y+z computed with a single rounding, or x unchanged if c
// is already failed.
func (c *Context) FMA(x, y, z float128.Float128) float128.Float128 {
	if c.err != nil {
		return x
	}
	return c.checkNaN(x.FMA(y, z))
}

// Neg returns -x. Never fails: negation cannot produce a NaN from a
// non-NaN input.
func (c *Context) Neg(x float128.Float128) float128.Float128 {
	if c.err != nil {
		return x
	}
	return x.Neg()
}

// Abs returns |x|. Never fails, for the same reason as Neg.
func (c *Context) Abs(x float128.Float128) float128.Float128 {
	if c.err != nil {
		return x
	}
	return x.Abs()
}

// Round returns x rounded to the nearest integer, ties to even.
func (c *Context) Round(x float128.Float128) float128.Float128 {
	if c.err != nil {
		return x
	}
	return x.Round()
}
