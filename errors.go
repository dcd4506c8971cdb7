package float128

import "fmt"

// ErrNaN is the error the context subpackage's Context records when an
// operation produces the sentinel NaN. This package's own arithmetic
// never returns it -- invalid operations resolve silently to the
// sentinel NaN -- so ErrNaN exists as a concrete error type such a
// caller can match against.
type ErrNaN struct {
	Msg string
}

func (e ErrNaN) Error() string { return e.Msg }

// ArgumentError reports an invalid argument to an API call: round(x,
// digits<0), an unsupported rounding mode, an unsupported number style,
// or an invalid negative-number pattern. Unlike ordinary arithmetic edge
// cases, these are programmer errors and are surfaced as a normal Go
// error rather than folded into a NaN result.
type ArgumentError struct {
	Func string
	Msg  string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("float128: %s: %s", e.Func, e.Msg)
}

// ConversionError reports that a checked conversion's source value lies
// outside the target type's representable range. Target names the Go
// type name the conversion was attempting to produce (e.g. "int32",
// "binary32").
type ConversionError struct {
	Target string
	Value  Float128
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("float128: value %s out of range for %s", e.Value.String(), e.Target)
}
