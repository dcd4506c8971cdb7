package float128

import "math/big"

// textPrec is the default number of significant decimal digits String
// renders: enough for Parse(f.String()) to recover f exactly for any
// finite f (binary128's 113-bit significand needs at most 36 decimal
// digits to round-trip).
const textPrec = 36

// formatPrec is the big.Float working precision used to extract decimal
// digits from a Float128's exact rational value. It comfortably exceeds
// both the 113-bit significand and the handful of extra bits a power-of-
// two-to-power-of-ten digit extraction needs.
const formatPrec = 192

// String returns f formatted as a decimal number with up to textPrec
// significant digits, using the shortest representation ('g' format)
// that distinguishes it to that precision. NaN and infinities render as
// "NaN", "Inf", and "-Inf".
func (f Float128) String() string { return f.Text('g', textPrec) }

// Text converts f to a string according to the given format and
// precision, mirroring math/big.Float.Text's API: format is one of 'e',
// 'E', 'f', 'g', 'G' (as documented by strconv.FormatFloat), and prec
// controls the number of digits (-1 selects the shortest decimal that
// rounds back to f at binary128's 113-bit precision). NaN and infinities are
// rendered as the tokens "NaN", "Inf", "-Inf" regardless of format.
func (f Float128) Text(format byte, prec int) string {
	if f.IsNaN() {
		return "NaN"
	}
	if f.IsInf() {
		if f.Signbit() {
			return "-Inf"
		}
		return "Inf"
	}
	sign, m, e := f.decode()
	bf := new(big.Float).SetPrec(formatPrec)
	if prec < 0 {
		// big.Float's shortest form is relative to its own precision.
		bf.SetPrec(significandBits + 1)
	}
	bf.SetInt(u128ToBigInt(m))
	bf.SetMantExp(bf, int(e)-significandBits)
	if sign {
		bf.Neg(bf)
	}
	return bf.Text(format, prec)
}

// Append appends f's Text(format, prec) rendering to buf and returns the
// extended buffer, mirroring strconv.AppendFloat / math/big.Float's
// Append-style helpers.
func (f Float128) Append(buf []byte, format byte, prec int) []byte {
	return append(buf, f.Text(format, prec)...)
}

// MarshalText implements encoding.TextMarshaler using String's default
// precision.
func (f Float128) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (f *Float128) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// u128ToBigInt converts a non-negative U128 to the equivalent big.Int.
func u128ToBigInt(x U128) *big.Int {
	b := new(big.Int).SetUint64(x.Hi)
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(x.Lo))
	return b
}
