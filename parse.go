package float128

import (
	"encoding/binary"
	"math/big"
	"strings"
)

// ParseOptions configures the string-to-Float128 parser: decimal
// separator, negative-sign string, and whether surrounding parentheses
// denote a negative number.
type ParseOptions struct {
	// DecimalSeparator is the byte that separates the whole and
	// fractional digit strings. Zero means '.'.
	DecimalSeparator byte
	// NegativeSign is the string that precedes (or, with AllowParens,
	// replaces the parens around) a negative number. Empty means "-".
	NegativeSign string
	// AllowParens accepts "(123.4)" as a negative-number pattern, as
	// accounting software conventionally does.
	AllowParens bool
}

// DefaultParseOptions is what Parse uses: '.' separator, "-" negative
// sign, no parenthesized-negative support.
var DefaultParseOptions = ParseOptions{DecimalSeparator: '.', NegativeSign: "-"}

// Parse parses s as a decimal Float128 literal using DefaultParseOptions.
func Parse(s string) (Float128, error) { return DefaultParseOptions.Parse(s) }

func (o ParseOptions) sep() byte {
	if o.DecimalSeparator == 0 {
		return '.'
	}
	return o.DecimalSeparator
}

func (o ParseOptions) negSign() string {
	if o.NegativeSign == "" {
		return "-"
	}
	return o.NegativeSign
}

// Parse parses s into a Float128 per o's configuration:
//
//	[sign]? digits [ separator digits ]? [ E signed_digits ]? [sign]?
//
// plus the tokens "NaN", "Inf"/"Infinity" (with an optional sign), and,
// if o.AllowParens, a surrounding "(...)" standing in for a leading "-".
// A malformed string returns (SentinelNaN, non-nil error), matching the
// package's general "invalid operations resolve to the sentinel NaN"
// convention rather than a panic.
func (o ParseOptions) Parse(s string) (Float128, error) {
	orig := s
	neg := false

	if o.AllowParens && len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		neg = true
		s = s[1 : len(s)-1]
	}
	if strings.HasPrefix(s, o.negSign()) {
		neg = !neg
		s = s[len(o.negSign()):]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	if len(s) > len(o.negSign()) && strings.HasSuffix(s, o.negSign()) {
		// trailing sign pattern, e.g. "123.4-"
		neg = !neg
		s = s[:len(s)-len(o.negSign())]
	}

	switch strings.ToLower(s) {
	case "nan":
		return QuietNaN, nil
	case "inf", "infinity":
		return signedInf(neg), nil
	}

	sepIdx := strings.IndexByte(s, o.sep())
	expIdx := strings.IndexAny(s, "eE")

	var wholeStr, fracStr, expStr string
	switch {
	case sepIdx < 0 && expIdx < 0:
		wholeStr = s
	case sepIdx < 0:
		wholeStr, expStr = s[:expIdx], s[expIdx+1:]
	case expIdx < 0:
		wholeStr, fracStr = s[:sepIdx], s[sepIdx+1:]
	case sepIdx < expIdx:
		wholeStr, fracStr, expStr = s[:sepIdx], s[sepIdx+1:expIdx], s[expIdx+1:]
	default:
		return SentinelNaN, &ArgumentError{Func: "Parse", Msg: "malformed number: " + orig}
	}

	if wholeStr == "" && fracStr == "" {
		return SentinelNaN, &ArgumentError{Func: "Parse", Msg: "number has no digits: " + orig}
	}
	if !allDigits(wholeStr) || !allDigits(fracStr) {
		return SentinelNaN, &ArgumentError{Func: "Parse", Msg: "malformed number: " + orig}
	}

	exp := int64(0)
	if expStr != "" {
		e, ok := parseSignedInt(expStr)
		if !ok {
			return SentinelNaN, &ArgumentError{Func: "Parse", Msg: "malformed exponent: " + orig}
		}
		exp = e
	}

	digitsStr := wholeStr + fracStr
	digitsStr = strings.TrimLeft(digitsStr, "0")
	if digitsStr == "" {
		return signedZero(neg), nil
	}

	mantissa, ok := new(big.Int).SetString(wholeStr+fracStr, 10)
	if !ok {
		return SentinelNaN, &ArgumentError{Func: "Parse", Msg: "malformed number: " + orig}
	}
	decExp := exp - int64(len(fracStr))

	return bigDecimalToFloat128(neg, mantissa, decExp), nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func parseSignedInt(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}
	if !allDigits(s) || s == "" {
		return 0, false
	}
	var v int64
	for i := 0; i < len(s); i++ {
		v = v*10 + int64(s[i]-'0')
	}
	if neg {
		v = -v
	}
	return v, true
}

// bigDecimalToFloat128 converts the exact rational value
// mantissa * 10^decExp to the nearest Float128, ties to even, via
// math/big's arbitrary-precision integer division rather than a
// repeated-doubling loop: both compute the same correctly-rounded
// quotient, but long division via big.Int is far easier to verify by
// inspection without running it. See DESIGN.md.
func bigDecimalToFloat128(neg bool, mantissa *big.Int, decExp int64) Float128 {
	if mantissa.Sign() == 0 {
		return signedZero(neg)
	}

	num := new(big.Int).Set(mantissa)
	den := big.NewInt(1)
	if decExp >= 0 {
		num.Mul(num, new(big.Int).Exp(big.NewInt(10), big.NewInt(decExp), nil))
	} else {
		den.Exp(big.NewInt(10), big.NewInt(-decExp), nil)
	}

	// Estimate the binary exponent e such that 2^e <= num/den < 2^(e+1).
	e := int32(num.BitLen() - den.BitLen())
	if cmpShifted(num, den, int(e)) < 0 {
		e--
	} else if cmpShifted(num, den, int(e+1)) >= 0 {
		e++
	}

	// Scale so the quotient carries exactly canonicalWidth (116) bits:
	// value = num/den = q*2^(e-115) + (remainder term, folded into sticky).
	shift := int(canonicalWidth - 1 - int(e))
	var scaledNum, d *big.Int
	if shift >= 0 {
		scaledNum = new(big.Int).Lsh(num, uint(shift))
		d = den
	} else {
		scaledNum = num
		d = new(big.Int).Lsh(den, uint(-shift))
	}
	q, r := new(big.Int).QuoRem(scaledNum, d, new(big.Int))

	w := bigIntToU128(q)
	if r.Sign() != 0 {
		w.Lo |= 1
	}
	nm, ne := normalize(w, e)
	return roundAndEncode(neg, nm, ne)
}

// cmpShifted compares num/den against 2^shift, i.e. num against den*2^shift.
func cmpShifted(num, den *big.Int, shift int) int {
	if shift >= 0 {
		return num.Cmp(new(big.Int).Lsh(den, uint(shift)))
	}
	return new(big.Int).Lsh(num, uint(-shift)).Cmp(den)
}

// bigIntToU128 converts a non-negative big.Int known to fit in 128 bits
// to a U128.
func bigIntToU128(x *big.Int) U128 {
	var buf [16]byte
	x.FillBytes(buf[:])
	return U128{
		Hi: binary.BigEndian.Uint64(buf[0:8]),
		Lo: binary.BigEndian.Uint64(buf[8:16]),
	}
}
