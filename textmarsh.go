package float128

import (
	"fmt"
	"math/big"
	"strings"
)

// hex renders x as a hexadecimal string using the given digit alphabet
// (digits or its uppercase form), without leading zeros.
func (x U128) hex(alphabet string) string {
	if x.IsZero() {
		return "0"
	}
	var buf [32]byte
	for i := 0; i < 32; i++ {
		nibble := byte(x.Shr(uint(31-i)*4).Lo & 0xf)
		buf[i] = alphabet[nibble]
	}
	return strings.TrimLeft(string(buf[:]), "0")
}

// Format implements fmt.Formatter for the %v, %s, %g, %G, %e, %E, %f and
// %F verbs, plus %x/%X, which print the raw 128-bit encoding in
// hexadecimal. Only the precision of %g/%e/%f is honoured; width and the
// '+'/' ' flags are ignored.
func (f Float128) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprint(s, f.String())
	case 'g', 'G', 'e', 'E', 'f', 'F':
		prec := -1
		if p, ok := s.Precision(); ok {
			prec = p
		}
		c := byte(verb)
		if verb == 'F' {
			c = 'f'
		}
		fmt.Fprint(s, f.Text(c, prec))
	case 'x':
		fmt.Fprintf(s, "0x%s", f.Bits().hex(digits))
	case 'X':
		fmt.Fprintf(s, "0X%s", strings.ToUpper(f.Bits().hex(digits)))
	default:
		fmt.Fprintf(s, "%%!%c(float128.Float128=%s)", verb, f.String())
	}
}

// Scan implements fmt.Scanner for plain numeric literals (sign, digits,
// optional fractional part, optional exponent), built directly from
// stdlib.go's byte-scanner primitives (scanSign, scanDigits,
// scanExponent) rather than parse.go's Parse -- fmt.ScanState is a rune
// stream with its own unread buffer, so Scan reads from it byte by byte
// instead of slicing a string. It does not recognize the "NaN"/"Inf"
// tokens Parse does; use Parse directly for those.
func (f *Float128) Scan(state fmt.ScanState, verb rune) error {
	state.SkipSpace()
	r := byteReader{state}

	neg, err := scanSign(r)
	if err != nil {
		return err
	}
	whole := scanDigits(r)
	var frac []byte
	if ch, err := r.ReadByte(); err == nil {
		if ch == '.' {
			frac = scanDigits(r)
		} else {
			_ = r.UnreadByte()
		}
	}
	if len(whole) == 0 && len(frac) == 0 {
		return errNoDigits
	}
	exp, _, err := scanExponent(r, false, false)
	if err != nil {
		return err
	}

	mantissa, ok := new(big.Int).SetString(string(whole)+string(frac), 10)
	if !ok {
		return &ArgumentError{Func: "Scan", Msg: "malformed number"}
	}
	*f = bigDecimalToFloat128(neg, mantissa, exp-int64(len(frac)))
	return nil
}
