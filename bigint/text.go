package bigint

import (
	"errors"
	"strings"
)

const defaultAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ErrBadDigit is returned by the SetBaseN family when an input
// character isn't in the supplied alphabet.
var ErrBadDigit = errors.New("bigint: invalid digit for base")

// SetBase10 parses a decimal string into a, overwriting its value.
func (a *Int) SetBase10(s string) error {
	return a.SetBaseN(s, 10, defaultAlphabet)
}

// SetBase16 parses a hexadecimal string (no "0x" prefix) into a,
// overwriting its value. Lower and upper case digits are both
// accepted.
func (a *Int) SetBase16(s string) error {
	return a.SetBaseN(s, 16, defaultAlphabet)
}

// SetBaseN parses s as a number in the given base using alphabet as
// the digit-to-value mapping (alphabet[i] represents digit value i).
// A leading '-' marks a negative value.
func (a *Int) SetBaseN(s string, base int, alphabet string) error {
	if base < 2 || base > len(alphabet) {
		return errors.New("bigint: base out of range for alphabet")
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if s == "" {
		return errors.New("bigint: empty numeral")
	}

	upper := strings.ToUpper(alphabet)
	result := Zero()
	b := FromUint64(uint64(base))
	for _, r := range strings.ToUpper(s) {
		idx := strings.IndexRune(upper, r)
		if idx < 0 || idx >= base {
			return ErrBadDigit
		}
		result.Mul(&b)
		result.AddUint64(uint64(idx))
	}
	if neg {
		result.Neg()
	}
	*a = result
	return nil
}

// Text returns a in the given base using alphabet as the digit
// mapping. The result has no leading zeros (other than a lone "0")
// and is prefixed with '-' for negative values.
func (a *Int) Text(base int, alphabet string) string {
	if base < 2 || base > len(alphabet) {
		panic("bigint: base out of range for alphabet")
	}
	if a.IsZero() {
		return string(alphabet[0])
	}

	work := *a
	neg := work.IsNegative()
	if neg {
		work.Neg()
	}

	b := FromUint64(uint64(base))
	var digits []byte
	for !work.IsZero() {
		var rem Int
		work.Div(&b, &rem)
		digits = append(digits, alphabet[rem.Limb(0)])
	}

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteByte(digits[i])
	}
	return sb.String()
}

// Base10 returns a formatted in decimal.
func (a *Int) Base10() string { return a.Text(10, defaultAlphabet) }

// Base16 returns a formatted in hexadecimal, upper case, no prefix.
func (a *Int) Base16() string { return a.Text(16, defaultAlphabet) }

// String implements fmt.Stringer with a hex rendering, matching how
// the rest of this library prefers to print large integers.
func (a *Int) String() string { return a.Base16() }
