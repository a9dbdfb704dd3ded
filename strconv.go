package num

import "errors"

const (
	MinRadix = 2
	MaxRadix = 64

	// maxTextLen is the widest text form of a U128, which is MaxU128 in
	// radix 2. Every other radix needs ceil(128/log2(radix)) digits or fewer.
	maxTextLen = 128
)

// digitAlphabet holds the 64 digit symbols, in value order. Radices above 36
// use it as-is and are case-sensitive.
const digitAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz@_"

// lowerAlphabet is used to format radices up to 36, which parse
// case-insensitively.
const lowerAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

const noDigit = 0xFF

var (
	// digitValuesFolded maps a byte to its digit value for radix <= 36.
	digitValuesFolded = buildDigitValues(true)

	// digitValuesExact maps a byte to its digit value for radix > 36.
	digitValuesExact = buildDigitValues(false)
)

func buildDigitValues(fold bool) (out [256]uint8) {
	for i := range out {
		out[i] = noDigit
	}
	for i := 0; i < len(digitAlphabet); i++ {
		out[digitAlphabet[i]] = uint8(i)
	}
	if fold {
		for c := 'a'; c <= 'z'; c++ {
			out[c] = uint8(c-'a') + 10
		}
		out['@'], out['_'] = noDigit, noDigit
	}
	return out
}

func validRadix(radix int) bool {
	return radix >= MinRadix && radix <= MaxRadix
}

func alphabetFor(radix int, upper bool) string {
	if radix > 36 || upper {
		return digitAlphabet
	}
	return lowerAlphabet
}

// formatText writes the digits of u into the tail of buf and returns the
// index of the first digit. The radix must already be valid.
func formatText(buf *[maxTextLen]byte, u U128, radix int, alphabet string) int {
	pos := len(buf)
	if u.IsZero() {
		pos--
		buf[pos] = '0'
		return pos
	}

	if radix == 16 {
		for !u.IsZero() {
			pos--
			buf[pos] = alphabet[u.lo&0xF]
			u = u.Rsh(4)
		}
		return pos
	}

	by := uint64(radix)
	for !u.IsZero() {
		var r uint64
		u, r, _ = u.QuoRem64(by)
		pos--
		buf[pos] = alphabet[r]
	}
	return pos
}

// Text returns the representation of u in the given radix, which must be
// between 2 and 64 inclusive. Radices up to 36 use lower-case letters for
// digit values >= 10; larger radices use the case-sensitive alphabet
// 0-9, A-Z, a-z, '@', '_'.
//
// Text returns the empty string if radix is out of range.
func (u U128) Text(radix int) string {
	if !validRadix(radix) {
		return ""
	}
	var buf [maxTextLen]byte
	pos := formatText(&buf, u, radix, alphabetFor(radix, false))
	return string(buf[pos:])
}

// TextUpper is like Text, but uses upper-case letters for radices up to 36.
func (u U128) TextUpper(radix int) string {
	if !validRadix(radix) {
		return ""
	}
	var buf [maxTextLen]byte
	pos := formatText(&buf, u, radix, alphabetFor(radix, true))
	return string(buf[pos:])
}

// AppendText appends the text form of u in the given radix to dst. If radix
// is out of range, dst is returned unchanged.
func (u U128) AppendText(dst []byte, radix int) []byte {
	if !validRadix(radix) {
		return dst
	}
	var buf [maxTextLen]byte
	pos := formatText(&buf, u, radix, alphabetFor(radix, false))
	return append(dst, buf[pos:]...)
}

func (u U128) String() string {
	if u.hi == 0 && u.lo < 10 {
		return lowerAlphabet[u.lo : u.lo+1]
	}
	return u.Text(10)
}

// ParseU128Prefix reads the longest run of digits in the given radix from the
// start of s. It returns the value and the number of bytes consumed, so
// callers can parse a number embedded in larger text.
//
// If no digit could be consumed the error wraps ErrSyntax. Like the
// arithmetic, a run of digits past the 128-bit range wraps modulo 2^128 and
// is not an error; use ParseU128 to have overflow reported.
func ParseU128Prefix(s string, radix int) (out U128, n int, err error) {
	out, n, _, err = parsePrefix("ParseU128Prefix", s, radix)
	return out, n, err
}

// parsePrefix returns the consumed digits modulo 2^128, and whether the exact
// value needed more than 128 bits.
func parsePrefix(fn string, s string, radix int) (out U128, n int, overflow bool, err error) {
	if !validRadix(radix) {
		return out, 0, false, &ParseError{Func: fn, Input: s, Radix: radix, Err: ErrInvalidRadix}
	}

	table := &digitValuesExact
	if radix <= 36 {
		table = &digitValuesFolded
	}

	if radix == 16 {
		for ; n < len(s); n++ {
			d := table[s[n]]
			if d >= 16 {
				break
			}
			if out.hi>>60 != 0 {
				overflow = true
			}
			out = out.Lsh(4).Or64(uint64(d))
		}

	} else {
		by := uint64(radix)
		for ; n < len(s); n++ {
			d := table[s[n]]
			if int(d) >= radix {
				break
			}
			var over bool
			out, over = mulAdd64(out, by, uint64(d))
			overflow = overflow || over
		}
	}

	if n == 0 {
		return U128{}, 0, false, &ParseError{Func: fn, Input: s, Radix: radix, Err: ErrSyntax}
	}
	return out, n, overflow, nil
}

// mulAdd64 returns u*by + add modulo 2^128, and whether the exact result
// needed more than 128 bits.
func mulAdd64(u U128, by, add uint64) (out U128, overflow bool) {
	ph, pl := mul64to128(u.hi, by)
	overflow = ph != 0

	out.hi, out.lo = mul64to128(u.lo, by)
	out.hi += pl
	if out.hi < pl {
		overflow = true
	}

	lo := out.lo + add
	if lo < out.lo {
		out.hi++
		if out.hi == 0 {
			overflow = true
		}
	}
	out.lo = lo
	return out, overflow
}

// ParseU128 parses the whole of s as a number in the given radix. Trailing
// input that is not a digit is an error wrapping ErrSyntax. On overflow,
// MaxU128 is returned with an error wrapping ErrRange.
func ParseU128(s string, radix int) (U128, error) {
	return parseFull("ParseU128", s, radix)
}

func parseFull(fn string, s string, radix int) (U128, error) {
	out, n, overflow, err := parsePrefix(fn, s, radix)
	if err != nil {
		return U128{}, err
	}
	if n != len(s) {
		return U128{}, &ParseError{Func: fn, Input: s, Radix: radix, Err: ErrSyntax}
	}
	if overflow {
		return MaxU128, &ParseError{Func: fn, Input: s, Radix: radix, Err: ErrRange}
	}
	return out, nil
}

// U128FromString creates a U128 from a decimal string. Overflow truncates to
// MaxU128 and sets accurate to 'false'.
func U128FromString(s string) (out U128, accurate bool, err error) {
	out, err = parseFull("U128FromString", s, 10)
	if errors.Is(err, ErrRange) {
		return MaxU128, false, nil
	} else if err != nil {
		return out, false, err
	}
	return out, true, nil
}

// U128FromStringOr parses the whole of s in the given radix, returning
// fallback if s is not a valid, in-range number.
func U128FromStringOr(s string, radix int, fallback U128) U128 {
	out, err := parseFull("U128FromStringOr", s, radix)
	if err != nil {
		return fallback
	}
	return out
}

// parseLiteral accepts a number with an optional 0x, 0o or 0b prefix, like a
// Go integer literal without underscores. Anything else is decimal.
func parseLiteral(fn string, s string) (U128, error) {
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return parseFull(fn, s[2:], 16)
		case 'o', 'O':
			return parseFull(fn, s[2:], 8)
		case 'b', 'B':
			return parseFull(fn, s[2:], 2)
		}
	}
	return parseFull(fn, s, 10)
}
