package num

import (
	"fmt"
	"strconv"
)

// Format implements fmt.Formatter. It supports the integer verbs
// %b, %d, %o, %O, %x, %X, %q, as well as %s and %v (both decimal). The '#'
// flag adds a 0b, 0, 0x or 0X prefix. Width, precision and the other flags
// behave as they do for big.Int, so a U128 prints the same as its AsBigInt.
func (u U128) Format(s fmt.State, c rune) {
	var (
		radix  int
		upper  bool
		prefix string
	)

	switch c {
	case 'd', 's', 'v':
		radix = 10
	case 'b':
		radix = 2
		if s.Flag('#') {
			prefix = "0b"
		}
	case 'o':
		radix = 8
		if s.Flag('#') {
			prefix = "0"
		}
	case 'O':
		radix = 8
		prefix = "0o"
	case 'x':
		radix = 16
		if s.Flag('#') {
			prefix = "0x"
		}
	case 'X':
		radix, upper = 16, true
		if s.Flag('#') {
			prefix = "0X"
		}
	case 'q':
		writePadded(s, nil, "", []byte(strconv.Quote(u.String())), false)
		return
	default:
		fmt.Fprintf(s, "%%!%c(num.U128=%s)", c, u.String())
		return
	}

	var buf [maxTextLen]byte
	pos := formatText(&buf, u, radix, alphabetFor(radix, upper))
	digits := buf[pos:]

	// Nothing at all is printed for a zero value with an explicit zero precision.
	prec, hasPrec := s.Precision()
	if hasPrec {
		if prec == 0 && u.IsZero() {
			return
		} else if prec > len(digits) {
			padded := make([]byte, prec)
			n := copy(padded[prec-len(digits):], digits)
			for i := 0; i < prec-n; i++ {
				padded[i] = '0'
			}
			digits = padded
		}
	}

	var sign []byte
	if s.Flag('+') {
		sign = []byte{'+'}
	} else if s.Flag(' ') {
		sign = []byte{' '}
	}

	writePadded(s, sign, prefix, digits, s.Flag('0') && !hasPrec)
}

func writePadded(s fmt.State, sign []byte, prefix string, digits []byte, zeroPad bool) {
	body := len(sign) + len(prefix) + len(digits)
	width, _ := s.Width()
	pad := width - body

	out := make([]byte, 0, body+max(pad, 0))
	if pad > 0 && !s.Flag('-') && !zeroPad {
		out = appendRepeat(out, ' ', pad)
	}
	out = append(out, sign...)
	out = append(out, prefix...)
	if pad > 0 && !s.Flag('-') && zeroPad {
		out = appendRepeat(out, '0', pad)
	}
	out = append(out, digits...)
	if pad > 0 && s.Flag('-') {
		out = appendRepeat(out, ' ', pad)
	}
	s.Write(out)
}

func appendRepeat(dst []byte, c byte, n int) []byte {
	for i := 0; i < n; i++ {
		dst = append(dst, c)
	}
	return dst
}
