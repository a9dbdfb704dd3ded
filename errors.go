package num

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidRadix is returned when a radix outside 2..64 is requested.
	ErrInvalidRadix = errors.New("invalid radix")

	// ErrSyntax is returned when no digits could be consumed, or when a full
	// parse found trailing input.
	ErrSyntax = errors.New("invalid syntax")

	// ErrRange is returned by the whole-string parsers when the digits do not
	// fit in 128 bits. ParseU128Prefix wraps instead.
	ErrRange = errors.New("value out of range")

	// ErrBinaryLength is returned when decoding binary data that is not
	// exactly 16 bytes long.
	ErrBinaryLength = errors.New("num: u128 binary data must be 16 bytes")

	// ErrAmbiguousScan is returned when a database value could be either the
	// 16-byte binary form or 16 decimal digits.
	ErrAmbiguousScan = errors.New("16 ASCII digits could be binary or decimal")
)

// ParseError records a failed conversion from text. Err is one of
// ErrInvalidRadix, ErrSyntax or ErrRange.
type ParseError struct {
	Func  string
	Input string
	Radix int
	Err   error
}

func (e *ParseError) Error() string {
	return "num: " + e.Func + ": parsing " + strconv.Quote(e.Input) +
		" (radix " + strconv.Itoa(e.Radix) + "): " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
