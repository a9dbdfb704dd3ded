package num

import (
	"database/sql/driver"
	"fmt"
)

// Scan implements sql.Scanner. It accepts the 16-byte big-endian blob written
// by Value, a decimal string (as string or []byte), or a non-negative int64.
// A []byte of exactly 16 bytes is treated as the binary form, unless every
// byte is an ASCII digit: some drivers return TEXT columns as []byte, so that
// input is rejected with ErrAmbiguousScan rather than guessed at.
func (u *U128) Scan(value interface{}) error {
	switch value := value.(type) {
	case []byte:
		if len(value) == 16 {
			if allDigits(value) {
				return fmt.Errorf("num: cannot scan %q into U128: %w", value, ErrAmbiguousScan)
			}
			*u = U128FromBytesBE(value)
			return nil
		}
		v, err := parseFull("Scan", string(value), 10)
		if err != nil {
			return err
		}
		*u = v
	case string:
		v, err := parseFull("Scan", value, 10)
		if err != nil {
			return err
		}
		*u = v
	case int64:
		if value < 0 {
			return fmt.Errorf("num: cannot scan negative int64 %d into U128", value)
		}
		*u = U128From64(uint64(value))
	case nil:
		return fmt.Errorf("num: cannot scan NULL into U128; use NullU128")
	default:
		return fmt.Errorf("num: cannot scan %T into U128", value)
	}
	return nil
}

func allDigits(b []byte) bool {
	for _, c := range b {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Value implements driver.Valuer. The value is stored as a 16-byte big-endian
// blob, so a bytewise BLOB comparison orders values numerically.
func (u U128) Value() (driver.Value, error) {
	return u.AppendBytesBE(make([]byte, 0, 16)), nil
}

// NullU128 represents a U128 that may be NULL.
type NullU128 struct {
	U128  U128
	Valid bool
}

func (n *NullU128) Scan(value interface{}) error {
	if value == nil {
		n.U128, n.Valid = U128{}, false
		return nil
	}
	if err := n.U128.Scan(value); err != nil {
		n.U128, n.Valid = U128{}, false
		return err
	}
	n.Valid = true
	return nil
}

func (n NullU128) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.U128.Value()
}
