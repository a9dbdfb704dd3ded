package num

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func (u U128) MarshalText() ([]byte, error) {
	return u.AppendText(nil, 10), nil
}

// UnmarshalText accepts a decimal number, or a hexadecimal, octal or binary
// number with a 0x, 0o or 0b prefix.
func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, err := parseLiteral("UnmarshalText", string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, 42)
	out = append(out, '"')
	out = u.AppendText(out, 10)
	out = append(out, '"')
	return out, nil
}

func (u *U128) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("num: u128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := parseLiteral("UnmarshalJSON", string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalYAML emits u as a decimal string, as YAML integers are not
// guaranteed to survive a round trip through other tools beyond 64 bits.
func (u U128) MarshalYAML() (interface{}, error) {
	return u.String(), nil
}

// UnmarshalYAML accepts any scalar that UnmarshalText accepts, quoted or not.
func (u *U128) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("num: u128 YAML value must be a scalar at line %d", value.Line)
	}
	v, err := parseLiteral("UnmarshalYAML", value.Value)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalBinary encodes u as 16 big-endian bytes.
func (u U128) MarshalBinary() ([]byte, error) {
	return u.AppendBytesBE(make([]byte, 0, 16)), nil
}

func (u *U128) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return fmt.Errorf("%w, found %d", ErrBinaryLength, len(data))
	}
	*u = U128FromBytesBE(data)
	return nil
}
