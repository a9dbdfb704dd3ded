/*
Package num provides a fixed-width unsigned 128-bit integer type (U128),
stored as two uint64 words.

U128 is a value type; all operations return new values. Arithmetic wraps
modulo 2^128, like Go's built-in unsigned integers.

Simple example:

	u1 := U128From64(math.MaxUint64)
	u2 := U128From64(math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225

U128 can be created from a variety of sources:

	U128FromRaw(hi, lo uint64) U128
	U128From64(v uint64) U128
	U128From32(v uint32) U128
	U128From16(v uint16) U128
	U128From8(v uint8) U128
	U128FromBytesBE(b []byte) U128
	U128FromBytesLE(b []byte) U128
	U128FromString(s string) (out U128, accurate bool, err error)
	U128FromBigInt(v *big.Int) (out U128, accurate bool)
	U128FromFloat32(f float32) (out U128, inRange bool)
	U128FromFloat64(f float64) (out U128, inRange bool)
	ParseU128(s string, radix int) (U128, error)
	ParseU128Prefix(s string, radix int) (out U128, n int, err error)

Division never panics. DivMod and QuoRem report division by zero with a false
'ok' result; Quo and Rem return zero instead.

Text conversion supports every radix from 2 to 64. Radices up to 36 are
case-insensitive when parsing and lower-case when formatting; larger radices
use the case-sensitive digit alphabet 0-9, A-Z, a-z, '@', '_'.

U128 supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- encoding.BinaryMarshaler
	- encoding.BinaryUnmarshaler
	- yaml.Marshaler
	- yaml.Unmarshaler
	- sql.Scanner
	- driver.Valuer

*/
package num
