package num

import (
	"math/big"
	"math/bits"
)

// U128 is an unsigned 128-bit integer stored as two 64-bit words. Every
// combination of words is a valid value; the zero value is 0.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{hi: 0, lo: v} }
func U128From32(v uint32) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From16(v uint16) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From8(v uint8) U128         { return U128{hi: 0, lo: uint64(v)} }

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to MaxU128
// and sets accurate to 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		lw := len(words)
		switch lw {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{hi: uint64(words[1]), lo: uint64(words[0])}, true
		default:
			return MaxU128, false
		}

	case 32:
		lw := len(words)
		switch lw {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 3:
			return U128{hi: uint64(words[2]), lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 4:
			return U128{
				hi: (uint64(words[3]) << 32) | (uint64(words[2])),
				lo: (uint64(words[1]) << 32) | (uint64(words[0])),
			}, true
		default:
			return MaxU128, false
		}

	default:
		panic("num: unsupported bit size")
	}
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 2 {
			bits = append(bits, make([]big.Word, 2-ln)...)
		}
		bits = bits[:2]
		bits[0] = big.Word(u.lo)
		bits[1] = big.Word(u.hi)
		b.SetBits(bits)

	case 32:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 4 {
			bits = append(bits, make([]big.Word, 4-ln)...)
		}
		bits = bits[:4]
		bits[0] = big.Word(u.lo & 0xFFFFFFFF)
		bits[1] = big.Word(u.lo >> 32)
		bits[2] = big.Word(u.hi & 0xFFFFFFFF)
		bits[3] = big.Word(u.hi >> 32)
		b.SetBits(bits)

	default:
		b.SetUint64(u.hi)
		b.Lsh(b, 64)
		var lo big.Int
		lo.SetUint64(u.lo)
		b.Add(b, &lo)
	}
}

func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U128) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(u.AsBigInt())
}

// AsUint64 truncates the U128 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U128) AsUint64() uint64 {
	return u.lo
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool {
	return u.hi == 0
}

func (u U128) Inc() (v U128) {
	v.lo = u.lo + 1
	v.hi = u.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u U128) Dec() (v U128) {
	v.lo = u.lo - 1
	v.hi = u.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

func (u U128) Add(n U128) (v U128) {
	v.lo = u.lo + n.lo
	v.hi = u.hi + n.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u U128) Add64(n uint64) (v U128) {
	v.lo = u.lo + n
	v.hi = u.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u U128) Sub(n U128) (v U128) {
	v.lo = u.lo - n.lo
	v.hi = u.hi - n.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

func (u U128) Sub64(n uint64) (v U128) {
	v.lo = u.lo - n
	v.hi = u.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

// Neg returns the two's complement of u, which is equivalent to 0 - u.
func (u U128) Neg() (v U128) {
	v.lo = -u.lo
	v.hi = -u.hi
	if u.lo != 0 {
		v.hi--
	}
	return v
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

// Cmp64 compares u to a uint64, which is treated as having no high word.
func (u U128) Cmp64(n uint64) int {
	if u.hi > 0 || u.lo > n {
		return 1
	} else if u.lo < n {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) Equal64(n uint64) bool {
	return u.hi == 0 && u.lo == n
}

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) GreaterThan64(n uint64) bool {
	return u.hi > 0 || u.lo > n
}

func (u U128) GreaterOrEqualTo(n U128) bool {
	if u.hi > n.hi {
		return true
	} else if u.hi < n.hi {
		return false
	} else if u.lo > n.lo {
		return true
	} else if u.lo < n.lo {
		return false
	}
	return true
}

func (u U128) GreaterOrEqualTo64(n uint64) bool {
	return u.hi > 0 || u.lo >= n
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) LessThan64(n uint64) bool {
	return u.hi == 0 && u.lo < n
}

func (u U128) LessOrEqualTo(n U128) bool {
	if u.hi > n.hi {
		return false
	} else if u.hi < n.hi {
		return true
	} else if u.lo > n.lo {
		return false
	} else if u.lo < n.lo {
		return true
	}
	return true
}

func (u U128) LessOrEqualTo64(n uint64) bool {
	return u.hi == 0 && u.lo <= n
}

func (u U128) And(v U128) (out U128) {
	out.hi = u.hi & v.hi
	out.lo = u.lo & v.lo
	return out
}

// And64 masks the low word with n. The high word is always cleared, as n
// has no high bits.
func (u U128) And64(n uint64) (out U128) {
	out.lo = u.lo & n
	return out
}

func (u U128) AndNot(v U128) (out U128) {
	out.hi = u.hi &^ v.hi
	out.lo = u.lo &^ v.lo
	return out
}

func (u U128) Not() (out U128) {
	out.hi = ^u.hi
	out.lo = ^u.lo
	return out
}

func (u U128) Or(v U128) (out U128) {
	out.hi = u.hi | v.hi
	out.lo = u.lo | v.lo
	return out
}

func (u U128) Or64(n uint64) (out U128) {
	out.hi = u.hi
	out.lo = u.lo | n
	return out
}

func (u U128) Xor(v U128) (out U128) {
	out.hi = u.hi ^ v.hi
	out.lo = u.lo ^ v.lo
	return out
}

func (u U128) Xor64(n uint64) (out U128) {
	out.hi = u.hi
	out.lo = u.lo ^ n
	return out
}

// Lsh returns u << n. Shifts of 128 or more produce zero.
func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
		v.lo = 0
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else if n == 64 {
		v.hi = u.lo
		v.lo = 0
	}
	return v
}

// Rsh returns u >> n. Shifts of 128 or more produce zero.
func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
		v.hi = 0
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else if n == 64 {
		v.lo = u.hi
		v.hi = 0
	}

	return v
}

// Mul returns the low 128 bits of u * n. Bits carried out of the high word
// are discarded; see MulOverflow for a checked variant.
func (u U128) Mul(n U128) (dest U128) {
	dest.hi, dest.lo = mul64to128(u.lo, n.lo)
	dest.hi += u.hi*n.lo + u.lo*n.hi
	return dest
}

func (u U128) Mul64(n uint64) (dest U128) {
	dest.hi, dest.lo = mul64to128(u.lo, n)
	dest.hi += u.hi * n
	return dest
}

// MulOverflow returns the low 128 bits of u * n, and whether any bits of the
// full 256-bit product were lost.
func (u U128) MulOverflow(n U128) (dest U128, overflow bool) {
	hi, hm, lm, lo := mul128to256(u.hi, u.lo, n.hi, n.lo)
	return U128{hi: lm, lo: lo}, hi|hm != 0
}

// MostSignificantBit returns the 1-based index of the highest set bit, or 0
// if u is zero. It is the same as BitLen.
func (u U128) MostSignificantBit() uint {
	if u.hi != 0 {
		return 64 + uint(bits.Len64(u.hi))
	}
	return uint(bits.Len64(u.lo))
}

// LeastSignificantBit returns the 1-based index of the lowest set bit, or 0
// if u is zero.
func (u U128) LeastSignificantBit() uint {
	if u.lo != 0 {
		return uint(bits.TrailingZeros64(u.lo)) + 1
	}
	if u.hi != 0 {
		return 64 + uint(bits.TrailingZeros64(u.hi)) + 1
	}
	return 0
}

func (u U128) BitLen() int {
	return int(u.MostSignificantBit())
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	} else {
		return uint(bits.LeadingZeros64(u.hi))
	}
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	} else {
		return uint(bits.TrailingZeros64(u.lo))
	}
}

// Bit returns the value of the i'th bit of u. Bits outside 0..127 are 0.
func (u U128) Bit(i int) uint {
	if i < 0 || i >= 128 {
		return 0
	}
	if i >= 64 {
		return uint((u.hi >> uint(i-64)) & 1)
	}
	return uint((u.lo >> uint(i)) & 1)
}

// SetBit returns u with the i'th bit set to b (0 or 1). Any other value of b
// or an i outside 0..127 returns u unchanged.
func (u U128) SetBit(i int, b uint) (out U128) {
	if i < 0 || i >= 128 || b > 1 {
		return u
	}
	out = u
	if i >= 64 {
		if b == 1 {
			out.hi |= 1 << uint(i-64)
		} else {
			out.hi &^= 1 << uint(i-64)
		}
	} else {
		if b == 1 {
			out.lo |= 1 << uint(i)
		} else {
			out.lo &^= 1 << uint(i)
		}
	}
	return out
}
