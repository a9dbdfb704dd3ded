package num

// RandSource is satisfied by *math/rand.Rand and *math/rand/v2.Rand.
type RandSource interface {
	Uint64() uint64
}

// RandU128 generates an unsigned 128-bit random integer from an external source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

// DifferenceU128 subtracts the smaller of a and b from the larger, so the
// result never wraps.
func DifferenceU128(a, b U128) U128 {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

// LargerU128 returns the larger of a and b, or a if they are equal.
func LargerU128(a, b U128) U128 {
	if a.LessThan(b) {
		return b
	}
	return a
}

// SmallerU128 returns the smaller of a and b, or a if they are equal.
func SmallerU128(a, b U128) U128 {
	if b.LessThan(a) {
		return b
	}
	return a
}
