package num

import (
	"math"
)

const (
	float64MantBits = 52
	float64ExpMask  = 0x7FF
	float64Bias     = 1023
)

func U128FromFloat32(f float32) (out U128, inRange bool) {
	return U128FromFloat64(float64(f))
}

// U128FromFloat64 creates a U128 from a float64. Any fractional portion
// will be truncated towards zero. Floats outside the bounds of a U128
// are clamped and inRange is set to false.
//
// NaN is treated as 0, inRange is set to false.
func U128FromFloat64(f float64) (out U128, inRange bool) {
	if f == 0 {
		return U128{}, true

	} else if f < 0 {
		return U128{}, false

	} else if f < maxUint64Float {
		return U128{lo: uint64(f)}, true

	} else if f < maxU128Float {
		return wideFloat64(f), true

	} else if f != f { // (f != f) == NaN
		return U128{}, false

	} else {
		return MaxU128, false
	}
}

// wideFloat64 converts f, which must be in [1<<64, 1<<128), by shifting its
// mantissa into place. Every float64 in that range is an integer, so the
// result is exact.
func wideFloat64(f float64) U128 {
	bits := math.Float64bits(f)
	exp := int(bits>>float64MantBits&float64ExpMask) - float64Bias - float64MantBits
	mant := bits&(1<<float64MantBits-1) | 1<<float64MantBits
	return U128From64(mant).Lsh(uint(exp))
}

func (u U128) AsFloat64() float64 {
	if u.hi == 0 && u.lo == 0 {
		return 0
	} else if u.hi == 0 {
		return float64(u.lo)
	} else {
		return (float64(u.hi) * wrapUint64Float) + float64(u.lo)
	}
}
