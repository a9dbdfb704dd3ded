package num

import "math/bits"

// DivMod returns the quotient and remainder of a / b. If b is zero, ok is
// false and q and r must not be used.
//
// DivMod implements T-division and modulus (like Go):
//
//	q = a/b      with the result truncated to zero
//	r = a - b*q
//
func DivMod(a, b U128) (q, r U128, ok bool) {
	if b.hi|b.lo == 0 {
		return q, r, false
	}

	if a.hi|b.hi == 0 {
		// protected from div/0 because b.lo is guaranteed to be set if b.hi is 0:
		q.lo = a.lo / b.lo
		r.lo = a.lo % b.lo
		return q, r, true
	}

	if a.LessThan(b) {
		return q, a, true // it's 100% remainder
	}

	// a >= b, so the dividend is at least as wide as the divisor:
	shift := a.MostSignificantBit() - b.MostSignificantBit()
	q, r = quorem128bin(a, b, shift)
	return q, r, true
}

// QuoRem returns the quotient q and remainder r of u / by. If by is zero, ok
// is false. See DivMod.
func (u U128) QuoRem(by U128) (q, r U128, ok bool) {
	return DivMod(u, by)
}

// Quo returns the quotient u/by, or zero if by is zero.
func (u U128) Quo(by U128) (q U128) {
	q, _, _ = DivMod(u, by)
	return q
}

// Rem returns the remainder of u%by, or zero if by is zero.
func (u U128) Rem(by U128) (r U128) {
	_, r, _ = DivMod(u, by)
	return r
}

// QuoRem64 divides u by a native divisor without widening it to 128 bits.
// If by is zero, ok is false.
func (u U128) QuoRem64(by uint64) (q U128, r uint64, ok bool) {
	if by == 0 {
		return q, r, false
	}

	if u.hi == 0 {
		q.lo = u.lo / by
		r = u.lo % by
		return q, r, true
	}

	if u.hi < by {
		q.lo, r = quorem128by64(u.hi, u.lo, by)
		return q, r, true
	}

	q.hi = u.hi / by
	q.lo, r = quorem128by64(u.hi%by, u.lo, by)
	return q, r, true
}

// Quo64 returns the quotient u/by, or zero if by is zero.
func (u U128) Quo64(by uint64) (q U128) {
	q, _, _ = u.QuoRem64(by)
	return q
}

// Rem64 returns the remainder of u%by, or zero if by is zero.
func (u U128) Rem64(by uint64) (r uint64) {
	_, r, _ = u.QuoRem64(by)
	return r
}

// quorem128bin is restoring long division. The caller guarantees that
// u >= by > 0 and that shift is the difference between their bit lengths, so
// by << shift never loses a bit and the loop runs at most 128 times.
func quorem128bin(u, by U128, shift uint) (q, r U128) {
	by = by.Lsh(shift)

	for i := int(shift); i >= 0; i-- {
		// {{{ Lsh(1)
		q.hi = (q.hi << 1) | (q.lo >> 63)
		q.lo = q.lo << 1
		// }}}

		// performance tweak: simulate greater than or equal by hand-inlining "not less than".
		if !(u.hi < by.hi || (u.hi == by.hi && u.lo < by.lo)) {
			u = u.Sub(by)
			q.lo |= 1
		}

		// {{{ Rsh(1)
		by.lo = (by.lo >> 1) | (by.hi << 63)
		by.hi = by.hi >> 1
		// }}}
	}

	return q, u
}

// Hacker's delight 9-4, divlu. Requires u1 < v, otherwise the quotient does
// not fit in 64 bits.
func quorem128by64(u1, u0, v uint64) (q, r uint64) {
	var b uint64 = 1 << 32
	var un1, un0, vn1, vn0, q1, q0, un32, un21, un10, rhat, left, right uint64

	s := uint(bits.LeadingZeros64(v))
	v <<= s

	vn1 = v >> 32
	vn0 = v & 0xffffffff

	if s > 0 {
		un32 = (u1 << s) | (u0 >> (64 - s))
		un10 = u0 << s
	} else {
		un32 = u1
		un10 = u0
	}

	un1 = un10 >> 32
	un0 = un10 & 0xffffffff

	q1 = un32 / vn1
	rhat = un32 % vn1

	left = q1 * vn0
	right = (rhat << 32) + un1

again1:
	if (q1 >= b) || (left > right) {
		q1--
		rhat += vn1
		if rhat < b {
			left -= vn0
			right = (rhat << 32) | un1
			goto again1
		}
	}

	un21 = (un32 << 32) + (un1 - (q1 * v))

	q0 = un21 / vn1
	rhat = un21 % vn1

	left = q0 * vn0
	right = (rhat << 32) | un0

again2:
	if (q0 >= b) || (left > right) {
		q0--
		rhat += vn1
		if rhat < b {
			left -= vn0
			right = (rhat << 32) | un0
			goto again2
		}
	}

	return (q1 << 32) | q0, ((un21 << 32) + (un0 - (q0 * v))) >> s
}
