package num

// mul64to128 returns the full 128-bit product of u and v as two words.
func mul64to128(u, v uint64) (hi, lo uint64) {
	var (
		u1 = (u & 0xffffffff)
		v1 = (v & 0xffffffff)
		t  = (u1 * v1)
		w3 = (t & 0xffffffff)
		k  = (t >> 32)
	)

	u >>= 32
	t = (u * v1) + k
	k = (t & 0xffffffff)
	var w1 = (t >> 32)

	v >>= 32
	t = (u1 * v) + k
	k = (t >> 32)

	return (u * v) + w1 + k,
		(t << 32) + w3
}

// mul128to256 returns the full 256-bit product of (uhi, ulo) and (vhi, vlo),
// most significant word first.
func mul128to256(uhi, ulo, vhi, vlo uint64) (hi, hm, lm, lo uint64) {
	hi, hm = mul64to128(uhi, vhi)
	lm, lo = mul64to128(ulo, vlo)

	thi, tlo := mul64to128(uhi, vlo)

	lm += tlo

	if lm < tlo { // if lo.Hi overflowed
		hi, hm = U128{hi: hi, lo: hm}.Inc().Raw()
	}

	hm += thi
	if hm < thi { // if hi.Lo overflowed
		hi++
	}

	thi, tlo = mul64to128(ulo, vhi)

	lm += tlo
	if lm < tlo { // if L.Hi overflowed
		hi, hm = U128{hi: hi, lo: hm}.Inc().Raw()
	}

	hm += thi
	if hm < thi { // if H.Lo overflowed
		hi++
	}

	return hi, hm, lm, lo
}
