package bignum

import (
	"math"
	"math/bits"
)

// sqrt sets z = floor(sqrt(x)) and returns z.
//
// Values up to two words use a hardware square root with correction. Larger
// values use the precision-doubling scheme from CPython's isqrt: with
// c = (bitLen-1)/2, an approximation a is maintained whose precision roughly
// doubles at every step,
//
//	a' = (a << (d-e-1)) + (x >> (2c-e-d+1)) / a
//
// so the total work is O(M(n)) rather than O(M(n)·log n). The invariant is
// (a-1)**2 < (x >> 2*(c-d)) < (a+1)**2, so a single final adjustment
// suffices.
func (z bin) sqrt(x bin) bin {
	if len(x) <= 2 {
		v, _ := x.toUint64()
		return z.setUint64(sqrtUint64b(v))
	}
	if binAlias(z, x) {
		z = nil
	}

	c := uint(x.bitLen()-1) / 2
	a := bin(nil).setWord(1)
	d := uint(0)
	var t, u, r bin
	for s := bits.Len(c) - 1; s >= 0; s-- {
		e := d
		d = c >> uint(s)
		t = t.shr(x, 2*c-e-d+1)
		u, r = u.div(r, t, a)
		a = a.shl(a, d-e-1)
		a = a.add(a, u)
	}
	// a is either the answer or one too large
	t = t.sqr(a)
	if t.cmp(x) > 0 {
		subVW(a, a, 1)
		a = a.norm()
	}
	return z.set(a)
}

func sqrtUint64b(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	s := uint64(math.Sqrt(float64(v)))
	// float rounding is off by at most a few ulps near 2**64, and the seed
	// may land on 2**32 itself, whose square does not fit
	if s > 1<<32-1 {
		s = 1<<32 - 1
	}
	for s > 0 && s*s > v {
		s--
	}
	for v-s*s > 2*s { // (s+1)**2 <= v without overflow
		s++
	}
	return s
}
