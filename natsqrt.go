package bignum

import "math"

// natSqrtBinThreshold is the size, in Words, at which the decimal integer
// square root routes through the binary magnitude's precision-doubling
// algorithm instead of full-precision Newton steps.
const natSqrtBinThreshold = 300

// sqrt sets z = floor(sqrt(x)) and returns z.
func (z nat) sqrt(x nat) nat {
	n := len(x)
	if n <= 2 {
		v, _ := x.toUint64()
		return z.setUint64(sqrtUint64(v))
	}
	if alias(z, x) {
		z = nil
	}

	if n >= natSqrtBinThreshold {
		// hand off to the base-2 magnitude: its square root doubles the
		// working precision at every step and the divide-and-conquer
		// string conversions keep both crossings subquadratic.
		b := bin(nil).setDigits(string(x.utoa()))
		b = b.sqrt(b)
		return z.setDigits(string(b.utoa()))
	}

	// Newton's method, seeded from a hardware square root of the two most
	// significant words. The seed overestimates, so the sequence
	//   z' = floor((z + floor(x/z))/2)
	// decreases monotonically until it stops, at which point z is the
	// answer. See Brent & Zimmermann, Modern Computer Arithmetic, 1.13.
	e := n - 2
	f := float64(x[n-1])*_DB + float64(x[n-2])
	if e&1 != 0 {
		f *= _DB
		e--
	}
	// e is even; seed = ceil(sqrt(f)) * _DB**(e/2), nudged up to make it an
	// overestimate of sqrt(x) despite float rounding.
	s := uint64(math.Sqrt(f)) + 2
	z1 := nat(nil).setUint64(s)
	z1 = z1.shl(z1, uint(e/2)*_DW)
	var z2, q nat
	for {
		q, _ = q.div(nil, x, z1)
		z2 = z2.add(q, z1)
		z2, _ = z2.divW(z2, 2)
		if z2.cmp(z1) >= 0 {
			break
		}
		z1, z2 = z2, z1
	}
	return z.set(z1)
}

// sqrtUint64 returns floor(sqrt(v)).
func sqrtUint64(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	s := uint64(math.Sqrt(float64(v)))
	// float rounding can be off by one in either direction near 2**53
	for s*s > v {
		s--
	}
	for (s+1)*(s+1) <= v {
		s++
	}
	return s
}
