package math

import "github.com/croussel/bignum"

// Pi sets z to π rounded to prec significant digits and returns z.
// The value comes from the cache when one is supplied, so repeated calls
// at non-increasing precision are free.
//
// Pi panics with *Error if prec <= 0.
func Pi(z *bignum.Dec, prec int, c *Cache) *bignum.Dec {
	checkPrec("math.Pi", prec)
	c = ensure(c)
	return z.RoundSig(c.Pi(prec), prec, bignum.HalfEven)
}

// computePi evaluates π to prec significant digits with the Chudnovsky
// series,
//
//	640320**(3/2) / (12π) = Σ (-1)**k (6k)! (13591409+545140134k) / ((3k)! (k!)**3 640320**(3k))
//
// summed by binary splitting: P, Q and T accumulate the product and sum
// numerators as exact integers, so all the large multiplications run on
// the binary magnitude, and a single decimal division and square root
// finish the job. Each term contributes about 14.18 digits.
func computePi(prec int) *bignum.Dec {
	wp := prec + 12
	terms := int64(wp)/14 + 2

	_, q, t := chudBS(0, terms)

	// π = 426880·√10005·Q / T
	num := new(bignum.Int).Mul(q, bignum.NewInt(426880))

	z := new(bignum.Dec).Quo(bignum.FromInt(num), bignum.FromInt(t), wp)
	var s bignum.Dec
	s.Sqrt(bignum.New(10005, 0), wp)
	z.Mul(z, &s)
	return z.RoundSig(z, prec+2, bignum.HalfEven)
}

// chudBS returns the binary-splitting triple (P, Q, T) of the Chudnovsky
// series over the term range [a, b).
func chudBS(a, b int64) (p, q, t *bignum.Int) {
	if b-a == 1 {
		if a == 0 {
			return bignum.NewInt(1), bignum.NewInt(1), bignum.NewInt(13591409)
		}
		// P(a) = -(6a-5)(2a-1)(6a-1); the series alternates, so every
		// leaf carries the sign flip
		p = bignum.NewInt(6*a - 5)
		p.Mul(p, bignum.NewInt(2*a-1))
		p.Mul(p, bignum.NewInt(6*a-1))
		p.Neg(p)
		// Q(a) = a**3 · 640320**3/24
		q = bignum.NewInt(a)
		q.Mul(q, q)
		q.Mul(q, bignum.NewInt(a))
		q.Mul(q, chudC3over24)
		// T(a) = P(a)·(13591409 + 545140134a)
		t = bignum.NewInt(545140134 * a)
		t.Add(t, bignum.NewInt(13591409))
		t.Mul(t, p)
		return p, q, t
	}
	m := (a + b) / 2
	p1, q1, t1 := chudBS(a, m)
	p2, q2, t2 := chudBS(m, b)
	// P = P1·P2, Q = Q1·Q2, T = T1·Q2 + P1·T2
	p = new(bignum.Int).Mul(p1, p2)
	q = new(bignum.Int).Mul(q1, q2)
	t = t1.Mul(t1, q2)
	t.Add(t, new(bignum.Int).Mul(p1, t2))
	return p, q, t
}

// 640320**3 / 24
var chudC3over24 = func() *bignum.Int {
	c := bignum.NewInt(640320)
	c.Mul(c, c)
	c.Mul(c, bignum.NewInt(640320 / 24))
	return c
}()
