// Package math implements transcendental functions over bignum.Dec:
// exponential, logarithms, square and nth roots, the circular functions,
// and π.
//
// Every function takes the requested precision prec in significant decimal
// digits and an optional *Cache. Intermediate computation is carried at a
// working precision a few digits above prec and the result is rounded to
// prec with HalfEven. Passing the same Cache to successive calls lets them
// share the computed constants ln 2, ln 1.25, ln 10 and π; passing nil
// gives each call a private cache. A Cache is owned by its caller and is
// not safe for concurrent use.
package math

import "github.com/croussel/bignum"

// A Cache holds the cached constants shared by the transcendental
// functions, each together with the precision it was computed at. Values
// are recomputed on demand when a caller needs more precision, and reused
// directly for equal or lower precision.
type Cache struct {
	ln2   constant
	ln125 constant // ln 1.25
	ln10  constant
	pi    constant
}

type constant struct {
	val  *bignum.Dec
	prec int
}

// get returns the cached value at precision >= prec, recomputing via f if
// the cache holds fewer digits. The returned value is shared: callers must
// not use it as an operation receiver.
func (c *constant) get(prec int, f func(prec int) *bignum.Dec) *bignum.Dec {
	if c.val == nil || c.prec < prec {
		c.val = f(prec)
		c.prec = prec
	}
	return c.val
}

func ensure(c *Cache) *Cache {
	if c == nil {
		c = new(Cache)
	}
	return c
}

// Ln2 returns ln 2 to at least prec significant digits. The result is
// owned by the cache and must not be modified.
func (c *Cache) Ln2(prec int) *bignum.Dec {
	return c.ln2.get(prec, computeLn2)
}

// Ln125 returns ln 1.25 to at least prec significant digits. The result is
// owned by the cache and must not be modified.
func (c *Cache) Ln125(prec int) *bignum.Dec {
	return c.ln125.get(prec, computeLn125)
}

// Ln10 returns ln 10 to at least prec significant digits. The result is
// owned by the cache and must not be modified.
//
// Since 10 = 2**3 × 1.25, ln 10 is assembled from the other two cached
// constants rather than evaluated by its own series.
func (c *Cache) Ln10(prec int) *bignum.Dec {
	if c.ln10.val == nil || c.ln10.prec < prec {
		wp := prec + 5
		v := new(bignum.Dec).Mul(three, c.Ln2(wp))
		v.Add(v, c.Ln125(wp))
		c.ln10.val = v.RoundSig(v, prec+2, bignum.HalfEven)
		c.ln10.prec = prec
	}
	return c.ln10.val
}

// Pi returns π to at least prec significant digits. The result is owned by
// the cache and must not be modified.
func (c *Cache) Pi(prec int) *bignum.Dec {
	return c.pi.get(prec, computePi)
}
