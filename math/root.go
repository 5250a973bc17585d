package math

import (
	"math"
	"strconv"

	"github.com/croussel/bignum"
)

// maxRootIndex bounds the root index for the direct Newton iteration.
const maxRootIndex = 1000

// Root sets z to the n-th root of x rounded to prec significant digits and
// returns z.
//
// The root is found by the direct Newton iteration
//
//	r' = ((n-1)·r + x/r**(n-1)) / n
//
// seeded from a float64 estimate and run with doubling precision, so the
// total work is about twice that of the last iteration. Perfect powers are
// detected — a result whose fraction rounds away to at least nine zeros is
// confirmed with an exact power check — and returned exactly, so the cube
// root of 27 is 3, not 3.0000....
//
// Odd roots of negative values are negated roots of |x|. Root panics with
// *Error for even roots of negative values, n == 0, |n| > 1000, or
// prec <= 0.
func Root(z, x *bignum.Dec, n int64, prec int, c *Cache) *bignum.Dec {
	checkPrec("math.Root", prec)
	switch {
	case n == 0:
		panic(domainErr("math.Root", "zeroth root"))
	case n > maxRootIndex || n < -maxRootIndex:
		panic(domainErr("math.Root", "root index "+strconv.FormatInt(n, 10)+" out of range"))
	}
	if n < 0 {
		// x**(-1/n) = 1 / x**(1/n)
		var t bignum.Dec
		Root(&t, x, -n, prec+5, c)
		return z.Quo(bignum.One, &t, prec)
	}
	if x.IsZero() {
		return z.SetInt64(0)
	}
	neg := false
	ax := x
	if x.Sign() < 0 {
		if n&1 == 0 {
			panic(domainErr("math.Root", "even root of negative number "+x.String()))
		}
		neg = true
		ax = new(bignum.Dec).Abs(x)
	}
	if n == 1 {
		z.RoundSig(ax, prec, bignum.HalfEven)
		if neg {
			z.Neg(z)
		}
		return z
	}
	if n == 2 && !neg {
		return z.Sqrt(x, prec)
	}

	wp := prec + 15
	r := rootSeed(ax, n)

	// precision ladder: each Newton step doubles the accurate digits
	var ladder []int
	for p := wp; p > 18; p = p/2 + 1 {
		ladder = append(ladder, p)
	}
	var t, d, p bignum.Dec
	nd := bignum.New(n, 0)
	n1 := bignum.New(n-1, 0)
	for i := len(ladder) - 1; i >= 0; i-- {
		rootStep(r, ax, n, ladder[i], &t, &d, &p, nd, n1)
	}
	// one extra full-precision pass tightens the last digits
	rootStep(r, ax, n, wp, &t, &d, &p, nd, n1)

	z.RoundSig(r, prec, bignum.HalfEven)

	// perfect-power detection: nine or more trailing zeros hint at an
	// exact root; strip them and confirm with an exact power check before
	// committing
	if ntz := decNtz(z); ntz >= 9 && z.Scale() > 0 {
		strip := ntz
		if int64(strip) > int64(z.Scale()) {
			strip = uint(z.Scale())
		}
		var cand, back bignum.Dec
		cand.Quantize(z, z.Scale()-int32(strip), bignum.Down)
		back.Pow(&cand, n, 0)
		if back.Cmp(ax) == 0 {
			z.Set(&cand)
		}
	}
	if neg {
		z.Neg(z)
	}
	return z
}

// rootStep performs one Newton step r' = ((n-1)·r + x/r**(n-1))/n at
// precision p10, updating r in place. t, d and pw are scratch.
func rootStep(r, x *bignum.Dec, n int64, p10 int, t, d, pw, nd, n1 *bignum.Dec) {
	powRound(pw, r, n-1, p10+5)
	t.Quo(x, pw, p10+5) // x / r**(n-1)
	d.Mul(n1, r)
	t.Add(t, d)       // + (n-1)·r
	t.Quo(t, nd, p10) // / n
	r.Set(t)
}

// powRound sets z = x**n with each partial product rounded to prec
// significant digits, bounding intermediate growth.
func powRound(z, x *bignum.Dec, n int64, prec int) *bignum.Dec {
	z.Set(bignum.One)
	var p bignum.Dec
	p.Set(x)
	for n > 0 {
		if n&1 != 0 {
			z.Mul(z, &p)
			z.RoundSig(z, prec, bignum.HalfEven)
		}
		n >>= 1
		if n > 0 {
			p.Mul(&p, &p)
			p.RoundSig(&p, prec, bignum.HalfEven)
		}
	}
	return z
}

// decNtz counts the trailing zero digits of z's coefficient.
func decNtz(z *bignum.Dec) uint {
	coef, _, _ := z.CoeffScale()
	for i, d := range coef {
		if d != 0 {
			n := uint(i) * 9
			for d%10 == 0 {
				d /= 10
				n++
			}
			return n
		}
	}
	return 0
}

// rootSeed builds a float64-seeded first approximation of x**(1/n),
// accurate to roughly a dozen digits.
func rootSeed(x *bignum.Dec, n int64) *bignum.Dec {
	// x ≈ f × 10**e with f in [1, 10); compute in logarithms to keep any
	// exponent range representable in a float64
	e := x.Adjusted()
	var m bignum.Dec
	m.MulPow10(x, int32(-e))
	f, _ := m.Float64()

	lg := (math.Log10(f) + float64(e)) / float64(n)
	ip := math.Floor(lg)
	g := math.Pow(10, lg-ip) // in [1, 10)

	seed := bignum.MustDec(strconv.FormatFloat(g, 'e', 15, 64))
	return seed.MulPow10(seed, int32(ip))
}

// PowRat sets z to x**(a/b) rounded to prec significant digits and returns
// z: the fractional power decomposes into integer_power(integer_root(x, b), a).
//
// PowRat panics with *Error under the same conditions as Root, and for
// b == 0.
func PowRat(z, x *bignum.Dec, a, b int64, prec int, c *Cache) *bignum.Dec {
	checkPrec("math.PowRat", prec)
	if b == 0 {
		panic(domainErr("math.PowRat", "zero root index"))
	}
	if b < 0 {
		a, b = -a, -b
	}
	if a == 0 {
		return z.Set(bignum.One)
	}
	wp := prec + 10
	var r bignum.Dec
	Root(&r, x, b, wp, c)
	if a < 0 {
		var t bignum.Dec
		powRound(&t, &r, -a, wp)
		return z.Quo(bignum.One, &t, prec)
	}
	powRound(z, &r, a, wp)
	return z.RoundSig(z, prec, bignum.HalfEven)
}
