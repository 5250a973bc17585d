package math

import "github.com/croussel/bignum"

// Log sets z to the natural logarithm of x rounded to prec significant
// digits and returns z.
//
// The argument is reduced to m ∈ [0.8, 1.0607) by splitting off the
// power of ten (free on a decimal), up to three doublings, and a power of
// 1.25 (at most eleven factors); all three factors are exact. ln m is evaluated with the
// inverse hyperbolic tangent series
//
//	ln m = 2·atanh(t), t = (m-1)/(m+1), atanh(t) = t + t³/3 + t⁵/5 + …
//
// which needs about a third of the terms of the log1p series. The
// constants ln 2, ln 1.25 and ln 10 for recombination come from the cache.
//
// Log panics with *Error if x <= 0 or prec <= 0.
func Log(z, x *bignum.Dec, prec int, c *Cache) *bignum.Dec {
	checkPrec("math.Log", prec)
	if x.Sign() <= 0 {
		panic(domainErr("math.Log", "logarithm of non-positive number "+x.String()))
	}
	c = ensure(c)

	if x.Cmp(bignum.One) == 0 {
		return z.SetInt64(0)
	}

	wp := prec + 10

	// x = m0 × 10**e with 0.1 <= m0 < 1. Arguments already in [0.1, 10)
	// keep e == 0: extracting a ten would make ln m cancel against e·ln10
	// and eat the digits of a result that is genuinely tiny when x is
	// near 1.
	e := x.Adjusted() + 1
	if e == 0 || e == 1 {
		e = 0
	}
	m := new(bignum.Dec).MulPow10(x, int32(-e))

	// double m into [0.8, 10): small m0 needs at most 3 doublings
	a := int64(0)
	for m.Cmp(point8) < 0 {
		m.Mul(m, two)
		a++
	}
	// factors of 1.25 bring the top of the range down: m/1.25 = 0.8*m;
	// even m just below 10 lands in [0.8486, 1.0607) within eleven of them
	b := int64(0)
	for m.Cmp(cut125) >= 0 {
		m.Mul(m, point8)
		b++
	}

	// ln x = ln m + e·ln10 - a·ln2 + b·ln1.25
	z = atanhLog(z, m, wp)
	if a != 0 {
		var t bignum.Dec
		t.Mul(bignum.New(a, 0), c.Ln2(wp))
		z.Sub(z, &t)
	}
	if b != 0 {
		var t bignum.Dec
		t.Mul(bignum.New(b, 0), c.Ln125(wp))
		z.Add(z, &t)
	}
	if e != 0 {
		// the e·ln10 term dominates; carry enough digits for it
		var t bignum.Dec
		t.Mul(bignum.New(e, 0), c.Ln10(wp+digitsOf(e)))
		z.Add(z, &t)
	}

	return z.RoundSig(z, prec, bignum.HalfEven)
}

func digitsOf(e int64) int {
	if e < 0 {
		e = -e
	}
	n := 1
	for e >= 10 {
		e /= 10
		n++
	}
	return n
}

// atanhLog sets z = 2·atanh((m-1)/(m+1)) at working precision wp. m must
// be close to 1.
func atanhLog(z, m *bignum.Dec, wp int) *bignum.Dec {
	num := new(bignum.Dec).Sub(m, bignum.One)
	den := new(bignum.Dec).Add(m, bignum.One)
	t := new(bignum.Dec).Quo(num, den, wp)
	z = atanhSeries(z, t, wp)
	z.Mul(z, two)
	return z
}

// atanhSeries sets z = atanh(t) = Σ t**(2k+1)/(2k+1) at working precision
// wp. |t| must be well below 1.
func atanhSeries(z, t *bignum.Dec, wp int) *bignum.Dec {
	sum := new(bignum.Dec).Set(t)
	tt := new(bignum.Dec).Mul(t, t)
	tt.RoundSig(tt, wp, bignum.HalfEven)
	term := new(bignum.Dec).Set(t)
	var u bignum.Dec
	for k := bignum.Word(3); ; k += 2 {
		term.Mul(term, tt)
		term.RoundSig(term, wp, bignum.HalfEven)
		if term.IsZero() || term.Adjusted() < sum.Adjusted()-int64(wp) {
			break
		}
		u.QuoWord(term, k, wp)
		sum.Add(sum, &u)
		if sum.Digits() > wp+_guardTrim {
			sum.RoundSig(sum, wp, bignum.HalfEven)
		}
	}
	return z.Set(sum)
}

// computeLn2 evaluates ln 2 = 2·atanh(1/3) at prec significant digits.
func computeLn2(prec int) *bignum.Dec {
	wp := prec + 5
	t := new(bignum.Dec).Quo(bignum.One, three, wp)
	z := atanhSeries(new(bignum.Dec), t, wp)
	z.Mul(z, two)
	return z.RoundSig(z, prec+2, bignum.HalfEven)
}

// computeLn125 evaluates ln 1.25 = 2·atanh(1/9) at prec significant digits.
func computeLn125(prec int) *bignum.Dec {
	wp := prec + 5
	t := new(bignum.Dec).Quo(bignum.One, nine, wp)
	z := atanhSeries(new(bignum.Dec), t, wp)
	z.Mul(z, two)
	return z.RoundSig(z, prec+2, bignum.HalfEven)
}

// Log10 sets z to the base-10 logarithm of x rounded to prec significant
// digits and returns z. Log10 panics with *Error if x <= 0 or prec <= 0.
func Log10(z, x *bignum.Dec, prec int, c *Cache) *bignum.Dec {
	checkPrec("math.Log10", prec)
	c = ensure(c)
	if x.Sign() > 0 {
		// exact powers of ten have an exact, integral logarithm
		a := x.Adjusted()
		var t bignum.Dec
		t.MulPow10(x, int32(-a))
		if t.Cmp(bignum.One) == 0 {
			return z.SetInt64(a)
		}
	}
	wp := prec + 10
	var t bignum.Dec
	Log(&t, x, wp, c)
	if t.IsZero() {
		return z.SetInt64(0)
	}
	z.Quo(&t, c.Ln10(wp), prec)
	return z
}

// LogBase sets z to the base-b logarithm of x rounded to prec significant
// digits and returns z.
//
// LogBase panics with *Error if x <= 0, if b is not a valid base (b <= 0
// or b == 1), or if prec <= 0.
func LogBase(z, x, b *bignum.Dec, prec int, c *Cache) *bignum.Dec {
	checkPrec("math.LogBase", prec)
	if b.Sign() <= 0 || b.Cmp(bignum.One) == 0 {
		panic(domainErr("math.LogBase", "invalid logarithm base "+b.String()))
	}
	c = ensure(c)
	wp := prec + 10
	var tx, tb bignum.Dec
	Log(&tx, x, wp, c)
	Log(&tb, b, wp, c)
	if tx.IsZero() {
		return z.SetInt64(0)
	}
	z.Quo(&tx, &tb, prec)
	return z
}
