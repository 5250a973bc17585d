package math

import "github.com/croussel/bignum"

// Circular functions. The argument is reduced modulo π/2 with a cached π,
// the Taylor series is evaluated on the reduced argument (|r| <= π/4 + ε)
// and the quadrant identity recovers the result. Arguments close to a
// multiple of π/2 cancel against the reduction, so the guard digits grow
// adaptively, up to roughly a hundred extra digits.

// trigGuard is the initial number of guard digits for argument reduction.
const (
	trigGuard    = 35
	trigGuardMax = 99
)

// Sin sets z to the sine of x (in radians) rounded to prec significant
// digits and returns z. Sin panics with *Error if prec <= 0.
func Sin(z, x *bignum.Dec, prec int, c *Cache) *bignum.Dec {
	checkPrec("math.Sin", prec)
	c = ensure(c)
	if x.IsZero() {
		return z.SetInt64(0)
	}
	r, quad := reduceHalfPi(x, prec, c)
	wp := prec + 10
	var s bignum.Dec
	switch quad {
	case 0:
		sinTaylor(&s, r, wp)
	case 1:
		cosTaylor(&s, r, wp)
	case 2:
		sinTaylor(&s, r, wp)
		s.Neg(&s)
	default:
		cosTaylor(&s, r, wp)
		s.Neg(&s)
	}
	return z.RoundSig(&s, prec, bignum.HalfEven)
}

// Cos sets z to the cosine of x (in radians) rounded to prec significant
// digits and returns z. Cos panics with *Error if prec <= 0.
func Cos(z, x *bignum.Dec, prec int, c *Cache) *bignum.Dec {
	checkPrec("math.Cos", prec)
	c = ensure(c)
	if x.IsZero() {
		return z.Set(bignum.One)
	}
	r, quad := reduceHalfPi(x, prec, c)
	wp := prec + 10
	var s bignum.Dec
	switch quad {
	case 0:
		cosTaylor(&s, r, wp)
	case 1:
		sinTaylor(&s, r, wp)
		s.Neg(&s)
	case 2:
		cosTaylor(&s, r, wp)
		s.Neg(&s)
	default:
		sinTaylor(&s, r, wp)
	}
	return z.RoundSig(&s, prec, bignum.HalfEven)
}

// Tan sets z to the tangent of x (in radians) rounded to prec significant
// digits and returns z. The argument is reduced once; sine and cosine are
// evaluated jointly on the same reduced value.
//
// Tan panics with *Error if prec <= 0.
func Tan(z, x *bignum.Dec, prec int, c *Cache) *bignum.Dec {
	checkPrec("math.Tan", prec)
	c = ensure(c)
	if x.IsZero() {
		return z.SetInt64(0)
	}
	r, quad := reduceHalfPi(x, prec, c)
	wp := prec + 10
	var sn, cs bignum.Dec
	sinTaylor(&sn, r, wp)
	cosTaylor(&cs, r, wp)
	// tan(r + k·π/2) is tan r for even k and -1/tan r for odd k
	if quad&1 == 0 {
		z.Quo(&sn, &cs, prec)
	} else {
		z.Quo(&cs, &sn, prec)
		z.Neg(z)
	}
	return z
}

// reduceHalfPi reduces x modulo π/2 and returns the remainder r with
// |r| <= π/4 (up to reduction error) and the quadrant index (x - r)/(π/2)
// mod 4. Guard digits are increased and the reduction redone when
// cancellation eats into the budget.
func reduceHalfPi(x *bignum.Dec, prec int, c *Cache) (*bignum.Dec, int) {
	// digits of x's integer part are lost to the reduction up front
	base := int(x.Adjusted()) + 1
	if base < 0 {
		base = 0
	}
	for guard := trigGuard; ; guard += trigGuardMax - trigGuard {
		wp := prec + base + guard
		pi := c.Pi(wp)
		var halfPi bignum.Dec
		halfPi.QuoWord(pi, 2, wp)

		// k = round(x / (π/2)), r = x - k·(π/2)
		var k bignum.Dec
		k.Quo(x, &halfPi, wp)
		k.Round(&k, 0, bignum.HalfEven)

		r := new(bignum.Dec)
		if k.IsZero() {
			r.Set(x)
			return r, 0
		}
		var t bignum.Dec
		t.Mul(&k, &halfPi)
		r.Sub(x, &t)

		// cancellation check: the reduced value must still carry prec
		// digits below the guard
		if guard >= trigGuardMax || r.IsZero() ||
			r.Adjusted() > -int64(guard)/2 {
			ki, err := k.Int64()
			quad := 0
			if err == nil {
				quad = int(((ki % 4) + 4) % 4)
			} else {
				// k exceeds an int64; its low two bits (two's complement
				// for negative k) are exactly k mod 4
				bi, _ := k.Integer()
				quad = int(bi.Bit(0) + 2*bi.Bit(1))
			}
			return r, quad
		}
	}
}

// sinTaylor sets z to the sine of r by series at working precision wp.
// |r| must be at most about 1.
func sinTaylor(z, r *bignum.Dec, wp int) *bignum.Dec {
	sum := new(bignum.Dec).Set(r)
	r2 := new(bignum.Dec).Mul(r, r)
	r2.RoundSig(r2, wp, bignum.HalfEven)
	term := new(bignum.Dec).Set(r)
	for k := bignum.Word(1); ; k++ {
		// term *= -r² / ((2k)(2k+1))
		term.Mul(term, r2)
		term.QuoWord(term, 2*k, wp)
		term.QuoWord(term, 2*k+1, wp)
		term.Neg(term)
		if term.IsZero() || term.Adjusted() < sum.Adjusted()-int64(wp) {
			break
		}
		sum.Add(sum, term)
		if sum.Digits() > wp+_guardTrim {
			sum.RoundSig(sum, wp, bignum.HalfEven)
		}
	}
	return z.Set(sum)
}

// cosTaylor sets z to the cosine of r by series at working precision wp.
// |r| must be at most about 1.
func cosTaylor(z, r *bignum.Dec, wp int) *bignum.Dec {
	sum := new(bignum.Dec).Set(bignum.One)
	r2 := new(bignum.Dec).Mul(r, r)
	r2.RoundSig(r2, wp, bignum.HalfEven)
	term := new(bignum.Dec).Set(bignum.One)
	for k := bignum.Word(1); ; k++ {
		// term *= -r² / ((2k-1)(2k))
		term.Mul(term, r2)
		term.QuoWord(term, 2*k-1, wp)
		term.QuoWord(term, 2*k, wp)
		term.Neg(term)
		if term.IsZero() || term.Adjusted() < -int64(wp) {
			break
		}
		sum.Add(sum, term)
		if sum.Digits() > wp+_guardTrim {
			sum.RoundSig(sum, wp, bignum.HalfEven)
		}
	}
	return z.Set(sum)
}
