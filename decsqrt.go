package bignum

// Sqrt sets z to the square root of x rounded to prec significant digits
// and returns z.
//
// The coefficient is rescaled by an even power of ten so that its integer
// square root carries prec+2 digits, the root is taken with nat.sqrt, and
// a multiply-back detects exact results. Exact roots are rescaled to the
// ideal exponent (half of x's), so Sqrt of "4" is "2" and of "100" is
// "10". Inexact roots get their last digit nudged off 0 and 5 before the
// final HalfEven rounding, which keeps the rounded result correct.
//
// Sqrt panics with *Error if x < 0 or prec <= 0.
func (z *Dec) Sqrt(x *Dec, prec int) *Dec {
	checkPrec("Dec.Sqrt", prec)
	if x.neg {
		panic(errorf(DomainError, "Dec.Sqrt", "square root of negative number %s", x))
	}
	if len(x.coef) == 0 {
		// the ideal scale of a zero result is half the input's,
		// rounded towards positive scales
		z.coef = z.coef[:0]
		z.neg = false
		s := int64(x.scale)
		z.scale = int32((s + s&1) / 2)
		return z
	}

	// make the scale even so it can be halved exactly
	c := x.coef
	scale := int64(x.scale)
	if scale&1 != 0 {
		c = nat(nil).shl(c, 1)
		scale++
	}

	// scale the coefficient up by 10**(2t) so the root has prec+2 digits
	digits := int64(c.digits())
	t := int64(prec+2) - (digits+1)/2
	if t < 0 {
		t = 0
	}
	c2 := nat(nil).shl(c, uint(2*t))
	r := nat(nil).sqrt(c2)
	rscale := scale/2 + t

	// exactness check: multiply back and compare
	exact := nat(nil).sqr(r).cmp(c2) == 0

	if exact {
		// rescale to the ideal exponent by stripping the artificial
		// scaling; the root of the even-scaled coefficient keeps its own
		// trailing zeros (sqrt of "100" stays "10")
		if t > 0 {
			r = r.shr(r, uint(t))
			rscale -= t
		}
		z.coef = z.coef.set(r)
		z.neg = false
		z.scale = checkScale("Dec.Sqrt", rscale)
		return z
	}

	// nudge an inexact root off 0 and 5 so the final rounding cannot sit
	// on a tie boundary
	if d := r.digit(0); d == 0 || d == 5 {
		r = nat(nil).add(r, natOne)
	}
	z.coef = z.coef.set(r)
	z.neg = false
	z.scale = checkScale("Dec.Sqrt", rscale)
	return z.RoundSig(z, prec, HalfEven)
}
