package bignum

// Scale-aware truncating division.
//
// The quotient is computed from at most a few words more than the requested
// precision needs: a dividend with far more words than the divisor is scaled
// up only by the missing amount, and operands with words to spare beyond the
// target precision have their low words truncated before the long division
// runs. That bounds the cost by the requested precision instead of the
// operand sizes.

// truncationGuard is the number of extra low Words kept on a truncated
// divisor.
const truncationGuard = 4

// Quo sets z to the quotient x/y rounded to prec significant digits with
// HalfEven, and returns z.
//
// When the division is exact and no operand truncation occurred, trailing
// zeros are stripped from the result down to the ideal scale
// x.Scale()-y.Scale(), so Quo of "10" by "5" yields "2", not "2.000...".
//
// Quo panics with *Error if y is zero or prec <= 0.
func (z *Dec) Quo(x, y *Dec, prec int) *Dec {
	checkPrec("Dec.Quo", prec)
	if len(y.coef) == 0 {
		panic(errorf(DivisionByZero, "Dec.Quo", "division of %s by zero", x))
	}
	idealScale := int64(x.scale) - int64(y.scale)
	if len(x.coef) == 0 {
		z.coef = z.coef[:0]
		z.neg = false
		z.scale = checkScale("Dec.Quo", idealScale)
		return z
	}
	neg := x.neg != y.neg

	neededW := (prec+_DW-1)/_DW + 2
	truncated := false

	// divisor: drop low words beyond the guard margin
	v := y.coef
	dropV := 0
	if len(y.coef) > neededW+truncationGuard {
		dropV = len(y.coef) - (neededW + truncationGuard)
		v = y.coef[dropV:] // top word unchanged, still normalized
		truncated = true
	}

	// dividend: scale up by the missing words, or drop the low words the
	// computation cannot need, so that the quotient comes out neededW
	// words long
	extraW := neededW + len(v) - len(x.coef)
	var u nat
	switch {
	case extraW >= 0:
		u = nat(nil).shl(x.coef, uint(extraW)*_DW)
	default:
		u = nat(nil).shr(x.coef, uint(-extraW)*_DW)
		truncated = true
	}

	q, r := nat(nil).div(nil, u, v)

	// scale bookkeeping: u ≈ xc·10**(9·extraW), v = yc·10**(-9·dropV), so
	// q ≈ (x/y)·10**(scaleX - scaleY + 9·extraW + 9·dropV)
	scale := idealScale + int64(extraW)*_DW + int64(dropV)*_DW

	exact := !truncated && len(r) == 0

	// round to prec significant digits
	if d := int(q.digits()) - prec; d > 0 {
		if exact && q.sticky(uint(d)) != 0 {
			exact = false
		}
		q = roundCoef(q, uint(d), HalfEven, neg)
		scale -= int64(d)
		if int(q.digits()) > prec {
			// rounding carried all the way up (999... became 1000...);
			// re-truncate the exact trailing zero
			q = q.shr(q, 1)
			scale--
		}
	}

	if exact {
		// the quotient is mathematically exact: strip trailing zeros,
		// but never below the ideal scale
		if s := strippable(q, scale, idealScale); s > 0 {
			q = q.shr(q, s)
			scale -= int64(s)
		}
	}

	z.coef = z.coef.set(q)
	z.neg = neg && len(z.coef) > 0
	z.scale = checkScale("Dec.Quo", scale)
	return z
}

// strippable returns how many trailing zeros may be removed from q without
// lowering scale below ideal.
func strippable(q nat, scale, ideal int64) uint {
	n := q.ntz()
	if n == 0 || scale <= ideal {
		return 0
	}
	if room := scale - ideal; int64(n) > room {
		n = uint(room)
	}
	return n
}

// QuoWord sets z to the quotient x/y truncated to prec significant digits
// and returns z. It is the dedicated scalar path used by series loops: the
// divisor never becomes a Dec and the division is a single sweep.
//
// QuoWord panics with *Error if y is 0, y >= 10**9, or prec <= 0.
func (z *Dec) QuoWord(x *Dec, y Word, prec int) *Dec {
	checkPrec("Dec.QuoWord", prec)
	if y == 0 {
		panic(errorf(DivisionByZero, "Dec.QuoWord", "division of %s by zero", x))
	}
	if y >= _DB {
		panic(errorf(ConversionError, "Dec.QuoWord", "divisor %d out of word range", y))
	}
	if len(x.coef) == 0 {
		z.coef = z.coef[:0]
		z.neg = false
		z.scale = x.scale
		return z
	}

	// pad so the truncated quotient still carries prec significant digits
	pad := 0
	if d := prec + 2*_DW - int(x.coef.digits()); d > 0 {
		pad = (d + _DW - 1) / _DW
	}
	u := x.coef
	if pad > 0 {
		u = nat(nil).shl(u, uint(pad)*_DW)
	}
	q, _ := nat(nil).divW(u, y)
	scale := int64(x.scale) + int64(pad)*_DW

	// truncate excess digits to keep series iterations from growing
	if d := int(q.digits()) - prec; d > 0 {
		q = q.shr(q, uint(d))
		scale -= int64(d)
	}

	z.coef = z.coef.set(q)
	z.neg = x.neg && len(z.coef) > 0
	z.scale = checkScale("Dec.QuoWord", scale)
	return z
}

// DivInt sets z to the integer quotient x // y (floor division) and
// returns z. The result has scale 0.
//
// DivInt panics with *Error if y is zero.
func (z *Dec) DivInt(x, y *Dec) *Dec {
	var r Dec
	z.DivMod(x, y, &r)
	return z
}

// Mod sets z to x mod y with floor semantics: the result, when non-zero,
// takes the sign of the divisor y, and x == (x//y)*y + (x mod y) holds
// exactly.
//
// Mod panics with *Error if y is zero.
func (z *Dec) Mod(x, y *Dec) *Dec {
	var q Dec
	q.DivMod(x, y, z)
	return z
}

// DivMod sets z to the floored integer quotient x // y and m to the
// remainder x mod y, and returns the pair (z, m). The quotient has scale 0;
// the remainder carries the common scale of the aligned operands and the
// sign of the divisor, so that z*y + m == x exactly.
//
// DivMod panics with *Error if y is zero.
func (z *Dec) DivMod(x, y, m *Dec) (*Dec, *Dec) {
	if len(y.coef) == 0 {
		panic(errorf(DivisionByZero, "Dec.DivMod", "division of %s by zero", x))
	}
	xc, yc, scale := align(x, y)
	xneg, yneg := x.neg, y.neg

	q, r := nat(nil).div(nil, xc, yc)

	// floor adjustment: the magnitudes divide truncated; when the operand
	// signs differ and there is a remainder, the floored quotient is one
	// further from zero and the remainder flips to the divisor's side.
	if xneg != yneg && len(r) != 0 {
		q = q.add(q, natOne)
		r = r.sub(yc, r)
	}

	z.coef = z.coef.set(q)
	z.neg = xneg != yneg && len(z.coef) > 0
	z.scale = 0

	m.coef = m.coef.set(r)
	m.neg = yneg && len(m.coef) > 0
	m.scale = scale
	return z, m
}
