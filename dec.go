package bignum

// A Dec is an arbitrary-precision decimal number
//
//	(-1)**neg × coef × 10**(-scale)
//
// A positive scale counts fractional digits; a negative scale denotes
// trailing integer zeros kept in exponent form ("1.23E+5" has coefficient
// 123 and scale -3). Zero is stored with neg == false and may carry any
// scale: arithmetic preserves the scale of zeros the same way it preserves
// the scale of any other value.
//
// Decimals are finite only. There are no infinities, NaNs or subnormals.
//
// The zero value for a Dec represents the value 0 with scale 0.
// Operations always take pointer arguments (*Dec) rather than Dec values.
// The receiver may alias any operand; it is overwritten with the result.
type Dec struct {
	neg   bool
	coef  nat
	scale int32
}

// Package-level constants. They are shared, read-only values: do not pass
// them as operation receivers.
var (
	Zero   = New(0, 0)
	One    = New(1, 0)
	NegOne = New(-1, 0)
)

// New returns a Dec with value coef × 10**(-scale).
func New(coef int64, scale int32) *Dec {
	z := new(Dec)
	if coef < 0 {
		z.neg = true
		coef = -coef
	}
	z.coef = z.coef.setUint64(uint64(coef))
	z.scale = scale
	return z
}

// FromInt64 returns a Dec with value x and scale 0.
func FromInt64(x int64) *Dec { return New(x, 0) }

// FromUint64 returns a Dec with value x and scale 0.
func FromUint64(x uint64) *Dec {
	z := new(Dec)
	z.coef = z.coef.setUint64(x)
	return z
}

// FromInt returns a Dec with the value of x and scale 0.
func FromInt(x *Int) *Dec {
	z := new(Dec)
	if len(x.abs) <= 2 {
		v, _ := x.abs.toUint64()
		z.coef = z.coef.setUint64(v)
	} else {
		z.coef = z.coef.setDigits(string(x.abs.utoa()))
	}
	z.neg = x.neg
	return z
}

// Set sets z to x and returns z.
func (z *Dec) Set(x *Dec) *Dec {
	if z != x {
		z.coef = z.coef.set(x.coef)
		z.neg = x.neg
		z.scale = x.scale
	}
	return z
}

// SetInt64 sets z to x with scale 0 and returns z.
func (z *Dec) SetInt64(x int64) *Dec {
	neg := false
	if x < 0 {
		neg = true
		x = -x
	}
	z.coef = z.coef.setUint64(uint64(x))
	z.neg = neg && len(z.coef) > 0
	z.scale = 0
	return z
}

// CoeffScale provides raw access to x: its coefficient as a little-endian
// Word slice in base 10**9, its scale, and its sign. The slice shares its
// underlying array with x and must not be modified.
func (x *Dec) CoeffScale() (coef []Word, scale int32, neg bool) {
	return x.coef, x.scale, x.neg
}

// SetCoeffScale sets z to (-1)**neg × coef × 10**(-scale), where coef is a
// little-endian Word slice in base 10**9, and returns z. The slice is
// normalized; z takes ownership of its underlying array.
func (z *Dec) SetCoeffScale(coef []Word, scale int32, neg bool) *Dec {
	z.coef = nat(coef).norm()
	z.neg = neg && len(z.coef) > 0
	z.scale = scale
	return z
}

// Scale returns x's scale: the number of fractional digits when positive.
func (x *Dec) Scale() int32 { return x.scale }

// Digits returns the number of significant digits of x's coefficient.
// Digits(0) == 0.
func (x *Dec) Digits() int { return int(x.coef.digits()) }

// Adjusted returns the adjusted exponent of x: the base-10 exponent of its
// most significant digit, floor(log10(|x|)). The result for zero is
// implementation-defined.
func (x *Dec) Adjusted() int64 {
	return int64(x.coef.digits()) - 1 - int64(x.scale)
}

// Sign returns -1, 0, or +1 depending on whether x < 0, x == 0, or x > 0.
func (x *Dec) Sign() int {
	if len(x.coef) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x is 0 (with any scale).
func (x *Dec) IsZero() bool { return len(x.coef) == 0 }

// IsInt reports whether x is an integer value.
func (x *Dec) IsInt() bool {
	if x.scale <= 0 || len(x.coef) == 0 {
		return true
	}
	if s := uint(x.scale); s < _DW {
		// fractional part within one word: a single remainder sweep
		return x.coef.modW(Word(pow10(s))) == 0
	}
	return x.coef.ntz() >= uint(x.scale)
}

// Neg sets z to -x and returns z.
func (z *Dec) Neg(x *Dec) *Dec {
	z.Set(x)
	z.neg = !z.neg && len(z.coef) > 0
	return z
}

// Abs sets z to |x| and returns z.
func (z *Dec) Abs(x *Dec) *Dec {
	z.Set(x)
	z.neg = false
	return z
}

// align returns the coefficients of x and y brought to the common scale
// max(x.scale, y.scale), along with that scale. At most one coefficient is
// reallocated.
func align(x, y *Dec) (xc, yc nat, scale int32) {
	switch {
	case x.scale == y.scale:
		return x.coef, y.coef, x.scale
	case x.scale < y.scale:
		d := uint(int64(y.scale) - int64(x.scale))
		return nat(nil).shl(x.coef, d), y.coef, y.scale
	default:
		d := uint(int64(x.scale) - int64(y.scale))
		return x.coef, nat(nil).shl(y.coef, d), x.scale
	}
}

// Add sets z to the sum x+y and returns z.
func (z *Dec) Add(x, y *Dec) *Dec {
	xc, yc, scale := align(x, y)
	yneg := y.neg // y may alias z

	z.neg = x.neg
	if x.neg == yneg {
		// x + y == x + y
		// (-x) + (-y) == -(x + y)
		z.coef = z.coef.add(xc, yc)
	} else {
		// x + (-y) == x - y == -(y - x)
		// (-x) + y == y - x == -(x - y)
		if xc.cmp(yc) >= 0 {
			z.coef = z.coef.sub(xc, yc)
		} else {
			z.neg = !z.neg
			z.coef = z.coef.sub(yc, xc)
		}
	}
	if len(z.coef) == 0 {
		z.neg = false
	}
	z.scale = scale
	return z
}

// Sub sets z to the difference x-y and returns z.
func (z *Dec) Sub(x, y *Dec) *Dec {
	xc, yc, scale := align(x, y)
	yneg := y.neg // y may alias z

	z.neg = x.neg
	if x.neg != yneg {
		// x - (-y) == x + y
		// (-x) - y == -(x + y)
		z.coef = z.coef.add(xc, yc)
	} else {
		// x - y == x - y == -(y - x)
		// (-x) - (-y) == y - x == -(x - y)
		if xc.cmp(yc) >= 0 {
			z.coef = z.coef.sub(xc, yc)
		} else {
			z.neg = !z.neg
			z.coef = z.coef.sub(yc, xc)
		}
	}
	if len(z.coef) == 0 {
		z.neg = false
	}
	z.scale = scale
	return z
}

// Mul sets z to the product x*y and returns z. Multiplication is always
// exact: the result scale is the sum of the operand scales.
func (z *Dec) Mul(x, y *Dec) *Dec {
	scale := checkScale("Dec.Mul", int64(x.scale)+int64(y.scale))
	neg := x.neg != y.neg
	if x == y {
		z.coef = z.coef.sqr(x.coef)
	} else {
		z.coef = z.coef.mul(x.coef, y.coef)
	}
	z.neg = neg && len(z.coef) > 0
	z.scale = scale
	return z
}

// MulPow10 sets z = x × 10**k and returns z. The operation is exact and
// costs only a scale adjustment.
func (z *Dec) MulPow10(x *Dec, k int32) *Dec {
	z.Set(x)
	z.scale = checkScale("Dec.MulPow10", int64(z.scale)-int64(k))
	return z
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y (scales are immaterial: 2 == 2.00)
//	+1 if x >  y
func (x *Dec) Cmp(y *Dec) int {
	sx, sy := x.Sign(), y.Sign()
	switch {
	case sx < sy:
		return -1
	case sx > sy:
		return 1
	case sx == 0:
		return 0
	}
	// same non-zero sign: compare magnitudes
	r := x.cmpAbs(y)
	if sx < 0 {
		r = -r
	}
	return r
}

// CmpAbs compares the absolute values of x and y and returns -1, 0 or +1.
func (x *Dec) CmpAbs(y *Dec) int {
	return x.cmpAbs(y)
}

func (x *Dec) cmpAbs(y *Dec) int {
	if len(x.coef) == 0 || len(y.coef) == 0 {
		switch {
		case len(x.coef) == 0 && len(y.coef) == 0:
			return 0
		case len(x.coef) == 0:
			return -1
		}
		return 1
	}
	// compare adjusted exponents before aligning: different magnitudes
	// never need an allocation
	ax, ay := x.Adjusted(), y.Adjusted()
	switch {
	case ax < ay:
		return -1
	case ax > ay:
		return 1
	}
	xc, yc, _ := align(x, y)
	return xc.cmp(yc)
}

// Pow sets z to x**n and returns z. For n >= 0 the result is exact and
// prec is ignored; for n < 0 the reciprocal of the exact power is computed
// to prec significant digits.
//
// Pow panics with *Error if x is zero and n < 0, or if prec <= 0 when a
// rounded result is required.
func (z *Dec) Pow(x *Dec, n int64, prec int) *Dec {
	if n < 0 {
		if len(x.coef) == 0 {
			panic(errorf(DivisionByZero, "Dec.Pow", "zero raised to negative power %d", n))
		}
		checkPrec("Dec.Pow", prec)
		var t Dec
		t.Pow(x, -n, 0)
		return z.Quo(One, &t, prec)
	}
	neg := x.neg && n&1 != 0
	scale := checkScale("Dec.Pow", int64(x.scale)*n)
	w := nat(nil).setWord(1)
	p := nat(nil).set(x.coef)
	for n > 0 {
		if n&1 != 0 {
			w = w.mul(w, p)
		}
		n >>= 1
		if n > 0 {
			p = p.sqr(p)
		}
	}
	z.coef = z.coef.set(w)
	z.neg = neg && len(z.coef) > 0
	z.scale = scale
	return z
}
