package bignum

// An Int represents a signed multi-precision integer in base 2**32.
// The zero value for an Int represents the value 0.
//
// Operations always take pointer arguments (*Int) rather than Int values,
// and each unique Int value requires its own unique *Int pointer.
type Int struct {
	neg bool // sign; zero is stored with neg == false
	abs bin  // absolute value of the integer
}

// NewInt allocates and returns a new Int set to x.
func NewInt(x int64) *Int {
	return new(Int).SetInt64(x)
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	neg := false
	if x < 0 {
		neg = true
		x = -x
	}
	z.abs = z.abs.setUint64(uint64(x))
	z.neg = neg
	return z
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	z.abs = z.abs.setUint64(x)
	z.neg = false
	return z
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z != x {
		z.abs = z.abs.set(x.abs)
		z.neg = x.neg
	}
	return z
}

// Sign returns -1, 0, or +1 depending on whether x < 0, x == 0, or x > 0.
func (x *Int) Sign() int {
	if len(x.abs) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x is 0.
func (x *Int) IsZero() bool { return len(x.abs) == 0 }

// BitLen returns the length of the absolute value of x in bits. The bit
// length of 0 is 0.
func (x *Int) BitLen() int { return x.abs.bitLen() }

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.abs = z.abs.set(x.abs)
	z.neg = len(z.abs) > 0 && !x.neg // 0 has no sign
	return z
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.abs = z.abs.set(x.abs)
	z.neg = false
	return z
}

// Add sets z to the sum x+y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	neg := x.neg
	if x.neg == y.neg {
		// x + y == x + y
		// (-x) + (-y) == -(x + y)
		z.abs = z.abs.add(x.abs, y.abs)
	} else {
		// x + (-y) == x - y == -(y - x)
		// (-x) + y == y - x == -(x - y)
		if x.abs.cmp(y.abs) >= 0 {
			z.abs = z.abs.sub(x.abs, y.abs)
		} else {
			neg = !neg
			z.abs = z.abs.sub(y.abs, x.abs)
		}
	}
	z.neg = len(z.abs) > 0 && neg // 0 has no sign
	return z
}

// Sub sets z to the difference x-y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	neg := x.neg
	if x.neg != y.neg {
		// x - (-y) == x + y
		// (-x) - y == -(x + y)
		z.abs = z.abs.add(x.abs, y.abs)
	} else {
		// x - y == x - y == -(y - x)
		// (-x) - (-y) == y - x == -(x - y)
		if x.abs.cmp(y.abs) >= 0 {
			z.abs = z.abs.sub(x.abs, y.abs)
		} else {
			neg = !neg
			z.abs = z.abs.sub(y.abs, x.abs)
		}
	}
	z.neg = len(z.abs) > 0 && neg // 0 has no sign
	return z
}

// Mul sets z to the product x*y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	if x == y {
		z.abs = z.abs.sqr(x.abs)
		z.neg = false
		return z
	}
	z.abs = z.abs.mul(x.abs, y.abs)
	z.neg = len(z.abs) > 0 && x.neg != y.neg // 0 has no sign
	return z
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x *Int) Cmp(y *Int) (r int) {
	// x cmp y == x cmp y
	// x cmp (-y) == x
	// (-x) cmp y == y
	// (-x) cmp (-y) == -(x cmp y)
	switch {
	case x == y:
		// nothing to do
	case x.neg == y.neg:
		r = x.abs.cmp(y.abs)
		if x.neg {
			r = -r
		}
	case x.neg:
		r = -1
	default:
		r = 1
	}
	return
}

// CmpAbs compares the absolute values of x and y and returns -1, 0 or +1.
func (x *Int) CmpAbs(y *Int) int {
	return x.abs.cmp(y.abs)
}

// QuoRem sets z to the quotient x/y and r to the remainder x%y, both
// truncated towards zero, and returns the pair (z, r).
//
// QuoRem panics with *Error if y == 0.
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int) {
	if len(y.abs) == 0 {
		panic(errorf(DivisionByZero, "Int.QuoRem", "division of %s by zero", x))
	}
	z.abs, r.abs = z.abs.div(r.abs, x.abs, y.abs)
	z.neg, r.neg = len(z.abs) > 0 && x.neg != y.neg, len(r.abs) > 0 && x.neg // 0 has no sign
	return z, r
}

// DivMod sets z to the quotient x div y and m to the modulus x mod y, with
// floor semantics: the quotient is rounded towards negative infinity and
// the modulus, when non-zero, takes the sign of the divisor, so that
// z*y + m == x always holds.
//
// DivMod panics with *Error if y == 0.
func (z *Int) DivMod(x, y, m *Int) (*Int, *Int) {
	var yc Int
	yc.Set(y) // y may alias z or m
	z.QuoRem(x, y, m)
	if len(m.abs) > 0 && m.neg != yc.neg {
		// truncation rounded towards zero; floor is one below
		z.Sub(z, intOne)
		m.Add(m, &yc)
	}
	return z, m
}

var intOne = NewInt(1)

// Div sets z to the quotient x div y with floor semantics and returns z.
// Div panics with *Error if y == 0.
func (z *Int) Div(x, y *Int) *Int {
	var m Int
	z.DivMod(x, y, &m)
	return z
}

// Mod sets z to the modulus x mod y with floor semantics (the result has
// the sign of y when non-zero) and returns z.
// Mod panics with *Error if y == 0.
func (z *Int) Mod(x, y *Int) *Int {
	var q Int
	q.DivMod(x, y, z)
	return z
}

// Pow sets z to x**n and returns z. Pow panics with *Error if n < 0.
func (z *Int) Pow(x *Int, n int64) *Int {
	if n < 0 {
		panic(errorf(DomainError, "Int.Pow", "negative exponent %d", n))
	}
	neg := x.neg && n&1 != 0
	p := bin(nil).set(x.abs)
	w := bin(nil).setWord(1)
	for n > 0 {
		if n&1 != 0 {
			w = w.mul(w, p)
		}
		n >>= 1
		if n > 0 {
			p = p.sqr(p)
		}
	}
	z.abs = z.abs.set(w)
	z.neg = len(z.abs) > 0 && neg
	return z
}

// Sqrt sets z to floor(sqrt(x)) and returns z.
// Sqrt panics with *Error if x < 0.
func (z *Int) Sqrt(x *Int) *Int {
	if x.neg {
		panic(errorf(DomainError, "Int.Sqrt", "square root of negative number %s", x))
	}
	z.abs = z.abs.sqrt(x.abs)
	z.neg = false
	return z
}

// Lsh sets z = x << n and returns z.
func (z *Int) Lsh(x *Int, n uint) *Int {
	z.abs = z.abs.shl(x.abs, n)
	z.neg = x.neg
	return z
}

// Rsh sets z = x >> n and returns z. The shift is arithmetic: for negative
// x it rounds the quotient towards negative infinity.
func (z *Int) Rsh(x *Int, n uint) *Int {
	if x.neg {
		// (-x) >> n == -((x-1)>>n + 1) == ^((x-1) >> n)
		t := z.abs.sub(x.abs, binOne)
		t = t.shr(t, n)
		z.abs = t.add(t, binOne)
		z.neg = true // z cannot be zero if x is negative
		return z
	}
	z.abs = z.abs.shr(x.abs, n)
	z.neg = false
	return z
}

// Int64 returns the int64 representation of x.
// If x cannot be represented in an int64, the result is undefined.
func (x *Int) Int64() int64 {
	v, _ := x.abs.toUint64()
	i := int64(v)
	if x.neg {
		i = -i
	}
	return i
}

// IsInt64 reports whether x can be represented as an int64.
func (x *Int) IsInt64() bool {
	if v, ok := x.abs.toUint64(); ok {
		return v <= 1<<63-1 || x.neg && v == 1<<63
	}
	return false
}

// Uint64 returns the uint64 representation of x.
// If x cannot be represented in a uint64, the result is undefined.
func (x *Int) Uint64() uint64 {
	v, _ := x.abs.toUint64()
	return v
}
