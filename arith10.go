package bignum

import "math/bits"

// A Word is a single digit of a multi-precision magnitude. Decimal
// magnitudes hold values in [0, _DB) per Word, binary magnitudes use the
// full 32 bits.
type Word uint32

const (
	_W = 32 // bits per Word

	_DW   = 9          // decimal digits per Word
	_DB   = 1e9        // decimal Word base
	_DMax = _DB - 1    // largest decimal Word
	_B    = 1 << 32    // binary Word base
	_M    = _B - 1     // largest binary Word
)

// Dec scales span int32 except its most negative value, so the range is
// symmetric; intermediate sums of two scales and a digit count are formed
// in int64, where they cannot overflow.
const (
	maxScale = 1<<31 - 1
	minScale = -maxScale
)

var pow10s = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000, 10000000000000000000,
}

func pow10(n uint) uint64 { return pow10s[n] }

var maxDigits = [...]uint{
	1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5,
	5, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10,
	10, 10, 11, 11, 11, 12, 12, 12, 13, 13, 13, 13, 14, 14, 14, 15,
	15, 15, 16, 16, 16, 16, 17, 17, 17, 18, 18, 18, 19, 19, 19, 20, 20,
}

// mag returns the magnitude of x such that 10**(mag-1) <= x < 10**mag.
// Returns 0 for x == 0.
func mag(x uint64) uint {
	d := maxDigits[bits.Len64(x)]
	if x < pow10(d-1) {
		d--
	}
	return d
}

func trailingZeroDigits(n uint64) uint {
	var d uint
	if n%10000000000000000 == 0 {
		n /= 10000000000000000
		d += 16
	}
	if n%100000000 == 0 {
		n /= 100000000
		d += 8
	}
	if n%10000 == 0 {
		n /= 10000
		d += 4
	}
	if n%100 == 0 {
		n /= 100
		d += 2
	}
	if n%10 == 0 {
		d++
	}
	return d
}

//-----------------------------------------------------------------------------
// Arithmetic primitives, base 10**9
//
// Words are 32 bits wide, so a single uint64 holds any product of two decimal
// Words plus two carries, and the base split is a plain division by _DB.

// z1*_DB + z0 = x*y
func mul10WW(x, y Word) (z1, z0 Word) {
	t := uint64(x) * uint64(y)
	return Word(t / _DB), Word(t % _DB)
}

// q = (u1*_DB + u0 - r)/v. Requires u1 < v.
func div10WW(u1, u0, v Word) (q, r Word) {
	t := uint64(u1)*_DB + uint64(u0)
	return Word(t / uint64(v)), Word(t % uint64(v))
}

func add10WWW(x, y, cIn Word) (s, c Word) {
	t := uint64(x) + uint64(y) + uint64(cIn)
	if t >= _DB {
		return Word(t - _DB), 1
	}
	return Word(t), 0
}

func sub10WWW(x, y, bIn Word) (d, b Word) {
	t := int64(x) - int64(y) - int64(bIn)
	if t < 0 {
		return Word(t + _DB), 1
	}
	return Word(t), 0
}

// The resulting carry c is either 0 or 1.
func add10VV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = add10WWW(x[i], y[i], c)
	}
	return
}

// The resulting carry c is either 0 or 1.
func sub10VV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = sub10WWW(x[i], y[i], c)
	}
	return
}

// add10VW adds y to x. The resulting carry c is either 0 or 1.
func add10VW(z, x []Word, y Word) (c Word) {
	if len(z) == 0 {
		return y
	}
	z[0], c = add10WWW(x[0], y, 0)
	// propagate carry
	for i := 1; i < len(z) && i < len(x); i++ {
		s := x[i] + c
		if s < _DB {
			z[i] = s
			// copy remaining digits
			copy(z[i+1:], x[i+1:])
			return 0
		}
		z[i] = 0
	}
	return
}

func sub10VW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		if x[i] >= c {
			z[i] = x[i] - c
			copy(z[i+1:], x[i+1:])
			return 0
		}
		z[i] = x[i] + _DB - c
		c = 1
	}
	return
}

// shl10VU sets z to x*(10**s), s < _DW, and returns the digits shifted out
// at the top. Requires len(z) == len(x). The loop runs from the most
// significant word down so that z may sit at or above x in the same array
// (as it does for in-place shifts with a word offset).
func shl10VU(z, x []Word, s uint) (r Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 || len(x) == 0 {
		return 0
	}
	d, m := Word(pow10(_DW-s)), Word(pow10(s))
	var l Word
	r, l = x[len(x)-1]/d, x[len(x)-1]%d
	for i := len(z) - 1; i > 0; i-- {
		t := l
		l = x[i-1] % d
		z[i] = t*m + x[i-1]/d
	}
	z[0] = l * m
	return r
}

// shr10VU sets z to x/(10**s), s < _DW, and returns the shifted-out low
// digits of x[0]. The loop runs upward so that z may sit at or below x in
// the same array.
func shr10VU(z, x []Word, s uint) (r Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 || len(x) == 0 {
		return 0
	}
	d, m := Word(pow10(s)), Word(pow10(_DW-s))
	r = x[0] % d
	for i := 0; i < len(z) && i < len(x); i++ {
		t := x[i] / d
		if i+1 < len(x) {
			t += x[i+1] % d * m
		}
		z[i] = t
	}
	return r
}

func mulAdd10VWW(z, x []Word, y, r Word) (c Word) {
	t := uint64(r)
	for i := 0; i < len(z) && i < len(x); i++ {
		t += uint64(x[i]) * uint64(y)
		z[i] = Word(t % _DB)
		t /= _DB
	}
	return Word(t)
}

func addMul10VVW(z, x []Word, y Word) (c Word) {
	var t uint64
	for i := 0; i < len(z) && i < len(x); i++ {
		t += uint64(z[i]) + uint64(x[i])*uint64(y)
		z[i] = Word(t % _DB)
		t /= _DB
	}
	return Word(t)
}

// subMul10VVW sets z -= x*y and returns the borrow. It fuses the multiply
// and subtract sweeps of the long-division inner loop into one pass; with
// 32-bit words both the product split and the signed difference fit native
// 64-bit arithmetic.
func subMul10VVW(z, x []Word, y Word) (b Word) {
	var bw uint64 // running borrow, < _DB+1
	for i := 0; i < len(z) && i < len(x); i++ {
		p := uint64(x[i])*uint64(y) + bw
		d := int64(z[i]) - int64(p%_DB)
		bw = p / _DB
		if d < 0 {
			d += _DB
			bw++
		}
		z[i] = Word(d)
	}
	return Word(bw)
}

func div10VWW(z, x []Word, y, xn Word) (r Word) {
	t := uint64(xn)
	for i := len(z) - 1; i >= 0; i-- {
		t = t*_DB + uint64(x[i])
		z[i] = Word(t / uint64(y))
		t %= uint64(y)
	}
	return Word(t)
}

func greaterThan(x1, x2, y1, y2 Word) bool {
	return x1 > y1 || x1 == y1 && x2 > y2
}

func same(x, y []Word) bool {
	return len(x) == len(y) && len(x) > 0 && &x[0] == &y[0]
}

// alias reports whether x and y share the same base array.
func alias(x, y []Word) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}
