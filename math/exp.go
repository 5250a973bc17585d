package math

import (
	"math"

	"github.com/croussel/bignum"
)

// Exp sets z to e**x rounded to prec significant digits and returns z.
//
// The argument is reduced by M halvings with M ≈ ⌈√(3.322·prec)⌉ (plus
// enough to cancel the magnitude of x): y = x/2**M is computed exactly by
// multiplying the coefficient by 5**M and raising the scale, the Taylor
// series of e**y then converges in roughly M terms, and the result is
// squared M times. Squaring amplifies the error, so ⌊0.35·M⌋+3 guard
// digits are carried on top of the usual buffer.
//
// Exp panics with *Error if prec <= 0, or with an Overflow error if the
// result's exponent cannot be represented.
func Exp(z, x *bignum.Dec, prec int, c *Cache) *bignum.Dec {
	checkPrec("math.Exp", prec)
	if x.IsZero() {
		return z.Set(bignum.One)
	}

	// number of halvings: the square-root rule balances series terms
	// against squarings, and the magnitude of x adds ⌈log2 |x|⌉ more
	m0 := int(math.Ceil(math.Sqrt(3.322 * float64(prec))))
	M := m0
	if a := x.Adjusted(); a >= 0 {
		if a > 9 {
			// e**(10**10) does not fit the representable exponent range
			panic(overflowErr("math.Exp", x))
		}
		M += int(math.Ceil(float64(a+1) * 3.322))
	} else if a < -1 {
		// tiny argument: the series converges fast on its own; reduce
		// less, never below zero
		M += int(a+1) * 3
		if M < 0 {
			M = 0
		}
	}

	wp := prec + 10 + M*35/100 + 3

	// y = x / 2**M, exactly: coefficient × 5**M, scale += M
	y := new(bignum.Dec).Pow(five, int64(M), 0)
	y.Mul(x, y)
	y.MulPow10(y, int32(-M))

	z = expTaylor(z, y, wp)

	// undo the reduction: z = z**(2**M)
	for i := 0; i < M; i++ {
		z.Mul(z, z)
		z.RoundSig(z, wp, bignum.HalfEven)
	}

	return z.RoundSig(z, prec, bignum.HalfEven)
}

// expTaylor sets z to the Taylor series of e**y at working precision wp.
// |y| must be well below 1.
func expTaylor(z, y *bignum.Dec, wp int) *bignum.Dec {
	sum := new(bignum.Dec).Set(bignum.One)
	sum.Add(sum, y)
	term := new(bignum.Dec).Set(y)
	for k := bignum.Word(2); ; k++ {
		term.Mul(term, y)
		term.QuoWord(term, k, wp)
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

// _guardTrim bounds how far a series accumulator may grow beyond the
// working precision before it is renormalized.
const _guardTrim = 2 * 9

func checkPrec(op string, prec int) {
	if prec <= 0 {
		panic(&bignum.Error{Kind: bignum.PrecisionError, Op: op,
			Msg: "requested precision is not positive"})
	}
}

func overflowErr(op string, x *bignum.Dec) *bignum.Error {
	return &bignum.Error{Kind: bignum.Overflow, Op: op,
		Msg: "result exponent for argument " + x.String() + " is out of range"}
}

func domainErr(op, msg string) *bignum.Error {
	return &bignum.Error{Kind: bignum.DomainError, Op: op, Msg: msg}
}
