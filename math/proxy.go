package math

import "github.com/croussel/bignum"

// Sqrt sets z to the square root of x rounded to prec significant digits,
// and returns z. Sqrt panics with *Error if x < 0 or prec <= 0.
//
// This function is a proxy for z.Sqrt(x, prec); the square root works
// directly on the decimal coefficient and lives with it.
func Sqrt(z, x *bignum.Dec, prec int, c *Cache) *bignum.Dec {
	return z.Sqrt(x, prec)
}
