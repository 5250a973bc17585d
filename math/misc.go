package math

import "github.com/croussel/bignum"

// Small constants shared by the series and reduction code. They are used
// as operands only, never as operation receivers.
var (
	two   = bignum.New(2, 0)
	three = bignum.New(3, 0)
	five  = bignum.New(5, 0)
	nine  = bignum.New(9, 0)

	point8 = bignum.New(8, 1)     // 0.8, one exact 1.25 reduction step
	cut125 = bignum.New(10607, 4) // 1.0607 ≈ 0.75·√2, reduction range cut
)
