package bignum

import (
	"math/big"
	"math/rand"
	"testing"
)

// randInt returns an Int with roughly bits random bits and a random sign.
func randInt(rnd *rand.Rand, bits int) *Int {
	n := (bits + _W - 1) / _W
	z := new(Int)
	z.abs = make(bin, n)
	for i := range z.abs {
		z.abs[i] = Word(rnd.Uint32())
	}
	z.abs = z.abs.norm()
	z.neg = len(z.abs) > 0 && rnd.Intn(2) == 1
	return z
}

func intToBig(x *Int) *big.Int {
	v, ok := new(big.Int).SetString(x.String(), 10)
	if !ok {
		panic("bad conversion")
	}
	return v
}

func TestIntArith(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		x := randInt(rnd, 1+rnd.Intn(3000))
		y := randInt(rnd, 1+rnd.Intn(3000))
		bx, by := intToBig(x), intToBig(y)

		if got, want := new(Int).Add(x, y).String(), new(big.Int).Add(bx, by).String(); got != want {
			t.Fatalf("Add: got %s, want %s", got, want)
		}
		if got, want := new(Int).Sub(x, y).String(), new(big.Int).Sub(bx, by).String(); got != want {
			t.Fatalf("Sub: got %s, want %s", got, want)
		}
		if got, want := new(Int).Mul(x, y).String(), new(big.Int).Mul(bx, by).String(); got != want {
			t.Fatalf("Mul: got %s, want %s", got, want)
		}
	}
}

// TestIntMulKaratsuba crosses the Karatsuba threshold with both balanced
// and lopsided operands.
func TestIntMulKaratsuba(t *testing.T) {
	rnd := rand.New(rand.NewSource(8))
	sizes := []struct{ bx, by int }{
		{47 * 32, 47 * 32}, {48 * 32, 48 * 32}, {100 * 32, 49 * 32},
		{200 * 32, 200 * 32}, {500 * 32, 64 * 32},
	}
	for _, sz := range sizes {
		x := randInt(rnd, sz.bx)
		y := randInt(rnd, sz.by)
		got := new(Int).Mul(x, y).String()
		want := new(big.Int).Mul(intToBig(x), intToBig(y)).String()
		if got != want {
			t.Errorf("Mul (%d×%d bits) disagrees with math/big", sz.bx, sz.by)
		}
	}
}

func TestIntQuoRem(t *testing.T) {
	rnd := rand.New(rand.NewSource(9))
	for i := 0; i < 50; i++ {
		x := randInt(rnd, 1+rnd.Intn(4000))
		y := randInt(rnd, 1+rnd.Intn(2000))
		if y.IsZero() {
			continue
		}
		q, r := new(Int).QuoRem(x, y, new(Int))
		bq, br := new(big.Int).QuoRem(intToBig(x), intToBig(y), new(big.Int))
		if q.String() != bq.String() || r.String() != br.String() {
			t.Fatalf("QuoRem(%s, %s): got %s,%s want %s,%s", x, y, q, r, bq, br)
		}
	}
}

func TestIntDivModFloor(t *testing.T) {
	for _, test := range []struct {
		x, y, q, m int64
	}{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{7, -2, -4, -1},
		{-7, -2, 3, -1},
		{6, 3, 2, 0},
		{-6, 3, -2, 0},
		{6, -3, -2, 0},
		{0, 5, 0, 0},
	} {
		q, m := new(Int).DivMod(NewInt(test.x), NewInt(test.y), new(Int))
		if q.Int64() != test.q || m.Int64() != test.m {
			t.Errorf("DivMod(%d, %d) = %s, %s; want %d, %d",
				test.x, test.y, q, m, test.q, test.m)
		}
		// q*y + m == x
		chk := new(Int).Mul(q, NewInt(test.y))
		chk.Add(chk, m)
		if chk.Int64() != test.x {
			t.Errorf("DivMod(%d, %d): identity broken", test.x, test.y)
		}
	}
}

// TestIntDivCorner feeds operand patterns that stress the trial-quotient
// refinement (top dividend words equal to or just below the top divisor
// word).
func TestIntDivCorner(t *testing.T) {
	cases := []struct{ u, v bin }{
		{bin{_M, _M, 1<<31 - 1}, bin{1, 1 << 31}},
		{bin{0, 0, 1 << 31}, bin{_M, 1 << 31}},
		{bin{_M, _M, _M, _M}, bin{_M, _M}},
		{bin{0, 0, 0, 1}, bin{_M, _M}},
		{bin{5, 0, 1 << 31}, bin{0, 1 << 31}},
	}
	for i, c := range cases {
		u := &Int{abs: c.u.norm()}
		v := &Int{abs: c.v.norm()}
		q, r := new(Int).QuoRem(u, v, new(Int))
		bq, br := new(big.Int).QuoRem(intToBig(u), intToBig(v), new(big.Int))
		if q.String() != bq.String() || r.String() != br.String() {
			t.Errorf("#%d: got %s,%s want %s,%s", i, q, r, bq, br)
		}
	}
}

func TestIntShift(t *testing.T) {
	rnd := rand.New(rand.NewSource(10))
	for i := 0; i < 30; i++ {
		x := randInt(rnd, 1+rnd.Intn(500))
		s := uint(rnd.Intn(200))
		bx := intToBig(x)
		if got, want := new(Int).Lsh(x, s).String(), new(big.Int).Lsh(bx, s).String(); got != want {
			t.Fatalf("Lsh(%s, %d): got %s want %s", x, s, got, want)
		}
		if got, want := new(Int).Rsh(x, s).String(), new(big.Int).Rsh(bx, s).String(); got != want {
			t.Fatalf("Rsh(%s, %d): got %s want %s", x, s, got, want)
		}
	}
}

func TestIntBitwise(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		x := randInt(rnd, 1+rnd.Intn(300))
		y := randInt(rnd, 1+rnd.Intn(300))
		bx, by := intToBig(x), intToBig(y)

		if got, want := new(Int).And(x, y).String(), new(big.Int).And(bx, by).String(); got != want {
			t.Fatalf("And(%s, %s): got %s want %s", x, y, got, want)
		}
		if got, want := new(Int).Or(x, y).String(), new(big.Int).Or(bx, by).String(); got != want {
			t.Fatalf("Or(%s, %s): got %s want %s", x, y, got, want)
		}
		if got, want := new(Int).Xor(x, y).String(), new(big.Int).Xor(bx, by).String(); got != want {
			t.Fatalf("Xor(%s, %s): got %s want %s", x, y, got, want)
		}
		if got, want := new(Int).AndNot(x, y).String(), new(big.Int).AndNot(bx, by).String(); got != want {
			t.Fatalf("AndNot(%s, %s): got %s want %s", x, y, got, want)
		}
		if got, want := new(Int).Not(x).String(), new(big.Int).Not(bx).String(); got != want {
			t.Fatalf("Not(%s): got %s want %s", x, got, want)
		}
	}
}

func TestIntSqrtPrecisionDoubling(t *testing.T) {
	rnd := rand.New(rand.NewSource(12))
	for _, bits := range []int{10, 64, 65, 1000, 5000, 20000} {
		x := randInt(rnd, bits)
		x.neg = false
		r := new(Int).Sqrt(x)
		br := new(big.Int).Sqrt(intToBig(x))
		if r.String() != br.String() {
			t.Errorf("Sqrt (%d bits) disagrees with math/big", bits)
		}
	}
}

func TestIntConv(t *testing.T) {
	for _, s := range []string{
		"0", "1", "-1", "4294967295", "4294967296", "-123456789012345678901234567890",
	} {
		x, err := ParseInt(s)
		if err != nil {
			t.Fatalf("ParseInt(%q): %v", s, err)
		}
		if got := x.String(); got != s {
			t.Errorf("round trip of %q gave %q", s, got)
		}
	}
	if _, err := ParseInt("12x"); err == nil {
		t.Error("ParseInt accepted garbage")
	}
	x, err := ParseInt("1_000,000 000")
	if err != nil || x.String() != "1000000000" {
		t.Errorf("separators: got %v, %v", x, err)
	}
	if v, err := ParseInt("-0"); err != nil || v.Sign() != 0 {
		t.Errorf("-0 should parse to zero")
	}
}

// TestIntConvLarge crosses the divide-and-conquer conversion thresholds in
// both directions.
func TestIntConvLarge(t *testing.T) {
	rnd := rand.New(rand.NewSource(13))
	for _, bits := range []int{100, 2000, 2048 * 32, 5000 * 32} {
		x := randInt(rnd, bits)
		x.neg = false
		s := x.String()
		bx, ok := new(big.Int).SetString(s, 10)
		if !ok {
			t.Fatalf("emitted unparseable string at %d bits", bits)
		}
		if bx.String() != s {
			t.Fatalf("String at %d bits disagrees with math/big", bits)
		}
		y, err := ParseInt(s)
		if err != nil || y.Cmp(x) != 0 {
			t.Fatalf("ParseInt round trip failed at %d bits", bits)
		}
	}
}

func TestIntPow(t *testing.T) {
	if got := new(Int).Pow(NewInt(3), 100).String(); got != new(big.Int).Exp(big.NewInt(3), big.NewInt(100), nil).String() {
		t.Errorf("3**100 = %s", got)
	}
	if got := new(Int).Pow(NewInt(-2), 5).Int64(); got != -32 {
		t.Errorf("(-2)**5 = %d", got)
	}
	if got := new(Int).Pow(NewInt(7), 0).Int64(); got != 1 {
		t.Errorf("7**0 = %d", got)
	}
}
