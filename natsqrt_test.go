package bignum

import (
	"math/rand"
	"testing"
)

func TestNatSqrtSmall(t *testing.T) {
	for _, v := range []uint64{0, 1, 2, 3, 4, 8, 9, 10, 99, 100,
		999999999999999999, 152415787532374641} {
		x := nat(nil).setUint64(v)
		r := nat(nil).sqrt(x)
		got, _ := r.toUint64()
		if got*got > v || (got+1)*(got+1) <= v {
			t.Errorf("sqrt(%d) = %d", v, got)
		}
	}
	// 12345678987654321 = 111111111²
	r := nat(nil).sqrt(natFromString("12345678987654321"))
	if string(r.utoa()) != "111111111" {
		t.Errorf("sqrt(12345678987654321) = %s", r.utoa())
	}
}

// TestNatSqrtBounds checks r² <= x < (r+1)² across the Newton and
// binary-handoff tiers.
func TestNatSqrtBounds(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	for _, n := range []int{3, 4, 10, 50, 299, 310} {
		x := randNat(rnd, n)
		r := nat(nil).sqrt(x)

		r2 := nat(nil).sqr(r)
		if r2.cmp(x) > 0 {
			t.Errorf("sqrt (%d words): r² > x", n)
		}
		r1 := nat(nil).add(r, natOne)
		r1 = r1.sqr(r1)
		if r1.cmp(x) <= 0 {
			t.Errorf("sqrt (%d words): (r+1)² <= x", n)
		}
	}
}

func TestNatSqrtExact(t *testing.T) {
	rnd := rand.New(rand.NewSource(6))
	for _, n := range []int{5, 60, 155} {
		r := randNat(rnd, n)
		x := nat(nil).sqr(r)
		got := nat(nil).sqrt(x)
		if got.cmp(r) != 0 {
			t.Errorf("sqrt of a perfect square (%d words) not exact", n)
		}
	}
}
