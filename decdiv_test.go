package bignum

import (
	"strings"
	"testing"
)

func TestDecQuo(t *testing.T) {
	for _, test := range []struct {
		x, y string
		prec int
		want string
	}{
		// exact divisions strip to the ideal scale
		{"10", "5", 50, "2"},
		{"100", "10", 50, "10"},
		{"1", "4", 10, "0.25"},
		{"2.4", "1.2", 28, "2"},
		{"79228162514264337593543950335", "1", 50, "79228162514264337593543950335"},
		// inexact divisions carry exactly prec significant digits
		{"1", "3", 50, "0." + strings.Repeat("3", 50)},
		{"2", "3", 10, "0.6666666667"},
		{"1", "7", 28, "0.1428571428571428571428571429"},
		{"355", "113", 28, "3.141592920353982300884955752"},
		// signs
		{"-10", "4", 10, "-2.5"},
		{"10", "-4", 10, "-2.5"},
		{"-10", "-4", 10, "2.5"},
		// scales
		{"0.01", "0.0001", 10, "1E+2"},
		{"1E+5", "1E+2", 10, "1E+3"},
	} {
		got := new(Dec).Quo(dec(test.x), dec(test.y), test.prec).String()
		if got != test.want {
			t.Errorf("%s / %s (P=%d) = %s, want %s", test.x, test.y, test.prec, got, test.want)
		}
	}
}

func TestDecQuoZeroDividend(t *testing.T) {
	z := new(Dec).Quo(dec("0.00"), dec("7"), 10)
	if !z.IsZero() {
		t.Fatal("0/7 != 0")
	}
	if z.Scale() != 2 {
		t.Errorf("0.00/7 has scale %d, want 2", z.Scale())
	}
}

func TestDecQuoPanics(t *testing.T) {
	assertPanicKind(t, DivisionByZero, func() {
		new(Dec).Quo(dec("1"), dec("0"), 10)
	})
	assertPanicKind(t, PrecisionError, func() {
		new(Dec).Quo(dec("1"), dec("3"), 0)
	})
	assertPanicKind(t, DivisionByZero, func() {
		new(Dec).DivMod(dec("1"), dec("0.000"), new(Dec))
	})
}

func assertPanicKind(t *testing.T, kind Kind, f func()) {
	t.Helper()
	defer func() {
		e := recover()
		if e == nil {
			t.Error("no panic")
			return
		}
		err, ok := e.(*Error)
		if !ok || err.Kind != kind {
			t.Errorf("panic %v, want kind %s", e, kind)
		}
	}()
	f()
}

// Division cost must be bounded by the requested precision: operands of
// 65536 and 32768 words reduce to a handful of words before the long
// division runs.
func TestDecQuoTruncated(t *testing.T) {
	// x = 5 × 10**(9·65535), y = 2 × 10**(9·32767)
	xc := make(nat, 65536)
	xc[65535] = 5
	yc := make(nat, 32768)
	yc[32767] = 2
	x := new(Dec).SetCoeffScale(xc, 0, false)
	y := new(Dec).SetCoeffScale(yc, 0, false)

	z := new(Dec).Quo(x, y, 50)
	// the truncated path cannot prove exactness, so all 50 digits stay
	want := "2.5" + strings.Repeat("0", 48) + "E+294912"
	if got := z.String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

// The truncated path must agree with the full division on the digits it
// keeps.
func TestDecQuoTruncatedAccuracy(t *testing.T) {
	x := dec(strings.Repeat("123456789", 80)) // 720 digits
	y := dec(strings.Repeat("987654321", 40)) // 360 digits
	small := new(Dec).Quo(x, y, 30)
	wide := new(Dec).Quo(x, y, 300)
	ref := new(Dec).RoundSig(wide, 30, HalfEven)
	if small.Cmp(ref) != 0 {
		t.Errorf("truncated %s != reference %s", small, ref)
	}
}

func TestDecQuoWord(t *testing.T) {
	for _, test := range []struct {
		x    string
		y    Word
		prec int
		want string
	}{
		{"1", 3, 10, "0.3333333333"},
		{"10", 2, 10, "5"},
		{"-7", 7, 5, "-1"},
		{"6.28", 2, 20, "3.14"},
	} {
		got := new(Dec).QuoWord(dec(test.x), test.y, test.prec)
		if got.Cmp(dec(test.want)) != 0 {
			t.Errorf("%s / %d = %s, want %s", test.x, test.y, got, test.want)
		}
	}
}

func TestDecDivModScenario(t *testing.T) {
	// 10.5 // 3.2 == 3 and 10.5 %% 3.2 == 0.9, with q·b + r == a
	a, b := dec("10.5"), dec("3.2")
	q, r := new(Dec).DivMod(a, b, new(Dec))
	if q.String() != "3" {
		t.Errorf("10.5 // 3.2 = %s, want 3", q)
	}
	if r.String() != "0.9" {
		t.Errorf("10.5 %% 3.2 = %s, want 0.9", r)
	}
	chk := new(Dec).Mul(q, b)
	chk.Add(chk, r)
	if chk.Cmp(a) != 0 {
		t.Errorf("q·b + r = %s, want %s", chk, a)
	}
}

func TestDecDivModSigns(t *testing.T) {
	for _, test := range []struct {
		x, y, q, m string
	}{
		{"7", "2", "3", "1"},
		{"-7", "2", "-4", "1"},
		{"7", "-2", "-4", "-1"},
		{"-7", "-2", "3", "-1"},
		{"7.5", "2.5", "3", "0.0"},
		{"-0.9", "0.25", "-4", "0.10"},
	} {
		x, y := dec(test.x), dec(test.y)
		q, m := new(Dec).DivMod(x, y, new(Dec))
		if q.Cmp(dec(test.q)) != 0 || m.Cmp(dec(test.m)) != 0 {
			t.Errorf("DivMod(%s, %s) = %s, %s; want %s, %s",
				test.x, test.y, q, m, test.q, test.m)
		}
		// the identity holds exactly in every sign combination
		chk := new(Dec).Mul(q, y)
		chk.Add(chk, m)
		if chk.Cmp(x) != 0 {
			t.Errorf("DivMod(%s, %s): identity broken", test.x, test.y)
		}
	}
}

func TestDecDivInt(t *testing.T) {
	if got := new(Dec).DivInt(dec("100"), dec("7")).String(); got != "14" {
		t.Errorf("100 // 7 = %s", got)
	}
	if got := new(Dec).Mod(dec("100"), dec("7")).String(); got != "2" {
		t.Errorf("100 %% 7 = %s", got)
	}
}
