package bignum

import (
	"math/rand"
	"strings"
	"testing"
)

func TestNatSetDigits(t *testing.T) {
	for _, test := range []struct {
		in   string
		want nat
	}{
		{"0", nil},
		{"000", nil},
		{"1", nat{1}},
		{"999999999", nat{999999999}},
		{"1000000000", nat{0, 1}},
		{"123456789012345678", nat{12345678, 123456789}},
		{"0012", nat{12}},
	} {
		got := nat(nil).setDigits(test.in)
		if got.cmp(test.want.norm()) != 0 {
			t.Errorf("setDigits(%q) = %v, want %v", test.in, got, test.want)
		}
	}
	if got := nat(nil).setDigits("123456789012345678"); string(got.utoa()) != "123456789012345678" {
		t.Errorf("round trip failed: %s", got.utoa())
	}
}

func TestNatUtoa(t *testing.T) {
	for _, test := range []struct {
		in   nat
		want string
	}{
		{nil, "0"},
		{nat{7}, "7"},
		{nat{0, 1}, "1000000000"},
		{nat{5, 1}, "1000000005"},
		{nat{999999999, 999999999}, "999999999999999999"},
	} {
		if got := string(test.in.utoa()); got != test.want {
			t.Errorf("utoa(%v) = %q, want %q", test.in, got, test.want)
		}
	}
}

// TestNatConvRoundTrip exercises both the iterative and the recursive
// string builders across the divide-and-conquer threshold.
func TestNatConvRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	lengths := []int{1, 9, 10, 100, 9999, 10000, 10001, 20001, 40000}
	for _, n := range lengths {
		digits := make([]byte, n)
		digits[0] = '1' + byte(rnd.Intn(9))
		for i := 1; i < n; i++ {
			digits[i] = '0' + byte(rnd.Intn(10))
		}
		s := string(digits)
		x := nat(nil).setDigits(s)
		if got := string(x.utoa()); got != s {
			t.Errorf("round trip failed for %d digits", n)
		}
	}
}

func TestNatSetDigitsRecMatchesBasic(t *testing.T) {
	s := strings.Repeat("123456789", 1200) // 10800 digits, above the threshold
	rec := nat(nil).setDigits(s)
	basic := nat(nil).setDigitsBasic(s)
	if rec.cmp(basic) != 0 {
		t.Error("recursive and basic digit scans disagree")
	}
}
