package bignum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Formatting must match CPython's decimal.Decimal.__str__ digit for digit.
func TestDecString(t *testing.T) {
	for _, test := range []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"1", "1"},
		{"-1", "-1"},
		{"123", "123"},
		{"1.23", "1.23"},
		{"-1.23", "-1.23"},
		{"0.5", "0.5"},
		{".5", "0.5"},
		{"5.", "5"},
		{"0.00001", "0.00001"},
		// scientific iff the exponent is positive or adjusted < -6
		{"1.23e5", "1.23E+5"},
		{"1E+5", "1E+5"},
		{"1.5E-7", "1.5E-7"},
		{"0.000001", "0.000001"},
		{"0.0000001", "1E-7"},
		{"12.3E+7", "1.23E+8"},
		{"1e100", "1E+100"},
		{"-1.23e-7", "-1.23E-7"},
		{"123e-2", "1.23"},
		{"0e5", "0E+5"},
		{"0e-5", "0.00000"},
		{"0.00e2", "0"},
		// separators disappear
		{"1_000_000", "1000000"},
		{"1,234.5", "1234.5"},
		{"1 234 567", "1234567"},
	} {
		d, err := ParseDec(test.in)
		require.NoError(t, err, "ParseDec(%q)", test.in)
		require.Equal(t, test.want, d.String(), "String of %q", test.in)
	}
}

func TestDecParseErrors(t *testing.T) {
	for _, in := range []string{
		"", "abc", "1..2", "1.2.3", "1e", "1e+", "--1", "1x", "e5",
		"_1", "1_", "1__2", "1_.2", ".", "+", "5e1.2",
	} {
		_, err := ParseDec(in)
		require.Error(t, err, "ParseDec(%q) should fail", in)
		var e *Error
		require.ErrorAs(t, err, &e, "ParseDec(%q)", in)
		require.Equal(t, ConversionError, e.Kind, "ParseDec(%q)", in)
	}
}

// parse(format(d)) == d for every representable value.
func TestDecStringRoundTrip(t *testing.T) {
	for _, in := range []string{
		"0", "1", "-1", "0.5", "123.456", "-0.001",
		"1E+5", "1.23E+5", "1.5E-7", "0E+5", "0.00000",
		"12345678901234567890123456789.5",
		"9.99999999E+1000",
	} {
		d := MustDec(in)
		back, err := ParseDec(d.String())
		require.NoError(t, err)
		require.Equal(t, d.String(), back.String(), "round trip of %q", in)
		require.Equal(t, d.Scale(), back.Scale(), "scale of %q", in)
		require.Zero(t, d.Cmp(back), "value of %q", in)
	}
}

func TestDecParseScale(t *testing.T) {
	for _, test := range []struct {
		in    string
		scale int32
	}{
		{"1", 0},
		{"1.5", 1},
		{"1.50", 2},
		{"1.23e5", -3},
		{"1e-3", 3},
		{"0e7", -7},
	} {
		d := MustDec(test.in)
		require.Equal(t, test.scale, d.Scale(), "scale of %q", test.in)
	}
}

func TestDecInt64(t *testing.T) {
	v, err := dec("123").Int64()
	require.NoError(t, err)
	require.EqualValues(t, 123, v)

	v, err = dec("-9223372036854775808").Int64()
	require.NoError(t, err)
	require.EqualValues(t, int64(-9223372036854775808), v)

	_, err = dec("9223372036854775808").Int64()
	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, Overflow, e.Kind)

	_, err = dec("1.5").Int64()
	require.ErrorAs(t, err, &e)
	require.Equal(t, ConversionError, e.Kind)

	// integral values with a non-zero scale still convert
	v, err = dec("42.000").Int64()
	require.NoError(t, err)
	require.EqualValues(t, 42, v)

	v, err = dec("4.2E+3").Int64()
	require.NoError(t, err)
	require.EqualValues(t, 4200, v)
}

func TestDecInteger(t *testing.T) {
	i, err := dec("-1.23E+5").Integer()
	require.NoError(t, err)
	require.Equal(t, "-123000", i.String())

	_, err = dec("0.5").Integer()
	require.Error(t, err)
}

func TestDecFloat64(t *testing.T) {
	f, err := dec("1.5").Float64()
	require.NoError(t, err)
	require.Equal(t, 1.5, f)

	_, err = dec("1e400").Float64()
	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, Overflow, e.Kind)
}

func TestFromInt(t *testing.T) {
	i, _ := ParseInt("-123456789012345678901234567890")
	d := FromInt(i)
	require.Equal(t, "-123456789012345678901234567890", d.String())
}
