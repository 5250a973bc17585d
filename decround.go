package bignum

// RoundingMode determines how excess digits are removed when a Dec is
// rounded to a smaller scale or precision. HalfEven is the zero value and
// the default everywhere a mode is implied.
type RoundingMode byte

// Supported rounding modes.
const (
	HalfEven RoundingMode = iota // ties to the nearest even digit
	HalfUp                       // ties away from zero
	HalfDown                     // ties towards zero
	Up                           // away from zero
	Down                         // towards zero (truncate)
	Ceiling                      // towards +infinity
	Floor                        // towards -infinity
)

//go:generate stringer -type=RoundingMode

// roundCoef returns x with its drop least significant digits removed,
// incrementing the kept digits according to mode. neg is the sign of the
// value being rounded; it matters for Up/Down/Ceiling/Floor. drop must be
// > 0. x is not modified.
func roundCoef(x nat, drop uint, mode RoundingMode, neg bool) nat {
	rd := x.digit(drop - 1) // most significant dropped digit
	var sticky uint
	if drop > 1 {
		sticky = x.sticky(drop - 1)
	}
	z := nat(nil).shr(x, drop)

	var inc bool
	switch mode {
	case HalfEven:
		inc = rd > 5 || rd == 5 && (sticky != 0 || z.digit(0)&1 != 0)
	case HalfUp:
		inc = rd >= 5
	case HalfDown:
		inc = rd > 5 || rd == 5 && sticky != 0
	case Up:
		inc = rd != 0 || sticky != 0
	case Down:
		// truncate
	case Ceiling:
		inc = !neg && (rd != 0 || sticky != 0)
	case Floor:
		inc = neg && (rd != 0 || sticky != 0)
	default:
		panic(errorf(ConversionError, "Dec.Round", "unknown rounding mode %d", mode))
	}
	if inc {
		// Up on a value whose significant digits were all stripped still
		// yields 1 at the target position, never 0.
		z = z.add(z, natOne)
	}
	return z
}

// Quantize sets z to the value of x with its scale adjusted to scale,
// rounding with mode if digits must be removed, and returns z. Lowering
// the number of fractional digits rounds; raising it pads the coefficient
// with zeros exactly.
//
// Quantize panics with *Error if the scale is outside the representable
// range.
func (z *Dec) Quantize(x *Dec, scale int32, mode RoundingMode) *Dec {
	checkScale("Dec.Quantize", int64(scale))
	d := int64(x.scale) - int64(scale)
	switch {
	case d > 0:
		// drop digits; when every significant digit is dropped the cut
		// digit can still round the result up to 1 at the target scale
		neg := x.neg
		z.coef = z.coef.set(roundCoef(x.coef, uint(d), mode, neg))
		z.neg = neg && len(z.coef) > 0
		z.scale = scale
	case d < 0:
		// pad with zeros, exactly
		z.coef = z.coef.shl(x.coef, uint(-d))
		z.neg = x.neg && len(z.coef) > 0
		z.scale = scale
	default:
		z.Set(x)
	}
	return z
}

// Round sets z to x rounded to places fractional digits using mode and
// returns z. It is Quantize under its operator name: Round(x, 0, Floor) is
// the floor function.
func (z *Dec) Round(x *Dec, places int32, mode RoundingMode) *Dec {
	return z.Quantize(x, places, mode)
}

// RoundSig sets z to x rounded to prec significant digits using mode and
// returns z. Values with no more than prec digits are returned unchanged.
//
// RoundSig panics with *Error if prec <= 0.
func (z *Dec) RoundSig(x *Dec, prec int, mode RoundingMode) *Dec {
	checkPrec("Dec.RoundSig", prec)
	d := x.Digits() - prec
	if d <= 0 {
		return z.Set(x)
	}
	neg := x.neg
	q := roundCoef(x.coef, uint(d), mode, neg)
	scale := int64(x.scale) - int64(d)
	if int(q.digits()) > prec {
		// rounding carried into a new leading digit
		q = q.shr(q, 1)
		scale--
	}
	z.coef = z.coef.set(q)
	z.neg = neg && len(z.coef) > 0
	z.scale = checkScale("Dec.RoundSig", scale)
	return z
}

// Floor sets z to the largest integer value <= x and returns z.
func (z *Dec) Floor(x *Dec) *Dec {
	return z.roundInt(x, Floor)
}

// Ceil sets z to the smallest integer value >= x and returns z.
func (z *Dec) Ceil(x *Dec) *Dec {
	return z.roundInt(x, Ceiling)
}

// Trunc sets z to x with its fractional part discarded and returns z.
func (z *Dec) Trunc(x *Dec) *Dec {
	return z.roundInt(x, Down)
}

func (z *Dec) roundInt(x *Dec, mode RoundingMode) *Dec {
	if x.scale <= 0 {
		return z.Set(x)
	}
	return z.Quantize(x, 0, mode)
}
