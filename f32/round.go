package f32

import "github.com/cwbudde/algo-fastmath/internal/ieee"

// Trunc returns the integer part of x, rounding toward zero.
//
// The fractional mantissa bits are masked off directly: values below one keep
// only their sign, values with an exponent of 23 or more (including Inf and
// NaN) are already integral.
func Trunc(x float32) float32 {
	e := ieee.Exponent(x)

	switch {
	case e < 0:
		return ieee.WithSign(0, ieee.Sign(x))
	case e >= ieee.MantissaBits:
		return x
	}

	frac := ieee.MantissaMask >> uint32(e)
	return ieee.Compose(ieee.Sign(x), ieee.RawExponent(x), ieee.Mantissa(x)&^frac)
}

// Fract returns the signed fractional part of x, so that
// Trunc(x)+Fract(x) == x. Fract(-1.5) = -0.5. Fract(±Inf) is NaN.
func Fract(x float32) float32 {
	return x - Trunc(x)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	t := Trunc(x)
	if t != x && ieee.IsNegative(x) {
		return t - 1
	}

	return t
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 {
	t := Trunc(x)
	if t != x && !ieee.IsNegative(x) {
		return t + 1
	}

	return t
}

// Round returns the nearest integer to x, rounding half away from zero:
// Round(2.5) = 3, Round(-2.5) = -3.
func Round(x float32) float32 {
	t := Trunc(x)

	// x-t is exact, so the tie test does not suffer from x+0.5 rounding up.
	if Abs(x-t) >= 0.5 {
		return t + Copysign(1, x)
	}

	return t
}
