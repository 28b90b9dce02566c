package f32

import "github.com/cwbudde/algo-fastmath/internal/ieee"

// invSqrtMagic halves the exponent and flips its sign when the shifted bit
// pattern is subtracted from it, giving a first guess of 1/sqrt(x).
const invSqrtMagic uint32 = 0x5f37_5a86

// InvSqrt approximates 1/sqrt(x) with a mean relative deviation below 5%
// (measured worst case is about 0.2%) for positive normal x.
//
// InvSqrt(±0) = +Inf, InvSqrt(+Inf) = 0, and negative or NaN inputs return
// NaN. Subnormal inputs are outside the contract.
func InvSqrt(x float32) float32 {
	switch {
	case x == 0:
		return ieee.Inf(1)
	case !(x > 0):
		return ieee.NaN()
	case ieee.IsInf(x, 1):
		return 0
	}

	return invSqrt(x)
}

// invSqrt is the bit trick followed by one Newton-Raphson step,
// y' = y*(1.5 - 0.5*x*y*y). x must be positive and finite.
func invSqrt(x float32) float32 {
	y := ieee.FromBits(invSqrtMagic - ieee.Bits(x)>>1)
	return y * (1.5 - 0.5*x*y*y)
}

// Sqrt approximates sqrt(x) as x*InvSqrt(x), with a mean relative deviation
// below 5%.
//
// Sqrt(±0) = ±0, Sqrt(+Inf) = +Inf, and negative or NaN inputs return NaN.
func Sqrt(x float32) float32 {
	switch {
	case x == 0:
		return x
	case !(x > 0):
		return ieee.NaN()
	case ieee.IsInf(x, 1):
		return x
	}

	return x * invSqrt(x)
}

// Inv approximates 1/x as InvSqrt(|x|)², with a mean relative deviation
// below 8%. The sign of x is carried over, so Inv(-x) = -Inv(x).
//
// Inv(±0) = ±Inf, Inv(±Inf) = ±0, and Inv(NaN) = NaN.
func Inv(x float32) float32 {
	a := Abs(x)

	switch {
	case a == 0:
		return Copysign(ieee.Inf(1), x)
	case ieee.IsNaN(x):
		return x
	case ieee.IsInf(a, 1):
		return Copysign(0, x)
	}

	y := invSqrt(a)
	return Copysign(y*y, x)
}
