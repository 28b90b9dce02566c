package f32

import (
	"math"

	"github.com/cwbudde/algo-fastmath/internal/ieee"
)

// cosCorrection weights the second stage that turns the parabola into a
// near-minimax fit of cos over one period.
const cosCorrection = 0.225

// 2π split for the Cody-Waite reduction. twoPiHi has the low 16 mantissa bits
// clear, so k*twoPiHi is exact for |k| < 2^16.
const (
	twoPiHi = 6.28125
	twoPiLo = 2*math.Pi - twoPiHi
)

// reduceTwoPi returns x minus the nearest multiple of 2π, which lies in
// [-π, π] up to rounding for |x| <= CosDomain. NaN and ±Inf give NaN.
func reduceTwoPi(x float32) float32 {
	k := Round(x * (1 / (2 * math.Pi)))
	return (x - k*twoPiHi) - k*twoPiLo
}

// cosKernel evaluates the cosine fit for x in radians.
func cosKernel(x float32) float32 {
	x *= 1 / (2 * math.Pi)
	x -= 0.25 + Floor(x+0.25)
	x *= 16 * (Abs(x) - 0.5)
	x += cosCorrection * x * (Abs(x) - 1)

	return x
}

// Cos approximates cos(x) for x in radians with a maximum absolute error of
// 0.002 for |x| <= CosDomain.
//
// x is first reduced by the nearest multiple of 2π using a two-constant
// split of 2π. The remainder is converted to turns and shifted by a quarter
// turn into [-0.5, 0.5). A parabola through the zeros and extrema of the
// period is then refined with one weighted correction term. Every step is
// fixed, so the cost does not depend on x. Beyond CosDomain the result stays
// in [-1, 1] but loses accuracy. Cos(±Inf) and Cos(NaN) are NaN.
func Cos(x float32) float32 {
	return cosKernel(reduceTwoPi(x))
}

// Sin approximates sin(x) for x in radians as the cosine fit shifted by π/2.
// The shift is applied after reduction, so it adds no error of its own.
//
// Sin is not separately minimized: its declared bound is SinMaxError (0.06)
// over |x| <= CosDomain, even though the measured error tracks that of Cos.
func Sin(x float32) float32 {
	return cosKernel(reduceTwoPi(x) - math.Pi/2)
}

// Tan approximates tan(x) as Sin(x)/Cos(x). The absolute error stays below
// 0.6 for |x| <= 1.5, and for the same offsets from every multiple of π
// within CosDomain. It grows without bound towards the poles.
//
// When the cosine approximation is exactly zero, Tan returns ±Inf with the
// sign of the sine approximation. No other clamping takes place.
func Tan(x float32) float32 {
	r := reduceTwoPi(x)
	s, c := cosKernel(r-math.Pi/2), cosKernel(r)
	if c == 0 {
		return Copysign(ieee.Inf(1), s)
	}

	return s / c
}
