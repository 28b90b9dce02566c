// Package f32 provides fast, allocation-free approximations of elementary and
// transcendental functions on float32 values.
//
// The functions are intended for targets and hot loops where the standard
// math package is unavailable or too slow: every operation runs a fixed
// number of steps built from bit manipulation of the IEEE-754 layout,
// small minimax polynomials or rationals, and at most one Newton-Raphson
// refinement. None of them allocate, touch shared state, or loop a
// data-dependent number of times, so they are safe to call concurrently and
// from signal handlers.
//
// # Accuracy Characteristics
//
// Cos: absolute error <= 0.002 for |x| <= 1e5 (CosDomain). Larger inputs
// stay in [-1, 1] with growing error.
//
// Sin: phase-shifted Cos, declared absolute error <= 0.06 for |x| <= 1e5.
//
// Tan: Sin/Cos, absolute error <= 0.6 for |x| <= 1.5 and its periodic images
// within CosDomain.
//
// Atan, Atan2: absolute error <= 0.002 rad. AtanNorm and Atan2Norm: <= 0.1620 degrees.
//
// InvSqrt, Sqrt: mean relative deviation <= 5%. Inv: <= 8%.
//
// Ln: absolute error <= 1e-4 for positive normal inputs. Log2, Log10 and Log
// scale that error by 1/ln(base).
//
// Exp: relative error <= 1e-4 for |x| <= 80 with the default ExpTerms.
//
// Abs, Copysign, Trunc, Floor, Ceil, Round and Fract are exact.
//
// # Domain Policy
//
// Out-of-domain inputs never trap. InvSqrt(±0) = +Inf, Sqrt(±0) = ±0,
// Inv(±0) = ±Inf; InvSqrt and Sqrt of negative values are NaN, while Inv is
// odd so Inv(-x) = -Inv(x). Ln(±0) = -Inf and Ln of negative values is NaN;
// Log, Log2, Log10 and Powf inherit that policy. Powf(x, 0) = 1 for every x.
// Round breaks ties away from zero. Tan returns ±Inf, signed like the sine,
// when the cosine approximation is exactly zero. Exp saturates to +Inf and
// flushes to +0 outside the normal range. NaN inputs produce NaN; subnormal
// inputs are only handled by Ln and the rounding functions.
//
// # Usage
//
// Call sites can use the free functions, or the Float type for method-like
// syntax:
//
//	y := f32.Sin(x)
//	theta := f32.Float(y).Atan2(x)
//	bits := f32.Float(n).Log(2)
package f32
