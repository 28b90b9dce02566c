// Package ieee decomposes and rebuilds IEEE-754 single precision values.
//
// A float32 is laid out as 1 sign bit, 8 exponent bits (bias 127) and
// 23 mantissa bits. Every helper here works on the bit pattern only: no
// arithmetic rounding is involved, and fields that are not named by a
// helper are left untouched.
package ieee

import "math"

const (
	// SignMask selects the sign bit.
	SignMask uint32 = 0x8000_0000

	// ExponentMask selects the 8 biased exponent bits.
	ExponentMask uint32 = 0x7f80_0000

	// MantissaMask selects the 23 explicit mantissa bits.
	MantissaMask uint32 = 0x007f_ffff

	// MantissaBits is the width of the mantissa field.
	MantissaBits = 23

	// ExponentBias is subtracted from the raw exponent field.
	ExponentBias = 127

	// MaxExponent is the largest unbiased exponent of a finite value.
	MaxExponent = 127

	// MinExponent is the smallest unbiased exponent of a normal value.
	MinExponent = -126
)

// Bits returns the raw bit pattern of x.
func Bits(x float32) uint32 {
	return math.Float32bits(x)
}

// FromBits reinterprets b as a float32.
func FromBits(b uint32) float32 {
	return math.Float32frombits(b)
}

// Sign returns the sign bit of x, either 0 or SignMask.
func Sign(x float32) uint32 {
	return Bits(x) & SignMask
}

// IsNegative reports whether the sign bit of x is set. It is true for -0.
func IsNegative(x float32) bool {
	return Sign(x) != 0
}

// RawExponent returns the biased exponent field of x.
func RawExponent(x float32) uint32 {
	return (Bits(x) & ExponentMask) >> MantissaBits
}

// Exponent returns the unbiased exponent of x. Zero and subnormal values
// report -127, Inf and NaN report 128.
func Exponent(x float32) int32 {
	return int32(RawExponent(x)) - ExponentBias
}

// Mantissa returns the explicit 23 mantissa bits of x.
func Mantissa(x float32) uint32 {
	return Bits(x) & MantissaMask
}

// Compose builds a float32 from a sign (0 or SignMask), a biased exponent
// field and mantissa bits. Out of range inputs are masked to their field.
func Compose(sign, rawExp, mantissa uint32) float32 {
	return FromBits(sign&SignMask | (rawExp<<MantissaBits)&ExponentMask | mantissa&MantissaMask)
}

// WithSign returns x with its sign bit replaced by sign (0 or SignMask).
func WithSign(x float32, sign uint32) float32 {
	return FromBits(Bits(x)&^SignMask | sign&SignMask)
}

// WithExponent returns x with its exponent field set to the unbiased
// exponent e. Sign and mantissa are preserved. The caller is responsible
// for keeping e within [MinExponent, MaxExponent].
func WithExponent(x float32, e int32) float32 {
	raw := uint32(e+ExponentBias) << MantissaBits
	return FromBits(Bits(x)&^ExponentMask | raw&ExponentMask)
}

// Normalize splits a positive normal x into m·2^e with m in [1,2) by
// rewriting the exponent field to the bias. The mantissa bits of m equal
// those of x.
func Normalize(x float32) (m float32, e int32) {
	return WithExponent(x, 0), Exponent(x)
}

// IsFinite reports whether x is neither Inf nor NaN.
func IsFinite(x float32) bool {
	return Bits(x)&ExponentMask != ExponentMask
}

// IsNaN reports whether x is a NaN bit pattern.
func IsNaN(x float32) bool {
	b := Bits(x)
	return b&ExponentMask == ExponentMask && b&MantissaMask != 0
}

// IsInf reports whether x is an infinity. sign > 0 tests for +Inf, sign < 0
// for -Inf and sign == 0 for either.
func IsInf(x float32, sign int) bool {
	b := Bits(x)
	if b&^SignMask != ExponentMask {
		return false
	}

	switch {
	case sign > 0:
		return b&SignMask == 0
	case sign < 0:
		return b&SignMask != 0
	default:
		return true
	}
}

// Inf returns +Inf for sign >= 0 and -Inf otherwise.
func Inf(sign int) float32 {
	if sign >= 0 {
		return FromBits(ExponentMask)
	}

	return FromBits(SignMask | ExponentMask)
}

// NaN returns the canonical quiet NaN.
func NaN() float32 {
	return FromBits(0x7fc0_0000)
}
