package f32

import "github.com/cwbudde/algo-fastmath/internal/ieee"

// Abs returns |x| by clearing the sign bit. It is branch-free and
// data-independent.
func Abs(x float32) float32 {
	return ieee.FromBits(ieee.Bits(x) &^ ieee.SignMask)
}

// Copysign returns a value with the magnitude of x and the sign of sign.
func Copysign(x, sign float32) float32 {
	return ieee.WithSign(x, ieee.Sign(sign))
}
