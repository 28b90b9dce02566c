package testutil

import (
	"math"
	"math/rand"
)

// Linspace returns n evenly spaced float32 samples covering [lo, hi].
func Linspace(lo, hi float64, n int) []float32 {
	if n <= 0 {
		return nil
	}
	out := make([]float32, n)
	if n == 1 {
		out[0] = float32(lo)
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = float32(lo + step*float64(i))
	}
	return out
}

// Geomspace returns n geometrically spaced float32 samples covering [lo, hi].
// Both bounds must be positive.
func Geomspace(lo, hi float64, n int) []float32 {
	if n <= 0 {
		return nil
	}
	out := make([]float32, n)
	if n == 1 {
		out[0] = float32(lo)
		return out
	}
	ratio := math.Log(hi/lo) / float64(n-1)
	for i := range out {
		out[i] = float32(lo * math.Exp(ratio*float64(i)))
	}
	return out
}

// DeterministicUniform returns n uniform samples in [lo, hi) drawn with a
// fixed seed for reproducibility.
func DeterministicUniform(seed int64, lo, hi float64, n int) []float32 {
	out := make([]float32, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32(lo + rng.Float64()*(hi-lo))
	}
	return out
}
