package f32

import (
	"math"

	"github.com/cwbudde/algo-fastmath/internal/ieee"
)

// Minimax fit of ln(1+t) for t in [0, 1), pinned to 0 at t = 0 and ln 2 at
// t = 1 so adjacent binades join without a step. The fit is evaluated as
// t + t*r(t), where r is small, so rounding never makes Ln decrease.
const (
	lnR1 = -0.002751316643829993
	lnR2 = -0.46980401714885034
	lnR3 = 0.222631150355642
	lnR4 = -0.05692863600301639
)

const (
	// ExpTerms is the number of series terms Exp uses for exp(r) with
	// |r| <= ln(2)/2. Four terms keep Exp within ExpMaxRelError.
	ExpTerms = 4

	// MaxExpTerms caps the term count accepted by ExpSeries.
	MaxExpTerms = 12
)

// Exp saturates outside these limits before the reduction is computed, so
// the integer multiple of ln 2 always fits the exponent arithmetic.
const (
	expOverflow  = 89
	expUnderflow = -104
)

// ln 2 split so that e*ln2Hi is exact for every float32 exponent.
const (
	ln2Hi = 0.693145751953125
	ln2Lo = math.Ln2 - ln2Hi
)

// subnormalScale lifts subnormals into the normal range before decomposition.
const subnormalScale = 1 << 24

// Ln approximates the natural logarithm of x with a maximum absolute error of
// 1e-4 for positive inputs.
//
// x is split into m·2^e with m in [1, 2) by rewriting its exponent field,
// ln(m) is taken from a quartic fit in m-1 and the result is ln(m) + e·ln(2).
// Ln is non-decreasing over all positive floats.
// Ln(1) = 0 exactly, Ln(±0) = -Inf, Ln(+Inf) = +Inf, and negative or NaN
// inputs return NaN. Subnormal inputs are pre-scaled by 2^24.
func Ln(x float32) float32 {
	switch {
	case x == 1:
		return 0
	case x == 0:
		return ieee.Inf(-1)
	case !(x > 0):
		return ieee.NaN()
	case ieee.IsInf(x, 1):
		return x
	}

	var bias int32
	if ieee.RawExponent(x) == 0 {
		x *= subnormalScale
		bias = -24
	}

	m, e := ieee.Normalize(x)
	t := m - 1
	r := lnR1 + t*(lnR2+t*(lnR3+t*lnR4))
	p := t + float32(t*r)

	fe := float32(e + bias)
	return fe*ln2Hi + (p + float32(fe*ln2Lo))
}

// Log2 approximates log2(x) as Ln(x)/ln(2). It inherits the domain policy
// of Ln.
func Log2(x float32) float32 {
	return Ln(x) / math.Ln2
}

// Log10 approximates log10(x) as Ln(x)/ln(10). It inherits the domain
// policy of Ln.
func Log10(x float32) float32 {
	return Ln(x) / math.Ln10
}

// Log approximates the logarithm of x to the given base as Ln(x)/Ln(base).
// Both arguments follow the domain policy of Ln; a base of 1 divides by zero
// and yields ±Inf or NaN.
func Log(x, base float32) float32 {
	return Ln(x) / Ln(base)
}

// Exp approximates e^x with a relative error of at most 1e-4 for |x| <= 80,
// using ExpTerms series terms. See ExpSeries.
func Exp(x float32) float32 {
	return ExpSeries(x, ExpTerms)
}

// ExpSeries approximates e^x with the given number of series terms.
//
// x is split into k·ln(2) + r with k = Round(x/ln(2)) and |r| <= ln(2)/2.
// exp(r) is summed from terms Taylor terms in Horner form, and the factor
// 2^k is applied by adding k to the exponent field of the result. terms is
// clamped to [0, MaxExpTerms]; zero terms return the bare power of two.
//
// Results above the float32 range are +Inf, results below the smallest
// normal value flush to +0, and NaN inputs return NaN.
func ExpSeries(x float32, terms int) float32 {
	switch {
	case ieee.IsNaN(x):
		return x
	case x > expOverflow:
		return ieee.Inf(1)
	case x < expUnderflow:
		return 0
	}

	terms = min(max(terms, 0), MaxExpTerms)

	k := Round(x * math.Log2E)
	r := x - k*math.Ln2

	p := float32(1)
	for i := terms; i >= 1; i-- {
		p = 1 + r/float32(i)*p
	}

	e := ieee.Exponent(p) + int32(k)

	switch {
	case e > ieee.MaxExponent:
		return ieee.Inf(1)
	case e < ieee.MinExponent:
		return 0
	}

	return ieee.WithExponent(p, e)
}

// Powf approximates x^n as Exp(n·Ln(x)).
//
// Powf(x, 0) = 1 for every x. Otherwise the domain policy of Ln applies:
// negative x yields NaN even for integral n, Powf(0, n) is 0 for n > 0 and
// +Inf for n < 0. The relative error grows with |n·Ln(x)|.
func Powf(x, n float32) float32 {
	if n == 0 {
		return 1
	}

	return Exp(n * Ln(x))
}
