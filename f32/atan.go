package f32

import "math"

// Rational minimax fit of atan(t) = t*(p0 + p1*t²)/(1 + q1*t²) on [0, 1].
// p1 is chosen so that the fit passes exactly through atan(1) = π/4, which
// keeps the |x| > 1 fold continuous.
const (
	atanP0 = 0.99905
	atanP1 = 0.18776517
	atanQ1 = 0.5111
)

// atanUnit evaluates the rational fit. t must lie in [0, 1].
func atanUnit(t float32) float32 {
	t2 := t * t
	return t * (atanP0 + atanP1*t2) / (1 + atanQ1*t2)
}

// Atan approximates atan(x) in radians with a maximum error of 0.002.
// Arguments with |x| > 1 are folded with atan(x) = π/2 - atan(1/x), so the
// result stays accurate and finite for every input including ±Inf.
func Atan(x float32) float32 {
	a := Abs(x)

	var r float32
	if a > 1 {
		r = math.Pi/2 - atanUnit(1/a)
	} else {
		r = atanUnit(a)
	}

	return Copysign(r, x)
}

// AtanNorm approximates atan(x) scaled to the [-1, 1] range, i.e.
// atan(x)/(π/2), with a maximum error of 0.1620 degrees.
func AtanNorm(x float32) float32 {
	return Atan(x) * (2 / math.Pi)
}

// firstQuadrant returns atan(|y|/|x|) in [0, π/2]. The ratio is always taken
// with the larger magnitude in the denominator.
func firstQuadrant(y, x float32) float32 {
	ax, ay := Abs(x), Abs(y)
	if ax >= ay {
		return atanUnit(ay / ax)
	}

	return math.Pi/2 - atanUnit(ax/ay)
}

// Atan2 approximates the four quadrant arctangent of y/x in radians with a
// maximum error of 0.002. The result lies in (-π, π]; the negative half is
// selected by y < 0, so a negative zero y is treated as positive.
// Atan2(0, 0) = 0.
func Atan2(y, x float32) float32 {
	if x == 0 && y == 0 {
		return 0
	}

	a := firstQuadrant(y, x)
	if x < 0 {
		a = math.Pi - a
	}
	if y < 0 {
		a = -a
	}

	return a
}

// Atan2Norm approximates the four quadrant arctangent in quarter turns: the
// result lies in [0, 4), with 1 pointing along +y, 2 along -x and 3 along -y.
// The maximum error is 0.1620 degrees. Atan2Norm(0, 0) = 0.
func Atan2Norm(y, x float32) float32 {
	if x == 0 && y == 0 {
		return 0
	}

	q := firstQuadrant(y, x) * (2 / math.Pi)
	if x < 0 {
		q = 2 - q
	}
	if y < 0 {
		q = 4 - q
	}
	if q >= 4 {
		q = 0
	}

	return q
}
