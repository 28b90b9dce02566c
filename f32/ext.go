package f32

// Ext is the method set offered by Float, for call sites that prefer
// x.Sin() over Sin(x). Every method forwards to the free function of the
// same name.
type Ext interface {
	Abs() float32
	Atan() float32
	AtanNorm() float32
	Atan2(x float32) float32
	Atan2Norm(x float32) float32
	Ceil() float32
	Copysign(sign float32) float32
	Cos() float32
	Exp() float32
	Floor() float32
	Fract() float32
	Inv() float32
	InvSqrt() float32
	Ln() float32
	Log(base float32) float32
	Log10() float32
	Log2() float32
	Powf(n float32) float32
	Round() float32
	Sin() float32
	Sqrt() float32
	Tan() float32
	Trunc() float32
}

// Float is a float32 carrying the approximations as methods.
type Float float32

var _ Ext = Float(0)

// Abs returns |f|. See Abs.
func (f Float) Abs() float32 { return Abs(float32(f)) }

// Atan approximates atan(f). See Atan.
func (f Float) Atan() float32 { return Atan(float32(f)) }

// AtanNorm approximates atan(f)/(π/2). See AtanNorm.
func (f Float) AtanNorm() float32 { return AtanNorm(float32(f)) }

// Atan2 approximates the four quadrant arctangent with f as the y
// coordinate, so Float(y).Atan2(x) == Atan2(y, x).
func (f Float) Atan2(x float32) float32 { return Atan2(float32(f), x) }

// Atan2Norm is Atan2 in quarter turns, with f as the y coordinate.
func (f Float) Atan2Norm(x float32) float32 { return Atan2Norm(float32(f), x) }

// Ceil returns the least integer value >= f.
func (f Float) Ceil() float32 { return Ceil(float32(f)) }

// Copysign returns |f| with the sign of sign.
func (f Float) Copysign(sign float32) float32 { return Copysign(float32(f), sign) }

// Cos approximates cos(f).
func (f Float) Cos() float32 { return Cos(float32(f)) }

// Exp approximates e^f.
func (f Float) Exp() float32 { return Exp(float32(f)) }

// Floor returns the greatest integer value <= f.
func (f Float) Floor() float32 { return Floor(float32(f)) }

// Fract returns the signed fractional part of f.
func (f Float) Fract() float32 { return Fract(float32(f)) }

// Inv approximates 1/f.
func (f Float) Inv() float32 { return Inv(float32(f)) }

// InvSqrt approximates 1/sqrt(f).
func (f Float) InvSqrt() float32 { return InvSqrt(float32(f)) }

// Ln approximates the natural logarithm of f.
func (f Float) Ln() float32 { return Ln(float32(f)) }

// Log approximates the logarithm of f to base.
func (f Float) Log(base float32) float32 { return Log(float32(f), base) }

// Log10 approximates log10(f).
func (f Float) Log10() float32 { return Log10(float32(f)) }

// Log2 approximates log2(f).
func (f Float) Log2() float32 { return Log2(float32(f)) }

// Powf approximates f^n.
func (f Float) Powf(n float32) float32 { return Powf(float32(f), n) }

// Round rounds f to the nearest integer, ties away from zero.
func (f Float) Round() float32 { return Round(float32(f)) }

// Sin approximates sin(f).
func (f Float) Sin() float32 { return Sin(float32(f)) }

// Sqrt approximates sqrt(f).
func (f Float) Sqrt() float32 { return Sqrt(float32(f)) }

// Tan approximates tan(f).
func (f Float) Tan() float32 { return Tan(float32(f)) }

// Trunc returns the integer part of f.
func (f Float) Trunc() float32 { return Trunc(float32(f)) }
