package f32

// Declared accuracy of each approximation. Tests and tools read these values;
// they describe the contract, not the typical error.
const (
	// CosMaxError is the maximum absolute error of Cos for |x| <= CosDomain.
	CosMaxError = 0.002

	// CosDomain bounds the inputs over which the Cos, Sin and Tan bounds
	// hold.
	CosDomain = 1e5

	// SinMaxError is the declared maximum absolute error of Sin. Sin reuses
	// Cos through an exact phase shift and is not separately minimized. It
	// holds for |x| <= CosDomain.
	SinMaxError = 0.06

	// TanMaxError is the maximum absolute error of Tan for |x| <= TanDomain
	// and for the same offsets from multiples of π within CosDomain.
	TanMaxError = 0.6

	// TanDomain bounds the reduced argument over which TanMaxError holds.
	TanDomain = 1.5

	// AtanMaxError is the maximum absolute error of Atan and Atan2 in radians.
	AtanMaxError = 0.002

	// AtanNormMaxErrorDeg is the maximum error of AtanNorm and Atan2Norm,
	// expressed in degrees.
	AtanNormMaxErrorDeg = 0.1620

	// InvSqrtMeanDeviation is the mean relative deviation of InvSqrt and Sqrt.
	InvSqrtMeanDeviation = 0.05

	// InvMeanDeviation is the mean relative deviation of Inv.
	InvMeanDeviation = 0.08

	// LnMaxError is the maximum absolute error of Ln for positive normal inputs.
	LnMaxError = 1e-4

	// ExpMaxRelError is the maximum relative error of Exp for |x| <= ExpDomain.
	ExpMaxRelError = 1e-4

	// ExpDomain bounds the inputs over which ExpMaxRelError holds.
	ExpDomain = 80
)
