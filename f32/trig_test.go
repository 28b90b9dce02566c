package f32

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fastmath/internal/testutil"
)

// sinVectors are (input, output) pairs sampled over one period.
var sinVectors = []struct{ x, want float32 }{
	{0.000, 0.000}, {0.140, 0.139}, {0.279, 0.276}, {0.419, 0.407},
	{0.559, 0.530}, {0.698, 0.643}, {0.838, 0.743}, {0.977, 0.829},
	{1.117, 0.899}, {1.257, 0.951}, {1.396, 0.985}, {1.536, 0.999},
	{1.676, 0.995}, {1.815, 0.970}, {1.955, 0.927}, {2.094, 0.866},
	{2.234, 0.788}, {2.374, 0.695}, {2.513, 0.588}, {2.653, 0.469},
	{2.793, 0.342}, {2.932, 0.208}, {3.072, 0.070}, {3.211, -0.070},
	{3.351, -0.208}, {3.491, -0.342}, {3.630, -0.469}, {3.770, -0.588},
	{3.910, -0.695}, {4.049, -0.788}, {4.189, -0.866}, {4.328, -0.927},
	{4.468, -0.970}, {4.608, -0.995}, {4.747, -0.999}, {4.887, -0.985},
	{5.027, -0.951}, {5.166, -0.899}, {5.306, -0.829}, {5.445, -0.743},
	{5.585, -0.643}, {5.725, -0.530}, {5.864, -0.407}, {6.004, -0.276},
	{6.144, -0.139}, {6.283, 0.000},
}

func TestSinVectors(t *testing.T) {
	for _, v := range sinVectors {
		testutil.RequireAbsWithin(t, "Sin", v.x, Sin(v.x), float64(v.want), SinMaxError)
	}

	testutil.RequireAbsWithin(t, "Sin", math.Pi, Sin(math.Pi), 0, SinMaxError)
	testutil.RequireAbsWithin(t, "Sin", 2*math.Pi, Sin(2*math.Pi), 0, SinMaxError)
}

func TestCosSinSweep(t *testing.T) {
	xs := testutil.Linspace(-100, 100, 200001)

	for _, x := range xs {
		v := float64(x)
		testutil.RequireAbsWithin(t, "Cos", x, Cos(x), math.Cos(v), CosMaxError)
		// Sin inherits the error of Cos exactly; the declared SinMaxError
		// leaves headroom that the measured error never needs.
		testutil.RequireAbsWithin(t, "Sin", x, Sin(x), math.Sin(v), CosMaxError)
	}
}

func TestCosSinFullDomain(t *testing.T) {
	xs := testutil.DeterministicUniform(7, -CosDomain, CosDomain, 200001)
	xs = append(xs, 1946, 5964, 19831.5, -19831.5, 65536, CosDomain, -CosDomain)

	for _, x := range xs {
		v := float64(x)
		testutil.RequireAbsWithin(t, "Cos", x, Cos(x), math.Cos(v), CosMaxError)
		testutil.RequireAbsWithin(t, "Sin", x, Sin(x), math.Sin(v), CosMaxError)
	}
}

func TestCosBeyondDomainBounded(t *testing.T) {
	for _, x := range []float32{3e7, -3e7, 1e30, math.MaxFloat32, -math.MaxFloat32} {
		c, s := Cos(x), Sin(x)
		if !(c >= -1 && c <= 1) || !(s >= -1 && s <= 1) {
			t.Errorf("Cos(%v) = %v, Sin(%v) = %v, want values in [-1, 1]", x, c, x, s)
		}
	}
}

func TestCosExactPoints(t *testing.T) {
	tests := []struct {
		x, want float32
	}{
		{0, 1},
		{math.Pi, -1},
		{-math.Pi, -1},
		{2 * math.Pi, 1},
		{math.Pi / 2, 0},
	}

	for _, tt := range tests {
		testutil.RequireAbsWithin(t, "Cos", tt.x, Cos(tt.x), float64(tt.want), 1e-6)
	}
}

func TestPythagoreanIdentity(t *testing.T) {
	for _, x := range testutil.Linspace(-10, 10, 20001) {
		s, c := Sin(x), Cos(x)
		testutil.RequireAbsWithin(t, "sin²+cos²", x, s*s+c*c, 1, 2*CosMaxError+1e-3)
	}
}

func TestTanAccuracy(t *testing.T) {
	maxK := int(math.Floor(CosDomain/math.Pi)) - 1
	for _, k := range []int{-maxK, -6301, -2, -1, 0, 1, 2, 6312, maxK} {
		shift := float64(k) * math.Pi
		for _, x := range testutil.Linspace(shift-TanDomain, shift+TanDomain, 30001) {
			// Input rounding can push x past the window edge near large shifts.
			if math.Abs(float64(x)-shift) > TanDomain {
				continue
			}
			testutil.RequireAbsWithin(t, "Tan", x, Tan(x), math.Tan(float64(x)), TanMaxError)
		}
	}
}

func TestTanPoleGuard(t *testing.T) {
	if got := Tan(math.Pi / 2); !math.IsInf(float64(got), 1) {
		t.Fatalf("Tan(π/2) = %v, want +Inf", got)
	}
	if got := Tan(-math.Pi / 2); !math.IsInf(float64(got), -1) {
		t.Fatalf("Tan(-π/2) = %v, want -Inf", got)
	}

	near := float32(math.Pi/2 - 0.01)
	if got := Tan(near); got < 50 || math.IsInf(float64(got), 0) {
		t.Fatalf("Tan(%v) = %v, want a large finite value", near, got)
	}
}

func TestAtanOfTan(t *testing.T) {
	for _, x := range testutil.Linspace(-TanDomain, TanDomain, 30001) {
		testutil.RequireAbsWithin(t, "Atan(Tan)", x, Atan(Tan(x)), float64(x), AtanMaxError)
	}
}

func TestTrigNonFinite(t *testing.T) {
	for _, x := range []float32{float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1))} {
		if got := Cos(x); !math.IsNaN(float64(got)) {
			t.Errorf("Cos(%v) = %v, want NaN", x, got)
		}
		if got := Sin(x); !math.IsNaN(float64(got)) {
			t.Errorf("Sin(%v) = %v, want NaN", x, got)
		}
	}
}
