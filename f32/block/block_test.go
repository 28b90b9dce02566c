package block

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fastmath/f32"
	"github.com/cwbudde/algo-fastmath/internal/testutil"
)

func TestKernelSelected(t *testing.T) {
	if name := KernelName(); name != "generic" {
		t.Fatalf("KernelName = %q, want generic", name)
	}
}

func TestUnaryMatchesScalar(t *testing.T) {
	tests := []struct {
		name   string
		block  func(dst, src []float32)
		scalar func(float32) float32
		lo, hi float64
	}{
		{"abs", Abs, f32.Abs, -10, 10},
		{"floor", Floor, f32.Floor, -10, 10},
		{"round", Round, f32.Round, -10, 10},
		{"sqrt", Sqrt, f32.Sqrt, 0.01, 1000},
		{"invsqrt", InvSqrt, f32.InvSqrt, 0.01, 1000},
		{"cos", Cos, f32.Cos, -10, 10},
		{"sin", Sin, f32.Sin, -10, 10},
		{"tan", Tan, f32.Tan, -1.4, 1.4},
		{"atan", Atan, f32.Atan, -50, 50},
		{"ln", Ln, f32.Ln, 0.01, 1000},
		{"exp", Exp, f32.Exp, -20, 20},
	}

	sizes := []int{0, 1, 3, 16, 17, 257}

	for _, tt := range tests {
		for _, n := range sizes {
			src := testutil.Linspace(tt.lo, tt.hi, n)
			dst := make([]float32, n)

			tt.block(dst, src)

			for i := range dst {
				if math.Float32bits(dst[i]) != math.Float32bits(tt.scalar(src[i])) {
					t.Fatalf("%s n=%d [%d]: got %v, want %v", tt.name, n, i, dst[i], tt.scalar(src[i]))
				}
			}
		}
	}
}

func TestInPlace(t *testing.T) {
	buf := testutil.Linspace(-3, 3, 64)
	want := make([]float32, len(buf))
	for i, x := range buf {
		want[i] = f32.Cos(x)
	}

	Cos(buf, buf)

	testutil.RequireSliceNearlyEqual(t, buf, want, 0)
}

func TestAtan2(t *testing.T) {
	y := testutil.DeterministicUniform(1, -5, 5, 128)
	x := testutil.DeterministicUniform(2, -5, 5, 128)
	dst := make([]float32, len(y))

	Atan2(dst, y, x)

	for i := range dst {
		want := math.Atan2(float64(y[i]), float64(x[i]))
		testutil.RequireAbsWithin(t, "Atan2", y[i], dst[i], want, f32.AtanMaxError)
	}
}

func TestPowf(t *testing.T) {
	src := testutil.Geomspace(0.1, 10, 100)
	dst := make([]float32, len(src))

	Powf(dst, src, 2.5)

	for i, x := range src {
		want := math.Pow(float64(x), 2.5)
		testutil.RequireRelWithin(t, "Powf", x, dst[i], want, 1e-3)
	}
}

func TestBlockAccuracy(t *testing.T) {
	tests := []struct {
		name   string
		block  func(dst, src []float32)
		ref    func(float64) float64
		src    []float32
		maxAbs float64
	}{
		{"cos", Cos, math.Cos, testutil.DeterministicUniform(3, -f32.CosDomain, f32.CosDomain, 4096), f32.CosMaxError},
		{"sin", Sin, math.Sin, testutil.DeterministicUniform(4, -f32.CosDomain, f32.CosDomain, 4096), f32.CosMaxError},
		{"atan", Atan, math.Atan, testutil.Linspace(-1e4, 1e4, 4096), f32.AtanMaxError},
		{"ln", Ln, math.Log, testutil.Geomspace(1e-30, 1e30, 4096), f32.LnMaxError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]float32, len(tt.src))
			want := make([]float32, len(tt.src))
			for i, x := range tt.src {
				want[i] = float32(tt.ref(float64(x)))
			}

			tt.block(dst, tt.src)

			testutil.RequireFinite(t, dst)
			// want is rounded to float32, which adds up to half an ulp.
			diff, err := testutil.MaxAbsDiff(dst, want)
			if err != nil {
				t.Fatalf("MaxAbsDiff: %v", err)
			}
			if diff > tt.maxAbs+4e-6 {
				t.Fatalf("max abs error %v > %v", diff, tt.maxAbs)
			}
		})
	}
}

func TestLengthMismatchPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Atan2 should panic on mismatched lengths")
		}
	}()
	Atan2(make([]float32, 4), make([]float32, 4), make([]float32, 5))
}

func TestZeroAlloc(t *testing.T) {
	src := testutil.Linspace(0.5, 4, 256)
	dst := make([]float32, len(src))

	allocs := testing.AllocsPerRun(100, func() {
		Sin(dst, src)
		Ln(dst, src)
		Powf(dst, src, 0.5)
	})
	if allocs != 0 {
		t.Fatalf("block kernels allocated %v times per run", allocs)
	}
}
