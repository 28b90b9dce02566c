package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-fastmath/internal/ieee"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float32, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float32) {
	t.Helper()
	for i, v := range data {
		if !ieee.IsFinite(v) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireAbsWithin fails t if |got-want| > eps. x is the input that produced
// got and is only used in the failure message.
func RequireAbsWithin(t *testing.T, name string, x float32, got float32, want, eps float64) {
	t.Helper()
	if diff := math.Abs(float64(got) - want); !(diff <= eps) {
		t.Fatalf("%s(%v) = %v, want %v (diff %v > eps %v)", name, x, got, want, diff, eps)
	}
}

// RequireRelWithin fails t if |got-want|/|want| > eps. want must be non-zero.
func RequireRelWithin(t *testing.T, name string, x float32, got float32, want, eps float64) {
	t.Helper()
	if rel := math.Abs(float64(got)-want) / math.Abs(want); !(rel <= eps) {
		t.Fatalf("%s(%v) = %v, want %v (rel %v > eps %v)", name, x, got, want, rel, eps)
	}
}

// RequireSameBits fails t unless got and want have identical bit patterns,
// which distinguishes -0 from +0 and compares NaN payloads.
func RequireSameBits(t *testing.T, name string, got, want float32) {
	t.Helper()
	if math.Float32bits(got) != math.Float32bits(want) {
		t.Fatalf("%s = %v (%#08x), want %v (%#08x)", name, got, math.Float32bits(got), want, math.Float32bits(want))
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
