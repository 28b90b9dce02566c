package accuracy

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-fastmath/f32"
)

func TestHarmonicsPureSine(t *testing.T) {
	sine := func(x float32) float32 { return float32(math.Sin(float64(x))) }

	res, err := Harmonics(sine, HarmonicsConfig{})
	if err != nil {
		t.Fatalf("Harmonics error: %v", err)
	}

	if math.Abs(res.Fundamental-1) > 1e-5 {
		t.Fatalf("Fundamental = %v, want 1", res.Fundamental)
	}
	if res.THD > 1e-5 {
		t.Fatalf("THD = %v for a float32 sine, want < 1e-5", res.THD)
	}
	if len(res.Harmonics) != defaultMaxHarmonics-1 {
		t.Fatalf("got %d harmonics, want %d", len(res.Harmonics), defaultMaxHarmonics-1)
	}
}

func TestHarmonicsKnownDistortion(t *testing.T) {
	fn := func(x float32) float32 {
		v := float64(x)
		return float32(0.5 + math.Sin(v) + 0.1*math.Sin(2*v) + 0.05*math.Cos(3*v))
	}

	res, err := Harmonics(fn, HarmonicsConfig{FFTSize: 2048, Cycles: 4, MaxHarmonics: 5})
	if err != nil {
		t.Fatalf("Harmonics error: %v", err)
	}

	if math.Abs(res.DC-0.5) > 1e-5 {
		t.Fatalf("DC = %v, want 0.5", res.DC)
	}
	if math.Abs(res.Harmonics[0]-0.1) > 1e-4 || math.Abs(res.Harmonics[1]-0.05) > 1e-4 {
		t.Fatalf("harmonics = %v, want [0.1 0.05 ...]", res.Harmonics)
	}

	wantTHD := math.Sqrt(0.1*0.1 + 0.05*0.05)
	if math.Abs(res.THD-wantTHD) > 1e-4 {
		t.Fatalf("THD = %v, want %v", res.THD, wantTHD)
	}
}

func TestHarmonicsApproximations(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
	}{
		{"sin", f32.Sin},
		{"cos", f32.Cos},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Harmonics(tt.fn, HarmonicsConfig{})
			if err != nil {
				t.Fatalf("Harmonics error: %v", err)
			}
			if math.Abs(res.Fundamental-1) > 0.01 {
				t.Fatalf("Fundamental = %v, want ~1", res.Fundamental)
			}
			if res.THDdB > -40 {
				t.Fatalf("THD = %.1f dB, want below -40 dB", res.THDdB)
			}
		})
	}
}

func TestHarmonicsInvalidSize(t *testing.T) {
	for _, size := range []int{4, 1000, -8} {
		_, err := Harmonics(f32.Sin, HarmonicsConfig{FFTSize: size})
		if !errors.Is(err, ErrFFTSize) {
			t.Errorf("FFTSize %d: error = %v, want ErrFFTSize", size, err)
		}
	}

	if _, err := Harmonics(f32.Sin, HarmonicsConfig{FFTSize: 16, Cycles: 8}); err == nil {
		t.Error("expected error when cycles reach Nyquist")
	}
}
