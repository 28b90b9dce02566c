package accuracy

import (
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
)

const (
	defaultFFTSize      = 4096
	defaultCycles       = 8
	defaultMaxHarmonics = 10
)

// HarmonicsConfig holds harmonic analysis parameters.
type HarmonicsConfig struct {
	// FFTSize is the number of samples taken. It must be a power of two.
	FFTSize int

	// Cycles is the number of whole periods covered by the samples, which
	// places the fundamental exactly on bin Cycles.
	Cycles int

	// MaxHarmonics is the highest harmonic order reported, starting at 2.
	MaxHarmonics int

	// Period of the function in its input units. Zero selects 2π.
	Period float64
}

// HarmonicsResult holds harmonic analysis results. Amplitudes are peak
// values; harmonic levels are relative to the fundamental.
type HarmonicsResult struct {
	Fundamental float64
	DC          float64

	// Harmonics[i] is the level of harmonic order i+2.
	Harmonics []float64

	THD   float64
	THDdB float64
}

func normalizeHarmonicsConfig(cfg HarmonicsConfig) (HarmonicsConfig, error) {
	if cfg.FFTSize == 0 {
		cfg.FFTSize = defaultFFTSize
	}
	if cfg.Cycles <= 0 {
		cfg.Cycles = defaultCycles
	}
	if cfg.MaxHarmonics <= 0 {
		cfg.MaxHarmonics = defaultMaxHarmonics
	}
	if cfg.Period <= 0 {
		cfg.Period = 2 * math.Pi
	}

	if cfg.FFTSize < 8 || bits.OnesCount(uint(cfg.FFTSize)) != 1 {
		return cfg, fmt.Errorf("%w: got %d", ErrFFTSize, cfg.FFTSize)
	}
	if 2*cfg.Cycles >= cfg.FFTSize {
		return cfg, fmt.Errorf("accuracy: %d cycles exceed Nyquist for FFT size %d", cfg.Cycles, cfg.FFTSize)
	}

	return cfg, nil
}

// Harmonics samples fn over cfg.Cycles whole periods and reports the
// spectral content of the result. For an approximation of a pure sinusoid
// the harmonics are produced entirely by the approximation error.
func Harmonics(fn Func, cfg HarmonicsConfig) (HarmonicsResult, error) {
	cfg, err := normalizeHarmonicsConfig(cfg)
	if err != nil {
		return HarmonicsResult{}, err
	}

	n := cfg.FFTSize
	step := cfg.Period * float64(cfg.Cycles) / float64(n)

	inData := make([]complex128, n)
	for i := range inData {
		inData[i] = complex(float64(fn(float32(step*float64(i)))), 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return HarmonicsResult{}, fmt.Errorf("accuracy: fft plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, inData); err != nil {
		return HarmonicsResult{}, fmt.Errorf("accuracy: fft forward: %w", err)
	}

	scale := 2 / float64(n)
	amplitude := func(bin int) float64 {
		c := out[bin]
		return math.Hypot(real(c), imag(c)) * scale
	}

	res := HarmonicsResult{
		Fundamental: amplitude(cfg.Cycles),
		DC:          math.Abs(real(out[0])) / float64(n),
	}
	if res.Fundamental == 0 {
		return res, nil
	}

	var sumSq float64
	for order := 2; order <= cfg.MaxHarmonics; order++ {
		bin := order * cfg.Cycles
		if bin >= n/2 {
			break
		}

		level := amplitude(bin) / res.Fundamental
		res.Harmonics = append(res.Harmonics, level)
		sumSq += level * level
	}

	res.THD = math.Sqrt(sumSq)
	res.THDdB = 20 * math.Log10(res.THD)

	return res, nil
}
