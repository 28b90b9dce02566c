// Package accuracy measures how far float32 approximations deviate from a
// float64 reference.
//
// Sweep samples a function over a domain and reports absolute, relative and
// ULP error statistics. Harmonics treats a periodic approximation as a
// signal and reports the harmonic distortion its error introduces, using an
// FFT of whole periods.
package accuracy

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-fastmath/internal/ieee"
)

const (
	defaultSamples  = 100_001
	defaultRelFloor = 1e-6
)

var (
	// ErrEmptyDomain is returned when a sweep domain contains no points.
	ErrEmptyDomain = errors.New("accuracy: empty sweep domain")

	// ErrFFTSize is returned when a harmonic analysis size is not a power of
	// two of at least 8.
	ErrFFTSize = errors.New("accuracy: FFT size must be a power of two >= 8")
)

// Func is a float32 approximation under test.
type Func func(float32) float32

// Reference is the float64 function an approximation is measured against.
type Reference func(float64) float64

// Config holds sweep parameters.
type Config struct {
	// Lo and Hi bound the sampled domain, both inclusive.
	Lo, Hi float64

	// Samples is the number of evenly spaced inputs. Zero selects the default.
	Samples int

	// Geometric spaces the samples logarithmically. Lo and Hi must then have
	// the same sign and be non-zero.
	Geometric bool

	// RelFloor excludes samples whose reference magnitude is below it from
	// the relative statistics. Zero selects the default.
	RelFloor float64
}

// Report holds sweep results.
type Report struct {
	Samples int

	MaxAbs    float64
	ArgMaxAbs float32
	MeanAbs   float64

	MaxRel    float64
	ArgMaxRel float32
	MeanRel   float64

	// MaxULP is the largest distance, in units in the last place, between
	// the approximation and the reference rounded to float32.
	MaxULP uint32

	// NonFinite counts samples where the approximation produced NaN or Inf
	// while the reference was finite.
	NonFinite int
}

func normalizeConfig(cfg Config) (Config, error) {
	if cfg.Samples == 0 {
		cfg.Samples = defaultSamples
	}

	if cfg.RelFloor <= 0 {
		cfg.RelFloor = defaultRelFloor
	}

	switch {
	case cfg.Samples < 0:
		return cfg, fmt.Errorf("%w: %d samples", ErrEmptyDomain, cfg.Samples)
	case math.IsNaN(cfg.Lo) || math.IsNaN(cfg.Hi) || cfg.Hi < cfg.Lo:
		return cfg, fmt.Errorf("%w: [%v, %v]", ErrEmptyDomain, cfg.Lo, cfg.Hi)
	case cfg.Geometric && (cfg.Lo*cfg.Hi <= 0):
		return cfg, fmt.Errorf("%w: geometric sweep over [%v, %v] crosses zero", ErrEmptyDomain, cfg.Lo, cfg.Hi)
	}

	return cfg, nil
}

// Inputs returns the float32 sample points a sweep with cfg visits.
func Inputs(cfg Config) ([]float32, error) {
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return nil, err
	}

	xs := make([]float32, cfg.Samples)
	if cfg.Samples == 1 {
		xs[0] = float32(cfg.Lo)
		return xs, nil
	}

	n := float64(cfg.Samples - 1)
	for i := range xs {
		f := float64(i) / n
		if cfg.Geometric {
			xs[i] = float32(math.Copysign(math.Abs(cfg.Lo)*math.Pow(cfg.Hi/cfg.Lo, f), cfg.Lo))
		} else {
			xs[i] = float32(cfg.Lo + (cfg.Hi-cfg.Lo)*f)
		}
	}

	return xs, nil
}

// Sweep evaluates fn and ref at every sample point of cfg. The reference is
// evaluated at the float32 input so that input quantization is not counted
// as error.
func Sweep(fn Func, ref Reference, cfg Config) (Report, error) {
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return Report{}, err
	}

	xs, err := Inputs(cfg)
	if err != nil {
		return Report{}, err
	}

	var (
		r              Report
		sumAbs, sumRel float64
		relCount       int
	)

	for _, x := range xs {
		want := ref(float64(x))
		if math.IsNaN(want) || math.IsInf(want, 0) {
			continue
		}

		got := fn(x)
		r.Samples++

		if !ieee.IsFinite(got) {
			r.NonFinite++
			continue
		}
		g := float64(got)

		abs := math.Abs(g - want)
		sumAbs += abs
		if abs > r.MaxAbs {
			r.MaxAbs, r.ArgMaxAbs = abs, x
		}

		if math.Abs(want) >= cfg.RelFloor {
			rel := abs / math.Abs(want)
			sumRel += rel
			relCount++
			if rel > r.MaxRel {
				r.MaxRel, r.ArgMaxRel = rel, x
			}
		}

		if ulp := ULPDistance(got, float32(want)); ulp > r.MaxULP {
			r.MaxULP = ulp
		}
	}

	if finite := r.Samples - r.NonFinite; finite > 0 {
		r.MeanAbs = sumAbs / float64(finite)
	}
	if relCount > 0 {
		r.MeanRel = sumRel / float64(relCount)
	}

	return r, nil
}

// ULPDistance returns the number of representable float32 values between a
// and b. NaN operands report the maximum distance.
func ULPDistance(a, b float32) uint32 {
	if ieee.IsNaN(a) || ieee.IsNaN(b) {
		return math.MaxUint32
	}

	oa, ob := orderedBits(a), orderedBits(b)
	if oa > ob {
		return uint32(oa - ob)
	}

	return uint32(ob - oa)
}

// orderedBits maps float32 bit patterns onto a monotonic integer line, with
// -0 and +0 sharing a position.
func orderedBits(x float32) int64 {
	b := ieee.Bits(x)
	if b&ieee.SignMask != 0 {
		return -int64(b &^ ieee.SignMask)
	}

	return int64(b)
}
