// Command approxinfo measures the float32 approximations against float64
// references and prints the declared bound next to the measured error.
//
// Usage:
//
//	approxinfo [flags]
//
// Without -func it measures every known function.
//
// Examples:
//
//	approxinfo
//	approxinfo -func sin,cos -harmonics
//	approxinfo -samples 1000000 -func ln,exp -compare
//	approxinfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	approx "github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-fastmath/f32"
	"github.com/cwbudde/algo-fastmath/f32/block"
	"github.com/cwbudde/algo-fastmath/measure/accuracy"
)

// metric selects which Report statistic a declared bound constrains.
type metric int

const (
	maxAbs metric = iota
	maxRel
	meanRel
)

func (m metric) String() string {
	switch m {
	case maxRel:
		return "max rel"
	case meanRel:
		return "mean rel"
	default:
		return "max abs"
	}
}

func (m metric) of(r accuracy.Report) float64 {
	switch m {
	case maxRel:
		return r.MaxRel
	case meanRel:
		return r.MeanRel
	default:
		return r.MaxAbs
	}
}

// tinyRef keeps every non-zero float32 result in the relative statistics.
const tinyRef = math.SmallestNonzeroFloat32

type funcEntry struct {
	name     string
	fn       accuracy.Func
	ref      accuracy.Reference
	domain   accuracy.Config
	metric   metric
	bound    float64
	periodic bool

	// alt is the algo-approx float64 counterpart, if there is one.
	alt func(float64) float64
}

var registry = []funcEntry{
	{name: "cos", fn: f32.Cos, ref: math.Cos, domain: accuracy.Config{Lo: -f32.CosDomain, Hi: f32.CosDomain}, metric: maxAbs, bound: f32.CosMaxError, periodic: true},
	{name: "sin", fn: f32.Sin, ref: math.Sin, domain: accuracy.Config{Lo: -f32.CosDomain, Hi: f32.CosDomain}, metric: maxAbs, bound: f32.SinMaxError, periodic: true},
	{name: "tan", fn: f32.Tan, ref: math.Tan, domain: accuracy.Config{Lo: -f32.TanDomain, Hi: f32.TanDomain}, metric: maxAbs, bound: f32.TanMaxError},
	{name: "atan", fn: f32.Atan, ref: math.Atan, domain: accuracy.Config{Lo: -100, Hi: 100}, metric: maxAbs, bound: f32.AtanMaxError},
	{
		name: "atan-norm", fn: f32.AtanNorm,
		ref:    func(x float64) float64 { return math.Atan(x) * 2 / math.Pi },
		domain: accuracy.Config{Lo: -100, Hi: 100}, metric: maxAbs, bound: f32.AtanNormMaxErrorDeg / 90,
	},
	{
		name: "invsqrt", fn: f32.InvSqrt,
		ref:    func(x float64) float64 { return 1 / math.Sqrt(x) },
		domain: accuracy.Config{Lo: 1e-30, Hi: 1e30, Geometric: true, RelFloor: tinyRef}, metric: meanRel, bound: f32.InvSqrtMeanDeviation,
	},
	{
		name: "sqrt", fn: f32.Sqrt, ref: math.Sqrt,
		domain: accuracy.Config{Lo: 1e-30, Hi: 1e30, Geometric: true, RelFloor: tinyRef}, metric: meanRel, bound: f32.InvSqrtMeanDeviation,
		alt: approx.FastSqrt[float64],
	},
	{
		name: "inv", fn: f32.Inv,
		ref:    func(x float64) float64 { return 1 / x },
		domain: accuracy.Config{Lo: 1e-30, Hi: 1e30, Geometric: true, RelFloor: tinyRef}, metric: meanRel, bound: f32.InvMeanDeviation,
	},
	{
		name: "ln", fn: f32.Ln, ref: math.Log,
		domain: accuracy.Config{Lo: 1e-30, Hi: 1e30, Geometric: true}, metric: maxAbs, bound: f32.LnMaxError,
		alt: approx.FastLog[float64],
	},
	{
		name: "log2", fn: f32.Log2, ref: math.Log2,
		domain: accuracy.Config{Lo: 1e-30, Hi: 1e30, Geometric: true}, metric: maxAbs, bound: f32.LnMaxError / math.Ln2,
	},
	{
		name: "log10", fn: f32.Log10, ref: math.Log10,
		domain: accuracy.Config{Lo: 1e-30, Hi: 1e30, Geometric: true}, metric: maxAbs, bound: f32.LnMaxError / math.Ln10,
	},
	{
		name: "exp", fn: f32.Exp, ref: math.Exp,
		domain: accuracy.Config{Lo: -f32.ExpDomain, Hi: f32.ExpDomain, RelFloor: tinyRef}, metric: maxRel, bound: f32.ExpMaxRelError,
		alt: approx.FastExp[float64],
	},
}

func main() {
	samples := flag.Int("samples", 0, "sample points per sweep (0 selects the library default)")
	list := flag.Bool("list", false, "list available function names")
	funcs := flag.String("func", "", "comma separated function names to measure (default all)")
	harmonics := flag.Bool("harmonics", false, "also report harmonic distortion of periodic functions")
	compare := flag.Bool("compare", false, "add a column measuring the algo-approx float64 counterpart")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: approxinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Measures the float32 approximations against float64 references.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  approxinfo -func sin,cos -harmonics\n")
		fmt.Fprintf(os.Stderr, "  approxinfo -samples 1000000 -func ln,exp -compare\n")
		fmt.Fprintf(os.Stderr, "  approxinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	var names []string
	if *funcs != "" {
		names = strings.Split(*funcs, ",")
	}

	entries := resolveEntries(os.Stderr, names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching functions\n")
		os.Exit(1)
	}

	fmt.Printf("block kernels: %s\n\n", block.KernelName())

	failed, err := printAccuracy(os.Stdout, entries, *samples, *compare)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *harmonics {
		fmt.Println()
		if err := printHarmonics(os.Stdout, entries); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "error: %d function(s) exceed their declared bound\n", failed)
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		_, _ = fmt.Fprintln(w, n)
	}
}

// resolveEntries maps names onto registry entries in the given order. Unknown
// names are reported to warn and skipped. No names selects the whole registry.
func resolveEntries(warn io.Writer, names []string) []funcEntry {
	if len(names) == 0 {
		return append([]funcEntry(nil), registry...)
	}

	byName := make(map[string]funcEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []funcEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		e, ok := byName[name]
		if !ok {
			_, _ = fmt.Fprintf(warn, "warning: unknown function %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}

	return result
}

func domainLabel(cfg accuracy.Config) string {
	if cfg.Geometric {
		return fmt.Sprintf("[%g, %g] log", cfg.Lo, cfg.Hi)
	}
	return fmt.Sprintf("[%g, %g]", cfg.Lo, cfg.Hi)
}

// printAccuracy sweeps every entry and writes one row each. It returns the
// number of entries whose measured error exceeds the declared bound.
func printAccuracy(w io.Writer, entries []funcEntry, samples int, compare bool) (int, error) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "Function\tDomain\tMetric\tDeclared\tMeasured\tAt\tMax ULP\tStatus"
	rule := "--------\t------\t------\t--------\t--------\t--\t-------\t------"
	if compare {
		header += "\talgo-approx"
		rule += "\t-----------"
	}
	if _, err := fmt.Fprintf(tw, "%s\n%s\n", header, rule); err != nil {
		return 0, fmt.Errorf("write output header: %w", err)
	}

	failed := 0
	for _, e := range entries {
		cfg := e.domain
		cfg.Samples = samples

		r, err := accuracy.Sweep(e.fn, e.ref, cfg)
		if err != nil {
			return failed, fmt.Errorf("%s: %w", e.name, err)
		}

		measured := e.metric.of(r)
		at := r.ArgMaxAbs
		if e.metric != maxAbs {
			at = r.ArgMaxRel
		}

		status := "ok"
		if measured > e.bound || r.NonFinite > 0 {
			status = "FAIL"
			failed++
		}

		row := fmt.Sprintf("%s\t%s\t%s\t%.3g\t%.3g\t%g\t%d\t%s",
			e.name, domainLabel(e.domain), e.metric, e.bound, measured, at, r.MaxULP, status)

		if compare {
			alt := "-"
			if e.alt != nil {
				altFn := e.alt
				ar, err := accuracy.Sweep(func(x float32) float32 { return float32(altFn(float64(x))) }, e.ref, cfg)
				if err != nil {
					return failed, fmt.Errorf("%s algo-approx: %w", e.name, err)
				}
				alt = fmt.Sprintf("%.3g", e.metric.of(ar))
			}
			row += "\t" + alt
		}

		if _, err := fmt.Fprintln(tw, row); err != nil {
			return failed, fmt.Errorf("write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return failed, fmt.Errorf("flush output: %w", err)
	}

	return failed, nil
}

func printHarmonics(w io.Writer, entries []funcEntry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Function\tFundamental\tTHD [dB]\tH2 [dB]\tH3 [dB]\n--------\t-----------\t--------\t-------\t-------\n"); err != nil {
		return fmt.Errorf("write output header: %w", err)
	}

	for _, e := range entries {
		if !e.periodic {
			continue
		}

		res, err := accuracy.Harmonics(e.fn, accuracy.HarmonicsConfig{})
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}

		if _, err := fmt.Fprintf(tw, "%s\t%.6f\t%.1f\t%.1f\t%.1f\n",
			e.name, res.Fundamental, res.THDdB, levelDB(res.Harmonics, 0), levelDB(res.Harmonics, 1)); err != nil {
			return fmt.Errorf("write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}

func levelDB(levels []float64, i int) float64 {
	if i >= len(levels) {
		return math.Inf(-1)
	}
	return 20 * math.Log10(levels[i])
}
