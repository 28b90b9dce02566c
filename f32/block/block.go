// Package block applies the f32 approximations to whole slices.
//
// Every function writes f(src[i]) to dst[i]. dst and src must have equal
// length, otherwise the call panics; dst may alias src for in-place
// processing. No function allocates.
//
// The kernel set is chosen once, on first use, from the implementations
// registered for the running CPU. Only the pure Go kernels exist today, so
// results are bit-identical to calling the scalar functions in a loop.
package block

import (
	"sync"

	"github.com/cwbudde/algo-fastmath/f32/block/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"

	_ "github.com/cwbudde/algo-fastmath/f32/block/internal/arch/generic"
)

var (
	kernelsOnce sync.Once
	kernels     *registry.OpEntry
)

func impl() *registry.OpEntry {
	kernelsOnce.Do(initKernels)
	return kernels
}

func initKernels() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("block: no kernel registered (missing generic fallback?)")
	}

	kernels = entry
}

// KernelName returns the name of the selected implementation.
func KernelName() string {
	return impl().Name
}

// Abs computes dst[i] = f32.Abs(src[i]).
func Abs(dst, src []float32) { impl().Abs(dst, src) }

// Floor computes dst[i] = f32.Floor(src[i]).
func Floor(dst, src []float32) { impl().Floor(dst, src) }

// Round computes dst[i] = f32.Round(src[i]).
func Round(dst, src []float32) { impl().Round(dst, src) }

// Sqrt computes dst[i] = f32.Sqrt(src[i]).
func Sqrt(dst, src []float32) { impl().Sqrt(dst, src) }

// InvSqrt computes dst[i] = f32.InvSqrt(src[i]).
func InvSqrt(dst, src []float32) { impl().InvSqrt(dst, src) }

// Cos computes dst[i] = f32.Cos(src[i]).
func Cos(dst, src []float32) { impl().Cos(dst, src) }

// Sin computes dst[i] = f32.Sin(src[i]).
func Sin(dst, src []float32) { impl().Sin(dst, src) }

// Tan computes dst[i] = f32.Tan(src[i]).
func Tan(dst, src []float32) { impl().Tan(dst, src) }

// Atan computes dst[i] = f32.Atan(src[i]).
func Atan(dst, src []float32) { impl().Atan(dst, src) }

// Ln computes dst[i] = f32.Ln(src[i]).
func Ln(dst, src []float32) { impl().Ln(dst, src) }

// Exp computes dst[i] = f32.Exp(src[i]).
func Exp(dst, src []float32) { impl().Exp(dst, src) }

// Atan2 computes dst[i] = f32.Atan2(y[i], x[i]). All three slices must have
// equal length.
func Atan2(dst, y, x []float32) { impl().Atan2(dst, y, x) }

// Powf computes dst[i] = f32.Powf(src[i], n).
func Powf(dst, src []float32, n float32) { impl().Powf(dst, src, n) }
