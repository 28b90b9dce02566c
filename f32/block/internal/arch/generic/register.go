// Package generic registers the pure Go block kernels. They loop over the
// scalar approximations of package f32 and are always available.
package generic

import (
	"github.com/cwbudde/algo-fastmath/f32"
	"github.com/cwbudde/algo-fastmath/f32/block/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(Entry())
}

// Entry returns the generic implementation entry with every kernel set.
func Entry() registry.OpEntry {
	return registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Abs:     unary(f32.Abs),
		Floor:   unary(f32.Floor),
		Round:   unary(f32.Round),
		Sqrt:    unary(f32.Sqrt),
		InvSqrt: unary(f32.InvSqrt),
		Cos:     unary(f32.Cos),
		Sin:     unary(f32.Sin),
		Tan:     unary(f32.Tan),
		Atan:    unary(f32.Atan),
		Ln:      unary(f32.Ln),
		Exp:     unary(f32.Exp),

		Atan2: atan2Block,
		Powf:  powfBlock,
	}
}

func unary(fn func(float32) float32) registry.UnaryFn {
	return func(dst, src []float32) {
		if len(dst) != len(src) {
			panic("block: slice length mismatch")
		}
		for i, x := range src {
			dst[i] = fn(x)
		}
	}
}

func atan2Block(dst, y, x []float32) {
	if len(y) != len(x) || len(dst) != len(y) {
		panic("block: slice length mismatch")
	}
	for i := range dst {
		dst[i] = f32.Atan2(y[i], x[i])
	}
}

func powfBlock(dst, src []float32, n float32) {
	if len(dst) != len(src) {
		panic("block: slice length mismatch")
	}
	for i, x := range src {
		dst[i] = f32.Powf(x, n)
	}
}
