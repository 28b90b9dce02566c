package block

import (
	"sync"
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-fastmath/f32"
	"github.com/cwbudde/algo-fastmath/f32/block/internal/arch/registry"
)

func resetKernelsForTest() {
	kernels = nil
	kernelsOnce = sync.Once{}
}

func TestDispatchForcedFeatures(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
	}{
		{"generic-forced", cpu.Features{ForceGeneric: true, HasAVX2: true, HasSSE2: true}},
		{"avx2", cpu.Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"}},
		{"neon", cpu.Features{HasNEON: true, Architecture: "arm64"}},
		{"none", cpu.Features{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)
			defer cpu.ResetDetection()
			resetKernelsForTest()
			defer resetKernelsForTest()

			entry := registry.Global.Lookup(cpu.DetectFeatures())
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if got := KernelName(); got != entry.Name {
				t.Fatalf("KernelName = %q, want %q", got, entry.Name)
			}

			src := []float32{-3, -0.5, 0, 0.25, 1, 2.5}
			dst := make([]float32, len(src))
			Sin(dst, src)
			for i, x := range src {
				if dst[i] != f32.Sin(x) {
					t.Fatalf("Sin[%d] = %v, want %v", i, dst[i], f32.Sin(x))
				}
			}
		})
	}
}
