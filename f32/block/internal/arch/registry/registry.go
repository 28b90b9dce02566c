// Package registry stores the block kernel implementations and selects the
// best one for the running CPU.
package registry

import (
	"slices"
	"sort"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// UnaryFn computes dst[i] = f(src[i]).
type UnaryFn func(dst, src []float32)

// BinaryFn computes dst[i] = f(a[i], b[i]).
type BinaryFn func(dst, a, b []float32)

// ScalarFn computes dst[i] = f(src[i], s).
type ScalarFn func(dst, src []float32, s float32)

// OpEntry is one registered block kernel implementation. Every kernel field
// must be set.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int

	Abs     UnaryFn
	Floor   UnaryFn
	Round   UnaryFn
	Sqrt    UnaryFn
	InvSqrt UnaryFn
	Cos     UnaryFn
	Sin     UnaryFn
	Tan     UnaryFn
	Atan    UnaryFn
	Ln      UnaryFn
	Exp     UnaryFn

	Atan2 BinaryFn
	Powf  ScalarFn
}

// OpRegistry stores available implementations ordered by descending
// priority.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
}

// Global is the default block kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry. Entries of equal priority are
// looked up in registration order.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := sort.Search(len(r.entries), func(i int) bool {
		return r.entries[i].Priority < entry.Priority
	})
	r.entries = slices.Insert(r.entries, i, entry)
}

// Lookup returns a copy of the highest-priority implementation supported by
// features, or nil if none is.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.entries {
		if cpu.Supports(features, entry.SIMDLevel) {
			return &entry
		}
	}

	return nil
}
