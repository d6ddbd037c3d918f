package bench

import "sync/atomic"

// Observation barriers.
//
// Every timed section, and every place a computed value would otherwise be
// unused, must be bounded by these or the optimizer is free to eliminate or
// hoist the measured work. This is a compiler-level contract, not an OS
// synchronization primitive.

// sinks are package-level so a store to them is an observable side effect
// the compiler cannot prove dead.
var (
	sinkF64 float64
	sinkU32 uint32
	fence   atomic.Uint64
)

// Observe forces the compiler to treat v as live.
//
//go:noinline
func Observe(v float64) {
	sinkF64 = v
}

// ObserveU32 is Observe for the latency chase cursor.
//
//go:noinline
func ObserveU32(v uint32) {
	sinkU32 = v
}

// ClobberMemory forbids reordering memory operations across the call site.
// An atomic read-modify-write is a full barrier for both the compiler and
// the CPU, which is stronger than required but has negligible cost next to
// a kernel invocation.
func ClobberMemory() {
	fence.Add(1)
}
