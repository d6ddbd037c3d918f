package bench

import "time"

// measureKernel runs the shared timing protocol and returns one elapsed-time
// sample (nanoseconds) per measured iteration.
//
// fn performs exactly one kernel invocation at the configured problem size
// and returns a touched output element; iter is the iteration ordinal, which
// callers use to vary the touched index (or chase start) without changing
// the work. The same fn serves warmup and measurement — the two phases must
// never diverge.
//
// Protocol per measured iteration: memory-reordering barrier, monotonic
// start stamp, kernel invocation, second reordering barrier, stop stamp,
// then the returned element goes through the optimization barrier so the
// compiler cannot prove the result unused. Warmup iterations run the same
// invocation untimed.
func measureKernel(warmup, iters int, fn func(iter int) float64) []float64 {
	for w := 0; w < warmup; w++ {
		Observe(fn(w))
	}

	samples := make([]float64, 0, iters)
	for it := 0; it < iters; it++ {
		ClobberMemory()
		start := time.Now()

		out := fn(it)

		ClobberMemory()
		samples = append(samples, float64(time.Since(start).Nanoseconds()))

		Observe(out)
	}
	return samples
}
