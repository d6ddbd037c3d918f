package bench

// Config holds one validated benchmark run's settings. The cmd layer owns
// flag parsing and range checks; the engine trusts these values except for
// Size, which is parsed lazily by the compute runner and may still be
// malformed (see RunComputeBench).
type Config struct {
	Kernel   string // kernel selector (stream, copy, scale, add, triad, flops, fma, dot, saxpy, latency)
	Size     string // working-set size string for compute kernels (e.g. "64MB", "512KiB")
	Threads  int    // recorded in results; the measurement loop itself is single-threaded
	Iters    int    // measured iterations per sweep point (>= 1)
	Warmup   int    // untimed warmup iterations per sweep point (>= 0)
	Out      string // results file path (consumed by the cmd layer)
	Seed     int64  // RNG seed for the latency cycle permutation
	Prefault bool   // touch one element per page before timing
	Aligned  bool   // allocate buffers on a 64-byte boundary
}

// DefaultConfig returns the engine defaults used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Kernel:  "stream",
		Size:    "64MB",
		Threads: 1,
		Iters:   100,
		Warmup:  10,
		Out:     "results.json",
		Seed:    14,
	}
}
