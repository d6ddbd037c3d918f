package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/membench/membench/bench"
)

var (
	// CLI flags for the benchmark run
	kernel     string // which kernel to run (stream, copy, scale, add, triad, flops, fma, dot, saxpy, latency)
	size       string // working-set size for compute kernels (e.g. 64MB, 512KiB)
	threads    int    // recorded in results; the measurement core is single-threaded
	iters      int    // measured iterations per sweep point
	warmup     int    // untimed warmup iterations per sweep point
	out        string // results JSON path
	seed       int64  // RNG seed for the latency permutation
	prefault   bool   // pre-touch pages before timing
	aligned    bool   // 64-byte-aligned buffer allocation
	logLevel   string // log verbosity level
	configFile string // optional YAML preset file
	preset     string // preset name inside the config file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "membench",
	Short: "Memory-hierarchy and compute throughput micro-benchmark suite",
}

// runCmd executes one benchmark using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the selected benchmark kernel",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := bench.Config{
			Kernel:   kernel,
			Size:     size,
			Threads:  threads,
			Iters:    iters,
			Warmup:   warmup,
			Out:      out,
			Seed:     seed,
			Prefault: prefault,
			Aligned:  aligned,
		}

		if configFile != "" {
			if err := ApplyPreset(configFile, preset, &cfg); err != nil {
				logrus.Fatalf("unable to load preset: %v", err)
			}
		}

		// Fail fast on nonsense settings before any allocation happens.
		if cfg.Threads < 1 {
			logrus.Fatalf("--threads must be >= 1")
		}
		if cfg.Iters < 1 {
			logrus.Fatalf("--iters must be >= 1")
		}
		if cfg.Warmup < 0 {
			logrus.Fatalf("--warmup must be >= 0")
		}
		if !knownKernel(cfg.Kernel) {
			logrus.Fatalf("unsupported --kernel %q (allowed: stream, copy, scale, add, triad, flops, fma, dot, saxpy, latency)", cfg.Kernel)
		}

		logrus.Infof("Starting benchmark: kernel=%s iters=%d warmup=%d", cfg.Kernel, cfg.Iters, cfg.Warmup)

		res := bench.NewResult()
		dispatch(cfg, res)

		if err := WriteResults(cfg, res); err != nil {
			logrus.Fatalf("failed to write results: %v", err)
		}

		logrus.Info("Benchmark complete.")
	},
}

// dispatch routes a validated configuration to its kernel family runner.
// "stream" runs the representative Triad kernel.
func dispatch(cfg bench.Config, res *bench.Result) {
	switch {
	case cfg.Kernel == "stream":
		bench.RunStreamSweep(cfg, res, bench.StreamTriad)
	case cfg.Kernel == "latency":
		bench.RunLatencyBench(cfg, res)
	case bench.IsComputeKind(cfg.Kernel):
		bench.RunComputeBench(cfg, res, cfg.Kernel)
	default:
		if op, ok := bench.ParseStreamOp(cfg.Kernel); ok {
			bench.RunStreamSweep(cfg, res, op)
		}
	}
}

func knownKernel(name string) bool {
	if name == "stream" || name == "latency" || bench.IsComputeKind(name) {
		return true
	}
	_, ok := bench.ParseStreamOp(name)
	return ok
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&kernel, "kernel", "stream", "Kernel to run (stream, copy, scale, add, triad, flops, fma, dot, saxpy, latency)")
	runCmd.Flags().StringVar(&size, "size", "64MB", "Working-set size for compute kernels (e.g. 64MB, 512KiB, 1GiB)")
	runCmd.Flags().IntVar(&threads, "threads", 1, "Thread count recorded with the results")
	runCmd.Flags().IntVar(&iters, "iters", 100, "Measured iterations per sweep point")
	runCmd.Flags().IntVar(&warmup, "warmup", 10, "Warmup iterations per sweep point (not timed)")
	runCmd.Flags().StringVar(&out, "out", "results.json", "Results output file")
	runCmd.Flags().Int64Var(&seed, "seed", 14, "Seed for the latency cycle permutation")
	runCmd.Flags().BoolVar(&prefault, "prefault", false, "Touch one element per page before timing")
	runCmd.Flags().BoolVar(&aligned, "aligned", false, "Allocate buffers on a 64-byte boundary")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&configFile, "config", "", "YAML preset file")
	runCmd.Flags().StringVar(&preset, "preset", "default", "Preset name inside --config")

	rootCmd.AddCommand(runCmd)
}
