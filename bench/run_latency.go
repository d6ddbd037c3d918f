package bench

import "github.com/sirupsen/logrus"

// RunLatencyBench measures dependent-load latency across the latency sweep.
// Each point chases a randomized single-cycle permutation; ns_per_access is
// the median iteration time divided by the chase step count. Allocation
// failure stops the sweep and keeps the points already produced.
func RunLatencyBench(cfg Config, res *Result) {
	runLatencyBench(cfg, res, LatencySweep)
}

func runLatencyBench(cfg Config, res *Result, table SweepTable) {
	for _, sizeBytes := range table.Sizes() {
		n := bytesToNodes(sizeBytes)
		if n < 2 {
			continue
		}

		nodes, err := allocNodes(n, cfg.Aligned)
		if err != nil {
			logrus.Errorf("ptr_chase: allocation failed at bytes=%d (nodes=%d): %v; stopping sweep", sizeBytes, n, err)
			return
		}

		if cfg.Prefault {
			prefaultNodes(nodes)
		}

		buildRandomCycle(nodes, deriveCycleSeed(cfg.Seed, sizeBytes))

		steps := chaseSteps(n)

		var sink uint32
		samples := measureKernel(cfg.Warmup, cfg.Iters, func(it int) float64 {
			sink = chase(nodes, uint32(it%n), steps)
			return float64(sink)
		})

		sum := Summarize(samples)

		nsPerAccess := 0.0
		if steps > 0 {
			nsPerAccess = sum.MedianNs / float64(steps)
		}

		res.AddPoint(Point{
			Kernel:      "ptr_chase",
			Bytes:       sizeBytes,
			MedianNs:    sum.MedianNs,
			P95Ns:       sum.P95Ns,
			MinNs:       sum.MinNs,
			MaxNs:       sum.MaxNs,
			StddevNs:    sum.StddevNs,
			NsPerAccess: nsPerAccess,
			Checksum:    float64(sink),
		})

		logrus.Infof("ptr_chase: bytes=%d median_ns=%.0f ns_per_access=%.2f", sizeBytes, sum.MedianNs, nsPerAccess)
	}
}
