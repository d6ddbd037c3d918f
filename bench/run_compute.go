package bench

import "github.com/sirupsen/logrus"

// RunComputeBench measures one compute kernel (flops, fma, dot or saxpy) at
// the working-set size named by cfg.Size. It produces a single sweep point
// and fills the run's aggregate GFLOP/s. A malformed size string is reported
// and yields no point; the caller always regains control.
func RunComputeBench(cfg Config, res *Result, kind string) {
	sizeBytes, err := ParseSizeBytes(cfg.Size)
	if err != nil {
		logrus.Errorf("%s: failed to parse size %q: %v (examples: 64MB, 512KiB, 1GiB)", kind, cfg.Size, err)
		return
	}

	n := ElemsFloat64(sizeBytes)
	if n == 0 {
		logrus.Errorf("%s: size too small (%d bytes)", kind, sizeBytes)
		return
	}

	a, err := allocFloat64(n, cfg.Aligned)
	if err != nil {
		logrus.Errorf("%s: allocation failed at bytes=%d: %v", kind, sizeBytes, err)
		return
	}

	var samples []float64
	var checksum float64

	switch kind {
	case "dot":
		// a is x; the second operand gets its own role buffer.
		y, yerr := allocFloat64(n, cfg.Aligned)
		if yerr != nil {
			logrus.Errorf("%s: allocation failed at bytes=%d: %v", kind, sizeBytes, yerr)
			return
		}
		fillFloat64(a, fillB)
		fillFloat64(y, fillC)
		if cfg.Prefault {
			prefaultFloat64(a)
			prefaultFloat64(y)
		}

		samples = measureKernel(cfg.Warmup, cfg.Iters, func(int) float64 {
			checksum = dotKernel(a, y)
			return checksum
		})

		// The reduction result is the checksum: every pass over the same
		// inputs must reproduce fillB*fillC per element.
		want := fillB * fillC * float64(n)
		validateChecksum(kind, sizeBytes, checksum, want, AccumRTol, AccumATol)

	case "saxpy":
		x, xerr := allocFloat64(n, cfg.Aligned)
		if xerr != nil {
			logrus.Errorf("%s: allocation failed at bytes=%d: %v", kind, sizeBytes, xerr)
			return
		}
		fillFloat64(x, fillB)
		fillFloat64(a, fillA) // a is y, updated in place
		if cfg.Prefault {
			prefaultFloat64(x)
			prefaultFloat64(a)
		}

		samples = measureKernel(cfg.Warmup, cfg.Iters, func(it int) float64 {
			saxpyKernel(streamScalar, x, a)
			return a[it%n]
		})

		// y accumulates a*x per invocation across warmup and measurement.
		invocations := cfg.Warmup + cfg.Iters
		want := fillA + streamScalar*fillB*float64(invocations)
		checksum = validateComputeBuffer(kind, sizeBytes, a, want)

	case "flops", "fma":
		fused := kind == "fma"
		fillFloat64(a, fillA)
		if cfg.Prefault {
			prefaultFloat64(a)
		}

		samples = measureKernel(cfg.Warmup, cfg.Iters, func(it int) float64 {
			if fused {
				computeFMAKernel(a, computeInner)
			} else {
				computeFlopsKernel(a, computeInner)
			}
			return a[it%n]
		})

		invocations := cfg.Warmup + cfg.Iters
		want := expectedChainValue(fillA, invocations, computeInner, fused)
		checksum = validateComputeBuffer(kind, sizeBytes, a, want)

	default:
		logrus.Errorf("unsupported compute kernel %q", kind)
		return
	}

	sum := Summarize(samples)

	gflops := 0.0
	if sum.MedianNs > 0 {
		// flops per invocation divided by nanoseconds is GFLOP/s directly.
		gflops = computeFlopsPerIter(kind, n) / sum.MedianNs
	}

	res.AddPoint(Point{
		Kernel:   kind,
		Bytes:    sizeBytes,
		MedianNs: sum.MedianNs,
		P95Ns:    sum.P95Ns,
		MinNs:    sum.MinNs,
		MaxNs:    sum.MaxNs,
		StddevNs: sum.StddevNs,
		Checksum: checksum,
	})

	res.GFLOPS = gflops
	res.AvgNs = sum.MedianNs
	res.TotalNs = 0

	logrus.Infof("%s: bytes=%d median_ns=%.0f gflops=%.2f", kind, sizeBytes, sum.MedianNs, gflops)
}

// validateComputeBuffer checks a mutated compute buffer against its analytic
// per-element expectation, full or sampled by size, with the loosened
// tolerance accumulating kernels need. Returns the recorded checksum.
func validateComputeBuffer(kind string, sizeBytes uint64, a []float64, wantElem float64) float64 {
	if sizeBytes <= FullChecksumThreshold {
		sum := ChecksumFull(a)
		validateChecksum(kind, sizeBytes, sum, float64(len(a))*wantElem, AccumRTol, AccumATol)
		return sum
	}

	stride := SampleStride(len(a))
	sum := ChecksumSampled(a, stride)
	validateChecksum(kind, sizeBytes, sum, float64(sampledCount(len(a), stride))*wantElem, AccumRTol, AccumATol)
	return sum
}
