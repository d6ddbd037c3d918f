package bench

import "github.com/sirupsen/logrus"

// RunStreamSweep measures one bandwidth kernel across the full working-set
// sweep, appending one Point per completed size. Allocation failure aborts
// the remainder of the sweep and preserves the points already produced; the
// host process is never terminated.
func RunStreamSweep(cfg Config, res *Result, op StreamOp) {
	runStreamSweep(cfg, res, op, BandwidthSweep)
}

// runStreamSweep takes the sweep table explicitly so tests can substitute a
// small one without touching the protocol.
func runStreamSweep(cfg Config, res *Result, op StreamOp, table SweepTable) {
	kd := MakeStreamDesc(op)

	for _, sizeBytes := range table.Sizes() {
		n := ElemsFloat64(sizeBytes)
		if n == 0 {
			continue
		}

		a, b, c, err := allocStreamBuffers(n, cfg.Aligned)
		if err != nil {
			logrus.Errorf("%s: allocation failed at bytes=%d: %v; stopping sweep", kd.Name(), sizeBytes, err)
			return
		}

		fillFloat64(a, fillA)
		fillFloat64(b, fillB)
		fillFloat64(c, fillC)
		s := streamScalar

		if cfg.Prefault {
			prefaultFloat64(a)
			prefaultFloat64(b)
			prefaultFloat64(c)
		}

		samples := measureKernel(cfg.Warmup, cfg.Iters, func(it int) float64 {
			kd.Fn(a, b, c, s)
			return a[it%n]
		})

		// Validation and statistics happen outside any timed region.
		checksum := validateStream(kd, sizeBytes, a, s)
		sum := Summarize(samples)

		// Effective traffic per invocation is the multiplier (2 or 3) times
		// one array's bytes; bandwidth comes from the median iteration time
		// because it is the most jitter-resistant of the order statistics.
		bw := 0.0
		if sum.MedianNs > 0 {
			bytesPerIter := kd.BytesMult() * float64(sizeBytes)
			bw = (bytesPerIter / 1e9) / (sum.MedianNs / 1e9)
		}

		res.AddPoint(Point{
			Kernel:       kd.Name(),
			Bytes:        sizeBytes,
			MedianNs:     sum.MedianNs,
			P95Ns:        sum.P95Ns,
			MinNs:        sum.MinNs,
			MaxNs:        sum.MaxNs,
			StddevNs:     sum.StddevNs,
			BandwidthGBs: bw,
			Checksum:     checksum,
		})

		logrus.Debugf("%s: bytes=%d median_ns=%.0f bw_gb_s=%.2f", kd.Name(), sizeBytes, sum.MedianNs, bw)
		// a, b, c fall out of scope here, so each point starts from freshly
		// provisioned buffers instead of inheriting warm cache state.
	}
}

// allocStreamBuffers provisions the three role buffers for one sweep point.
func allocStreamBuffers(n int, aligned bool) (a, b, c []float64, err error) {
	if a, err = allocFloat64(n, aligned); err != nil {
		return nil, nil, nil, err
	}
	if b, err = allocFloat64(n, aligned); err != nil {
		return nil, nil, nil, err
	}
	if c, err = allocFloat64(n, aligned); err != nil {
		return nil, nil, nil, err
	}
	return a, b, c, nil
}

// validateStream checks the output buffer against its analytic expectation
// and returns the checksum recorded on the point: the full sum for sizes
// within FullChecksumThreshold, the sampled sum above it.
func validateStream(kd KernelDesc, sizeBytes uint64, a []float64, s float64) float64 {
	want := kd.Op.expectedElem(s)

	if sizeBytes <= FullChecksumThreshold {
		sum := ChecksumFull(a)
		validateChecksum(kd.Name(), sizeBytes, sum, float64(len(a))*want, DefaultRTol, DefaultATol)
		return sum
	}

	stride := SampleStride(len(a))
	sum := ChecksumSampled(a, stride)
	validateChecksum(kd.Name(), sizeBytes, sum, float64(sampledCount(len(a), stride))*want, DefaultRTol, DefaultATol)
	return sum
}
