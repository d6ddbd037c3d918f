package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunComputeBench_Dot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = "32KiB"
	cfg.Iters = 4
	cfg.Warmup = 1

	res := NewResult()
	RunComputeBench(cfg, res, "dot")

	if len(res.SweepPoints) != 1 {
		t.Fatalf("got %d points, want 1", len(res.SweepPoints))
	}
	pt := res.SweepPoints[0]
	n := ElemsFloat64(32 * kib)

	assert.Equal(t, "dot", pt.Kernel)
	assert.Equal(t, uint64(32*kib), pt.Bytes)
	// x.y with x=2.0, y=3.0 is 6 per element.
	assert.InDelta(t, 6.0*float64(n), pt.Checksum, AccumATol+AccumRTol*6.0*float64(n))
	assert.Greater(t, res.GFLOPS, 0.0)
	assert.Equal(t, pt.MedianNs, res.AvgNs)
}

func TestRunComputeBench_Saxpy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = "16KiB"
	cfg.Iters = 3
	cfg.Warmup = 2

	res := NewResult()
	RunComputeBench(cfg, res, "saxpy")

	if len(res.SweepPoints) != 1 {
		t.Fatalf("got %d points, want 1", len(res.SweepPoints))
	}
	pt := res.SweepPoints[0]
	n := ElemsFloat64(16 * kib)

	// y accumulates 6 per element per invocation over warmup+iters passes.
	wantElem := fillA + streamScalar*fillB*float64(cfg.Warmup+cfg.Iters)
	want := wantElem * float64(n)
	assert.InDelta(t, want, pt.Checksum, AccumATol+AccumRTol*want)
}

func TestRunComputeBench_FlopsAndFMA(t *testing.T) {
	for _, kind := range []string{"flops", "fma"} {
		t.Run(kind, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Size = "8KiB"
			cfg.Iters = 2
			cfg.Warmup = 1

			res := NewResult()
			RunComputeBench(cfg, res, kind)

			if len(res.SweepPoints) != 1 {
				t.Fatalf("got %d points, want 1", len(res.SweepPoints))
			}
			pt := res.SweepPoints[0]
			n := ElemsFloat64(8 * kib)

			want := expectedChainValue(fillA, 3, computeInner, kind == "fma") * float64(n)
			assert.InDelta(t, want, pt.Checksum, AccumATol+AccumRTol*want)
			assert.Equal(t, 0.0, pt.BandwidthGBs)
			assert.Greater(t, res.GFLOPS, 0.0)
		})
	}
}

// A malformed size string yields a diagnostic and no points, never a panic.
func TestRunComputeBench_BadSizeString(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = "twelve parsecs"

	res := NewResult()
	RunComputeBench(cfg, res, "flops")

	assert.Empty(t, res.SweepPoints)
	assert.Equal(t, 0.0, res.GFLOPS)
}

func TestRunComputeBench_SizeBelowOneElement(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = "4b"

	res := NewResult()
	RunComputeBench(cfg, res, "fma")

	assert.Empty(t, res.SweepPoints)
}
