package bench

import (
	"runtime"
	"time"
)

// Point is the record emitted for one completed sweep point. Created once,
// never mutated afterwards; ownership passes to the Result accumulator.
type Point struct {
	Kernel       string  // kernel name (stream_copy, fma, ptr_chase, ...)
	Bytes        uint64  // working-set size of one role buffer
	MedianNs     float64 // median iteration time
	P95Ns        float64 // p95 iteration time
	MinNs        float64 // fastest iteration
	MaxNs        float64 // slowest iteration
	StddevNs     float64 // population standard deviation of iteration times
	BandwidthGBs float64 // effective GB/s from bytes touched; 0 when not applicable
	NsPerAccess  float64 // latency family only; 0 elsewhere
	Checksum     float64 // output checksum (full under threshold, sampled above)
}

// RunInfo stamps a result with where and when it was produced, for
// reproducibility when runs from different machines are aggregated.
type RunInfo struct {
	OS        string
	Arch      string
	GoVersion string
	CPUs      int
	Timestamp time.Time
}

// Result accumulates the sweep points and aggregate figures of one run. The
// family runners append points and may set the aggregates; serialization to
// disk is owned by the cmd layer.
type Result struct {
	Info RunInfo

	TotalNs      int64
	AvgNs        float64
	BandwidthGBs float64
	GFLOPS       float64

	SweepPoints []Point
}

// NewResult returns an accumulator stamped with the current platform.
func NewResult() *Result {
	return &Result{
		Info: RunInfo{
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			GoVersion: runtime.Version(),
			CPUs:      runtime.NumCPU(),
			Timestamp: time.Now(),
		},
	}
}

// AddPoint appends a completed sweep point.
func (r *Result) AddPoint(p Point) {
	r.SweepPoints = append(r.SweepPoints, p)
}
