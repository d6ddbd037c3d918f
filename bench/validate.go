package bench

import (
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// FullChecksumThreshold gates exact whole-buffer validation: at or below
// this working-set size the full O(n) checksum is compared, above it the
// sampled checksum keeps validation overhead bounded. 8MB is carried over
// as a named constant rather than re-derived.
const FullChecksumThreshold uint64 = 8 * mib

// checksumSamples is the approximate number of elements the sampled
// checksum touches regardless of total size.
const checksumSamples = 1024

// Tolerances for NearlyEqual. The defaults suit single-operation kernels;
// kernels that accumulate many operations per element (flops/fma chains,
// dot, saxpy) drift further and use the loosened pair.
const (
	DefaultRTol = 1e-9
	DefaultATol = 1e-9
	AccumRTol   = 1e-6
	AccumATol   = 1e-6
)

// ChecksumFull is the exact sum of all elements. O(n); call it outside the
// timed region and only for sizes within FullChecksumThreshold.
func ChecksumFull(data []float64) float64 {
	return floats.Sum(data)
}

// SampleStride picks the stride so ChecksumSampled touches about
// checksumSamples elements whatever the buffer size.
func SampleStride(n int) int {
	stride := n / checksumSamples
	if stride < 1 {
		stride = 1
	}
	return stride
}

// ChecksumSampled sums every stride-th element. Cheap enough for huge
// buffers while still catching systematic corruption.
func ChecksumSampled(data []float64, stride int) float64 {
	if len(data) == 0 {
		return 0.0
	}
	if stride < 1 {
		stride = 1
	}

	sum := 0.0
	for i := 0; i < len(data); i += stride {
		sum += data[i]
	}
	return sum
}

// sampledCount is how many elements ChecksumSampled visits for n elements
// at the given stride; validation scales the expected per-element value by
// it.
func sampledCount(n, stride int) int {
	if n <= 0 {
		return 0
	}
	if stride < 1 {
		stride = 1
	}
	return (n + stride - 1) / stride
}

// NearlyEqual compares with combined absolute and relative tolerance:
// |a-b| <= atol + rtol*|b|.
func NearlyEqual(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// validateChecksum compares a measured checksum against its analytic
// expectation and reports a mismatch as a non-fatal diagnostic: it signals
// a possible miscompile or unexpected numeric drift, never a crash
// condition.
func validateChecksum(kernel string, sizeBytes uint64, measured, expected, rtol, atol float64) bool {
	if NearlyEqual(measured, expected, rtol, atol) {
		return true
	}
	logrus.Warnf("validation mismatch for %s at bytes=%d: checksum=%g expected=%g",
		kernel, sizeBytes, measured, expected)
	return false
}
