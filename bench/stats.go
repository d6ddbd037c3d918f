package bench

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Summary reduces a sample set to the robust statistics carried by every
// result point. All values are nanoseconds.
type Summary struct {
	MinNs    float64
	MaxNs    float64
	MedianNs float64
	P95Ns    float64
	StddevNs float64
}

// Percentile returns the p-th percentile (p in [0,100]) of an ascending
// sample set by linear interpolation between order statistics:
// idx = (p/100)*(n-1), result = sorted[lo]*(1-frac) + sorted[hi]*frac.
// Percentile(0) is the minimum and Percentile(100) the maximum.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0.0
	}

	idx := (p / 100.0) * float64(len(sorted)-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	frac := idx - float64(lo)

	return sorted[lo]*(1.0-frac) + sorted[hi]*frac
}

// Stddev returns the population standard deviation (divisor n, not n-1) of
// the samples; fewer than two samples yield 0. Two passes: mean, then mean
// squared deviation.
func Stddev(samples []float64) float64 {
	n := len(samples)
	if n < 2 {
		return 0.0
	}

	mean := floats.Sum(samples) / float64(n)

	variance := 0.0
	for _, s := range samples {
		d := s - mean
		variance += d * d
	}
	variance /= float64(n)

	return math.Sqrt(variance)
}

// Summarize sorts the sample set ascending in place and reduces it. The set
// is treated as immutable afterwards.
func Summarize(samples []float64) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	sort.Float64s(samples)

	return Summary{
		MinNs:    samples[0],
		MaxNs:    samples[len(samples)-1],
		MedianNs: Percentile(samples, 50.0),
		P95Ns:    Percentile(samples, 95.0),
		StddevNs: Stddev(samples),
	}
}
