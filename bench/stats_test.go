package bench

import (
	"math"
	"testing"
)

func TestPercentile_Endpoints(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
	}{
		{"single sample", []float64{42}},
		{"two samples", []float64{10, 20}},
		{"many samples", []float64{1, 2, 3, 5, 8, 13, 21}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percentile(tt.samples, 0); got != tt.samples[0] {
				t.Errorf("Percentile(0) = %v, want min %v", got, tt.samples[0])
			}
			max := tt.samples[len(tt.samples)-1]
			if got := Percentile(tt.samples, 100); got != max {
				t.Errorf("Percentile(100) = %v, want max %v", got, max)
			}
		})
	}
}

func TestPercentile_Interpolation(t *testing.T) {
	// idx = 0.5*(4-1) = 1.5, interpolate between 20 and 30
	samples := []float64{10, 20, 30, 40}
	if got := Percentile(samples, 50); got != 25 {
		t.Errorf("Percentile(50) = %v, want 25", got)
	}
}

func TestPercentile_Empty(t *testing.T) {
	if got := Percentile(nil, 50); got != 0 {
		t.Errorf("Percentile on empty set = %v, want 0", got)
	}
}

func TestStddev_Population(t *testing.T) {
	// Mean 5, squared deviations sum 32, divisor n=8: sqrt(4) = 2 exactly.
	samples := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if got := Stddev(samples); got != 2.0 {
		t.Errorf("Stddev = %v, want exactly 2.0", got)
	}
}

func TestStddev_DegenerateSets(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
	}{
		{"empty", nil},
		{"single element", []float64{17}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stddev(tt.samples); got != 0 {
				t.Errorf("Stddev = %v, want 0", got)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	samples := []float64{40, 10, 30, 20}
	sum := Summarize(samples)

	if sum.MinNs != 10 || sum.MaxNs != 40 {
		t.Errorf("min/max = %v/%v, want 10/40", sum.MinNs, sum.MaxNs)
	}
	if sum.MedianNs != 25 {
		t.Errorf("median = %v, want 25", sum.MedianNs)
	}
	// Mean 25, mean squared deviation 500/4 = 125.
	if want := math.Sqrt(125.0); sum.StddevNs != want {
		t.Errorf("stddev = %v, want %v", sum.StddevNs, want)
	}
	// Summarize sorts the set in place.
	for i := 1; i < len(samples); i++ {
		if samples[i-1] > samples[i] {
			t.Fatalf("samples not sorted after Summarize: %v", samples)
		}
	}
}
