package bench

import "math"

// computeInner is the fixed number of FMA-equivalent steps applied per
// element by the flops/fma kernels. Holding it constant keeps GFLOP/s
// figures comparable across runs; it is moderate so huge working sets stay
// tractable.
const computeInner = 64

// Chain coefficients chosen so values drift slowly away from 1.0 instead of
// exploding or converging, keeping long chains numerically well-behaved.
const (
	computeAlpha = 1.0000000001
	computeBeta  = 0.0000000001
)

// computeFlopsKernel applies x = x*alpha + beta inner times per element,
// written as separate mul and add so the compiler may or may not fuse.
func computeFlopsKernel(a []float64, inner int) {
	for i := range a {
		x := a[i]
		for k := 0; k < inner; k++ {
			x = x*computeAlpha + computeBeta
		}
		a[i] = x
	}
}

// computeFMAKernel is the explicitly fused variant of the same chain.
func computeFMAKernel(a []float64, inner int) {
	for i := range a {
		x := a[i]
		for k := 0; k < inner; k++ {
			x = math.FMA(x, computeAlpha, computeBeta)
		}
		a[i] = x
	}
}

// dotKernel is a single-pass BLAS-1 reduction: sum of x[i]*y[i].
func dotKernel(x, y []float64) float64 {
	sum := 0.0
	for i := range x {
		sum += x[i] * y[i]
	}
	return sum
}

// saxpyKernel is the BLAS-1 transform y[i] = a*x[i] + y[i].
func saxpyKernel(a float64, x, y []float64) {
	for i := range x {
		y[i] = a*x[i] + y[i]
	}
}

// IsComputeKind reports whether name selects a compute-family kernel.
func IsComputeKind(name string) bool {
	switch name {
	case "flops", "fma", "dot", "saxpy":
		return true
	}
	return false
}

// computeFlopsPerIter is the flop-accounting rule per kernel invocation:
// one FMA or mul+add step counts 2 flops, so the chained kernels do
// 2*inner per element and the single-pass BLAS-1 kernels do 2 per element.
func computeFlopsPerIter(kind string, n int) float64 {
	switch kind {
	case "flops", "fma":
		return float64(n) * 2.0 * float64(computeInner)
	case "dot", "saxpy":
		return float64(n) * 2.0
	}
	return 0.0
}

// expectedChainValue folds the flops/fma recurrence the exact number of
// times the run applies it (warmup and measured invocations both mutate the
// buffer), giving the analytic per-element output for validation.
func expectedChainValue(start float64, invocations, inner int, fused bool) float64 {
	x := start
	for it := 0; it < invocations; it++ {
		for k := 0; k < inner; k++ {
			if fused {
				x = math.FMA(x, computeAlpha, computeBeta)
			} else {
				x = x*computeAlpha + computeBeta
			}
		}
	}
	return x
}
