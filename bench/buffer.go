package bench

import (
	"errors"
	"fmt"
	"unsafe"
)

const (
	// CacheLineBytes is the boundary guaranteed by aligned allocation.
	CacheLineBytes = 64

	pageBytes = 4096
	elemBytes = 8 // sizeof(float64)

	// Deterministic role fills. Constant (never random) initial values keep
	// every kernel's output checksum analytically predictable.
	fillA = 1.0
	fillB = 2.0
	fillC = 3.0

	// streamScalar is the s in Scale/Triad (and the a in saxpy).
	streamScalar = 3.0
)

// ErrAllocationFailure reports that a role buffer could not be obtained at
// the requested size. It is terminal for the remainder of that kernel's
// sweep; points produced so far are preserved.
var ErrAllocationFailure = errors.New("allocation failure")

// ElemsFloat64 converts a working-set byte size to a float64 element count.
func ElemsFloat64(bytes uint64) int {
	return int(bytes / elemBytes)
}

// allocFloat64 provisions one role buffer of n elements. With aligned set,
// the first element is guaranteed to sit on a 64-byte boundary; the slice is
// carved from a padded backing array at the aligned offset. Either mode
// fails with ErrAllocationFailure rather than truncating: make panics on
// absurd lengths and the runtime refuses sizes it cannot back, both of
// which are converted to an error here.
func allocFloat64(n int, aligned bool) (buf []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("%w: %d float64 elements: %v", ErrAllocationFailure, n, r)
		}
	}()

	if n <= 0 {
		return nil, fmt.Errorf("%w: non-positive element count %d", ErrAllocationFailure, n)
	}
	if !aligned {
		return make([]float64, n), nil
	}

	// float64 backing arrays are 8-aligned, so one cache line of padding is
	// always enough to reach a 64-byte boundary by stepping whole elements.
	raw := make([]float64, n+CacheLineBytes/elemBytes)
	off := 0
	for uintptr(unsafe.Pointer(&raw[off]))%CacheLineBytes != 0 {
		off++
	}
	return raw[off : off+n : off+n], nil
}

func fillFloat64(buf []float64, v float64) {
	for i := range buf {
		buf[i] = v
	}
}

// touched is a noinline identity so a read-modify-write of the same value
// cannot be proven dead and elided.
//
//go:noinline
func touched(v float64) float64 { return v }

// prefaultFloat64 touches one element per memory page so first-touch page
// fault cost lands here instead of inside the timed region.
func prefaultFloat64(buf []float64) {
	const pageElems = pageBytes / elemBytes
	for i := 0; i < len(buf); i += pageElems {
		buf[i] = touched(buf[i])
	}
	if len(buf) > 0 {
		Observe(buf[0])
	}
}
