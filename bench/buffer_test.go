package bench

import (
	"errors"
	"testing"
	"unsafe"
)

func TestElemsFloat64(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  int
	}{
		{32 * kib, 4096},
		{64, 8},
		{7, 0}, // below one element: caller skips the size
	}
	for _, tt := range tests {
		if got := ElemsFloat64(tt.bytes); got != tt.want {
			t.Errorf("ElemsFloat64(%d) = %d, want %d", tt.bytes, got, tt.want)
		}
	}
}

func TestAllocFloat64_Natural(t *testing.T) {
	buf, err := allocFloat64(1024, false)
	if err != nil {
		t.Fatalf("allocFloat64: %v", err)
	}
	if len(buf) != 1024 {
		t.Fatalf("len = %d, want 1024", len(buf))
	}
}

func TestAllocFloat64_AlignedBoundary(t *testing.T) {
	// Repeat a few times so a luckily-aligned natural allocation cannot
	// mask a broken offset computation.
	for i := 0; i < 16; i++ {
		buf, err := allocFloat64(257, true)
		if err != nil {
			t.Fatalf("allocFloat64: %v", err)
		}
		if len(buf) != 257 {
			t.Fatalf("len = %d, want 257", len(buf))
		}
		addr := uintptr(unsafe.Pointer(&buf[0]))
		if addr%CacheLineBytes != 0 {
			t.Fatalf("buffer starts at %#x, not on a %d-byte boundary", addr, CacheLineBytes)
		}
	}
}

func TestAllocFloat64_FailureIsSignaled(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"zero elements", 0},
		{"negative count", -1},
		{"absurd size", 1 << 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := allocFloat64(tt.n, false)
			if err == nil {
				t.Fatalf("allocFloat64(%d) succeeded, want failure", tt.n)
			}
			if !errors.Is(err, ErrAllocationFailure) {
				t.Errorf("error %v does not wrap ErrAllocationFailure", err)
			}
			if buf != nil {
				t.Error("failed allocation returned a non-nil buffer")
			}
		})
	}
}

func TestFillFloat64(t *testing.T) {
	buf := make([]float64, 33)
	fillFloat64(buf, fillC)
	for i, v := range buf {
		if v != fillC {
			t.Fatalf("buf[%d] = %v, want %v", i, v, fillC)
		}
	}
}

func TestPrefaultFloat64_PreservesContents(t *testing.T) {
	buf := make([]float64, 2048)
	fillFloat64(buf, fillB)
	prefaultFloat64(buf)
	for i, v := range buf {
		if v != fillB {
			t.Fatalf("prefault changed buf[%d] to %v", i, v)
		}
	}
}
