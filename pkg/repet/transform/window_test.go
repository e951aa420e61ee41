package transform

import (
	"math"
	"testing"
)

func TestWindowSize(t *testing.T) {
	tests := []struct {
		fs   float64
		want int
	}{
		{8000, 512},
		{11025, 512},
		{16000, 1024},
		{44100, 2048},
	}
	for _, tt := range tests {
		if got := WindowSize(tt.fs); got != tt.want {
			t.Errorf("WindowSize(%.0f) = %d, want %d", tt.fs, got, tt.want)
		}
	}
}

func TestWindowSizeIsPowerOfTwo(t *testing.T) {
	for fs := 4000.0; fs < 96000; fs += 137 {
		w := WindowSize(fs)
		if w&(w-1) != 0 {
			t.Errorf("WindowSize(%.0f) = %d, not a power of two", fs, w)
		}
	}
}

func TestPeriodicHammingEndpoints(t *testing.T) {
	w := PeriodicHamming(512)
	if len(w) != 512 {
		t.Fatalf("len = %d, want 512", len(w))
	}
	if math.Abs(w[0]-0.08) > 1e-9 {
		t.Errorf("w[0] = %v, want 0.08", w[0])
	}
	for _, v := range w {
		if v < 0 || v > 1.0001 {
			t.Errorf("window value out of range: %v", v)
		}
	}
}

func TestPeriodicHammingNotSymmetric(t *testing.T) {
	// A periodic window of length n is the first n samples of a
	// symmetric window of length n+1, so w[n-1] != w[0] in general.
	w := PeriodicHamming(8)
	if w[0] == w[len(w)-1] {
		t.Errorf("periodic window looks symmetric: w[0]=%v w[n-1]=%v", w[0], w[len(w)-1])
	}
}
