// Package transform implements the centered, constant-overlap-add
// short-time Fourier transform shared by every REPET pipeline.
package transform

import "math"

// WindowSize returns W = 2^ceil(log2(0.04*fs)), the analysis window
// length derived from the sampling frequency.
func WindowSize(fs float64) int {
	raw := 0.04 * fs
	exp := math.Ceil(math.Log2(raw))
	return int(math.Exp2(exp))
}

// PeriodicHamming returns a periodic (DFT-even) Hamming window of
// length n: the first n samples of what would be a length-(n+1)
// symmetric window. Periodic, not symmetric, normalization is what
// makes 50%-overlap overlap-add satisfy COLA exactly up to a scalar
// gain.
func PeriodicHamming(n int) []float64 {
	w := make([]float64, n)
	for i := 0; i < n; i++ {
		w[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n))
	}
	return w
}
