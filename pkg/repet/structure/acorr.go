// Package structure implements the repetition-structure estimators
// shared by the REPET pipelines: unbiased autocorrelation, beat
// spectrum/spectrogram, self-similarity, local-maxima picking, and the
// period/index extraction built on top of them.
package structure

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/mat"
)

// Acorr computes the unbiased autocorrelation of every column of X via
// the Wiener-Khinchin theorem: zero-pad each column to twice its
// length, take its FFT, square the magnitude (the PSD), inverse-FFT,
// keep the real part of the first R rows, and divide row r by R-r.
func Acorr(x *mat.Dense) *mat.Dense {
	r, c := x.Dims()
	out := mat.NewDense(r, c, nil)

	padded := make([]complex128, 2*r)
	for col := 0; col < c; col++ {
		for i := range padded {
			padded[i] = 0
		}
		for i := 0; i < r; i++ {
			padded[i] = complex(x.At(i, col), 0)
		}

		spectrum := fft.FFT(padded)
		psd := make([]complex128, 2*r)
		for i, v := range spectrum {
			m := cmplx.Abs(v)
			psd[i] = complex(m*m, 0)
		}
		ac := fft.IFFT(psd)

		for row := 0; row < r; row++ {
			out.Set(row, col, real(ac[row])/float64(r-row))
		}
	}
	return out
}
