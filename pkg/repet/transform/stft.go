package transform

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Params carries the derived analysis geometry for a single STFT call,
// needed again at ISTFT time.
type Params struct {
	W int // window length / FFT size
	H int // hop size, W/2
	P int // front pad length, floor(W/2)
	N int // original (unpadded, untailed) sample count
	T int // number of frames
}

// STFT computes the centered, zero-padded short-time Fourier transform
// of a mono signal. Frames[t] is the length-W complex spectrum of
// frame t, full spectrum (not just the positive half).
func STFT(samples []float64, fs float64) (frames [][]complex128, params Params, err error) {
	n := len(samples)
	if n == 0 {
		return nil, Params{}, errors.New("transform: empty signal")
	}
	if fs <= 0 {
		return nil, Params{}, errors.New("transform: sampling frequency must be positive")
	}

	w := WindowSize(fs)
	if n < w {
		return nil, Params{}, errors.New("transform: signal shorter than one analysis window")
	}
	h := w / 2
	p := w / 2

	t, tailPad := frameCount(n, w, h, p)

	padded := make([]float64, n+p+tailPad)
	copy(padded[p:], samples)

	window := PeriodicHamming(w)

	frames = make([][]complex128, t)
	segment := make([]float64, w)
	for j := 0; j < t; j++ {
		start := j * h
		for i := 0; i < w; i++ {
			segment[i] = padded[start+i] * window[i]
		}
		frames[j] = fft.FFTReal(segment)
	}

	return frames, Params{W: w, H: h, P: p, N: n, T: t}, nil
}

// frameCount returns the frame count and the tail-padding length that
// together guarantee full coverage: the overlap-add buffer of length
// (T-1)*H+W holds the front pad, every original sample, and a
// non-negative tail pad.
func frameCount(n, w, h, p int) (t, tailPad int) {
	t = int(math.Ceil(float64(n+2*p-w)/float64(h))) + 1
	if t < 1 {
		t = 1
	}
	for {
		total := (t-1)*h + w
		tailPad = total - n - p
		if tailPad >= 0 {
			return t, tailPad
		}
		t++
	}
}

// ISTFT inverts STFT: overlap-add the per-frame inverse FFTs, divide
// by the constant-overlap-add gain of the periodic Hamming window,
// and strip the analysis padding back to the original N samples.
func ISTFT(frames [][]complex128, params Params) []float64 {
	w, h, p, n := params.W, params.H, params.P, params.N
	t := len(frames)

	bufLen := (t-1)*h + w
	buf := make([]float64, bufLen)
	for j, frame := range frames {
		inv := fft.IFFT(frame)
		start := j * h
		for i := 0; i < w; i++ {
			buf[start+i] += real(inv[i])
		}
	}

	window := PeriodicHamming(w)
	gain := 0.0
	for k := 0; k < w; k += h {
		gain += window[k]
	}
	if gain == 0 {
		gain = 1
	}
	for i := range buf {
		buf[i] /= gain
	}

	out := make([]float64, n)
	copy(out, buf[p:p+n])
	return out
}

// MagnitudeHalfSpectrum returns the non-negative magnitude of the
// first W/2+1 bins (DC through Nyquist) of a full-spectrum frame.
func MagnitudeHalfSpectrum(frame []complex128) []float64 {
	half := len(frame)/2 + 1
	out := make([]float64, half)
	for i := 0; i < half; i++ {
		out[i] = cmplx.Abs(frame[i])
	}
	return out
}

// HalfSpectrogram transposes a slice of per-frame full spectra into a
// [W/2+1][T] magnitude matrix, frequency-major.
func HalfSpectrogram(frames [][]complex128) [][]float64 {
	t := len(frames)
	if t == 0 {
		return nil
	}
	f := len(frames[0])/2 + 1
	out := make([][]float64, f)
	for bin := 0; bin < f; bin++ {
		out[bin] = make([]float64, t)
	}
	for j, frame := range frames {
		mag := MagnitudeHalfSpectrum(frame)
		for bin := 0; bin < f; bin++ {
			out[bin][j] = mag[bin]
		}
	}
	return out
}

// MirrorMask expands a half-spectrum mask [W/2+1][T] to a full [W][T]
// mask by mirroring bins W/2-1 down to 1 (bins 0 and W/2 are never
// duplicated).
func MirrorMask(half [][]float64, w int) [][]float64 {
	t := 0
	if len(half) > 0 {
		t = len(half[0])
	}
	full := make([][]float64, w)
	for k := 0; k <= w/2; k++ {
		full[k] = half[k]
	}
	for k := w/2 + 1; k < w; k++ {
		full[k] = half[w-k]
	}
	_ = t
	return full
}

// ApplyMask multiplies a full-spectrum mask [W][T] pointwise with the
// complex STFT frames of a channel, returning new frames.
func ApplyMask(frames [][]complex128, fullMask [][]float64) [][]complex128 {
	out := make([][]complex128, len(frames))
	for j, frame := range frames {
		masked := make([]complex128, len(frame))
		for k, v := range frame {
			masked[k] = v * complex(fullMask[k][j], 0)
		}
		out[j] = masked
	}
	return out
}
