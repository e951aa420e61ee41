package structure

import "gonum.org/v1/gonum/mat"

// BeatSpectrum computes the mean, over frequency channels, of the
// unbiased autocorrelation of a magnitude spectrogram S ([F][T],
// frequency-major) viewed along the time axis. Callers square S before
// calling this to sharpen periodic peaks, per the design.
func BeatSpectrum(s [][]float64) []float64 {
	f := len(s)
	if f == 0 {
		return nil
	}
	t := len(s[0])

	// Transpose to time-major so Acorr autocorrelates each frequency
	// channel along the time axis (one column per channel).
	timeMajor := mat.NewDense(t, f, nil)
	for freq := 0; freq < f; freq++ {
		for time := 0; time < t; time++ {
			timeMajor.Set(time, freq, s[freq][time])
		}
	}

	ac := Acorr(timeMajor)

	beat := make([]float64, t)
	for lag := 0; lag < t; lag++ {
		var sum float64
		for freq := 0; freq < f; freq++ {
			sum += ac.At(lag, freq)
		}
		beat[lag] = sum / float64(f)
	}
	return beat
}

// BeatSpectrogram computes a piecewise beat spectrum: S is zero-padded
// along time by ceil((L-1)/2) columns on the left and floor((L-1)/2)
// on the right, and every segmentStep frames the beat spectrum of the
// length-L window centered on that frame is computed and replicated
// (block-constant interpolation) into the intervening frames. The
// result is [L][T].
func BeatSpectrogram(s [][]float64, segmentLength, segmentStep int) [][]float64 {
	f := len(s)
	if f == 0 {
		return nil
	}
	t := len(s[0])
	l := segmentLength

	padLeft := (l - 1 + 1) / 2 // ceil((L-1)/2)
	padRight := (l - 1) / 2    // floor((L-1)/2)
	tp := t + padLeft + padRight

	padded := make([][]float64, f)
	for freq := range padded {
		row := make([]float64, tp)
		copy(row[padLeft:], s[freq])
		padded[freq] = row
	}

	out := make([][]float64, l)
	for i := range out {
		out[i] = make([]float64, t)
	}

	window := make([][]float64, f)
	for anchor := 0; anchor < t; anchor += segmentStep {
		for freq := 0; freq < f; freq++ {
			window[freq] = padded[freq][anchor : anchor+l]
		}
		beat := BeatSpectrum(window)

		end := anchor + segmentStep
		if end > t {
			end = t
		}
		for lag := 0; lag < l; lag++ {
			for time := anchor; time < end; time++ {
				out[lag][time] = beat[lag]
			}
		}
	}
	return out
}
