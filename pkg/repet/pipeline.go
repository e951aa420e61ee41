package repet

import (
	"math"

	"github.com/go-repet/repet/pkg/repet/transform"
)

func validateSignal(signal Signal, fs float64) error {
	if len(signal) == 0 || len(signal[0]) == 0 {
		return ErrInvalidInput
	}
	if fs <= 0 {
		return ErrInvalidInput
	}
	w := transform.WindowSize(fs)
	if len(signal) < w {
		return ErrInvalidInput
	}
	return nil
}

// secondsToFrames converts a duration in seconds to a frame count
// given the STFT hop size H, rounding to the nearest frame.
func secondsToFrames(seconds, fs float64, hop int) int {
	return int(math.Round(seconds * fs / float64(hop)))
}

// highPassOverride sets half-spectrum mask rows 1..cutoffBin
// (inclusive, 0-indexed with row 0 = DC) to 1 for every frame: the
// "dual high-pass filter" that allocates low-frequency energy to the
// background unconditionally.
func highPassOverride(halfMask [][]float64, cutoffBin int) {
	if cutoffBin >= len(halfMask) {
		cutoffBin = len(halfMask) - 1
	}
	for row := 1; row <= cutoffBin; row++ {
		for t := range halfMask[row] {
			halfMask[row][t] = 1.0
		}
	}
}

// cutoffBinRounded is the round(cutoff*W/fs) formula used by Original,
// Extended and Adaptive.
func cutoffBinRounded(cutoffHz, fs float64, w int) int {
	return int(math.Round(cutoffHz * float64(w) / fs))
}

// cutoffBinCeil is the ceil(cutoff*(W-1)/fs) formula used by Sim and
// SimOnline, preserved verbatim from the design's Open Question note
// rather than unified with cutoffBinRounded.
func cutoffBinCeil(cutoffHz, fs float64, w int) int {
	return int(math.Ceil(cutoffHz * float64(w-1) / fs))
}

// channelBackground mirrors a half-spectrum mask to the full
// spectrum, applies it to a channel's complex STFT, and inverts it
// back to a time-domain signal truncated to the original sample
// count.
func channelBackground(frames [][]complex128, halfMask [][]float64, params transform.Params) []float64 {
	full := transform.MirrorMask(halfMask, params.W)
	masked := transform.ApplyMask(frames, full)
	return transform.ISTFT(masked, params)
}

// meanSquaredMagnitude averages |STFT|^2 over channels, returning an
// [F][T] matrix, squared per the design so periodic peaks in the beat
// spectrum/spectrogram sharpen.
func meanSquaredMagnitude(halfSpectrograms [][][]float64) [][]float64 {
	c := len(halfSpectrograms)
	f := len(halfSpectrograms[0])
	t := len(halfSpectrograms[0][0])

	out := make([][]float64, f)
	for freq := 0; freq < f; freq++ {
		out[freq] = make([]float64, t)
		for time := 0; time < t; time++ {
			var sum float64
			for ch := 0; ch < c; ch++ {
				m := halfSpectrograms[ch][freq][time]
				sum += m * m
			}
			out[freq][time] = sum / float64(c)
		}
	}
	return out
}

// meanMagnitude averages |STFT| (unsquared) over channels.
func meanMagnitude(halfSpectrograms [][][]float64) [][]float64 {
	c := len(halfSpectrograms)
	f := len(halfSpectrograms[0])
	t := len(halfSpectrograms[0][0])

	out := make([][]float64, f)
	for freq := 0; freq < f; freq++ {
		out[freq] = make([]float64, t)
		for time := 0; time < t; time++ {
			var sum float64
			for ch := 0; ch < c; ch++ {
				sum += halfSpectrograms[ch][freq][time]
			}
			out[freq][time] = sum / float64(c)
		}
	}
	return out
}

// stftAllChannels runs the forward STFT over every channel of a
// signal, returning the per-channel complex frames, the per-channel
// magnitude half-spectrogram, and the shared analysis parameters.
func stftAllChannels(signal Signal, fs float64) (frames [][][]complex128, halfSpectrograms [][][]float64, params transform.Params, err error) {
	numChannels := signal.NumChannels()
	frames = make([][][]complex128, numChannels)
	halfSpectrograms = make([][][]float64, numChannels)
	for ch := 0; ch < numChannels; ch++ {
		f, p, stftErr := transform.STFT(signal.channel(ch), fs)
		if stftErr != nil {
			return nil, nil, transform.Params{}, ErrInvalidInput
		}
		frames[ch] = f
		params = p
		halfSpectrograms[ch] = transform.HalfSpectrogram(f)
	}
	return frames, halfSpectrograms, params, nil
}

func assembleBackground(frames [][][]complex128, halfMasks [][][]float64, params transform.Params, numSamples int) Signal {
	numChannels := len(frames)
	out := newSignal(numSamples, numChannels)
	for ch := 0; ch < numChannels; ch++ {
		bg := channelBackground(frames[ch], halfMasks[ch], params)
		out.setChannel(ch, bg)
	}
	return out
}
