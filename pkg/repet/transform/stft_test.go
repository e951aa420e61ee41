package transform

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSTFTRejectsInvalidInput(t *testing.T) {
	_, _, err := STFT(nil, 8000)
	assert.Error(t, err)

	_, _, err = STFT([]float64{1, 2, 3}, 0)
	assert.Error(t, err)

	_, _, err = STFT(make([]float64, 10), 8000)
	assert.Error(t, err, "signal shorter than one window should fail")
}

func TestSTFTISTFTRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	fs := 8000.0
	n := 4000
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = rng.Float64()*2 - 1
	}

	frames, params, err := STFT(samples, fs)
	require.NoError(t, err)

	out := ISTFT(frames, params)
	require.Len(t, out, n)

	var maxDiff float64
	for i := range samples {
		d := math.Abs(out[i] - samples[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	assert.Lessf(t, maxDiff, 1e-8, "round trip drifted by %v", maxDiff)
}

func TestSTFTISTFTRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fs := 8000.0
		n := rapid.IntRange(600, 5000).Draw(t, "n")
		samples := rapid.SliceOfN(rapid.Float64Range(-1, 1), n, n).Draw(t, "samples")

		frames, params, err := STFT(samples, fs)
		require.NoError(t, err)

		out := ISTFT(frames, params)
		require.Len(t, out, n)
		for i := range samples {
			assert.InDeltaf(t, samples[i], out[i], 1e-6, "sample %d", i)
		}
	})
}

func TestMirrorMaskPreservesHalfSpectrum(t *testing.T) {
	w := 8
	half := [][]float64{{0.1}, {0.2}, {0.3}, {0.4}, {0.5}}
	full := MirrorMask(half, w)
	require.Len(t, full, w)
	for k := 0; k <= w/2; k++ {
		assert.Equal(t, half[k][0], full[k][0])
	}
	for k := w/2 + 1; k < w; k++ {
		assert.Equal(t, half[w-k][0], full[k][0])
	}
}

func TestHalfSpectrogramMatchesFrameCount(t *testing.T) {
	fs := 8000.0
	samples := make([]float64, 4000)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * 440 * float64(i) / fs)
	}
	frames, params, err := STFT(samples, fs)
	require.NoError(t, err)

	spec := HalfSpectrogram(frames)
	assert.Len(t, spec, params.W/2+1)
	for _, row := range spec {
		assert.Len(t, row, params.T)
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 0.0)
		}
	}
}
