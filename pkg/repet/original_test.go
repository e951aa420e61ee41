package repet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOriginalRecoversRepeatingBackground(t *testing.T) {
	fs := 8000.0
	blockLen := 20 * 256 // 20 frames at hop 256
	signal := repeatingSignal(blockLen, 8, 42)

	bg, err := Original(signal, fs, WithPeriodRange(0.4, 1.0))
	require.NoError(t, err)
	require.Equal(t, signal.NumSamples(), bg.NumSamples())
	require.Equal(t, signal.NumChannels(), bg.NumChannels())

	var energy float64
	for _, frame := range bg {
		for _, v := range frame {
			energy += v * v
		}
	}
	assert.Greaterf(t, energy, 0.0, "recovered background should not be silent")
}

func TestOriginalRejectsInvalidInput(t *testing.T) {
	_, err := Original(nil, 8000)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Original(silence(100, 1), 8000)
	assert.ErrorIs(t, err, ErrInvalidInput, "shorter than one analysis window")

	_, err = Original(silence(4000, 1), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOriginalDegenerateOnSilence(t *testing.T) {
	sig := silence(8000, 1)
	_, err := Original(sig, 8000, WithPeriodRange(100, 200))
	assert.ErrorIs(t, err, ErrDegenerateStructure)
}

func TestOriginalDeterministic(t *testing.T) {
	fs := 8000.0
	blockLen := 20 * 256
	signal := repeatingSignal(blockLen, 6, 7)

	bg1, err1 := Original(signal, fs, WithPeriodRange(0.4, 1.0))
	bg2, err2 := Original(signal, fs, WithPeriodRange(0.4, 1.0))
	require.NoError(t, err1)
	require.NoError(t, err2)

	for i := range bg1 {
		for ch := range bg1[i] {
			assert.Equal(t, bg1[i][ch], bg2[i][ch])
		}
	}
}
