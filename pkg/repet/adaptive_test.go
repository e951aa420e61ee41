package repet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptiveRecoversRepeatingBackground(t *testing.T) {
	fs := 8000.0
	blockLen := 20 * 256
	signal := repeatingSignal(blockLen, 10, 11)

	bg, err := Adaptive(signal, fs, WithPeriodRange(0.4, 1.0), WithSegment(1.5, 0.75))
	require.NoError(t, err)
	require.Equal(t, signal.NumSamples(), bg.NumSamples())
}

func TestAdaptiveDegenerateOnSilence(t *testing.T) {
	sig := silence(8000, 1)
	_, err := Adaptive(sig, 8000, WithPeriodRange(100, 200))
	assert.ErrorIs(t, err, ErrDegenerateStructure)
}

func TestAdaptiveRejectsInvalidInput(t *testing.T) {
	_, err := Adaptive(silence(10, 1), 8000)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
