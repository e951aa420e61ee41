package repet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalChannelRoundTrip(t *testing.T) {
	s := newSignal(5, 2)
	s.setChannel(0, []float64{1, 2, 3, 4, 5})
	s.setChannel(1, []float64{5, 4, 3, 2, 1})

	assert.Equal(t, []float64{1, 2, 3, 4, 5}, s.channel(0))
	assert.Equal(t, []float64{5, 4, 3, 2, 1}, s.channel(1))
	assert.Equal(t, 5, s.NumSamples())
	assert.Equal(t, 2, s.NumChannels())
}

func TestEmptySignalDimensions(t *testing.T) {
	var s Signal
	assert.Equal(t, 0, s.NumSamples())
	assert.Equal(t, 0, s.NumChannels())
}
