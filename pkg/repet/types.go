package repet

// Signal is a multichannel audio buffer, samples first: Signal[n][c] is
// sample n of channel c. Every pipeline accepts and returns this shape
// unchanged in length.
type Signal [][]float64

// NumSamples returns the number of samples per channel, 0 for an empty
// signal.
func (s Signal) NumSamples() int {
	if len(s) == 0 {
		return 0
	}
	return len(s)
}

// NumChannels returns the channel count, 0 for an empty signal.
func (s Signal) NumChannels() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// channel extracts a single channel as a dense mono slice.
func (s Signal) channel(c int) []float64 {
	out := make([]float64, len(s))
	for n, frame := range s {
		out[n] = frame[c]
	}
	return out
}

// newSignal allocates a zeroed Signal with the given shape.
func newSignal(numSamples, numChannels int) Signal {
	out := make(Signal, numSamples)
	for n := range out {
		out[n] = make([]float64, numChannels)
	}
	return out
}

func (s Signal) setChannel(c int, data []float64) {
	for n := range s {
		s[n][c] = data[n]
	}
}
