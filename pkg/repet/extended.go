package repet

import (
	"time"

	"github.com/google/uuid"
)

// Extended applies Original over a sliding window with triangular
// overlap-add, letting the estimated repeating period track slowly
// changing periodic content across a longer recording.
func Extended(signal Signal, fs float64, opts ...Option) (background Signal, err error) {
	cfg := resolveConfig(opts)
	runID := uuid.NewString()
	start := time.Now()
	defer func() { cfg.Metrics.ObserveInvocation("Extended", time.Since(start), err) }()

	if verr := validateSignal(signal, fs); verr != nil {
		err = verr
		return nil, err
	}

	n := signal.NumSamples()
	numChannels := signal.NumChannels()

	segLen := int(cfg.SegmentLengthSeconds * fs)
	step := int(cfg.SegmentStepSeconds * fs)
	overlap := segLen - step
	if overlap < 0 {
		overlap = 0
	}

	bounds := segmentBounds(n, segLen, step)
	cfg.Logger.Debugf("[%s] Extended: %d samples split into %d segment(s)", runID, n, len(bounds))

	out := newSignal(n, numChannels)

	var fadeIn, fadeOut []float64
	if overlap > 0 {
		fadeIn = make([]float64, overlap)
		fadeOut = make([]float64, overlap)
		for k := 0; k < overlap; k++ {
			fadeIn[k] = float64(k+1) / float64(overlap+1)
			fadeOut[k] = 1 - fadeIn[k]
		}
	}

	for i, b := range bounds {
		segment := signal[b[0]:b[1]]
		bg, serr := Original(segment, fs, opts...)
		if serr != nil {
			cfg.Logger.Warnf("[%s] Extended: segment %d failed: %v", runID, i, serr)
			err = serr
			return nil, err
		}

		segLenSamples := b[1] - b[0]
		blend := overlap
		if i == 0 || blend > segLenSamples {
			blend = 0
		}

		for k := 0; k < blend; k++ {
			t := b[0] + k
			for ch := 0; ch < numChannels; ch++ {
				out[t][ch] = out[t][ch]*fadeOut[k] + bg[k][ch]*fadeIn[k]
			}
		}
		for k := blend; k < segLenSamples; k++ {
			t := b[0] + k
			for ch := 0; ch < numChannels; ch++ {
				out[t][ch] = bg[k][ch]
			}
		}
	}

	return out, nil
}

// segmentBounds splits n samples into fixed-length windows of segLen
// with hop step: a single [0,n) segment if n is shorter than
// segLen+step, otherwise fixed-length segments until the remainder
// can no longer support another full segment plus one more hop, at
// which point the final segment absorbs the tail and runs to n.
func segmentBounds(n, segLen, step int) [][2]int {
	if n < segLen+step {
		return [][2]int{{0, n}}
	}

	var bounds [][2]int
	start := 0
	for {
		remaining := n - start
		if remaining <= segLen+step {
			bounds = append(bounds, [2]int{start, n})
			return bounds
		}
		bounds = append(bounds, [2]int{start, start + segLen})
		start += step
	}
}
