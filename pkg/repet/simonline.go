package repet

import (
	"time"

	"github.com/google/uuid"
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/mat"

	"github.com/go-repet/repet/pkg/repet/mask"
	"github.com/go-repet/repet/pkg/repet/structure"
	"github.com/go-repet/repet/pkg/repet/transform"
)

// SimOnline is the causal, frame-by-frame version of Sim: it maintains
// a fixed-capacity ring buffer of past magnitude frames and, for each
// new frame, searches only the buffer for similar past frames. Output
// samples before the ring buffer fills (the first B-1 frames) are
// zero by contract.
func SimOnline(signal Signal, fs float64, opts ...Option) (background Signal, err error) {
	cfg := resolveConfig(opts)
	runID := uuid.NewString()
	start := time.Now()
	defer func() { cfg.Metrics.ObserveInvocation("SimOnline", time.Since(start), err) }()

	if verr := validateSignal(signal, fs); verr != nil {
		err = verr
		return nil, err
	}

	numChannels := signal.NumChannels()
	frames, halfSpecs, params, serr := stftAllChannels(signal, fs)
	if serr != nil {
		err = serr
		return nil, err
	}

	f := len(halfSpecs[0])
	t := params.T
	b := secondsToFrames(cfg.BufferLengthSeconds, fs, params.H)
	if b > t {
		b = t
	}
	if b < 1 {
		b = 1
	}
	cfg.Logger.Debugf("[%s] SimOnline: %d frames, ring buffer %d frames", runID, t, b)

	distanceFrames := secondsToFrames(cfg.SimilarityDistanceSeconds, fs, params.H)
	cutoffBin := cutoffBinCeil(cfg.CutoffFrequency, fs, params.W)

	// ring[slot][ch][freq] holds the magnitude spectrum of the frame
	// currently occupying that ring slot.
	ring := make([][][]float64, b)
	for s := range ring {
		ring[s] = make([][]float64, numChannels)
		for ch := range ring[s] {
			ring[s][ch] = make([]float64, f)
		}
	}

	outBufLen := (t-1)*params.H + params.W
	outBuf := make([][]float64, numChannels)
	for ch := range outBuf {
		outBuf[ch] = make([]float64, outBufLen)
	}

	copyColumnIntoRing := func(j, slot int) {
		for ch := 0; ch < numChannels; ch++ {
			for freq := 0; freq < f; freq++ {
				ring[slot][ch][freq] = halfSpecs[ch][freq][j]
			}
		}
	}

	// Warm-up: seed the first B-1 slots. Output for these frames stays zero.
	warmup := b - 1
	if warmup > t {
		warmup = t
	}
	for j := 0; j < warmup; j++ {
		copyColumnIntoRing(j, j%b)
	}

	anyFound := false
	simCol := make([]float64, b)
	meanRing := mat.NewDense(f, b, nil)

	for j := warmup; j < t; j++ {
		slot := j % b
		copyColumnIntoRing(j, slot)

		for s := 0; s < b; s++ {
			for freq := 0; freq < f; freq++ {
				var sum float64
				for ch := 0; ch < numChannels; ch++ {
					sum += ring[s][ch][freq]
				}
				meanRing.Set(freq, s, sum/float64(numChannels))
			}
		}

		similarity := structure.Similarity(meanRing, meanRing)
		mat.Col(simCol, slot, similarity)
		_, indices := structure.LocalMaxima(simCol, cfg.SimilarityThreshold, distanceFrames, cfg.SimilarityNumber)
		if len(indices) > 0 {
			anyFound = true
		}

		for ch := 0; ch < numChannels; ch++ {
			halfMask := make([][]float64, f)
			vals := make([]float64, 0, len(indices))
			for freq := 0; freq < f; freq++ {
				vals = vals[:0]
				for _, idx := range indices {
					vals = append(vals, ring[idx][ch][freq])
				}
				orig := ring[slot][ch][freq]
				var rep float64
				if len(vals) == 0 {
					rep = orig
				} else {
					rep = mask.Median(vals)
				}
				halfMask[freq] = []float64{mask.Ratio(rep, orig)}
			}
			highPassOverride(halfMask, cutoffBin)

			full := transform.MirrorMask(halfMask, params.W)
			frame := frames[ch][j]
			masked := make([]complex128, len(frame))
			for k, v := range frame {
				masked[k] = v * complex(full[k][0], 0)
			}
			inv := fft.IFFT(masked)
			start := j * params.H
			for k := 0; k < params.W; k++ {
				outBuf[ch][start+k] += real(inv[k])
			}
		}
	}

	if !anyFound {
		cfg.Metrics.ObserveDegenerateStructure("SimOnline")
		cfg.Logger.Warnf("[%s] SimOnline: no similar frames found at any step", runID)
		err = ErrDegenerateStructure
		return nil, err
	}
	cfg.Logger.Infof("[%s] SimOnline: processed %d/%d frames causally", runID, t-warmup, t)

	win := transform.PeriodicHamming(params.W)
	hammingGain := 0.0
	for k := 0; k < params.W; k += params.H {
		hammingGain += win[k]
	}
	if hammingGain == 0 {
		hammingGain = 1
	}

	background = newSignal(signal.NumSamples(), numChannels)
	for ch := 0; ch < numChannels; ch++ {
		out := make([]float64, signal.NumSamples())
		for n := 0; n < signal.NumSamples(); n++ {
			idx := n + params.P
			if idx < len(outBuf[ch]) {
				out[n] = outBuf[ch][idx] / hammingGain
			}
		}
		background.setChannel(ch, out)
	}

	return background, nil
}
