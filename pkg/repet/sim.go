package repet

import (
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/go-repet/repet/pkg/repet/mask"
	"github.com/go-repet/repet/pkg/repet/structure"
)

func toDense(s [][]float64) *mat.Dense {
	f := len(s)
	t := 0
	if f > 0 {
		t = len(s[0])
	}
	out := mat.NewDense(f, t, nil)
	for freq := 0; freq < f; freq++ {
		for time := 0; time < t; time++ {
			out.Set(freq, time, s[freq][time])
		}
	}
	return out
}

// Sim separates audio_signal using non-periodic repetition found via
// the self-similarity matrix of the channel-averaged magnitude
// spectrogram.
func Sim(signal Signal, fs float64, opts ...Option) (background Signal, err error) {
	cfg := resolveConfig(opts)
	runID := uuid.NewString()
	start := time.Now()
	defer func() { cfg.Metrics.ObserveInvocation("Sim", time.Since(start), err) }()

	if verr := validateSignal(signal, fs); verr != nil {
		err = verr
		return nil, err
	}
	cfg.Logger.Debugf("[%s] Sim: %d samples, %d channels, fs=%.0f", runID, signal.NumSamples(), signal.NumChannels(), fs)

	frames, halfSpecs, params, serr := stftAllChannels(signal, fs)
	if serr != nil {
		err = serr
		return nil, err
	}

	mean := meanMagnitude(halfSpecs)
	similarity := structure.SelfSimilarity(toDense(mean))

	distanceFrames := secondsToFrames(cfg.SimilarityDistanceSeconds, fs, params.H)
	indices := structure.Indices(similarity, cfg.SimilarityThreshold, distanceFrames, cfg.SimilarityNumber)

	if !anyIndices(indices) {
		cfg.Metrics.ObserveDegenerateStructure("Sim")
		cfg.Logger.Warnf("[%s] Sim: no similar frames found for any frame", runID)
		err = ErrDegenerateStructure
		return nil, err
	}
	cfg.Logger.Infof("[%s] Sim: similarity indices computed for %d frames", runID, len(indices))

	cutoffBin := cutoffBinCeil(cfg.CutoffFrequency, fs, params.W)

	halfMasks := make([][][]float64, len(halfSpecs))
	for ch, half := range halfSpecs {
		m := mask.SimMask(half, indices)
		highPassOverride(m, cutoffBin)
		halfMasks[ch] = m
	}

	background = assembleBackground(frames, halfMasks, params, signal.NumSamples())
	return background, nil
}

func anyIndices(indices [][]int) bool {
	for _, idx := range indices {
		if len(idx) > 0 {
			return true
		}
	}
	return false
}
