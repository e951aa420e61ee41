package repet

import (
	"time"

	"github.com/google/uuid"

	"github.com/go-repet/repet/pkg/repet/mask"
	"github.com/go-repet/repet/pkg/repet/structure"
)

// Original separates audio_signal into a repeating background using a
// single global repeating period estimated from the beat spectrum of
// the channel-averaged magnitude spectrogram.
func Original(signal Signal, fs float64, opts ...Option) (background Signal, err error) {
	cfg := resolveConfig(opts)
	runID := uuid.NewString()
	start := time.Now()
	defer func() { cfg.Metrics.ObserveInvocation("Original", time.Since(start), err) }()

	if verr := validateSignal(signal, fs); verr != nil {
		err = verr
		return nil, err
	}
	cfg.Logger.Debugf("[%s] Original: %d samples, %d channels, fs=%.0f", runID, signal.NumSamples(), signal.NumChannels(), fs)

	frames, halfSpecs, params, serr := stftAllChannels(signal, fs)
	if serr != nil {
		err = serr
		return nil, err
	}

	squared := meanSquaredMagnitude(halfSpecs)
	beatSpec := structure.BeatSpectrum(squared)

	pLo := secondsToFrames(cfg.PeriodRangeSeconds[0], fs, params.H)
	pHi := secondsToFrames(cfg.PeriodRangeSeconds[1], fs, params.H)

	period, strength, ok := structure.BestPeriod(beatSpec, pLo, pHi)
	if !ok {
		cfg.Metrics.ObserveDegenerateStructure("Original")
		cfg.Logger.Warnf("[%s] Original: no repeating period found in range [%d,%d] frames", runID, pLo, pHi)
		err = ErrDegenerateStructure
		return nil, err
	}
	cfg.Logger.Infof("[%s] Original: period=%d frames (strength=%.4f)", runID, period, strength)

	cutoffBin := cutoffBinRounded(cfg.CutoffFrequency, fs, params.W)

	halfMasks := make([][][]float64, len(halfSpecs))
	for ch, half := range halfSpecs {
		m := mask.Mask(half, period)
		highPassOverride(m, cutoffBin)
		halfMasks[ch] = m
	}

	background = assembleBackground(frames, halfMasks, params, signal.NumSamples())
	return background, nil
}
