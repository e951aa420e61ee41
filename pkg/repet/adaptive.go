package repet

import (
	"time"

	"github.com/google/uuid"

	"github.com/go-repet/repet/pkg/repet/mask"
	"github.com/go-repet/repet/pkg/repet/structure"
)

// Adaptive separates audio_signal using a time-varying repeating
// period, one per frame, estimated from a beat spectrogram computed
// over sliding segments.
func Adaptive(signal Signal, fs float64, opts ...Option) (background Signal, err error) {
	cfg := resolveConfig(opts)
	runID := uuid.NewString()
	start := time.Now()
	defer func() { cfg.Metrics.ObserveInvocation("Adaptive", time.Since(start), err) }()

	if verr := validateSignal(signal, fs); verr != nil {
		err = verr
		return nil, err
	}
	cfg.Logger.Debugf("[%s] Adaptive: %d samples, %d channels, fs=%.0f", runID, signal.NumSamples(), signal.NumChannels(), fs)

	frames, halfSpecs, params, serr := stftAllChannels(signal, fs)
	if serr != nil {
		err = serr
		return nil, err
	}

	squared := meanSquaredMagnitude(halfSpecs)

	segmentLength := secondsToFrames(cfg.SegmentLengthSeconds, fs, params.H)
	segmentStep := secondsToFrames(cfg.SegmentStepSeconds, fs, params.H)
	beatSpectrogram := structure.BeatSpectrogram(squared, segmentLength, segmentStep)

	pLo := secondsToFrames(cfg.PeriodRangeSeconds[0], fs, params.H)
	pHi := secondsToFrames(cfg.PeriodRangeSeconds[1], fs, params.H)

	if !anyPositivePeriod(beatSpectrogram, pLo, pHi) {
		cfg.Metrics.ObserveDegenerateStructure("Adaptive")
		cfg.Logger.Warnf("[%s] Adaptive: no repeating period found in any frame", runID)
		err = ErrDegenerateStructure
		return nil, err
	}
	periods := structure.Periods(beatSpectrogram, pLo, pHi)
	cfg.Logger.Infof("[%s] Adaptive: estimated %d per-frame periods", runID, len(periods))

	cutoffBin := cutoffBinRounded(cfg.CutoffFrequency, fs, params.W)

	halfMasks := make([][][]float64, len(halfSpecs))
	for ch, half := range halfSpecs {
		m := mask.AdaptiveMask(half, periods, cfg.FilterOrder)
		highPassOverride(m, cutoffBin)
		halfMasks[ch] = m
	}

	background = assembleBackground(frames, halfMasks, params, signal.NumSamples())
	return background, nil
}

// anyPositivePeriod reports whether at least one column of a beat
// spectrogram has a candidate with positive autocorrelation within
// [pLo,pHi], i.e. whether the repetition search found anything at
// all.
func anyPositivePeriod(beatSpectrogram [][]float64, pLo, pHi int) bool {
	if len(beatSpectrogram) == 0 {
		return false
	}
	t := len(beatSpectrogram[0])
	l := len(beatSpectrogram)
	col := make([]float64, l)
	for time := 0; time < t; time++ {
		for lag := 0; lag < l; lag++ {
			col[lag] = beatSpectrogram[lag][time]
		}
		if _, _, ok := structure.BestPeriod(col, pLo, pHi); ok {
			return true
		}
	}
	return false
}
