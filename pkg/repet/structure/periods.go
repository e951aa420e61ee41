package structure

// Periods estimates, for every column of a beat spectrogram [L][T],
// the repeating period in frames: the argmax over row indices
// pLo+1..min(pHi, floor(L/3)). The +1 skips the zero-lag peak; the
// floor(L/3) cap ensures at least three repetition-length segments fit
// in the window the period was estimated from (required by the
// median-of-three mask builder). Ties keep the first (lowest-lag)
// maximum.
func Periods(beatSpectrogram [][]float64, pLo, pHi int) []int {
	l := len(beatSpectrogram)
	t := 0
	if l > 0 {
		t = len(beatSpectrogram[0])
	}

	cap := l / 3
	hi := pHi
	if cap < hi {
		hi = cap
	}

	periods := make([]int, t)
	for time := 0; time < t; time++ {
		best := pLo + 1
		bestVal := beatSpectrogram[best][time]
		for row := pLo + 2; row <= hi; row++ {
			v := beatSpectrogram[row][time]
			if v > bestVal {
				bestVal = v
				best = row
			}
		}
		periods[time] = best
	}
	return periods
}

// PeriodFromSpectrum is the single-column convenience form of Periods,
// used by pipelines that estimate one global period from a plain beat
// spectrum rather than a beat spectrogram.
func PeriodFromSpectrum(beatSpectrum []float64, pLo, pHi int) int {
	col := make([][]float64, len(beatSpectrum))
	for i, v := range beatSpectrum {
		col[i] = []float64{v}
	}
	return Periods(col, pLo, pHi)[0]
}

// BestPeriod is PeriodFromSpectrum plus a confidence signal: ok is
// false when the search range is empty or the best candidate has
// non-positive autocorrelation, i.e. no genuine periodic structure was
// found within the configured range. Callers treat !ok as a
// degenerate-structure condition.
func BestPeriod(beatSpectrum []float64, pLo, pHi int) (period int, strength float64, ok bool) {
	l := len(beatSpectrum)
	cap := l / 3
	hi := pHi
	if cap < hi {
		hi = cap
	}
	lo := pLo + 1
	if lo > hi {
		return 0, 0, false
	}

	best := lo
	bestVal := beatSpectrum[lo]
	for row := lo + 1; row <= hi; row++ {
		if beatSpectrum[row] > bestVal {
			bestVal = beatSpectrum[row]
			best = row
		}
	}
	return best, bestVal, bestVal > 0
}
