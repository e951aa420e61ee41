package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBestPeriodFindsPeak(t *testing.T) {
	// l=30, pLo=1, pHi=10: search range is rows 2..10 (cap=l/3=10).
	spec := make([]float64, 30)
	spec[5] = 9
	spec[2] = 3
	period, strength, ok := BestPeriod(spec, 1, 10)
	assert.True(t, ok)
	assert.Equal(t, 5, period)
	assert.Equal(t, 9.0, strength)
}

func TestBestPeriodDegenerateWhenNonPositive(t *testing.T) {
	spec := make([]float64, 30)
	_, _, ok := BestPeriod(spec, 1, 10)
	assert.False(t, ok, "an all-zero beat spectrum has no genuine period")
}

func TestBestPeriodDegenerateWhenRangeEmpty(t *testing.T) {
	spec := make([]float64, 5)
	_, _, ok := BestPeriod(spec, 10, 1)
	assert.False(t, ok)
}

func TestPeriodsOneResultPerColumn(t *testing.T) {
	l, n := 30, 4
	spec := make([][]float64, l)
	for i := range spec {
		spec[i] = make([]float64, n)
	}
	for col := 0; col < n; col++ {
		spec[3+col][col] = 5
	}
	periods := Periods(spec, 1, 10)
	assert.Len(t, periods, n)
	for col := 0; col < n; col++ {
		assert.Equal(t, 3+col, periods[col])
	}
}

func TestPeriodFromSpectrumMatchesBestPeriod(t *testing.T) {
	spec := make([]float64, 30)
	spec[7] = 4
	want, _, ok := BestPeriod(spec, 1, 10)
	assert.True(t, ok)
	got := PeriodFromSpectrum(spec, 1, 10)
	assert.Equal(t, want, got)
}
