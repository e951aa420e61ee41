package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestMedianOddEven(t *testing.T) {
	assert.Equal(t, 3.0, median([]float64{5, 1, 3}))
	assert.Equal(t, 2.5, median([]float64{1, 2, 3, 4}))
}

func TestRatioBoundedByOne(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		repeating := rapid.Float64Range(0, 1000).Draw(t, "repeating")
		original := rapid.Float64Range(0, 1000).Draw(t, "original")
		r := ratio(repeating, original)
		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, 1.0+1e-9)
	})
}

func TestRatioIsOneWhenEqual(t *testing.T) {
	assert.InDelta(t, 1.0, ratio(5, 5), 1e-9)
}
