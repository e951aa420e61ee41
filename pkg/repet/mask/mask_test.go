package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskShapeAndBounds(t *testing.T) {
	s := [][]float64{
		{1, 2, 1, 3, 1, 2, 1},
		{4, 1, 4, 2, 4, 1, 4},
	}
	m := Mask(s, 2)
	require.Len(t, m, 2)
	for _, row := range m {
		require.Len(t, row, 7)
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0+1e-9)
		}
	}
}

func TestMaskConstantSignalIsAllOnes(t *testing.T) {
	s := [][]float64{
		{3, 3, 3, 3, 3, 3},
	}
	m := Mask(s, 3)
	for _, v := range m[0] {
		assert.InDelta(t, 1.0, v, 1e-9)
	}
}

func TestMaskSuppressesIsolatedTransient(t *testing.T) {
	// A period-3 background of value 1 with a single loud transient at
	// index 4; the repeating estimate at phase 1 (indices 1,4,7) is the
	// median of {1,10,1} = 1, so the mask at the transient should be
	// well below 1.
	s := [][]float64{
		{1, 1, 1, 1, 10, 1, 1, 1, 1},
	}
	m := Mask(s, 3)
	assert.Less(t, m[0][4], 0.6)
}
