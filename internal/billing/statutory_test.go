package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRateSlabs_SingleRate(t *testing.T) {
	slabs := BuildRateSlabs(map[float64]float64{5: 10.0})

	require.Len(t, slabs, 1)
	assert.Equal(t, RateSlab{
		Rate:       5,
		Amount:     10.0,
		CGSTRate:   2.5,
		CGSTAmount: 5.0,
		SGSTRate:   2.5,
		SGSTAmount: 5.0,
	}, slabs[0])
}

func TestBuildRateSlabs_SortedAscending(t *testing.T) {
	slabs := BuildRateSlabs(map[float64]float64{18: 36, 5: 10, 12: 24})

	require.Len(t, slabs, 3)
	assert.Equal(t, 5.0, slabs[0].Rate)
	assert.Equal(t, 12.0, slabs[1].Rate)
	assert.Equal(t, 18.0, slabs[2].Rate)
}

func TestBuildRateSlabs_Empty(t *testing.T) {
	assert.Nil(t, BuildRateSlabs(nil))
	assert.Nil(t, BuildRateSlabs(map[float64]float64{}))
}

func TestBuildRateSlabs_HalvesAreRounded(t *testing.T) {
	slabs := BuildRateSlabs(map[float64]float64{5: 10.05})

	require.Len(t, slabs, 1)
	assert.Equal(t, 10.05, slabs[0].Amount)
	assert.Equal(t, 5.03, slabs[0].CGSTAmount)
	assert.Equal(t, 5.03, slabs[0].SGSTAmount)
}

func TestSplitInclusive(t *testing.T) {
	split := SplitInclusive(5.0)
	assert.Equal(t, 2.5, split.CGST)
	assert.Equal(t, 2.5, split.SGST)

	assert.Equal(t, InclusiveSplit{}, SplitInclusive(0))
}
