package sfcm

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKthSmallest(t *testing.T) {
	values := []float64{5, 1, 4, 1, 9, 2, 6, 5, 3}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	for k := range values {
		arr := append([]float64(nil), values...)
		assert.Equal(t, sorted[k], kthSmallest(arr, 0, len(arr), k), "k=%d", k)
	}
}

func TestMedianRemovesOutlier(t *testing.T) {
	a := grid(5, 5, func(y, x int) float64 {
		if y == 2 && x == 2 {
			return 255
		}
		return 10
	})
	res, err := Median(a, 3)
	require.NoError(t, err)
	assert.Equal(t, a.Shape(), res.Shape())
	for _, v := range res.Values() {
		assert.Equal(t, 10.0, v)
	}
	assert.Equal(t, 255.0, a.Values()[12], "input is left untouched")
}

func TestMedianPerChannel(t *testing.T) {
	a := FromPixels([][][]int{
		{{1, 100}, {2, 200}},
		{{3, 300}, {4, 400}},
	})
	res, err := Median(a, 1)
	require.NoError(t, err)
	assert.Equal(t, a.Values(), res.Values())

	res, err = Median(a, 3)
	require.NoError(t, err)
	// top-left window holds 1,1,2,1,1,2,3,3,4 in channel 0
	assert.Equal(t, 2.0, res.Values()[0])
	assert.Equal(t, 200.0, res.Values()[1])
}

func TestMedianRejectsBadWindow(t *testing.T) {
	for _, window := range []int{0, -3, 4} {
		_, err := Median(twoRegions(), window)
		assert.Error(t, err)
	}
	_, err := Median(NewDense([]int{3}, []float64{1, 2, 3}), 3)
	assert.ErrorIs(t, err, ErrShape)
}
