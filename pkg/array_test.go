package sfcm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestArrayConstructors(t *testing.T) {
	a := DenseOf([]int{2, 2}, []uint8{1, 2, 3, 255})
	assert.Equal(t, []int{2, 2}, a.Shape())
	assert.Equal(t, []float64{1, 2, 3, 255}, a.Values())

	rows := FromRows([][]int16{{-1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, []int{2, 3}, rows.Shape())
	assert.Equal(t, []float64{-1, 2, 3, 4, 5, 6}, rows.Values())

	pixels := FromPixels([][][]float32{{{1, 2}, {3, 4}}})
	assert.Equal(t, []int{1, 2, 2}, pixels.Shape())
	assert.Equal(t, []float64{1, 2, 3, 4}, pixels.Values())

	m := FromMatrix(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	assert.Equal(t, []int{2, 2}, m.Shape())
	assert.Equal(t, []float64{1, 2, 3, 4}, m.Values())
}

func TestNewDatasetReshapesRankTwo(t *testing.T) {
	ds, err := newDataset(FromRows([][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.NoError(t, err)
	assert.Equal(t, 2, ds.h)
	assert.Equal(t, 3, ds.w)
	assert.Equal(t, 1, ds.d)
	assert.Equal(t, 6, ds.n())
	assert.Equal(t, []float64{5}, ds.x.RawRowView(4))

	ds, err = newDataset(FromPixels([][][]float64{{{1, 2, 3}}}))
	require.NoError(t, err)
	assert.Equal(t, 3, ds.d)
	assert.Equal(t, []float64{1, 2, 3}, ds.x.RawRowView(0))
}
