package sfcm

import (
	"gonum.org/v1/gonum/mat"
)

// dataset is an (H, W, D) view of an Array with its pixels flattened into
// an H*W x D matrix.
type dataset struct {
	h, w, d int
	x       *mat.Dense
}

func newDataset(a Array) (*dataset, error) {
	shape := a.Shape()
	var h, w, d int
	switch len(shape) {
	case 2:
		h, w, d = shape[0], shape[1], 1
	case 3:
		h, w, d = shape[0], shape[1], shape[2]
	default:
		return nil, &ShapeError{Shape: shape, Reason: "rank must be 2 or 3"}
	}
	if h <= 0 || w <= 0 || d <= 0 {
		return nil, &ShapeError{Shape: shape, Reason: "dimensions must be positive"}
	}
	values := a.Values()
	if len(values) != h*w*d {
		return nil, &ShapeError{Shape: shape, Reason: "value count does not match shape"}
	}
	return &dataset{
		h: h, w: w, d: d,
		x: mat.NewDense(h*w, d, values),
	}, nil
}

func (ds *dataset) n() int { return ds.h * ds.w }
