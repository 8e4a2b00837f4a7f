package sfcm

import (
	"gonum.org/v1/gonum/mat"
)

// Array is a dense row-major numeric array. Engines accept rank 2 (H, W)
// and rank 3 (H, W, D) arrays.
type Array interface {
	Shape() []int
	Values() []float64
}

// Real is any numeric element type an Array can be built from.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Dense is the plain Array implementation.
type Dense struct {
	shape []int
	data  []float64
}

// NewDense wraps data without copying. Shape is checked when the array is
// handed to an Engine.
func NewDense(shape []int, data []float64) *Dense {
	return &Dense{shape: append([]int(nil), shape...), data: data}
}

func (a *Dense) Shape() []int      { return a.shape }
func (a *Dense) Values() []float64 { return a.data }

// DenseOf converts data of any real type to float64.
func DenseOf[T Real](shape []int, data []T) *Dense {
	values := make([]float64, len(data))
	for i, v := range data {
		values[i] = float64(v)
	}
	return NewDense(shape, values)
}

// FromRows builds a rank 2 array from H rows of W values.
func FromRows[T Real](rows [][]T) *Dense {
	if len(rows) == 0 {
		return NewDense([]int{0, 0}, nil)
	}
	h, w := len(rows), len(rows[0])
	values := make([]float64, 0, h*w)
	for _, row := range rows {
		for _, v := range row {
			values = append(values, float64(v))
		}
	}
	return NewDense([]int{h, w}, values)
}

// FromPixels builds a rank 3 array from H rows of W pixels of D channels.
func FromPixels[T Real](pixels [][][]T) *Dense {
	if len(pixels) == 0 || len(pixels[0]) == 0 {
		return NewDense([]int{len(pixels), 0, 0}, nil)
	}
	h, w, d := len(pixels), len(pixels[0]), len(pixels[0][0])
	values := make([]float64, 0, h*w*d)
	for _, row := range pixels {
		for _, px := range row {
			for _, v := range px {
				values = append(values, float64(v))
			}
		}
	}
	return NewDense([]int{h, w, d}, values)
}

// FromMatrix views a gonum matrix as a single-channel image.
func FromMatrix(m mat.Matrix) *Dense {
	h, w := m.Dims()
	values := make([]float64, 0, h*w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			values = append(values, m.At(y, x))
		}
	}
	return NewDense([]int{h, w}, values)
}
