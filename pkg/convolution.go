package sfcm

import (
	"math"

	"github.com/sourcegraph/conc/iter"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// onesKernel is the nb x nb uniform local-sum kernel.
func onesKernel(nb int) *mat.Dense {
	data := make([]float64, nb*nb)
	for i := range data {
		data[i] = 1
	}
	return mat.NewDense(nb, nb, data)
}

func clamp(x, lo, hi int) int {
	return min(max(x, lo), hi)
}

// convolve correlates the h x w grid src with kernel, centred on each cell.
// Cells outside the grid take the value of the nearest edge cell.
func convolve(src []float64, h, w int, kernel *mat.Dense) []float64 {
	k := kernel.RawMatrix()
	halfHeight, halfWidth := k.Rows/2, k.Cols/2
	dst := make([]float64, h*w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var s float64
			for dy := 0; dy < k.Rows; dy++ {
				row := clamp(y+dy-halfHeight, 0, h-1) * w
				taps := k.Data[dy*k.Stride : dy*k.Stride+k.Cols]
				for dx, tap := range taps {
					s += src[row+clamp(x+dx-halfWidth, 0, w-1)] * tap
				}
			}
			dst[y*w+x] = s
		}
	}
	return dst
}

// smooth applies spatial regularization to the N x c membership u of an
// h x w image: U' = U^p * H^q, with H the local sum of U over the window,
// then renormalizes every pixel to sum to 1.
func (e *Engine) smooth(u *mat.Dense, h, w int) *mat.Dense {
	n, c := u.Dims()
	kernel := onesKernel(e.opts.nb)
	sums := make([][]float64, c)
	iter.Iterator[[]float64]{MaxGoroutines: e.opts.workers}.ForEachIdx(sums, func(k int, s *[]float64) {
		*s = convolve(mat.Col(nil, k, u), h, w, kernel)
	})

	out := mat.NewDense(n, c, nil)
	p, q := e.opts.p, e.opts.q
	e.parallel(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			src, dst := u.RawRowView(i), out.RawRowView(i)
			for k := range dst {
				dst[k] = math.Pow(src[k], p) * math.Pow(sums[k][i], q)
			}
			total := floats.Sum(dst)
			for k := range dst {
				dst[k] /= total
			}
		}
	})
	return out
}
