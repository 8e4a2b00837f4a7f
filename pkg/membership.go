package sfcm

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// membership returns the N x c fuzzy membership of every pixel of ds to the
// centroids v: u_ik = 1 / sum_j (d_ik/d_ij)^(2/(m-1)).
func (e *Engine) membership(ds *dataset, v *mat.Dense) *mat.Dense {
	c, _ := v.Dims()
	u := mat.NewDense(ds.n(), c, nil)
	exp := 2 / (e.opts.m - 1)
	e.parallel(ds.n(), func(lo, hi int) {
		dist := make([]float64, c)
		for i := lo; i < hi; i++ {
			px := ds.x.RawRowView(i)
			for k := range dist {
				dist[k] = floats.Distance(px, v.RawRowView(k), 2)
			}
			fuzzyRow(u.RawRowView(i), dist, exp, e.opts.degenerate)
		}
	})
	return u
}

func fuzzyRow(dst, dist []float64, exp float64, policy DegeneratePolicy) {
	if policy == DegenerateOneHot {
		zeros := 0
		for _, d := range dist {
			if d == 0 {
				zeros++
			}
		}
		if zeros > 0 {
			for k, d := range dist {
				dst[k] = 0
				if d == 0 {
					dst[k] = 1 / float64(zeros)
				}
			}
			return
		}
	}
	for k, dk := range dist {
		var s float64
		for _, dj := range dist {
			s += math.Pow(dk/dj, exp)
		}
		dst[k] = 1 / s
		if policy == DegenerateNaNToOne && math.IsNaN(dst[k]) {
			dst[k] = 1
		}
	}
}

// updateCentroids returns the membership-weighted means (U^T X) / colsum(U).
// A cluster without any membership keeps its previous centroid.
func updateCentroids(x, u, prev *mat.Dense) *mat.Dense {
	_, c := u.Dims()
	var next mat.Dense
	next.Mul(u.T(), x)
	n, _ := x.Dims()
	col := make([]float64, n)
	for k := 0; k < c; k++ {
		mat.Col(col, k, u)
		weight := floats.Sum(col)
		if weight == 0 {
			next.SetRow(k, prev.RawRowView(k))
			continue
		}
		row := next.RawRowView(k)
		for j := range row {
			row[j] /= weight
		}
	}
	return &next
}

func allFinite(m *mat.Dense) bool {
	rows, _ := m.Dims()
	for k := 0; k < rows; k++ {
		for _, x := range m.RawRowView(k) {
			if !isFinite(x) {
				return false
			}
		}
	}
	return true
}

// maxShift is the largest Euclidean distance between matching rows of a and b.
func maxShift(a, b *mat.Dense) float64 {
	rows, _ := a.Dims()
	shift := 0.0
	for k := 0; k < rows; k++ {
		shift = math.Max(shift, floats.Distance(a.RawRowView(k), b.RawRowView(k), 2))
	}
	return shift
}
