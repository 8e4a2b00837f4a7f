package sfcm

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func sqDist(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

// initCentroids picks c rows of x with k-means++: the first uniformly, each
// next one with probability proportional to its squared distance to the
// nearest centroid picked so far.
func initCentroids(x *mat.Dense, c int, rnd *rand.Rand) *mat.Dense {
	n, d := x.Dims()
	centroids := mat.NewDense(c, d, nil)
	centroids.SetRow(0, x.RawRowView(rnd.Intn(n)))

	minDist := make([]float64, n)
	for i := range minDist {
		minDist[i] = sqDist(x.RawRowView(i), centroids.RawRowView(0))
	}
	for k := 1; k < c; k++ {
		centroids.SetRow(k, x.RawRowView(drawWeighted(minDist, rnd)))
		if k == c-1 {
			break
		}
		center := centroids.RawRowView(k)
		for i := range minDist {
			if dist := sqDist(x.RawRowView(i), center); dist < minDist[i] {
				minDist[i] = dist
			}
		}
	}
	return centroids
}

// drawWeighted returns index i with probability weights[i] / sum(weights).
// All-zero weights fall back to a uniform draw.
func drawWeighted(weights []float64, rnd *rand.Rand) int {
	total := floats.Sum(weights)
	if !(total > 0) || !isFinite(total) {
		return rnd.Intn(len(weights))
	}
	x := rnd.Float64() * total
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		x -= w
		if x < 0 {
			return i
		}
	}
	// rounding left x slightly above zero
	return last
}
