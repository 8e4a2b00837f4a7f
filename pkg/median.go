package sfcm

import (
	"fmt"
	"math/rand"
)

func randomPartition(arr []float64, l, r int) int {
	pivot := l + rand.Intn(r-l)
	arr[pivot], arr[r-1] = arr[r-1], arr[pivot]
	x := arr[r-1]
	i := l
	for j := l; j < r-1; j++ {
		if arr[j] < x {
			arr[i], arr[j] = arr[j], arr[i]
			i++
		}
	}
	arr[i], arr[r-1] = arr[r-1], arr[i]
	return i
}

// kthSmallest returns the k-th smallest (0-based) element of arr[l:r],
// reordering arr in place.
func kthSmallest(arr []float64, l, r, k int) float64 {
	for {
		pos := randomPartition(arr, l, r)
		switch leftPartSize := pos - l; {
		case leftPartSize == k:
			return arr[pos]
		case leftPartSize > k:
			r = pos
		default:
			k -= leftPartSize + 1
			l = pos + 1
		}
	}
}

// Median replaces every value of a by the median of its windowSize x
// windowSize neighbourhood in the same channel. The window is clamped at
// the image border.
func Median(a Array, windowSize int) (*Dense, error) {
	if windowSize <= 0 || windowSize%2 == 0 {
		return nil, fmt.Errorf("window size must be positive and odd, but it isn't: %d", windowSize)
	}
	ds, err := newDataset(a)
	if err != nil {
		return nil, err
	}
	h, w, d := ds.h, ds.w, ds.d
	src := a.Values()
	res := make([]float64, len(src))
	half := windowSize / 2
	window := make([]float64, windowSize*windowSize)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for ch := 0; ch < d; ch++ {
				k := 0
				for dy := -half; dy <= half; dy++ {
					for dx := -half; dx <= half; dx++ {
						window[k] = src[(clamp(y+dy, 0, h-1)*w+clamp(x+dx, 0, w-1))*d+ch]
						k++
					}
				}
				res[(y*w+x)*d+ch] = kthSmallest(window, 0, len(window), len(window)/2)
			}
		}
	}
	return NewDense(a.Shape(), res), nil
}
