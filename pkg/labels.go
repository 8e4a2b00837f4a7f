package sfcm

// LabelMap holds one cluster index per pixel, row-major.
type LabelMap struct {
	H, W   int
	Labels []int
}

func (l *LabelMap) At(y, x int) int {
	return l.Labels[y*l.W+x]
}

// Counts returns how many pixels carry each of the c labels.
func (l *LabelMap) Counts(c int) []int {
	counts := make([]int, c)
	for _, label := range l.Labels {
		counts[label]++
	}
	return counts
}
