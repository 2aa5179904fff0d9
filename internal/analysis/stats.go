package analysis

import (
	"github.com/san-kum/dsaviz/internal/step"
)

type Stats struct {
	Steps       int
	Comparisons int
	Swaps       int
	Writes      int
	Invalid     bool
	// Roles counts the steps carrying each annotation role.
	Roles map[step.Role]int
}

// Metrics flattens the totals for export metadata.
func (s Stats) Metrics() map[string]float64 {
	return map[string]float64{
		"steps":       float64(s.Steps),
		"comparisons": float64(s.Comparisons),
		"swaps":       float64(s.Swaps),
		"writes":      float64(s.Writes),
	}
}

func Summarize(seq step.Sequence) Stats {
	st := Stats{Steps: seq.Len(), Invalid: seq.Invalid(), Roles: make(map[step.Role]int)}
	for _, s := range seq.Steps() {
		for _, r := range s.Annotations.Roles() {
			st.Roles[r]++
		}
		if s.Annotations.Has(step.Comparing) {
			st.Comparisons++
		}
		if s.Annotations.Has(step.Swapped) {
			st.Swaps++
		}
		if s.Annotations.Has(step.Writing) || s.Annotations.Has(step.Shifting) {
			st.Writes++
		}
	}
	return st
}

// Disorder returns the number of inversions in the array view of each step.
// Steps whose view is not an array repeat the previous value.
func Disorder(seq step.Sequence) []float64 {
	out := make([]float64, 0, seq.Len())
	prev := 0.0
	for _, s := range seq.Steps() {
		if s.View.Kind == step.KindArray {
			prev = float64(Inversions(s.View.Array))
		}
		out = append(out, prev)
	}
	return out
}

// Inversions counts pairs i<j with a[i]>a[j] in O(n log n).
func Inversions(a []int) int {
	buf := append([]int{}, a...)
	tmp := make([]int, len(a))
	return countInversions(buf, tmp)
}

func countInversions(a, tmp []int) int {
	if len(a) < 2 {
		return 0
	}
	mid := len(a) / 2
	n := countInversions(a[:mid], tmp[:mid]) + countInversions(a[mid:], tmp[mid:])
	i, j, k := 0, mid, 0
	for i < mid && j < len(a) {
		if a[i] <= a[j] {
			tmp[k] = a[i]
			i++
		} else {
			tmp[k] = a[j]
			n += mid - i
			j++
		}
		k++
	}
	k += copy(tmp[k:], a[i:mid])
	copy(tmp[k:], a[j:])
	copy(a, tmp[:len(a)])
	return n
}
