package algo

import (
	"fmt"
	"slices"

	"github.com/san-kum/dsaviz/internal/step"
)

// Interval is a half-open [Start, End) activity.
type Interval struct {
	Start, End int
}

func intervalTable(iv []Interval) [][]step.Cell {
	t := step.NewTable(len(iv), 2)
	for i, x := range iv {
		t[i][0], t[i][1] = step.SetCell(x.Start), step.SetCell(x.End)
	}
	return t
}

// ActivitySelection picks a maximum set of non-overlapping activities by
// earliest finish time. Chosen holds row indices into the sorted table.
func ActivitySelection(intervals []Interval) step.Sequence {
	iv := append([]Interval{}, intervals...)
	r := step.NewRecorder()
	r.Emit(step.TableView(intervalTable(iv)), nil, "Activities as [start, end]")

	slices.SortStableFunc(iv, func(a, b Interval) int { return a.End - b.End })
	t := intervalTable(iv)
	r.Emit(step.TableView(t), nil, "Sorted by end time")

	chosen := []int{}
	lastEnd := 0
	for i, x := range iv {
		r.Emit(step.TableView(t), ann{step.Current: i, step.Chosen: chosen},
			fmt.Sprintf("Consider [%d, %d]", x.Start, x.End))
		if len(chosen) == 0 || x.Start >= lastEnd {
			chosen = append(chosen, i)
			lastEnd = x.End
			r.Emit(step.TableView(t), ann{step.Current: i, step.Chosen: chosen},
				fmt.Sprintf("Select [%d, %d]", x.Start, x.End))
			continue
		}
		r.Emit(step.TableView(t), ann{step.Rejected: i, step.Chosen: chosen},
			fmt.Sprintf("Reject [%d, %d]: overlaps previous end %d", x.Start, x.End, lastEnd))
	}
	return r.Finish(step.TableView(t), ann{step.Chosen: chosen, step.Result: len(chosen)},
		fmt.Sprintf("%d activities selected", len(chosen)))
}

// Kadane tracks the best subarray ending at each index. The best window is
// reported as [start, end].
func Kadane(input []int) step.Sequence {
	a := clone(input)
	r := step.NewRecorder()
	r.Emit(step.ArrayView(a), nil, "Initial array")
	if len(a) == 0 {
		return r.Finish(step.ArrayView(a), nil, "Empty array")
	}

	cur, best := a[0], a[0]
	start, bestLo, bestHi := 0, 0, 0
	r.Emit(step.ArrayView(a), ann{step.Index: 0, step.CurSum: cur, step.MaxSoFar: best},
		fmt.Sprintf("Start with %d", a[0]))
	for i := 1; i < len(a); i++ {
		if cur+a[i] < a[i] {
			cur, start = a[i], i
		} else {
			cur += a[i]
		}
		narr := fmt.Sprintf("At %d: current sum %d", a[i], cur)
		if cur > best {
			best, bestLo, bestHi = cur, start, i
			narr = fmt.Sprintf("At %d: new best %d", a[i], best)
		}
		r.Emit(step.ArrayView(a), ann{step.Index: i, step.CurSum: cur, step.MaxSoFar: best,
			step.Window: []int{start, i}}, narr)
	}
	return r.Finish(step.ArrayView(a), ann{step.MaxSoFar: best, step.Best: []int{bestLo, bestHi}},
		fmt.Sprintf("Maximum subarray sum %d", best))
}
