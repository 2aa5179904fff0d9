package algo

import (
	"fmt"
	"slices"

	"github.com/san-kum/dsaviz/internal/step"
)

// NotFound is the found value reported when the target is absent.
const NotFound = -1

func Linear(input []int, target int) step.Sequence {
	a := clone(input)
	r := step.NewRecorder()
	r.Emit(step.ArrayView(a), nil, fmt.Sprintf("Search for %d", target))
	for i, v := range a {
		r.Emit(step.ArrayView(a), ann{step.Comparing: []int{i}}, fmt.Sprintf("Check index %d: %d", i, v))
		if v == target {
			return r.Finish(step.ArrayView(a), ann{step.Found: i}, fmt.Sprintf("Found %d at index %d", target, i))
		}
	}
	return r.Finish(step.ArrayView(a), ann{step.Found: NotFound}, fmt.Sprintf("%d not found", target))
}

// Binary sorts its own copy of the input before searching and reports indices
// into the sorted copy.
func Binary(input []int, target int) step.Sequence {
	a := clone(input)
	r := step.NewRecorder()
	r.Emit(step.ArrayView(a), nil, fmt.Sprintf("Search for %d", target))
	slices.Sort(a)
	r.Emit(step.ArrayView(a), nil, "Sorted ascending for binary search")

	lo, hi := 0, len(a)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		r.Emit(step.ArrayView(a), ann{step.Low: lo, step.High: hi, step.Mid: mid},
			fmt.Sprintf("Probe mid %d: %d", mid, a[mid]))
		switch {
		case a[mid] == target:
			return r.Finish(step.ArrayView(a), ann{step.Found: mid, step.Mid: mid},
				fmt.Sprintf("Found %d at index %d", target, mid))
		case a[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return r.Finish(step.ArrayView(a), ann{step.Found: NotFound}, fmt.Sprintf("%d not found", target))
}
