package algo

import (
	"fmt"

	"github.com/san-kum/dsaviz/internal/step"
)

type ann = step.Annotations

// MaxCountingRange bounds max-min for counting sort.
const MaxCountingRange = 1000

func clone(a []int) []int {
	return append([]int{}, a...)
}

func Bubble(input []int) step.Sequence {
	a := clone(input)
	n := len(a)
	r := step.NewRecorder()
	r.Emit(step.ArrayView(a), nil, "Initial array")

	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			r.Emit(step.ArrayView(a), ann{step.Comparing: []int{j, j + 1}},
				fmt.Sprintf("Compare %d and %d", a[j], a[j+1]))
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
				swapped = true
				r.Emit(step.ArrayView(a), ann{step.Swapped: []int{j, j + 1}},
					fmt.Sprintf("Swap %d and %d", a[j+1], a[j]))
			}
		}
		r.Emit(step.ArrayView(a), ann{step.PassEnd: n - 1 - i},
			fmt.Sprintf("Pass %d done, %d is in place", i+1, a[n-1-i]))
		if !swapped {
			break
		}
	}
	return r.Finish(step.ArrayView(a), nil, "Sorted!")
}

func Selection(input []int) step.Sequence {
	a := clone(input)
	n := len(a)
	r := step.NewRecorder()
	r.Emit(step.ArrayView(a), nil, "Initial array")

	for i := 0; i < n-1; i++ {
		minIdx := i
		r.Emit(step.ArrayView(a), ann{step.Current: i, step.NewMin: minIdx},
			fmt.Sprintf("Position %d: assume %d is the minimum", i, a[i]))
		for j := i + 1; j < n; j++ {
			r.Emit(step.ArrayView(a), ann{step.Current: i, step.Comparing: []int{minIdx, j}},
				fmt.Sprintf("Compare %d with current minimum %d", a[j], a[minIdx]))
			if a[j] < a[minIdx] {
				minIdx = j
				r.Emit(step.ArrayView(a), ann{step.Current: i, step.NewMin: minIdx},
					fmt.Sprintf("New minimum %d at index %d", a[minIdx], minIdx))
			}
		}
		if minIdx != i {
			a[i], a[minIdx] = a[minIdx], a[i]
			r.Emit(step.ArrayView(a), ann{step.Swapped: []int{i, minIdx}},
				fmt.Sprintf("Swap %d into position %d", a[i], i))
		}
		r.Emit(step.ArrayView(a), ann{step.Placed: i}, fmt.Sprintf("%d fixed at index %d", a[i], i))
	}
	return r.Finish(step.ArrayView(a), nil, "Sorted!")
}

func Insertion(input []int) step.Sequence {
	a := clone(input)
	r := step.NewRecorder()
	r.Emit(step.ArrayView(a), nil, "Initial array")

	for i := 1; i < len(a); i++ {
		key := a[i]
		r.Emit(step.ArrayView(a), ann{step.KeyIndex: i}, fmt.Sprintf("Take key %d", key))
		j := i - 1
		for j >= 0 {
			r.Emit(step.ArrayView(a), ann{step.Comparing: []int{j}, step.Value: key},
				fmt.Sprintf("Compare %d with key %d", a[j], key))
			if a[j] <= key {
				break
			}
			a[j+1] = a[j]
			r.Emit(step.ArrayView(a), ann{step.Shifting: []int{j, j + 1}},
				fmt.Sprintf("Shift %d right", a[j]))
			j--
		}
		a[j+1] = key
		r.Emit(step.ArrayView(a), ann{step.Placed: j + 1}, fmt.Sprintf("Place %d at index %d", key, j+1))
	}
	return r.Finish(step.ArrayView(a), nil, "Sorted!")
}

func Merge(input []int) step.Sequence {
	a := clone(input)
	r := step.NewRecorder()
	r.Emit(step.ArrayView(a), nil, "Initial array")

	merge := func(lo, mid, hi int) {
		r.Emit(step.ArrayView(a), ann{step.Merging: []int{lo, mid, hi}},
			fmt.Sprintf("Merge [%d..%d] with [%d..%d]", lo, mid, mid+1, hi))
		left := clone(a[lo : mid+1])
		right := clone(a[mid+1 : hi+1])
		i, j, k := 0, 0, lo
		for i < len(left) && j < len(right) {
			r.Emit(step.ArrayView(a), ann{step.Comparing: []int{lo + i, mid + 1 + j}},
				fmt.Sprintf("Compare %d and %d", left[i], right[j]))
			if left[i] <= right[j] {
				a[k] = left[i]
				i++
			} else {
				a[k] = right[j]
				j++
			}
			r.Emit(step.ArrayView(a), ann{step.Writing: k}, fmt.Sprintf("Write %d at index %d", a[k], k))
			k++
		}
		for ; i < len(left); i++ {
			a[k] = left[i]
			r.Emit(step.ArrayView(a), ann{step.Writing: k}, fmt.Sprintf("Write %d at index %d", a[k], k))
			k++
		}
		for ; j < len(right); j++ {
			a[k] = right[j]
			r.Emit(step.ArrayView(a), ann{step.Writing: k}, fmt.Sprintf("Write %d at index %d", a[k], k))
			k++
		}
	}

	var sort func(lo, hi int)
	sort = func(lo, hi int) {
		if lo >= hi {
			return
		}
		mid := (lo + hi) / 2
		sort(lo, mid)
		sort(mid+1, hi)
		merge(lo, mid, hi)
	}
	sort(0, len(a)-1)
	return r.Finish(step.ArrayView(a), nil, "Sorted!")
}

// Quick uses the Lomuto scheme with the last element as pivot. Only elements
// strictly less than the pivot move.
func Quick(input []int) step.Sequence {
	a := clone(input)
	r := step.NewRecorder()
	r.Emit(step.ArrayView(a), nil, "Initial array")

	partition := func(lo, hi int) int {
		pivot := a[hi]
		r.Emit(step.ArrayView(a), ann{step.PivotIndex: hi, step.Partition: []int{lo, hi}},
			fmt.Sprintf("Partition [%d..%d] around pivot %d", lo, hi, pivot))
		i := lo
		for j := lo; j < hi; j++ {
			r.Emit(step.ArrayView(a), ann{step.PivotIndex: hi, step.Comparing: []int{j, hi}},
				fmt.Sprintf("Compare %d with pivot %d", a[j], pivot))
			if a[j] < pivot {
				if i != j {
					a[i], a[j] = a[j], a[i]
					r.Emit(step.ArrayView(a), ann{step.PivotIndex: hi, step.Swapped: []int{i, j}},
						fmt.Sprintf("Swap %d and %d", a[j], a[i]))
				}
				i++
			}
		}
		if i != hi {
			a[i], a[hi] = a[hi], a[i]
			r.Emit(step.ArrayView(a), ann{step.Swapped: []int{i, hi}, step.Placed: i},
				fmt.Sprintf("Move pivot %d to index %d", pivot, i))
		} else {
			r.Emit(step.ArrayView(a), ann{step.Placed: i}, fmt.Sprintf("Pivot %d already at index %d", pivot, i))
		}
		return i
	}

	var sort func(lo, hi int)
	sort = func(lo, hi int) {
		if lo >= hi {
			return
		}
		p := partition(lo, hi)
		sort(lo, p-1)
		sort(p+1, hi)
	}
	sort(0, len(a)-1)
	return r.Finish(step.ArrayView(a), nil, "Sorted!")
}

// siftDown restores the max-heap property below i within a[:size].
func siftDown(r *step.Recorder, a []int, i, size int, extra ann) {
	with := func(m ann) ann {
		for k, v := range extra {
			m[k] = v
		}
		return m
	}
	for {
		largest := i
		for _, c := range []int{2*i + 1, 2*i + 2} {
			if c >= size {
				continue
			}
			r.Emit(step.ArrayView(a), with(ann{step.Comparing: []int{largest, c}}),
				fmt.Sprintf("Compare %d with child %d", a[largest], a[c]))
			if a[c] > a[largest] {
				largest = c
			}
		}
		if largest == i {
			return
		}
		a[i], a[largest] = a[largest], a[i]
		r.Emit(step.ArrayView(a), with(ann{step.Swapped: []int{i, largest}}),
			fmt.Sprintf("Swap %d down", a[largest]))
		i = largest
	}
}

func Heap(input []int) step.Sequence {
	a := clone(input)
	n := len(a)
	r := step.NewRecorder()
	r.Emit(step.ArrayView(a), nil, "Initial array")

	for i := n/2 - 1; i >= 0; i-- {
		siftDown(r, a, i, n, ann{step.SortedFrom: n})
	}
	if n > 0 {
		r.Emit(step.ArrayView(a), ann{step.SortedFrom: n}, "Max-heap built")
	}
	for end := n - 1; end > 0; end-- {
		a[0], a[end] = a[end], a[0]
		r.Emit(step.ArrayView(a), ann{step.Swapped: []int{0, end}, step.SortedFrom: end},
			fmt.Sprintf("Move max %d to index %d", a[end], end))
		siftDown(r, a, 0, end, ann{step.SortedFrom: end})
	}
	return r.Finish(step.ArrayView(a), nil, "Sorted!")
}

// Counting supports negative values by offsetting against the minimum.
func Counting(input []int) step.Sequence {
	a := clone(input)
	if len(a) == 0 {
		r := step.NewRecorder()
		r.Emit(step.ArrayView(a), nil, "Initial array")
		return r.Finish(step.ArrayView(a), nil, "Sorted!")
	}
	lo, hi := a[0], a[0]
	for _, v := range a {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if hi-lo > MaxCountingRange {
		return step.Fail(step.ArrayView(a), "array",
			fmt.Sprintf("Value range %d exceeds %d for counting sort", hi-lo, MaxCountingRange))
	}

	r := step.NewRecorder()
	r.Emit(step.ArrayView(a), nil, "Initial array")
	counts := make([]int, hi-lo+1)
	for i, v := range a {
		counts[v-lo]++
		r.Emit(step.ArrayView(a), ann{step.Current: i, step.Counts: counts},
			fmt.Sprintf("Count %d (now %d)", v, counts[v-lo]))
	}
	k := 0
	for off, c := range counts {
		for ; c > 0; c-- {
			a[k] = off + lo
			r.Emit(step.ArrayView(a), ann{step.Writing: k, step.Counts: counts},
				fmt.Sprintf("Write %d at index %d", a[k], k))
			k++
		}
	}
	return r.Finish(step.ArrayView(a), nil, "Sorted!")
}
