package algo

import (
	"fmt"
	"math/bits"

	"github.com/san-kum/dsaviz/internal/step"
)

func PrefixSum(input []int) step.Sequence {
	a := clone(input)
	r := step.NewRecorder()
	r.Emit(step.ArrayView(a), nil, "Initial array")
	for i := 1; i < len(a); i++ {
		a[i] += a[i-1]
		r.Emit(step.ArrayView(a), ann{step.Writing: i, step.Deps: [][]int{{i - 1}}},
			fmt.Sprintf("prefix[%d] = %d", i, a[i]))
	}
	return r.Finish(step.ArrayView(a), nil, "Prefix sums done")
}

// Rotate rotates right by k using three reversals.
func Rotate(input []int, k int) step.Sequence {
	a := clone(input)
	if k < 0 {
		return step.Fail(step.ArrayView(a), "k", "Rotation must not be negative")
	}
	r := step.NewRecorder()
	r.Emit(step.ArrayView(a), nil, fmt.Sprintf("Rotate right by %d", k))
	n := len(a)
	if n == 0 {
		return r.Finish(step.ArrayView(a), nil, "Empty array")
	}
	k %= n

	reverse := func(lo, hi int) {
		r.Emit(step.ArrayView(a), ann{step.Window: []int{lo, hi}}, fmt.Sprintf("Reverse [%d..%d]", lo, hi))
		for ; lo < hi; lo, hi = lo+1, hi-1 {
			a[lo], a[hi] = a[hi], a[lo]
			r.Emit(step.ArrayView(a), ann{step.Swapped: []int{lo, hi}}, fmt.Sprintf("Swap %d and %d", a[hi], a[lo]))
		}
	}
	if k > 0 {
		reverse(0, n-1)
		reverse(0, k-1)
		reverse(k, n-1)
	}
	return r.Finish(step.ArrayView(a), nil, "Rotated")
}

// Bits returns the binary digits of n, most significant first.
func Bits(n uint) []int {
	width := max(bits.Len(n), 1)
	out := make([]int, width)
	for i := range width {
		out[width-1-i] = int(n>>i) & 1
	}
	return out
}

// CountSetBits uses Kernighan's trick: n &= n-1 clears the lowest set bit.
func CountSetBits(n int) step.Sequence {
	if n < 0 {
		return step.Fail(step.ArrayView(nil), "n", "n must not be negative")
	}
	u := uint(n)
	width := len(Bits(u))
	view := func(x uint) []int {
		b := Bits(x)
		return append(make([]int, width-len(b)), b...)
	}
	r := step.NewRecorder()
	r.Emit(step.ArrayView(view(u)), nil, fmt.Sprintf("%d in binary", n))

	count := 0
	for u != 0 {
		low := bits.TrailingZeros(u)
		r.Emit(step.ArrayView(view(u)), ann{step.Current: width - 1 - low},
			fmt.Sprintf("Lowest set bit is 2^%d", low))
		u &= u - 1
		count++
		r.Emit(step.ArrayView(view(u)), ann{step.Result: count}, fmt.Sprintf("Clear it, count = %d", count))
	}
	return r.Finish(step.ArrayView(view(u)), ann{step.Result: count}, fmt.Sprintf("%d has %d set bits", n, count))
}

// SingleNumber XORs every element; pairs cancel out.
func SingleNumber(input []int) step.Sequence {
	a := clone(input)
	r := step.NewRecorder()
	r.Emit(step.ArrayView(a), nil, "Initial array")
	acc := 0
	for i, v := range a {
		acc ^= v
		r.Emit(step.ArrayView(a), ann{step.Index: i, step.Value: acc}, fmt.Sprintf("acc ^= %d → %d", v, acc))
	}
	return r.Finish(step.ArrayView(a), ann{step.Result: acc}, fmt.Sprintf("Single number is %d", acc))
}
