package algo

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/san-kum/dsaviz/internal/step"
)

func isVowel(c string) bool {
	return len(c) == 1 && strings.ContainsAny(c, "aeiouAEIOU")
}

func ReverseVowels(s string) step.Sequence {
	c := step.SplitChars(s)
	r := step.NewRecorder()
	r.Emit(step.CharsView(c), nil, "Initial string")

	l, rt := 0, len(c)-1
	for l < rt {
		for l < rt && !isVowel(c[l]) {
			r.Emit(step.CharsView(c), ann{step.Left: l, step.Right: rt},
				fmt.Sprintf("%q is not a vowel, move left pointer", c[l]))
			l++
		}
		for l < rt && !isVowel(c[rt]) {
			r.Emit(step.CharsView(c), ann{step.Left: l, step.Right: rt},
				fmt.Sprintf("%q is not a vowel, move right pointer", c[rt]))
			rt--
		}
		if l >= rt {
			break
		}
		r.Emit(step.CharsView(c), ann{step.Swapping: []int{l, rt}},
			fmt.Sprintf("Vowels %q and %q found", c[l], c[rt]))
		c[l], c[rt] = c[rt], c[l]
		r.Emit(step.CharsView(c), ann{step.Swapped: []int{l, rt}}, "Swapped")
		l++
		rt--
	}
	return r.Finish(step.CharsView(c), nil, fmt.Sprintf("Result: %q", strings.Join(c, "")))
}

// MaxWindowSum finds the largest sum over windows of exactly k elements.
func MaxWindowSum(input []int, k int) step.Sequence {
	a := clone(input)
	if k <= 0 || k > len(a) {
		return step.Fail(step.ArrayView(a), "k", "Invalid window size")
	}
	r := step.NewRecorder()
	r.Emit(step.ArrayView(a), nil, fmt.Sprintf("Find the best window of size %d", k))

	sum := 0
	for i := 0; i < k; i++ {
		sum += a[i]
	}
	r.Emit(step.ArrayView(a), ann{step.Window: []int{0, k - 1}, step.Sum: sum},
		fmt.Sprintf("First window sums to %d", sum))
	best, start := sum, 0
	r.Emit(step.ArrayView(a), ann{step.Best: []int{0, k - 1}, step.Max: best}, fmt.Sprintf("Best so far %d", best))

	for i := k; i < len(a); i++ {
		sum += a[i] - a[i-k]
		lo := i - k + 1
		r.Emit(step.ArrayView(a), ann{step.Window: []int{lo, i}, step.Sum: sum},
			fmt.Sprintf("Slide: add %d, drop %d, sum %d", a[i], a[i-k], sum))
		if sum > best {
			best, start = sum, lo
			r.Emit(step.ArrayView(a), ann{step.Best: []int{lo, i}, step.Max: best}, fmt.Sprintf("New best %d", best))
		}
	}
	return r.Finish(step.ArrayView(a),
		ann{step.Max: best, step.MaxStart: start, step.Best: []int{start, start + k - 1}},
		fmt.Sprintf("Max window sum %d starting at %d", best, start))
}

// TwoSum reports the first pair (j, i), j < i, with a[j]+a[i] == target.
func TwoSum(input []int, target int) step.Sequence {
	a := clone(input)
	if len(a) < 2 {
		return step.Fail(step.ArrayView(a), "array", "Two Sum needs at least 2 numbers")
	}
	r := step.NewRecorder()
	r.Emit(step.ArrayView(a), nil, fmt.Sprintf("Find two numbers summing to %d", target))

	seen := make(map[int]int, len(a))
	for i, v := range a {
		need := target - v
		r.Emit(step.ArrayView(a), ann{step.Current: i, step.Value: need},
			fmt.Sprintf("At %d, look for complement %d", v, need))
		if j, ok := seen[need]; ok {
			return r.Finish(step.ArrayView(a), ann{step.Pair: []int{j, i}},
				fmt.Sprintf("%d + %d = %d", a[j], v, target))
		}
		if _, ok := seen[v]; !ok {
			seen[v] = i
		}
		r.Emit(step.ArrayView(a), ann{step.Current: i}, fmt.Sprintf("Remember %d at index %d", v, i))
	}
	return r.Finish(step.ArrayView(a), nil, "No pair found")
}

func isAlnum(c string) bool {
	ch, _ := utf8.DecodeRuneInString(c)
	return unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

// Palindrome ignores case and non-alphanumeric characters.
func Palindrome(s string) step.Sequence {
	c := step.SplitChars(s)
	r := step.NewRecorder()
	r.Emit(step.CharsView(c), nil, "Initial string")

	l, rt := 0, len(c)-1
	for l < rt {
		if !isAlnum(c[l]) {
			l++
			r.Emit(step.CharsView(c), ann{step.Left: l, step.Right: rt}, "Skip non-alphanumeric on the left")
			continue
		}
		if !isAlnum(c[rt]) {
			rt--
			r.Emit(step.CharsView(c), ann{step.Left: l, step.Right: rt}, "Skip non-alphanumeric on the right")
			continue
		}
		r.Emit(step.CharsView(c), ann{step.Comparing: []int{l, rt}}, fmt.Sprintf("Compare %q and %q", c[l], c[rt]))
		if !strings.EqualFold(c[l], c[rt]) {
			return r.Finish(step.CharsView(c), ann{step.Mismatch: []int{l, rt}, step.Result: false}, "Not a palindrome")
		}
		l++
		rt--
	}
	return r.Finish(step.CharsView(c), ann{step.Result: true}, "Palindrome")
}
