package algo

import (
	"fmt"
	"strings"

	"github.com/san-kum/dsaviz/internal/step"
)

// KMP builds the failure table of pattern first, then scans text and
// reports every match start.
func KMP(text, pattern string) step.Sequence {
	t := step.SplitChars(text)
	p := step.SplitChars(pattern)
	if len(p) == 0 {
		return step.Fail(step.CharsView(t), "pattern", "Pattern must not be empty")
	}
	m := len(p)
	r := step.NewRecorder()
	r.Emit(step.CharsView(t), nil, fmt.Sprintf("Search for %q", pattern))

	lps := make([]int, m)
	for length, i := 0, 1; i < m; {
		switch {
		case p[i] == p[length]:
			length++
			lps[i] = length
			r.Emit(step.CharsView(t), ann{step.Phase: "lps", step.PatternAt: i, step.LPS: lps},
				fmt.Sprintf("lps[%d] = %d", i, length))
			i++
		case length > 0:
			length = lps[length-1]
			r.Emit(step.CharsView(t), ann{step.Phase: "lps", step.PatternAt: i, step.LPS: lps},
				fmt.Sprintf("Mismatch at pattern %d, fall back to %d", i, length))
		default:
			lps[i] = 0
			r.Emit(step.CharsView(t), ann{step.Phase: "lps", step.PatternAt: i, step.LPS: lps},
				fmt.Sprintf("lps[%d] = 0", i))
			i++
		}
	}
	r.Emit(step.CharsView(t), ann{step.Phase: "lps", step.LPS: lps, step.PhaseDone: true},
		fmt.Sprintf("Failure table %v", lps))

	matches := []int{}
	for i, j := 0, 0; i < len(t); {
		r.Emit(step.CharsView(t), ann{step.Phase: "scan", step.Comparing: []int{i}, step.PatternAt: j, step.LPS: lps, step.Matches: matches},
			fmt.Sprintf("Compare text %q with pattern %q", t[i], p[j]))
		if t[i] == p[j] {
			i++
			j++
			if j == m {
				matches = append(matches, i-m)
				r.Emit(step.CharsView(t), ann{step.Phase: "scan", step.Found: i - m, step.Window: []int{i - m, i - 1}, step.LPS: lps, step.Matches: matches},
					fmt.Sprintf("Match at %d", i-m))
				j = lps[j-1]
			}
			continue
		}
		if j > 0 {
			j = lps[j-1]
			r.Emit(step.CharsView(t), ann{step.Phase: "scan", step.PatternAt: j, step.LPS: lps, step.Matches: matches},
				fmt.Sprintf("Shift pattern, resume at %d", j))
			continue
		}
		i++
	}
	return r.Finish(step.CharsView(t), ann{step.LPS: lps, step.Matches: matches},
		fmt.Sprintf("%d match(es) at %v", len(matches), matches))
}

// Anagram counts letters of a up and letters of b down in a 26-slot array.
// Case is ignored and non-letters are skipped.
func Anagram(a, b string) step.Sequence {
	counts := make([]int, 26)
	r := step.NewRecorder()
	r.Emit(step.ArrayView(counts), nil, fmt.Sprintf("Compare letters of %q and %q", a, b))

	tally := func(s string, delta int, verb string) {
		for _, ch := range strings.ToLower(s) {
			if ch < 'a' || ch > 'z' {
				continue
			}
			idx := int(ch - 'a')
			counts[idx] += delta
			r.Emit(step.ArrayView(counts), ann{step.Index: idx}, fmt.Sprintf("%s %q: %d", verb, ch, counts[idx]))
		}
	}
	tally(a, 1, "Count")
	tally(b, -1, "Uncount")

	for i, c := range counts {
		if c != 0 {
			return r.Finish(step.ArrayView(counts), ann{step.Mismatch: i, step.Result: false},
				fmt.Sprintf("%q differs by %d, not anagrams", rune('a'+i), c))
		}
	}
	return r.Finish(step.ArrayView(counts), ann{step.Result: true}, "All counts are zero, anagrams")
}
