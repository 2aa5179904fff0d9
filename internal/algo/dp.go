package algo

import (
	"fmt"
	"strings"

	"github.com/san-kum/dsaviz/internal/step"
)

// MaxFibonacci is the largest n whose Fibonacci number fits in an int64.
const MaxFibonacci = 92

func Fibonacci(n int) step.Sequence {
	if n < 0 || n > MaxFibonacci {
		return step.Fail(step.EmptyTable(1, 0), "n", fmt.Sprintf("n must be between 0 and %d", MaxFibonacci))
	}
	t := step.NewTable(1, n+1)
	r := step.NewRecorder()
	r.Emit(step.TableView(t), nil, fmt.Sprintf("Table for F(0)..F(%d)", n))

	t[0][0] = step.SetCell(0)
	r.Emit(step.TableView(t), ann{step.CellAt: []int{0, 0}}, "Base case F(0) = 0")
	if n >= 1 {
		t[0][1] = step.SetCell(1)
		r.Emit(step.TableView(t), ann{step.CellAt: []int{0, 1}}, "Base case F(1) = 1")
	}
	for i := 2; i <= n; i++ {
		t[0][i] = step.SetCell(t[0][i-1].Value + t[0][i-2].Value)
		r.Emit(step.TableView(t), ann{step.CellAt: []int{0, i}, step.Deps: [][]int{{0, i - 1}, {0, i - 2}}},
			fmt.Sprintf("F(%d) = %d + %d = %d", i, t[0][i-1].Value, t[0][i-2].Value, t[0][i].Value))
	}
	return r.Finish(step.TableView(t), ann{step.Result: t[0][n].Value}, fmt.Sprintf("F(%d) = %d", n, t[0][n].Value))
}

// Knapsack solves 0/1 knapsack. Row i covers the first i items, column w the
// capacity w.
func Knapsack(weights, values []int, capacity int) step.Sequence {
	if len(weights) != len(values) {
		return step.Fail(step.EmptyTable(0, 0), "weights",
			fmt.Sprintf("%d weights but %d values", len(weights), len(values)))
	}
	if capacity < 0 {
		return step.Fail(step.EmptyTable(0, 0), "capacity", "Capacity must not be negative")
	}
	for _, w := range weights {
		if w <= 0 {
			return step.Fail(step.EmptyTable(0, 0), "weights", "Weights must be positive")
		}
	}
	n := len(weights)
	t := step.NewTable(n+1, capacity+1)
	r := step.NewRecorder()
	r.Emit(step.TableView(t), nil, fmt.Sprintf("%d items, capacity %d", n, capacity))

	for w := 0; w <= capacity; w++ {
		t[0][w] = step.SetCell(0)
	}
	for i := 0; i <= n; i++ {
		t[i][0] = step.SetCell(0)
	}
	r.Emit(step.TableView(t), nil, "No items or no capacity: value 0")

	for i := 1; i <= n; i++ {
		wt, val := weights[i-1], values[i-1]
		for w := 1; w <= capacity; w++ {
			skip := t[i-1][w].Value
			if wt > w {
				t[i][w] = step.SetCell(skip)
				r.Emit(step.TableView(t), ann{step.CellAt: []int{i, w}, step.Deps: [][]int{{i - 1, w}}},
					fmt.Sprintf("Item %d (w=%d) does not fit in %d, carry %d", i, wt, w, skip))
				continue
			}
			take := t[i-1][w-wt].Value + val
			t[i][w] = step.SetCell(max(skip, take))
			r.Emit(step.TableView(t), ann{step.CellAt: []int{i, w}, step.Deps: [][]int{{i - 1, w}, {i - 1, w - wt}}},
				fmt.Sprintf("Item %d: max(skip %d, take %d) = %d", i, skip, take, t[i][w].Value))
		}
	}

	chosen := []int{}
	for i, w := n, capacity; i > 0; i-- {
		if t[i][w].Value != t[i-1][w].Value {
			chosen = append([]int{i - 1}, chosen...)
			w -= weights[i-1]
		}
	}
	best := t[n][capacity].Value
	return r.Finish(step.TableView(t), ann{step.Result: best, step.Chosen: chosen},
		fmt.Sprintf("Best value %d using items %v", best, chosen))
}

// LCS fills the longest-common-subsequence table of a and b, indexed by
// characters.
func LCS(a, b string) step.Sequence {
	x, y := step.SplitChars(a), step.SplitChars(b)
	m, n := len(x), len(y)
	t := step.NewTable(m+1, n+1)
	r := step.NewRecorder()
	r.Emit(step.TableView(t), nil, fmt.Sprintf("LCS of %q and %q", a, b))

	for i := 0; i <= m; i++ {
		t[i][0] = step.SetCell(0)
	}
	for j := 0; j <= n; j++ {
		t[0][j] = step.SetCell(0)
	}
	r.Emit(step.TableView(t), nil, "Empty prefixes share nothing")

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if x[i-1] == y[j-1] {
				t[i][j] = step.SetCell(t[i-1][j-1].Value + 1)
				r.Emit(step.TableView(t), ann{step.CellAt: []int{i, j}, step.Deps: [][]int{{i - 1, j - 1}}},
					fmt.Sprintf("%q matches, extend to %d", x[i-1], t[i][j].Value))
				continue
			}
			t[i][j] = step.SetCell(max(t[i-1][j].Value, t[i][j-1].Value))
			r.Emit(step.TableView(t), ann{step.CellAt: []int{i, j}, step.Deps: [][]int{{i - 1, j}, {i, j - 1}}},
				fmt.Sprintf("%q vs %q, keep %d", x[i-1], y[j-1], t[i][j].Value))
		}
	}

	lcs := []string{}
	for i, j := m, n; i > 0 && j > 0; {
		switch {
		case x[i-1] == y[j-1]:
			lcs = append([]string{x[i-1]}, lcs...)
			i--
			j--
		case t[i-1][j].Value >= t[i][j-1].Value:
			i--
		default:
			j--
		}
	}
	s := strings.Join(lcs, "")
	return r.Finish(step.TableView(t), ann{step.Result: t[m][n].Value, step.Text: s},
		fmt.Sprintf("LCS %q has length %d", s, t[m][n].Value))
}

// LIS lays the input on row 0 and the dp lengths on row 1.
func LIS(input []int) step.Sequence {
	a := clone(input)
	n := len(a)
	t := step.NewTable(2, n)
	for i, v := range a {
		t[0][i] = step.SetCell(v)
	}
	r := step.NewRecorder()
	r.Emit(step.TableView(t), nil, "Initial array")

	best := 0
	for i := 0; i < n; i++ {
		t[1][i] = step.SetCell(1)
		r.Emit(step.TableView(t), ann{step.CellAt: []int{1, i}}, fmt.Sprintf("LIS ending at %d starts at 1", a[i]))
		for j := 0; j < i; j++ {
			r.Emit(step.TableView(t), ann{step.Comparing: []int{j, i}}, fmt.Sprintf("Compare %d with %d", a[j], a[i]))
			if a[j] < a[i] && t[1][j].Value+1 > t[1][i].Value {
				t[1][i] = step.SetCell(t[1][j].Value + 1)
				r.Emit(step.TableView(t), ann{step.CellAt: []int{1, i}, step.Deps: [][]int{{1, j}}},
					fmt.Sprintf("Extend through %d: length %d", a[j], t[1][i].Value))
			}
		}
		best = max(best, t[1][i].Value)
	}
	return r.Finish(step.TableView(t), ann{step.Result: best}, fmt.Sprintf("Longest increasing subsequence has length %d", best))
}

// CoinChange computes the fewest coins summing to amount. Unset cells are
// unreachable amounts; an unreachable target reports result -1.
func CoinChange(coins []int, amount int) step.Sequence {
	if amount < 0 {
		return step.Fail(step.EmptyTable(1, 0), "amount", "Amount must not be negative")
	}
	for _, c := range coins {
		if c <= 0 {
			return step.Fail(step.EmptyTable(1, 0), "coins", "Coins must be positive")
		}
	}
	t := step.NewTable(1, amount+1)
	dp := t[0]
	r := step.NewRecorder()
	r.Emit(step.TableView(t), nil, fmt.Sprintf("Make %d from coins %v", amount, coins))
	dp[0] = step.SetCell(0)
	r.Emit(step.TableView(t), ann{step.CellAt: []int{0, 0}}, "Amount 0 needs 0 coins")

	for a := 1; a <= amount; a++ {
		for _, c := range coins {
			r.Emit(step.TableView(t), ann{step.CellAt: []int{0, a}, step.Coin: c}, fmt.Sprintf("Amount %d: try coin %d", a, c))
			if c > a || !dp[a-c].Set {
				continue
			}
			if cand := dp[a-c].Value + 1; !dp[a].Set || cand < dp[a].Value {
				dp[a] = step.SetCell(cand)
				r.Emit(step.TableView(t), ann{step.CellAt: []int{0, a}, step.Coin: c, step.Deps: [][]int{{0, a - c}}},
					fmt.Sprintf("Amount %d: %d coins", a, cand))
			}
		}
	}
	result := -1
	if dp[amount].Set {
		result = dp[amount].Value
	}
	narr := fmt.Sprintf("Minimum coins for %d: %d", amount, result)
	if result < 0 {
		narr = fmt.Sprintf("%d cannot be made from %v", amount, coins)
	}
	return r.Finish(step.TableView(t), ann{step.Result: result}, narr)
}
