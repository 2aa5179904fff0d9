package algo

import (
	"fmt"

	"github.com/san-kum/dsaviz/internal/step"
)

// Queen marks an occupied board cell.
const Queen = 1

// NQueens places n queens row by row and stops at the first solution.
func NQueens(n int) step.Sequence {
	if n < 1 {
		return step.Fail(step.EmptyTable(0, 0), "n", "Board size must be at least 1")
	}
	board := step.NewTable(n, n)
	cols := make([]int, n)
	r := step.NewRecorder()
	r.Emit(step.TableView(board), nil, fmt.Sprintf("Empty %dx%d board", n, n))

	safe := func(row, col int) bool {
		for pr := 0; pr < row; pr++ {
			pc := cols[pr]
			if pc == col || pc-col == pr-row || pc-col == row-pr {
				return false
			}
		}
		return true
	}

	var solve func(row int) bool
	solve = func(row int) bool {
		if row == n {
			return true
		}
		for col := 0; col < n; col++ {
			if !safe(row, col) {
				r.Emit(step.TableView(board), ann{step.Conflict: []int{row, col}},
					fmt.Sprintf("Row %d, column %d is attacked", row, col))
				continue
			}
			cols[row] = col
			board[row][col] = step.SetCell(Queen)
			r.Emit(step.TableView(board), ann{step.Placed: []int{row, col}},
				fmt.Sprintf("Place queen at row %d, column %d", row, col))
			if solve(row + 1) {
				return true
			}
			board[row][col] = step.Cell{}
			r.Emit(step.TableView(board), ann{step.Backtrack: []int{row, col}},
				fmt.Sprintf("Backtrack from row %d, column %d", row, col))
		}
		return false
	}

	if solve(0) {
		return r.Finish(step.TableView(board), ann{step.Result: true, step.Chosen: cols},
			fmt.Sprintf("Solved: queens in columns %v", cols))
	}
	return r.Finish(step.TableView(board), ann{step.Result: false}, fmt.Sprintf("No solution for n = %d", n))
}

// Permutations enumerates every ordering with in-place swaps. Each complete
// ordering is reported on a step carrying the perm role.
func Permutations(input []int) step.Sequence {
	a := clone(input)
	n := len(a)
	r := step.NewRecorder()
	r.Emit(step.ArrayView(a), nil, "Initial array")

	count := 0
	var permute func(k int)
	permute = func(k int) {
		if k == n {
			count++
			r.Emit(step.ArrayView(a), ann{step.Perm: a}, fmt.Sprintf("Permutation %d: %v", count, a))
			return
		}
		for i := k; i < n; i++ {
			a[k], a[i] = a[i], a[k]
			r.Emit(step.ArrayView(a), ann{step.Swapped: []int{k, i}, step.Index: k},
				fmt.Sprintf("Fix %d at position %d", a[k], k))
			permute(k + 1)
			a[k], a[i] = a[i], a[k]
			r.Emit(step.ArrayView(a), ann{step.Backtrack: []int{k, i}, step.Index: k},
				fmt.Sprintf("Undo position %d", k))
		}
	}
	if n > 0 {
		permute(0)
	}
	return r.Finish(step.ArrayView(a), ann{step.Result: count}, fmt.Sprintf("%d permutations", count))
}

// Subsets explores include/exclude decisions per element. The view stays the
// input; the chosen mask and the subset values travel as annotations.
func Subsets(input []int) step.Sequence {
	a := clone(input)
	n := len(a)
	r := step.NewRecorder()
	r.Emit(step.ArrayView(a), nil, "Initial array")

	chosen := make([]bool, n)
	cur := []int{}
	count := 0
	var rec func(i int)
	rec = func(i int) {
		if i == n {
			count++
			r.Emit(step.ArrayView(a), ann{step.Subset: cur, step.Chosen: chosen}, fmt.Sprintf("Subset %v", cur))
			return
		}
		chosen[i] = true
		cur = append(cur, a[i])
		r.Emit(step.ArrayView(a), ann{step.Include: i, step.Chosen: chosen}, fmt.Sprintf("Include %d", a[i]))
		rec(i + 1)
		chosen[i] = false
		cur = cur[:len(cur)-1]
		r.Emit(step.ArrayView(a), ann{step.Exclude: i, step.Chosen: chosen}, fmt.Sprintf("Exclude %d", a[i]))
		rec(i + 1)
	}
	rec(0)
	return r.Finish(step.ArrayView(a), ann{step.Result: count}, fmt.Sprintf("%d subsets", count))
}
