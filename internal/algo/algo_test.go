package algo

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/dsaviz/internal/step"
)

func requireWellFormed(t *testing.T, seq step.Sequence) {
	t.Helper()
	require.GreaterOrEqual(t, seq.Len(), 2)
	require.False(t, seq.Invalid())
	require.True(t, seq.Last().Complete())
	for i := 0; i < seq.Len()-1; i++ {
		require.False(t, seq.At(i).Complete(), "step %d completes early", i)
	}
}

func findRole(seq step.Sequence, role step.Role) []step.Step {
	var out []step.Step
	for _, st := range seq.Steps() {
		if st.Annotations.Has(role) {
			out = append(out, st)
		}
	}
	return out
}

func TestLinearSearch(t *testing.T) {
	in := []int{7, 3, 9, 3}
	tests := []struct {
		target int
		want   int
	}{
		{3, 1},
		{7, 0},
		{42, NotFound},
	}
	for _, tt := range tests {
		seq := Linear(in, tt.target)
		requireWellFormed(t, seq)
		assert.Equal(t, in, seq.First().View.Array)
		found, ok := seq.Last().Annotations.Int(step.Found)
		require.True(t, ok)
		assert.Equal(t, tt.want, found)
	}
}

func TestBinarySearchBoundary(t *testing.T) {
	seq := Binary([]int{2, 3, 4, 10, 40}, 10)
	requireWellFormed(t, seq)
	found, _ := seq.Last().Annotations.Int(step.Found)
	assert.Equal(t, 3, found)
}

func TestBinarySearchSortsItsInput(t *testing.T) {
	in := []int{40, 2, 10, 4, 3}
	seq := Binary(in, 4)
	requireWellFormed(t, seq)
	assert.Equal(t, in, seq.First().View.Array)
	assert.Equal(t, []int{2, 3, 4, 10, 40}, seq.At(1).View.Array)
	found, _ := seq.Last().Annotations.Int(step.Found)
	assert.Equal(t, 2, found)

	missing := Binary(in, 5)
	found, _ = missing.Last().Annotations.Int(step.Found)
	assert.Equal(t, NotFound, found)
}

func TestReverseVowels(t *testing.T) {
	tests := map[string]string{
		"hello world": "hollo werld",
		"leetcode":    "leotcede",
		"xyz":         "xyz",
		"a":           "a",
		"AeIo":        "oIeA",
	}
	for in, want := range tests {
		seq := ReverseVowels(in)
		requireWellFormed(t, seq)
		assert.Equal(t, in, seq.First().View.Joined())
		assert.Equal(t, want, seq.Last().View.Joined(), in)
	}
}

func TestReverseVowelsMarksTheSkippedCharacter(t *testing.T) {
	seq := ReverseVowels("xaybz")
	requireWellFormed(t, seq)
	var lefts, rights []string
	for _, st := range seq.Steps() {
		chars := st.View.Chars
		switch {
		case strings.Contains(st.Narration, "move left"):
			l, ok := st.Annotations.Int(step.Left)
			require.True(t, ok)
			assert.Contains(t, st.Narration, strconv.Quote(chars[l]))
			lefts = append(lefts, chars[l])
		case strings.Contains(st.Narration, "move right"):
			rt, ok := st.Annotations.Int(step.Right)
			require.True(t, ok)
			assert.Contains(t, st.Narration, strconv.Quote(chars[rt]))
			rights = append(rights, chars[rt])
		}
	}
	assert.Equal(t, []string{"x"}, lefts)
	assert.Equal(t, []string{"z", "b", "y"}, rights)
}

func TestMaxWindowSum(t *testing.T) {
	in := []int{1, 4, 2, 10, 2, 3, 1, 0, 20}
	k := 3
	want := 0
	for i := 0; i+k <= len(in); i++ {
		s := 0
		for _, v := range in[i : i+k] {
			s += v
		}
		if i == 0 || s > want {
			want = s
		}
	}
	require.Equal(t, 21, want)

	seq := MaxWindowSum(in, k)
	requireWellFormed(t, seq)
	got, ok := seq.Last().Annotations.Int(step.Max)
	require.True(t, ok)
	assert.Equal(t, want, got)
	start, _ := seq.Last().Annotations.Int(step.MaxStart)
	assert.Equal(t, 6, start)
}

func TestMaxWindowSumInvalidWindow(t *testing.T) {
	for _, k := range []int{0, -1, 4} {
		seq := MaxWindowSum([]int{1, 2, 3}, k)
		require.True(t, seq.Invalid(), "k=%d", k)
		assert.True(t, strings.HasPrefix(seq.Last().Narration, step.ErrorPrefix))
		assert.True(t, seq.Last().Complete())
	}
}

func TestTwoSum(t *testing.T) {
	seq := TwoSum([]int{2, 7, 11, 15}, 9)
	requireWellFormed(t, seq)
	assert.Equal(t, []int{0, 1}, seq.Last().Annotations[step.Pair])

	none := TwoSum([]int{1, 2}, 10)
	requireWellFormed(t, none)
	assert.False(t, none.Last().Annotations.Has(step.Pair))

	short := TwoSum([]int{5}, 5)
	assert.True(t, short.Invalid())
	assert.Equal(t, 1, short.Len())
}

func TestPalindrome(t *testing.T) {
	tests := map[string]bool{
		"A man, a plan, a canal: Panama": true,
		"race a car":                     false,
		"":                               true,
		"!!":                             true,
	}
	for in, want := range tests {
		seq := Palindrome(in)
		requireWellFormed(t, seq)
		assert.Equal(t, want, seq.Last().Annotations.Bool(step.Result), in)
	}
}

func TestStackBoundary(t *testing.T) {
	seq := Stack([]Op{{OpPush, 1}, {OpPush, 2}, {OpPop, 0}})
	requireWellFormed(t, seq)
	assert.Equal(t, []int{1}, seq.Last().View.Array)
	pops := findRole(seq, step.Popped)
	require.Len(t, pops, 1)
	assert.Equal(t, 2, pops[0].Annotations[step.Popped])
}

func TestStackAndQueueUnderflow(t *testing.T) {
	ops := []Op{{OpPop, 0}, {OpPush, 3}}
	for _, seq := range []step.Sequence{Stack(ops), Queue(ops)} {
		requireWellFormed(t, seq)
		assert.Len(t, findRole(seq, step.Underflow), 1)
		assert.Equal(t, []int{3}, seq.Last().View.Array)
	}
}

func TestQueueOrder(t *testing.T) {
	seq := Queue([]Op{{OpPush, 1}, {OpPush, 2}, {OpPush, 3}, {OpPop, 0}})
	requireWellFormed(t, seq)
	assert.Equal(t, []int{2, 3}, seq.Last().View.Array)
	deq := findRole(seq, step.Dequeued)
	require.Len(t, deq, 1)
	assert.Equal(t, 1, deq[0].Annotations[step.Dequeued])
}

func TestReverseList(t *testing.T) {
	seq := ReverseList([]int{1, 2, 3, 4})
	requireWellFormed(t, seq)
	first := seq.First()
	assert.Equal(t, []int{1, 2, 3, 4}, ListOrder(first.View.List, 0))
	last := seq.Last()
	head, _ := last.Annotations.Int(step.Head)
	assert.Equal(t, []int{4, 3, 2, 1}, ListOrder(last.View.List, head))
	assert.Len(t, findRole(seq, step.Reversing), 4)

	empty := ReverseList(nil)
	requireWellFormed(t, empty)
}

func unweighted() *step.Graph {
	return step.UnweightedGraph([][]int{{1, 2}, {3}, {3}, {}, {0}})
}

func TestBFS(t *testing.T) {
	seq := BFS(unweighted())
	requireWellFormed(t, seq)
	assert.Equal(t, []int{0, 1, 2, 3}, seq.Last().Annotations[step.Order])

	// visited on discovery: 3 is discovered once even though two vertices reach it
	disc := 0
	for _, st := range findRole(seq, step.Discovered) {
		if st.Annotations[step.Discovered] == 3 {
			disc++
		}
	}
	assert.Equal(t, 1, disc)
}

func TestDFS(t *testing.T) {
	seq := DFS(unweighted())
	requireWellFormed(t, seq)
	assert.Equal(t, []int{0, 1, 3, 2}, seq.Last().Annotations[step.Order])
	visits := findRole(seq, step.Visiting)
	require.NotEmpty(t, visits)
	assert.Equal(t, step.None, visits[0].Annotations[step.Parent])
}

func TestGraphsStartAtZeroAndCopyInput(t *testing.T) {
	g := unweighted()
	seq := BFS(g)
	assert.Equal(t, g, seq.First().View.Graph)
	visits := findRole(seq, step.Visiting)
	assert.Equal(t, 0, visits[0].Annotations[step.Visiting])
}

func weighted(edges [][3]int, n int) *step.Graph {
	g := &step.Graph{Adj: make([][]step.Edge, n), Weighted: true}
	for _, e := range edges {
		g.Adj[e[0]] = append(g.Adj[e[0]], step.Edge{To: e[1], Weight: e[2]})
	}
	return g
}

func TestDijkstra(t *testing.T) {
	g := weighted([][3]int{{0, 1, 4}, {0, 2, 1}, {2, 1, 2}, {1, 3, 1}, {2, 3, 5}}, 5)
	seq := Dijkstra(g)
	requireWellFormed(t, seq)
	assert.Equal(t, []int{0, 3, 1, 4, Unreached}, seq.Last().Annotations[step.Dist])
}

func TestTopoSort(t *testing.T) {
	seq := TopoSort(step.UnweightedGraph([][]int{{1, 2}, {3}, {3}, {}}))
	requireWellFormed(t, seq)
	assert.Equal(t, []int{0, 1, 2, 3}, seq.Last().Annotations[step.Order])
	assert.False(t, seq.Last().Annotations.Bool(step.Cycle))

	cyc := TopoSort(step.UnweightedGraph([][]int{{1}, {2}, {1}}))
	requireWellFormed(t, cyc)
	assert.True(t, cyc.Last().Annotations.Bool(step.Cycle))
	assert.Equal(t, []int{0}, cyc.Last().Annotations[step.Order])
}

func TestPrim(t *testing.T) {
	g := weighted([][3]int{
		{0, 1, 2}, {0, 3, 6}, {1, 2, 3}, {1, 3, 8}, {1, 4, 5}, {2, 4, 7}, {3, 4, 9},
	}, 5)
	seq := Prim(g)
	requireWellFormed(t, seq)
	last := seq.Last()
	assert.Equal(t, 16, last.Annotations[step.Total])
	assert.Len(t, last.Annotations[step.MSTEdges], 4)
}

func TestGraphEdgeSteps(t *testing.T) {
	g := weighted([][3]int{{0, 1, 4}, {0, 2, 1}, {2, 1, 2}}, 3)
	for name, seq := range map[string]step.Sequence{
		"dijkstra": Dijkstra(g),
		"prim":     Prim(g),
		"topo":     TopoSort(step.UnweightedGraph([][]int{{1, 2}, {2}, {}})),
	} {
		edges := findRole(seq, step.ActiveEdge)
		require.NotEmpty(t, edges, name)
		for _, st := range edges {
			e, ok := st.Annotations.Ints(step.ActiveEdge)
			require.True(t, ok, name)
			require.Len(t, e, 2, name)
			assert.Less(t, e[0], 3, name)
			assert.Less(t, e[1], 3, name)
		}
	}
}

func TestTraversals(t *testing.T) {
	seq := Traversals([]int{1, 2, 3, 4, 5})
	requireWellFormed(t, seq)
	last := seq.Last().Annotations
	assert.Equal(t, []int{1, 2, 4, 5, 3}, last[step.Preorder])
	assert.Equal(t, []int{4, 2, 5, 1, 3}, last[step.Inorder])
	assert.Equal(t, []int{4, 5, 2, 3, 1}, last[step.Postorder])
	assert.Equal(t, []int{1, 2, 3, 4, 5}, last[step.LevelOrder])
	assert.Len(t, findRole(seq, step.PhaseDone), 4)
}

func TestBSTInsert(t *testing.T) {
	seq := BSTInsert([]int{5, 3, 8, 1, 4, 8, 9})
	requireWellFormed(t, seq)
	nodes := seq.Last().View.Tree
	assert.Equal(t, []int{1, 3, 4, 5, 8, 9}, InorderValues(nodes))
	assert.Len(t, findRole(seq, step.Duplicate), 1)
}

func TestTrieInsert(t *testing.T) {
	seq := TrieInsert([]string{"car", "cat", "", "ca"})
	requireWellFormed(t, seq)
	nodes := seq.Last().View.Trie
	assert.Len(t, nodes, 5)
	assert.ElementsMatch(t, []string{"ca", "car", "cat"}, TrieWords(nodes))
	assert.Len(t, findRole(seq, step.Created), 4)
}

func TestFibonacci(t *testing.T) {
	seq := Fibonacci(8)
	requireWellFormed(t, seq)
	assert.Equal(t, 21, seq.Last().Annotations[step.Result])
	// one step per cell write plus the empty table and the completion
	assert.Equal(t, 9+2, seq.Len())
	for _, st := range seq.Steps() {
		assert.Len(t, st.View.Table[0], 9)
	}
	assert.True(t, Fibonacci(-1).Invalid())
}

func TestKnapsack(t *testing.T) {
	seq := Knapsack([]int{1, 3, 4, 5}, []int{1, 4, 5, 7}, 7)
	requireWellFormed(t, seq)
	assert.Equal(t, 9, seq.Last().Annotations[step.Result])
	assert.Equal(t, []int{1, 2}, seq.Last().Annotations[step.Chosen])
	for _, st := range seq.Steps() {
		require.Len(t, st.View.Table, 5)
	}

	bad := Knapsack([]int{1, 2}, []int{1}, 3)
	assert.True(t, bad.Invalid())
}

func TestLCS(t *testing.T) {
	seq := LCS("ABCBDAB", "BDCABA")
	requireWellFormed(t, seq)
	assert.Equal(t, 4, seq.Last().Annotations[step.Result])
	s, _ := seq.Last().Annotations.String(step.Text)
	assert.Len(t, s, 4)
}

func TestLIS(t *testing.T) {
	seq := LIS([]int{10, 9, 2, 5, 3, 7, 101, 18})
	requireWellFormed(t, seq)
	assert.Equal(t, 4, seq.Last().Annotations[step.Result])
	first := seq.First().View.Table
	assert.Equal(t, step.SetCell(10), first[0][0])
	assert.False(t, first[1][0].Set)
}

func TestCoinChange(t *testing.T) {
	tests := []struct {
		coins  []int
		amount int
		want   int
	}{
		{[]int{1, 2, 5}, 11, 3},
		{[]int{2}, 3, -1},
		{[]int{1}, 0, 0},
	}
	for _, tt := range tests {
		seq := CoinChange(tt.coins, tt.amount)
		requireWellFormed(t, seq)
		assert.Equal(t, tt.want, seq.Last().Annotations[step.Result], "%v %d", tt.coins, tt.amount)
	}
}

func TestNQueens(t *testing.T) {
	seq := NQueens(4)
	requireWellFormed(t, seq)
	last := seq.Last()
	require.True(t, last.Annotations.Bool(step.Result))
	assert.Equal(t, []int{1, 3, 0, 2}, last.Annotations[step.Chosen])

	queens := 0
	for _, row := range last.View.Table {
		for _, c := range row {
			if c.Set {
				queens++
			}
		}
	}
	assert.Equal(t, 4, queens)
	assert.NotEmpty(t, findRole(seq, step.Backtrack))
	assert.NotEmpty(t, findRole(seq, step.Conflict))

	none := NQueens(3)
	requireWellFormed(t, none)
	assert.False(t, none.Last().Annotations.Bool(step.Result))
}

func TestPermutations(t *testing.T) {
	in := []int{1, 2, 3}
	seq := Permutations(in)
	requireWellFormed(t, seq)
	assert.Equal(t, 6, seq.Last().Annotations[step.Result])
	assert.Equal(t, in, seq.Last().View.Array)

	seen := map[string]bool{}
	for _, st := range findRole(seq, step.Perm) {
		p, _ := st.Annotations.Ints(step.Perm)
		assert.ElementsMatch(t, in, p)
		seen[fmt.Sprint(p)] = true
	}
	assert.Len(t, seen, 6)
}

func TestSubsets(t *testing.T) {
	seq := Subsets([]int{1, 2, 3})
	requireWellFormed(t, seq)
	assert.Equal(t, 8, seq.Last().Annotations[step.Result])
	subsets := findRole(seq, step.Subset)
	require.Len(t, subsets, 8)
	assert.Equal(t, []int{1, 2, 3}, subsets[0].Annotations[step.Subset])
	assert.Equal(t, []int{}, subsets[7].Annotations[step.Subset])
}

func TestActivitySelection(t *testing.T) {
	seq := ActivitySelection([]Interval{{1, 4}, {3, 5}, {0, 6}, {5, 7}, {3, 9}, {5, 9}, {6, 10}, {8, 11}, {8, 12}, {2, 14}, {12, 16}})
	requireWellFormed(t, seq)
	assert.Equal(t, 4, seq.Last().Annotations[step.Result])
	assert.Equal(t, step.SetCell(1), seq.First().View.Table[0][0])
}

func TestKadane(t *testing.T) {
	seq := Kadane([]int{-2, 1, -3, 4, -1, 2, 1, -5, 4})
	requireWellFormed(t, seq)
	assert.Equal(t, 6, seq.Last().Annotations[step.MaxSoFar])
	assert.Equal(t, []int{3, 6}, seq.Last().Annotations[step.Best])

	neg := Kadane([]int{-3, -1, -2})
	assert.Equal(t, -1, neg.Last().Annotations[step.MaxSoFar])
}

func TestKMP(t *testing.T) {
	seq := KMP("ababcabcabababd", "ababd")
	requireWellFormed(t, seq)
	assert.Equal(t, []int{10}, seq.Last().Annotations[step.Matches])

	// the failure table is complete before the first scan comparison
	var lpsDone, firstScan = -1, -1
	for i, st := range seq.Steps() {
		if st.Annotations.Bool(step.PhaseDone) && lpsDone < 0 {
			lpsDone = i
		}
		if p, _ := st.Annotations.String(step.Phase); p == "scan" && firstScan < 0 {
			firstScan = i
		}
	}
	require.GreaterOrEqual(t, lpsDone, 0)
	assert.Less(t, lpsDone, firstScan)
	assert.Equal(t, []int{0, 0, 1, 2, 0}, seq.At(lpsDone).Annotations[step.LPS])

	overlap := KMP("aaaa", "aa")
	assert.Equal(t, []int{0, 1, 2}, overlap.Last().Annotations[step.Matches])

	assert.True(t, KMP("abc", "").Invalid())
}

func TestAnagram(t *testing.T) {
	yes := Anagram("Listen", "Silent")
	requireWellFormed(t, yes)
	assert.True(t, yes.Last().Annotations.Bool(step.Result))

	no := Anagram("rat", "car")
	requireWellFormed(t, no)
	assert.False(t, no.Last().Annotations.Bool(step.Result))
}

func TestPrefixSumAndRotate(t *testing.T) {
	ps := PrefixSum([]int{1, 2, 3, 4})
	requireWellFormed(t, ps)
	assert.Equal(t, []int{1, 3, 6, 10}, ps.Last().View.Array)

	rot := Rotate([]int{1, 2, 3, 4, 5, 6, 7}, 3)
	requireWellFormed(t, rot)
	assert.Equal(t, []int{5, 6, 7, 1, 2, 3, 4}, rot.Last().View.Array)

	wrap := Rotate([]int{1, 2, 3}, 4)
	assert.Equal(t, []int{3, 1, 2}, wrap.Last().View.Array)
}

func TestBits(t *testing.T) {
	seq := CountSetBits(13)
	requireWellFormed(t, seq)
	assert.Equal(t, []int{1, 1, 0, 1}, seq.First().View.Array)
	assert.Equal(t, 3, seq.Last().Annotations[step.Result])
	assert.Equal(t, []int{0, 0, 0, 0}, seq.Last().View.Array)
	assert.True(t, CountSetBits(-1).Invalid())

	single := SingleNumber([]int{4, 1, 2, 1, 2})
	requireWellFormed(t, single)
	assert.Equal(t, 4, single.Last().Annotations[step.Result])
}

func TestGeneratorsAreDeterministic(t *testing.T) {
	gens := map[string]func() step.Sequence{
		"bfs":      func() step.Sequence { return BFS(unweighted()) },
		"trie":     func() step.Sequence { return TrieInsert([]string{"to", "tea", "ten"}) },
		"knapsack": func() step.Sequence { return Knapsack([]int{1, 2}, []int{3, 4}, 3) },
		"nqueens":  func() step.Sequence { return NQueens(5) },
		"kmp":      func() step.Sequence { return KMP("abab", "ab") },
		"subsets":  func() step.Sequence { return Subsets([]int{1, 2}) },
	}
	for name, gen := range gens {
		assert.Equal(t, gen().Steps(), gen().Steps(), name)
	}
}

func TestNoAliasingAcrossSteps(t *testing.T) {
	seq := Bubble([]int{3, 2, 1})
	seen := map[*int]bool{}
	for _, st := range seq.Steps() {
		p := &st.View.Array[0]
		assert.False(t, seen[p])
		seen[p] = true
	}
	assert.True(t, slices.IsSorted(seq.Last().View.Array))
	assert.Equal(t, []int{3, 2, 1}, seq.First().View.Array)
}
