package registry

import (
	"fmt"

	"github.com/san-kum/dsaviz/internal/algo"
	"github.com/san-kum/dsaviz/internal/step"
)

const (
	CatSorting     = "Sorting"
	CatSearching   = "Searching"
	CatTwoPointers = "Two Pointers / Sliding Window"
	CatStructures  = "Data Structures"
	CatGraphs      = "Graphs"
	CatTrees       = "Trees"
	CatDP          = "Dynamic Programming"
	CatBacktrack   = "Backtracking"
	CatGreedy      = "Greedy"
	CatStrings     = "Strings"
	CatArrays      = "Arrays"
	CatBits        = "Bit Manipulation"
)

// Input limits. Generation is eager and uncancellable, so inputs that would
// produce enormous sequences are rejected up front.
const (
	MaxArrayLen       = 64
	MaxPermutationLen = 7
	MaxSubsetLen      = 10
	MaxQueens         = 10
	MaxVertices       = 50
	MaxCapacity       = 100
	MaxAmount         = 500
	MaxTextLen        = 40
)

func fail(field, format string, args ...any) step.Sequence {
	return step.Fail(step.ArrayView([]int{}), field, fmt.Sprintf(format, args...))
}

func checkArray(v []int, limit int) (step.Sequence, bool) {
	switch {
	case len(v) == 0:
		return fail("array", "Array is empty"), false
	case len(v) > limit:
		return fail("array", "Array has %d elements, at most %d are supported", len(v), limit), false
	}
	return step.Sequence{}, true
}

func checkGraph(g *step.Graph, weighted bool) (step.Sequence, bool) {
	if g == nil || len(g.Adj) == 0 {
		return fail("adj", "Graph has no vertices"), false
	}
	if len(g.Adj) > MaxVertices {
		return fail("adj", "Graph has %d vertices, at most %d are supported", len(g.Adj), MaxVertices), false
	}
	for u, row := range g.Adj {
		for _, e := range row {
			if e.To < 0 || e.To >= len(g.Adj) {
				return fail("adj", "Vertex %d lists neighbor %d, which is out of range", u, e.To), false
			}
			if weighted && e.Weight < 0 {
				return fail("adj", "Edge %d→%d has negative weight %d", u, e.To, e.Weight), false
			}
		}
	}
	return step.Sequence{}, true
}

func numbers(cat, name string, limit int, gen func([]int) step.Sequence) Entry {
	return Entry{Key: Key{cat, name}, Family: FamilyNumbers, View: step.KindArray, run: func(p Params) step.Sequence {
		v := p.(Numbers).Values
		if seq, ok := checkArray(v, limit); !ok {
			return seq
		}
		return gen(v)
	}}
}

func numbersView(cat, name string, kind step.Kind, gen func([]int) step.Sequence) Entry {
	e := numbers(cat, name, MaxArrayLen, gen)
	e.View = kind
	return e
}

func numbersTarget(cat, name string, gen func([]int, int) step.Sequence) Entry {
	return Entry{Key: Key{cat, name}, Family: FamilyNumbersTarget, View: step.KindArray, run: func(p Params) step.Sequence {
		nt := p.(NumbersTarget)
		if seq, ok := checkArray(nt.Values, MaxArrayLen); !ok {
			return seq
		}
		return gen(nt.Values, nt.Target)
	}}
}

func numbersWindow(cat, name string, gen func([]int, int) step.Sequence) Entry {
	return Entry{Key: Key{cat, name}, Family: FamilyNumbersWindow, View: step.KindArray, run: func(p Params) step.Sequence {
		nw := p.(NumbersWindow)
		if seq, ok := checkArray(nw.Values, MaxArrayLen); !ok {
			return seq
		}
		return gen(nw.Values, nw.K)
	}}
}

func number(cat, name string, kind step.Kind, lo, hi int, gen func(int) step.Sequence) Entry {
	return Entry{Key: Key{cat, name}, Family: FamilyNumber, View: kind, run: func(p Params) step.Sequence {
		n := p.(Number).N
		if n < lo || n > hi {
			return fail("n", "n must be between %d and %d", lo, hi)
		}
		return gen(n)
	}}
}

func text(cat, name string, gen func(string) step.Sequence) Entry {
	return Entry{Key: Key{cat, name}, Family: FamilyText, View: step.KindChars, run: func(p Params) step.Sequence {
		s := p.(Text).S
		if s == "" {
			return fail("text", "Provide a string for %s", name)
		}
		if n := len([]rune(s)); n > MaxTextLen {
			return fail("text", "Text has %d characters, at most %d are supported", n, MaxTextLen)
		}
		return gen(s)
	}}
}

func textPair(cat, name string, kind step.Kind, gen func(string, string) step.Sequence) Entry {
	return Entry{Key: Key{cat, name}, Family: FamilyTextPair, View: kind, run: func(p Params) step.Sequence {
		tp := p.(TextPair)
		for _, s := range []string{tp.A, tp.B} {
			if n := len([]rune(s)); n > MaxTextLen {
				return fail("text", "Text has %d characters, at most %d are supported", n, MaxTextLen)
			}
		}
		return gen(tp.A, tp.B)
	}}
}

func graph(cat, name string, gen func(*step.Graph) step.Sequence) Entry {
	return Entry{Key: Key{cat, name}, Family: FamilyGraph, View: step.KindGraph, run: func(p Params) step.Sequence {
		g := p.(Graph).Graph
		if seq, ok := checkGraph(g, false); !ok {
			return seq
		}
		return gen(g)
	}}
}

func weightedGraph(cat, name string, gen func(*step.Graph) step.Sequence) Entry {
	return Entry{Key: Key{cat, name}, Family: FamilyWeightedGraph, View: step.KindGraph, run: func(p Params) step.Sequence {
		g := p.(WeightedGraph).Graph
		if seq, ok := checkGraph(g, true); !ok {
			return seq
		}
		return gen(g)
	}}
}

func ops(cat, name string, gen func([]algo.Op) step.Sequence) Entry {
	return Entry{Key: Key{cat, name}, Family: FamilyOps, View: step.KindArray, run: func(p Params) step.Sequence {
		o := p.(Ops).Ops
		if len(o) == 0 {
			o = algo.DefaultOps
		}
		return gen(o)
	}}
}

// Default returns the built-in algorithm table.
func Default() *Registry {
	return New(
		numbers(CatSorting, "Bubble", MaxArrayLen, algo.Bubble),
		numbers(CatSorting, "Selection", MaxArrayLen, algo.Selection),
		numbers(CatSorting, "Insertion", MaxArrayLen, algo.Insertion),
		numbers(CatSorting, "Merge", MaxArrayLen, algo.Merge),
		numbers(CatSorting, "Quick", MaxArrayLen, algo.Quick),
		numbers(CatSorting, "Heap", MaxArrayLen, algo.Heap),
		numbers(CatSorting, "Counting", MaxArrayLen, algo.Counting),

		numbersTarget(CatSearching, "Linear", algo.Linear),
		numbersTarget(CatSearching, "Binary", algo.Binary),

		text(CatTwoPointers, "Reverse Vowels", algo.ReverseVowels),
		numbersWindow(CatTwoPointers, "Max Window Sum (k)", algo.MaxWindowSum),
		numbersTarget(CatTwoPointers, "Two Sum", algo.TwoSum),
		text(CatTwoPointers, "Palindrome", algo.Palindrome),

		ops(CatStructures, "Stack", algo.Stack),
		ops(CatStructures, "Queue", algo.Queue),
		numbersView(CatStructures, "LinkedList Reverse", step.KindList, algo.ReverseList),
		numbers(CatStructures, "Heapify", MaxArrayLen, algo.Heapify),

		graph(CatGraphs, "BFS", algo.BFS),
		graph(CatGraphs, "DFS", algo.DFS),
		weightedGraph(CatGraphs, "Dijkstra", algo.Dijkstra),
		graph(CatGraphs, "Topological Sort", algo.TopoSort),
		weightedGraph(CatGraphs, "Prim MST", algo.Prim),

		numbersView(CatTrees, "Binary Tree Traversals", step.KindTree, algo.Traversals),
		numbersView(CatTrees, "BST Insert", step.KindTree, algo.BSTInsert),
		Entry{Key: Key{CatTrees, "Trie Insert"}, Family: FamilyWords, View: step.KindTrie, run: func(p Params) step.Sequence {
			w := p.(Words).Words
			if len(w) == 0 {
				return fail("words", "No words given")
			}
			return algo.TrieInsert(w)
		}},

		number(CatDP, "Fibonacci DP", step.KindTable, 0, algo.MaxFibonacci, algo.Fibonacci),
		Entry{Key: Key{CatDP, "0/1 Knapsack"}, Family: FamilyKnapsack, View: step.KindTable, run: func(p Params) step.Sequence {
			k := p.(Knapsack)
			switch {
			case len(k.Weights) == 0:
				return fail("weights", "No items given")
			case len(k.Weights) != len(k.Values):
				return fail("weights", "%d weights but %d values", len(k.Weights), len(k.Values))
			case k.Capacity < 0 || k.Capacity > MaxCapacity:
				return fail("capacity", "Capacity must be between 0 and %d", MaxCapacity)
			}
			return algo.Knapsack(k.Weights, k.Values, k.Capacity)
		}},
		textPair(CatDP, "LCS", step.KindTable, algo.LCS),
		numbersView(CatDP, "LIS", step.KindTable, algo.LIS),
		Entry{Key: Key{CatDP, "Coin Change"}, Family: FamilyCoinChange, View: step.KindTable, run: func(p Params) step.Sequence {
			c := p.(CoinChange)
			switch {
			case len(c.Coins) == 0:
				return fail("coins", "No coins given")
			case c.Amount < 0 || c.Amount > MaxAmount:
				return fail("amount", "Amount must be between 0 and %d", MaxAmount)
			}
			return algo.CoinChange(c.Coins, c.Amount)
		}},

		number(CatBacktrack, "N-Queens", step.KindTable, 1, MaxQueens, algo.NQueens),
		numbers(CatBacktrack, "Permutations", MaxPermutationLen, algo.Permutations),
		numbers(CatBacktrack, "Subsets", MaxSubsetLen, algo.Subsets),

		Entry{Key: Key{CatGreedy, "Activity Selection"}, Family: FamilyIntervals, View: step.KindTable, run: func(p Params) step.Sequence {
			iv := p.(Intervals).Intervals
			if len(iv) == 0 {
				return fail("intervals", "No activities given")
			}
			return algo.ActivitySelection(iv)
		}},
		numbers(CatGreedy, "Kadane (Max Subarray)", MaxArrayLen, algo.Kadane),

		textPair(CatStrings, "KMP", step.KindChars, algo.KMP),
		textPair(CatStrings, "Anagram", step.KindArray, algo.Anagram),

		numbers(CatArrays, "Prefix Sum", MaxArrayLen, algo.PrefixSum),
		numbersWindow(CatArrays, "Rotate Array", algo.Rotate),

		number(CatBits, "Count Set Bits", step.KindArray, 0, 1<<31-1, algo.CountSetBits),
		numbers(CatBits, "Single Number", MaxArrayLen, algo.SingleNumber),
	)
}
