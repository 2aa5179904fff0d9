package config

import (
	"sort"

	"github.com/san-kum/dsaviz/internal/input"
)

// Examples holds the sample inputs behind "Load Example", keyed by
// algorithm name.
var Examples = map[string]input.Raw{
	"Bubble":    {Input: "5,3,8,1,2"},
	"Selection": {Input: "64,25,12,22,11"},
	"Insertion": {Input: "12,11,13,5,6"},
	"Merge":     {Input: "38,27,43,3,9,82,10"},
	"Quick":     {Input: "10,80,30,90,40,50,70"},
	"Heap":      {Input: "4,10,3,5,1"},
	"Counting":  {Input: "4,2,2,8,3,3,1"},

	"Linear": {Input: "7,3,9,1,5", Target: "9"},
	"Binary": {Input: "1,3,5,7,9,11", Target: "7"},

	"Reverse Vowels":     {Text: "hello world"},
	"Max Window Sum (k)": {Input: "1,4,2,10,2,3,1,0,20", K: "3"},
	"Two Sum":            {Input: "1,2,4,7,11,15", Target: "15"},
	"Palindrome":         {Text: "A man, a plan, a canal: Panama"},

	"Stack":              {Ops: "push:1,push:2,pop,push:3"},
	"Queue":              {Ops: "enqueue:1,enqueue:2,dequeue,enqueue:3"},
	"LinkedList Reverse": {Input: "1,2,3,4,5"},
	"Heapify":            {Input: "3,9,2,1,4,5"},

	"BFS":              {Adj: "[[1,2],[3],[3,4],[],[]]"},
	"DFS":              {Adj: "[[1,2],[3],[3,4],[],[]]"},
	"Dijkstra":         {Adj: "[[[1,4],[2,1]],[[3,1]],[[1,2],[3,5]],[]]"},
	"Topological Sort": {Adj: "[[1,2],[3],[3],[]]"},
	"Prim MST":         {Adj: "[[[1,2],[3,6]],[[2,3],[3,8],[4,5]],[[4,7]],[[4,9]],[]]"},

	"Binary Tree Traversals": {Input: "1,2,3,4,5,6,7"},
	"BST Insert":             {Input: "50,30,70,20,40,60,80"},
	"Trie Insert":            {Text: "car cat cart dog"},

	"Fibonacci DP": {N: "8"},
	"0/1 Knapsack": {Weights: "1,3,4,5", Values: "1,4,5,7", Capacity: "7"},
	"LCS":          {Text: "ABCBDAB", Text2: "BDCABA"},
	"LIS":          {Input: "10,9,2,5,3,7,101,18"},
	"Coin Change":  {Coins: "1,2,5", Amount: "11"},

	"N-Queens":     {N: "4"},
	"Permutations": {Input: "1,2,3"},
	"Subsets":      {Input: "1,2,3"},

	"Activity Selection":    {Intervals: "1-4,3-5,0-6,5-7,3-9,5-9,6-10,8-11,8-12,2-14,12-16"},
	"Kadane (Max Subarray)": {Input: "-2,1,-3,4,-1,2,1,-5,4"},

	"KMP":     {Text: "ABABDABACDABABCABAB", Text2: "ABABCABAB"},
	"Anagram": {Text: "listen", Text2: "silent"},

	"Prefix Sum":   {Input: "3,1,4,1,5,9,2"},
	"Rotate Array": {Input: "1,2,3,4,5,6,7", K: "3"},

	"Count Set Bits": {N: "13"},
	"Single Number":  {Input: "4,1,2,1,2"},
}

// GetExample returns the sample input for algorithm, or false when none is
// registered.
func GetExample(algorithm string) (input.Raw, bool) {
	raw, ok := Examples[algorithm]
	return raw, ok
}

func ListExamples() []string {
	names := make([]string, 0, len(Examples))
	for name := range Examples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
