// Package algo implements the step generators: one pure function per
// algorithm that runs the textbook procedure on a private copy of its input
// and records a [step.Sequence] at every decision point.
//
// Generators never log, never share state between calls and never panic on
// degenerate input. Input shape problems that can only be detected inside an
// algorithm (window larger than the array, fewer than two elements for Two
// Sum, an empty KMP pattern) come back as a one-step [step.Fail] sequence.
//
// Categories:
//
//   - sorting: [Bubble], [Selection], [Insertion], [Merge], [Quick], [Heap], [Counting]
//   - searching: [Linear], [Binary]
//   - two pointers / sliding window: [ReverseVowels], [MaxWindowSum], [TwoSum], [Palindrome]
//   - data structures: [Stack], [Queue], [ReverseList], [Heapify]
//   - graphs: [BFS], [DFS], [Dijkstra], [TopoSort], [Prim]
//   - trees: [Traversals], [BSTInsert], [TrieInsert]
//   - dynamic programming: [Fibonacci], [Knapsack], [LCS], [LIS], [CoinChange]
//   - backtracking: [NQueens], [Permutations], [Subsets]
//   - greedy: [ActivitySelection], [Kadane]
//   - strings: [KMP], [Anagram]
//   - arrays: [PrefixSum], [Rotate]
//   - bits: [CountSetBits], [SingleNumber]
package algo
