package step

import (
	"fmt"
	"strings"
)

// Kind enumerates the closed set of primary view shapes.
type Kind int

const (
	KindArray Kind = iota
	KindChars
	KindList
	KindTree
	KindTrie
	KindTable
	KindGraph
)

var kindNames = map[Kind]string{
	KindArray: "array",
	KindChars: "chars",
	KindList:  "list",
	KindTree:  "tree",
	KindTrie:  "trie",
	KindTable: "table",
	KindGraph: "graph",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	for kind, name := range kindNames {
		if name == string(b) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("step: unknown view kind %q", string(b))
}

// None marks an absent link in list and tree nodes.
const None = -1

type ListNode struct {
	ID    int `json:"id"`
	Value int `json:"value"`
	Next  int `json:"next"`
}

type TreeNode struct {
	ID    int `json:"id"`
	Value int `json:"value"`
	Left  int `json:"left"`
	Right int `json:"right"`
}

// TrieNode is one node of a trie; node 0 is the root and has an empty Char.
type TrieNode struct {
	ID       int    `json:"id"`
	Char     string `json:"char"`
	Children []int  `json:"children,omitempty"`
	Terminal bool   `json:"terminal,omitempty"`
}

// Cell is one table entry. An unset cell renders as empty (or ∞ for
// minimisation tables).
type Cell struct {
	Value int  `json:"value"`
	Set   bool `json:"set"`
}

func SetCell(v int) Cell { return Cell{Value: v, Set: true} }

type Edge struct {
	To     int `json:"to"`
	Weight int `json:"weight,omitempty"`
}

// Graph is a 0-indexed adjacency list.
type Graph struct {
	Adj      [][]Edge `json:"adj"`
	Weighted bool     `json:"weighted,omitempty"`
}

// Neighbors returns the target vertices of u in adjacency order.
func (g *Graph) Neighbors(u int) []int {
	out := make([]int, len(g.Adj[u]))
	for i, e := range g.Adj[u] {
		out[i] = e.To
	}
	return out
}

func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}
	c := &Graph{Adj: make([][]Edge, len(g.Adj)), Weighted: g.Weighted}
	for i, row := range g.Adj {
		if row != nil {
			c.Adj[i] = append([]Edge{}, row...)
		}
	}
	return c
}

// UnweightedGraph builds a Graph from plain neighbor lists.
func UnweightedGraph(adj [][]int) *Graph {
	g := &Graph{Adj: make([][]Edge, len(adj))}
	for i, row := range adj {
		g.Adj[i] = make([]Edge, len(row))
		for j, v := range row {
			g.Adj[i][j] = Edge{To: v}
		}
	}
	return g
}

// View is the primary data shape of a step. Exactly one payload field is
// populated, selected by Kind.
type View struct {
	Kind  Kind       `json:"kind"`
	Array []int      `json:"array,omitempty"`
	Chars []string   `json:"chars,omitempty"`
	List  []ListNode `json:"list,omitempty"`
	Tree  []TreeNode `json:"tree,omitempty"`
	Trie  []TrieNode `json:"trie,omitempty"`
	Table [][]Cell   `json:"table,omitempty"`
	Graph *Graph     `json:"graph,omitempty"`
}

func ArrayView(a []int) View         { return View{Kind: KindArray, Array: a} }
func CharsView(c []string) View      { return View{Kind: KindChars, Chars: c} }
func ListView(n []ListNode) View     { return View{Kind: KindList, List: n} }
func TreeView(n []TreeNode) View     { return View{Kind: KindTree, Tree: n} }
func TrieView(n []TrieNode) View     { return View{Kind: KindTrie, Trie: n} }
func TableView(t [][]Cell) View      { return View{Kind: KindTable, Table: t} }
func GraphView(g *Graph) View        { return View{Kind: KindGraph, Graph: g} }
func StringView(s string) View       { return CharsView(SplitChars(s)) }
func RowView(row []Cell) View        { return TableView([][]Cell{row}) }
func EmptyTable(rows, cols int) View { return TableView(NewTable(rows, cols)) }

// SplitChars splits s into one string per rune.
func SplitChars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func NewTable(rows, cols int) [][]Cell {
	t := make([][]Cell, rows)
	for i := range t {
		t[i] = make([]Cell, cols)
	}
	return t
}

// Clone deep-copies the populated payload.
func (v View) Clone() View {
	c := View{Kind: v.Kind}
	if v.Array != nil {
		c.Array = append([]int{}, v.Array...)
	}
	if v.Chars != nil {
		c.Chars = append([]string{}, v.Chars...)
	}
	if v.List != nil {
		c.List = append([]ListNode{}, v.List...)
	}
	if v.Tree != nil {
		c.Tree = append([]TreeNode{}, v.Tree...)
	}
	if v.Trie != nil {
		c.Trie = make([]TrieNode, len(v.Trie))
		for i, n := range v.Trie {
			n.Children = append([]int(nil), n.Children...)
			c.Trie[i] = n
		}
	}
	if v.Table != nil {
		c.Table = make([][]Cell, len(v.Table))
		for i, row := range v.Table {
			c.Table[i] = append([]Cell{}, row...)
		}
	}
	c.Graph = v.Graph.Clone()
	return c
}

// Joined concatenates a chars view, e.g. for checking the final string of a
// two-pointer run.
func (v View) Joined() string { return strings.Join(v.Chars, "") }
