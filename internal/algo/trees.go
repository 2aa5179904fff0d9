package algo

import (
	"fmt"

	"github.com/san-kum/dsaviz/internal/step"
)

// CompleteTree lays values out as a complete binary tree in level order.
func CompleteTree(values []int) []step.TreeNode {
	nodes := make([]step.TreeNode, len(values))
	for i, v := range values {
		l, r := 2*i+1, 2*i+2
		if l >= len(values) {
			l = step.None
		}
		if r >= len(values) {
			r = step.None
		}
		nodes[i] = step.TreeNode{ID: i, Value: v, Left: l, Right: r}
	}
	return nodes
}

// Traversals runs pre-order, in-order, post-order and level-order walks over
// the complete tree built from values.
func Traversals(values []int) step.Sequence {
	nodes := CompleteTree(values)
	r := step.NewRecorder()
	r.Emit(step.TreeView(nodes), nil, "Initial tree")
	if len(nodes) == 0 {
		return r.Finish(step.TreeView(nodes), nil, "Empty tree")
	}

	results := map[step.Role][]int{}
	walk := func(phase step.Role, visit func(emit func(id int))) {
		order := []int{}
		emit := func(id int) {
			order = append(order, nodes[id].Value)
			r.Emit(step.TreeView(nodes), ann{step.Phase: string(phase), step.Visiting: id, step.Order: order},
				fmt.Sprintf("%s: visit %d", phase, nodes[id].Value))
		}
		visit(emit)
		results[phase] = order
		r.Emit(step.TreeView(nodes), ann{step.Phase: string(phase), step.Order: order, step.PhaseDone: true},
			fmt.Sprintf("%s: %v", phase, order))
	}

	var pre, in, post func(id int, emit func(int))
	pre = func(id int, emit func(int)) {
		if id == step.None {
			return
		}
		emit(id)
		pre(nodes[id].Left, emit)
		pre(nodes[id].Right, emit)
	}
	in = func(id int, emit func(int)) {
		if id == step.None {
			return
		}
		in(nodes[id].Left, emit)
		emit(id)
		in(nodes[id].Right, emit)
	}
	post = func(id int, emit func(int)) {
		if id == step.None {
			return
		}
		post(nodes[id].Left, emit)
		post(nodes[id].Right, emit)
		emit(id)
	}

	walk(step.Preorder, func(emit func(int)) { pre(0, emit) })
	walk(step.Inorder, func(emit func(int)) { in(0, emit) })
	walk(step.Postorder, func(emit func(int)) { post(0, emit) })
	walk(step.LevelOrder, func(emit func(int)) {
		for q := []int{0}; len(q) > 0; q = q[1:] {
			id := q[0]
			emit(id)
			if l := nodes[id].Left; l != step.None {
				q = append(q, l)
			}
			if rt := nodes[id].Right; rt != step.None {
				q = append(q, rt)
			}
		}
	})

	final := ann{}
	for role, order := range results {
		final[role] = order
	}
	return r.Finish(step.TreeView(nodes), final, "All traversals done")
}

// BSTInsert inserts values in order into an empty binary search tree.
// Duplicates are ignored.
func BSTInsert(values []int) step.Sequence {
	nodes := []step.TreeNode{}
	r := step.NewRecorder()
	r.Emit(step.TreeView(nodes), nil, fmt.Sprintf("Insert %v into an empty BST", values))

	add := func(v int) int {
		id := len(nodes)
		nodes = append(nodes, step.TreeNode{ID: id, Value: v, Left: step.None, Right: step.None})
		return id
	}
	for _, v := range values {
		if len(nodes) == 0 {
			id := add(v)
			r.Emit(step.TreeView(nodes), ann{step.Inserted: id}, fmt.Sprintf("%d becomes the root", v))
			continue
		}
		cur := 0
		for {
			r.Emit(step.TreeView(nodes), ann{step.Visiting: cur, step.Value: v},
				fmt.Sprintf("Compare %d with %d", v, nodes[cur].Value))
			if v == nodes[cur].Value {
				r.Emit(step.TreeView(nodes), ann{step.Duplicate: cur}, fmt.Sprintf("%d already present, skip", v))
				break
			}
			next := &nodes[cur].Right
			side := "right"
			if v < nodes[cur].Value {
				next, side = &nodes[cur].Left, "left"
			}
			if *next != step.None {
				cur = *next
				continue
			}
			parent := cur
			id := add(v)
			// add may have reallocated nodes
			if side == "left" {
				nodes[parent].Left = id
			} else {
				nodes[parent].Right = id
			}
			r.Emit(step.TreeView(nodes), ann{step.Inserted: id, step.Parent: parent},
				fmt.Sprintf("Insert %d as %s child of %d", v, side, nodes[parent].Value))
			break
		}
	}
	return r.Finish(step.TreeView(nodes), nil, "All values inserted")
}

// InorderValues returns the in-order value sequence of a tree rooted at 0.
func InorderValues(nodes []step.TreeNode) []int {
	out := []int{}
	var walk func(id int)
	walk = func(id int) {
		if id == step.None || id >= len(nodes) {
			return
		}
		walk(nodes[id].Left)
		out = append(out, nodes[id].Value)
		walk(nodes[id].Right)
	}
	if len(nodes) > 0 {
		walk(0)
	}
	return out
}

// TrieInsert inserts words into a trie rooted at node 0. Empty words are
// skipped.
func TrieInsert(words []string) step.Sequence {
	nodes := []step.TrieNode{{ID: 0}}
	r := step.NewRecorder()
	r.Emit(step.TrieView(nodes), nil, "Empty trie")

	child := func(id int, ch string) int {
		for _, c := range nodes[id].Children {
			if nodes[c].Char == ch {
				return c
			}
		}
		return step.None
	}
	for _, w := range words {
		if w == "" {
			continue
		}
		r.Emit(step.TrieView(nodes), ann{step.Word: w, step.Visiting: 0}, fmt.Sprintf("Insert %q", w))
		cur := 0
		for _, ch := range step.SplitChars(w) {
			if next := child(cur, ch); next != step.None {
				cur = next
				r.Emit(step.TrieView(nodes), ann{step.Word: w, step.Visiting: cur}, fmt.Sprintf("Follow %q", ch))
				continue
			}
			id := len(nodes)
			nodes = append(nodes, step.TrieNode{ID: id, Char: ch})
			nodes[cur].Children = append(nodes[cur].Children, id)
			cur = id
			r.Emit(step.TrieView(nodes), ann{step.Word: w, step.Created: id}, fmt.Sprintf("Create node %q", ch))
		}
		nodes[cur].Terminal = true
		r.Emit(step.TrieView(nodes), ann{step.Word: w, step.Terminal: cur}, fmt.Sprintf("Mark end of %q", w))
	}
	return r.Finish(step.TrieView(nodes), nil, "All words inserted")
}

// TrieWords lists the words stored in a trie in depth-first child order.
func TrieWords(nodes []step.TrieNode) []string {
	out := []string{}
	var walk func(id int, prefix string)
	walk = func(id int, prefix string) {
		if nodes[id].Terminal {
			out = append(out, prefix)
		}
		for _, c := range nodes[id].Children {
			walk(c, prefix+nodes[c].Char)
		}
	}
	if len(nodes) > 0 {
		walk(0, "")
	}
	return out
}
