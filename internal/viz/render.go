package viz

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/san-kum/dsaviz/internal/step"
)

// RenderStep draws the view of s with its highlights, followed by the
// annotations that do not point at positions.
func RenderStep(s step.Step, st Styles) string {
	marks := s.Annotations.Marks(markRoles...)
	var body string
	switch s.View.Kind {
	case step.KindArray:
		body = renderCells(intLabels(s.View.Array), marks, st)
	case step.KindChars:
		body = renderCells(s.View.Chars, marks, st)
	case step.KindList:
		body = renderList(s.View.List, s.Annotations, marks, st)
	case step.KindTree:
		body = renderTree(s.View.Tree, marks, st)
	case step.KindTrie:
		body = renderTrie(s.View.Trie, marks, st)
	case step.KindTable:
		body = renderTable(s.View.Table, s.Annotations, st)
	case step.KindGraph:
		body = renderGraph(s.View.Graph, s.Annotations, marks, st)
	}
	if d := renderDetails(s.Annotations, st); d != "" {
		body += "\n\n" + d
	}
	return body
}

func intLabels(a []int) []string {
	out := make([]string, len(a))
	for i, v := range a {
		out[i] = strconv.Itoa(v)
	}
	return out
}

func renderCells(labels []string, marks map[int]step.Role, st Styles) string {
	if len(labels) == 0 {
		return st.Hint.Render("(empty)")
	}
	w := 1
	for _, l := range labels {
		w = max(w, len(l))
	}
	var top, idx strings.Builder
	for i, l := range labels {
		text := fmt.Sprintf("%*s", w, l)
		if r, ok := marks[i]; ok {
			top.WriteString(st.Marked(text, r))
		} else {
			top.WriteString(st.Cell.Render(text))
		}
		idx.WriteString(st.Cell.Foreground(st.Theme.Muted).Render(fmt.Sprintf("%*d", w, i)))
	}
	return top.String() + "\n" + idx.String()
}

func renderList(nodes []step.ListNode, a step.Annotations, marks map[int]step.Role, st Styles) string {
	if len(nodes) == 0 {
		return st.Hint.Render("(empty list)")
	}
	byID := make(map[int]step.ListNode, len(nodes))
	pointed := make(map[int]bool)
	for _, n := range nodes {
		byID[n.ID] = n
		pointed[n.Next] = true
	}
	head, ok := a.Int(step.Head)
	if !ok {
		head = nodes[0].ID
		for _, n := range nodes {
			if !pointed[n.ID] {
				head = n.ID
				break
			}
		}
	}

	seen := make(map[int]bool)
	var chains []string
	walk := func(id int) {
		var b strings.Builder
		for id != step.None && !seen[id] {
			n, ok := byID[id]
			if !ok {
				break
			}
			seen[id] = true
			label := strconv.Itoa(n.Value)
			if r, ok := marks[id]; ok {
				b.WriteString(st.Marked(label, r))
			} else {
				b.WriteString(st.Cell.Render(label))
			}
			b.WriteString(st.Hint.Render("→"))
			id = n.Next
		}
		b.WriteString(st.Hint.Render(" ∅"))
		chains = append(chains, b.String())
	}
	walk(head)
	for _, n := range nodes {
		if !seen[n.ID] {
			walk(n.ID)
		}
	}
	return strings.Join(chains, "\n")
}

func renderTree(nodes []step.TreeNode, marks map[int]step.Role, st Styles) string {
	if len(nodes) == 0 {
		return st.Hint.Render("(empty tree)")
	}
	byID := make(map[int]step.TreeNode, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}
	var lines []string
	var walk func(id int, prefix string, branch string)
	walk = func(id int, prefix string, branch string) {
		n, ok := byID[id]
		if !ok {
			return
		}
		label := strconv.Itoa(n.Value)
		if r, ok := marks[id]; ok {
			label = st.Marked(label, r)
		} else {
			label = st.Value.Render(label)
		}
		lines = append(lines, st.Hint.Render(prefix+branch)+label)
		child := prefix
		switch branch {
		case "├── ":
			child += "│   "
		case "└── ":
			child += "    "
		}
		kids := []int{}
		if n.Left != step.None {
			kids = append(kids, n.Left)
		}
		if n.Right != step.None {
			kids = append(kids, n.Right)
		}
		for i, k := range kids {
			b := "├── "
			if i == len(kids)-1 {
				b = "└── "
			}
			walk(k, child, b)
		}
	}
	walk(nodes[0].ID, "", "")
	return strings.Join(lines, "\n")
}

func renderTrie(nodes []step.TrieNode, marks map[int]step.Role, st Styles) string {
	if len(nodes) == 0 {
		return st.Hint.Render("(empty trie)")
	}
	byID := make(map[int]step.TrieNode, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}
	var lines []string
	var walk func(id, depth int)
	walk = func(id, depth int) {
		n := byID[id]
		label := n.Char
		if depth == 0 {
			label = "root"
		}
		if n.Terminal {
			label += "•"
		}
		if r, ok := marks[id]; ok {
			label = st.Marked(label, r)
		} else {
			label = st.Value.Render(label)
		}
		lines = append(lines, strings.Repeat("  ", depth)+label)
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(nodes[0].ID, 0)
	return strings.Join(lines, "\n")
}

func renderTable(t [][]step.Cell, a step.Annotations, st Styles) string {
	if len(t) == 0 {
		return st.Hint.Render("(empty table)")
	}
	at, _ := a.Ints(step.CellAt)
	var deps [][]int
	if d, ok := a[step.Deps].([][]int); ok {
		deps = d
	}
	is := func(cell []int, r, c int) bool { return len(cell) == 2 && cell[0] == r && cell[1] == c }

	w := 1
	for _, row := range t {
		for _, cell := range row {
			if cell.Set {
				w = max(w, len(strconv.Itoa(cell.Value)))
			}
		}
	}
	var lines []string
	for r, row := range t {
		var b strings.Builder
		for c, cell := range row {
			text := fmt.Sprintf("%*s", w, "·")
			if cell.Set {
				text = fmt.Sprintf("%*d", w, cell.Value)
			}
			switch {
			case is(at, r, c):
				b.WriteString(st.Marked(text, step.Writing))
			case slices.ContainsFunc(deps, func(d []int) bool { return is(d, r, c) }):
				b.WriteString(st.Marked(text, step.Comparing))
			case cell.Set:
				b.WriteString(st.Cell.Render(text))
			default:
				b.WriteString(st.Cell.Foreground(st.Theme.Muted).Render(text))
			}
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func renderGraph(g *step.Graph, a step.Annotations, marks map[int]step.Role, st Styles) string {
	if g == nil || len(g.Adj) == 0 {
		return st.Hint.Render("(empty graph)")
	}
	done := func(u int) bool {
		for _, r := range []step.Role{step.Visited, step.Settled} {
			if v, ok := a[r].([]bool); ok && u < len(v) && v[u] {
				return true
			}
		}
		return false
	}
	var lines []string
	for u, row := range g.Adj {
		label := strconv.Itoa(u)
		switch r, ok := marks[u]; {
		case ok:
			label = st.Marked(label, r)
		case done(u):
			label = st.Marked(label, step.Placed)
		default:
			label = st.Cell.Render(label)
		}
		edges := make([]string, len(row))
		for i, e := range row {
			edges[i] = strconv.Itoa(e.To)
			if g.Weighted {
				edges[i] += fmt.Sprintf("(%d)", e.Weight)
			}
		}
		lines = append(lines, label+st.Hint.Render("→ ")+st.Value.Render(strings.Join(edges, ", ")))
	}
	return strings.Join(lines, "\n")
}

// renderDetails lists the annotations that are values rather than
// positions, such as distances, queues and results.
func renderDetails(a step.Annotations, st Styles) string {
	var lines []string
	for _, r := range a.Roles() {
		if r == step.Complete || r == step.CellAt || r == step.Deps || slices.Contains(markRoles, r) {
			continue
		}
		lines = append(lines, st.Label.Render(string(r))+st.Value.Render(formatValue(a[r])))
	}
	return strings.Join(lines, "\n")
}

func formatValue(v any) string {
	switch t := v.(type) {
	case []bool:
		var b strings.Builder
		for _, x := range t {
			if x {
				b.WriteString("■")
			} else {
				b.WriteString("□")
			}
		}
		return b.String()
	case []int:
		parts := make([]string, len(t))
		for i, x := range t {
			parts[i] = strconv.Itoa(x)
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
	return fmt.Sprint(v)
}
