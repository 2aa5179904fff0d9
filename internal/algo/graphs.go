package algo

import (
	"fmt"

	"github.com/san-kum/dsaviz/internal/step"
)

// Unreached marks a vertex with no known distance or key.
const Unreached = -1

// BFS starts at vertex 0 and marks vertices visited when they are enqueued.
func BFS(g *step.Graph) step.Sequence {
	g = g.Clone()
	n := len(g.Adj)
	r := step.NewRecorder()
	r.Emit(step.GraphView(g), nil, "Initial graph")
	if n == 0 {
		return r.Finish(step.GraphView(g), ann{step.Order: []int{}}, "Empty graph")
	}

	visited := make([]bool, n)
	order := []int{}
	queue := []int{0}
	visited[0] = true
	r.Emit(step.GraphView(g), ann{step.Discovered: 0, step.Queue: queue, step.Visited: visited}, "Start at vertex 0")

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		r.Emit(step.GraphView(g), ann{step.Visiting: u, step.Queue: queue, step.Order: order, step.Visited: visited},
			fmt.Sprintf("Visit %d", u))
		for _, v := range g.Neighbors(u) {
			if visited[v] {
				continue
			}
			visited[v] = true
			queue = append(queue, v)
			r.Emit(step.GraphView(g),
				ann{step.Discovered: v, step.From: u, step.Queue: queue, step.Order: order, step.Visited: visited},
				fmt.Sprintf("Discover %d from %d", v, u))
		}
	}
	return r.Finish(step.GraphView(g), ann{step.Order: order, step.Visited: visited}, fmt.Sprintf("BFS order %v", order))
}

// DFS is a recursive pre-order walk from vertex 0.
func DFS(g *step.Graph) step.Sequence {
	g = g.Clone()
	n := len(g.Adj)
	r := step.NewRecorder()
	r.Emit(step.GraphView(g), nil, "Initial graph")
	if n == 0 {
		return r.Finish(step.GraphView(g), ann{step.Order: []int{}}, "Empty graph")
	}

	visited := make([]bool, n)
	order := []int{}
	var visit func(u, parent int)
	visit = func(u, parent int) {
		visited[u] = true
		order = append(order, u)
		narr := fmt.Sprintf("Visit %d", u)
		if parent != step.None {
			narr = fmt.Sprintf("Visit %d from %d", u, parent)
		}
		r.Emit(step.GraphView(g), ann{step.Visiting: u, step.Parent: parent, step.Order: order, step.Visited: visited}, narr)
		for _, v := range g.Neighbors(u) {
			if !visited[v] {
				visit(v, u)
			}
		}
	}
	visit(0, step.None)
	return r.Finish(step.GraphView(g), ann{step.Order: order, step.Visited: visited}, fmt.Sprintf("DFS order %v", order))
}

// Dijkstra uses the O(V²) selection loop from vertex 0. Distances of
// unreached vertices are reported as Unreached.
func Dijkstra(g *step.Graph) step.Sequence {
	g = g.Clone()
	n := len(g.Adj)
	r := step.NewRecorder()
	r.Emit(step.GraphView(g), nil, "Initial graph")
	if n == 0 {
		return r.Finish(step.GraphView(g), ann{step.Dist: []int{}}, "Empty graph")
	}

	dist := make([]int, n)
	for i := range dist {
		dist[i] = Unreached
	}
	done := make([]bool, n)
	dist[0] = 0
	r.Emit(step.GraphView(g), ann{step.Dist: dist, step.Settled: done}, "Distance to 0 is 0")

	for range n {
		u := Unreached
		for v := range n {
			if !done[v] && dist[v] != Unreached && (u == Unreached || dist[v] < dist[u]) {
				u = v
			}
		}
		if u == Unreached {
			break
		}
		done[u] = true
		r.Emit(step.GraphView(g), ann{step.Visiting: u, step.Dist: dist, step.Settled: done},
			fmt.Sprintf("Select %d with distance %d", u, dist[u]))
		for _, e := range g.Adj[u] {
			if done[e.To] {
				continue
			}
			nd := dist[u] + e.Weight
			r.Emit(step.GraphView(g), ann{step.ActiveEdge: []int{u, e.To}, step.Dist: dist, step.Settled: done},
				fmt.Sprintf("Relax %d→%d: %d", u, e.To, nd))
			if dist[e.To] == Unreached || nd < dist[e.To] {
				dist[e.To] = nd
				r.Emit(step.GraphView(g), ann{step.Updated: e.To, step.From: u, step.Dist: dist, step.Settled: done},
					fmt.Sprintf("Distance to %d is now %d", e.To, nd))
			}
		}
	}
	return r.Finish(step.GraphView(g), ann{step.Dist: dist, step.Settled: done}, fmt.Sprintf("Shortest distances %v", dist))
}

// TopoSort runs Kahn's algorithm. A cycle leaves some vertices unordered and
// is reported with the cycle role on the final step.
func TopoSort(g *step.Graph) step.Sequence {
	g = g.Clone()
	n := len(g.Adj)
	r := step.NewRecorder()
	r.Emit(step.GraphView(g), nil, "Initial graph")

	indeg := make([]int, n)
	for u := range n {
		for _, v := range g.Neighbors(u) {
			indeg[v]++
		}
	}
	queue := []int{}
	for v := range n {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}
	r.Emit(step.GraphView(g), ann{step.Indegree: indeg, step.Queue: queue}, "Compute in-degrees")

	order := []int{}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		r.Emit(step.GraphView(g), ann{step.Visiting: u, step.Order: order, step.Indegree: indeg, step.Queue: queue},
			fmt.Sprintf("Output %d", u))
		for _, v := range g.Neighbors(u) {
			indeg[v]--
			r.Emit(step.GraphView(g), ann{step.ActiveEdge: []int{u, v}, step.Order: order, step.Indegree: indeg, step.Queue: queue},
				fmt.Sprintf("Remove edge %d→%d, in-degree of %d is %d", u, v, v, indeg[v]))
			if indeg[v] == 0 {
				queue = append(queue, v)
				r.Emit(step.GraphView(g), ann{step.Discovered: v, step.Order: order, step.Indegree: indeg, step.Queue: queue},
					fmt.Sprintf("%d has no remaining prerequisites", v))
			}
		}
	}
	if len(order) < n {
		return r.Finish(step.GraphView(g), ann{step.Order: order, step.Cycle: true},
			"Graph has a cycle, no topological order exists")
	}
	return r.Finish(step.GraphView(g), ann{step.Order: order}, fmt.Sprintf("Topological order %v", order))
}

// Prim grows a minimum spanning tree from vertex 0, treating every edge as
// undirected. Only the component of vertex 0 is spanned.
func Prim(g *step.Graph) step.Sequence {
	g = g.Clone()
	n := len(g.Adj)
	r := step.NewRecorder()
	r.Emit(step.GraphView(g), nil, "Initial graph")
	if n == 0 {
		return r.Finish(step.GraphView(g), ann{step.MSTEdges: [][]int{}, step.Total: 0}, "Empty graph")
	}

	w := make([][]int, n)
	for i := range w {
		w[i] = make([]int, n)
		for j := range w[i] {
			w[i][j] = Unreached
		}
	}
	for u, row := range g.Adj {
		for _, e := range row {
			if w[u][e.To] == Unreached || e.Weight < w[u][e.To] {
				w[u][e.To], w[e.To][u] = e.Weight, e.Weight
			}
		}
	}

	key := make([]int, n)
	parent := make([]int, n)
	for i := range key {
		key[i], parent[i] = Unreached, step.None
	}
	in := make([]bool, n)
	key[0] = 0
	edges := [][]int{}
	total := 0
	r.Emit(step.GraphView(g), ann{step.Key: key, step.Settled: in}, "Start the tree at vertex 0")

	for range n {
		u := Unreached
		for v := range n {
			if !in[v] && key[v] != Unreached && (u == Unreached || key[v] < key[u]) {
				u = v
			}
		}
		if u == Unreached {
			break
		}
		in[u] = true
		if p := parent[u]; p != step.None {
			total += key[u]
			edges = append(edges, []int{p, u})
			r.Emit(step.GraphView(g), ann{step.ActiveEdge: []int{p, u}, step.MSTEdges: edges, step.Total: total, step.Key: key, step.Settled: in},
				fmt.Sprintf("Add edge %d-%d (weight %d)", p, u, key[u]))
		} else {
			r.Emit(step.GraphView(g), ann{step.Visiting: u, step.Key: key, step.Settled: in}, fmt.Sprintf("Add vertex %d", u))
		}
		for v := range n {
			if in[v] || w[u][v] == Unreached {
				continue
			}
			if key[v] == Unreached || w[u][v] < key[v] {
				key[v], parent[v] = w[u][v], u
				r.Emit(step.GraphView(g), ann{step.Updated: v, step.From: u, step.Key: key, step.MSTEdges: edges, step.Settled: in},
					fmt.Sprintf("Cheapest link to %d is now %d", v, key[v]))
			}
		}
	}
	narr := fmt.Sprintf("MST weight %d", total)
	if len(edges) < n-1 {
		narr = fmt.Sprintf("Graph is disconnected, spanning tree of vertex 0 has weight %d", total)
	}
	return r.Finish(step.GraphView(g), ann{step.MSTEdges: edges, step.Total: total}, narr)
}
