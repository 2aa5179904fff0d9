// Package input turns the text typed into the CLI or the TUI into the
// primitive values the generators consume.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/dsaviz/internal/algo"
	"github.com/san-kum/dsaviz/internal/step"
)

var (
	ErrBadNumber   = errors.New("input: not an integer")
	ErrBadOp       = errors.New("input: unknown operation")
	ErrBadGraph    = errors.New("input: malformed adjacency list")
	ErrBadInterval = errors.New("input: malformed interval")
)

func fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func bracketed(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")
}

func ParseNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, s)
	}
	return n, nil
}

// ParseNumbers accepts "5, 3 8" as well as "[5,3,8]". Blank input yields an
// empty slice.
func ParseNumbers(s string) ([]int, error) {
	if bracketed(s) {
		var out []int
		if err := yaml.Unmarshal([]byte(s), &out); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadNumber, err)
		}
		if out == nil {
			out = []int{}
		}
		return out, nil
	}
	out := []int{}
	for _, f := range fields(s) {
		n, err := ParseNumber(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// ParseOps reads tokens such as "push:1, push 2, pop". enqueue/enq and
// dequeue/deq are accepted as synonyms.
func ParseOps(s string) ([]algo.Op, error) {
	toks := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' || r == '\n' })
	ops := make([]algo.Op, 0, len(toks))
	for _, tok := range toks {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		name, arg, hasArg := strings.Cut(strings.ReplaceAll(tok, " ", ":"), ":")
		switch strings.ToLower(name) {
		case "push", "enqueue", "enq":
			if !hasArg {
				return nil, fmt.Errorf("%w: %q needs a value", ErrBadOp, tok)
			}
			v, err := ParseNumber(arg)
			if err != nil {
				return nil, err
			}
			ops = append(ops, algo.Op{Kind: algo.OpPush, Value: v})
		case "pop", "dequeue", "deq":
			ops = append(ops, algo.Op{Kind: algo.OpPop})
		default:
			return nil, fmt.Errorf("%w: %q", ErrBadOp, tok)
		}
	}
	return ops, nil
}

// ParseAdjList reads "1,2; 3; 3;" (row i lists the neighbors of vertex i),
// the labelled form "0:1,2; 1:3; 2:3" or the bracketed form
// "[[1,2],[3],[3],[]]".
func ParseAdjList(s string) (*step.Graph, error) {
	if bracketed(s) {
		var rows [][]int
		if err := yaml.Unmarshal([]byte(s), &rows); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadGraph, err)
		}
		for i := range rows {
			if rows[i] == nil {
				rows[i] = []int{}
			}
		}
		return step.UnweightedGraph(rows), nil
	}

	parts, n, err := adjRows(s)
	if err != nil {
		return nil, err
	}
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = []int{}
	}
	for _, part := range parts {
		row, err := ParseNumbers(part.body)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadGraph, err)
		}
		rows[part.at] = row
	}
	return step.UnweightedGraph(rows), nil
}

// maxVertexLabel bounds "u:" labels so a typo cannot allocate a huge graph.
const maxVertexLabel = 1 << 10

type adjRow struct {
	at   int
	body string
}

// adjRows splits s into rows. A row may start with a "u:" label that places
// it at vertex u; an unlabelled row follows the previous one. The returned
// count covers the highest vertex placed, so skipped labels become vertices
// with no neighbors.
func adjRows(s string) ([]adjRow, int, error) {
	var rows []adjRow
	next, n := 0, 0
	for _, part := range splitRows(s) {
		if label, rest, ok := strings.Cut(part, ":"); ok {
			u, err := ParseNumber(label)
			if err != nil || u < 0 || u >= maxVertexLabel {
				return nil, 0, fmt.Errorf("%w: bad vertex label %q", ErrBadGraph, strings.TrimSpace(label))
			}
			next, part = u, rest
		}
		rows = append(rows, adjRow{at: next, body: part})
		next++
		n = max(n, next)
	}
	return rows, n, nil
}

// splitRows splits on ';' and drops a single trailing empty row, so "1;0;"
// describes two vertices.
func splitRows(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	if len(parts) > 1 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// ParseWeightedAdj reads rows of "to/weight" pairs, e.g. "1/4,2/1; 3/1; 1/2,3/5;".
// Rows take the same optional "u:" labels as ParseAdjList. The bracketed form
// is "[[[1,4],[2,1]],[[3,1]],...]".
func ParseWeightedAdj(s string) (*step.Graph, error) {
	g := &step.Graph{Weighted: true}
	if bracketed(s) {
		var rows [][][2]int
		if err := yaml.Unmarshal([]byte(s), &rows); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadGraph, err)
		}
		for _, row := range rows {
			edges := make([]step.Edge, len(row))
			for i, e := range row {
				edges[i] = step.Edge{To: e[0], Weight: e[1]}
			}
			g.Adj = append(g.Adj, edges)
		}
		return g, nil
	}

	parts, n, err := adjRows(s)
	if err != nil {
		return nil, err
	}
	g.Adj = make([][]step.Edge, n)
	for i := range g.Adj {
		g.Adj[i] = []step.Edge{}
	}
	for _, part := range parts {
		edges := []step.Edge{}
		for _, f := range fields(part.body) {
			to, w, ok := strings.Cut(f, "/")
			if !ok {
				return nil, fmt.Errorf("%w: %q is not to/weight", ErrBadGraph, f)
			}
			v, err := ParseNumber(to)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadGraph, err)
			}
			wt, err := ParseNumber(w)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadGraph, err)
			}
			edges = append(edges, step.Edge{To: v, Weight: wt})
		}
		g.Adj[part.at] = edges
	}
	return g, nil
}

// ParseIntervals reads "1-4, 3-5" or "1:4 3:5".
func ParseIntervals(s string) ([]algo.Interval, error) {
	out := []algo.Interval{}
	for _, f := range fields(s) {
		sep := "-"
		if strings.Contains(f, ":") {
			sep = ":"
		}
		a, b, ok := strings.Cut(f, sep)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadInterval, f)
		}
		start, err := ParseNumber(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadInterval, err)
		}
		end, err := ParseNumber(b)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadInterval, err)
		}
		if end < start {
			return nil, fmt.Errorf("%w: %q ends before it starts", ErrBadInterval, f)
		}
		out = append(out, algo.Interval{Start: start, End: end})
	}
	return out, nil
}

func ParseWords(s string) []string {
	return fields(s)
}

// Raw holds the unparsed text fields of an input form. Empty fields are
// treated as absent.
type Raw struct {
	Input     string `yaml:"input,omitempty" json:"input,omitempty"`
	Target    string `yaml:"target,omitempty" json:"target,omitempty"`
	K         string `yaml:"k,omitempty" json:"k,omitempty"`
	N         string `yaml:"n,omitempty" json:"n,omitempty"`
	Text      string `yaml:"text,omitempty" json:"text,omitempty"`
	Text2     string `yaml:"text2,omitempty" json:"text2,omitempty"`
	Ops       string `yaml:"ops,omitempty" json:"ops,omitempty"`
	Adj       string `yaml:"adj,omitempty" json:"adj,omitempty"`
	Weights   string `yaml:"weights,omitempty" json:"weights,omitempty"`
	Values    string `yaml:"values,omitempty" json:"values,omitempty"`
	Capacity  string `yaml:"capacity,omitempty" json:"capacity,omitempty"`
	Coins     string `yaml:"coins,omitempty" json:"coins,omitempty"`
	Amount    string `yaml:"amount,omitempty" json:"amount,omitempty"`
	Intervals string `yaml:"intervals,omitempty" json:"intervals,omitempty"`
}

// Merge returns r with empty fields filled from fallback.
func (r Raw) Merge(fallback Raw) Raw {
	pick := func(a, b string) string {
		if strings.TrimSpace(a) == "" {
			return b
		}
		return a
	}
	return Raw{
		Input:     pick(r.Input, fallback.Input),
		Target:    pick(r.Target, fallback.Target),
		K:         pick(r.K, fallback.K),
		N:         pick(r.N, fallback.N),
		Text:      pick(r.Text, fallback.Text),
		Text2:     pick(r.Text2, fallback.Text2),
		Ops:       pick(r.Ops, fallback.Ops),
		Adj:       pick(r.Adj, fallback.Adj),
		Weights:   pick(r.Weights, fallback.Weights),
		Values:    pick(r.Values, fallback.Values),
		Capacity:  pick(r.Capacity, fallback.Capacity),
		Coins:     pick(r.Coins, fallback.Coins),
		Amount:    pick(r.Amount, fallback.Amount),
		Intervals: pick(r.Intervals, fallback.Intervals),
	}
}

func (r Raw) IsZero() bool { return r == Raw{} }

// Get returns the field named by its yaml key, or "" for an unknown key.
func (r Raw) Get(key string) string {
	if p := r.field(key); p != nil {
		return *p
	}
	return ""
}

// Set assigns the field named by its yaml key.
func (r *Raw) Set(key, value string) error {
	p := r.field(key)
	if p == nil {
		return fmt.Errorf("input: unknown field %q", key)
	}
	*p = value
	return nil
}

func (r *Raw) field(key string) *string {
	switch key {
	case "input":
		return &r.Input
	case "target":
		return &r.Target
	case "k":
		return &r.K
	case "n":
		return &r.N
	case "text":
		return &r.Text
	case "text2":
		return &r.Text2
	case "ops":
		return &r.Ops
	case "adj":
		return &r.Adj
	case "weights":
		return &r.Weights
	case "values":
		return &r.Values
	case "capacity":
		return &r.Capacity
	case "coins":
		return &r.Coins
	case "amount":
		return &r.Amount
	case "intervals":
		return &r.Intervals
	}
	return nil
}
