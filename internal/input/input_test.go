package input

import (
	"errors"
	"reflect"
	"testing"

	"github.com/san-kum/dsaviz/internal/algo"
	"github.com/san-kum/dsaviz/internal/step"
)

func TestParseNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"5,3,8,1,2", []int{5, 3, 8, 1, 2}},
		{" 5 3\t8 ", []int{5, 3, 8}},
		{"[2, -3, 4]", []int{2, -3, 4}},
		{"", []int{}},
		{"[]", []int{}},
	}
	for _, tt := range tests {
		got, err := ParseNumbers(tt.in)
		if err != nil {
			t.Errorf("ParseNumbers(%q): %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseNumbers(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseNumbers("1, x"); !errors.Is(err, ErrBadNumber) {
		t.Errorf("expected ErrBadNumber, got %v", err)
	}
}

func TestParseOps(t *testing.T) {
	got, err := ParseOps("push:1, push 2, pop, enqueue:3, deq")
	if err != nil {
		t.Fatalf("ParseOps: %v", err)
	}
	want := []algo.Op{
		{Kind: algo.OpPush, Value: 1},
		{Kind: algo.OpPush, Value: 2},
		{Kind: algo.OpPop},
		{Kind: algo.OpPush, Value: 3},
		{Kind: algo.OpPop},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, bad := range []string{"peek", "push"} {
		if _, err := ParseOps(bad); !errors.Is(err, ErrBadOp) {
			t.Errorf("ParseOps(%q): expected ErrBadOp, got %v", bad, err)
		}
	}
}

func TestParseAdjList(t *testing.T) {
	want := step.UnweightedGraph([][]int{{1, 2}, {3}, {3}, {}})
	for _, in := range []string{
		"1,2; 3; 3; ;",
		"[[1,2],[3],[3],[]]",
		"0:1,2;1:3;2:3;3:",
		"2:3; 0:1,2; 1:3; 3:",
		"0:1,2; 3; 3; ;",
	} {
		got, err := ParseAdjList(in)
		if err != nil {
			t.Errorf("ParseAdjList(%q): %v", in, err)
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ParseAdjList(%q) = %+v, want %+v", in, got, want)
		}
	}
	if _, err := ParseAdjList("1;x"); !errors.Is(err, ErrBadGraph) {
		t.Errorf("expected ErrBadGraph, got %v", err)
	}

	// labels as in the built-in placeholder, with a skipped vertex
	got, err := ParseAdjList("0:1,2;1:0;3:0")
	if err != nil {
		t.Fatal(err)
	}
	if want := step.UnweightedGraph([][]int{{1, 2}, {0}, {}, {0}}); !reflect.DeepEqual(got, want) {
		t.Errorf("sparse labels = %+v, want %+v", got, want)
	}
	for _, in := range []string{"x:1", "-1:0", "5000:1"} {
		if _, err := ParseAdjList(in); !errors.Is(err, ErrBadGraph) {
			t.Errorf("ParseAdjList(%q): expected ErrBadGraph, got %v", in, err)
		}
	}
}

func TestParseWeightedAdj(t *testing.T) {
	want := &step.Graph{Weighted: true, Adj: [][]step.Edge{
		{{To: 1, Weight: 4}, {To: 2, Weight: 1}},
		{{To: 3, Weight: 1}},
		{},
	}}
	for _, in := range []string{
		"1/4,2/1; 3/1; ;",
		"0:1/4,2/1;1:3/1;2:;",
		"1:3/1; 0:1/4,2/1; 2:",
		"[[[1,4],[2,1]],[[3,1]],[]]",
	} {
		got, err := ParseWeightedAdj(in)
		if err != nil {
			t.Errorf("ParseWeightedAdj(%q): %v", in, err)
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ParseWeightedAdj(%q) = %+v, want %+v", in, got, want)
		}
	}
	got, err := ParseWeightedAdj("1:0/2;0:1/2")
	if err != nil {
		t.Fatal(err)
	}
	swapped := &step.Graph{Weighted: true, Adj: [][]step.Edge{{{To: 1, Weight: 2}}, {{To: 0, Weight: 2}}}}
	if !reflect.DeepEqual(got, swapped) {
		t.Errorf("out of order labels = %+v, want %+v", got, swapped)
	}

	got, err = ParseWeightedAdj("2:0/7")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Adj) != 3 || len(got.Adj[0]) != 0 || len(got.Adj[1]) != 0 {
		t.Errorf("gaps not filled with empty rows: %+v", got.Adj)
	}

	for _, in := range []string{"x:1/2", "0:1-2"} {
		if _, err := ParseWeightedAdj(in); !errors.Is(err, ErrBadGraph) {
			t.Errorf("ParseWeightedAdj(%q): expected ErrBadGraph, got %v", in, err)
		}
	}
}

func TestParseIntervals(t *testing.T) {
	got, err := ParseIntervals("1-4, 3:5")
	if err != nil {
		t.Fatal(err)
	}
	want := []algo.Interval{{Start: 1, End: 4}, {Start: 3, End: 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := ParseIntervals("5-1"); !errors.Is(err, ErrBadInterval) {
		t.Errorf("expected ErrBadInterval, got %v", err)
	}
}

func TestParseWords(t *testing.T) {
	got := ParseWords("car, cat  ca")
	if !reflect.DeepEqual(got, []string{"car", "cat", "ca"}) {
		t.Errorf("got %v", got)
	}
}

func TestRawGetSet(t *testing.T) {
	var r Raw
	if err := r.Set("capacity", "7"); err != nil {
		t.Fatal(err)
	}
	if r.Capacity != "7" || r.Get("capacity") != "7" {
		t.Errorf("capacity not set: %+v", r)
	}
	if err := r.Set("nope", "1"); err == nil {
		t.Error("expected error for unknown field")
	}
	if r.Get("nope") != "" {
		t.Error("unknown field should read empty")
	}
}
