package step

import "sort"

// Role names a highlight attached to a step.
type Role string

// Shared annotation vocabulary. Generators may add algorithm-specific roles.
const (
	Complete   Role = "complete"
	Error      Role = "error"
	Comparing  Role = "comparing"
	Swapped    Role = "swapped"
	Swapping   Role = "swapping"
	Shifting   Role = "shifting"
	Placed     Role = "placed"
	Writing    Role = "writing"
	PivotIndex Role = "pivotIndex"
	PassEnd    Role = "passEnd"
	Current    Role = "current"
	KeyIndex   Role = "keyIndex"
	NewMin     Role = "newMin"
	Merging    Role = "merging"
	SortedFrom Role = "sortedFrom"
	Visiting   Role = "visiting"
	Discovered Role = "discovered"
	From       Role = "from"
	Parent     Role = "parent"
	Found      Role = "found"
	Window     Role = "window"
	Sum        Role = "sum"
	Best       Role = "best"
	Max        Role = "max"
	MaxStart   Role = "maxStart"
	Left       Role = "left"
	Right      Role = "right"
	Mid        Role = "mid"
	Low        Role = "low"
	High       Role = "high"
	Pushed     Role = "pushed"
	Popped     Role = "popped"
	Enqueued   Role = "enqueued"
	Dequeued   Role = "dequeued"
	Underflow  Role = "underflow"
	Reversing  Role = "reversing"
	Head       Role = "head"
	Index      Role = "index"
	Value      Role = "value"
	CellAt     Role = "cell"
	Deps       Role = "deps"
	Order      Role = "order"
	Queue      Role = "queue"
	Visited    Role = "visited"
	Dist       Role = "dist"
	Settled    Role = "settled"
	ActiveEdge Role = "edge"
	Updated    Role = "updated"
	Indegree   Role = "indegree"
	Cycle      Role = "cycle"
	Key        Role = "key"
	MSTEdges   Role = "mstEdges"
	Total      Role = "total"
	Mismatch   Role = "mismatch"
	Result     Role = "result"
	Phase      Role = "phase"
	PhaseDone  Role = "phaseDone"
	Partition  Role = "partition"
	Counts     Role = "counts"
	Prev       Role = "prev"
	Pair       Role = "pair"
	Inserted   Role = "inserted"
	Duplicate  Role = "duplicate"
	Created    Role = "created"
	Terminal   Role = "terminal"
	Word       Role = "word"
	Text       Role = "text"
	Chosen     Role = "chosen"
	Rejected   Role = "rejected"
	Conflict   Role = "conflict"
	Backtrack  Role = "backtrack"
	Perm       Role = "perm"
	Subset     Role = "subset"
	Include    Role = "include"
	Exclude    Role = "exclude"
	CurSum     Role = "cur"
	MaxSoFar   Role = "maxSoFar"
	LPS        Role = "lps"
	PatternAt  Role = "patternIndex"
	Matches    Role = "matches"
	Coin       Role = "coin"
	Preorder   Role = "preorder"
	Inorder    Role = "inorder"
	Postorder  Role = "postorder"
	LevelOrder Role = "levelOrder"
)

// Annotations maps roles to positional or status values. Values are limited
// to int, bool, string, []int, []bool, []string and [][]int.
type Annotations map[Role]any

// Clone deep-copies the map and any slice values.
func (a Annotations) Clone() Annotations {
	if a == nil {
		return Annotations{}
	}
	c := make(Annotations, len(a))
	for k, v := range a {
		switch t := v.(type) {
		case []int:
			c[k] = append([]int{}, t...)
		case []bool:
			c[k] = append([]bool{}, t...)
		case []string:
			c[k] = append([]string{}, t...)
		case [][]int:
			rows := make([][]int, len(t))
			for i, r := range t {
				rows[i] = append([]int{}, r...)
			}
			c[k] = rows
		default:
			c[k] = v
		}
	}
	return c
}

func (a Annotations) Has(r Role) bool {
	_, ok := a[r]
	return ok
}

func (a Annotations) Int(r Role) (int, bool) {
	v, ok := a[r].(int)
	return v, ok
}

func (a Annotations) Ints(r Role) ([]int, bool) {
	v, ok := a[r].([]int)
	return v, ok
}

func (a Annotations) Bool(r Role) bool {
	v, _ := a[r].(bool)
	return v
}

func (a Annotations) String(r Role) (string, bool) {
	v, ok := a[r].(string)
	return v, ok
}

// Roles returns the keys in sorted order, for stable rendering.
func (a Annotations) Roles() []Role {
	out := make([]Role, 0, len(a))
	for k := range a {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Indices returns the positions a role points at, whether it was recorded
// as a single index or a list. Negative indices are dropped.
func (a Annotations) Indices(r Role) []int {
	var out []int
	switch v := a[r].(type) {
	case int:
		if v >= 0 {
			out = append(out, v)
		}
	case []int:
		for _, i := range v {
			if i >= 0 {
				out = append(out, i)
			}
		}
	}
	return out
}

// Marks maps each highlighted index to the first role in priority that
// points at it.
func (a Annotations) Marks(priority ...Role) map[int]Role {
	m := make(map[int]Role)
	for _, r := range priority {
		for _, i := range a.Indices(r) {
			if _, taken := m[i]; !taken {
				m[i] = r
			}
		}
	}
	return m
}
