// Package registry maps (category, algorithm) pairs to step generators and
// validates parameters before a generator runs.
package registry

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/san-kum/dsaviz/internal/step"
)

var (
	ErrUnknownAlgorithm = errors.New("registry: unknown algorithm")
	ErrWrongParams      = errors.New("registry: params do not match algorithm")
)

type Key struct {
	Category  string
	Algorithm string
}

func (k Key) String() string { return k.Category + "/" + k.Algorithm }

// Entry is one dispatchable algorithm.
type Entry struct {
	Key
	Family Family
	View   step.Kind
	run    func(Params) step.Sequence
}

// Selection is the menu state: which algorithm the user picked.
type Selection struct {
	Category  string
	Algorithm string
}

func (s Selection) Key() Key { return Key(s) }

type Registry struct {
	entries    map[Key]Entry
	order      []Key
	categories []string
}

func New(entries ...Entry) *Registry {
	r := &Registry{entries: make(map[Key]Entry, len(entries))}
	seen := map[string]bool{}
	for _, e := range entries {
		if _, dup := r.entries[e.Key]; dup {
			panic(fmt.Sprintf("registry: duplicate entry %s", e.Key))
		}
		r.entries[e.Key] = e
		r.order = append(r.order, e.Key)
		if !seen[e.Category] {
			seen[e.Category] = true
			r.categories = append(r.categories, e.Category)
		}
	}
	return r
}

// Lookup also accepts a bare algorithm name when category is empty.
func (r *Registry) Lookup(category, algorithm string) (Entry, bool) {
	if category == "" {
		for _, k := range r.order {
			if k.Algorithm == algorithm {
				return r.entries[k], true
			}
		}
		return Entry{}, false
	}
	e, ok := r.entries[Key{category, algorithm}]
	return e, ok
}

// Generate runs the selected algorithm. Rejected input comes back as a
// one-step failure sequence; the error return is reserved for unknown keys
// and params of the wrong family.
func (r *Registry) Generate(category, algorithm string, p Params) (step.Sequence, error) {
	e, ok := r.Lookup(category, algorithm)
	if !ok {
		return step.Sequence{}, fmt.Errorf("%w: %s/%s", ErrUnknownAlgorithm, category, algorithm)
	}
	// Entries assert the value type, so a pointer to a valid params struct
	// is rejected here along with a mismatched family.
	if p == nil || reflect.ValueOf(p).Kind() == reflect.Pointer || p.Family() != e.Family {
		return step.Sequence{}, fmt.Errorf("%w: %s expects %s", ErrWrongParams, e.Key, e.Family)
	}
	return e.run(p), nil
}

// Categories returns categories in declaration order.
func (r *Registry) Categories() []string {
	return append([]string(nil), r.categories...)
}

func (r *Registry) Algorithms(category string) []string {
	var out []string
	for _, k := range r.order {
		if k.Category == category {
			out = append(out, k.Algorithm)
		}
	}
	return out
}

func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.order))
	for i, k := range r.order {
		out[i] = r.entries[k]
	}
	return out
}

func (r *Registry) Len() int { return len(r.order) }
