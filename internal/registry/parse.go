package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/dsaviz/internal/input"
	"github.com/san-kum/dsaviz/internal/step"
)

var ErrMissingField = errors.New("registry: required field is empty")

func required(name, v string) (string, error) {
	if strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingField, name)
	}
	return v, nil
}

func requiredNumber(name, v string) (int, error) {
	s, err := required(name, v)
	if err != nil {
		return 0, err
	}
	return input.ParseNumber(s)
}

// ParseParams builds the params of family f from raw form fields.
func ParseParams(f Family, raw input.Raw) (Params, error) {
	switch f {
	case FamilyNumbers:
		v, err := input.ParseNumbers(raw.Input)
		return Numbers{Values: v}, err
	case FamilyNumbersTarget:
		v, err := input.ParseNumbers(raw.Input)
		if err != nil {
			return nil, err
		}
		t, err := requiredNumber("target", raw.Target)
		return NumbersTarget{Values: v, Target: t}, err
	case FamilyNumbersWindow:
		v, err := input.ParseNumbers(raw.Input)
		if err != nil {
			return nil, err
		}
		k, err := requiredNumber("k", raw.K)
		return NumbersWindow{Values: v, K: k}, err
	case FamilyNumber:
		n, err := requiredNumber("n", raw.N)
		return Number{N: n}, err
	case FamilyText:
		return Text{S: raw.Text}, nil
	case FamilyTextPair:
		return TextPair{A: raw.Text, B: raw.Text2}, nil
	case FamilyWords:
		return Words{Words: input.ParseWords(raw.Text)}, nil
	case FamilyKnapsack:
		w, err := input.ParseNumbers(raw.Weights)
		if err != nil {
			return nil, err
		}
		v, err := input.ParseNumbers(raw.Values)
		if err != nil {
			return nil, err
		}
		c, err := requiredNumber("capacity", raw.Capacity)
		return Knapsack{Weights: w, Values: v, Capacity: c}, err
	case FamilyCoinChange:
		coins, err := input.ParseNumbers(raw.Coins)
		if err != nil {
			return nil, err
		}
		a, err := requiredNumber("amount", raw.Amount)
		return CoinChange{Coins: coins, Amount: a}, err
	case FamilyIntervals:
		iv, err := input.ParseIntervals(raw.Intervals)
		return Intervals{Intervals: iv}, err
	case FamilyGraph:
		g, err := input.ParseAdjList(raw.Adj)
		return Graph{Graph: g}, err
	case FamilyWeightedGraph:
		g, err := input.ParseWeightedAdj(raw.Adj)
		return WeightedGraph{Graph: g}, err
	case FamilyOps:
		o, err := input.ParseOps(raw.Ops)
		return Ops{Ops: o}, err
	}
	return nil, fmt.Errorf("%w: family %q", ErrWrongParams, f)
}

// Apply parses raw for the selected algorithm and generates its sequence.
// Parse failures become a failure sequence, like any other rejected input.
func (r *Registry) Apply(category, algorithm string, raw input.Raw) (step.Sequence, error) {
	e, ok := r.Lookup(category, algorithm)
	if !ok {
		return step.Sequence{}, fmt.Errorf("%w: %s/%s", ErrUnknownAlgorithm, category, algorithm)
	}
	p, err := ParseParams(e.Family, raw)
	if err != nil {
		return step.Fail(step.ArrayView([]int{}), string(e.Family), err.Error()), nil
	}
	return r.Generate(e.Category, e.Algorithm, p)
}

var familyFields = map[Family][]string{
	FamilyNumbers:       {"input"},
	FamilyNumbersTarget: {"input", "target"},
	FamilyNumbersWindow: {"input", "k"},
	FamilyNumber:        {"n"},
	FamilyText:          {"text"},
	FamilyTextPair:      {"text", "text2"},
	FamilyWords:         {"text"},
	FamilyKnapsack:      {"weights", "values", "capacity"},
	FamilyCoinChange:    {"coins", "amount"},
	FamilyIntervals:     {"intervals"},
	FamilyGraph:         {"adj"},
	FamilyWeightedGraph: {"adj"},
	FamilyOps:           {"ops"},
}

// Fields lists the input.Raw keys ParseParams reads for f.
func (f Family) Fields() []string {
	return append([]string(nil), familyFields[f]...)
}
