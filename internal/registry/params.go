package registry

import (
	"github.com/san-kum/dsaviz/internal/algo"
	"github.com/san-kum/dsaviz/internal/step"
)

// Family names the shape of parameters an algorithm takes.
type Family string

const (
	FamilyNumbers       Family = "numbers"
	FamilyNumbersTarget Family = "numbers+target"
	FamilyNumbersWindow Family = "numbers+k"
	FamilyNumber        Family = "number"
	FamilyText          Family = "text"
	FamilyTextPair      Family = "text-pair"
	FamilyWords         Family = "words"
	FamilyKnapsack      Family = "knapsack"
	FamilyCoinChange    Family = "coin-change"
	FamilyIntervals     Family = "intervals"
	FamilyGraph         Family = "graph"
	FamilyWeightedGraph Family = "weighted-graph"
	FamilyOps           Family = "ops"
)

// Params is the closed set of parsed algorithm inputs. Only the types in
// this file implement it.
type Params interface {
	Family() Family
	params()
}

type Numbers struct{ Values []int }

type NumbersTarget struct {
	Values []int
	Target int
}

type NumbersWindow struct {
	Values []int
	K      int
}

type Number struct{ N int }

type Text struct{ S string }

type TextPair struct{ A, B string }

type Words struct{ Words []string }

type Knapsack struct {
	Weights  []int
	Values   []int
	Capacity int
}

type CoinChange struct {
	Coins  []int
	Amount int
}

type Intervals struct{ Intervals []algo.Interval }

type Graph struct{ Graph *step.Graph }

type WeightedGraph struct{ Graph *step.Graph }

type Ops struct{ Ops []algo.Op }

func (Numbers) Family() Family       { return FamilyNumbers }
func (NumbersTarget) Family() Family { return FamilyNumbersTarget }
func (NumbersWindow) Family() Family { return FamilyNumbersWindow }
func (Number) Family() Family        { return FamilyNumber }
func (Text) Family() Family          { return FamilyText }
func (TextPair) Family() Family      { return FamilyTextPair }
func (Words) Family() Family         { return FamilyWords }
func (Knapsack) Family() Family      { return FamilyKnapsack }
func (CoinChange) Family() Family    { return FamilyCoinChange }
func (Intervals) Family() Family     { return FamilyIntervals }
func (Graph) Family() Family         { return FamilyGraph }
func (WeightedGraph) Family() Family { return FamilyWeightedGraph }
func (Ops) Family() Family           { return FamilyOps }

func (Numbers) params()       {}
func (NumbersTarget) params() {}
func (NumbersWindow) params() {}
func (Number) params()        {}
func (Text) params()          {}
func (TextPair) params()      {}
func (Words) params()         {}
func (Knapsack) params()      {}
func (CoinChange) params()    {}
func (Intervals) params()     {}
func (Graph) params()         {}
func (WeightedGraph) params() {}
func (Ops) params()           {}
