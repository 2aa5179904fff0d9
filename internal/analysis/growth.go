package analysis

import (
	"math/rand"

	"github.com/san-kum/dsaviz/internal/step"
)

type Point struct {
	N     int
	Steps int
	Stats Stats
}

// Growth runs gen on a pseudo-random array of each size and records how many
// steps it produced. The same seed always yields the same inputs.
func Growth(gen func([]int) step.Sequence, sizes []int, seed int64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, 0, len(sizes))
	for _, n := range sizes {
		a := make([]int, n)
		for i := range a {
			a[i] = rng.Intn(100)
		}
		seq := gen(a)
		points = append(points, Point{N: n, Steps: seq.Len(), Stats: Summarize(seq)})
	}
	return points
}
