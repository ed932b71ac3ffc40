package archives

import (
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"
)

// Novelty scores each descriptor of batch by scale times the mean squared
// distance to its k nearest stored descriptors. k is capped by the
// archive size. All scores are zero on an empty archive.
func (a Archive) Novelty(batch []Descriptor, k int, scale float64) ([]float64, error) {
	if err := a.check(batch); err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, fmt.Errorf("bad neighbour count: %d", k)
	}
	if len(a.data) == 0 {
		return make([]float64, len(batch)), nil
	}
	dists, _ := KNN(a.data, batch, min(k, len(a.data)))
	return lo.Map(dists, func(row []float64, _ int) float64 {
		sum := 0.0
		for _, d := range row {
			sum += d * d
		}
		return scale * sum / float64(len(row))
	}), nil
}

// KNN returns, for each query, the Euclidean distances to its k nearest
// reference descriptors in ascending order, and their indices in
// reference. k is capped by len(reference).
func KNN(reference []Descriptor, query []Descriptor, k int) (dists [][]float64, indices [][]int) {
	k = min(k, len(reference))
	type neighbour struct {
		dist  float64
		index int
	}
	for _, q := range query {
		neighbours := make([]neighbour, 0, len(reference))
		for i, r := range reference {
			neighbours = append(neighbours, neighbour{
				dist:  distance(q, r),
				index: i,
			})
		}
		slices.SortStableFunc(neighbours, func(a, b neighbour) int {
			switch {
			case a.dist < b.dist:
				return -1
			case a.dist > b.dist:
				return 1
			}
			return 0
		})
		neighbours = neighbours[:k]
		dists = append(dists, lo.Map(neighbours, func(n neighbour, _ int) float64 {
			return n.dist
		}))
		indices = append(indices, lo.Map(neighbours, func(n neighbour, _ int) int {
			return n.index
		}))
	}
	return
}

func distance(a, b Descriptor) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	if math.IsNaN(sum) {
		return math.Inf(1)
	}
	return math.Sqrt(sum)
}
