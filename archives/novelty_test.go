package archives

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKNN(t *testing.T) {
	reference := []Descriptor{{0, 0}, {3, 4}, {1, 0}, {0, 2}}
	dists, indices := KNN(reference, []Descriptor{{0, 0}, {3, 3}}, 2)
	assert.Equal(t, [][]float64{{0, 1}, {1, math.Sqrt(10)}}, dists)
	assert.Equal(t, [][]int{{0, 2}, {1, 3}}, indices)

	dists, indices = KNN(reference[:1], []Descriptor{{0, 1}}, 5)
	assert.Equal(t, [][]float64{{1}}, dists)
	assert.Equal(t, [][]int{{0}}, indices)

	dists, _ = KNN([]Descriptor{{math.NaN()}}, []Descriptor{{0}}, 1)
	assert.True(t, math.IsInf(dists[0][0], 1))
}

func TestNovelty(t *testing.T) {
	a, err := New(0, 1, 10)
	require.NoError(t, err)

	scores, err := a.Novelty([]Descriptor{{1}, {2}}, 15, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, scores)

	a, err = a.Insert([]Descriptor{{0}, {2}})
	require.NoError(t, err)

	// k is capped by the archive size
	scores, err = a.Novelty([]Descriptor{{1}, {4}}, 15, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 10}, scores)

	scores, err = a.Novelty([]Descriptor{{4}}, 1, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, scores)

	_, err = a.Novelty([]Descriptor{{4}}, 0, 1)
	assert.Error(t, err)
	_, err = a.Novelty([]Descriptor{{4, 4}}, 1, 1)
	assert.ErrorIs(t, err, ErrDimension)
}
