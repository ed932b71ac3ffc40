package archives

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a, err := New(0.5, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Size())
	assert.Equal(t, DefaultCapacity, a.Capacity())
	assert.Equal(t, 2, a.Dim())
	assert.Equal(t, 0.5, a.Threshold())

	_, err = New(0.5, 0, 10)
	assert.ErrorIs(t, err, ErrDimension)
}

func TestInsert(t *testing.T) {
	a, err := New(1, 2, 10)
	require.NoError(t, err)

	b, err := a.Insert([]Descriptor{
		{0, 0},
		{0.5, 0}, // too close to the first one in the same batch
		{3, 0},
		{3, 0.2}, // too close to {3, 0}
		{10, 10},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, a.Size(), "receiver is untouched")
	assert.Equal(t, []Descriptor{{0, 0}, {3, 0}, {10, 10}}, b.Descriptors())

	c, err := b.Insert([]Descriptor{
		{0, 0.9}, // too close to a stored one
		{0, 1.5},
		{0, 1.6}, // too close to {0, 1.5}
	})
	require.NoError(t, err)
	assert.Equal(t, 3, b.Size())
	assert.Equal(t, []Descriptor{{0, 0}, {3, 0}, {10, 10}, {0, 1.5}}, c.Descriptors())

	// the threshold is exclusive
	d, err := c.Insert([]Descriptor{{0, -1}})
	require.NoError(t, err)
	assert.Equal(t, 4, d.Size())
}

func TestInsertRing(t *testing.T) {
	a, err := New(0, 1, 3)
	require.NoError(t, err)
	a, err = a.Insert([]Descriptor{{1}, {2}, {3}, {4}})
	require.NoError(t, err)
	assert.Equal(t, 3, a.Size())
	assert.Equal(t, []Descriptor{{4}, {2}, {3}}, a.Descriptors())
	a, err = a.Insert([]Descriptor{{5}, {6}})
	require.NoError(t, err)
	assert.Equal(t, []Descriptor{{4}, {5}, {6}}, a.Descriptors())
}

func TestInsertCopies(t *testing.T) {
	a, err := New(0, 2, 3)
	require.NoError(t, err)
	d := Descriptor{1, 2}
	a, err = a.Insert([]Descriptor{d})
	require.NoError(t, err)
	d[0] = 42
	a.Descriptors()[0][1] = 42
	assert.Equal(t, []Descriptor{{1, 2}}, a.Descriptors())
}

func TestInsertDimension(t *testing.T) {
	a, err := New(0, 2, 3)
	require.NoError(t, err)
	b, err := a.Insert([]Descriptor{{1, 2}, {1, 2, 3}})
	assert.ErrorIs(t, err, ErrDimension)
	assert.Equal(t, 0, b.Size())
}
