package archives

import (
	"errors"
	"fmt"
	"slices"
)

// Descriptor is the behaviour of one agent as a point in descriptor
// space.
type Descriptor []float64

const DefaultCapacity = 80_000

var ErrDimension = errors.New("bad descriptor dimension")

// Archive is a fixed-capacity ring of descriptors. It is immutable:
// Insert returns a new archive and leaves the receiver untouched.
type Archive struct {
	threshold float64
	dim       int
	capacity  int
	position  int
	data      []Descriptor
}

// New returns an empty archive. A candidate is admitted only if it is
// farther than threshold from every stored descriptor.
func New(threshold float64, dim int, capacity int) (Archive, error) {
	if dim <= 0 {
		return Archive{}, fmt.Errorf("%w: %d", ErrDimension, dim)
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return Archive{
		threshold: threshold,
		dim:       dim,
		capacity:  capacity,
	}, nil
}

func (a Archive) Size() int {
	return len(a.data)
}

func (a Archive) Dim() int {
	return a.dim
}

func (a Archive) Capacity() int {
	return a.capacity
}

func (a Archive) Threshold() float64 {
	return a.threshold
}

// Descriptors returns a copy of the stored descriptors in slot order.
func (a Archive) Descriptors() []Descriptor {
	ret := make([]Descriptor, 0, len(a.data))
	for _, d := range a.data {
		ret = append(ret, slices.Clone(d))
	}
	return ret
}

func (a Archive) check(batch []Descriptor) error {
	for i, d := range batch {
		if len(d) != a.dim {
			return fmt.Errorf("%w: descriptor %d has %d values, expected %d", ErrDimension, i, len(d), a.dim)
		}
	}
	return nil
}

// Insert admits the novel descriptors of batch. A descriptor is admitted
// when its nearest stored neighbour and its nearest neighbour among the
// ones admitted earlier in the same batch are both farther than the
// threshold. When full, the oldest slot is overwritten.
func (a Archive) Insert(batch []Descriptor) (Archive, error) {
	if err := a.check(batch); err != nil {
		return a, err
	}

	novel := make([]bool, len(batch))
	if len(a.data) > 0 {
		dists, _ := KNN(a.data, batch, 1)
		for i, d := range dists {
			novel[i] = d[0] > a.threshold
		}
	} else {
		for i := range novel {
			novel[i] = true
		}
	}

	ret := a
	ret.data = slices.Clone(a.data)
	var added []Descriptor
	for i, d := range batch {
		if !novel[i] {
			continue
		}
		if len(added) > 0 {
			dists, _ := KNN(added, []Descriptor{d}, 1)
			if dists[0][0] <= a.threshold {
				continue
			}
		}
		d = slices.Clone(d)
		added = append(added, d)
		if len(ret.data) < ret.capacity {
			ret.data = append(ret.data, d)
		} else {
			ret.data[ret.position%ret.capacity] = d
		}
		ret.position++
	}

	return ret, nil
}
