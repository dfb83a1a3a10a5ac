package ordered

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cell is a minimal element: a set of flags that merges by union and
// errors when both sides carry the same flag.
type cell struct {
	flags map[string]bool
}

func newCell(flags ...string) cell {
	c := cell{flags: map[string]bool{}}
	for _, f := range flags {
		c.flags[f] = true
	}
	return c
}

func (c cell) Empty() bool {
	return len(c.flags) == 0
}

func (c cell) Assimilate(other cell) (cell, error) {
	merged := newCell()
	for f := range c.flags {
		merged.flags[f] = true
	}
	for f := range other.flags {
		if merged.flags[f] {
			return cell{}, errors.New("conflicting flag " + f)
		}
		merged.flags[f] = true
	}
	return merged, nil
}

func TestMapKeepsKeysSorted(t *testing.T) {
	m := New[int, cell]()
	for _, key := range []int{30, 10, 20, 5, 25} {
		m.Set(key, newCell("x"))
	}
	assert.Equal(t, []int{5, 10, 20, 25, 30}, m.Keys())

	m.Set(10, newCell("y"))
	assert.Equal(t, 5, m.Len(), "replacing a key must not duplicate it")
	got, ok := m.Get(10)
	require.True(t, ok)
	assert.True(t, got.flags["y"])
}

func TestMapSlice(t *testing.T) {
	m := New[int, cell]()
	for _, key := range []int{1, 2, 3, 4, 5} {
		m.Set(key, newCell("x"))
	}
	m.Set(3, newCell()) // empty elements are dropped from slices

	start, end := 2, 5
	tests := []struct {
		name       string
		start, end *int
		want       []int
	}{
		{"bounded", &start, &end, []int{2, 4}},
		{"open start", nil, &end, []int{1, 2, 4}},
		{"open end", &start, nil, []int{2, 4, 5}},
		{"unbounded", nil, nil, []int{1, 2, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Slice(tt.start, tt.end).Keys())
		})
	}
}

func TestMapSelect(t *testing.T) {
	m := New[int, cell]()
	m.Set(1, newCell("a"))
	m.Set(2, newCell("b"))
	m.Set(3, newCell("c"))

	out := m.Select([]int{3, 1, 99})
	assert.Equal(t, []int{1, 3}, out.Keys(), "selection is re-sorted and unknown keys skipped")
}

func TestAssimilateDisjoint(t *testing.T) {
	a := New[int, cell]()
	a.Set(1, newCell("temp"))
	a.Set(2, newCell("temp"))
	b := New[int, cell]()
	b.Set(2, newCell("wind"))
	b.Set(3, newCell("wind"))

	ab, err := a.Assimilate(b)
	require.NoError(t, err)
	ba, err := b.Assimilate(a)
	require.NoError(t, err)

	for _, m := range []*Map[int, cell]{ab, ba} {
		assert.Equal(t, []int{1, 2, 3}, m.Keys())
		both, _ := m.Get(2)
		assert.True(t, both.flags["temp"])
		assert.True(t, both.flags["wind"])
	}

	// Inputs must stay untouched.
	aOnly, _ := a.Get(2)
	assert.False(t, aOnly.flags["wind"])
	assert.Equal(t, []int{1, 2}, a.Keys())
	assert.Equal(t, []int{2, 3}, b.Keys())
}

func TestAssimilateConflict(t *testing.T) {
	a := New[int, cell]()
	a.Set(1, newCell("temp"))
	b := New[int, cell]()
	b.Set(1, newCell("temp"))

	_, err := a.Assimilate(b)
	assert.Error(t, err)
}
