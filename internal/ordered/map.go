// Package ordered provides the sorted keyed container backing the
// region/date hierarchies of the weather and forecast datasets.
package ordered

import (
	"cmp"
	"slices"
)

// Elem is the element contract for Map values. Assimilate merges two
// elements holding disjoint parts of the same logical record and must
// return a new element without mutating either input. Empty elements
// are dropped when maps are sliced or merged.
type Elem[V any] interface {
	Assimilate(other V) (V, error)
	Empty() bool
}

// Map is a mapping from an ordinal key to a child element, iterated in
// ascending key order. The zero value is not usable; use New.
type Map[K cmp.Ordered, V Elem[V]] struct {
	keys  []K
	elems map[K]V
}

// New returns an empty Map.
func New[K cmp.Ordered, V Elem[V]]() *Map[K, V] {
	return &Map[K, V]{elems: make(map[K]V)}
}

// Set inserts or replaces the element under key.
func (m *Map[K, V]) Set(key K, elem V) {
	if _, ok := m.elems[key]; !ok {
		idx, _ := slices.BinarySearch(m.keys, key)
		m.keys = slices.Insert(m.keys, idx, key)
	}
	m.elems[key] = elem
}

// Get returns the element under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	elem, ok := m.elems[key]
	return elem, ok
}

// Len returns the number of elements.
func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// Empty reports whether the map has no elements.
func (m *Map[K, V]) Empty() bool {
	return len(m.keys) == 0
}

// Keys returns the keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

// Values returns the elements in ascending key order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, len(m.keys))
	for _, key := range m.keys {
		values = append(values, m.elems[key])
	}
	return values
}

// Slice returns a new map holding the elements with key in the
// half-open interval [start, end). A nil bound leaves that side
// unbounded. Empty elements are dropped.
func (m *Map[K, V]) Slice(start, end *K) *Map[K, V] {
	out := New[K, V]()
	for _, key := range m.keys {
		if start != nil && key < *start {
			continue
		}
		if end != nil && key >= *end {
			continue
		}
		if elem := m.elems[key]; !elem.Empty() {
			out.Set(key, elem)
		}
	}
	return out
}

// Select returns a new map holding only the requested keys. Keys not
// present are silently skipped. Empty elements are dropped.
func (m *Map[K, V]) Select(keys []K) *Map[K, V] {
	out := New[K, V]()
	for _, key := range keys {
		if elem, ok := m.elems[key]; ok && !elem.Empty() {
			out.Set(key, elem)
		}
	}
	return out
}

// Assimilate merges two maps into a new one. Keys present on both
// sides have their elements assimilated recursively; keys present on
// one side are adopted as-is. Neither input is modified. Empty
// elements are dropped from the result.
func (m *Map[K, V]) Assimilate(other *Map[K, V]) (*Map[K, V], error) {
	out := New[K, V]()
	for _, key := range m.keys {
		elem := m.elems[key]
		if otherElem, ok := other.elems[key]; ok {
			merged, err := elem.Assimilate(otherElem)
			if err != nil {
				return nil, err
			}
			elem = merged
		}
		if !elem.Empty() {
			out.Set(key, elem)
		}
	}
	for _, key := range other.keys {
		if _, ok := m.elems[key]; ok {
			continue
		}
		if elem := other.elems[key]; !elem.Empty() {
			out.Set(key, elem)
		}
	}
	return out, nil
}
