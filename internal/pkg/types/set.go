package types

import (
	"iter"
	"maps"
	"slices"
)

// Set is a generic hash set for comparable types.
//
// Membership is backed by a map[T]struct{}, so lookups, insertions and
// deletions are constant time. The type is mutable: Add and Delete change
// the set in place.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding the provided elements.
//
// Parameters:
//   - data: zero or more initial elements. Duplicates collapse into one.
//
// Returns:
//   - A Set containing every distinct element of data.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts one or more elements into the set.
//
// Elements already present are left untouched.
//
// Parameters:
//   - values: elements to insert.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Delete removes one or more elements from the set.
//
// Elements that are not present are ignored.
//
// Parameters:
//   - values: elements to remove.
func (s Set[T]) Delete(values ...T) {
	for _, val := range values {
		delete(s, val)
	}
}

// Has reports whether v is a member of the set.
//
// Parameters:
//   - v: the element to look up.
//
// Returns:
//   - true when v was added and not deleted since.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// ToIter returns an iterator over the elements of the set.
//
// The iteration order is not guaranteed and may change between calls.
//
// Returns:
//   - An iter.Seq[T] yielding every element once.
func (s Set[T]) ToIter() iter.Seq[T] {
	return maps.Keys(s)
}

// ToSlice returns the elements of the set as a new slice.
//
// The order of elements is not guaranteed.
//
// Returns:
//   - A slice with one entry per element.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(s.ToIter())
}

// OrderedSet is a Set that remembers insertion order.
//
// It is used where the caller needs distinct elements but must keep the
// order in which they were first seen, e.g. the addresses touched by a
// transaction. The zero value is not usable; build one with NewOrderedSet.
type OrderedSet[T comparable] struct {
	seen  Set[T]
	items []T
}

// NewOrderedSet creates an OrderedSet holding the provided elements.
//
// Parameters:
//   - data: zero or more initial elements, kept in first-seen order.
//
// Returns:
//   - A pointer to the new OrderedSet.
//
// Example:
//
//	s := NewOrderedSet("b", "a", "b")
//	s.ToSlice() // ["b", "a"]
func NewOrderedSet[T comparable](data ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{seen: NewSet[T]()}
	s.Add(data...)
	return s
}

// Add appends every value not already present.
//
// Parameters:
//   - values: elements to append. Values seen before keep their original
//     position.
func (s *OrderedSet[T]) Add(values ...T) {
	for _, v := range values {
		if s.seen.Has(v) {
			continue
		}
		s.seen.Add(v)
		s.items = append(s.items, v)
	}
}

// Len returns the number of distinct elements.
func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

// ToSlice returns a copy of the elements in insertion order.
//
// Returns:
//   - A new slice; changing it does not affect the set.
func (s *OrderedSet[T]) ToSlice() []T {
	return slices.Clone(s.items)
}
