package ranking

import (
	"iter"
	"slices"
)

// Set keeps at most Cap items in ascending cmp order, so with a "best first"
// comparator the first item is the best one and the last is the first to be
// evicted.
//
// Uniqueness is keyed by cmp, not by value: an item that compares equal to a
// member is never inserted, even when the two values differ. Capacity-1 key
// result trackers rely on this to keep the first of several equal results.
type Set[T any] struct {
	capacity int
	cmp      func(a, b T) int
	items    []T
}

func New[T any](capacity int, cmp func(a, b T) int) *Set[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Set[T]{
		capacity: capacity,
		cmp:      cmp,
		items:    make([]T, 0, capacity),
	}
}

// Add inserts item at its sorted position and reports whether membership
// changed. When the set is full, an item ranking at or below the last member
// is discarded; otherwise the last member is evicted.
func (s *Set[T]) Add(item T) bool {
	idx, found := slices.BinarySearchFunc(s.items, item, s.cmp)
	if found {
		return false
	}
	if s.Full() {
		if idx >= len(s.items) {
			return false
		}
		s.items = s.items[:len(s.items)-1]
	}
	s.items = slices.Insert(s.items, idx, item)
	return true
}

func (s *Set[T]) Len() int {
	return len(s.items)
}

func (s *Set[T]) Cap() int {
	return s.capacity
}

func (s *Set[T]) Full() bool {
	return len(s.items) >= s.capacity
}

func (s *Set[T]) First() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[0], true
}

func (s *Set[T]) Last() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Items returns a copy of the members in ascending cmp order.
func (s *Set[T]) Items() []T {
	return slices.Clone(s.items)
}

func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}
