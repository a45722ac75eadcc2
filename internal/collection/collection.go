// Package collection provides the generic in-memory record store backing
// every pillar's entity collections. Records live in insertion order and are
// only ever replaced wholesale, never mutated in place.
package collection

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("record not found")

// Store holds an ordered collection of records of one type.
//
// Identifiers are assigned from a monotonically increasing counter seeded at
// the highest seed id, so a delete followed by an add can never collide with
// a surviving record.
type Store[T any] struct {
	mu     sync.RWMutex
	items  []T
	nextID int

	id    func(T) int
	setID func(T, int) T
	seed  []T
}

// New creates a store seeded with the given records. The id and setID
// accessors tell the store how to read and stamp a record's identifier.
func New[T any](id func(T) int, setID func(T, int) T, seed []T) *Store[T] {
	s := &Store[T]{
		id:    id,
		setID: setID,
		seed:  append([]T(nil), seed...),
	}
	s.load()

	return s
}

func (s *Store[T]) load() {
	s.items = append([]T(nil), s.seed...)

	s.nextID = 0
	for _, item := range s.items {
		if id := s.id(item); id > s.nextID {
			s.nextID = id
		}
	}
}

// List returns a copy of the collection in insertion order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]T(nil), s.items...)
}

// Get returns the record with the given id, or ErrNotFound.
func (s *Store[T]) Get(id int) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if s.id(item) == id {
			return item, nil
		}
	}

	var zero T

	return zero, ErrNotFound
}

// Add stamps the record with the next identifier and appends it.
func (s *Store[T]) Add(item T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	item = s.setID(item, s.nextID)
	s.items = append(s.items, item)

	return item
}

// Update replaces the record whose id matches, leaving order unchanged.
// It reports whether a record was replaced; an absent id is a no-op.
func (s *Store[T]) Update(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.items {
		if s.id(existing) == s.id(item) {
			s.items[i] = item
			return true
		}
	}

	return false
}

// Remove filters out the record with the given id. Absent ids are a no-op.
func (s *Store[T]) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if s.id(item) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Toggle applies the mutation to the record with the given id and stores the
// result. It returns the updated record and reports whether the id was found.
func (s *Store[T]) Toggle(id int, mutate func(T) T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if s.id(item) == id {
			updated := mutate(item)
			s.items[i] = updated

			return updated, true
		}
	}

	var zero T

	return zero, false
}

// Reset discards all mutations and reloads the seed records.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.load()
}

// Len returns the current number of records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}
