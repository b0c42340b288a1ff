package avltree

import "sync"

// Synced serializes access to a Tree behind a single mutex.
//
// Reads take the same lock as writes: a rotation briefly breaks parent/child
// back-references, so no reader may observe the tree mid-insert.
type Synced[T any] struct {
	mu   sync.Mutex
	tree *Tree[T]
}

// NewSynced wraps tree. The caller must not use tree directly afterwards.
func NewSynced[T any](tree *Tree[T]) *Synced[T] {
	return &Synced[T]{tree: tree}
}

// Insert adds value and returns its slot.
func (s *Synced[T]) Insert(value T) Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Insert(value)
}

// Nth returns the k-th smallest value.
func (s *Synced[T]) Nth(k int) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Nth(k)
}

// Take returns the n smallest values in ascending order.
func (s *Synced[T]) Take(n int) ([]T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Take(n)
}

// Values returns every value in ascending order.
func (s *Synced[T]) Values() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, _ := s.tree.Take(s.tree.Size())
	return values
}

// Size returns the number of values.
func (s *Synced[T]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Size()
}

// Root returns the root slot.
func (s *Synced[T]) Root() (Slot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Root()
}

// Node returns a copy of the record at slot.
func (s *Synced[T]) Node(slot Slot) Node[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Node(slot)
}

// Validate checks every structural invariant.
func (s *Synced[T]) Validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Validate()
}

// Stats returns a snapshot of the tree counters.
func (s *Synced[T]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Stats()
}
