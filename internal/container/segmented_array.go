// Package container implements container data structures.
package container

import "fmt"

const (
	// segmentBits determines the size of each segment.
	// 10 bits = 1024 items per segment.
	segmentBits = 10
	segmentSize = 1 << segmentBits
	segmentMask = segmentSize - 1
)

// Segmented is an append-only, segmented array.
//
// Items are stored in fixed-size segments that are never reallocated, so a
// pointer returned by At stays valid for the lifetime of the array. Growth
// only appends to the segment directory.
//
// Segmented is not safe for concurrent use; callers serialize access.
type Segmented[T any] struct {
	segments []*Segment[T]
	length   int
}

// Segment is a fixed-size array of items.
type Segment[T any] struct {
	items [segmentSize]T
}

// NewSegmented creates a new Segmented array.
// capacityHint pre-sizes the segment directory; segments themselves are
// allocated lazily.
func NewSegmented[T any](capacityHint int) *Segmented[T] {
	if capacityHint < 0 {
		capacityHint = 0
	}
	dir := (capacityHint + segmentMask) >> segmentBits
	return &Segmented[T]{
		segments: make([]*Segment[T], 0, dir),
	}
}

// Append stores value at the next index and returns that index.
func (sa *Segmented[T]) Append(value T) int {
	index := sa.length
	segIdx := index >> segmentBits

	// Slow path: grow
	if segIdx == len(sa.segments) {
		sa.segments = append(sa.segments, &Segment[T]{})
	}

	sa.segments[segIdx].items[index&segmentMask] = value
	sa.length++
	return index
}

// At returns a pointer to the item at the given index.
// It panics if index is out of bounds.
func (sa *Segmented[T]) At(index int) *T {
	if index < 0 || index >= sa.length {
		panic(fmt.Sprintf("container: index %d out of range [0,%d)", index, sa.length))
	}
	return &sa.segments[index>>segmentBits].items[index&segmentMask]
}

// Len returns the number of appended items.
func (sa *Segmented[T]) Len() int {
	return sa.length
}

// Segments returns the number of allocated segments.
func (sa *Segmented[T]) Segments() int {
	return len(sa.segments)
}
