package arena

import (
	"fmt"
	"math"

	"github.com/hupe1980/avltree/internal/container"
)

// Slot is the index of a node in the arena.
type Slot uint32

// NoSlot marks an absent link (no child, no parent).
const NoSlot = Slot(math.MaxUint32)

// MaxSlots is the number of slots an arena can hand out.
// NoSlot is reserved, so the last usable slot is MaxSlots-1.
const MaxSlots = math.MaxUint32

// Valid reports whether s refers to a node rather than an absent link.
func (s Slot) Valid() bool {
	return s != NoSlot
}

func (s Slot) String() string {
	if s == NoSlot {
		return "none"
	}
	return fmt.Sprintf("%d", uint32(s))
}

// Node is a single tree record.
//
// Height is 1 for a leaf; an absent child counts as height 0.
type Node[T any] struct {
	Left   Slot
	Right  Slot
	Parent Slot
	Height uint32
	Value  T
}

// IsRoot reports whether the node has no parent.
func (n Node[T]) IsRoot() bool {
	return !n.Parent.Valid()
}

// InvalidSlotError is the panic value for access to an unoccupied slot.
type InvalidSlotError struct {
	Slot Slot
	Len  int
}

func (e *InvalidSlotError) Error() string {
	return fmt.Sprintf("arena: slot %s out of range [0,%d)", e.Slot, e.Len)
}

// Stats tracks arena usage.
type Stats struct {
	Slots    int // Occupied slots
	Segments int // Allocated storage segments
}

// Arena is the append-only node store.
//
// Arena is not safe for concurrent use.
type Arena[T any] struct {
	nodes *container.Segmented[Node[T]]
}

// New creates an empty Arena. capacityHint pre-sizes the backing storage.
func New[T any](capacityHint int) *Arena[T] {
	return &Arena[T]{
		nodes: container.NewSegmented[Node[T]](capacityHint),
	}
}

// Allocate appends a leaf holding value with the given parent link and
// returns its slot.
func (a *Arena[T]) Allocate(value T, parent Slot) Slot {
	if uint64(a.nodes.Len()) >= MaxSlots {
		panic(fmt.Sprintf("arena: slot space exhausted (%d nodes)", a.nodes.Len()))
	}
	idx := a.nodes.Append(Node[T]{
		Left:   NoSlot,
		Right:  NoSlot,
		Parent: parent,
		Height: 1,
		Value:  value,
	})
	return Slot(idx) //nolint:gosec // bounded by MaxSlots above
}

// Get returns a copy of the node at slot.
func (a *Arena[T]) Get(slot Slot) Node[T] {
	return *a.at(slot)
}

// Value returns the value stored at slot.
func (a *Arena[T]) Value(slot Slot) T {
	return a.at(slot).Value
}

// Left returns the left child link of slot.
func (a *Arena[T]) Left(slot Slot) Slot {
	return a.at(slot).Left
}

// Right returns the right child link of slot.
func (a *Arena[T]) Right(slot Slot) Slot {
	return a.at(slot).Right
}

// Parent returns the parent link of slot.
func (a *Arena[T]) Parent(slot Slot) Slot {
	return a.at(slot).Parent
}

// Height returns the stored height of slot, or 0 for NoSlot.
func (a *Arena[T]) Height(slot Slot) uint32 {
	if !slot.Valid() {
		return 0
	}
	return a.at(slot).Height
}

// SetHeight sets the stored height of slot.
func (a *Arena[T]) SetHeight(slot Slot, h uint32) {
	a.at(slot).Height = h
}

// SetLeft sets the left child link of slot.
func (a *Arena[T]) SetLeft(slot, child Slot) {
	a.at(slot).Left = child
}

// SetRight sets the right child link of slot.
func (a *Arena[T]) SetRight(slot, child Slot) {
	a.at(slot).Right = child
}

// SetParent sets the parent link of slot.
func (a *Arena[T]) SetParent(slot, parent Slot) {
	a.at(slot).Parent = parent
}

// Len returns the number of occupied slots.
func (a *Arena[T]) Len() int {
	return a.nodes.Len()
}

// Stats returns the current arena statistics.
func (a *Arena[T]) Stats() Stats {
	return Stats{
		Slots:    a.nodes.Len(),
		Segments: a.nodes.Segments(),
	}
}

func (a *Arena[T]) String() string {
	stats := a.Stats()
	return fmt.Sprintf("Arena{slots: %d, segments: %d}", stats.Slots, stats.Segments)
}

func (a *Arena[T]) at(slot Slot) *Node[T] {
	if !slot.Valid() || int(slot) >= a.nodes.Len() {
		panic(&InvalidSlotError{Slot: slot, Len: a.nodes.Len()})
	}
	return a.nodes.At(int(slot))
}
