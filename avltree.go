package avltree

import (
	"cmp"
	"context"
	"iter"
	"time"

	"github.com/hupe1980/avltree/internal/arena"
)

// Slot identifies a node in the tree's store. Slots are stable for the
// lifetime of the tree.
type Slot = arena.Slot

// NoSlot marks an absent link.
const NoSlot = arena.NoSlot

// Node is a read-only copy of a tree record.
type Node[T any] = arena.Node[T]

// Stats is a snapshot of tree counters.
type Stats struct {
	Nodes          int
	Height         int
	Inserts        uint64
	LeftRotations  uint64
	RightRotations uint64
}

// Tree is an AVL tree whose nodes live in an append-only arena.
//
// Values compare with the tree's comparison function. Equal values are
// permitted; a value equal to an existing one is placed in that node's right
// subtree, so equal values keep their insertion order.
//
// Tree is not safe for concurrent use. Wrap it in Synced to share it.
type Tree[T any] struct {
	nodes   *arena.Arena[T]
	compare func(a, b T) int
	opts    options
	timed   bool // false for the no-op collector

	inserts        uint64
	leftRotations  uint64
	rightRotations uint64
}

// New creates an empty tree ordered by cmp.Compare.
func New[T cmp.Ordered](opts ...Option) *Tree[T] {
	return NewFunc(cmp.Compare[T], opts...)
}

// NewWith creates a tree whose root holds value.
func NewWith[T cmp.Ordered](value T, opts ...Option) *Tree[T] {
	t := New[T](opts...)
	t.Insert(value)
	return t
}

// NewFunc creates an empty tree ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when
// a > b, and must describe a total order.
func NewFunc[T any](compare func(a, b T) int, opts ...Option) *Tree[T] {
	if compare == nil {
		panic("avltree: nil compare function")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	_, noop := o.metricsCollector.(NoopMetricsCollector)

	return &Tree[T]{
		nodes:   arena.New[T](o.capacity),
		compare: compare,
		opts:    o,
		timed:   !noop,
	}
}

// Size returns the number of values in the tree.
func (t *Tree[T]) Size() int {
	return t.nodes.Len()
}

// Root returns the slot of the root node, or false if the tree is empty.
//
// The root is found by following parent links from slot 0.
func (t *Tree[T]) Root() (Slot, bool) {
	n := t.nodes.Len()
	if n == 0 {
		return NoSlot, false
	}

	cur := Slot(0)
	for steps := 0; ; steps++ {
		parent := t.nodes.Parent(cur)
		if !parent.Valid() {
			return cur, true
		}
		if steps >= n {
			panic(invariantf(cur, "parent chain from slot 0 does not terminate"))
		}
		cur = parent
	}
}

// Height returns the height of the tree; 0 when empty.
func (t *Tree[T]) Height() int {
	root, ok := t.Root()
	if !ok {
		return 0
	}
	return int(t.nodes.Height(root))
}

// Node returns a copy of the record at slot.
// It panics with an *InvalidSlotError if slot is not occupied.
func (t *Tree[T]) Node(slot Slot) Node[T] {
	return t.nodes.Get(slot)
}

// Insert adds value to the tree, rebalances and returns the new node's slot.
func (t *Tree[T]) Insert(value T) Slot {
	var start time.Time
	if t.timed {
		start = time.Now()
	}

	root, ok := t.Root()
	if !ok {
		slot := t.nodes.Allocate(value, NoSlot)
		t.finishInsert(slot, 0, start)
		return slot
	}

	var slot Slot
	cur := root
	for {
		if t.compare(value, t.nodes.Value(cur)) < 0 {
			next := t.nodes.Left(cur)
			if !next.Valid() {
				slot = t.nodes.Allocate(value, cur)
				t.nodes.SetLeft(cur, slot)
				break
			}
			cur = next
		} else {
			next := t.nodes.Right(cur)
			if !next.Valid() {
				slot = t.nodes.Allocate(value, cur)
				t.nodes.SetRight(cur, slot)
				break
			}
			cur = next
		}
	}

	rotations := t.rebalance(cur)
	t.finishInsert(slot, rotations, start)
	return slot
}

func (t *Tree[T]) finishInsert(slot Slot, rotations int, start time.Time) {
	t.inserts++
	if t.timed {
		t.opts.metricsCollector.RecordInsert(time.Since(start), rotations)
	}
	t.opts.logger.LogInsert(context.Background(), slot, t.nodes.Len(), rotations)

	if t.opts.validate {
		if err := t.Validate(); err != nil {
			panic(err)
		}
	}
}

// Nth returns the k-th smallest value (0-indexed), or false if k is out of
// range.
func (t *Tree[T]) Nth(k int) (T, bool) {
	var zero T
	if k < 0 || k >= t.nodes.Len() {
		t.opts.metricsCollector.RecordQuery("nth", false)
		return zero, false
	}

	var (
		result T
		found  bool
		i      int
	)
	t.inorder(func(s Slot) bool {
		if i == k {
			result, found = t.nodes.Value(s), true
			return false
		}
		i++
		return true
	})

	t.opts.metricsCollector.RecordQuery("nth", found)
	return result, found
}

// Take returns the n smallest values in ascending order, or false if n is
// negative or larger than Size.
func (t *Tree[T]) Take(n int) ([]T, bool) {
	if n < 0 || n > t.nodes.Len() {
		t.opts.metricsCollector.RecordQuery("take", false)
		return nil, false
	}

	values := make([]T, 0, n)
	if n > 0 {
		t.inorder(func(s Slot) bool {
			values = append(values, t.nodes.Value(s))
			return len(values) < n
		})
	}

	t.opts.metricsCollector.RecordQuery("take", true)
	return values, true
}

// All returns an iterator over the values in ascending order.
// The tree must not be modified while iterating.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.inorder(func(s Slot) bool {
			return yield(t.nodes.Value(s))
		})
	}
}

// Stats returns a snapshot of the tree counters.
func (t *Tree[T]) Stats() Stats {
	return Stats{
		Nodes:          t.nodes.Len(),
		Height:         t.Height(),
		Inserts:        t.inserts,
		LeftRotations:  t.leftRotations,
		RightRotations: t.rightRotations,
	}
}

// inorder visits slots left, self, right until fn returns false.
func (t *Tree[T]) inorder(fn func(Slot) bool) {
	root, ok := t.Root()
	if !ok {
		return
	}

	stack := make([]Slot, 0, t.nodes.Height(root))
	cur := root
	for cur.Valid() || len(stack) > 0 {
		for cur.Valid() {
			stack = append(stack, cur)
			cur = t.nodes.Left(cur)
		}

		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(cur) {
			return
		}
		cur = t.nodes.Right(cur)
	}
}
