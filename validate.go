package avltree

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Validate checks every structural invariant of the tree and returns an
// *InvariantError for the first violation found, or nil.
//
// Checked: a single parentless root, parent/child back-references, that every
// slot is reachable from the root exactly once, BST order (left strictly
// less, right greater or equal), stored heights and AVL balance.
//
// Validate runs in O(n).
func (t *Tree[T]) Validate() error {
	n := t.nodes.Len()
	if n == 0 {
		return nil
	}

	root, err := t.scanLinks(n)
	if err != nil {
		return err
	}

	v := validator[T]{
		tree:    t,
		visited: roaring.New(),
	}
	if _, err := v.check(root, nil, nil); err != nil {
		return err
	}

	if reached := v.visited.GetCardinality(); reached != uint64(n) {
		return invariantf(root, "%d of %d slots reachable from the root", reached, n)
	}

	if got, _ := t.Root(); got != root {
		return invariantf(got, "root lookup disagrees with parentless slot %s", root)
	}

	return nil
}

// scanLinks checks link ranges and back-references slot by slot and returns
// the single root.
func (t *Tree[T]) scanLinks(n int) (Slot, error) {
	inRange := func(s Slot) bool {
		return !s.Valid() || int(s) < n
	}

	root := NoSlot
	for i := 0; i < n; i++ {
		s := Slot(i) //nolint:gosec // bounded by arena size
		node := t.nodes.Get(s)

		if !inRange(node.Left) || !inRange(node.Right) || !inRange(node.Parent) {
			return NoSlot, invariantf(s, "link out of range (left %s, right %s, parent %s)", node.Left, node.Right, node.Parent)
		}
		if node.Left.Valid() && node.Left == node.Right {
			return NoSlot, invariantf(s, "left and right both point to %s", node.Left)
		}

		if node.IsRoot() {
			if root.Valid() {
				return NoSlot, invariantf(s, "second parentless node (root is %s)", root)
			}
			root = s
			continue
		}

		parent := t.nodes.Get(node.Parent)
		if parent.Left != s && parent.Right != s {
			return NoSlot, invariantf(s, "parent %s does not link back", node.Parent)
		}
	}

	if !root.Valid() {
		return NoSlot, invariantf(NoSlot, "no parentless node")
	}
	return root, nil
}

type validator[T any] struct {
	tree    *Tree[T]
	visited *roaring.Bitmap
}

// bound is an exclusive subtree limit. Equal values are ordered by slot,
// since duplicates are stored in insertion order and slots grow with it.
type bound[T any] struct {
	value T
	slot  Slot
}

// check validates the subtree at s, whose (value, slot) keys must lie
// strictly between lo and hi, and returns its recomputed height. nil bounds
// are open.
func (v *validator[T]) check(s Slot, lo, hi *bound[T]) (uint32, error) {
	if !s.Valid() {
		return 0, nil
	}
	if !v.visited.CheckedAdd(uint32(s)) {
		return 0, invariantf(s, "reachable more than once")
	}

	t := v.tree
	node := t.nodes.Get(s)

	if lo != nil {
		if c := t.compare(node.Value, lo.value); c < 0 || (c == 0 && s < lo.slot) {
			return 0, invariantf(s, "value below lower bound of its subtree")
		}
	}
	if hi != nil {
		if c := t.compare(node.Value, hi.value); c > 0 || (c == 0 && s > hi.slot) {
			return 0, invariantf(s, "value not below upper bound of its subtree")
		}
	}

	for _, child := range []Slot{node.Left, node.Right} {
		if child.Valid() && t.nodes.Parent(child) != s {
			return 0, invariantf(child, "parent is %s, expected %s", t.nodes.Parent(child), s)
		}
	}

	here := &bound[T]{value: node.Value, slot: s}

	lh, err := v.check(node.Left, lo, here)
	if err != nil {
		return 0, err
	}
	rh, err := v.check(node.Right, here, hi)
	if err != nil {
		return 0, err
	}

	h := 1 + max(lh, rh)
	if node.Height != h {
		return 0, invariantf(s, "stored height %d, computed %d", node.Height, h)
	}
	if lh > rh+1 || rh > lh+1 {
		return 0, invariantf(s, "unbalanced (left %d, right %d)", lh, rh)
	}

	return h, nil
}
