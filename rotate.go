package avltree

import (
	"context"
	"fmt"
)

// rebalance walks from slot up to the root, refreshing heights and rotating
// wherever the balance factor leaves [-1, 1]. It returns the number of single
// rotations applied.
func (t *Tree[T]) rebalance(slot Slot) int {
	rotations := 0

	for cur := slot; cur.Valid(); cur = t.nodes.Parent(cur) {
		t.updateHeight(cur)

		lh := t.nodes.Height(t.nodes.Left(cur))
		rh := t.nodes.Height(t.nodes.Right(cur))

		switch {
		case lh > rh+1:
			left := t.nodes.Left(cur)
			if t.nodes.Height(t.nodes.Right(left)) > t.nodes.Height(t.nodes.Left(left)) {
				t.mustRotate(RotateLeft, left)
				rotations++
			}
			cur = t.mustRotate(RotateRight, cur)
			rotations++
		case rh > lh+1:
			right := t.nodes.Right(cur)
			if t.nodes.Height(t.nodes.Left(right)) > t.nodes.Height(t.nodes.Right(right)) {
				t.mustRotate(RotateRight, right)
				rotations++
			}
			cur = t.mustRotate(RotateLeft, cur)
			rotations++
		}
	}

	return rotations
}

// mustRotate rotates at pivot and returns the new subtree top. A missing
// child here means case selection is broken, so it panics.
func (t *Tree[T]) mustRotate(kind RotationKind, pivot Slot) Slot {
	var (
		top Slot
		err error
	)
	if kind == RotateLeft {
		top, err = t.rotateLeft(pivot)
	} else {
		top, err = t.rotateRight(pivot)
	}
	if err != nil {
		panic(&InvariantError{Slot: pivot, Reason: "rebalance selected an impossible rotation", cause: err})
	}
	return top
}

// rotateLeft lifts pivot's right child into pivot's position:
//
//	  p                r
//	 / \              / \
//	a   r     =>     p   c
//	   / \          / \
//	  b   c        a   b
//
// It returns the new subtree top, or ErrRotation (tree unchanged) when pivot
// has no right child.
func (t *Tree[T]) rotateLeft(pivot Slot) (Slot, error) {
	top := t.nodes.Right(pivot)
	if !top.Valid() {
		return NoSlot, fmt.Errorf("%w: rotate left at slot %s", ErrRotation, pivot)
	}

	inner := t.nodes.Left(top)
	t.nodes.SetRight(pivot, inner)
	if inner.Valid() {
		t.nodes.SetParent(inner, pivot)
	}

	t.lift(pivot, top)
	t.nodes.SetLeft(top, pivot)

	t.updateHeight(pivot)
	t.updateHeight(top)

	t.leftRotations++
	t.opts.metricsCollector.RecordRotation(RotateLeft)
	t.opts.logger.LogRotation(context.Background(), RotateLeft, pivot, top)
	return top, nil
}

// rotateRight mirrors rotateLeft, lifting pivot's left child.
func (t *Tree[T]) rotateRight(pivot Slot) (Slot, error) {
	top := t.nodes.Left(pivot)
	if !top.Valid() {
		return NoSlot, fmt.Errorf("%w: rotate right at slot %s", ErrRotation, pivot)
	}

	inner := t.nodes.Right(top)
	t.nodes.SetLeft(pivot, inner)
	if inner.Valid() {
		t.nodes.SetParent(inner, pivot)
	}

	t.lift(pivot, top)
	t.nodes.SetRight(top, pivot)

	t.updateHeight(pivot)
	t.updateHeight(top)

	t.rightRotations++
	t.opts.metricsCollector.RecordRotation(RotateRight)
	t.opts.logger.LogRotation(context.Background(), RotateRight, pivot, top)
	return top, nil
}

// lift moves top into pivot's place under pivot's parent and makes pivot a
// child of top. The caller links pivot on the correct side of top.
func (t *Tree[T]) lift(pivot, top Slot) {
	parent := t.nodes.Parent(pivot)

	t.nodes.SetParent(top, parent)
	t.nodes.SetParent(pivot, top)

	if !parent.Valid() {
		return
	}

	switch pivot {
	case t.nodes.Left(parent):
		t.nodes.SetLeft(parent, top)
	case t.nodes.Right(parent):
		t.nodes.SetRight(parent, top)
	default:
		panic(invariantf(pivot, "parent %s does not link back", parent))
	}
}

func (t *Tree[T]) updateHeight(slot Slot) {
	lh := t.nodes.Height(t.nodes.Left(slot))
	rh := t.nodes.Height(t.nodes.Right(slot))
	t.nodes.SetHeight(slot, 1+max(lh, rh))
}
