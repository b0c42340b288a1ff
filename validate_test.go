package avltree

import (
	"cmp"
	"errors"
	"testing"

	"github.com/hupe1980/avltree/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// perfect returns the tree built from 0..6: root 3, children 1 and 5.
// Value v sits at slot v.
func perfect(t *testing.T) *Tree[int] {
	t.Helper()
	tree := New[int]()
	insertAll(tree, testutil.Ascending(7))
	requireValid(t, tree)
	return tree
}

func TestValidate_DetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(tree *Tree[int])
		reason  string
	}{
		{
			name:    "stale height",
			corrupt: func(tree *Tree[int]) { tree.nodes.SetHeight(0, 2) },
			reason:  "stored height",
		},
		{
			name:    "second root",
			corrupt: func(tree *Tree[int]) { tree.nodes.SetParent(6, NoSlot) },
			reason:  "second parentless",
		},
		{
			name:    "broken back-reference",
			corrupt: func(tree *Tree[int]) { tree.nodes.SetParent(0, 5) },
			reason:  "does not link back",
		},
		{
			name: "shared child",
			corrupt: func(tree *Tree[int]) {
				tree.nodes.SetLeft(4, 0)
			},
			reason: "parent is",
		},
		{
			name: "detached cycle",
			corrupt: func(tree *Tree[int]) {
				// 4 and 6 point at each other and no longer hang under 5.
				tree.nodes.SetLeft(5, NoSlot)
				tree.nodes.SetRight(5, NoSlot)
				tree.nodes.SetHeight(5, 1)
				tree.nodes.SetParent(4, 6)
				tree.nodes.SetLeft(6, 4)
				tree.nodes.SetParent(6, 4)
				tree.nodes.SetRight(4, 6)
			},
			reason: "5 of 7 slots reachable",
		},
		{
			name:    "link out of range",
			corrupt: func(tree *Tree[int]) { tree.nodes.SetRight(6, 42) },
			reason:  "out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := perfect(t)
			tt.corrupt(tree)

			err := tree.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvariant)

			var ie *InvariantError
			require.True(t, errors.As(err, &ie))
			assert.Contains(t, ie.Error(), tt.reason)
		})
	}
}

func TestValidate_DetectsOrderViolation(t *testing.T) {
	reverse := false
	tree := NewFunc(func(a, b int) int {
		if reverse {
			return cmp.Compare(b, a)
		}
		return cmp.Compare(a, b)
	})
	insertAll(tree, []int{2, 1, 3})
	requireValid(t, tree)

	reverse = true

	err := tree.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bound")
}

func TestValidate_RotatedDuplicates(t *testing.T) {
	tree := New[int]()
	insertAll(tree, []int{0, 0, 0})

	// The left rotation lifts slot 1 above the equal value at slot 0.
	root, ok := tree.Root()
	require.True(t, ok)
	assert.Equal(t, Slot(1), root)
	assert.Equal(t, Slot(0), tree.Node(root).Left)
	assert.Equal(t, Slot(2), tree.Node(root).Right)

	require.NoError(t, tree.Validate())
}

func TestValidate_DetectsDuplicateOutOfOrder(t *testing.T) {
	t.Run("later slot in left subtree", func(t *testing.T) {
		tree := New[int]()
		insertAll(tree, []int{0, 0, 0})

		// Swap the children of the root: links, parents and heights stay
		// consistent, only the insertion order of the duplicates breaks.
		tree.nodes.SetLeft(1, 2)
		tree.nodes.SetRight(1, 0)

		err := tree.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvariant)
		assert.Contains(t, err.Error(), "not below upper bound")
	})

	t.Run("earlier slot in right subtree", func(t *testing.T) {
		tree := New[int]()
		insertAll(tree, []int{5, 5})

		// Make slot 1 the root with the earlier slot 0 as its right child.
		tree.nodes.SetRight(0, NoSlot)
		tree.nodes.SetParent(0, 1)
		tree.nodes.SetParent(1, NoSlot)
		tree.nodes.SetRight(1, 0)
		tree.nodes.SetHeight(0, 1)
		tree.nodes.SetHeight(1, 2)

		err := tree.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvariant)
		assert.Contains(t, err.Error(), "below lower bound")
	})
}

func TestValidate_DetectsImbalance(t *testing.T) {
	tree := buildChain(t)

	err := tree.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvariant)
	assert.Contains(t, err.Error(), "unbalanced (left 0, right 2)")
}

func TestWithValidation(t *testing.T) {
	t.Run("healthy inserts do not panic", func(t *testing.T) {
		tree := New[int](WithValidation(true))
		assert.NotPanics(t, func() {
			insertAll(tree, testutil.NewRNG(3).UniformInts(400, 50))
		})
	})

	t.Run("all equal values do not panic", func(t *testing.T) {
		tree := New[int](WithValidation(true))
		assert.NotPanics(t, func() {
			for range 100 {
				tree.Insert(7)
			}
		})
		assert.Equal(t, 100, tree.Size())
		assert.NoError(t, tree.Validate())
	})

	t.Run("corruption off the insert path panics", func(t *testing.T) {
		tree := New[int](WithValidation(true))
		insertAll(tree, testutil.Ascending(7))
		tree.nodes.SetHeight(0, 2)

		defer func() {
			r := recover()
			require.NotNil(t, r)
			err, ok := r.(error)
			require.True(t, ok)
			assert.ErrorIs(t, err, ErrInvariant)
		}()
		tree.Insert(7)
	})
}

func TestInvariantError(t *testing.T) {
	err := invariantf(3, "broken %s", "thing")
	assert.Equal(t, "avltree: invariant violated at slot 3: broken thing", err.Error())
	assert.ErrorIs(t, err, ErrInvariant)
	assert.NoError(t, err.Unwrap())

	wrapped := &InvariantError{Slot: NoSlot, Reason: "r", cause: ErrRotation}
	assert.Contains(t, wrapped.Error(), "slot none")
	assert.ErrorIs(t, wrapped, ErrRotation)
}
