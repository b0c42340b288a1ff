package avltree

import (
	"slices"
	"testing"

	"github.com/hupe1980/avltree/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSynced_ConcurrentInserts(t *testing.T) {
	const (
		writers   = 8
		perWriter = 250
	)

	s := NewSynced(New[int]())

	var g errgroup.Group
	for w := 0; w < writers; w++ {
		g.Go(func() error {
			rng := testutil.NewRNG(int64(w))
			for _, v := range rng.UniformInts(perWriter, 1000) {
				s.Insert(v)
			}
			return nil
		})
		g.Go(func() error {
			for k := 0; k < perWriter; k++ {
				s.Nth(k)
				s.Size()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, writers*perWriter, s.Size())
	require.NoError(t, s.Validate())

	values := s.Values()
	assert.Len(t, values, writers*perWriter)
	assert.True(t, slices.IsSorted(values))

	stats := s.Stats()
	assert.Equal(t, uint64(writers*perWriter), stats.Inserts)
	assert.LessOrEqual(t, float64(stats.Height), testutil.AVLHeightBound(stats.Nodes))
}

func TestSynced_Delegates(t *testing.T) {
	s := NewSynced(New[string]())

	slot := s.Insert("b")
	s.Insert("a")
	s.Insert("c")

	root, ok := s.Root()
	require.True(t, ok)
	assert.Equal(t, "b", s.Node(root).Value)
	assert.Equal(t, "b", s.Node(slot).Value)

	v, ok := s.Nth(2)
	require.True(t, ok)
	assert.Equal(t, "c", v)

	first, ok := s.Take(2)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, first)

	_, ok = s.Nth(3)
	assert.False(t, ok)
}
