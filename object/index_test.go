package object

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	arena "github.com/pavanmanishd/objarena"
)

func TestNextCommitIndexStartsAtZero(t *testing.T) {
	assert.Equal(t, uint64(0), firstIndex)
}

func TestNextCommitIndexSequential(t *testing.T) {
	start := NextCommitIndex()
	for k := uint64(1); k <= 100; k++ {
		require.Equal(t, start+k, NextCommitIndex())
	}
}

func TestNextCommitIndexPast32Bits(t *testing.T) {
	// Only ever move the counter forward: earlier values stay unused.
	const edge = uint64(1)<<32 - 2
	for {
		cur := commitIndex.Load()
		if cur >= edge || commitIndex.CompareAndSwap(cur, edge) {
			break
		}
	}

	prev := NextCommitIndex()
	for i := 0; i < 4; i++ {
		next := NextCommitIndex()
		require.Equal(t, prev+1, next)
		prev = next
	}
	assert.Greater(t, prev, uint64(1)<<32-1, "index must keep growing past 32 bits")

	c := NewCommitNode(NewGraph())
	assert.Equal(t, prev+1, c.Index)
}

func TestCommitIndexSharedAcrossGraphs(t *testing.T) {
	g1 := NewGraph(arena.WithBlocking(4))
	g2 := NewGraph(arena.WithBlocking(4))

	start := NewCommitNode(g1).Index
	want := start + 1
	for i := 0; i < 20; i++ {
		g := g1
		if i%2 == 1 {
			g = g2
		}
		c := NewCommitNode(g)
		require.Equal(t, want, c.Index)
		want++
	}

	// Clearing a graph never rewinds the counter.
	g1.Clear()
	assert.Equal(t, want, NewCommitNode(g1).Index)
}

func TestCommitIndexConcurrentGraphs(t *testing.T) {
	const graphs, perGraph = 8, 1000

	indices := make([][]uint64, graphs)
	var g errgroup.Group
	for i := 0; i < graphs; i++ {
		g.Go(func() error {
			gr := NewGraph(arena.WithBlocking(64))
			defer gr.Clear()
			for j := 0; j < perGraph; j++ {
				indices[i] = append(indices[i], NewCommitNode(gr).Index)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	var all []uint64
	for _, idx := range indices {
		// Each graph sees strictly increasing indices.
		require.True(t, sort.SliceIsSorted(idx, func(a, b int) bool { return idx[a] < idx[b] }))
		all = append(all, idx...)
	}
	sort.Slice(all, func(a, b int) bool { return all[a] < all[b] })
	for i := 1; i < len(all); i++ {
		require.Equal(t, all[i-1]+1, all[i], "indices must be unique with no gaps")
	}
	assert.Len(t, all, graphs*perGraph)
}

func TestInitCommitNode(t *testing.T) {
	var c Commit
	c.Date = 1700000000

	want := NextCommitIndex() + 1
	InitCommitNode(&c)

	assert.Equal(t, KindCommit, c.Type)
	assert.Equal(t, want, c.Index)
	assert.Equal(t, int64(1700000000), c.Date)
}
