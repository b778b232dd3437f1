package object

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	arena "github.com/pavanmanishd/objarena"
)

func TestGraphClear(t *testing.T) {
	g := NewGraph(arena.WithBlocking(4))
	for i := 0; i < 9; i++ {
		NewObjectNode(g)
		NewBlobNode(g)
		NewTreeNode(g)
		NewCommitNode(g)
		NewTagNode(g)
	}
	for k, m := range g.Metrics() {
		require.Equal(t, 3, m.NumSlabs, "kind %s", k)
		require.Equal(t, 9, m.NodesInUse, "kind %s", k)
	}

	g.Clear()

	metrics := g.Metrics()
	assert.Len(t, metrics, 5)
	for k, m := range metrics {
		assert.Zero(t, m.NumSlabs, "kind %s", k)
		assert.Zero(t, m.NodesInUse, "kind %s", k)
	}

	b := NewBlobNode(g)
	assert.Equal(t, Blob{Object: Object{Type: KindBlob}}, *b)
}

func TestGraphLogsClear(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := NewGraph(arena.WithBlocking(2), arena.WithLogger(logger))

	NewCommitNode(g)
	NewCommitNode(g)
	NewCommitNode(g)
	g.Clear()

	out := buf.String()
	assert.Contains(t, out, "clearing graph")
	assert.Contains(t, out, "commits=3")
	assert.Contains(t, out, "pool cleared")
}
