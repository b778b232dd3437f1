// Package object defines the record kinds of an object graph and allocates
// them from per-kind slab pools.
package object

import (
	"log/slog"

	arena "github.com/pavanmanishd/objarena"
)

// Graph owns one pool per record kind. Records created through a Graph live
// until Clear. Not goroutine-safe: confine a Graph to one goroutine.
type Graph struct {
	objects *arena.Pool[AnyObject]
	blobs   *arena.Pool[Blob]
	trees   *arena.Pool[Tree]
	commits *arena.Pool[Commit]
	tags    *arena.Pool[Tag]
	logger  *slog.Logger
}

// NewGraph creates a Graph. The options apply to every per-kind pool.
func NewGraph(opts ...arena.Option) *Graph {
	g := &Graph{
		objects: arena.NewPool[AnyObject](opts...),
		blobs:   arena.NewPool[Blob](opts...),
		trees:   arena.NewPool[Tree](opts...),
		commits: arena.NewPool[Commit](opts...),
		tags:    arena.NewPool[Tag](opts...),
		logger:  arena.LoggerOf(opts...),
	}
	return g
}

// Clear releases every record of every kind. Commit indices already handed
// out are not reused.
func (g *Graph) Clear() {
	g.logger.Debug("clearing graph",
		"objects", g.objects.NodesInUse(),
		"blobs", g.blobs.NodesInUse(),
		"trees", g.trees.NodesInUse(),
		"commits", g.commits.NodesInUse(),
		"tags", g.tags.NodesInUse(),
	)
	g.objects.Clear()
	g.blobs.Clear()
	g.trees.Clear()
	g.commits.Clear()
	g.tags.Clear()
}

// Metrics returns a snapshot of every per-kind pool, keyed by kind.
// The generic slot pool is reported under KindNone.
func (g *Graph) Metrics() map[Kind]arena.Metrics {
	return map[Kind]arena.Metrics{
		KindNone:   g.objects.Metrics(),
		KindBlob:   g.blobs.Metrics(),
		KindTree:   g.trees.Metrics(),
		KindCommit: g.commits.Metrics(),
		KindTag:    g.tags.Metrics(),
	}
}
