package arena

import (
	"log/slog"
	"math"
)

// Arena hands out zeroed, fixed-size byte nodes from growable slabs.
// Not goroutine-safe. Use SafeArena for concurrent access.
//
// All calls against one Arena must use the same node size until Clear.
// Nodes must not hold Go pointers when the slab source is off-heap.
type Arena struct {
	s        slabState[byte]
	nodeSize int // node size of the current slab
	blocking int
	source   SlabSource
	logger   *slog.Logger
}

// NewArena creates an empty Arena. No slab is allocated until the first
// AllocNode.
func NewArena(opts ...Option) *Arena {
	o := applyOptions(opts)
	return &Arena{
		blocking: o.blocking,
		source:   o.source,
		logger:   o.logger,
	}
}

// AllocNode returns a zeroed node of nodeSize bytes. The node stays valid
// until Clear and never overlaps any other node of this arena.
// Returns nil if nodeSize <= 0.
//
// AllocNode panics with a *SlabError if a new slab cannot be obtained.
func (a *Arena) AllocNode(nodeSize int) []byte {
	if nodeSize <= 0 {
		return nil
	}
	if a.s.remaining == 0 {
		a.newSlab(nodeSize)
	}
	return a.s.take(nodeSize)
}

// newSlab installs a slab for a.blocking nodes of nodeSize bytes.
func (a *Arena) newSlab(nodeSize int) {
	if nodeSize > math.MaxInt/a.blocking {
		a.slabFailed(nodeSize, 0, ErrInvalidSlabSize)
	}
	size := a.blocking * nodeSize
	buf, err := a.source.Acquire(size)
	if err == nil && len(buf) != size {
		_ = a.source.Release(buf)
		buf, err = nil, ErrInvalidSlabSize
	}
	if err != nil {
		a.slabFailed(nodeSize, size, err)
	}
	a.s.install(buf, a.blocking)
	a.nodeSize = nodeSize
	a.logger.Debug("slab allocated", "node_size", nodeSize, "blocking", a.blocking, "slabs", a.s.numSlabs())
}

func (a *Arena) slabFailed(nodeSize, size int, err error) {
	serr := &SlabError{
		NodeSize: nodeSize,
		Blocking: a.blocking,
		Size:     size,
		Slabs:    a.s.numSlabs(),
		cause:    err,
	}
	a.logger.Error("slab allocation failed",
		"node_size", nodeSize, "blocking", a.blocking, "slabs", serr.Slabs, "error", err)
	panic(serr)
}

// Clear releases every slab back to the slab source and resets the arena
// to its freshly created state. Nodes allocated before Clear must not be
// used afterwards.
func (a *Arena) Clear() {
	n := a.s.numSlabs()
	for i := n - 1; i >= 0; i-- {
		if err := a.source.Release(a.s.slabs[i]); err != nil {
			a.logger.Warn("slab release failed", "slab", i, "error", err)
		}
	}
	a.s.reset()
	a.nodeSize = 0
	if n > 0 {
		a.logger.Debug("arena cleared", "slabs", n)
	}
}
