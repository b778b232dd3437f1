package arena

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Metrics contains statistical information about an Arena or Pool.
type Metrics struct {
	NodeSize      int     // Bytes per node
	Blocking      int     // Nodes per slab
	NumSlabs      int     // Slabs currently held
	SlabCapacity  int     // Capacity of the slab list
	NodesInUse    int     // Nodes handed out since the last Clear
	NodeCapacity  int     // Nodes the held slabs can hold
	BytesInUse    uint64  // NodesInUse * NodeSize
	BytesReserved uint64  // NodeCapacity * NodeSize
	Utilization   float64 // Ratio of nodes in use to node capacity (0.0-1.0)
}

func (m Metrics) String() string {
	return fmt.Sprintf(
		"Metrics{slabs: %d, nodes: %d/%d, reserved: %s, used: %s, usage: %.1f%%}",
		m.NumSlabs,
		m.NodesInUse,
		m.NodeCapacity,
		humanize.IBytes(m.BytesReserved),
		humanize.IBytes(m.BytesInUse),
		m.Utilization*100,
	)
}

func newMetrics[E any](s *slabState[E], nodeSize, blocking int) Metrics {
	m := Metrics{
		NodeSize:     nodeSize,
		Blocking:     blocking,
		NumSlabs:     s.numSlabs(),
		SlabCapacity: s.slabAlloc,
		NodesInUse:   s.inUse,
		NodeCapacity: s.numSlabs() * blocking,
	}
	m.BytesInUse = uint64(m.NodesInUse) * uint64(nodeSize)
	m.BytesReserved = uint64(m.NodeCapacity) * uint64(nodeSize)
	if m.NodeCapacity > 0 {
		m.Utilization = float64(m.NodesInUse) / float64(m.NodeCapacity)
	}
	return m
}

// NumSlabs returns the number of slabs currently held by the arena.
func (a *Arena) NumSlabs() int {
	return a.s.numSlabs()
}

// NodesInUse returns the number of nodes handed out since the last Clear.
func (a *Arena) NodesInUse() int {
	return a.s.inUse
}

// Remaining returns the number of free nodes left in the current slab.
func (a *Arena) Remaining() int {
	return a.s.remaining
}

// Blocking returns the number of nodes per slab.
func (a *Arena) Blocking() int {
	return a.blocking
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() Metrics {
	return newMetrics(&a.s, a.nodeSize, a.blocking)
}

// NumSlabs returns the number of slabs currently held by the pool.
func (p *Pool[T]) NumSlabs() int {
	return p.s.numSlabs()
}

// NodesInUse returns the number of values handed out since the last Clear.
func (p *Pool[T]) NodesInUse() int {
	return p.s.inUse
}

// Remaining returns the number of free values left in the current slab.
func (p *Pool[T]) Remaining() int {
	return p.s.remaining
}

// Blocking returns the number of values per slab.
func (p *Pool[T]) Blocking() int {
	return p.blocking
}

// Metrics returns a snapshot of pool statistics.
func (p *Pool[T]) Metrics() Metrics {
	return newMetrics(&p.s, p.NodeSize(), p.blocking)
}
