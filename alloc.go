package arena

import (
	"log/slog"
	"unsafe"
)

// Pool is a slab allocator for values of one type. Slabs are []T on the Go
// heap, so T may hold pointers. Not goroutine-safe. Use SafePool for
// concurrent access.
type Pool[T any] struct {
	s        slabState[T]
	blocking int
	logger   *slog.Logger
}

// NewPool creates an empty Pool. No slab is allocated until the first Alloc.
func NewPool[T any](opts ...Option) *Pool[T] {
	o := applyOptions(opts)
	return &Pool[T]{
		blocking: o.blocking,
		logger:   o.logger,
	}
}

// Alloc returns a pointer to a zeroed T. The pointer is never handed out
// again until Clear.
func (p *Pool[T]) Alloc() *T {
	if p.s.remaining == 0 {
		p.s.install(make([]T, p.blocking), p.blocking)
		p.logger.Debug("slab allocated", "node_size", p.NodeSize(), "blocking", p.blocking, "slabs", p.s.numSlabs())
	}
	return &p.s.take(1)[0]
}

// Clear drops every slab and resets the pool to its freshly created state.
// Pointers returned before Clear must not be used afterwards.
func (p *Pool[T]) Clear() {
	n := p.s.numSlabs()
	p.s.reset()
	if n > 0 {
		p.logger.Debug("pool cleared", "slabs", n)
	}
}

// NodeSize returns the size in bytes of one T.
func (p *Pool[T]) NodeSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// New returns a zeroed *T carved from a byte arena, or nil if T has zero
// size. T must not contain Go pointers: slab memory may live outside the
// heap and is never scanned by the garbage collector. Every call against
// one Arena must use the same T until Clear.
func New[T any](a *Arena) *T {
	var zero T
	b := a.AllocNode(int(unsafe.Sizeof(zero)))
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}
