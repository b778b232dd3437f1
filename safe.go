package arena

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// All operations are thread-safe but come with the overhead of mutex locking.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a new thread-safe arena.
func NewSafeArena(opts ...Option) *SafeArena {
	return &SafeArena{a: NewArena(opts...)}
}

// AllocNode thread-safely returns a zeroed node of nodeSize bytes.
func (s *SafeArena) AllocNode(nodeSize int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocNode(nodeSize)
}

// Clear thread-safely releases every slab.
func (s *SafeArena) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Clear()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}

// SafePool is a mutex-protected wrapper around Pool for concurrent access.
type SafePool[T any] struct {
	mu sync.Mutex
	p  *Pool[T]
}

// NewSafePool creates a new thread-safe pool.
func NewSafePool[T any](opts ...Option) *SafePool[T] {
	return &SafePool[T]{p: NewPool[T](opts...)}
}

// Alloc thread-safely returns a pointer to a zeroed T.
func (s *SafePool[T]) Alloc() *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Alloc()
}

// Clear thread-safely drops every slab.
func (s *SafePool[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Clear()
}

// Metrics thread-safely returns a snapshot of pool statistics.
func (s *SafePool[T]) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Metrics()
}
