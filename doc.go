// Package arena implements fixed-size slab allocators for Go.
//
// # Overview
//
// A slab allocator carves many same-sized nodes out of large blocks
// ("slabs") that each hold a fixed number of nodes, and releases them all at
// once. There is no per-node free. This suits workloads that create very
// large numbers of small, long-lived records of a few fixed shapes, such as
// the parsed objects of a version-control object graph.
//
// Two allocators share one slab engine:
//
//   - Arena hands out zeroed []byte nodes of a caller-chosen size. Slab
//     memory comes from a SlabSource (Go heap or anonymous mmap).
//   - Pool[T] hands out zeroed *T values from []T slabs on the Go heap, so
//     T may hold pointers. The node size is fixed by the type.
//
// # Basic Usage
//
//	a := arena.NewArena()      // DefaultBlocking nodes per slab
//	defer a.Clear()            // release every slab
//
//	node := a.AllocNode(64)    // 64 zeroed bytes
//
//	h := arena.NewArena(arena.WithSlabSource(arena.MmapSource{}))
//	hdr := arena.New[Header](h) // pointer-free typed node, off-heap
//
//	p := arena.NewPool[Record](arena.WithBlocking(4096))
//	r := p.Alloc()             // zeroed *Record
//	p.Clear()
//
// # Thread Safety
//
// Arena and Pool are not thread-safe. Confine each one to a goroutine, or
// wrap it with SafeArena or SafePool.
//
// # Memory Layout
//
// Each slab holds Blocking nodes laid out back to back. The slab list grows
// by (n+16)*3/2 entries when full, so appending a slab is O(1) amortized.
// After N allocations a fresh allocator holds exactly ceil(N/Blocking) slabs.
//
// # Performance Characteristics
//
//   - Allocation: O(1) amortized, plus zeroing nodeSize bytes
//   - Clear: O(number of slabs)
//   - Memory overhead: one slice header per slab
//
// # Important Notes
//
//   - Nodes are only valid until the owning allocator is cleared
//   - All nodes of one Arena must have the same size until Clear
//   - Nodes carved from MmapSource slabs must not hold Go pointers
//   - Failure to obtain a slab panics with a *SlabError
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Println(m) // Metrics{slabs: 2, nodes: 1025/2048, reserved: 128 KiB, ...}
package arena
