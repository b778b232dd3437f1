package arena

// DefaultBlocking is the number of nodes carved out of each slab.
const DefaultBlocking = 1024

// slabState is the bookkeeping shared by Arena and Pool. A node is a
// window of nodeSize elements of E; Arena uses E=byte, Pool uses E=T with
// nodeSize 1.
type slabState[E any] struct {
	remaining int   // nodes left in the current slab
	cursor    int   // offset of the next free node in the current slab
	slabs     [][]E // every slab since the last reset
	slabAlloc int   // capacity of slabs
	inUse     int   // nodes handed out since the last reset
}

// allocNr is the growth policy for the slab list.
func allocNr(n int) int {
	return (n + 16) * 3 / 2
}

// install appends slab and makes it current with blocking free nodes.
func (s *slabState[E]) install(slab []E, blocking int) {
	n := len(s.slabs)
	if n+1 > s.slabAlloc {
		next := allocNr(s.slabAlloc)
		if next < n+1 {
			next = n + 1
		}
		grown := make([][]E, n, next)
		copy(grown, s.slabs)
		s.slabs = grown
		s.slabAlloc = next
	}
	s.slabs = s.slabs[:n+1]
	s.slabs[n] = slab
	s.remaining = blocking
	s.cursor = 0
}

// take returns the next node of the current slab, zeroed.
// The caller must have ensured remaining > 0.
func (s *slabState[E]) take(nodeSize int) []E {
	s.remaining--
	cur := s.slabs[len(s.slabs)-1]
	end := s.cursor + nodeSize
	node := cur[s.cursor:end:end]
	s.cursor = end
	s.inUse++
	clear(node)
	return node
}

// reset forgets every slab and returns the state to its zero value.
func (s *slabState[E]) reset() {
	clear(s.slabs)
	*s = slabState[E]{}
}

func (s *slabState[E]) numSlabs() int {
	return len(s.slabs)
}
