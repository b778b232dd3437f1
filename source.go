package arena

// SlabSource supplies and reclaims the raw memory behind an Arena's slabs.
type SlabSource interface {
	// Acquire returns a buffer of exactly size bytes. Its contents need not
	// be zero.
	Acquire(size int) ([]byte, error)
	// Release takes back a buffer previously returned by Acquire.
	Release(buf []byte) error
}

// HeapSource allocates slabs on the Go heap. Release drops the buffer and
// leaves reclamation to the garbage collector.
type HeapSource struct{}

// Acquire implements SlabSource.
func (HeapSource) Acquire(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSlabSize
	}
	return make([]byte, size), nil
}

// Release implements SlabSource.
func (HeapSource) Release([]byte) error { return nil }

// MmapSource allocates slabs as anonymous private mappings outside the Go
// heap. The garbage collector does not scan this memory, so nodes carved
// from it must not hold Go pointers. Released slabs are unmapped and any
// stale node access faults.
type MmapSource struct{}

// Acquire implements SlabSource.
func (MmapSource) Acquire(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSlabSize
	}
	return mapAnon(size)
}

// Release implements SlabSource.
func (MmapSource) Release(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return unmap(buf)
}
