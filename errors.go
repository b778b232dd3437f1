package arena

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSlabSize is returned by a SlabSource asked for a non-positive size.
	ErrInvalidSlabSize = errors.New("arena: invalid slab size")
	// ErrMmapUnsupported is returned by MmapSource on platforms without mmap.
	ErrMmapUnsupported = errors.New("arena: mmap slabs not supported on this platform")
)

// SlabError reports a failure to obtain memory for a new slab.
// Arena panics with a *SlabError since a half-grown arena cannot continue.
//
// The underlying error can be accessed via errors.Unwrap.
type SlabError struct {
	NodeSize int // bytes per node
	Blocking int // nodes per slab
	Size     int // requested slab size in bytes, 0 if it overflows int
	Slabs    int // slabs held when the request failed
	cause    error
}

func (e *SlabError) Error() string {
	return fmt.Sprintf("arena: acquire slab of %d x %d-byte nodes (holding %d slabs): %v",
		e.Blocking, e.NodeSize, e.Slabs, e.cause)
}

func (e *SlabError) Unwrap() error { return e.cause }
