package object

import (
	"fmt"
	"unsafe"
)

// Kind is the discriminant stamped into every record header.
type Kind int8

const (
	// KindNone marks a generic slot that has not been given a concrete kind.
	KindNone Kind = iota
	KindCommit
	KindTree
	KindBlob
	KindTag
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindCommit:
		return "commit"
	case KindTree:
		return "tree"
	case KindBlob:
		return "blob"
	case KindTag:
		return "tag"
	default:
		return fmt.Sprintf("kind(%d)", int8(k))
	}
}

// NodeSize returns the slab node size used for records of kind k.
// KindNone reports the size of the generic AnyObject slot.
func NodeSize(k Kind) uintptr {
	switch k {
	case KindCommit:
		return unsafe.Sizeof(Commit{})
	case KindTree:
		return unsafe.Sizeof(Tree{})
	case KindBlob:
		return unsafe.Sizeof(Blob{})
	case KindTag:
		return unsafe.Sizeof(Tag{})
	default:
		return unsafe.Sizeof(AnyObject{})
	}
}
