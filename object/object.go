package object

import "fmt"

// ObjectID is the hash naming an object.
type ObjectID [32]byte

// Object is the header shared by every record kind.
type Object struct {
	Type   Kind
	Parsed bool
	Flags  uint32
	OID    ObjectID
}

type Blob struct {
	Object
}

type Tree struct {
	Object
	Buffer []byte
}

// Commit carries Index, a process-wide unique number used to key side
// tables that outlive any single Graph.
type Commit struct {
	Object
	Index   uint64
	Date    int64
	Tree    *Tree
	Parents []*Commit
}

type Tag struct {
	Object
	Tagged *Object
	Name   string
	Date   int64
}

// KindMismatchError is returned when a generic slot already holds a
// different kind than the one requested.
type KindMismatchError struct {
	Want Kind
	Got  Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("object: slot holds %s, not %s", e.Got, e.Want)
}

// AnyObject is a generic slot that can later become any concrete kind.
// It carries no exported header: until the slot is converted its header is
// private, and afterwards the variant's own header is the only one. Header
// always returns the live one, so no write can land on a stale copy.
type AnyObject struct {
	hdr    Object // header while untyped; hdr.Type is the discriminant
	blob   Blob
	tree   Tree
	commit Commit
	tag    Tag
}

// Kind returns the discriminant of the slot.
func (o *AnyObject) Kind() Kind {
	return o.hdr.Type
}

// Header returns the header of the active variant.
func (o *AnyObject) Header() *Object {
	switch o.hdr.Type {
	case KindBlob:
		return &o.blob.Object
	case KindTree:
		return &o.tree.Object
	case KindCommit:
		return &o.commit.Object
	case KindTag:
		return &o.tag.Object
	default:
		return &o.hdr
	}
}

// claim moves an untyped slot to kind k, carrying the header over into dst.
// After a move only the discriminant of hdr is read.
func (o *AnyObject) claim(k Kind, dst *Object) (bool, error) {
	switch o.hdr.Type {
	case k:
		return false, nil
	case KindNone:
		*dst = o.hdr
		dst.Type = k
		o.hdr = Object{Type: k}
		return true, nil
	default:
		return false, &KindMismatchError{Want: k, Got: o.hdr.Type}
	}
}

// AsBlob returns the slot as a blob, converting it if untyped.
func (o *AnyObject) AsBlob() (*Blob, error) {
	if _, err := o.claim(KindBlob, &o.blob.Object); err != nil {
		return nil, err
	}
	return &o.blob, nil
}

// AsTree returns the slot as a tree, converting it if untyped.
func (o *AnyObject) AsTree() (*Tree, error) {
	if _, err := o.claim(KindTree, &o.tree.Object); err != nil {
		return nil, err
	}
	return &o.tree, nil
}

// AsCommit returns the slot as a commit. Converting an untyped slot
// assigns it a fresh commit index.
func (o *AnyObject) AsCommit() (*Commit, error) {
	converted, err := o.claim(KindCommit, &o.commit.Object)
	if err != nil {
		return nil, err
	}
	if converted {
		InitCommitNode(&o.commit)
	}
	return &o.commit, nil
}

// AsTag returns the slot as a tag, converting it if untyped.
func (o *AnyObject) AsTag() (*Tag, error) {
	if _, err := o.claim(KindTag, &o.tag.Object); err != nil {
		return nil, err
	}
	return &o.tag, nil
}
