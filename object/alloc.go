package object

// NewObjectNode returns a zeroed generic slot with discriminant KindNone.
func NewObjectNode(g *Graph) *AnyObject {
	o := g.objects.Alloc()
	o.hdr.Type = KindNone
	return o
}

// NewBlobNode returns a zeroed blob.
func NewBlobNode(g *Graph) *Blob {
	b := g.blobs.Alloc()
	b.Type = KindBlob
	return b
}

// NewTreeNode returns a zeroed tree.
func NewTreeNode(g *Graph) *Tree {
	t := g.trees.Alloc()
	t.Type = KindTree
	return t
}

// NewCommitNode returns a zeroed commit carrying the next commit index.
func NewCommitNode(g *Graph) *Commit {
	c := g.commits.Alloc()
	InitCommitNode(c)
	return c
}

// NewTagNode returns a zeroed tag.
func NewTagNode(g *Graph) *Tag {
	t := g.tags.Alloc()
	t.Type = KindTag
	return t
}
