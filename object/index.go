package object

import "sync/atomic"

// commitIndex lives for the whole process and is never reset: side tables
// keyed by Commit.Index are shared across every Graph.
var commitIndex atomic.Uint64

// NextCommitIndex returns a commit index never returned before in this
// process. The first call returns 0. Safe for concurrent use.
//
// The counter is 64 bits wide, so it does not wrap in practice.
func NextCommitIndex() uint64 {
	return commitIndex.Add(1) - 1
}

// InitCommitNode stamps c as a commit and gives it a fresh index. Use it
// for commits that were not created by NewCommitNode.
func InitCommitNode(c *Commit) {
	c.Type = KindCommit
	c.Index = NextCommitIndex()
}
