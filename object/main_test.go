package object

import (
	"os"
	"testing"
)

// firstIndex is the first commit index handed out in this test binary,
// taken before any test can consume one.
var firstIndex uint64

func TestMain(m *testing.M) {
	firstIndex = NextCommitIndex()
	os.Exit(m.Run())
}
