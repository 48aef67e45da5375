// Package fstest provides a conformance test suite for core.Volume
// implementations.
//
// Every volume provider runs the suite from its own tests:
//
//	func TestMemoryVolume(t *testing.T) {
//	    fstest.TestSuite(t, func() core.Volume {
//	        return billy.NewMemory()
//	    })
//	}
//
// The suite checks the contract the crash log relies on: MkdirAll is
// idempotent, AppendFile never truncates, reads see prior appends, and
// missing files are reported through fs.ErrNotExist.
package fstest

import (
	"testing"

	"github.com/midian/base/fs/core"
)

// TestSuite runs all conformance tests against a volume. The newVolume
// function must return a fresh, empty and mounted volume on every call.
func TestSuite(t *testing.T, newVolume func() core.Volume) {
	t.Run("ReadFS", func(t *testing.T) {
		TestReadFS(t, newVolume())
	})
	t.Run("WriteFS", func(t *testing.T) {
		TestWriteFS(t, newVolume())
	})
	t.Run("Append", func(t *testing.T) {
		TestAppend(t, newVolume())
	})
	t.Run("ManageFS", func(t *testing.T) {
		TestManageFS(t, newVolume())
	})
	t.Run("Mounted", func(t *testing.T) {
		if !newVolume().Mounted() {
			t.Fatal("fresh volume reports unmounted storage")
		}
	})
}
