package fstest

import (
	"io/fs"
	"testing"

	"github.com/midian/base/fs/core"
	"github.com/stretchr/testify/require"
)

// TestManageFS tests Remove.
func TestManageFS(t *testing.T, vol core.Volume) {
	require.NoError(t, vol.MkdirAll("dir", 0o755))
	require.NoError(t, core.AppendFile(vol, "dir/file.txt", []byte("x"), 0o644))

	t.Run("RemoveFile", func(t *testing.T) {
		require.NoError(t, vol.Remove("dir/file.txt"))

		ok, err := vol.Exists("dir/file.txt")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("RemoveMissing", func(t *testing.T) {
		err := vol.Remove("dir/missing.txt")
		require.ErrorIs(t, err, fs.ErrNotExist)
	})
}
