package fstest

import (
	"os"
	"testing"

	"github.com/midian/base/fs/core"
	"github.com/stretchr/testify/require"
)

// TestWriteFS tests OpenFile and MkdirAll.
func TestWriteFS(t *testing.T, vol core.Volume) {
	t.Run("MkdirAll", func(t *testing.T) {
		require.NoError(t, vol.MkdirAll("a/b/c", 0o755))

		info, err := vol.Stat("a/b/c")
		require.NoError(t, err)
		require.True(t, info.IsDir())
	})

	t.Run("MkdirAllExisting", func(t *testing.T) {
		require.NoError(t, vol.MkdirAll("a/b", 0o755))
		require.NoError(t, vol.MkdirAll("a/b", 0o755))
	})

	t.Run("OpenFileCreate", func(t *testing.T) {
		f, err := vol.OpenFile("a/new.txt", os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		require.NoError(t, err)
		require.Equal(t, "a/new.txt", f.Name())

		_, err = f.Write([]byte("content"))
		require.NoError(t, err)
		require.NoError(t, f.Close())

		data, err := vol.ReadFile("a/new.txt")
		require.NoError(t, err)
		require.Equal(t, "content", string(data))
	})

	t.Run("OpenFileTruncate", func(t *testing.T) {
		require.NoError(t, core.AppendFile(vol, "a/trunc.txt", []byte("long content"), 0o644))

		f, err := vol.OpenFile("a/trunc.txt", os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		require.NoError(t, err)
		_, err = f.Write([]byte("short"))
		require.NoError(t, err)
		require.NoError(t, f.Close())

		data, err := vol.ReadFile("a/trunc.txt")
		require.NoError(t, err)
		require.Equal(t, "short", string(data))
	})
}
