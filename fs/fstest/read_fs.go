package fstest

import (
	"io/fs"
	"testing"

	"github.com/midian/base/fs/core"
	"github.com/stretchr/testify/require"
)

// TestReadFS tests Stat, ReadFile and Exists.
func TestReadFS(t *testing.T, vol core.Volume) {
	require.NoError(t, vol.MkdirAll("data", 0o755))
	require.NoError(t, core.AppendFile(vol, "data/file.txt", []byte("hello"), 0o644))

	t.Run("Stat", func(t *testing.T) {
		info, err := vol.Stat("data/file.txt")
		require.NoError(t, err)
		require.False(t, info.IsDir())
		require.Equal(t, int64(5), info.Size())

		info, err = vol.Stat("data")
		require.NoError(t, err)
		require.True(t, info.IsDir())
	})

	t.Run("StatMissing", func(t *testing.T) {
		_, err := vol.Stat("data/missing.txt")
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("ReadFile", func(t *testing.T) {
		data, err := vol.ReadFile("data/file.txt")
		require.NoError(t, err)
		require.Equal(t, "hello", string(data))
	})

	t.Run("ReadFileMissing", func(t *testing.T) {
		_, err := vol.ReadFile("data/missing.txt")
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("Exists", func(t *testing.T) {
		ok, err := vol.Exists("data/file.txt")
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = vol.Exists("data/missing.txt")
		require.NoError(t, err)
		require.False(t, ok)
	})
}
