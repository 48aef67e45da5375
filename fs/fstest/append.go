package fstest

import (
	"testing"

	"github.com/midian/base/fs/core"
	"github.com/stretchr/testify/require"
)

// TestAppend tests that AppendFile creates missing files and never truncates.
func TestAppend(t *testing.T, vol core.Volume) {
	require.NoError(t, vol.MkdirAll("log", 0o755))

	require.NoError(t, core.AppendFile(vol, "log/app.txt", []byte("first\n"), 0o644))
	require.NoError(t, core.AppendFile(vol, "log/app.txt", []byte("second\n"), 0o644))
	require.NoError(t, core.AppendFile(vol, "log/app.txt", []byte("third\n"), 0o644))

	data, err := vol.ReadFile("log/app.txt")
	require.NoError(t, err)
	require.Equal(t, "first\nsecond\nthird\n", string(data))
}
