package crashlog

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/midian/base/errors"
	"github.com/midian/base/fs/billy"
	"github.com/midian/base/fs/core"
	"github.com/stretchr/testify/require"
)

// recordingVolume wraps a memory volume, counts mutating calls and can
// inject failures.
type recordingVolume struct {
	*billy.Volume
	writes   int
	mkdirErr error
	openErr  error
	panicMsg string
}

func newRecordingVolume(opts ...billy.Option) *recordingVolume {
	return &recordingVolume{Volume: billy.NewMemory(opts...)}
}

func (v *recordingVolume) MkdirAll(path string, perm fs.FileMode) error {
	v.writes++
	if v.panicMsg != "" {
		panic(v.panicMsg)
	}
	if v.mkdirErr != nil {
		return v.mkdirErr
	}
	return v.Volume.MkdirAll(path, perm)
}

func (v *recordingVolume) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	v.writes++
	if v.openErr != nil {
		return nil, v.openErr
	}
	return v.Volume.OpenFile(name, flag, perm)
}

var stamp = time.Date(2026, time.October, 19, 15, 4, 5, 0, time.UTC)

func newTestLogger(vol core.Volume, opts ...Option) *Logger {
	return New(vol, append([]Option{WithLocation(time.UTC)}, opts...)...)
}

func TestLog_WritesRecord(t *testing.T) {
	vol := newRecordingVolume()
	l := newTestLogger(vol)

	l.Log(errors.IO(&fs.PathError{Op: "open", Path: "/data/cache.db", Err: fs.ErrNotExist}), stamp)

	data, err := vol.ReadFile("midian/Log/errorlog.txt")
	require.NoError(t, err)

	content := string(data)
	require.True(t, strings.HasPrefix(content,
		"\n--------------------Oct 19, 2026 3:04:05 PM---------------------\n"+
			"[IO] open /data/cache.db: file does not exist\n"))
	require.Contains(t, content, "TestLog_WritesRecord")
	require.True(t, strings.HasSuffix(content, "\n\n"))
}

func TestLog_Appends(t *testing.T) {
	vol := newRecordingVolume()
	l := newTestLogger(vol)

	l.Log(errors.Parse(stderrors.New("first failure")), stamp)
	l.Log(errors.Server(stderrors.New("second failure")), stamp.Add(time.Hour))

	content, err := l.Read()
	require.NoError(t, err)

	first := strings.Index(content, "[PARSE] first failure")
	second := strings.Index(content, "[SERVER] second failure")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)
	require.Equal(t, 2, strings.Count(content, "--------------------\n"))
	require.Contains(t, content, "Oct 19, 2026 4:04:05 PM")
}

func TestLog_Disabled(t *testing.T) {
	vol := newRecordingVolume()
	l := newTestLogger(vol, WithEnabled(false))

	l.Log(errors.Runtime(stderrors.New("ignored")), stamp)

	require.False(t, l.Enabled())
	require.Zero(t, vol.writes)
	ok, err := vol.Exists("midian")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLog_Unmounted(t *testing.T) {
	vol := newRecordingVolume(billy.WithMountCheck(func() bool { return false }))
	l := newTestLogger(vol)

	require.NotPanics(t, func() {
		l.Log(errors.Runtime(stderrors.New("ignored")), stamp)
	})

	require.Zero(t, vol.writes)
	ok, err := vol.Exists("midian/Log")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLog_NilError(t *testing.T) {
	vol := newRecordingVolume()
	newTestLogger(vol).Log(nil, stamp)
	require.Zero(t, vol.writes)
}

func TestLog_FailuresAreAbsorbed(t *testing.T) {
	tests := []struct {
		name    string
		vol     *recordingVolume
		wantMsg string
	}{
		{
			name:    "directory creation fails",
			vol:     &recordingVolume{Volume: billy.NewMemory(), mkdirErr: fs.ErrPermission},
			wantMsg: "failed to create crash log directory",
		},
		{
			name:    "open fails",
			vol:     &recordingVolume{Volume: billy.NewMemory(), openErr: stderrors.New("no space left on device")},
			wantMsg: "failed to append crash log record",
		},
		{
			name:    "volume panics",
			vol:     &recordingVolume{Volume: billy.NewMemory(), panicMsg: "driver bug"},
			wantMsg: "crash log write panicked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var diag bytes.Buffer
			l := newTestLogger(tt.vol, WithLogger(slog.New(slog.NewTextHandler(&diag, nil))))

			require.NotPanics(t, func() {
				l.Log(errors.Runtime(stderrors.New("boom")), stamp)
			})
			require.Contains(t, diag.String(), tt.wantMsg)
		})
	}
}

func TestOptions(t *testing.T) {
	vol := newRecordingVolume()
	l := newTestLogger(vol,
		WithDir("app/logs"),
		WithFile("crash.txt"),
		WithTimeLayout(time.RFC3339),
	)

	require.Equal(t, "app/logs/crash.txt", l.Path())

	l.Log(errors.Runtime(stderrors.New("boom")), stamp)

	data, err := vol.ReadFile("app/logs/crash.txt")
	require.NoError(t, err)
	require.Contains(t, string(data), "--------------------2026-10-19T15:04:05Z---------------------")
}

func TestOptions_EmptyValuesKeepDefaults(t *testing.T) {
	l := New(newRecordingVolume(), WithDir(""), WithFile(""), WithTimeLayout(""), WithLogger(nil), WithLocation(nil))

	require.Equal(t, "midian/Log/errorlog.txt", l.Path())
	require.Equal(t, DefaultTimeLayout, l.layout)
	require.NotNil(t, l.log)
	require.Equal(t, time.Local, l.loc)
}

func TestRead_Missing(t *testing.T) {
	content, err := newTestLogger(newRecordingVolume()).Read()
	require.NoError(t, err)
	require.Empty(t, content)
}

func TestRead_Unmounted(t *testing.T) {
	l := newTestLogger(newRecordingVolume(billy.WithMountCheck(func() bool { return false })))

	_, err := l.Read()
	require.ErrorIs(t, err, core.ErrUnmounted)
	require.ErrorIs(t, l.Clear(), core.ErrUnmounted)
}

func TestClear(t *testing.T) {
	vol := newRecordingVolume()
	l := newTestLogger(vol)

	require.NoError(t, l.Clear(), "clearing a missing log")

	l.Log(errors.Runtime(stderrors.New("boom")), stamp)
	require.NoError(t, l.Clear())

	ok, err := vol.Exists(l.Path())
	require.NoError(t, err)
	require.False(t, ok)
}
