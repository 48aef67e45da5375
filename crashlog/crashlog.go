package crashlog

import (
	"fmt"
	"log/slog"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/midian/base/errors"
	"github.com/midian/base/fs/core"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	rule = "--------------------"
)

// Logger appends failure records to a log file on a volume.
// It is safe for concurrent use; appends are serialised.
type Logger struct {
	vol     core.Volume
	enabled bool
	dir     string
	file    string
	layout  string
	loc     *time.Location
	log     *slog.Logger

	mu sync.Mutex
}

// New creates a Logger writing to vol.
func New(vol core.Volume, opts ...Option) *Logger {
	l := &Logger{
		vol:     vol,
		enabled: true,
		dir:     DefaultDir,
		file:    DefaultFile,
		layout:  DefaultTimeLayout,
		loc:     time.Local,
		log:     discardLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Enabled reports whether the logger writes records.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Path returns the log file path relative to the volume root.
func (l *Logger) Path() string {
	return path.Join(l.dir, l.file)
}

// Log appends a record for err stamped with ts. It never fails: when logging
// is disabled, err is nil or the volume is unmounted nothing happens, and
// write failures are only reported to the diagnostic logger.
func (l *Logger) Log(err error, ts time.Time) {
	if !l.enabled || err == nil || l.vol == nil || !l.vol.Mounted() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			l.log.Error("crash log write panicked", "path", l.Path(), "panic", r)
		}
	}()

	if mkErr := l.vol.MkdirAll(l.dir, dirPerm); mkErr != nil {
		l.log.Warn("failed to create crash log directory",
			"dir", l.dir, "root", l.vol.Root(), "error", mkErr)
		return
	}

	if wErr := core.AppendFile(l.vol, l.Path(), l.record(err, ts), filePerm); wErr != nil {
		l.log.Warn("failed to append crash log record",
			"path", l.Path(), "root", l.vol.Root(), "error", wErr)
	}
}

// record renders one log entry.
func (l *Logger) record(err error, ts time.Time) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s%s%s-\n", rule, ts.In(l.loc).Format(l.layout), rule)
	trace := errors.FormatTrace(err)
	b.WriteString(trace)
	if !strings.HasSuffix(trace, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return []byte(b.String())
}

// Read returns the current log content. A missing log reads as empty.
func (l *Logger) Read() (string, error) {
	if l.vol == nil || !l.vol.Mounted() {
		return "", core.ErrUnmounted
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	ok, err := l.vol.Exists(l.Path())
	if err != nil {
		return "", errors.Wrap(err, errors.KindIO, "failed to stat crash log")
	}
	if !ok {
		return "", nil
	}
	data, err := l.vol.ReadFile(l.Path())
	if err != nil {
		return "", errors.Wrap(err, errors.KindIO, "failed to read crash log")
	}
	return string(data), nil
}

// Clear removes the log file. Clearing a missing log is not an error.
func (l *Logger) Clear() error {
	if l.vol == nil || !l.vol.Mounted() {
		return core.ErrUnmounted
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.vol.Remove(l.Path()); err != nil && !errors.Is(err, core.ErrNotExist) {
		return errors.Wrap(err, errors.KindIO, "failed to remove crash log")
	}
	return nil
}
