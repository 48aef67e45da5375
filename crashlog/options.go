package crashlog

import (
	"io"
	"log/slog"
	"time"
)

const (
	// DefaultDir is the log directory relative to the storage root.
	DefaultDir = "midian/Log"

	// DefaultFile is the log file name.
	DefaultFile = "errorlog.txt"

	// DefaultTimeLayout renders timestamps the way the client always has.
	DefaultTimeLayout = "Jan 2, 2006 3:04:05 PM"
)

// Option configures a Logger.
type Option func(*Logger)

// WithEnabled turns file logging on or off. Loggers are enabled by default.
func WithEnabled(enabled bool) Option {
	return func(l *Logger) {
		l.enabled = enabled
	}
}

// WithDir sets the log directory relative to the volume root.
func WithDir(dir string) Option {
	return func(l *Logger) {
		if dir != "" {
			l.dir = dir
		}
	}
}

// WithFile sets the log file name.
func WithFile(file string) Option {
	return func(l *Logger) {
		if file != "" {
			l.file = file
		}
	}
}

// WithTimeLayout sets the time.Format layout used for record headers.
func WithTimeLayout(layout string) Option {
	return func(l *Logger) {
		if layout != "" {
			l.layout = layout
		}
	}
}

// WithLocation renders timestamps in loc instead of time.Local.
func WithLocation(loc *time.Location) Option {
	return func(l *Logger) {
		if loc != nil {
			l.loc = loc
		}
	}
}

// WithLogger sets the diagnostic logger write failures are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Logger) {
		if logger != nil {
			l.log = logger
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
