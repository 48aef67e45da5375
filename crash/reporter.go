package crash

import (
	"io"
	"log/slog"

	"github.com/midian/base/device"
	"github.com/midian/base/ui"
)

// Poster queues a task for the UI goroutine without blocking.
// *ui.Looper implements it.
type Poster interface {
	Post(task func()) bool
}

// Observer is told about every report the Reporter displays. It runs on the
// UI task, not on the crashing goroutine.
type Observer func(t *Thread, failure any, report string)

// Reporter is the Handler Install puts in a Registry.
type Reporter struct {
	previous Handler
	locator  ui.Locator
	looper   Poster
	info     device.Info
	display  func(s ui.Surface, report string)
	observer Observer
	logger   *slog.Logger
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithLocator sets how the visible surface is found. Without it, or with a
// nil locator, nothing is ever visible and every failure is forwarded.
func WithLocator(l ui.Locator) Option {
	return func(r *Reporter) {
		if isNil(l) {
			l = nil
		}
		r.locator = l
	}
}

// WithLooper sets where display tasks run. Without it, with a nil looper, or
// when the looper rejects a task, each task gets its own goroutine.
func WithLooper(p Poster) Option {
	return func(r *Reporter) {
		if isNil(p) {
			p = nil
		}
		r.looper = p
	}
}

// WithDevice sets the platform line of the report.
func WithDevice(info device.Info) Option {
	return func(r *Reporter) {
		r.info = info
	}
}

// WithDisplay replaces the default display, which shows the report as a toast.
func WithDisplay(fn func(s ui.Surface, report string)) Option {
	return func(r *Reporter) {
		if fn != nil {
			r.display = fn
		}
	}
}

// WithObserver registers fn to be called for each displayed report.
func WithObserver(fn Observer) Option {
	return func(r *Reporter) {
		r.observer = fn
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reporter) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Install creates a Reporter, makes it reg's handler and keeps the handler
// it replaced, which may be nil.
func Install(reg *Registry, opts ...Option) *Reporter {
	r := &Reporter{
		info: device.Info{OS: device.Unknown, Release: device.Unknown, Model: device.Unknown},
		display: func(s ui.Surface, report string) {
			s.ShowToast(report)
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.previous = reg.SetDefault(r)
	return r
}

// Previous returns the handler that was installed before r.
func (r *Reporter) Previous() Handler {
	return r.previous
}

// Uncaught reports failure, or forwards it unchanged to the previous handler
// when no surface is visible. Nil failures are ignored.
func (r *Reporter) Uncaught(t *Thread, failure any) {
	if isNil(failure) {
		return
	}
	if r.Handle(t, failure) {
		return
	}
	if r.previous != nil {
		r.previous.Uncaught(t, failure)
	}
}

// Handle posts a crash report for display and reports whether it did. It
// declines nil failures and failures that occur while no surface is visible.
func (r *Reporter) Handle(t *Thread, failure any) bool {
	if isNil(failure) {
		return false
	}
	surface := r.currentSurface()
	if surface == nil {
		return false
	}

	report := BuildReport(r.info, failure)
	task := func() {
		if r.observer != nil {
			r.observer(t, failure, report)
		}
		r.display(surface, report)
	}

	if r.looper == nil || !r.looper.Post(task) {
		if r.looper != nil {
			r.logger.Warn("ui looper rejected crash report, displaying on a new goroutine", "thread", t.String())
		}
		go r.run(task)
	}
	r.logger.Info("crash report posted", "thread", t.String(), "failure", message(failure))
	return true
}

// run executes a display task off the looper, recovering panics.
func (r *Reporter) run(task func()) {
	defer func() {
		if v := recover(); v != nil {
			r.logger.Error("crash report display panicked", "panic", v)
		}
	}()
	task()
}

func (r *Reporter) currentSurface() ui.Surface {
	if r.locator == nil {
		return nil
	}
	s := r.locator.CurrentSurface()
	if isNil(s) {
		return nil
	}
	return s
}
