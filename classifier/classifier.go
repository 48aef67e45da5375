// Package classifier ties the error taxonomy, message tables, crash log and
// crash reporter together behind one object configured from config.Config.
package classifier

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/midian/base/config"
	"github.com/midian/base/crash"
	"github.com/midian/base/crashlog"
	"github.com/midian/base/device"
	"github.com/midian/base/errors"
	"github.com/midian/base/fs/core"
	"github.com/midian/base/messages"
	"github.com/midian/base/ui"
)

// FallbackTable is the table file used when no table matches the locale.
const FallbackTable = "en.yaml"

// Classifier renders, traces, records and displays classified errors.
type Classifier struct {
	cfg     config.Config
	catalog *messages.Catalog
	table   messages.Table
	crashes *crashlog.Logger
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithCatalog replaces the message catalog.
func WithCatalog(c *messages.Catalog) Option {
	return func(cl *Classifier) {
		cl.catalog = c
	}
}

// WithLogger sets the diagnostic logger used for traces and crash log failures.
func WithLogger(logger *slog.Logger) Option {
	return func(cl *Classifier) {
		if logger != nil {
			cl.logger = logger
		}
	}
}

// WithClock sets the source of crash log timestamps.
func WithClock(now func() time.Time) Option {
	return func(cl *Classifier) {
		if now != nil {
			cl.now = now
		}
	}
}

// New creates a Classifier that keeps its crash log on vol.
//
// Message tables come from WithCatalog, else from cfg.MessagesDir, else the
// built-in catalog. Loading tables from cfg.MessagesDir is the only failure.
func New(cfg config.Config, vol core.Volume, opts ...Option) (*Classifier, error) {
	c := &Classifier{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.catalog == nil {
		catalog, err := loadCatalog(cfg.MessagesDir)
		if err != nil {
			return nil, err
		}
		c.catalog = catalog
	}
	c.table = c.catalog.Lookup(cfg.Locale)

	c.crashes = crashlog.New(vol,
		crashlog.WithEnabled(cfg.DebugLogging),
		crashlog.WithDir(cfg.LogDir),
		crashlog.WithFile(cfg.LogFile),
		crashlog.WithTimeLayout(cfg.TimeLayout),
		crashlog.WithLogger(c.logger),
	)
	return c, nil
}

func loadCatalog(dir string) (*messages.Catalog, error) {
	if dir == "" {
		return messages.Default(), nil
	}
	catalog, err := messages.LoadFS(os.DirFS(dir), ".", FallbackTable)
	if err != nil {
		return nil, errors.WithContext(err, "messages_dir", dir)
	}
	return catalog, nil
}

// Config returns the configuration the classifier was built with.
func (c *Classifier) Config() config.Config {
	return c.cfg
}

// CrashLog returns the crash log writer.
func (c *Classifier) CrashLog() *crashlog.Logger {
	return c.crashes
}

// Message renders err in the configured locale.
func (c *Classifier) Message(err error) string {
	return messages.Render(err, c.table)
}

// Render renders err in locale.
func (c *Classifier) Render(err error, locale string) string {
	return messages.Render(err, c.catalog.Lookup(locale))
}

// Trace writes err and its stack trace to the diagnostic logger.
func (c *Classifier) Trace(err error) {
	if err == nil {
		return
	}
	c.logger.Error("classified failure",
		"kind", errors.GetKind(err).String(),
		"code", errors.GetCode(err),
		"retryable", errors.IsRetryable(err),
		"trace", errors.FormatTrace(err),
	)
}

// Toast shows the rendered message of err on s. It reports false, showing
// nothing, when s is nil or the message is empty.
func (c *Classifier) Toast(s ui.Surface, err error) bool {
	if s == nil {
		return false
	}
	msg := c.Message(err)
	if msg == "" {
		return false
	}
	s.ShowToast(msg)
	return true
}

// Record appends err to the crash log, stamped with the current time.
func (c *Classifier) Record(err error) {
	c.crashes.Log(err, c.now())
}

// Report traces, records and toasts err.
func (c *Classifier) Report(s ui.Surface, err error) {
	if err == nil {
		return
	}
	c.Trace(err)
	c.Record(err)
	c.Toast(s, err)
}

// Install makes a crash.Reporter the handler of reg. Displayed crash reports
// are also recorded in the crash log.
func (c *Classifier) Install(reg *crash.Registry, locator ui.Locator, looper crash.Poster, info device.Info) *crash.Reporter {
	return crash.Install(reg,
		crash.WithLocator(locator),
		crash.WithLooper(looper),
		crash.WithDevice(info),
		crash.WithLogger(c.logger),
		crash.WithObserver(func(_ *crash.Thread, failure any, _ string) {
			if err, ok := failure.(error); ok {
				c.Record(err)
			}
		}),
	)
}
