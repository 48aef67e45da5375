// Package config loads the settings of the error classifier.
//
// Configuration files are CUE (plain JSON is valid CUE). Each file is unified
// with the embedded #Config schema, which supplies defaults and rejects
// unknown fields:
//
//	debugLogging: false
//	locale:       "zh-CN"
//	queueSize:    32
package config

import (
	"context"
	_ "embed"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/midian/base/crashlog"
	"github.com/midian/base/errors"
	"github.com/midian/base/fs/core"
	"github.com/midian/base/ui"
)

//go:embed schema.cue
var schemaSource []byte

// Config holds the classifier settings.
type Config struct {
	DebugLogging bool   `json:"debugLogging"`
	StorageRoot  string `json:"storageRoot"`
	LogDir       string `json:"logDir"`
	LogFile      string `json:"logFile"`
	TimeLayout   string `json:"timeLayout"`
	Locale       string `json:"locale"`
	MessagesDir  string `json:"messagesDir"`
	QueueSize    int    `json:"queueSize"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		DebugLogging: true,
		LogDir:       crashlog.DefaultDir,
		LogFile:      crashlog.DefaultFile,
		TimeLayout:   crashlog.DefaultTimeLayout,
		Locale:       "en",
		QueueSize:    ui.DefaultQueueSize,
	}
}

// Loader compiles configuration files against the schema.
type Loader struct {
	fs     core.ReadFS
	cueCtx *cue.Context

	once   sync.Once
	schema cue.Value
}

// NewLoader creates a loader reading from filesystem.
func NewLoader(filesystem core.ReadFS) *Loader {
	return &Loader{
		fs:     filesystem,
		cueCtx: cuecontext.New(),
	}
}

// Load reads and decodes the file at path.
//
// Read failures are KindIO errors. Compilation, schema and decoding failures
// are KindParse errors. All carry the path as the "file" context value.
func Load(ctx context.Context, filesystem core.ReadFS, path string) (Config, error) {
	return NewLoader(filesystem).Load(ctx, path)
}

// Load reads and decodes the file at path.
func (l *Loader) Load(ctx context.Context, path string) (Config, error) {
	if err := ctx.Err(); err != nil {
		return Config{}, errors.WithContext(errors.Wrap(err, errors.KindRuntime, "context cancelled"), "file", path)
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return Config{}, errors.WithContext(errors.Wrap(err, errors.KindIO, "failed to read config file"), "file", path)
	}
	return l.LoadBytes(ctx, data, path)
}

// LoadBytes decodes CUE source. The filename is used in error messages only.
func (l *Loader) LoadBytes(ctx context.Context, source []byte, filename string) (Config, error) {
	if filename == "" {
		filename = "<input>"
	}
	if err := ctx.Err(); err != nil {
		return Config{}, errors.WithContext(errors.Wrap(err, errors.KindRuntime, "context cancelled"), "file", filename)
	}

	schema, err := l.loadSchema()
	if err != nil {
		return Config{}, err
	}

	data := l.cueCtx.CompileBytes(source, cue.Filename(filename))
	if err := data.Err(); err != nil {
		return Config{}, parseError(err, "failed to compile config", filename)
	}

	unified := schema.Unify(data)
	if err := unified.Validate(cue.Concrete(true), cue.Final(), cue.All()); err != nil {
		return Config{}, parseError(err, "config does not match schema", filename)
	}

	var cfg Config
	if err := unified.Decode(&cfg); err != nil {
		return Config{}, parseError(err, "failed to decode config", filename)
	}
	return cfg, nil
}

// loadSchema compiles the embedded schema once.
func (l *Loader) loadSchema() (cue.Value, error) {
	l.once.Do(func() {
		l.schema = l.cueCtx.CompileBytes(schemaSource, cue.Filename("schema.cue")).
			LookupPath(cue.ParsePath("#Config"))
	})
	if err := l.schema.Err(); err != nil {
		return cue.Value{}, errors.Wrap(err, errors.KindRuntime, "embedded config schema is invalid")
	}
	return l.schema, nil
}
