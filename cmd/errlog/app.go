package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	"github.com/midian/base/classifier"
	"github.com/midian/base/config"
	"github.com/midian/base/fs/billy"
	"github.com/spf13/cobra"
)

// app holds the global flags and the objects built from them.
type app struct {
	configPath string
	root       string
	locale     string
	debug      bool

	logger *slog.Logger
	cfg    config.Config
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "errlog",
		Short:        "Inspect the crash log and the error messages of the client",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context(), cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "CUE or JSON config file")
	flags.StringVar(&a.root, "root", "", "storage root (overrides storageRoot in the config)")
	flags.StringVar(&a.locale, "locale", "", "message locale (overrides locale in the config)")
	flags.BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		showSubcommand(a),
		clearSubcommand(a),
		renderSubcommand(a),
		crashDemoSubcommand(a),
	)
	return root
}

// setup installs the log handler and resolves the configuration.
func (a *app) setup(ctx context.Context, stderr io.Writer) error {
	level := slog.LevelInfo
	if a.debug {
		level = slog.LevelDebug
	}
	a.logger = slog.New(tint.NewHandler(stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))

	a.cfg = config.Default()
	if a.configPath != "" {
		if ctx == nil {
			ctx = context.Background()
		}
		vol := billy.NewLocal(filepath.Dir(a.configPath))
		cfg, err := config.Load(ctx, vol, filepath.Base(a.configPath))
		if err != nil {
			for _, issue := range config.Issues(err) {
				a.logger.Error("config issue", "issue", issue.String(), "position", issue.Position)
			}
			return err
		}
		a.cfg = cfg
	}
	if a.root != "" {
		a.cfg.StorageRoot = a.root
	}
	if a.cfg.StorageRoot == "" {
		a.cfg.StorageRoot = defaultStorageRoot()
	}
	if a.locale != "" {
		a.cfg.Locale = a.locale
	}
	a.logger.Debug("configuration resolved", "storage_root", a.cfg.StorageRoot, "locale", a.cfg.Locale)
	return nil
}

// classifier builds a Classifier over the storage root.
func (a *app) classifier() (*classifier.Classifier, error) {
	vol := billy.NewLocal(a.cfg.StorageRoot)
	return classifier.New(a.cfg, vol, classifier.WithLogger(a.logger))
}

func defaultStorageRoot() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return "."
}
