package exec

import (
	"context"
	"time"
)

// Executor runs commands. The With* methods configure the next call to Run
// and return the executor for chaining.
type Executor interface {
	// WithEnv sets environment variables, overriding global ones.
	WithEnv(env map[string]string) Executor

	// WithDir sets the working directory.
	WithDir(dir string) Executor

	// WithContext sets the context. The command is killed when it is canceled.
	WithContext(ctx context.Context) Executor

	// WithTimeout bounds the run. Zero means no timeout.
	WithTimeout(timeout time.Duration) Executor

	// WithInheritEnv passes the parent process environment to the command.
	WithInheritEnv() Executor

	// Run executes args[0] with the remaining arguments.
	// A non-nil Result is returned whenever the command was started.
	Run(args ...string) (*Result, error)

	// Clone copies the executor's global configuration.
	Clone() Executor
}

// Result is the outcome of a command run.
type Result struct {
	// Stdout is the captured standard output.
	Stdout string

	// Stderr is the captured standard error.
	Stderr string

	// Combined holds stdout and stderr in the order they were written.
	Combined string

	// ExitCode is the process exit code, or -1 if it did not exit normally.
	ExitCode int
}

// Option configures global settings of a Command.
type Option func(*Command)

// WithEnv returns an Option that sets global environment variables.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		for k, v := range env {
			c.config.globalEnv[k] = v
		}
	}
}

// WithDir returns an Option that sets the global working directory.
func WithDir(dir string) Option {
	return func(c *Command) {
		c.config.globalDir = dir
	}
}

// WithContext returns an Option that sets the base context of every run.
func WithContext(ctx context.Context) Option {
	return func(c *Command) {
		c.base = ctx
	}
}

// WithTimeout returns an Option that bounds every run.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Command) {
		c.config.globalTimeout = timeout
	}
}

// WithInheritEnv returns an Option that enables environment inheritance for every run.
func WithInheritEnv() Option {
	return func(c *Command) {
		c.config.globalInheritEnv = true
	}
}
