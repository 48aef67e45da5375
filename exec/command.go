package exec

import (
	"context"
	"os"
	osexec "os/exec"
	"time"
)

// Command is the os/exec backed Executor. It is not safe for concurrent use;
// Clone it for each goroutine.
type Command struct {
	config *config
	base   context.Context
	ctx    context.Context
}

// New creates a Command with the given global options.
func New(opts ...Option) *Command {
	cmd := &Command{
		config: newConfig(),
		base:   context.Background(),
	}
	for _, opt := range opts {
		opt(cmd)
	}
	return cmd
}

// WithEnv sets environment variables for the next run.
func (c *Command) WithEnv(env map[string]string) Executor {
	for k, v := range env {
		c.config.localEnv[k] = v
	}
	return c
}

// WithDir sets the working directory for the next run.
func (c *Command) WithDir(dir string) Executor {
	c.config.localDir = dir
	return c
}

// WithContext sets the context for the next run.
func (c *Command) WithContext(ctx context.Context) Executor {
	c.ctx = ctx
	return c
}

// WithTimeout sets the timeout for the next run.
func (c *Command) WithTimeout(timeout time.Duration) Executor {
	c.config.localTimeout = &timeout
	return c
}

// WithInheritEnv enables environment inheritance for the next run.
func (c *Command) WithInheritEnv() Executor {
	val := true
	c.config.localInheritEnv = &val
	return c
}

// Run executes the command.
func (c *Command) Run(args ...string) (*Result, error) {
	defer func() {
		c.config.resetLocal()
		c.ctx = nil
	}()

	if len(args) == 0 {
		return nil, &ExecError{Command: args, ExitCode: -1, Err: osexec.ErrNotFound}
	}

	ctx := c.ctx
	if ctx == nil {
		ctx = c.base
	}
	if timeout := c.config.effectiveTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := osexec.CommandContext(ctx, args[0], args[1:]...)
	if dir := c.config.effectiveDir(); dir != "" {
		cmd.Dir = dir
	}
	if c.config.effectiveInheritEnv() {
		cmd.Env = os.Environ()
	}
	for k, v := range c.config.effectiveEnv() {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var stdout, stderr, combined buffer
	cmd.Stdout = tee{stream: &stdout, combined: &combined}
	cmd.Stderr = tee{stream: &stderr, combined: &combined}

	err := cmd.Run()
	if cmd.ProcessState == nil {
		return nil, &ExecError{Command: args, ExitCode: -1, Err: err}
	}

	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Combined: combined.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}
	if err != nil {
		return result, &ExecError{
			Command:  args,
			ExitCode: result.ExitCode,
			Stderr:   result.Stderr,
			Err:      err,
		}
	}
	return result, nil
}

// Clone returns a new Command with the same global configuration and base context.
func (c *Command) Clone() Executor {
	return &Command{
		config: c.config.clone(),
		base:   c.base,
	}
}
