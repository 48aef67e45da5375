package exec

import "fmt"

// ExecError describes a command that could not be started or exited with a
// non-zero status.
type ExecError struct {
	// Command is the full command line that was run.
	Command []string

	// ExitCode is the exit code, or -1 if the command never exited normally.
	ExitCode int

	// Stderr is the captured standard error.
	Stderr string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("command %v failed with exit code %d: %v", e.Command, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("command %v failed with exit code %d", e.Command, e.ExitCode)
}

// Unwrap returns the underlying error.
func (e *ExecError) Unwrap() error {
	return e.Err
}
