package crash

import (
	"fmt"
	"io"
	"os"
)

// ExitStatus is the status ExitHandler exits with, matching an unrecovered
// Go panic.
const ExitStatus = 2

// ExitHandler is the platform default behaviour: it prints the failure and
// its stack, then terminates the process.
type ExitHandler struct {
	Out  io.Writer
	Exit func(code int)
}

// NewExitHandler writes to os.Stderr and calls os.Exit.
func NewExitHandler() *ExitHandler {
	return &ExitHandler{Out: os.Stderr, Exit: os.Exit}
}

// Uncaught prints failure and exits with ExitStatus.
func (h *ExitHandler) Uncaught(t *Thread, failure any) {
	fmt.Fprintf(h.Out, "uncaught failure in %s: %s\n", t, message(failure))
	for _, frame := range frames(failure) {
		fmt.Fprintf(h.Out, "\t%s\n", frame)
	}
	h.Exit(ExitStatus)
}
