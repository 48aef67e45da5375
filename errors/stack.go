package errors

import (
	"fmt"
	"runtime"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

const maxStackDepth = 32

// stackTracer is implemented by errors from github.com/pkg/errors and by AppError.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// callers records the stack starting skip frames above its caller.
func callers(skip int) pkgerrors.StackTrace {
	var pcs [maxStackDepth]uintptr
	n := runtime.Callers(skip+2, pcs[:])
	st := make(pkgerrors.StackTrace, n)
	for i := 0; i < n; i++ {
		st[i] = pkgerrors.Frame(pcs[i])
	}
	return st
}

// Callers records the stack of the calling goroutine. A skip of zero starts
// at the caller of Callers.
func Callers(skip int) pkgerrors.StackTrace {
	return callers(skip + 1)
}

// FormatTrace renders err and its stack trace as text: the error message on
// the first line, then each frame as "function" followed by an indented
// "file:line" line. Errors without a stack render as their message only.
// Returns "" if err is nil.
func FormatTrace(err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(err.Error())
	var tracer stackTracer
	if As(err, &tracer) {
		fmt.Fprintf(&b, "%+v", tracer.StackTrace())
	}
	b.WriteString("\n")
	return b.String()
}

// Frames returns the stack of err as "function (file:line)" strings, one per
// frame. Returns nil if err carries no stack.
func Frames(err error) []string {
	var tracer stackTracer
	if err == nil || !As(err, &tracer) {
		return nil
	}
	return FormatFrames(tracer.StackTrace())
}

// FormatFrames renders each frame of st as "function (file:line)".
func FormatFrames(st pkgerrors.StackTrace) []string {
	frames := make([]string, 0, len(st))
	for _, f := range st {
		frames = append(frames, fmt.Sprintf("%n (%s:%d)", f, f, f))
	}
	return frames
}
