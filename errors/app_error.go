package errors

import (
	"fmt"
	"io"

	pkgerrors "github.com/pkg/errors"
)

// appError is the concrete implementation of AppError.
// It is private to enforce construction through package functions.
type appError struct {
	kind           Kind
	code           int
	classification ErrorClassification
	message        string
	context        map[string]interface{}
	cause          error
	stack          pkgerrors.StackTrace
}

// Error returns the string representation of the error.
// Format: "[KIND] message" or "[KIND] message: cause" when the message
// differs from the cause text.
func (e *appError) Error() string {
	if e.cause != nil && e.message != e.cause.Error() {
		return fmt.Sprintf("[%s] %s: %v", e.kind, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.kind, e.message)
}

// Kind returns the error kind.
func (e *appError) Kind() Kind {
	return e.kind
}

// Code returns the error code.
func (e *appError) Code() int {
	return e.code
}

// Classification returns the error classification.
func (e *appError) Classification() ErrorClassification {
	return e.classification
}

// Message returns the error message.
func (e *appError) Message() string {
	return e.message
}

// Context returns a copy of the context map, or nil.
func (e *appError) Context() map[string]interface{} {
	return copyContext(e.context)
}

// StackTrace returns the cause's own stack when it has one.
func (e *appError) StackTrace() pkgerrors.StackTrace {
	var tracer stackTracer
	if e.cause != nil && As(e.cause, &tracer) {
		return tracer.StackTrace()
	}
	return e.stack
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *appError) Unwrap() error {
	return e.cause
}

// Format implements fmt.Formatter. %+v prints the error followed by its
// stack trace, one frame per entry.
func (e *appError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.Error())
			e.StackTrace().Format(s, verb)
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

func copyContext(ctx map[string]interface{}) map[string]interface{} {
	if ctx == nil {
		return nil
	}
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
