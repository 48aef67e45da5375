package errors

import (
	"errors"
	"fmt"
)

// Wrap classifies err as kind with a custom message while preserving err as
// the cause. The wrapped error is accessible via Unwrap() and compatible
// with errors.Is and errors.As.
//
// If the wrapped error is an AppError, its classification is preserved.
// Otherwise, the default classification for the kind is used.
//
// Returns nil if err is nil.
//
// Example:
//
//	data, err := fsys.ReadFile(path)
//	if err != nil {
//	    return errors.Wrap(err, errors.KindIO, "failed to read config")
//	}
func Wrap(err error, kind Kind, message string) AppError {
	if err == nil {
		return nil
	}

	e := newAppError(kind, 0, message, err)
	var appErr AppError
	if errors.As(err, &appErr) {
		e.classification = appErr.Classification()
	}
	return e
}

// Wrapf wraps an error with a formatted message while preserving the original error.
//
// Returns nil if err is nil.
func Wrapf(err error, kind Kind, format string, args ...interface{}) AppError {
	if err == nil {
		return nil
	}

	e := newAppError(kind, 0, fmt.Sprintf(format, args...), err)
	var appErr AppError
	if errors.As(err, &appErr) {
		e.classification = appErr.Classification()
	}
	return e
}
