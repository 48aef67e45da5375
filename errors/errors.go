package errors

import pkgerrors "github.com/pkg/errors"

// AppError is a failure classified into the application's taxonomy.
//
// AppError provides the kind and code used to pick a user facing message,
// classification for retry logic, contextual metadata, the captured stack
// trace, and compatibility with standard library error handling
// (errors.Is, errors.As, errors.Unwrap).
type AppError interface {
	error

	// Kind returns the category of the failure.
	Kind() Kind

	// Code returns the numeric code. It is only meaningful for
	// KindHTTPStatus and KindHTTPError and zero otherwise.
	Code() int

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// StackTrace returns the stack of the cause, or the stack of the
	// classification site when the cause does not carry one.
	StackTrace() pkgerrors.StackTrace

	// Unwrap returns the wrapped cause. Returns nil for errors built
	// without a cause, such as HTTPStatus.
	Unwrap() error
}
