package errors

import "errors"

// toAppError returns err as an AppError, classifying plain errors as
// KindRuntime.
func toAppError(err error) *appError {
	var appErr *appError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &appError{
		kind:           KindRuntime,
		classification: classify(KindRuntime, 0),
		message:        err.Error(),
		cause:          err,
		stack:          callers(stackSkip),
	}
}

// clone returns a shallow copy of e with its own context map.
func (e *appError) clone() *appError {
	c := *e
	c.context = copyContext(e.context)
	return &c
}

// WithContext adds a single context field to an error.
// Returns a new AppError with the context field added.
// Existing context fields are preserved.
//
// If err is not an AppError, it is classified as KindRuntime first.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.Parse(decodeErr)
//	err = errors.WithContext(err, "endpoint", "/v1/orders")
func WithContext(err error, key string, value interface{}) AppError {
	if err == nil {
		return nil
	}

	e := toAppError(err).clone()
	if e.context == nil {
		e.context = make(map[string]interface{}, 1)
	}
	e.context[key] = value
	return e
}

// WithContextMap adds multiple context fields to an error.
// Returns a new AppError with the context fields merged.
// New fields override existing ones with the same key.
//
// If err is not an AppError, it is classified as KindRuntime first.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) AppError {
	if err == nil {
		return nil
	}

	e := toAppError(err).clone()
	if e.context == nil {
		e.context = make(map[string]interface{}, len(ctx))
	}
	for k, v := range ctx {
		e.context[k] = v
	}
	return e
}

// WithClassification overrides the classification of an error.
// Kind and code are never changed.
//
// If err is not an AppError, it is classified as KindRuntime first.
// Returns nil if err is nil.
func WithClassification(err error, classification ErrorClassification) AppError {
	if err == nil {
		return nil
	}

	e := toAppError(err).clone()
	e.classification = classification
	return e
}
