package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetKind extracts the Kind from an error.
// Returns KindRuntime if the error is not an AppError, and 0 if it is nil.
func GetKind(err error) Kind {
	if err == nil {
		return 0
	}

	var appErr AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindRuntime
}

// GetCode extracts the code from an error.
// Returns 0 if the error is nil or not an AppError.
func GetCode(err error) int {
	var appErr AppError
	if err != nil && stderrors.As(err, &appErr) {
		return appErr.Code()
	}
	return 0
}

// GetClassification extracts the ErrorClassification from an error.
// Returns ClassificationPermanent if the error is nil or not an AppError.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var appErr AppError
	if stderrors.As(err, &appErr) {
		return appErr.Classification()
	}

	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or not an AppError (safe default).
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
