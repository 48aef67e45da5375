package errors

import "net/http"

// ErrorClassification indicates whether an error should trigger a retry.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Examples: unreachable hosts, dropped connections, 503 responses.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: malformed responses, local I/O errors, programming errors.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps kinds to their default classification.
// KindHTTPStatus is decided by the status code, see classify.
var defaultClassifications = map[Kind]ErrorClassification{
	// Retryable errors (temporary failures)
	KindNetwork:   ClassificationRetryable,
	KindSocket:    ClassificationRetryable,
	KindHTTPError: ClassificationRetryable,
	KindServer:    ClassificationRetryable,

	// Permanent errors (will not succeed on retry)
	KindParse:   ClassificationPermanent,
	KindIO:      ClassificationPermanent,
	KindRuntime: ClassificationPermanent,
}

// classify returns the default classification for a kind and code.
// Returns ClassificationPermanent for unknown kinds (safe default).
func classify(kind Kind, code int) ErrorClassification {
	if kind == KindHTTPStatus {
		switch {
		case code == http.StatusRequestTimeout, code == http.StatusTooManyRequests:
			return ClassificationRetryable
		case code >= 500 && code <= 599:
			return ClassificationRetryable
		default:
			return ClassificationPermanent
		}
	}
	if class, ok := defaultClassifications[kind]; ok {
		return class
	}
	return ClassificationPermanent
}
