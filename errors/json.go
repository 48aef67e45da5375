package errors

import (
	"encoding/json"
)

// ErrorResponse is the flat JSON form of an error. The wrapped cause chain
// and the stack trace are never included.
type ErrorResponse struct {
	// Kind is the name of the error kind.
	Kind string `json:"kind"`

	// Code is the numeric code, omitted when zero.
	Code int `json:"code,omitempty"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Classification indicates whether the error is retryable or permanent.
	Classification string `json:"classification"`

	// Context contains optional metadata about the error.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// Plain errors are reported as KindRuntime with a permanent classification.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	var appErr AppError
	if As(err, &appErr) {
		return &ErrorResponse{
			Kind:           appErr.Kind().String(),
			Code:           appErr.Code(),
			Message:        appErr.Message(),
			Classification: string(appErr.Classification()),
			Context:        appErr.Context(),
		}
	}

	return &ErrorResponse{
		Kind:           KindRuntime.String(),
		Message:        err.Error(),
		Classification: string(ClassificationPermanent),
	}
}

// MarshalJSON implements json.Marshaler for appError.
func (e *appError) MarshalJSON() ([]byte, error) {
	response := &ErrorResponse{
		Kind:           e.kind.String(),
		Code:           e.code,
		Message:        e.message,
		Classification: string(e.classification),
		Context:        e.context,
	}
	data, err := json.Marshal(response)
	if err != nil {
		return nil, Wrap(err, KindParse, "failed to marshal error response")
	}
	return data, nil
}
