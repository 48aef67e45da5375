package errors

import "fmt"

// stackSkip drops the constructor and newAppError frames from captured stacks.
const stackSkip = 2

// newAppError builds an AppError and records the stack of the caller of the
// public constructor. Constructors must call it directly so that the skip
// count stays fixed.
func newAppError(kind Kind, code int, message string, cause error) *appError {
	if message == "" {
		message = defaultMessage(kind, code, cause)
	}
	return &appError{
		kind:           kind,
		code:           code,
		classification: classify(kind, code),
		message:        message,
		cause:          cause,
		stack:          callers(stackSkip),
	}
}

func defaultMessage(kind Kind, code int, cause error) string {
	switch {
	case cause != nil:
		return cause.Error()
	case kind == KindHTTPStatus:
		return fmt.Sprintf("unexpected http status %d", code)
	default:
		return fmt.Sprintf("%s failure", kind)
	}
}

// HTTPStatus classifies an unexpected HTTP status code. The error has no cause.
//
// Example:
//
//	if resp.StatusCode != http.StatusOK {
//	    return errors.HTTPStatus(resp.StatusCode)
//	}
func HTTPStatus(code int) AppError {
	return newAppError(KindHTTPStatus, code, "", nil)
}

// HTTP classifies a failed HTTP exchange.
func HTTP(cause error) AppError {
	return newAppError(KindHTTPError, 0, "", cause)
}

// HTTPWithCode classifies a failed HTTP exchange that produced a code.
func HTTPWithCode(code int, cause error) AppError {
	return newAppError(KindHTTPError, code, "", cause)
}

// Socket classifies a failure on an established connection.
func Socket(cause error) AppError {
	return newAppError(KindSocket, 0, "", cause)
}

// IO classifies a failure caught around an I/O operation.
//
// Host and connect failures become KindNetwork. Other I/O failures,
// including socket level ones, become KindIO. Anything else is classified
// as Runtime would.
func IO(cause error) AppError {
	switch c := CauseOf(cause); {
	case c.IsConnect():
		return newAppError(KindNetwork, 0, "", cause)
	case c == CauseIO, c == CauseSocket:
		return newAppError(KindIO, 0, "", cause)
	default:
		return newAppError(KindRuntime, 0, "", cause)
	}
}

// Parse classifies a failure to decode data, such as a malformed response body.
func Parse(cause error) AppError {
	return newAppError(KindParse, 0, "", cause)
}

// Network classifies a failure caught around a network request.
//
// Host and connect failures become KindNetwork, HTTP protocol failures
// KindHTTPError and socket failures KindSocket. Any other cause falls back
// to KindHTTPError.
func Network(cause error) AppError {
	switch c := CauseOf(cause); {
	case c.IsConnect():
		return newAppError(KindNetwork, 0, "", cause)
	case c == CauseHTTPProtocol:
		return newAppError(KindHTTPError, 0, "", cause)
	case c == CauseSocket:
		return newAppError(KindSocket, 0, "", cause)
	default:
		return newAppError(KindHTTPError, 0, "", cause)
	}
}

// Runtime classifies any failure. It is the catch-all.
func Runtime(cause error) AppError {
	return newAppError(KindRuntime, 0, "", cause)
}

// Server classifies a failure reported by the server.
func Server(cause error) AppError {
	return newAppError(KindServer, 0, "", cause)
}

// Classify picks the kind from the cause category alone, for callers that
// do not know where the failure came from. If err is or wraps an AppError,
// that AppError is returned unchanged.
// Returns nil if err is nil.
func Classify(err error) AppError {
	if err == nil {
		return nil
	}
	var appErr AppError
	if As(err, &appErr) {
		return appErr
	}
	switch c := CauseOf(err); {
	case c.IsConnect():
		return newAppError(KindNetwork, 0, "", err)
	case c == CauseHTTPProtocol:
		return newAppError(KindHTTPError, 0, "", err)
	case c == CauseSocket:
		return newAppError(KindSocket, 0, "", err)
	case c == CauseIO:
		return newAppError(KindIO, 0, "", err)
	default:
		return newAppError(KindRuntime, 0, "", err)
	}
}
