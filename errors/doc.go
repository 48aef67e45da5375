// Package errors classifies failures into the application's error taxonomy.
//
// Every failure the client surfaces to a user is carried as an AppError: a
// Kind (one of eight categories), an optional numeric code and the wrapped
// cause. The package stays compatible with the standard library errors
// package (errors.Is, errors.As, errors.Unwrap).
//
// # Kinds
//
//   - KindNetwork: the host could not be resolved or refused the connection
//   - KindSocket: the connection failed after it was established
//   - KindHTTPStatus: the server answered with an unexpected status code
//   - KindHTTPError: the HTTP exchange itself failed
//   - KindParse: a response body could not be decoded
//   - KindIO: local or stream I/O failed
//   - KindRuntime: catch-all for programming and unexpected errors
//   - KindServer: the server reported an application level failure
//
// # Classifying
//
// Each constructor takes the underlying failure and returns an AppError:
//
//	resp, err := client.Do(req)
//	if err != nil {
//	    return errors.Network(err)
//	}
//	if resp.StatusCode != http.StatusOK {
//	    return errors.HTTPStatus(resp.StatusCode)
//	}
//
// Network and IO look at the failure's Cause (see CauseOf) to pick the kind.
// The cause category is decided once, from OS level error numbers and
// standard library error values, and then matched with a plain switch:
//
//	errors.IO(&net.DNSError{IsNotFound: true})  // KindNetwork
//	errors.IO(io.ErrUnexpectedEOF)              // KindIO
//	errors.IO(fmt.Errorf("boom"))               // KindRuntime
//
// Network falls back to KindHTTPError for causes it cannot place. This is
// long standing client behaviour and is kept on purpose.
//
// # Stack traces
//
// An AppError records the stack of the classification site unless its cause
// already carries one (github.com/pkg/errors style). Print it with %+v or
// FormatTrace.
//
// # Retry classification
//
// Kinds carry a default ErrorClassification. Network, socket, HTTP transport
// and server failures are retryable, as are 408, 429 and 5xx status codes.
package errors
