package errors

// Kind identifies the subsystem a failure originated from.
// The numeric values match the tags the client has always persisted.
type Kind byte

const (
	// KindNetwork indicates the host is unknown or refused the connection.
	KindNetwork Kind = 0x01

	// KindSocket indicates a failure on an established connection.
	KindSocket Kind = 0x02

	// KindHTTPStatus indicates an unexpected HTTP status code.
	KindHTTPStatus Kind = 0x03

	// KindHTTPError indicates a failed HTTP exchange.
	KindHTTPError Kind = 0x04

	// KindParse indicates a malformed response body.
	KindParse Kind = 0x05

	// KindIO indicates a generic I/O failure.
	KindIO Kind = 0x06

	// KindRuntime is the catch-all kind.
	KindRuntime Kind = 0x07

	// KindServer indicates a failure reported by the server.
	KindServer Kind = 0x08
)

var kindNames = map[Kind]string{
	KindNetwork:    "NETWORK",
	KindSocket:     "SOCKET",
	KindHTTPStatus: "HTTP_STATUS",
	KindHTTPError:  "HTTP_ERROR",
	KindParse:      "PARSE",
	KindIO:         "IO",
	KindRuntime:    "RUNTIME",
	KindServer:     "SERVER",
}

// Kinds returns every kind in tag order.
func Kinds() []Kind {
	return []Kind{
		KindNetwork,
		KindSocket,
		KindHTTPStatus,
		KindHTTPError,
		KindParse,
		KindIO,
		KindRuntime,
		KindServer,
	}
}

// String returns the upper snake case name of the kind, or "UNKNOWN".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Valid reports whether k is one of the eight defined kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// HasCode reports whether errors of this kind carry a meaningful code.
func (k Kind) HasCode() bool {
	return k == KindHTTPStatus || k == KindHTTPError
}

// ParseKind returns the kind named by s (as produced by Kind.String).
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}
