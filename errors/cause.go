package errors

import (
	stderrors "errors"
	"io"
	"io/fs"
	"net"
	"net/http"
	"net/textproto"
	"os"
	"slices"
	"strings"
	"syscall"
)

// Cause is the category of an underlying failure, decided once where the
// failure is caught and then matched by the classification constructors.
type Cause int

const (
	// CauseOther is any failure that fits no other category.
	CauseOther Cause = iota

	// CauseHostUnreachable covers name resolution failures and unreachable
	// hosts or networks.
	CauseHostUnreachable

	// CauseConnectionRefused covers connections actively refused by the peer.
	CauseConnectionRefused

	// CauseHTTPProtocol covers malformed or unexpected HTTP exchanges.
	CauseHTTPProtocol

	// CauseSocket covers failures on an established connection.
	CauseSocket

	// CauseIO covers generic I/O and file system failures.
	CauseIO
)

var causeNames = [...]string{
	CauseOther:             "other",
	CauseHostUnreachable:   "host_unreachable",
	CauseConnectionRefused: "connection_refused",
	CauseHTTPProtocol:      "http_protocol",
	CauseSocket:            "socket",
	CauseIO:                "io",
}

// String returns the snake case name of the cause.
func (c Cause) String() string {
	if c >= 0 && int(c) < len(causeNames) {
		return causeNames[c]
	}
	return causeNames[CauseOther]
}

// IsConnect reports whether the cause is a host or connect failure.
func (c Cause) IsConnect() bool {
	return c == CauseHostUnreachable || c == CauseConnectionRefused
}

// Sentinels for libraries that report failures without OS error numbers.
// Wrap them (fmt.Errorf("...: %w", ErrSocket)) to steer CauseOf.
var (
	ErrHostUnreachable   = stderrors.New("host unreachable")
	ErrConnectionRefused = stderrors.New("connection refused")
	ErrHTTPProtocol      = stderrors.New("http protocol error")
	ErrSocket            = stderrors.New("socket error")
)

// httpProtocolSuffixes are error texts net/http produces without a typed error.
var httpProtocolSuffixes = []string{
	"server gave HTTP response to HTTPS client",
	"unexpected EOF reading trailer",
	"too many redirects",
}

// CauseOf returns the category of err. Categories are tested in a fixed
// priority order: host unreachable, connection refused, HTTP protocol,
// socket, I/O. The first match wins. A nil error is CauseOther.
func CauseOf(err error) Cause {
	switch {
	case err == nil:
		return CauseOther
	case isHostUnreachable(err):
		return CauseHostUnreachable
	case isConnectionRefused(err):
		return CauseConnectionRefused
	case isHTTPProtocol(err):
		return CauseHTTPProtocol
	case isSocket(err):
		return CauseSocket
	case isIO(err):
		return CauseIO
	default:
		return CauseOther
	}
}

func isHostUnreachable(err error) bool {
	if stderrors.Is(err, ErrHostUnreachable) {
		return true
	}
	var dnsErr *net.DNSError
	if stderrors.As(err, &dnsErr) {
		return true
	}
	return errnoIn(err, hostUnreachableErrnos)
}

func isConnectionRefused(err error) bool {
	return stderrors.Is(err, ErrConnectionRefused) || errnoIn(err, connectionRefusedErrnos)
}

func isHTTPProtocol(err error) bool {
	if stderrors.Is(err, ErrHTTPProtocol) ||
		stderrors.Is(err, http.ErrBodyReadAfterClose) ||
		stderrors.Is(err, http.ErrContentLength) ||
		stderrors.Is(err, http.ErrSchemeMismatch) ||
		stderrors.Is(err, http.ErrMissingFile) {
		return true
	}
	var protoErr textproto.ProtocolError
	if stderrors.As(err, &protoErr) {
		return true
	}
	s := err.Error()
	if strings.Contains(s, "malformed HTTP") {
		return true
	}
	for _, suffix := range httpProtocolSuffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func isSocket(err error) bool {
	if stderrors.Is(err, ErrSocket) || stderrors.Is(err, net.ErrClosed) || stderrors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	if errnoIn(err, socketErrnos) {
		return true
	}
	var opErr *net.OpError
	return stderrors.As(err, &opErr)
}

func isIO(err error) bool {
	for _, target := range []error{
		io.EOF,
		io.ErrUnexpectedEOF,
		io.ErrShortWrite,
		io.ErrShortBuffer,
		io.ErrClosedPipe,
		fs.ErrPermission,
		fs.ErrNotExist,
		fs.ErrExist,
		fs.ErrClosed,
	} {
		if stderrors.Is(err, target) {
			return true
		}
	}
	var pathErr *fs.PathError
	if stderrors.As(err, &pathErr) {
		return true
	}
	var sysErr *os.SyscallError
	if stderrors.As(err, &sysErr) {
		return true
	}
	var errno syscall.Errno
	return stderrors.As(err, &errno)
}

func errnoIn(err error, set []syscall.Errno) bool {
	var errno syscall.Errno
	if !stderrors.As(err, &errno) {
		return false
	}
	return slices.Contains(set, errno)
}
