//go:build unix

package errors

import (
	"syscall"

	"golang.org/x/sys/unix"
)

var (
	hostUnreachableErrnos = []syscall.Errno{
		unix.EHOSTUNREACH,
		unix.ENETUNREACH,
	}

	connectionRefusedErrnos = []syscall.Errno{
		unix.ECONNREFUSED,
	}

	socketErrnos = []syscall.Errno{
		unix.ECONNRESET,
		unix.ECONNABORTED,
		unix.EPIPE,
		unix.ETIMEDOUT,
		unix.ENOTCONN,
		unix.ENETDOWN,
		unix.ENETRESET,
	}
)
