//go:build windows

package errors

import (
	"syscall"

	"golang.org/x/sys/windows"
)

var (
	hostUnreachableErrnos = []syscall.Errno{
		windows.WSAEHOSTUNREACH,
		windows.WSAENETUNREACH,
	}

	connectionRefusedErrnos = []syscall.Errno{
		windows.WSAECONNREFUSED,
	}

	socketErrnos = []syscall.Errno{
		windows.WSAECONNRESET,
		windows.WSAECONNABORTED,
		windows.WSAETIMEDOUT,
		windows.WSAENOTCONN,
		windows.WSAENETDOWN,
		windows.WSAENETRESET,
	}
)
