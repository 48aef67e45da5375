//go:build js || wasip1

package errors

import "syscall"

var (
	hostUnreachableErrnos   = []syscall.Errno{syscall.EHOSTUNREACH, syscall.ENETUNREACH}
	connectionRefusedErrnos = []syscall.Errno{syscall.ECONNREFUSED}
	socketErrnos            = []syscall.Errno{syscall.ECONNRESET, syscall.ECONNABORTED, syscall.EPIPE, syscall.ETIMEDOUT}
)
