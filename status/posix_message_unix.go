//go:build unix

package status

import (
	"strings"
	"syscall"
)

// posixMessage asks the C library's error-string table via syscall.Errno.
// Values a syscall.Errno cannot represent degrade to the portable table,
// then to the fixed fallback string.
func posixMessage(value int64) string {
	if value < 0 || int64(syscall.Errno(value)) != value {
		return posixMessagePortable(value)
	}
	msg := syscall.Errno(value).Error()
	if msg == "" {
		return posixMessagePortable(value)
	}
	return strings.TrimRight(msg, "\r\n")
}

func posixMessagePortable(value int64) string {
	if m, ok := errnoMessages[Errno(value)]; ok {
		return m
	}
	return msgFallback
}
