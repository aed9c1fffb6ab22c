//go:build windows

package status

import (
	"strings"

	"golang.org/x/sys/windows"
)

// win32Message renders a Win32 code via FormatMessageW with a
// fixed-then-growing buffer, retrying on insufficient-buffer errors and
// trimming trailing newlines. Degrades to the fixed fallback string when
// the system has no text for the code.
func win32Message(value int64) string {
	if value < 0 || value > 0xFFFFFFFF {
		return msgFallback
	}
	flags := uint32(windows.FORMAT_MESSAGE_FROM_SYSTEM | windows.FORMAT_MESSAGE_IGNORE_INSERTS)
	for size := uint32(256); size <= 1<<16; size *= 2 {
		buf := make([]uint16, size)
		n, err := windows.FormatMessage(flags, 0, uint32(value), 0, buf, nil)
		if err == nil && n > 0 {
			return strings.TrimRight(windows.UTF16ToString(buf[:n]), "\r\n ")
		}
		if err != windows.ERROR_INSUFFICIENT_BUFFER {
			break
		}
	}
	return msgFallback
}
