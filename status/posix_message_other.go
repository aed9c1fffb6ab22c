//go:build !unix

package status

// posixMessage on platforms without a POSIX strerror facility renders from
// the portable table. The numeric values are still POSIX errno, whatever
// the host numbering is.
func posixMessage(value int64) string {
	if m, ok := errnoMessages[Errno(value)]; ok {
		return m
	}
	return msgFallback
}
