//go:build !windows

package status

// win32Message off Windows has no FormatMessageW to ask; it renders the
// Generic description of the translated code instead.
func win32Message(value int64) string {
	if value == win32Success {
		return "success"
	}
	if e, ok := win32ToGeneric[value]; ok {
		if m, found := errnoMessages[e]; found {
			return m
		}
	}
	return msgFallback
}
