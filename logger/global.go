package logger

import "sync"

// Process-wide logger with an explicit lifecycle: nothing is installed
// until SetGlobal, and the accessors report CategoryNotInitialized rather
// than lazily constructing anything. Startup ordering stays explicit and
// testable.
var (
	globalMu sync.RWMutex
	global   *Logger
)

// SetGlobal installs l as the process-wide logger and returns the previous
// one (nil if none). Passing nil tears the global logger down without
// closing it; the caller keeps ownership of the returned logger.
func SetGlobal(l *Logger) *Logger {
	globalMu.Lock()
	defer globalMu.Unlock()
	prev := global
	global = l
	return prev
}

// Global returns the installed logger, or ErrNotInitialized when SetGlobal
// has not been called.
func Global() (*Logger, error) {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if global == nil {
		return nil, ErrNotInitialized
	}
	return global, nil
}

// CloseGlobal closes and uninstalls the global logger. A no-op error-free
// call when none is installed.
func CloseGlobal() error {
	globalMu.Lock()
	l := global
	global = nil
	globalMu.Unlock()
	if l == nil {
		return nil
	}
	return l.Close()
}

func logGlobal(level Level, format string, args ...any) error {
	l, err := Global()
	if err != nil {
		return err
	}
	return l.Log(level, format, args...)
}

// Message logs at LevelMessage via the global logger.
func Message(format string, args ...any) error {
	return logGlobal(LevelMessage, format, args...)
}

// Trace logs at LevelTrace via the global logger.
func Trace(format string, args ...any) error {
	return logGlobal(LevelTrace, format, args...)
}

// Info logs at LevelInfo via the global logger.
func Info(format string, args ...any) error {
	return logGlobal(LevelInfo, format, args...)
}

// Warn logs at LevelWarn via the global logger.
func Warn(format string, args ...any) error {
	return logGlobal(LevelWarn, format, args...)
}

// Error logs at LevelError via the global logger.
func Error(format string, args ...any) error {
	return logGlobal(LevelError, format, args...)
}
