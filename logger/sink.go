package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Sink is a polymorphic output target for formatted entries. Every sink
// filters independently against its own minimum level, in addition to the
// logger's global minimum. Implementations must tolerate concurrent Sink
// calls: the thread-safe synchronous logger variant delivers from many
// goroutines at once.
type Sink interface {
	// Sink writes the entry if it passes the sink's level filter.
	Sink(e Entry)
	// Level returns the sink's minimum level.
	Level() Level
	// SetLevel replaces the sink's minimum level.
	SetLevel(level Level)
}

// WriterSink delivers entries to an io.Writer, one line per entry.
// Internally synchronized.
type WriterSink struct {
	mu    sync.Mutex
	w     io.Writer
	level Level
}

// NewWriterSink wraps w with the given minimum level.
func NewWriterSink(w io.Writer, level Level) *WriterSink {
	return &WriterSink{w: w, level: normLevel(level)}
}

// NewStdoutSink returns a stdout sink, defaulting to LevelInfo.
func NewStdoutSink() *WriterSink { return NewWriterSink(os.Stdout, LevelInfo) }

// NewStderrSink returns a stderr sink, defaulting to LevelError.
func NewStderrSink() *WriterSink { return NewWriterSink(os.Stderr, LevelError) }

func (s *WriterSink) Sink(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.Level() < s.level {
		return
	}
	// Write errors are swallowed: a sink is a best-effort diagnostic
	// endpoint with nowhere better to report to.
	fmt.Fprintln(s.w, e.Text())
}

func (s *WriterSink) Level() Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

func (s *WriterSink) SetLevel(level Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = normLevel(level)
}

// File sink path defaults, mirroring the library's historical layout under
// the system temp directory.
const (
	DefaultFileSubdir = "Hyperion"
	DefaultFileRoot   = "Hyperion"

	fileTimeLayout = "[2006-01-02=15-04-05]"
)

// FileSink appends entries to a timestamped log file under the system temp
// directory. Defaults to LevelMessage, admitting every entry.
type FileSink struct {
	WriterSink
	file *os.File
	path string
}

// NewFileSink creates <temp dir>/<subdir>/<timestamp> <root>.log, creating
// the subdirectory if absent. Empty subdir or root fall back to the
// defaults.
func NewFileSink(subdir, root string) (*FileSink, error) {
	if subdir == "" {
		subdir = DefaultFileSubdir
	}
	if root == "" {
		root = DefaultFileRoot
	}
	dir := filepath.Join(os.TempDir(), subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("logger: create log directory %s: %w", dir, err)
	}
	name := time.Now().UTC().Format(fileTimeLayout) + " " + root + ".log"
	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logger: open log file %s: %w", path, err)
	}
	s := &FileSink{file: f, path: path}
	s.w = f
	s.level = LevelMessage
	return s, nil
}

// Path returns the log file's location.
func (s *FileSink) Path() string { return s.path }

// Close flushes and closes the underlying file.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}

// DefaultSinks is the default sink set: a file sink admitting everything
// plus stdout and stderr console sinks at their default levels.
func DefaultSinks() ([]Sink, error) {
	fs, err := NewFileSink("", "")
	if err != nil {
		return nil, err
	}
	return []Sink{fs, NewStdoutSink(), NewStderrSink()}, nil
}
