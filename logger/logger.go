package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/hyperutils/hyperion/queue"
)

// Policy selects the logger's behavioral variant at construction time:
// the cross product of {single-threaded, thread-safe} delivery callers and
// {synchronous, asynchronous} delivery.
type Policy uint8

const (
	// SingleThreaded delivers inline with no locking. Only one goroutine
	// may call Log.
	SingleThreaded Policy = iota
	// SingleThreadedAsync enqueues for a background consumer; one
	// producing goroutine.
	SingleThreadedAsync
	// MultiThreaded delivers inline; any number of goroutines may call
	// Log concurrently.
	MultiThreaded
	// MultiThreadedAsync enqueues for a background consumer; any number
	// of producing goroutines.
	MultiThreadedAsync
)

// Async reports whether the policy buffers entries for a background
// consumer goroutine.
func (p Policy) Async() bool {
	return p == SingleThreadedAsync || p == MultiThreadedAsync
}

// DefaultCapacity is the queue capacity async variants use when the
// configuration leaves Capacity zero.
const DefaultCapacity = 512

// Config selects the logger's variant and tuning. The zero value is
// usable: a single-threaded synchronous logger passing every level.
type Config struct {
	// MinLevel drops entries below it before formatting or queueing.
	// Inclusive: an entry at exactly MinLevel is delivered. LevelDisabled
	// drops everything.
	MinLevel Level
	// Policy picks the behavioral variant. Fixed for the logger's
	// lifetime.
	Policy Policy
	// Overflow is the queue policy for async variants.
	Overflow queue.Policy
	// Capacity bounds the async queue; 0 means DefaultCapacity.
	Capacity int
	// Fallback receives reports of internal faults (a sink panicking),
	// defaulting to stderr.
	Fallback io.Writer
}

// Logger fans formatted entries out to its owned sinks per the configured
// policy. Construct with New or NewDefault; async variants must be
// Closed to stop and drain the consumer goroutine.
type Logger struct {
	cfg      Config
	fallback io.Writer

	// sinksMu guards the collection for the thread-safe synchronous
	// variant. The collection never mutates after construction, so it is
	// only ever taken for reading; the lock exists so mutation could be
	// added without changing the concurrency contract.
	sinksMu sync.RWMutex
	sinks   []Sink

	// Async machinery. wake carries at most one pending signal; the
	// consumer drains the queue completely per wakeup, so a push that
	// finds the signal already pending loses nothing.
	q         *queue.Bounded[Entry]
	wake      chan struct{}
	stop      chan struct{}
	consumer  sync.WaitGroup
	closeOnce sync.Once

	stateMu sync.RWMutex
	stopped bool
}

// New builds a Logger owning the given sinks. Sinks must not be shared
// across loggers. Async variants start their consumer goroutine here.
func New(cfg Config, sinks ...Sink) *Logger {
	cfg.MinLevel = normLevel(cfg.MinLevel)
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.Fallback == nil {
		cfg.Fallback = os.Stderr
	}
	l := &Logger{
		cfg:      cfg,
		fallback: cfg.Fallback,
		sinks:    sinks,
	}
	if cfg.Policy.Async() {
		l.q = queue.New[Entry](cfg.Capacity, cfg.Overflow)
		l.wake = make(chan struct{}, 1)
		l.stop = make(chan struct{})
		l.consumer.Add(1)
		go l.consume()
	}
	return l
}

// NewDefault builds a Logger with the default sink set (file, stdout,
// stderr).
func NewDefault(cfg Config) (*Logger, error) {
	sinks, err := DefaultSinks()
	if err != nil {
		return nil, err
	}
	return New(cfg, sinks...), nil
}

// Log formats message with args and delivers it at the given level. The
// producing goroutine's id is embedded as the thread id. Returns the
// level status error for below-minimum calls (expected, ignorable) and
// the queueing status error when an ErrWhenFull queue rejects the entry.
func (l *Logger) Log(level Level, format string, args ...any) error {
	return l.LogWithID(goroutineID(), level, format, args...)
}

// LogWithID is Log with a caller-supplied thread id override.
func (l *Logger) LogWithID(threadID uint64, level Level, format string, args ...any) error {
	if !level.valid() || level < l.cfg.MinLevel {
		// Cheap early-out: the entry is never formatted.
		return ErrLevel
	}
	entry := NewEntry(level, threadID, fmt.Sprintf(format, args...))
	switch l.cfg.Policy {
	case SingleThreaded:
		l.deliver(entry)
	case MultiThreaded:
		l.sinksMu.RLock()
		l.deliver(entry)
		l.sinksMu.RUnlock()
	default:
		return l.enqueue(entry)
	}
	return nil
}

// Message logs at LevelMessage.
func (l *Logger) Message(format string, args ...any) error {
	return l.Log(LevelMessage, format, args...)
}

// Trace logs at LevelTrace.
func (l *Logger) Trace(format string, args ...any) error {
	return l.Log(LevelTrace, format, args...)
}

// Info logs at LevelInfo.
func (l *Logger) Info(format string, args ...any) error {
	return l.Log(LevelInfo, format, args...)
}

// Warn logs at LevelWarn.
func (l *Logger) Warn(format string, args ...any) error {
	return l.Log(LevelWarn, format, args...)
}

// Error logs at LevelError.
func (l *Logger) Error(format string, args ...any) error {
	return l.Log(LevelError, format, args...)
}

// MinLevel returns the logger's configured minimum level.
func (l *Logger) MinLevel() Level { return l.cfg.MinLevel }

// Policy returns the behavioral variant the logger was built with.
func (l *Logger) Policy() Policy { return l.cfg.Policy }

// Close stops the logger. For async variants it signals the consumer,
// waits for a final full drain of the queue (every successfully enqueued
// entry reaches every sink), and joins the goroutine. Then sinks
// implementing io.Closer are closed. Safe to call more than once.
func (l *Logger) Close() error {
	var errs []error
	l.closeOnce.Do(func() {
		l.stateMu.Lock()
		l.stopped = true
		l.stateMu.Unlock()
		if l.cfg.Policy.Async() {
			close(l.stop)
			l.consumer.Wait()
		}
		for _, s := range l.sinks {
			if c, ok := s.(io.Closer); ok {
				if err := c.Close(); err != nil {
					errs = append(errs, err)
				}
			}
		}
	})
	return errors.Join(errs...)
}

// enqueue pushes the entry per the overflow policy and signals the
// consumer.
func (l *Logger) enqueue(entry Entry) error {
	l.stateMu.RLock()
	defer l.stateMu.RUnlock()
	if l.stopped {
		return errStopped
	}
	if err := l.q.Push(entry); err != nil {
		// Only ErrWhenFull surfaces a push failure.
		return ErrQueueing
	}
	select {
	case l.wake <- struct{}{}:
	default:
		// A wakeup is already pending; the consumer drains greedily.
	}
	return nil
}

// consume is the single background goroutine of async variants: wait for
// a wakeup, drain everything available, repeat; on stop, one final drain
// guarantees no buffered entry is lost.
func (l *Logger) consume() {
	defer l.consumer.Done()
	for {
		select {
		case <-l.wake:
			l.drain()
		case <-l.stop:
			l.drain()
			return
		}
	}
}

func (l *Logger) drain() {
	for {
		entry, err := l.q.Pop()
		if err != nil {
			return
		}
		l.deliver(entry)
	}
}

// deliver fans one entry out to every sink in registration order. A
// panicking sink is reported to the fallback writer; delivery to the
// remaining sinks continues.
func (l *Logger) deliver(entry Entry) {
	for _, s := range l.sinks {
		l.sinkOne(s, entry)
	}
}

func (l *Logger) sinkOne(s Sink, entry Entry) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(l.fallback, "logger: panic delivering entry to sink: %v\n", r)
		}
	}()
	s.Sink(entry)
}
