package logger

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
	"time"
)

// entryTimeLayout renders entry timestamps, always in UTC.
const entryTimeLayout = "[2006-01-02|15:04:05]"

// Entry is one fully formatted log line. Formatting (timestamp, thread id,
// level tag) happens exactly once, at creation; sinks only ever see the
// finished text. Immutable after construction.
type Entry struct {
	level Level
	text  string
}

// NewEntry formats an entry as
//
//	"[YYYY-MM-DD|HH:MM:SS] [Thread ID: <tid>] [<LEVEL>]: <message>"
//
// with the wall clock taken in UTC at the call.
func NewEntry(level Level, threadID uint64, message string) Entry {
	ts := time.Now().UTC().Format(entryTimeLayout)
	return Entry{
		level: level,
		text:  fmt.Sprintf("%s [Thread ID: %d] [%s]: %s", ts, threadID, level, message),
	}
}

// Level returns the severity the entry was logged at.
func (e Entry) Level() Level { return e.level }

// Text returns the formatted line, without a trailing newline.
func (e Entry) Text() string { return e.text }

// goroutineID extracts the numeric id of the calling goroutine from the
// runtime stack header ("goroutine N [running]:"). It stands in for the
// producing thread id in entry text; callers that track their own ids use
// LogWithID instead.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
