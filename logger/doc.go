// doc.go — package documentation for hyperion/logger
//
// Package logger provides a leveled logging engine with four behavioral
// variants chosen at construction time: synchronous or asynchronous
// delivery, each in a single-threaded or thread-safe flavor. Formatted
// entries fan out to a set of owned sinks (file, stdout, stderr, or any
// io.Writer), each with its own minimum-level filter.
//
// The async variants buffer entries in a bounded queue drained by one
// background goroutine. The queue's overflow policy decides what a push
// does at capacity: block, fail with a queueing error, or overwrite the
// oldest entry. Close signals the consumer, drains every remaining entry
// to every sink, and only then returns; nothing successfully enqueued is
// lost on shutdown.
//
// The engine reports its own conditions as status codes in a dedicated
// logger error domain (see Category): a push rejected by a full queue, a
// call below the configured minimum level (an expected, ignorable
// outcome), or use of the global accessors before SetGlobal.
//
// Level filtering is inclusive: an entry passes a filter when its level is
// at or above the configured minimum, so a minimum of LevelMessage admits
// every entry and LevelDisabled admits none.
package logger
