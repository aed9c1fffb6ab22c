package logger

// Level is the severity of a log entry, ordered from least to most severe.
// LevelDisabled is a minimum-level configuration sentinel only; it is
// never the level of an entry.
type Level uint8

const (
	LevelMessage Level = iota
	LevelTrace
	LevelInfo
	LevelWarn
	LevelError
	LevelDisabled
	levelCount // for bounds checks only
)

// levelTags are the tags embedded in formatted entry text.
var levelTags = [levelCount]string{
	"MESSAGE",
	"TRACE",
	"INFO",
	"WARN",
	"ERROR",
	"DISABLED",
}

// String returns the entry-text tag for the level.
func (l Level) String() string {
	if l >= levelCount {
		return "UNKNOWN"
	}
	return levelTags[l]
}

// valid reports whether l is a level an entry may carry.
func (l Level) valid() bool { return l < LevelDisabled }

// normLevel clamps an out-of-range minimum-level configuration value.
func normLevel(l Level) Level {
	if l > LevelDisabled {
		return LevelDisabled
	}
	return l
}
