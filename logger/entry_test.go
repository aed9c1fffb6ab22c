package logger

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEntry_Format(t *testing.T) {
	e := NewEntry(LevelInfo, 42, "hello, world")
	assert.Equal(t, LevelInfo, e.Level())
	assert.Regexp(t,
		regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2}\|\d{2}:\d{2}:\d{2}\] \[Thread ID: 42\] \[INFO\]: hello, world$`),
		e.Text())
}

func TestNewEntry_LevelTags(t *testing.T) {
	tests := []struct {
		level Level
		tag   string
	}{
		{LevelMessage, "[MESSAGE]:"},
		{LevelTrace, "[TRACE]:"},
		{LevelInfo, "[INFO]:"},
		{LevelWarn, "[WARN]:"},
		{LevelError, "[ERROR]:"},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Contains(t, NewEntry(tt.level, 0, "x").Text(), tt.tag)
		})
	}
}

func TestGoroutineID(t *testing.T) {
	first := goroutineID()
	assert.NotZero(t, first)
	assert.Equal(t, first, goroutineID(), "stable within one goroutine")

	other := make(chan uint64, 1)
	go func() { other <- goroutineID() }()
	assert.NotEqual(t, first, <-other, "distinct across goroutines")
}

func TestLevel_Ordering(t *testing.T) {
	assert.Less(t, LevelMessage, LevelTrace)
	assert.Less(t, LevelTrace, LevelInfo)
	assert.Less(t, LevelInfo, LevelWarn)
	assert.Less(t, LevelWarn, LevelError)
	assert.Less(t, LevelError, LevelDisabled)
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "UNKNOWN", Level(200).String())
}
