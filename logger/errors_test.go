package logger

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyperutils/hyperion/status"
)

func TestErrorDomain_Classification(t *testing.T) {
	d := ErrorDomain{}
	assert.True(t, d.IsSuccess(int64(CategorySuccess)))
	assert.False(t, d.IsSuccess(int64(CategoryQueueing)))
	assert.True(t, d.IsUnknown(int64(CategoryUnknown)))
	assert.False(t, d.IsUnknown(int64(CategoryLevel)))
}

func TestErrorDomain_Messages(t *testing.T) {
	d := ErrorDomain{}
	assert.Equal(t, "failed to queue log entry", d.Message(int64(CategoryQueueing)))
	assert.Equal(t, "log level not high enough to log entry", d.Message(int64(CategoryLevel)))
	assert.Equal(t, "global logger was not initialized", d.Message(int64(CategoryNotInitialized)))
	assert.Equal(t, "unknown logger error", d.Message(999))
}

func TestErrorDomain_ID(t *testing.T) {
	assert.Equal(t, status.DomainID("045dd371-9552-4ce1-bd4d-8e95b654fbe0"), ErrorDomain{}.ID())
}

func TestCategory_LiftsIntoStatus(t *testing.T) {
	s := status.FromEnum(CategoryQueueing)
	assert.True(t, s.IsError())
	assert.Equal(t, int64(CategoryQueueing), s.Value())
	assert.Equal(t, "failed to queue log entry", s.Message())

	ok := status.FromEnum(CategorySuccess)
	assert.True(t, ok.IsSuccess())
}

func TestSentinels_ErrorsIs(t *testing.T) {
	assert.ErrorIs(t, ErrQueueing, ErrQueueing)
	assert.NotErrorIs(t, ErrQueueing, ErrLevel)
	assert.NotErrorIs(t, ErrLevel, ErrNotInitialized)

	// Wrapped sentinels still match.
	wrapped := fmt.Errorf("logging failed: %w", ErrQueueing)
	assert.ErrorIs(t, wrapped, ErrQueueing)
}

func TestErrStopped_NeverMatchesSentinels(t *testing.T) {
	// The stopped condition carries the domain's unknown value, which is
	// never equivalent to anything, itself included.
	for _, sentinel := range []*status.Error{ErrQueueing, ErrLevel, ErrNotInitialized} {
		assert.False(t, errors.Is(errStopped, sentinel))
	}
	assert.False(t, errors.Is(errStopped, errStopped))
}
