package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenericDomain_Message(t *testing.T) {
	d := GenericDomain{}
	assert.Equal(t, "success", d.Message(0))
	assert.Equal(t, "no such file or directory", d.Message(int64(ErrnoNoSuchFileOrDirectory)))
	assert.Equal(t, "connection refused", d.Message(int64(ErrnoConnectionRefused)))
	assert.Equal(t, msgFallback, d.Message(int64(ErrnoUnknown)))
	assert.Equal(t, msgFallback, d.Message(99999))
}

func TestGenericDomain_Classification(t *testing.T) {
	d := GenericDomain{}
	assert.True(t, d.IsSuccess(0))
	assert.False(t, d.IsSuccess(int64(ErrnoIOError)))
	assert.True(t, d.IsUnknown(int64(ErrnoUnknown)))
	assert.False(t, d.IsUnknown(int64(ErrnoIOError)))
}

func TestGenericDomain_GenericIsIdentityOnVocabulary(t *testing.T) {
	d := GenericDomain{}
	for e := range errnoMessages {
		assert.Equal(t, e, d.Generic(int64(e)), "errno %d", e)
	}
	// Values outside the vocabulary clamp to Unknown.
	assert.Equal(t, ErrnoUnknown, d.Generic(99999))
	assert.Equal(t, ErrnoUnknown, d.Generic(-42))
}

func TestErrno_String(t *testing.T) {
	assert.Equal(t, "permission denied", ErrnoPermissionDenied.String())
	assert.Equal(t, msgFallback, ErrnoUnknown.String())
}
