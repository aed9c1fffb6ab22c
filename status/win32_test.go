package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWin32Domain_Generic(t *testing.T) {
	d := Win32Domain{}
	tests := []struct {
		name string
		code int64
		want Errno
	}{
		{"success", win32Success, ErrnoSuccess},
		{"file_not_found", win32FileNotFound, ErrnoNoSuchFileOrDirectory},
		{"path_not_found", win32PathNotFound, ErrnoNoSuchFileOrDirectory},
		{"access_denied", win32AccessDenied, ErrnoPermissionDenied},
		{"invalid_handle", win32InvalidHandle, ErrnoBadFileDescriptor},
		{"not_enough_memory", win32NotEnoughMemory, ErrnoNotEnoughMemory},
		{"invalid_parameter", win32InvalidParameter, ErrnoInvalidArgument},
		{"already_exists", win32AlreadyExists, ErrnoFileExists},
		{"dir_not_empty", win32DirNotEmpty, ErrnoDirectoryNotEmpty},
		{"sem_timeout", win32SemTimeout, ErrnoTimedOut},
		{"wsaeconnrefused", win32WSAEConnRefused, ErrnoConnectionRefused},
		{"wsaewouldblock", win32WSAEWouldBlock, ErrnoResourceUnavailableTryAgain},
		{"unmapped", 0xDEAD, ErrnoUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Generic(tt.code))
		})
	}
}

func TestWin32Domain_Classification(t *testing.T) {
	d := Win32Domain{}
	assert.True(t, d.IsSuccess(0))
	assert.False(t, d.IsSuccess(win32AccessDenied))
	assert.True(t, d.IsUnknown(-1))
	assert.False(t, d.IsUnknown(win32AccessDenied))
}

func TestWin32Domain_MessageNeverEmpty(t *testing.T) {
	d := Win32Domain{}
	assert.NotEmpty(t, d.Message(win32Success))
	assert.NotEmpty(t, d.Message(win32AccessDenied))
	assert.Equal(t, msgFallback, d.Message(-1))
}
