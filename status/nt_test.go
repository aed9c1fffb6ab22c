package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNTDomain_Generic(t *testing.T) {
	d := NTDomain{}
	tests := []struct {
		name string
		code int64
		want Errno
	}{
		{"success", ntSuccess, ErrnoSuccess},
		{"access_violation", ntAccessViolation, ErrnoBadAddress},
		{"invalid_handle", ntInvalidHandle, ErrnoBadFileDescriptor},
		{"invalid_parameter", ntInvalidParameter, ErrnoInvalidArgument},
		{"no_memory", ntNoMemory, ErrnoNotEnoughMemory},
		{"access_denied", ntAccessDenied, ErrnoPermissionDenied},
		{"name_not_found", ntObjectNameNotFound, ErrnoNoSuchFileOrDirectory},
		{"name_collision", ntObjectNameCollision, ErrnoFileExists},
		{"disk_full", ntDiskFull, ErrnoNoSpaceOnDevice},
		{"io_timeout", ntIOTimeout, ErrnoTimedOut},
		{"conn_refused", ntConnectionRefused, ErrnoConnectionRefused},
		{"unmapped", 0xDEADBEEF, ErrnoUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Generic(tt.code))
		})
	}
}

func TestNTDomain_Win32(t *testing.T) {
	d := NTDomain{}
	tests := []struct {
		name string
		code int64
		want int64
	}{
		{"success", ntSuccess, win32Success},
		{"pending", ntPending, win32IOPending},
		{"buffer_overflow", ntBufferOverflow, win32MoreData},
		{"access_violation", ntAccessViolation, win32NoAccess},
		{"invalid_parameter", ntInvalidParameter, win32InvalidParameter},
		{"name_not_found", ntObjectNameNotFound, win32FileNotFound},
		{"path_not_found", ntObjectPathNotFound, win32PathNotFound},
		{"name_collision", ntObjectNameCollision, win32AlreadyExists},
		{"end_of_file", ntEndOfFile, win32HandleEOF},
		{"conn_reset", ntConnectionReset, win32WSAEConnReset},
		{"unmapped", 0xDEADBEEF, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Win32(tt.code))
		})
	}
}

// Translating NT → Win32 → Generic must agree with the direct NT → Generic
// table wherever both paths are defined and the direct path is not a
// deliberately finer-grained classification.
func TestNTDomain_TranslationsAgreeOnCommonCodes(t *testing.T) {
	d := NTDomain{}
	w := Win32Domain{}
	for _, code := range []int64{
		ntAccessDenied, ntInvalidParameter, ntObjectNameNotFound,
		ntObjectPathNotFound, ntDiskFull, ntNoMemory, ntDirectoryNotEmpty,
		ntConnectionRefused, ntNetworkUnreachable,
	} {
		viaWin32 := w.Generic(d.Win32(code))
		direct := d.Generic(code)
		assert.Equal(t, direct, viaWin32, "code %#x", code)
	}
}

func TestNTDomain_Classification(t *testing.T) {
	d := NTDomain{}
	assert.True(t, d.IsSuccess(0))
	assert.False(t, d.IsSuccess(ntAccessDenied))
	assert.True(t, d.IsUnknown(-1))
	assert.True(t, d.IsUnknown(int64(0x1FFFFFFFF)))
	assert.False(t, d.IsUnknown(ntAccessDenied))
}

func TestNTDomain_Message(t *testing.T) {
	d := NTDomain{}
	assert.Equal(t, "success", d.Message(ntSuccess))
	assert.Equal(t, "permission denied", d.Message(ntAccessDenied))
	assert.Equal(t, msgFallback, d.Message(0xDEADBEEF))
}
