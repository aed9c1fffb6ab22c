package status

// NTSTATUS values referenced by the translation tables, stored as the raw
// unsigned 32-bit pattern widened to int64.
const (
	ntSuccess                 int64 = 0x00000000 // STATUS_SUCCESS
	ntTimeout                 int64 = 0x00000102 // STATUS_TIMEOUT
	ntPending                 int64 = 0x00000103 // STATUS_PENDING
	ntBufferOverflow          int64 = 0x80000005 // STATUS_BUFFER_OVERFLOW
	ntNotImplemented          int64 = 0xC0000002 // STATUS_NOT_IMPLEMENTED
	ntInfoLengthMismatch      int64 = 0xC0000004 // STATUS_INFO_LENGTH_MISMATCH
	ntAccessViolation         int64 = 0xC0000005 // STATUS_ACCESS_VIOLATION
	ntInvalidHandle           int64 = 0xC0000008 // STATUS_INVALID_HANDLE
	ntInvalidParameter        int64 = 0xC000000D // STATUS_INVALID_PARAMETER
	ntNoSuchDevice            int64 = 0xC000000E // STATUS_NO_SUCH_DEVICE
	ntNoSuchFile              int64 = 0xC000000F // STATUS_NO_SUCH_FILE
	ntInvalidDeviceRequest    int64 = 0xC0000010 // STATUS_INVALID_DEVICE_REQUEST
	ntEndOfFile               int64 = 0xC0000011 // STATUS_END_OF_FILE
	ntNoMediaInDevice         int64 = 0xC0000013 // STATUS_NO_MEDIA_IN_DEVICE
	ntNoMemory                int64 = 0xC0000017 // STATUS_NO_MEMORY
	ntAccessDenied            int64 = 0xC0000022 // STATUS_ACCESS_DENIED
	ntBufferTooSmall          int64 = 0xC0000023 // STATUS_BUFFER_TOO_SMALL
	ntObjectTypeMismatch      int64 = 0xC0000024 // STATUS_OBJECT_TYPE_MISMATCH
	ntObjectNameInvalid       int64 = 0xC0000033 // STATUS_OBJECT_NAME_INVALID
	ntObjectNameNotFound      int64 = 0xC0000034 // STATUS_OBJECT_NAME_NOT_FOUND
	ntObjectNameCollision     int64 = 0xC0000035 // STATUS_OBJECT_NAME_COLLISION
	ntObjectPathInvalid       int64 = 0xC0000039 // STATUS_OBJECT_PATH_INVALID
	ntObjectPathNotFound      int64 = 0xC000003A // STATUS_OBJECT_PATH_NOT_FOUND
	ntObjectPathSyntaxBad     int64 = 0xC000003B // STATUS_OBJECT_PATH_SYNTAX_BAD
	ntSectionTooBig           int64 = 0xC0000040 // STATUS_SECTION_TOO_BIG
	ntSharingViolation        int64 = 0xC0000043 // STATUS_SHARING_VIOLATION
	ntFileLockConflict        int64 = 0xC0000054 // STATUS_FILE_LOCK_CONFLICT
	ntLockNotGranted          int64 = 0xC0000055 // STATUS_LOCK_NOT_GRANTED
	ntDiskFull                int64 = 0xC000007F // STATUS_DISK_FULL
	ntInsufficientResources   int64 = 0xC000009A // STATUS_INSUFFICIENT_RESOURCES
	ntMediaWriteProtected     int64 = 0xC00000A2 // STATUS_MEDIA_WRITE_PROTECTED
	ntPipeDisconnected        int64 = 0xC00000B0 // STATUS_PIPE_DISCONNECTED
	ntIOTimeout               int64 = 0xC00000B5 // STATUS_IO_TIMEOUT
	ntFileIsADirectory        int64 = 0xC00000BA // STATUS_FILE_IS_A_DIRECTORY
	ntNotSupported            int64 = 0xC00000BB // STATUS_NOT_SUPPORTED
	ntDirectoryNotEmpty       int64 = 0xC0000101 // STATUS_DIRECTORY_NOT_EMPTY
	ntNotADirectory           int64 = 0xC0000103 // STATUS_NOT_A_DIRECTORY
	ntProcessIsTerminating    int64 = 0xC000010A // STATUS_PROCESS_IS_TERMINATING
	ntCancelled               int64 = 0xC0000120 // STATUS_CANCELLED
	ntCannotDelete            int64 = 0xC0000121 // STATUS_CANNOT_DELETE
	ntFileDeleted             int64 = 0xC0000123 // STATUS_FILE_DELETED
	ntFileClosed              int64 = 0xC0000128 // STATUS_FILE_CLOSED
	ntThreadNotInProcess      int64 = 0xC000012A // STATUS_THREAD_NOT_IN_PROCESS
	ntIODeviceError           int64 = 0xC0000185 // STATUS_IO_DEVICE_ERROR
	ntInsuffServerResources   int64 = 0xC0000205 // STATUS_INSUFF_SERVER_RESOURCES
	ntInvalidBufferSize       int64 = 0xC0000206 // STATUS_INVALID_BUFFER_SIZE
	ntInvalidAddressComponent int64 = 0xC0000207 // STATUS_INVALID_ADDRESS_COMPONENT
	ntTooManyAddresses        int64 = 0xC0000209 // STATUS_TOO_MANY_ADDRESSES
	ntAddressAlreadyExists    int64 = 0xC000020A // STATUS_ADDRESS_ALREADY_EXISTS
	ntConnectionDisconnected  int64 = 0xC000020C // STATUS_CONNECTION_DISCONNECTED
	ntConnectionReset         int64 = 0xC000020D // STATUS_CONNECTION_RESET
	ntTransactionAborted      int64 = 0xC000020F // STATUS_TRANSACTION_ABORTED
	ntNotFound                int64 = 0xC0000225 // STATUS_NOT_FOUND
	ntConnectionRefused       int64 = 0xC0000236 // STATUS_CONNECTION_REFUSED
	ntGracefulDisconnect      int64 = 0xC0000237 // STATUS_GRACEFUL_DISCONNECT
	ntNetworkUnreachable      int64 = 0xC000023A // STATUS_NETWORK_UNREACHABLE
	ntHostUnreachable         int64 = 0xC000023B // STATUS_HOST_UNREACHABLE
	ntProtocolUnreachable     int64 = 0xC000023C // STATUS_PROTOCOL_UNREACHABLE
	ntPortUnreachable         int64 = 0xC000023D // STATUS_PORT_UNREACHABLE
	ntRequestAborted          int64 = 0xC000023E // STATUS_REQUEST_ABORTED
	ntConnectionAborted       int64 = 0xC000023F // STATUS_CONNECTION_ABORTED
	ntRetry                   int64 = 0xC0000241 // STATUS_RETRY
)

// ntToGeneric is the hand-maintained NTSTATUS → Generic translation.
var ntToGeneric = map[int64]Errno{
	ntSuccess:                 ErrnoSuccess,
	ntTimeout:                 ErrnoTimedOut,
	ntPending:                 ErrnoOperationInProgress,
	ntBufferOverflow:          ErrnoResultOutOfRange,
	ntNotImplemented:          ErrnoFunctionNotSupported,
	ntInfoLengthMismatch:      ErrnoInvalidArgument,
	ntAccessViolation:         ErrnoBadAddress,
	ntInvalidHandle:           ErrnoBadFileDescriptor,
	ntInvalidParameter:        ErrnoInvalidArgument,
	ntNoSuchDevice:            ErrnoNoSuchDevice,
	ntNoSuchFile:              ErrnoNoSuchFileOrDirectory,
	ntInvalidDeviceRequest:    ErrnoInappropriateIOControl,
	ntNoMediaInDevice:         ErrnoNoSuchDevice,
	ntNoMemory:                ErrnoNotEnoughMemory,
	ntAccessDenied:            ErrnoPermissionDenied,
	ntBufferTooSmall:          ErrnoNoBufferSpace,
	ntObjectTypeMismatch:      ErrnoInvalidArgument,
	ntObjectNameInvalid:       ErrnoInvalidArgument,
	ntObjectNameNotFound:      ErrnoNoSuchFileOrDirectory,
	ntObjectNameCollision:     ErrnoFileExists,
	ntObjectPathInvalid:       ErrnoNoSuchFileOrDirectory,
	ntObjectPathNotFound:      ErrnoNoSuchFileOrDirectory,
	ntObjectPathSyntaxBad:     ErrnoNoSuchFileOrDirectory,
	ntSectionTooBig:           ErrnoFileTooLarge,
	ntSharingViolation:        ErrnoDeviceOrResourceBusy,
	ntFileLockConflict:        ErrnoNoLockAvailable,
	ntLockNotGranted:          ErrnoNoLockAvailable,
	ntDiskFull:                ErrnoNoSpaceOnDevice,
	ntInsufficientResources:   ErrnoNotEnoughMemory,
	ntMediaWriteProtected:     ErrnoReadOnlyFileSystem,
	ntPipeDisconnected:        ErrnoBrokenPipe,
	ntIOTimeout:               ErrnoTimedOut,
	ntFileIsADirectory:        ErrnoIsADirectory,
	ntNotSupported:            ErrnoNotSupported,
	ntDirectoryNotEmpty:       ErrnoDirectoryNotEmpty,
	ntNotADirectory:           ErrnoNotADirectory,
	ntProcessIsTerminating:    ErrnoNoSuchProcess,
	ntCancelled:               ErrnoOperationCanceled,
	ntCannotDelete:            ErrnoPermissionDenied,
	ntFileDeleted:             ErrnoNoSuchFileOrDirectory,
	ntFileClosed:              ErrnoBadFileDescriptor,
	ntThreadNotInProcess:      ErrnoNoSuchProcess,
	ntIODeviceError:           ErrnoIOError,
	ntInsuffServerResources:   ErrnoNoBufferSpace,
	ntInvalidBufferSize:       ErrnoMessageSize,
	ntInvalidAddressComponent: ErrnoAddressNotAvailable,
	ntTooManyAddresses:        ErrnoNoBufferSpace,
	ntAddressAlreadyExists:    ErrnoAddressInUse,
	ntConnectionDisconnected:  ErrnoNotConnected,
	ntConnectionReset:         ErrnoConnectionReset,
	ntTransactionAborted:      ErrnoConnectionAborted,
	ntNotFound:                ErrnoNoSuchFileOrDirectory,
	ntConnectionRefused:       ErrnoConnectionRefused,
	ntGracefulDisconnect:      ErrnoConnectionReset,
	ntNetworkUnreachable:      ErrnoNetworkUnreachable,
	ntHostUnreachable:         ErrnoHostUnreachable,
	ntProtocolUnreachable:     ErrnoNetworkUnreachable,
	ntPortUnreachable:         ErrnoConnectionRefused,
	ntRequestAborted:          ErrnoInterrupted,
	ntConnectionAborted:       ErrnoConnectionAborted,
	ntRetry:                   ErrnoResourceUnavailableTryAgain,
}

// ntToWin32 is the hand-maintained NTSTATUS → Win32 sibling translation,
// tracking the pairs RtlNtStatusToDosError documents. Misses translate to
// the Win32 unknown sentinel (-1).
var ntToWin32 = map[int64]int64{
	ntSuccess:                 win32Success,
	ntTimeout:                 win32WaitTimeout,
	ntPending:                 win32IOPending,
	ntBufferOverflow:          win32MoreData,
	ntNotImplemented:          win32InvalidFunction,
	ntInfoLengthMismatch:      win32BadLength,
	ntAccessViolation:         win32NoAccess,
	ntInvalidHandle:           win32InvalidHandle,
	ntInvalidParameter:        win32InvalidParameter,
	ntNoSuchDevice:            win32FileNotFound,
	ntNoSuchFile:              win32FileNotFound,
	ntInvalidDeviceRequest:    win32InvalidFunction,
	ntEndOfFile:               win32HandleEOF,
	ntNoMediaInDevice:         win32NotReady,
	ntNoMemory:                win32NotEnoughMemory,
	ntAccessDenied:            win32AccessDenied,
	ntBufferTooSmall:          win32InsufficientBuffer,
	ntObjectTypeMismatch:      win32InvalidHandle,
	ntObjectNameInvalid:       win32InvalidName,
	ntObjectNameNotFound:      win32FileNotFound,
	ntObjectNameCollision:     win32AlreadyExists,
	ntObjectPathInvalid:       win32BadPathname,
	ntObjectPathNotFound:      win32PathNotFound,
	ntObjectPathSyntaxBad:     win32BadPathname,
	ntSectionTooBig:           win32NotEnoughMemory,
	ntSharingViolation:        win32SharingViolation,
	ntFileLockConflict:        win32LockViolation,
	ntLockNotGranted:          win32LockViolation,
	ntDiskFull:                win32DiskFull,
	ntInsufficientResources:   win32NoSystemResources,
	ntMediaWriteProtected:     win32WriteProtect,
	ntPipeDisconnected:        win32PipeNotConnected,
	ntIOTimeout:               win32SemTimeout,
	ntFileIsADirectory:        win32AccessDenied,
	ntNotSupported:            win32NotSupported,
	ntDirectoryNotEmpty:       win32DirNotEmpty,
	ntNotADirectory:           win32Directory,
	ntCancelled:               win32OperationAborted,
	ntCannotDelete:            win32AccessDenied,
	ntFileDeleted:             win32AccessDenied,
	ntFileClosed:              win32InvalidHandle,
	ntIODeviceError:           win32IODevice,
	ntInvalidBufferSize:       win32InvalidUserBuffer,
	ntAddressAlreadyExists:    win32WSAEAddrInUse,
	ntConnectionDisconnected:  win32WSAENotConn,
	ntConnectionReset:         win32WSAEConnReset,
	ntNotFound:                win32NotFound,
	ntConnectionRefused:       win32WSAEConnRefused,
	ntGracefulDisconnect:      win32GracefulDisconnect,
	ntNetworkUnreachable:      win32WSAENetUnreach,
	ntHostUnreachable:         win32WSAEHostUnreach,
	ntProtocolUnreachable:     win32ProtocolUnreachable,
	ntPortUnreachable:         win32PortUnreachable,
	ntRequestAborted:          win32RequestAborted,
	ntConnectionAborted:       win32WSAEConnAborted,
	ntRetry:                   win32Retry,
}

// ntUUID identifies the Windows NTSTATUS domain. Fixed for wire
// compatibility; never change it.
const ntUUID = "2045f27b-499a-4bf8-9b12-3bd13a81bbb0"

var ntID = DomainID(ntUUID)

// NTDomain interprets raw NTSTATUS values, stored as the unsigned 32-bit
// pattern widened to int64. Success is STATUS_SUCCESS (0).
type NTDomain struct{}

func (NTDomain) ID() uint64   { return ntID }
func (NTDomain) Name() string { return "nt domain" }

func (NTDomain) IsSuccess(value int64) bool { return value == ntSuccess }
func (NTDomain) IsUnknown(value int64) bool { return value < 0 || value > 0xFFFFFFFF }

// Message renders the Generic description of the translated code; NTSTATUS
// has no portable message facility.
func (NTDomain) Message(value int64) string {
	if value == ntSuccess {
		return "success"
	}
	if e, ok := ntToGeneric[value]; ok {
		if m, found := errnoMessages[e]; found {
			return m
		}
	}
	return msgFallback
}

func (NTDomain) Generic(value int64) Errno {
	if e, ok := ntToGeneric[value]; ok {
		return e
	}
	return ErrnoUnknown
}

// Win32 translates an NTSTATUS into the sibling Win32 domain, returning
// the Win32 unknown sentinel (-1) on a miss.
func (NTDomain) Win32(value int64) int64 {
	if w, ok := ntToWin32[value]; ok {
		return w
	}
	return -1
}
