package status

// Win32 error codes referenced by the translation tables. Values are the
// canonical winerror.h numbering; defining them here keeps the domain
// buildable on every platform.
const (
	win32Success              int64 = 0     // ERROR_SUCCESS
	win32InvalidFunction      int64 = 1     // ERROR_INVALID_FUNCTION
	win32FileNotFound         int64 = 2     // ERROR_FILE_NOT_FOUND
	win32PathNotFound         int64 = 3     // ERROR_PATH_NOT_FOUND
	win32TooManyOpenFiles     int64 = 4     // ERROR_TOO_MANY_OPEN_FILES
	win32AccessDenied         int64 = 5     // ERROR_ACCESS_DENIED
	win32InvalidHandle        int64 = 6     // ERROR_INVALID_HANDLE
	win32ArenaTrashed         int64 = 7     // ERROR_ARENA_TRASHED
	win32NotEnoughMemory      int64 = 8     // ERROR_NOT_ENOUGH_MEMORY
	win32InvalidBlock         int64 = 9     // ERROR_INVALID_BLOCK
	win32BadEnvironment       int64 = 10    // ERROR_BAD_ENVIRONMENT
	win32BadFormat            int64 = 11    // ERROR_BAD_FORMAT
	win32InvalidAccess        int64 = 12    // ERROR_INVALID_ACCESS
	win32InvalidData          int64 = 13    // ERROR_INVALID_DATA
	win32OutOfMemory          int64 = 14    // ERROR_OUTOFMEMORY
	win32InvalidDrive         int64 = 15    // ERROR_INVALID_DRIVE
	win32CurrentDirectory     int64 = 16    // ERROR_CURRENT_DIRECTORY
	win32NotSameDevice        int64 = 17    // ERROR_NOT_SAME_DEVICE
	win32NoMoreFiles          int64 = 18    // ERROR_NO_MORE_FILES
	win32WriteProtect         int64 = 19    // ERROR_WRITE_PROTECT
	win32BadUnit              int64 = 20    // ERROR_BAD_UNIT
	win32NotReady             int64 = 21    // ERROR_NOT_READY
	win32Crc                  int64 = 23    // ERROR_CRC
	win32BadLength            int64 = 24    // ERROR_BAD_LENGTH
	win32Seek                 int64 = 25    // ERROR_SEEK
	win32WriteFault           int64 = 29    // ERROR_WRITE_FAULT
	win32ReadFault            int64 = 30    // ERROR_READ_FAULT
	win32GenFailure           int64 = 31    // ERROR_GEN_FAILURE
	win32SharingViolation     int64 = 32    // ERROR_SHARING_VIOLATION
	win32LockViolation        int64 = 33    // ERROR_LOCK_VIOLATION
	win32HandleEOF            int64 = 38    // ERROR_HANDLE_EOF
	win32HandleDiskFull       int64 = 39    // ERROR_HANDLE_DISK_FULL
	win32NotSupported         int64 = 50    // ERROR_NOT_SUPPORTED
	win32DupName              int64 = 52    // ERROR_DUP_NAME
	win32BadNetPath           int64 = 53    // ERROR_BAD_NETPATH
	win32NetworkBusy          int64 = 54    // ERROR_NETWORK_BUSY
	win32DevNotExist          int64 = 55    // ERROR_DEV_NOT_EXIST
	win32FileExists           int64 = 80    // ERROR_FILE_EXISTS
	win32CannotMake           int64 = 82    // ERROR_CANNOT_MAKE
	win32InvalidParameter     int64 = 87    // ERROR_INVALID_PARAMETER
	win32NetWriteFault        int64 = 88    // ERROR_NET_WRITE_FAULT
	win32OpenFailed           int64 = 110   // ERROR_OPEN_FAILED
	win32BufferOverflow       int64 = 111   // ERROR_BUFFER_OVERFLOW
	win32DiskFull             int64 = 112   // ERROR_DISK_FULL
	win32CallNotImplemented   int64 = 120   // ERROR_CALL_NOT_IMPLEMENTED
	win32SemTimeout           int64 = 121   // ERROR_SEM_TIMEOUT
	win32InsufficientBuffer   int64 = 122   // ERROR_INSUFFICIENT_BUFFER
	win32InvalidName          int64 = 123   // ERROR_INVALID_NAME
	win32WaitNoChildren       int64 = 128   // ERROR_WAIT_NO_CHILDREN
	win32ChildNotComplete     int64 = 129   // ERROR_CHILD_NOT_COMPLETE
	win32DirNotEmpty          int64 = 145   // ERROR_DIR_NOT_EMPTY
	win32NotLocked            int64 = 158   // ERROR_NOT_LOCKED
	win32BadPathname          int64 = 161   // ERROR_BAD_PATHNAME
	win32LockFailed           int64 = 167   // ERROR_LOCK_FAILED
	win32Busy                 int64 = 170   // ERROR_BUSY
	win32AlreadyExists        int64 = 183   // ERROR_ALREADY_EXISTS
	win32BadExeFormat         int64 = 193   // ERROR_BAD_EXE_FORMAT
	win32FilenameExcedRange   int64 = 206   // ERROR_FILENAME_EXCED_RANGE
	win32WaitTimeout          int64 = 258   // WAIT_TIMEOUT
	win32NoData               int64 = 232   // ERROR_NO_DATA
	win32PipeNotConnected     int64 = 233   // ERROR_PIPE_NOT_CONNECTED
	win32MoreData             int64 = 234   // ERROR_MORE_DATA
	win32Directory            int64 = 267   // ERROR_DIRECTORY
	win32ArithmeticOverflow   int64 = 534   // ERROR_ARITHMETIC_OVERFLOW
	win32OperationAborted     int64 = 995   // ERROR_OPERATION_ABORTED
	win32IOIncomplete         int64 = 996   // ERROR_IO_INCOMPLETE
	win32IOPending            int64 = 997   // ERROR_IO_PENDING
	win32NoAccess             int64 = 998   // ERROR_NOACCESS
	win32StackOverflow        int64 = 1001  // ERROR_STACK_OVERFLOW
	win32InvalidFlags         int64 = 1004  // ERROR_INVALID_FLAGS
	win32IODevice             int64 = 1117  // ERROR_IO_DEVICE
	win32SerialNoDevice       int64 = 1118  // ERROR_SERIAL_NO_DEVICE
	win32PossibleDeadlock     int64 = 1131  // ERROR_POSSIBLE_DEADLOCK
	win32TooManyLinks         int64 = 1142  // ERROR_TOO_MANY_LINKS
	win32NotFound             int64 = 1168  // ERROR_NOT_FOUND
	win32BadDevice            int64 = 1200  // ERROR_BAD_DEVICE
	win32ConnectionRefused    int64 = 1225  // ERROR_CONNECTION_REFUSED
	win32GracefulDisconnect   int64 = 1226  // ERROR_GRACEFUL_DISCONNECT
	win32ConnectionInvalid    int64 = 1229  // ERROR_CONNECTION_INVALID
	win32ConnectionActive     int64 = 1230  // ERROR_CONNECTION_ACTIVE
	win32NetworkUnreachable   int64 = 1231  // ERROR_NETWORK_UNREACHABLE
	win32HostUnreachable      int64 = 1232  // ERROR_HOST_UNREACHABLE
	win32ProtocolUnreachable  int64 = 1233  // ERROR_PROTOCOL_UNREACHABLE
	win32PortUnreachable      int64 = 1234  // ERROR_PORT_UNREACHABLE
	win32RequestAborted       int64 = 1235  // ERROR_REQUEST_ABORTED
	win32ConnectionAborted    int64 = 1236  // ERROR_CONNECTION_ABORTED
	win32Retry                int64 = 1237  // ERROR_RETRY
	win32NoSystemResources    int64 = 1450  // ERROR_NO_SYSTEM_RESOURCES
	win32Timeout              int64 = 1460  // ERROR_TIMEOUT
	win32InvalidUserBuffer    int64 = 1784  // ERROR_INVALID_USER_BUFFER
	win32NotEnoughQuota       int64 = 1816  // ERROR_NOT_ENOUGH_QUOTA
	win32WSAEIntr             int64 = 10004 // WSAEINTR
	win32WSAEBadF             int64 = 10009 // WSAEBADF
	win32WSAEAcces            int64 = 10013 // WSAEACCES
	win32WSAEFault            int64 = 10014 // WSAEFAULT
	win32WSAEInval            int64 = 10022 // WSAEINVAL
	win32WSAEMFile            int64 = 10024 // WSAEMFILE
	win32WSAEWouldBlock       int64 = 10035 // WSAEWOULDBLOCK
	win32WSAEInProgress       int64 = 10036 // WSAEINPROGRESS
	win32WSAEAlready          int64 = 10037 // WSAEALREADY
	win32WSAENotSock          int64 = 10038 // WSAENOTSOCK
	win32WSAEDestAddrReq      int64 = 10039 // WSAEDESTADDRREQ
	win32WSAEMsgSize          int64 = 10040 // WSAEMSGSIZE
	win32WSAEPrototype        int64 = 10041 // WSAEPROTOTYPE
	win32WSAENoProtoOpt       int64 = 10042 // WSAENOPROTOOPT
	win32WSAEProtoNoSupport   int64 = 10043 // WSAEPROTONOSUPPORT
	win32WSAEOpNotSupp        int64 = 10045 // WSAEOPNOTSUPP
	win32WSAEAfNoSupport      int64 = 10047 // WSAEAFNOSUPPORT
	win32WSAEAddrInUse        int64 = 10048 // WSAEADDRINUSE
	win32WSAEAddrNotAvail     int64 = 10049 // WSAEADDRNOTAVAIL
	win32WSAENetDown          int64 = 10050 // WSAENETDOWN
	win32WSAENetUnreach       int64 = 10051 // WSAENETUNREACH
	win32WSAENetReset         int64 = 10052 // WSAENETRESET
	win32WSAEConnAborted      int64 = 10053 // WSAECONNABORTED
	win32WSAEConnReset        int64 = 10054 // WSAECONNRESET
	win32WSAENoBufs           int64 = 10055 // WSAENOBUFS
	win32WSAEIsConn           int64 = 10056 // WSAEISCONN
	win32WSAENotConn          int64 = 10057 // WSAENOTCONN
	win32WSAETimedOut         int64 = 10060 // WSAETIMEDOUT
	win32WSAEConnRefused      int64 = 10061 // WSAECONNREFUSED
	win32WSAELoop             int64 = 10062 // WSAELOOP
	win32WSAENameTooLong      int64 = 10063 // WSAENAMETOOLONG
	win32WSAEHostUnreach      int64 = 10065 // WSAEHOSTUNREACH
	win32WSAENotEmpty         int64 = 10066 // WSAENOTEMPTY
)

// win32ToGeneric is the hand-maintained Win32 → Generic translation.
// Values without an entry translate to Unknown.
var win32ToGeneric = map[int64]Errno{
	win32Success:             ErrnoSuccess,
	win32InvalidFunction:     ErrnoFunctionNotSupported,
	win32FileNotFound:        ErrnoNoSuchFileOrDirectory,
	win32PathNotFound:        ErrnoNoSuchFileOrDirectory,
	win32TooManyOpenFiles:    ErrnoTooManyFilesOpen,
	win32AccessDenied:        ErrnoPermissionDenied,
	win32InvalidHandle:       ErrnoBadFileDescriptor,
	win32ArenaTrashed:        ErrnoNotEnoughMemory,
	win32NotEnoughMemory:     ErrnoNotEnoughMemory,
	win32InvalidBlock:        ErrnoNotEnoughMemory,
	win32BadEnvironment:      ErrnoArgumentListTooLong,
	win32BadFormat:           ErrnoExecutableFormatError,
	win32InvalidAccess:       ErrnoInvalidArgument,
	win32InvalidData:         ErrnoInvalidArgument,
	win32OutOfMemory:         ErrnoNotEnoughMemory,
	win32InvalidDrive:        ErrnoNoSuchDevice,
	win32CurrentDirectory:    ErrnoDeviceOrResourceBusy,
	win32NotSameDevice:       ErrnoCrossDeviceLink,
	win32NoMoreFiles:         ErrnoNoSuchFileOrDirectory,
	win32WriteProtect:        ErrnoReadOnlyFileSystem,
	win32BadUnit:             ErrnoNoSuchDevice,
	win32NotReady:            ErrnoResourceUnavailableTryAgain,
	win32Crc:                 ErrnoIOError,
	win32BadLength:           ErrnoInvalidArgument,
	win32Seek:                ErrnoIOError,
	win32WriteFault:          ErrnoIOError,
	win32ReadFault:           ErrnoIOError,
	win32GenFailure:          ErrnoIOError,
	win32SharingViolation:    ErrnoDeviceOrResourceBusy,
	win32LockViolation:       ErrnoNoLockAvailable,
	win32HandleDiskFull:      ErrnoNoSpaceOnDevice,
	win32NotSupported:        ErrnoNotSupported,
	win32DupName:             ErrnoFileExists,
	win32BadNetPath:          ErrnoNoSuchFileOrDirectory,
	win32NetworkBusy:         ErrnoDeviceOrResourceBusy,
	win32DevNotExist:         ErrnoNoSuchDevice,
	win32FileExists:          ErrnoFileExists,
	win32CannotMake:          ErrnoPermissionDenied,
	win32InvalidParameter:    ErrnoInvalidArgument,
	win32NetWriteFault:       ErrnoIOError,
	win32OpenFailed:          ErrnoIOError,
	win32BufferOverflow:      ErrnoFilenameTooLong,
	win32DiskFull:            ErrnoNoSpaceOnDevice,
	win32CallNotImplemented:  ErrnoFunctionNotSupported,
	win32SemTimeout:          ErrnoTimedOut,
	win32InvalidName:         ErrnoNoSuchFileOrDirectory,
	win32WaitNoChildren:      ErrnoNoChildProcess,
	win32ChildNotComplete:    ErrnoNoChildProcess,
	win32DirNotEmpty:         ErrnoDirectoryNotEmpty,
	win32NotLocked:           ErrnoNoLockAvailable,
	win32BadPathname:         ErrnoNoSuchFileOrDirectory,
	win32LockFailed:          ErrnoNoLockAvailable,
	win32Busy:                ErrnoDeviceOrResourceBusy,
	win32AlreadyExists:       ErrnoFileExists,
	win32BadExeFormat:        ErrnoExecutableFormatError,
	win32FilenameExcedRange:  ErrnoFilenameTooLong,
	win32WaitTimeout:         ErrnoTimedOut,
	win32NoData:              ErrnoBrokenPipe,
	win32PipeNotConnected:    ErrnoBrokenPipe,
	win32MoreData:            ErrnoMessageSize,
	win32Directory:           ErrnoNotADirectory,
	win32ArithmeticOverflow:  ErrnoValueTooLarge,
	win32OperationAborted:    ErrnoOperationCanceled,
	win32IOIncomplete:        ErrnoResourceUnavailableTryAgain,
	win32IOPending:           ErrnoOperationInProgress,
	win32NoAccess:            ErrnoBadAddress,
	win32StackOverflow:       ErrnoNotEnoughMemory,
	win32InvalidFlags:        ErrnoInvalidArgument,
	win32IODevice:            ErrnoIOError,
	win32SerialNoDevice:      ErrnoNoSuchDevice,
	win32PossibleDeadlock:    ErrnoResourceDeadlockWouldOccur,
	win32TooManyLinks:        ErrnoTooManyLinks,
	win32BadDevice:           ErrnoNoSuchDevice,
	win32ConnectionRefused:   ErrnoConnectionRefused,
	win32GracefulDisconnect:  ErrnoConnectionReset,
	win32ConnectionInvalid:   ErrnoNotConnected,
	win32ConnectionActive:    ErrnoAlreadyConnected,
	win32NetworkUnreachable:  ErrnoNetworkUnreachable,
	win32HostUnreachable:     ErrnoHostUnreachable,
	win32ProtocolUnreachable: ErrnoNetworkUnreachable,
	win32PortUnreachable:     ErrnoConnectionRefused,
	win32RequestAborted:      ErrnoInterrupted,
	win32ConnectionAborted:   ErrnoConnectionAborted,
	win32Retry:               ErrnoResourceUnavailableTryAgain,
	win32NoSystemResources:   ErrnoNotEnoughMemory,
	win32Timeout:             ErrnoTimedOut,
	win32InvalidUserBuffer:   ErrnoBadAddress,
	win32NotEnoughQuota:      ErrnoNotEnoughMemory,
	win32WSAEIntr:            ErrnoInterrupted,
	win32WSAEBadF:            ErrnoBadFileDescriptor,
	win32WSAEAcces:           ErrnoPermissionDenied,
	win32WSAEFault:           ErrnoBadAddress,
	win32WSAEInval:           ErrnoInvalidArgument,
	win32WSAEMFile:           ErrnoTooManyFilesOpen,
	win32WSAEWouldBlock:      ErrnoResourceUnavailableTryAgain,
	win32WSAEInProgress:      ErrnoOperationInProgress,
	win32WSAEAlready:         ErrnoConnectionAlreadyInProgress,
	win32WSAENotSock:         ErrnoNotASocket,
	win32WSAEDestAddrReq:     ErrnoDestinationAddressRequired,
	win32WSAEMsgSize:         ErrnoMessageSize,
	win32WSAEPrototype:       ErrnoWrongProtocolType,
	win32WSAENoProtoOpt:      ErrnoNoProtocolOption,
	win32WSAEProtoNoSupport:  ErrnoProtocolNotSupported,
	win32WSAEOpNotSupp:       ErrnoNotSupported,
	win32WSAEAfNoSupport:     ErrnoAddressFamilyNotSupported,
	win32WSAEAddrInUse:       ErrnoAddressInUse,
	win32WSAEAddrNotAvail:    ErrnoAddressNotAvailable,
	win32WSAENetDown:         ErrnoNetworkDown,
	win32WSAENetUnreach:      ErrnoNetworkUnreachable,
	win32WSAENetReset:        ErrnoNetworkReset,
	win32WSAEConnAborted:     ErrnoConnectionAborted,
	win32WSAEConnReset:       ErrnoConnectionReset,
	win32WSAENoBufs:          ErrnoNoBufferSpace,
	win32WSAEIsConn:          ErrnoAlreadyConnected,
	win32WSAENotConn:         ErrnoNotConnected,
	win32WSAETimedOut:        ErrnoTimedOut,
	win32WSAEConnRefused:     ErrnoConnectionRefused,
	win32WSAELoop:            ErrnoTooManySymbolicLinkLevels,
	win32WSAENameTooLong:     ErrnoFilenameTooLong,
	win32WSAEHostUnreach:     ErrnoHostUnreachable,
	win32WSAENotEmpty:        ErrnoDirectoryNotEmpty,
}

// win32UUID identifies the Win32 GetLastError domain. Fixed for wire
// compatibility; never change it.
const win32UUID = "53b43298-f1f6-4a7b-a998-49dfa96c7159"

var win32ID = DomainID(win32UUID)

// Win32Domain interprets raw Win32 GetLastError values. Success is
// ERROR_SUCCESS (0).
type Win32Domain struct{}

func (Win32Domain) ID() uint64   { return win32ID }
func (Win32Domain) Name() string { return "win32 domain" }

func (Win32Domain) IsSuccess(value int64) bool { return value == win32Success }
func (Win32Domain) IsUnknown(value int64) bool { return value < 0 }

// Message renders the code via FormatMessageW on Windows builds (see
// win32_message_*.go); elsewhere it degrades to the Generic description of
// the translated code.
func (Win32Domain) Message(value int64) string {
	return win32Message(value)
}

func (Win32Domain) Generic(value int64) Errno {
	if e, ok := win32ToGeneric[value]; ok {
		return e
	}
	return ErrnoUnknown
}
