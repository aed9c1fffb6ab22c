package status

// Errno is the portable, OS-independent error vocabulary. Values track the
// Linux errno numbering so the POSIX domain translates by identity on the
// platforms this module is most deployed on; the numbering is an
// implementation detail everywhere else.
type Errno int64

const ErrnoSuccess Errno = 0

// ErrnoUnknown is the sentinel every translation falls through to. It
// never compares equivalent to anything, itself included.
const ErrnoUnknown Errno = -1

const (
	ErrnoOperationNotPermitted         Errno = 1   // EPERM
	ErrnoNoSuchFileOrDirectory         Errno = 2   // ENOENT
	ErrnoNoSuchProcess                 Errno = 3   // ESRCH
	ErrnoInterrupted                   Errno = 4   // EINTR
	ErrnoIOError                       Errno = 5   // EIO
	ErrnoNoSuchDeviceOrAddress         Errno = 6   // ENXIO
	ErrnoArgumentListTooLong           Errno = 7   // E2BIG
	ErrnoExecutableFormatError         Errno = 8   // ENOEXEC
	ErrnoBadFileDescriptor             Errno = 9   // EBADF
	ErrnoNoChildProcess                Errno = 10  // ECHILD
	ErrnoResourceUnavailableTryAgain   Errno = 11  // EAGAIN
	ErrnoNotEnoughMemory               Errno = 12  // ENOMEM
	ErrnoPermissionDenied              Errno = 13  // EACCES
	ErrnoBadAddress                    Errno = 14  // EFAULT
	ErrnoDeviceOrResourceBusy          Errno = 16  // EBUSY
	ErrnoFileExists                    Errno = 17  // EEXIST
	ErrnoCrossDeviceLink               Errno = 18  // EXDEV
	ErrnoNoSuchDevice                  Errno = 19  // ENODEV
	ErrnoNotADirectory                 Errno = 20  // ENOTDIR
	ErrnoIsADirectory                  Errno = 21  // EISDIR
	ErrnoInvalidArgument               Errno = 22  // EINVAL
	ErrnoTooManyFilesOpenInSystem      Errno = 23  // ENFILE
	ErrnoTooManyFilesOpen              Errno = 24  // EMFILE
	ErrnoInappropriateIOControl        Errno = 25  // ENOTTY
	ErrnoTextFileBusy                  Errno = 26  // ETXTBSY
	ErrnoFileTooLarge                  Errno = 27  // EFBIG
	ErrnoNoSpaceOnDevice               Errno = 28  // ENOSPC
	ErrnoInvalidSeek                   Errno = 29  // ESPIPE
	ErrnoReadOnlyFileSystem            Errno = 30  // EROFS
	ErrnoTooManyLinks                  Errno = 31  // EMLINK
	ErrnoBrokenPipe                    Errno = 32  // EPIPE
	ErrnoArgumentOutOfDomain           Errno = 33  // EDOM
	ErrnoResultOutOfRange              Errno = 34  // ERANGE
	ErrnoResourceDeadlockWouldOccur    Errno = 35  // EDEADLK
	ErrnoFilenameTooLong               Errno = 36  // ENAMETOOLONG
	ErrnoNoLockAvailable               Errno = 37  // ENOLCK
	ErrnoFunctionNotSupported          Errno = 38  // ENOSYS
	ErrnoDirectoryNotEmpty             Errno = 39  // ENOTEMPTY
	ErrnoTooManySymbolicLinkLevels     Errno = 40  // ELOOP
	ErrnoNoMessage                     Errno = 42  // ENOMSG
	ErrnoIdentifierRemoved             Errno = 43  // EIDRM
	ErrnoNotAStream                    Errno = 60  // ENOSTR
	ErrnoNoStreamResources             Errno = 63  // ENOSR
	ErrnoNoLink                        Errno = 67  // ENOLINK
	ErrnoProtocolError                 Errno = 71  // EPROTO
	ErrnoBadMessage                    Errno = 74  // EBADMSG
	ErrnoValueTooLarge                 Errno = 75  // EOVERFLOW
	ErrnoIllegalByteSequence           Errno = 84  // EILSEQ
	ErrnoNotASocket                    Errno = 88  // ENOTSOCK
	ErrnoDestinationAddressRequired    Errno = 89  // EDESTADDRREQ
	ErrnoMessageSize                   Errno = 90  // EMSGSIZE
	ErrnoWrongProtocolType             Errno = 91  // EPROTOTYPE
	ErrnoNoProtocolOption              Errno = 92  // ENOPROTOOPT
	ErrnoProtocolNotSupported          Errno = 93  // EPROTONOSUPPORT
	ErrnoNotSupported                  Errno = 95  // ENOTSUP / EOPNOTSUPP
	ErrnoAddressFamilyNotSupported     Errno = 97  // EAFNOSUPPORT
	ErrnoAddressInUse                  Errno = 98  // EADDRINUSE
	ErrnoAddressNotAvailable           Errno = 99  // EADDRNOTAVAIL
	ErrnoNetworkDown                   Errno = 100 // ENETDOWN
	ErrnoNetworkUnreachable            Errno = 101 // ENETUNREACH
	ErrnoNetworkReset                  Errno = 102 // ENETRESET
	ErrnoConnectionAborted             Errno = 103 // ECONNABORTED
	ErrnoConnectionReset               Errno = 104 // ECONNRESET
	ErrnoNoBufferSpace                 Errno = 105 // ENOBUFS
	ErrnoAlreadyConnected              Errno = 106 // EISCONN
	ErrnoNotConnected                  Errno = 107 // ENOTCONN
	ErrnoTimedOut                      Errno = 110 // ETIMEDOUT
	ErrnoConnectionRefused             Errno = 111 // ECONNREFUSED
	ErrnoHostUnreachable               Errno = 113 // EHOSTUNREACH
	ErrnoConnectionAlreadyInProgress   Errno = 114 // EALREADY
	ErrnoOperationInProgress           Errno = 115 // EINPROGRESS
	ErrnoOperationCanceled             Errno = 125 // ECANCELED
	ErrnoOwnerDead                     Errno = 130 // EOWNERDEAD
	ErrnoStateNotRecoverable           Errno = 131 // ENOTRECOVERABLE
)

// errnoMessages is the Generic domain's own message table. The portable
// domain must render text without touching any OS facility.
var errnoMessages = map[Errno]string{
	ErrnoSuccess:                     "success",
	ErrnoOperationNotPermitted:       "operation not permitted",
	ErrnoNoSuchFileOrDirectory:       "no such file or directory",
	ErrnoNoSuchProcess:               "no such process",
	ErrnoInterrupted:                 "interrupted system call",
	ErrnoIOError:                     "input/output error",
	ErrnoNoSuchDeviceOrAddress:       "no such device or address",
	ErrnoArgumentListTooLong:         "argument list too long",
	ErrnoExecutableFormatError:       "exec format error",
	ErrnoBadFileDescriptor:           "bad file descriptor",
	ErrnoNoChildProcess:              "no child processes",
	ErrnoResourceUnavailableTryAgain: "resource temporarily unavailable",
	ErrnoNotEnoughMemory:             "cannot allocate memory",
	ErrnoPermissionDenied:            "permission denied",
	ErrnoBadAddress:                  "bad address",
	ErrnoDeviceOrResourceBusy:        "device or resource busy",
	ErrnoFileExists:                  "file exists",
	ErrnoCrossDeviceLink:             "invalid cross-device link",
	ErrnoNoSuchDevice:                "no such device",
	ErrnoNotADirectory:               "not a directory",
	ErrnoIsADirectory:                "is a directory",
	ErrnoInvalidArgument:             "invalid argument",
	ErrnoTooManyFilesOpenInSystem:    "too many open files in system",
	ErrnoTooManyFilesOpen:            "too many open files",
	ErrnoInappropriateIOControl:      "inappropriate ioctl for device",
	ErrnoTextFileBusy:                "text file busy",
	ErrnoFileTooLarge:                "file too large",
	ErrnoNoSpaceOnDevice:             "no space left on device",
	ErrnoInvalidSeek:                 "illegal seek",
	ErrnoReadOnlyFileSystem:          "read-only file system",
	ErrnoTooManyLinks:                "too many links",
	ErrnoBrokenPipe:                  "broken pipe",
	ErrnoArgumentOutOfDomain:         "numerical argument out of domain",
	ErrnoResultOutOfRange:            "numerical result out of range",
	ErrnoResourceDeadlockWouldOccur:  "resource deadlock avoided",
	ErrnoFilenameTooLong:             "file name too long",
	ErrnoNoLockAvailable:             "no locks available",
	ErrnoFunctionNotSupported:        "function not implemented",
	ErrnoDirectoryNotEmpty:           "directory not empty",
	ErrnoTooManySymbolicLinkLevels:   "too many levels of symbolic links",
	ErrnoNoMessage:                   "no message of desired type",
	ErrnoIdentifierRemoved:           "identifier removed",
	ErrnoNotAStream:                  "device not a stream",
	ErrnoNoStreamResources:           "out of streams resources",
	ErrnoNoLink:                      "link has been severed",
	ErrnoProtocolError:               "protocol error",
	ErrnoBadMessage:                  "bad message",
	ErrnoValueTooLarge:               "value too large for defined data type",
	ErrnoIllegalByteSequence:         "invalid or incomplete multibyte or wide character",
	ErrnoNotASocket:                  "socket operation on non-socket",
	ErrnoDestinationAddressRequired:  "destination address required",
	ErrnoMessageSize:                 "message too long",
	ErrnoWrongProtocolType:           "protocol wrong type for socket",
	ErrnoNoProtocolOption:            "protocol not available",
	ErrnoProtocolNotSupported:        "protocol not supported",
	ErrnoNotSupported:                "operation not supported",
	ErrnoAddressFamilyNotSupported:   "address family not supported by protocol",
	ErrnoAddressInUse:                "address already in use",
	ErrnoAddressNotAvailable:         "cannot assign requested address",
	ErrnoNetworkDown:                 "network is down",
	ErrnoNetworkUnreachable:          "network is unreachable",
	ErrnoNetworkReset:                "network dropped connection on reset",
	ErrnoConnectionAborted:           "software caused connection abort",
	ErrnoConnectionReset:             "connection reset by peer",
	ErrnoNoBufferSpace:               "no buffer space available",
	ErrnoAlreadyConnected:            "transport endpoint is already connected",
	ErrnoNotConnected:                "transport endpoint is not connected",
	ErrnoTimedOut:                    "connection timed out",
	ErrnoConnectionRefused:           "connection refused",
	ErrnoHostUnreachable:             "no route to host",
	ErrnoConnectionAlreadyInProgress: "operation already in progress",
	ErrnoOperationInProgress:         "operation now in progress",
	ErrnoOperationCanceled:           "operation canceled",
	ErrnoOwnerDead:                   "owner died",
	ErrnoStateNotRecoverable:         "state not recoverable",
}

// genericUUID identifies the Generic domain across modules and processes.
// Fixed for wire compatibility; never change it.
const genericUUID = "bb14ea47-2e32-4296-8ff8-1f9e2660ccc6"

var genericID = DomainID(genericUUID)

// GenericDomain is the portable, OS-independent error domain. Its raw
// codes are Errno values.
type GenericDomain struct{}

func (GenericDomain) ID() uint64   { return genericID }
func (GenericDomain) Name() string { return "generic domain" }

func (GenericDomain) Message(value int64) string {
	if m, ok := errnoMessages[Errno(value)]; ok {
		return m
	}
	return msgFallback
}

func (GenericDomain) IsSuccess(value int64) bool { return Errno(value) == ErrnoSuccess }
func (GenericDomain) IsUnknown(value int64) bool { return Errno(value) == ErrnoUnknown }

// Generic is the identity translation, clamped to the known vocabulary.
func (GenericDomain) Generic(value int64) Errno {
	e := Errno(value)
	if e == ErrnoSuccess {
		return ErrnoSuccess
	}
	if _, ok := errnoMessages[e]; ok {
		return e
	}
	return ErrnoUnknown
}

// StatusDomain and StatusValue register Errno as the enum type owned by
// GenericDomain, so status.FromEnum(status.ErrnoTimedOut) works.
func (Errno) StatusDomain() Domain { return GenericDomain{} }
func (e Errno) StatusValue() int64 { return int64(e) }
func (e Errno) String() string     { return GenericDomain{}.Message(int64(e)) }
