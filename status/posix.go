package status

// posixUUID identifies the POSIX errno domain. Fixed for wire
// compatibility; never change it.
const posixUUID = "4a6a9b0f-c335-473e-bc42-d23974a25bb0"

var posixID = DomainID(posixUUID)

// PosixDomain interprets raw POSIX errno values. Success is 0.
type PosixDomain struct{}

func (PosixDomain) ID() uint64   { return posixID }
func (PosixDomain) Name() string { return "posix domain" }

func (PosixDomain) IsSuccess(value int64) bool { return value == 0 }
func (PosixDomain) IsUnknown(value int64) bool { return value < 0 }

// Message renders the errno text via the platform strerror facility where
// one exists (see posix_message_*.go) with the portable table as fallback.
func (PosixDomain) Message(value int64) string {
	return posixMessage(value)
}

// Generic translates an errno into the portable vocabulary. The Errno
// numbering tracks Linux errno, so mapped values translate by identity;
// anything outside the vocabulary falls through to Unknown.
func (PosixDomain) Generic(value int64) Errno {
	return GenericDomain{}.Generic(value)
}
