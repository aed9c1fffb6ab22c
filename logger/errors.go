package logger

import "github.com/hyperutils/hyperion/status"

// Category enumerates the conditions the logger reports about itself.
// Registered as the enum type owned by ErrorDomain, so a Category lifts
// into a status.Status via status.FromEnum.
type Category int64

const (
	// CategorySuccess is the domain's success value.
	CategorySuccess Category = 0
	// CategoryQueueing: an async push found the queue full under the
	// ErrWhenFull policy; the entry was dropped.
	CategoryQueueing Category = 1
	// CategoryLevel: the caller logged below the configured minimum
	// level. An expected, ignorable outcome, not a fault.
	CategoryLevel Category = 2
	// CategoryNotInitialized: a global accessor was used before
	// SetGlobal.
	CategoryNotInitialized Category = 3
	// CategoryUnknown is the domain's unknown sentinel.
	CategoryUnknown Category = -1
)

var categoryMessages = map[Category]string{
	CategorySuccess:        "success",
	CategoryQueueing:       "failed to queue log entry",
	CategoryLevel:          "log level not high enough to log entry",
	CategoryNotInitialized: "global logger was not initialized",
}

// errorDomainUUID identifies the logger error domain. Fixed for wire
// compatibility; never change it.
const errorDomainUUID = "045dd371-9552-4ce1-bd4d-8e95b654fbe0"

var errorDomainID = status.DomainID(errorDomainUUID)

// ErrorDomain is the status domain for the logger's own conditions.
type ErrorDomain struct{}

func (ErrorDomain) ID() uint64   { return errorDomainID }
func (ErrorDomain) Name() string { return "logger error domain" }

func (ErrorDomain) Message(value int64) string {
	if m, ok := categoryMessages[Category(value)]; ok {
		return m
	}
	return "unknown logger error"
}

func (ErrorDomain) IsSuccess(value int64) bool { return Category(value) == CategorySuccess }
func (ErrorDomain) IsUnknown(value int64) bool { return Category(value) == CategoryUnknown }

func (Category) StatusDomain() status.Domain { return ErrorDomain{} }
func (c Category) StatusValue() int64        { return int64(c) }

// Sentinel errors for errors.Is checks. Each wraps the matching Category
// in the logger error domain.
var (
	ErrQueueing       = status.ErrorFromEnum(CategoryQueueing)
	ErrLevel          = status.ErrorFromEnum(CategoryLevel)
	ErrNotInitialized = status.ErrorFromEnum(CategoryNotInitialized)
	errStopped        = status.ErrorFromEnum(CategoryUnknown)
)
