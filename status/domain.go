package status

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// msgFallback is returned by every Message implementation when the
// underlying facility cannot produce text for a code.
const msgFallback = "failed to get message from system"

// Domain describes one universe of raw error codes. Implementations are
// stateless value types; copying them is free and requires no
// synchronization.
type Domain interface {
	// ID is the stable cross-module identity of the domain, folded from
	// its UUID via DomainID.
	ID() uint64
	// Name is the human-readable domain name.
	Name() string
	// Message renders the textual description of a raw code. Best effort:
	// falls back to a fixed string, never fails.
	Message(value int64) string
	// IsSuccess reports whether value is the domain's single success value.
	IsSuccess(value int64) bool
	// IsUnknown reports whether value is the domain's "unknown" sentinel.
	// An unknown value never compares equivalent to anything.
	IsUnknown(value int64) bool
}

// GenericConvertible is implemented by domains whose codes translate into
// the portable Generic vocabulary. Translation is total: unmapped values
// yield ErrnoUnknown.
type GenericConvertible interface {
	Domain
	Generic(value int64) Errno
}

// CodeEnum binds an enum type to its owning domain, so a plain enum
// constant can be lifted into a Status without repeating the domain at the
// call site.
type CodeEnum interface {
	StatusDomain() Domain
	StatusValue() int64
}

// SameDomain reports whether a and b denote the same domain. Identity is
// ID equality, never Go type identity, so domains survive crossing
// independently built module boundaries.
func SameDomain(a, b Domain) bool {
	return a != nil && b != nil && a.ID() == b.ID()
}

// DomainID folds a UUID string into the domain's 64-bit identity: the two
// big-endian 64-bit halves of the 128-bit value XORed together. Both the
// canonical form and the brace-wrapped Microsoft form fold to the same ID.
//
// DomainID panics on a malformed string. Domain UUIDs are compile-time
// constants evaluated during package initialization, so a bad one is a
// programming bug, not a runtime condition.
func DomainID(s string) uint64 {
	u, err := uuid.Parse(s)
	if err != nil {
		panic(fmt.Sprintf("status: invalid domain UUID %q: %v", s, err))
	}
	hi := binary.BigEndian.Uint64(u[:8])
	lo := binary.BigEndian.Uint64(u[8:])
	return hi ^ lo
}
