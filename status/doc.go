// doc.go — package documentation for hyperion/status
//
// Package status provides a composable, multi-domain error-code system.
// A Domain is a stateless value type describing one universe of raw error
// codes (POSIX errno, Win32 GetLastError, Windows NTSTATUS, or the portable
// Generic vocabulary). A Status pairs a raw code with its Domain; an Error
// is a Status that is statically guaranteed to represent failure.
//
// # Domain Identity
//
// Domains compare by a 64-bit ID folded deterministically from a UUID
// string (see DomainID). Two domain values with equal IDs are the same
// domain no matter which module created them, so Status values can be
// compared safely across independently built components without a shared
// registry.
//
// # Cross-Domain Equivalence
//
// Domains that can translate their codes into the Generic domain
// (GenericConvertible) participate in semantic comparison: a POSIX ENOENT
// compares equivalent to the Generic "no such file or directory" code.
// Unmapped codes translate to the Unknown sentinel, which never compares
// equal to anything, including itself.
//
// # Error Reporting Style
//
//   - Expected, recoverable conditions travel as Status/Error return
//     values, never panics.
//   - Constructing an Error from a domain's success value is a contract
//     violation and panics.
//   - Message rendering is best effort: when the underlying facility
//     cannot produce text, a fixed fallback string is returned instead of
//     an error.
package status
