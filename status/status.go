package status

import "fmt"

// Status pairs a raw code with the domain that interprets it. The pairing
// is never split: classification, message rendering and comparison all go
// through the embedded domain. Status is a value type; copy it freely.
type Status struct {
	domain Domain
	value  int64
}

// New builds a Status from a domain and a raw code.
func New(d Domain, value int64) Status {
	if d == nil {
		panic("status: nil domain")
	}
	return Status{domain: d, value: value}
}

// FromEnum lifts a registered enum constant into a Status in its owning
// domain.
func FromEnum(e CodeEnum) Status {
	return New(e.StatusDomain(), e.StatusValue())
}

// Domain returns the domain interpreting the code.
func (s Status) Domain() Domain { return s.domain }

// Value returns the raw code.
func (s Status) Value() int64 { return s.value }

// Message renders the code's textual description via the owning domain.
func (s Status) Message() string { return s.domain.Message(s.value) }

// IsSuccess reports whether the code is the domain's success value.
func (s Status) IsSuccess() bool { return s.domain.IsSuccess(s.value) }

// IsError reports whether the code denotes a failure.
func (s Status) IsError() bool { return !s.IsSuccess() }

// Generic translates the code into the portable Generic vocabulary.
// The second result is false when the owning domain does not support the
// translation.
func (s Status) Generic() (Errno, bool) {
	g, ok := s.domain.(GenericConvertible)
	if !ok {
		return ErrnoUnknown, false
	}
	return g.Generic(s.value), true
}

// Equivalent reports whether s and o denote the same semantic condition.
// When both domains translate to the Generic vocabulary the comparison
// goes through that translation (a translation to Unknown matches
// nothing). Failing that, codes of the same domain compare by raw value,
// excluding the domain's unknown sentinel, which never equals anything,
// including itself.
func (s Status) Equivalent(o Status) bool {
	if ga, aok := s.domain.(GenericConvertible); aok {
		if gb, bok := o.domain.(GenericConvertible); bok {
			ea, eb := ga.Generic(s.value), gb.Generic(o.value)
			if ea != ErrnoUnknown && ea == eb {
				return true
			}
		}
	}
	if !SameDomain(s.domain, o.domain) {
		return false
	}
	if s.domain.IsUnknown(s.value) || o.domain.IsUnknown(o.value) {
		return false
	}
	return s.value == o.value
}

// Err returns nil for a success Status and the equivalent *Error otherwise.
func (s Status) Err() error {
	if s.IsSuccess() {
		return nil
	}
	return &Error{status: s}
}

// String implements fmt.Stringer as "<domain>: <message>".
func (s Status) String() string {
	return s.domain.Name() + ": " + s.Message()
}

// Error is a Status that is guaranteed to represent failure. It implements
// the error interface, so domain-classified conditions travel through
// ordinary Go error returns.
type Error struct {
	status Status
}

// NewError builds an Error from a domain and a raw failure code. Passing
// the domain's success value is a contract violation and panics: such a
// call site is a bug, not a recoverable condition.
func NewError(d Domain, value int64) *Error {
	s := New(d, value)
	if s.IsSuccess() {
		panic(fmt.Sprintf("status: NewError(%s, %d) called with the domain success value", d.Name(), value))
	}
	return &Error{status: s}
}

// ErrorFromEnum lifts a registered enum constant into an Error. Panics if
// the constant is the owning domain's success value.
func ErrorFromEnum(e CodeEnum) *Error {
	return NewError(e.StatusDomain(), e.StatusValue())
}

// Status returns the underlying Status value.
func (e *Error) Status() Status { return e.status }

// Value returns the raw code.
func (e *Error) Value() int64 { return e.status.value }

// Domain returns the domain interpreting the code.
func (e *Error) Domain() Domain { return e.status.domain }

// Message renders the code's textual description.
func (e *Error) Message() string { return e.status.Message() }

// Error implements the error interface.
func (e *Error) Error() string { return e.status.String() }

// Is makes errors.Is perform cross-domain semantic comparison: the target
// matches when it is a *Error whose status is equivalent to this one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.status.Equivalent(t.status)
}
