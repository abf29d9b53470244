package styles

import (
	"errors"
	"fmt"
)

//go:generate go tool go-enum --names

// Kind of argument validation failure reported by style helpers.
// ENUM(InvalidLengthFormat, InvalidColorFormat, InvalidOpacity, InvalidPosition, InvalidStyleType, InvalidFlagType, InvalidAllowListType, InvalidPropsType, UnknownBreakpoint)
type ErrorKind int

// Error is returned by every helper on invalid input. Callers are expected to
// branch on Kind, Msg is for humans.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Msg
}

// Is reports whether target is an *Error of the same kind, so sentinels below
// work with errors.Is regardless of the message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrInvalidLengthFormat  = &Error{Kind: ErrorKindInvalidLengthFormat}
	ErrInvalidColorFormat   = &Error{Kind: ErrorKindInvalidColorFormat}
	ErrInvalidOpacity       = &Error{Kind: ErrorKindInvalidOpacity}
	ErrInvalidPosition      = &Error{Kind: ErrorKindInvalidPosition}
	ErrInvalidStyleType     = &Error{Kind: ErrorKindInvalidStyleType}
	ErrInvalidFlagType      = &Error{Kind: ErrorKindInvalidFlagType}
	ErrInvalidAllowListType = &Error{Kind: ErrorKindInvalidAllowListType}
	ErrInvalidPropsType     = &Error{Kind: ErrorKindInvalidPropsType}
	ErrUnknownBreakpoint    = &Error{Kind: ErrorKindUnknownBreakpoint}
)

// NewError creates a validation error of the given kind.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind of a validation error anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
