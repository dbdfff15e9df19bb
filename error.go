package grep

import (
	"errors"
	"fmt"
	"strings"
)

// ParserError represents the type of error.
type ParserError uint

// ORDER IN WHICH THE ERROR CONSTANTS APPEAR MATTERS.
const (
	// ErrUnknown indicates a generic error.
	ErrUnknown ParserError = iota

	// ErrUnknownFlag indicates an unknown flag.
	ErrUnknownFlag

	// ErrMissingPattern indicates that the required pattern positional
	// was not provided.
	ErrMissingPattern

	// ErrBadFlagValue indicates a malformed argument to a flag.
	ErrBadFlagValue
)

func (e ParserError) String() string {
	errs := [...]string{
		"unknown",         // ErrUnknown
		"unknown flag",    // ErrUnknownFlag
		"missing pattern", // ErrMissingPattern
		"bad flag value",  // ErrBadFlagValue
	}
	if int(e) >= len(errs) {
		return "unrecognized error type"
	}

	return errs[e]
}

func (e ParserError) Error() string {
	return e.String()
}

// Error represents a malformed invocation. The error returned from Parse is
// of this type, and contains both a Type and a Message. The message is meant
// to be surfaced verbatim to the user; the caller decides exit behavior.
type Error struct {
	// The type of error
	Type ParserError

	// The error message
	Message string
}

// Error returns the error's message.
func (e *Error) Error() string {
	return e.Message
}

func newError(tp ParserError, message string) *Error {
	return &Error{
		Type:    tp,
		Message: message,
	}
}

func newErrorf(tp ParserError, format string, args ...interface{}) *Error {
	return newError(tp, fmt.Sprintf(format, args...))
}

func wrapError(err error) *Error {
	var ret *Error
	if errors.As(err, &ret) {
		return ret
	}

	return newError(classify(err), err.Error())
}

// classify maps errors coming out of flag parsing onto the taxonomy above.
// The underlying flag set returns untyped errors, so only the message is
// available to look at.
func classify(err error) ParserError {
	msg := err.Error()

	switch {
	case strings.HasPrefix(msg, "unknown flag"),
		strings.HasPrefix(msg, "unknown shorthand flag"):
		return ErrUnknownFlag
	case strings.HasPrefix(msg, "invalid argument"):
		return ErrBadFlagValue
	}

	return ErrUnknown
}
