package domain

import (
	"errors"
	"fmt"
)

// Error kinds returned by the et packages.
// Check them with errors.Is; the concrete error is usually an *InputError.
var (
	// ErrInvalidDuration is returned for a malformed offset token.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrInvalidTimestamp is returned for malformed or out-of-range ISO-8601 input.
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// ErrInvalidEpoch is returned for a non-integer or out-of-range epoch literal.
	ErrInvalidEpoch = errors.New("invalid epoch")

	// ErrEpochOverflow is returned when arithmetic leaves the int64 epoch range.
	ErrEpochOverflow = errors.New("epoch overflow")
)

// InputError describes a rejected input value.
type InputError struct {
	// Kind is one of the Err* sentinels above.
	Kind error
	// Input is the offending text, verbatim.
	Input string
	// Reason says what is wrong with Input. Optional.
	Reason string
	// Expected names the accepted format. Optional.
	Expected string
}

// Error implements error.
func (e *InputError) Error() string {
	msg := fmt.Sprintf("%v %q", e.Kind, e.Input)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Expected != "" {
		msg += " (expected " + e.Expected + ")"
	}
	return msg
}

// Unwrap returns the error kind so errors.Is matches the sentinel.
func (e *InputError) Unwrap() error {
	return e.Kind
}

// Overflow returns an ErrEpochOverflow error describing the operation.
func Overflow(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrEpochOverflow, fmt.Sprintf(format, args...))
}
