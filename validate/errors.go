// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package validate

import "errors"

var (
	// ErrIllegalState is matched by every StateError.
	ErrIllegalState = errors.New("illegal state")

	// ErrIllegalArgument is matched by every ArgumentError.
	ErrIllegalArgument = errors.New("illegal argument")
)

// ErrorFactory builds the error returned for a failed check from its
// formatted message. It should never return nil.
type ErrorFactory func(msg string) error

// NewStateError is an ErrorFactory for StateErrors.
func NewStateError(msg string) error {
	return StateError{Message: msg}
}

// NewArgumentError is an ErrorFactory for ArgumentErrors.
func NewArgumentError(msg string) error {
	return ArgumentError{Message: msg}
}

// StateError reports that an object's internal invariant does not hold.
type StateError struct {
	Message string

	// Cause is set when the last template parameter is an
	// error which no placeholder consumed.
	Cause error
}

// Error implements the error interface.
func (e StateError) Error() string {
	return e.Message
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e StateError) Unwrap() error {
	return e.Cause
}

// Is implements the implicit interface used by errors.Is.
func (e StateError) Is(target error) bool {
	return target == ErrIllegalState
}

// ArgumentError reports that a caller supplied input failed a precondition.
type ArgumentError struct {
	Message string

	// Cause is set when the last template parameter is an
	// error which no placeholder consumed.
	Cause error
}

// Error implements the error interface.
func (e ArgumentError) Error() string {
	return e.Message
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ArgumentError) Unwrap() error {
	return e.Cause
}

// Is implements the implicit interface used by errors.Is.
func (e ArgumentError) Is(target error) bool {
	return target == ErrIllegalArgument
}
