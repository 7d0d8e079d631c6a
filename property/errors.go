// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package property

import (
	"errors"
	"fmt"
)

// ErrNoValue is matched by every NoSuchElementError.
var ErrNoValue = errors.New("no value present")

// NoSuchElementError is returned by Property.Get when no value is present.
type NoSuchElementError struct {
	Key string
}

// Error implements the error interface.
func (e NoSuchElementError) Error() string {
	return fmt.Sprintf("no value present for configuration property %s", e.Key)
}

// Is implements the implicit interface used by errors.Is.
func (e NoSuchElementError) Is(target error) bool {
	return target == ErrNoValue
}

// UnknownEnumValueError occurs when a value passed to an Enum
// conversion is not one of the allowed names.
type UnknownEnumValueError struct {
	Value string
}

// Error implements the error interface.
func (e UnknownEnumValueError) Error() string {
	return fmt.Sprintf("unknown enum value: %q", e.Value)
}

// InvalidYamlError occurs if a value is not a valid YAML document.
type InvalidYamlError struct {
	cause error
}

// Error implements the error interface.
func (e InvalidYamlError) Error() string {
	return fmt.Sprintf("invalid yaml: %s", e.cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidYamlError) Unwrap() error {
	return e.cause
}
