// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package validate provides helpers for enforcing preconditions and
// invariants in constructors, builders and algorithm entry points.
//
// Each helper evaluates a condition and, only when it is false, formats a
// message from a template and returns an error built from that message.
// Templates use "{}" as a positional placeholder:
//
//	port, err := validate.CheckArgument(port, port > 0, "port must be positive but was {}", port)
//	if err != nil {
//	    return nil, err
//	}
//
// CheckState returns a StateError, which matches ErrIllegalState, and is meant
// for a builder whose accumulated configuration is invalid. CheckArgument returns
// an ArgumentError, which matches ErrIllegalArgument, and is meant for a bad
// input supplied by a caller. Validate accepts any ErrorFactory for custom
// error types.
package validate
