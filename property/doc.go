// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package property provides a small, safe abstraction for reading named
// configuration values.
//
// A Property[T] is the result of looking up a single key. It either holds a
// value of type T or records that no value is present for the key. A value is
// never mutated after construction; transformations always produce a new
// Property for the same key.
//
// # Basic Usage
//
// Look up a value and fall back to a default when it is missing:
//
//	host := property.Env().Lookup("HOST").OrElse("localhost")
//
// Convert a value and fall back to a default when it is missing or malformed:
//
//	port := property.Map(property.Env().Lookup("PORT"), strconv.Atoi).OrElse(8080)
//
// # Failure Handling
//
// Map is total. If the transformation returns an error or panics, the failure
// is logged as a warning naming the key and the result is an absent Property.
// The failure never reaches the caller, who simply receives the default passed
// to OrElse.
//
// Get is the only operation which reports absence as an error. The returned
// error is a NoSuchElementError and matches ErrNoValue via errors.Is.
//
// # Diagnostics
//
// Failed transformations are logged through a process wide *slog.Logger which
// can be replaced with SetLogger. By default the logger wraps slog.Default with
// an otelslog.Handler so warnings emitted via MapContext carry trace ids.
package property
