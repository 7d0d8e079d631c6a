// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package property

import (
	"strconv"
	"time"

	"github.com/spf13/cast"
)

// The following conversions are meant to be passed to Map, e.g.
//
//	debug := property.Map(src.Lookup("DEBUG"), property.ToBool).OrElse(false)

// ToBool converts v to a bool.
func ToBool[T any](v T) (bool, error) {
	return cast.ToBoolE(v)
}

// ToInt converts v to an int. Strings are always parsed in base 10 so a
// zero padded value like "010" is 10.
func ToInt[T any](v T) (int, error) {
	if s, ok := any(v).(string); ok {
		i, err := strconv.ParseInt(s, 10, strconv.IntSize)
		return int(i), err
	}
	return cast.ToIntE(v)
}

// ToInt64 converts v to an int64. Strings are always parsed in base 10.
func ToInt64[T any](v T) (int64, error) {
	if s, ok := any(v).(string); ok {
		return strconv.ParseInt(s, 10, 64)
	}
	return cast.ToInt64E(v)
}

// ToFloat64 converts v to a float64.
func ToFloat64[T any](v T) (float64, error) {
	return cast.ToFloat64E(v)
}

// ToDuration converts v to a time.Duration. Strings are parsed with
// time.ParseDuration and bare numbers are treated as nanoseconds.
func ToDuration[T any](v T) (time.Duration, error) {
	return cast.ToDurationE(v)
}

// ToString converts v to a string.
func ToString[T any](v T) (string, error) {
	return cast.ToStringE(v)
}

// ToStringSlice converts v to a []string. Strings are split on whitespace.
func ToStringSlice[T any](v T) ([]string, error) {
	return cast.ToStringSliceE(v)
}

// Enum returns a conversion from a name to one of the allowed values.
// Names not present in allowed result in an UnknownEnumValueError.
func Enum[R any](allowed map[string]R) func(string) (R, error) {
	return func(s string) (R, error) {
		r, ok := allowed[s]
		if !ok {
			return r, UnknownEnumValueError{Value: s}
		}
		return r, nil
	}
}
