// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package validate

// Validate returns nil if cond is true. Otherwise, it returns the error
// built by factory from the formatted message. The template is used
// verbatim when no params are given and is never formatted when cond is
// true.
//
// If factory is nil or returns nil, a StateError carrying the message is
// returned instead so a failed check is never reported as success.
func Validate(cond bool, factory ErrorFactory, template string, params ...any) error {
	return check(cond, func(msg string, _ error) error {
		if factory == nil {
			return nil
		}
		return factory(msg)
	}, template, params)
}

// CheckState returns a StateError with the formatted message if cond is
// false. It is intended for invariant checks, e.g. inside a Build method
// validating the configuration a builder has accumulated.
func CheckState(cond bool, template string, params ...any) error {
	return check(cond, func(msg string, cause error) error {
		return StateError{Message: msg, Cause: cause}
	}, template, params)
}

// CheckArgument returns an ArgumentError with the formatted message if cond
// is false. The given value is always returned unchanged which allows an
// argument to be validated and assigned in a single statement.
func CheckArgument[T any](v T, cond bool, template string, params ...any) (T, error) {
	err := check(cond, func(msg string, cause error) error {
		return ArgumentError{Message: msg, Cause: cause}
	}, template, params)
	return v, err
}

// Must panics if err is non-nil and otherwise returns v.
//
//	timeout := validate.Must(validate.CheckArgument(d, d > 0, "timeout must be positive: {}", d))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func check(cond bool, build func(msg string, cause error) error, template string, params []any) error {
	if cond {
		return nil
	}

	msg := template
	var cause error
	if len(params) > 0 {
		msg, cause = format(template, params)
	}

	err := build(msg, cause)
	if err == nil {
		return StateError{Message: msg, Cause: cause}
	}
	return err
}
