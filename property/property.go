// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package property

import (
	"log/slog"

	"github.com/z5labs/cfgkit/internal/slogfield"
)

// Property represents the value of type T for a single configuration key,
// which may or may not be present.
//
// The zero value is an absent Property with an empty key.
type Property[T any] struct {
	key   string
	value T
	set   bool
}

// New constructs a Property verbatim from the result of a comma-ok lookup.
// When ok is false the value is discarded.
func New[T any](key string, value T, ok bool) Property[T] {
	if !ok {
		return Empty[T](key)
	}
	return Of(key, value)
}

// Of returns a Property holding value for key.
func Of[T any](key string, value T) Property[T] {
	return Property[T]{
		key:   key,
		value: value,
		set:   true,
	}
}

// Empty returns a Property for key with no value present.
func Empty[T any](key string) Property[T] {
	return Property[T]{key: key}
}

// Key returns the configuration key this Property was looked up by.
func (p Property[T]) Key() string {
	return p.key
}

// Value returns the held value and whether it is present.
func (p Property[T]) Value() (T, bool) {
	return p.value, p.set
}

// IsPresent reports whether p holds a value.
func (p Property[T]) IsPresent() bool {
	return p.set
}

// Get returns the held value or a NoSuchElementError carrying the key
// when no value is present.
func (p Property[T]) Get() (T, error) {
	if !p.set {
		var zero T
		return zero, NoSuchElementError{Key: p.key}
	}
	return p.value, nil
}

// MustGet is like Get but panics when no value is present.
func (p Property[T]) MustGet() T {
	v, err := p.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// OrElse returns the held value if present, otherwise def.
func (p Property[T]) OrElse(def T) T {
	if !p.set {
		return def
	}
	return p.value
}

// OrElseGet returns the held value if present, otherwise the result of f.
// f is only called when no value is present.
func (p Property[T]) OrElseGet(f func() T) T {
	if !p.set {
		return f()
	}
	return p.value
}

// LogValue implements the slog.LogValuer interface. The held value is
// never logged since configuration values frequently contain secrets.
func (p Property[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slogfield.Key(p.key),
		slogfield.Bool("present", p.set),
	)
}
