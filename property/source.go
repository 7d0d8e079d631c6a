// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package property

import "os"

// Source represents anything which can look up a configuration value by
// key. A missing key is an expected outcome and is reported by returning
// an absent Property, never an error.
type Source[T any] interface {
	Lookup(key string) Property[T]
}

// SourceFunc is a functional implementation of the Source interface.
type SourceFunc[T any] func(string) Property[T]

// Lookup implements the Source interface.
func (f SourceFunc[T]) Lookup(key string) Property[T] {
	return f(key)
}

// Lookup looks up key in src. A nil src yields an absent Property.
func Lookup[T any](src Source[T], key string) Property[T] {
	if src == nil {
		return Empty[T](key)
	}
	return src.Lookup(key)
}

// MapSource is an ordinary map but implements the Source interface.
type MapSource[T any] map[string]T

// Lookup implements the Source interface.
func (m MapSource[T]) Lookup(key string) Property[T] {
	v, ok := m[key]
	return New(key, v, ok)
}

// EnvOption configures an EnvSource.
type EnvOption func(*EnvSource)

// EnvPrefix prepends prefix to every key before it is looked up
// in the environment. The returned Property keeps the unprefixed key.
func EnvPrefix(prefix string) EnvOption {
	return func(src *EnvSource) {
		src.prefix = prefix
	}
}

// EnvLookupFunc overrides how environment variables are looked up.
// It defaults to os.LookupEnv.
func EnvLookupFunc(f func(string) (string, bool)) EnvOption {
	return func(src *EnvSource) {
		src.lookupEnv = f
	}
}

// EnvSource is a Source where its underlying values
// are extracted from environment variables.
type EnvSource struct {
	prefix    string
	lookupEnv func(string) (string, bool)
}

// Env returns a Source backed by the environment variables
// available to the current process.
func Env(opts ...EnvOption) EnvSource {
	src := EnvSource{
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(&src)
	}
	return src
}

// Lookup implements the Source interface. A variable which is set to
// the empty string is present. The zero EnvSource reads the process
// environment.
func (src EnvSource) Lookup(key string) Property[string] {
	lookupEnv := src.lookupEnv
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	v, ok := lookupEnv(src.prefix + key)
	return New(key, v, ok)
}
