// Copyright (c) 2023 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package slogfield provides typed slog.Attr constructors so log
// calls use consistent attribute keys.
package slogfield

import "log/slog"

// Bool returns an slog.Attr for a bool.
func Bool(key string, value bool) slog.Attr {
	return slog.Bool(key, value)
}

// Error returns an slog.Attr for a error.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

// Key returns an slog.Attr for a configuration property key.
func Key(key string) slog.Attr {
	return slog.String("key", key)
}

// String returns an slog.Attr for a string.
func String(key, value string) slog.Attr {
	return slog.String(key, value)
}

// Type returns an slog.Attr naming the Go type a value was converted to.
func Type(name string) slog.Attr {
	return slog.String("type", name)
}
