// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package property

import (
	"context"
	"reflect"

	"github.com/z5labs/cfgkit/internal/slogfield"
	"github.com/z5labs/cfgkit/internal/try"
)

// Map transforms the value held by p using f.
//
// If p is absent, f is not called and an absent Property[R] for the same
// key is returned. If f returns an error or panics, a warning naming the
// key is logged and an absent Property[R] is returned. Map itself never
// fails.
func Map[T, R any](p Property[T], f func(T) (R, error)) Property[R] {
	return MapContext(context.Background(), p, func(_ context.Context, v T) (R, error) {
		return f(v)
	})
}

// MapContext is like Map but passes ctx to f and uses it when logging
// a failed transformation.
func MapContext[T, R any](ctx context.Context, p Property[T], f func(context.Context, T) (R, error)) Property[R] {
	v, ok := p.Value()
	if !ok {
		return Empty[R](p.key)
	}

	r, err := try.Call(func(v T) (R, error) {
		return f(ctx, v)
	}, v)
	if err != nil {
		warnMapFailed[R](ctx, p.key, err)
		return Empty[R](p.key)
	}
	return Of(p.key, r)
}

// Bind transforms the value held by p into another Property using f.
// The result keeps the key of p. An absent result from f propagates as
// absence and a panic in f is handled the same way Map handles one.
func Bind[T, R any](p Property[T], f func(T) Property[R]) Property[R] {
	v, ok := p.Value()
	if !ok {
		return Empty[R](p.key)
	}

	q, err := try.Call(func(v T) (Property[R], error) {
		return f(v), nil
	}, v)
	if err != nil {
		warnMapFailed[R](context.Background(), p.key, err)
		return Empty[R](p.key)
	}

	r, ok := q.Value()
	return New(p.key, r, ok)
}

func warnMapFailed[R any](ctx context.Context, key string, err error) {
	logger().WarnContext(
		ctx,
		"failed to map property value",
		slogfield.Key(key),
		slogfield.Type(reflect.TypeFor[R]().String()),
		slogfield.Error(err),
	)
}
