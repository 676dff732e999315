// Copyright (c) 2023 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package partial

import (
	"fmt"
	"log/slog"
	"reflect"
)

// Get returns the value under the given dotted path of the resolved Value.
// It returns zero value if the value is absent or cannot be decoded into T,
// and logs the error with slog.Default() for the latter.
// The path is case-insensitive.
func Get[T any](value Value, path string) T { //nolint:ireturn
	typed, err := Lookup[T](value, path)
	if err != nil {
		slog.Error(
			"Could not read config, return empty value instead.",
			"error", err,
			"path", path,
			"type", reflect.TypeFor[T](),
		)
	}

	return typed
}

// Lookup returns the value under the given dotted path of the resolved Value,
// decoded into T. Nested values are decoded like [Value.Decode].
// It returns zero value without error if the value is absent.
// The path is case-insensitive.
func Lookup[T any](value Value, path string) (T, error) { //nolint:ireturn
	var typed T

	raw, ok := value.Get(path)
	if !ok {
		if value.schema == nil {
			return typed, fmt.Errorf("lookup %s: %w", path, errUnknownField)
		}
		if _, exist := value.schema.Lookup(path); !exist {
			return typed, fmt.Errorf("lookup %s: %w", path, errUnknownField)
		}

		return typed, nil
	}

	switch v := raw.(type) {
	case T:
		return v, nil
	case Value:
		if err := v.Decode(&typed); err != nil {
			return typed, fmt.Errorf("lookup %s: %w", path, err)
		}
	default:
		if err := decode(raw, &typed); err != nil {
			return typed, fmt.Errorf("lookup %s: %w", path, err)
		}
	}

	return typed, nil
}
