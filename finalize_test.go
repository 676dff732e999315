// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package partial_test

import (
	"errors"
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"github.com/nil-go/partial"
	"github.com/nil-go/partial/internal/assert"
)

func TestFinalize(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		layers      []*partial.Partial
		expected    map[string]any
		err         string
	}{
		{
			description: "defaults only",
			layers:      []*partial.Partial{partial.Defaults(confSchema)},
			expected: map[string]any{
				"http": map[string]any{
					"headers": map[string]any{"username": "x-username", "display_name": "x-display-name"},
					"log":     map[string]any{"stdout": true, "file": nil},
				},
			},
		},
		{
			description: "file on top of defaults",
			layers: []*partial.Partial{
				layerOf(t, map[string]any{"http.log.file": "/var/log/app.log"}),
				partial.Defaults(confSchema),
			},
			expected: map[string]any{
				"http": map[string]any{
					"headers": map[string]any{"username": "x-username", "display_name": "x-display-name"},
					"log":     map[string]any{"stdout": true, "file": "/var/log/app.log"},
				},
			},
		},
		{
			description: "all layers provide values",
			layers: []*partial.Partial{
				layerOf(t, map[string]any{"http.log.stdout": false}),
				layerOf(t, map[string]any{
					"http.headers.username":     "x-user",
					"http.headers.display_name": "x-name",
					"http.log.stdout":           true,
				}),
			},
			expected: map[string]any{
				"http": map[string]any{
					"headers": map[string]any{"username": "x-user", "display_name": "x-name"},
					"log":     map[string]any{"stdout": false, "file": nil},
				},
			},
		},
		{
			description: "first missing in declaration order",
			layers:      []*partial.Partial{partial.Empty(confSchema)},
			err:         "missing required value for 'http.headers.username'",
		},
		{
			description: "stdout absent in every layer",
			layers: []*partial.Partial{
				layerOf(t, map[string]any{"http.log.file": "/var/log/app.log"}),
				layerOf(t, map[string]any{"http.headers.username": "x-user", "http.headers.display_name": "x-name"}),
			},
			err: "missing required value for 'http.log.stdout'",
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			value, err := partial.Finalize(partial.Fold(testcase.layers...))
			if testcase.err != "" {
				assert.EqualError(t, err, testcase.err)
				assert.ErrorIs(t, err, partial.ErrMissingValue)

				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testcase.expected, value.Map())
		})
	}
}

func TestFinalize_missing_path(t *testing.T) {
	t.Parallel()

	layer := partial.Defaults(confSchema)
	assert.NoError(t, layer.Set("http.log.stdout", nil))

	_, err := partial.Finalize(layer)
	var missing *partial.MissingValueError
	assert.True(t, errors.As(err, &missing))
	assert.Equal(t, "http.log.stdout", missing.Path)
}

func TestFinalize_optional(t *testing.T) {
	t.Parallel()

	credentials := partial.MustSchema(
		"Credentials",
		partial.Leaf[string]("user"),
		partial.Leaf[string]("password"),
	)
	schema := partial.MustSchema(
		"Database",
		partial.Leaf[string]("file", partial.Optional()),
		partial.Nested("credentials", credentials, partial.Optional()),
	)

	testcases := []struct {
		description string
		values      map[string]any
		expected    map[string]any
		err         string
	}{
		{
			description: "all absent",
			expected:    map[string]any{"file": nil, "credentials": nil},
		},
		{
			description: "optional nested present",
			values:      map[string]any{"credentials.user": "admin", "credentials.password": "secret"},
			expected: map[string]any{
				"file":        nil,
				"credentials": map[string]any{"user": "admin", "password": "secret"},
			},
		},
		{
			description: "optional nested partially present",
			values:      map[string]any{"file": "/var/db", "credentials.user": "admin"},
			err:         "missing required value for 'credentials.password'",
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			layer := partial.Empty(schema)
			for path, value := range testcase.values {
				assert.NoError(t, layer.Set(path, value))
			}

			value, err := partial.Finalize(layer)
			if testcase.err != "" {
				assert.EqualError(t, err, testcase.err)

				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testcase.expected, value.Map())
		})
	}
}

func TestFinalize_defaults(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		schema := schemaGen(2).Draw(t, "schema")

		_, err := partial.Finalize(partial.Defaults(schema))
		if complete := isComplete(schema); complete != (err == nil) {
			t.Fatalf("complete: %v, error: %v", complete, err)
		}
	})
}

// schemaGen generates schemas with required, defaulted and optional leaves
// nested up to the given depth.
func schemaGen(depth int) *rapid.Generator[*partial.Schema] {
	return rapid.Custom(func(t *rapid.T) *partial.Schema {
		count := rapid.IntRange(1, 4).Draw(t, "fields")
		fields := make([]partial.Field, 0, count)
		for i := range count {
			name := fmt.Sprintf("f%d", i)
			kinds := 3
			if depth > 0 {
				kinds = 4
			}
			switch rapid.IntRange(0, kinds-1).Draw(t, "kind") {
			case 0:
				fields = append(fields, partial.Leaf[int](name))
			case 1:
				fields = append(fields, partial.Leaf[int](name, partial.Default(i)))
			case 2:
				fields = append(fields, partial.Leaf[int](name, partial.Optional()))
			default:
				fields = append(fields, partial.Nested(name, schemaGen(depth-1).Draw(t, name)))
			}
		}

		schema, err := partial.NewSchema(fmt.Sprintf("S%d", depth), fields...)
		if err != nil {
			t.Fatalf("new schema: %v", err)
		}

		return schema
	})
}

func isComplete(schema *partial.Schema) bool {
	for _, field := range schema.Fields() {
		if field.IsNested() {
			if !isComplete(field.Schema()) {
				return false
			}

			continue
		}
		if _, ok := field.Default(); !ok && !field.IsOptional() {
			return false
		}
	}

	return true
}
