// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package partial_test

import (
	"testing"

	"github.com/nil-go/partial"
	"github.com/nil-go/partial/internal/assert"
)

func TestRegistry_Build(t *testing.T) {
	t.Parallel()

	var registry partial.Registry
	// Definitions are resolved by name regardless of their order.
	registry.Define("Conf", partial.NestedRef("http", "Http"), partial.NestedRef("admin", "Http", partial.Optional()))
	registry.Define("Http", partial.NestedRef("log", "Log"))
	registry.Define("Log", partial.Leaf[bool]("stdout", partial.Default(true)))

	schema, err := registry.Build("Conf")
	assert.NoError(t, err)
	http, _ := schema.Lookup("http")
	admin, _ := schema.Lookup("admin")
	assert.True(t, http.Schema() == admin.Schema())

	again, err := registry.Build("Conf")
	assert.NoError(t, err)
	assert.True(t, schema == again)

	value, err := partial.Finalize(partial.Defaults(schema))
	assert.NoError(t, err)
	assert.Equal(t, any(true), partial.Get[any](value, "http.log.stdout"))
}

func TestRegistry_Build_error(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		define      func(*partial.Registry)
		err         string
	}{
		{
			description: "not registered",
			define:      func(*partial.Registry) {},
			err:         "schema Conf: schema is not registered",
		},
		{
			description: "nested not registered",
			define: func(registry *partial.Registry) {
				registry.Define("Conf", partial.NestedRef("http", "Http"))
			},
			err: "schema Conf: field http: schema Http: schema is not registered",
		},
		{
			description: "cycle",
			define: func(registry *partial.Registry) {
				registry.Define("Conf", partial.NestedRef("http", "Http"))
				registry.Define("Http", partial.NestedRef("conf", "Conf"))
			},
			err: "schema Conf: field http: schema Http: field conf: Conf -> Http -> Conf: nesting cycle",
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			var registry partial.Registry
			testcase.define(&registry)
			schema, err := registry.Build("Conf")
			assert.Nil(t, schema)
			assert.EqualError(t, err, testcase.err)
			assert.ErrorIs(t, err, partial.ErrSchema)
		})
	}
}

func TestRegistry_Define_again(t *testing.T) {
	t.Parallel()

	var registry partial.Registry
	registry.Define("Log", partial.Leaf[bool]("stdout"))
	first, err := registry.Build("Log")
	assert.NoError(t, err)

	registry.Define("Log", partial.Leaf[bool]("stdout", partial.Default(false)))
	second, err := registry.Build("Log")
	assert.NoError(t, err)
	assert.True(t, first != second)
	stdout, _ := second.Lookup("stdout")
	_, ok := stdout.Default()
	assert.True(t, ok)
}
