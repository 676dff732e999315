// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package partial_test

import (
	"net/netip"
	"reflect"
	"testing"
	"time"

	"github.com/nil-go/partial"
	"github.com/nil-go/partial/internal/assert"
)

type server struct {
	Host    string        `doc:"host name" partial:"host"`
	Port    int           `default:"8080"`
	Timeout time.Duration `default:"5s" partial:"timeout"`
	Started time.Time     `partial:",optional"`
	Addr    netip.Addr    `partial:"addr,optional"`
	TLS     *tlsConfig    `partial:"tls"`
	Log     logConfig
	Skipped string `partial:"-"`
	hidden  string //nolint:unused
}

type tlsConfig struct {
	Cert string
	Key  string
}

type logConfig struct {
	Stdout bool `default:"true"`
	File   string
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	schema, err := partial.Describe[server]()
	assert.NoError(t, err)
	assert.Equal(t, "server", schema.Name())

	names := make([]string, 0, len(schema.Fields()))
	for _, field := range schema.Fields() {
		names = append(names, field.Name())
	}
	assert.Equal(t, []string{"host", "Port", "timeout", "Started", "addr", "tls", "Log"}, names)

	testcases := []struct {
		description string
		path        string
		typ         reflect.Type
		nested      bool
		optional    bool
		value       any
	}{
		{
			description: "leaf with tag name",
			path:        "host",
			typ:         reflect.TypeFor[string](),
		},
		{
			description: "leaf with default",
			path:        "Port",
			typ:         reflect.TypeFor[int](),
			value:       8080,
		},
		{
			description: "duration default",
			path:        "timeout",
			typ:         reflect.TypeFor[time.Duration](),
			value:       5 * time.Second,
		},
		{
			description: "time is leaf",
			path:        "Started",
			typ:         reflect.TypeFor[time.Time](),
			optional:    true,
		},
		{
			description: "text unmarshaler is leaf",
			path:        "addr",
			typ:         reflect.TypeFor[netip.Addr](),
			optional:    true,
		},
		{
			description: "pointer to struct is optional nested",
			path:        "tls",
			nested:      true,
			optional:    true,
		},
		{
			description: "struct is nested",
			path:        "log",
			nested:      true,
		},
		{
			description: "nested leaf",
			path:        "log.stdout",
			typ:         reflect.TypeFor[bool](),
			value:       true,
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			field, ok := schema.Lookup(testcase.path)
			assert.True(t, ok)
			assert.Equal(t, testcase.typ, field.Type())
			assert.Equal(t, testcase.nested, field.IsNested())
			assert.Equal(t, testcase.optional, field.IsOptional())
			value, _ := field.Default()
			assert.Equal(t, testcase.value, value)
		})
	}

	host, _ := schema.Lookup("host")
	assert.Equal(t, "host name", host.Description())
}

func TestDescribe_unmarshal(t *testing.T) {
	t.Parallel()

	schema, err := partial.Describe[*server]()
	assert.NoError(t, err)

	config := partial.New(schema)
	assert.NoError(t, config.Load(mapLoader{
		"host": "example.com",
		"addr": "127.0.0.1",
		"log":  map[string]any{"file": "/var/log/app.log"},
	}))

	var actual server
	assert.NoError(t, config.Unmarshal(&actual))
	expected := server{
		Host:    "example.com",
		Port:    8080,
		Timeout: 5 * time.Second,
		Addr:    netip.MustParseAddr("127.0.0.1"),
		Log:     logConfig{Stdout: true, File: "/var/log/app.log"},
	}
	assert.Equal(t, expected, actual)
}

func TestDescribe_error(t *testing.T) {
	t.Parallel()

	type badTag struct {
		X string `partial:"x,required"`
	}
	type node struct {
		Next *node
	}

	testcases := []struct {
		description string
		typ         reflect.Type
		err         string
	}{
		{
			description: "not struct",
			typ:         reflect.TypeFor[int](),
			err:         "schema int: type is not a struct",
		},
		{
			description: "unknown tag flag",
			typ:         reflect.TypeFor[badTag](),
			err:         "schema badTag: field x: required: unknown tag flag",
		},
		{
			description: "cycle",
			typ:         reflect.TypeFor[node](),
			err:         "schema node: field Next: partial_test.node: nesting cycle",
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			schema, err := partial.DescribeType(testcase.typ)
			assert.Nil(t, schema)
			assert.EqualError(t, err, testcase.err)
			assert.ErrorIs(t, err, partial.ErrSchema)
		})
	}
}
