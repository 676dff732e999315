// Copyright (c) 2023 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package env loads configuration from environment variables.
//
// Env loads environment variables and returns nested map[string]any
// by splitting the names by `_`. E.g. the environment variable
// `PARENT_CHILD_KEY="1"` is loaded as `{PARENT: {CHILD: {KEY: "1"}}}`.
// The environment variables with empty value are treated as unset.
//
// The default behavior can be changed with following options:
//   - WithPrefix only loads environment variables with the given prefix, and trims it from the name.
//   - WithDelimiter provides the delimiter when splitting environment variable name to nested keys.
//   - WithNameSplitter provides the function when splitting environment variable name to nested keys.
package env

import (
	"os"
	"strings"

	"github.com/nil-go/partial/internal/maps"
)

// Env is a Loader that loads configuration from environment variables.
//
// To create a new Env, call [New].
type Env struct {
	_        [0]func() // Ensure it's incomparable.
	prefix   string
	splitter func(string) []string
}

// New creates an Env with the given Option(s).
func New(opts ...Option) Env {
	option := &options{}
	for _, opt := range opts {
		opt(option)
	}

	return Env(*option)
}

func (e Env) Load() (map[string]any, error) {
	splitter := e.splitter
	if splitter == nil {
		splitter = func(s string) []string {
			return strings.Split(s, "_")
		}
	}

	values := make(map[string]any)
	for _, env := range os.Environ() {
		key, value, _ := strings.Cut(env, "=")
		if value == "" {
			// The environment variable with empty value is treated as unset.
			continue
		}
		name, ok := strings.CutPrefix(key, e.prefix)
		if !ok || name == "" {
			continue
		}

		keys := splitter(name)
		if len(keys) == 0 || len(keys) == 1 && keys[0] == "" {
			continue
		}
		maps.Insert(values, keys, value)
	}

	return values, nil
}

func (e Env) String() string {
	if e.prefix == "" {
		return "env"
	}

	return "env:" + e.prefix
}
