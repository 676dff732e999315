// Copyright (c) 2025 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package env

import "strings"

// WithPrefix provides the prefix used when loading environment variables.
// Only environment variables with names that start with the prefix will be loaded,
// and the prefix is trimmed from the names before splitting them into nested keys.
//
// For example, with the prefix "APP_", the environment variable "APP_HTTP_PORT"
// is loaded as `{HTTP: {PORT: ...}}`.
// By default, it has no prefix which loads all environment variables.
func WithPrefix(prefix string) Option {
	return func(options *options) {
		options.prefix = prefix
	}
}

// WithDelimiter provides the delimiter when splitting environment variable names into nested keys.
//
// The default delimiter is `_`. A multi-character delimiter like `__` keeps
// single underscores inside keys, e.g. "HTTP__DISPLAY_NAME" is loaded as `{HTTP: {DISPLAY_NAME: ...}}`.
func WithDelimiter(delimiter string) Option {
	return WithNameSplitter(func(name string) []string {
		return strings.Split(name, delimiter)
	})
}

// WithNameSplitter provides the function used to split environment variable names into nested keys.
// If it returns an nil/[]string{}/[]string{""}, the variable will be ignored.
//
// For example, with the default splitter, an environment variable name like "PARENT_CHILD_KEY"
// would be split into "PARENT", "CHILD", and "KEY".
func WithNameSplitter(splitter func(string) []string) Option {
	return func(options *options) {
		options.splitter = splitter
	}
}

type (
	// Option configures an Env with specific options.
	Option  func(*options)
	options Env
)
