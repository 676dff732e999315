// Copyright (c) 2023 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package partial

import "log/slog"

// WithLogHandler provides the slog.Handler for logs from Config.
//
// By default, it uses handler from slog.Default().
func WithLogHandler(handler slog.Handler) Option {
	return func(options *options) {
		if handler != nil {
			options.logger = slog.New(handler)
		}
	}
}

// WithKeyMap provides the function that maps keys from loaders and field names
// before comparing them, when they do not match exactly.
//
// By default, it's strings.ToLower, which makes names case-insensitive.
func WithKeyMap(keyMap func(string) string) Option {
	return func(options *options) {
		options.keyMap = keyMap
	}
}

type (
	// Option configures a Config with specific options.
	Option  func(*options)
	options Config
)
