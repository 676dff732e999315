// Copyright (c) 2023 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package flag loads configuration from flags defined by [flag].
//
// Flag loads flags in [flag.CommandLine] whose names starts with the given prefix
// and returns them as a nested map[string]any.
// The unset flags with zero default value are skipped, and so are the unset flags
// whose keys have values from other loaders, to avoid overriding them with defaults.
//
// It splits the names by `.`. For example, the flag `parent.child.key="1"`
// is loaded as `{parent: {child: {key: "1"}}}`.
package flag

import (
	"flag"
	"reflect"
	"strings"

	"github.com/nil-go/partial/internal/maps"
)

// Flag is a Loader that loads configuration from flags defined by [flag].
//
// To create a new Flag, call [New].
type Flag struct {
	config   exister
	prefix   string
	set      *flag.FlagSet
	splitter func(string) []string
}

type exister interface {
	Exists(path []string) bool
}

// New creates a Flag with the given Option(s).
//
// The first parameter is usually the *partial.Config that checks if the keys of flags
// have values from other loaders. If not, default flag values are loaded.
// If they exist, flag values are loaded only if explicitly set in the command line.
func New(config exister, opts ...Option) Flag {
	option := &options{
		config: config,
	}
	for _, opt := range opts {
		opt(option)
	}

	return Flag(*option)
}

func (f Flag) Load() (map[string]any, error) {
	set := f.set
	if set == nil {
		if !flag.Parsed() {
			flag.Parse()
		}
		set = flag.CommandLine
	}

	splitter := f.splitter
	if splitter == nil {
		splitter = func(s string) []string {
			return strings.Split(s, ".")
		}
	}

	exists := func([]string) bool { return false }
	if f.config != nil {
		if value := reflect.ValueOf(f.config); value.Kind() != reflect.Pointer || !value.IsNil() {
			exists = f.config.Exists
		}
	}

	changed := make(map[string]bool)
	set.Visit(func(flag *flag.Flag) {
		changed[flag.Name] = true
	})

	values := make(map[string]any)
	set.VisitAll(
		func(flag *flag.Flag) {
			if f.prefix != "" && !strings.HasPrefix(flag.Name, f.prefix) {
				return
			}

			keys := splitter(flag.Name)
			if len(keys) == 0 || len(keys) == 1 && keys[0] == "" {
				return
			}

			var val any = flag.Value.String()
			if getter, ok := flag.Value.(interface{ Get() any }); ok {
				val = getter.Get()
			}
			// Skip unset flags to avoid overriding values set by other loader.
			if !changed[flag.Name] && (exists(keys) || val == nil || reflect.ValueOf(val).IsZero()) {
				return
			}

			maps.Insert(values, keys, val)
		},
	)

	return values, nil
}

func (f Flag) String() string {
	if f.prefix == "" {
		return "flag"
	}

	return "flag:" + f.prefix
}
