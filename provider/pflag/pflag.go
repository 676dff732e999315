// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package pflag loads configuration from flags defined by [spf13/pflag].
//
// PFlag loads flags in [pflag.CommandLine] whose names starts with the given prefix
// and returns them as a nested map[string]any.
// The unchanged flags with zero default value are skipped, and so are the unchanged flags
// whose keys have values from other loaders, to avoid overriding them with defaults.
//
// It splits the names by `.`. For example, the flag `parent.child.key="1"`
// is loaded as `{parent: {child: {key: "1"}}}`.
// Values are loaded as strings, or []string for slice flags,
// and decoded into the declared types of the schema fields.
//
// [spf13/pflag]: https://github.com/spf13/pflag
package pflag

import (
	"flag"
	"reflect"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"github.com/nil-go/partial/internal/maps"
)

// PFlag is a Loader that loads configuration from flags defined by [spf13/pflag].
//
// To create a new PFlag, call [New].
type PFlag struct {
	config   exister
	prefix   string
	set      *pflag.FlagSet
	splitter func(string) []string
}

type exister interface {
	Exists(path []string) bool
}

// New creates a PFlag with the given Option(s).
//
// The first parameter is usually the *partial.Config that checks if the keys of flags
// have values from other loaders. If not, default flag values are loaded.
// If they exist, flag values are loaded only if explicitly set in the command line.
func New(config exister, opts ...Option) PFlag {
	option := &options{
		config: config,
	}
	for _, opt := range opts {
		opt(option)
	}

	return PFlag(*option)
}

func (f PFlag) Load() (map[string]any, error) {
	set := f.set
	if set == nil {
		if !pflag.Parsed() {
			pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
			pflag.Parse()
		}
		set = pflag.CommandLine
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

	values := make(map[string]any)
	set.VisitAll(
		func(flag *pflag.Flag) {
			if f.prefix != "" && !strings.HasPrefix(flag.Name, f.prefix) {
				return
			}

			keys := splitter(flag.Name)
			if len(keys) == 0 || len(keys) == 1 && keys[0] == "" {
				return
			}

			// Skip unchanged flags to avoid overriding values set by other loader.
			if !flag.Changed && (exists(keys) || isZeroDefault(flag)) {
				return
			}

			var val any = flag.Value.String()
			if slice, ok := flag.Value.(pflag.SliceValue); ok {
				val = slice.GetSlice()
			}
			maps.Insert(values, keys, val)
		},
	)

	return values, nil
}

// isZeroDefault reports whether the default value of the flag is
// the zero value of its type in the textual form pflag uses.
func isZeroDefault(flag *pflag.Flag) bool {
	return slices.Contains([]string{"", "0", "false", "0s", "[]", "<nil>", "map[]"}, flag.DefValue)
}

func (f PFlag) String() string {
	if f.prefix == "" {
		return "pflag"
	}

	return "pflag:" + f.prefix
}
