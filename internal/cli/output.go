// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nil-go/partial"
	"github.com/nil-go/partial/internal/maps"
)

func write(writer io.Writer, value partial.Value, format string) error {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		encoder := yaml.NewEncoder(writer)
		encoder.SetIndent(2)
		if err := encoder.Encode(value.Map()); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return encoder.Close() //nolint:wrapcheck
	case "json":
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(value.Map()); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", errUnknownFormat, format)
	}
}

// setLoader loads the path=value overrides given by --set.
type setLoader []string

func (s setLoader) Load() (map[string]any, error) {
	values := make(map[string]any)
	for _, set := range s {
		path, value, ok := strings.Cut(set, "=")
		if !ok || path == "" {
			return nil, fmt.Errorf("%w: %q", errInvalidSet, set)
		}
		maps.Insert(values, strings.Split(path, "."), value)
	}

	return values, nil
}

func (setLoader) String() string {
	return "set"
}
