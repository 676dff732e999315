// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package codec picks the parser of configuration files.
package codec

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnmarshalFor returns the unmarshal function for the file with the given name:
// YAML for `.yaml` and `.yml` extensions, JSON otherwise.
func UnmarshalFor(name string) func([]byte, any) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal
	default:
		return json.Unmarshal
	}
}
