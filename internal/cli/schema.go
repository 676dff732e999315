// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nil-go/partial"
)

// schemaFile is the YAML description of a schema, e.g.
//
//	name: Conf
//	fields:
//	  - name: http
//	    fields:
//	      - name: port
//	        type: int
//	        default: 8080
type schemaFile struct {
	Name   string      `yaml:"name"`
	Fields []fieldFile `yaml:"fields"`
}

type fieldFile struct {
	Name        string      `yaml:"name"`
	Type        string      `yaml:"type"`
	Default     any         `yaml:"default"`
	Optional    bool        `yaml:"optional"`
	Description string      `yaml:"description"`
	Fields      []fieldFile `yaml:"fields"`
}

//nolint:gochecknoglobals
var leaves = map[string]func(string, ...partial.FieldOption) partial.Field{
	"":         partial.Leaf[string],
	"string":   partial.Leaf[string],
	"bool":     partial.Leaf[bool],
	"int":      partial.Leaf[int],
	"int64":    partial.Leaf[int64],
	"uint":     partial.Leaf[uint],
	"float64":  partial.Leaf[float64],
	"duration": partial.Leaf[time.Duration],
	"time":     partial.Leaf[time.Time],
	"strings":  partial.Leaf[[]string],
}

func loadSchema(path string) (*partial.Schema, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}

	var file schemaFile
	if err := yaml.Unmarshal(bytes, &file); err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}
	if file.Name == "" {
		file.Name = "Config"
	}

	return buildSchema(file.Name, file.Fields)
}

func buildSchema(name string, files []fieldFile) (*partial.Schema, error) {
	fields := make([]partial.Field, 0, len(files))
	for _, file := range files {
		var opts []partial.FieldOption
		if file.Optional {
			opts = append(opts, partial.Optional())
		}
		if file.Description != "" {
			opts = append(opts, partial.Description(file.Description))
		}

		if len(file.Fields) > 0 {
			schema, err := buildSchema(name+"."+file.Name, file.Fields)
			if err != nil {
				return nil, err
			}
			fields = append(fields, partial.Nested(file.Name, schema, opts...))

			continue
		}

		newLeaf, ok := leaves[file.Type]
		if !ok {
			return nil, fmt.Errorf("field %s.%s: %w: %s", name, file.Name, errUnknownType, file.Type)
		}
		if file.Default != nil {
			opts = append(opts, partial.Default(file.Default))
		}
		fields = append(fields, newLeaf(file.Name, opts...))
	}

	schema, err := partial.NewSchema(name, fields...)
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}

	return schema, nil
}
