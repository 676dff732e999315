// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package partial

import (
	"fmt"
	"strings"
)

// Value is a fully resolved configuration. It has a value for every required leaf;
// optional leaves and optional nested fields may be absent (nil).
// Nested fields hold the Value of their sub-schema.
//
// A Value is never modified after [Finalize] returns it.
type Value struct {
	schema *Schema
	fields []any
}

// Schema returns the schema the Value is resolved against.
func (v Value) Schema() *Schema {
	return v.schema
}

// Get returns the value under the given dotted path and whether it's present.
// For a nested field, it returns the nested Value.
// Field names are case-insensitive.
func (v Value) Get(path string) (any, bool) {
	if v.schema == nil {
		return nil, false
	}

	value := v
	keys := strings.Split(path, ".")
	for i, key := range keys {
		index, ok := value.schema.field(key)
		if !ok {
			return nil, false
		}

		field := value.fields[index]
		if i == len(keys)-1 {
			return field, field != nil
		}
		if value, ok = field.(Value); !ok {
			return nil, false
		}
	}

	return nil, false
}

// Map returns the Value as a nested map keyed by field names.
// Absent fields are included with nil values.
func (v Value) Map() map[string]any {
	if v.schema == nil {
		return nil
	}

	values := make(map[string]any, len(v.fields))
	for i, field := range v.schema.fields {
		switch value := v.fields[i].(type) {
		case Value:
			values[field.name] = value.Map()
		default:
			values[field.name] = value
		}
	}

	return values
}

// Decode decodes the Value into the object pointed to by target.
// It supports `partial` tags on struct fields for names that differ from the Go field name.
// Absent fields leave the target field untouched.
func (v Value) Decode(target any) error {
	if err := decode(v.Map(), target); err != nil {
		return fmt.Errorf("decode %s: %w", v.schema, err)
	}

	return nil
}
