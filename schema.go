// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package partial

import (
	"fmt"
	"slices"
	"strings"
)

// Schema is the ordered description of the fields of one configuration type.
// It is immutable once built and safe to share between goroutines.
//
// To create a new Schema, call [NewSchema], [Registry.Build] or [Describe].
type Schema struct {
	name   string
	fields []Field
	index  map[string]int // Lower case field name to position.
}

// NewSchema builds a Schema with the given name and fields in declaration order.
//
// Default literals of leaf fields are decoded into their declared types here,
// so a malformed literal is reported once at build time.
func NewSchema(name string, fields ...Field) (*Schema, error) {
	schema := &Schema{
		name:   name,
		fields: slices.Clone(fields),
		index:  make(map[string]int, len(fields)),
	}

	for i := range schema.fields {
		field := &schema.fields[i]
		if field.name == "" {
			return nil, &SchemaError{Schema: name, Field: fmt.Sprintf("#%d", i), Err: errEmptyName}
		}
		key := strings.ToLower(field.name)
		if _, exist := schema.index[key]; exist {
			return nil, &SchemaError{Schema: name, Field: field.name, Err: errDuplicateField}
		}
		schema.index[key] = i

		if field.nested {
			switch {
			case field.hasDefault:
				return nil, &SchemaError{Schema: name, Field: field.name, Err: errNestedDefault}
			case field.schema == nil && field.ref != "":
				return nil, &SchemaError{
					Schema: name, Field: field.name,
					Err: fmt.Errorf("%s: %w", field.ref, errNotRegistered),
				}
			case field.schema == nil:
				return nil, &SchemaError{Schema: name, Field: field.name, Err: errNoSchema}
			}

			continue
		}

		if field.hasDefault {
			value, err := convert(field.literal, field.typ)
			if err != nil {
				return nil, &SchemaError{
					Schema: name, Field: field.name,
					Err: fmt.Errorf("default literal %#v for %s: %w", field.literal, field.typ, err),
				}
			}
			field.value = value
		}
	}

	return schema, nil
}

// MustSchema is like [NewSchema] but panics if the schema cannot be built.
// It is intended for package level schemas that are built at startup.
func MustSchema(name string, fields ...Field) *Schema {
	schema, err := NewSchema(name, fields...)
	if err != nil {
		panic(err)
	}

	return schema
}

// Name returns the name of the configuration type the schema describes.
func (s *Schema) Name() string {
	return s.name
}

// Fields returns a copy of the fields in declaration order.
func (s *Schema) Fields() []Field {
	return slices.Clone(s.fields)
}

// Lookup returns the field under the given dotted path, e.g. `http.log.file`.
// Field names are case-insensitive.
func (s *Schema) Lookup(path string) (Field, bool) {
	schema := s
	keys := strings.Split(path, ".")
	for i, key := range keys {
		index, ok := schema.field(key)
		if !ok {
			return Field{}, false
		}

		field := schema.fields[index]
		if i == len(keys)-1 {
			return field, true
		}
		if !field.nested {
			return Field{}, false
		}
		schema = field.schema
	}

	return Field{}, false
}

func (s *Schema) field(name string) (int, bool) {
	index, ok := s.index[strings.ToLower(name)]

	return index, ok
}

func (s *Schema) String() string {
	if s == nil {
		return "<nil>"
	}

	return s.name
}
