// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package partial

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry holds named field lists so nested fields can refer to
// their schemas by name with [NestedRef] regardless of definition order.
//
// The zero value is ready to use. It is concurrency-safe.
type Registry struct {
	definitions map[string][]Field
	built       map[string]*Schema
	mutex       sync.Mutex
}

// Define registers the fields of the named configuration type.
// Defining a name again replaces its fields and discards schemas built before.
func (r *Registry) Define(name string, fields ...Field) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.definitions == nil {
		r.definitions = make(map[string][]Field)
	}
	r.definitions[name] = slices.Clone(fields)
	r.built = nil
}

// Build builds the schema of the named configuration type,
// resolving every [NestedRef] recursively. Each schema is built once
// and shared by all the schemas nesting it.
func (r *Registry) Build(name string) (*Schema, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.built == nil {
		r.built = make(map[string]*Schema)
	}

	return r.build(name, nil)
}

func (r *Registry) build(name string, visiting []string) (*Schema, error) {
	if schema, ok := r.built[name]; ok {
		return schema, nil
	}

	visiting = append(visiting, name)
	fields, ok := r.definitions[name]
	if !ok {
		return nil, &SchemaError{Schema: name, Err: errNotRegistered}
	}

	fields = slices.Clone(fields)
	for i := range fields {
		field := &fields[i]
		if field.ref == "" || field.schema != nil {
			continue
		}

		if slices.Contains(visiting, field.ref) {
			return nil, &SchemaError{
				Schema: name, Field: field.name,
				Err: fmt.Errorf("%s -> %s: %w", strings.Join(visiting, " -> "), field.ref, errNestingCycle),
			}
		}
		schema, err := r.build(field.ref, visiting)
		if err != nil {
			return nil, &SchemaError{Schema: name, Field: field.name, Err: err}
		}
		field.schema = schema
	}

	schema, err := NewSchema(name, fields...)
	if err != nil {
		return nil, err
	}
	r.built[name] = schema

	return schema, nil
}
