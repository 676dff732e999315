// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package partial

import "reflect"

// Field describes a single field of a [Schema]: either a leaf holding
// a value of a declared type, or a nested sub-configuration with its own schema.
//
// To create a Field, call [Leaf], [Nested] or [NestedRef].
type Field struct {
	name        string
	description string
	optional    bool

	// Leaf.
	typ        reflect.Type
	literal    any
	hasDefault bool
	value      any // Materialized from literal by NewSchema.

	// Nested.
	nested bool
	schema *Schema
	ref    string
}

// Leaf creates a leaf field whose values are decoded into T.
func Leaf[T any](name string, opts ...FieldOption) Field {
	return leaf(name, reflect.TypeFor[T](), opts)
}

func leaf(name string, typ reflect.Type, opts []FieldOption) Field {
	field := Field{name: name, typ: typ}
	for _, opt := range opts {
		opt(&field)
	}

	return field
}

// Nested creates a field holding a sub-configuration described by the given schema.
func Nested(name string, schema *Schema, opts ...FieldOption) Field {
	field := Field{name: name, nested: true, schema: schema}
	for _, opt := range opts {
		opt(&field)
	}

	return field
}

// NestedRef creates a field holding a sub-configuration whose schema is
// resolved by name when the enclosing schema is built by a [Registry].
func NestedRef(name, schemaName string, opts ...FieldOption) Field {
	field := Field{name: name, nested: true, ref: schemaName}
	for _, opt := range opts {
		opt(&field)
	}

	return field
}

// Name returns the name of the field.
func (f Field) Name() string {
	return f.name
}

// Description returns the human readable description of the field.
func (f Field) Description() string {
	return f.description
}

// IsOptional reports whether the field resolves to absent
// instead of failing when it has no value.
func (f Field) IsOptional() bool {
	return f.optional
}

// IsNested reports whether the field holds a sub-configuration.
func (f Field) IsNested() bool {
	return f.nested
}

// Type returns the declared type of a leaf field, or nil for a nested field.
func (f Field) Type() reflect.Type {
	return f.typ
}

// Schema returns the schema of a nested field, or nil for a leaf field.
func (f Field) Schema() *Schema {
	return f.schema
}

// Default returns the materialized default value of a leaf field
// and whether the field declares one.
func (f Field) Default() (any, bool) {
	return f.value, f.hasDefault
}

// FieldOption configures a Field with specific options.
type FieldOption func(*Field)

// Optional marks the field as optional.
//
// An optional leaf resolves to absent (nil) if no layer provides a value.
// An optional nested field resolves to absent if no leaf in its whole sub-tree has a value.
func Optional() FieldOption {
	return func(field *Field) {
		field.optional = true
	}
}

// Default provides the default literal of a leaf field, e.g. `true`, `8080` or `"5s"`.
//
// The literal is decoded into the declared type once when the schema is built.
// It is a schema error if the literal cannot be decoded, or the field is nested.
func Default(literal any) FieldOption {
	return func(field *Field) {
		field.literal = literal
		field.hasDefault = true
	}
}

// Description provides the human readable description of the field.
func Description(text string) FieldOption {
	return func(field *Field) {
		field.description = text
	}
}
