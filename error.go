// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package partial

import (
	"errors"
	"strings"
)

var (
	// ErrMissingValue is returned when a required leaf has no value
	// after all layers are merged.
	ErrMissingValue = errors.New("missing required value")
	// ErrSchema is returned when a schema cannot be built.
	ErrSchema = errors.New("invalid schema")
	// ErrDecode is returned when a raw layer value cannot be decoded
	// into the type of the leaf.
	ErrDecode = errors.New("cannot decode value")
)

// MissingValueError reports the dotted path of the first required leaf
// that has no value, in schema declaration order.
type MissingValueError struct {
	Path string
}

func (e *MissingValueError) Error() string {
	return "missing required value for '" + e.Path + "'"
}

func (e *MissingValueError) Is(target error) bool {
	return target == ErrMissingValue //nolint:errorlint,err113
}

// SchemaError reports a mistake in the description of a schema.
// It signals an authoring bug and is not recoverable.
type SchemaError struct {
	Schema string
	Field  string
	Err    error
}

func (e *SchemaError) Error() string {
	builder := &strings.Builder{}
	builder.WriteString("schema ")
	builder.WriteString(e.Schema)
	if e.Field != "" {
		builder.WriteString(": field ")
		builder.WriteString(e.Field)
	}
	builder.WriteString(": ")
	builder.WriteString(e.Err.Error())

	return builder.String()
}

func (e *SchemaError) Unwrap() []error {
	return []error{ErrSchema, e.Err}
}

// DecodeError reports the dotted path of the leaf whose raw value
// cannot be decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return "decode '" + e.Path + "': " + e.Err.Error()
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

// prefix returns a copy of the error with the given field name
// prepended to its path.
func (e *DecodeError) prefix(name string) *DecodeError {
	return &DecodeError{Path: name + "." + e.Path, Err: e.Err}
}

var (
	errEmptyName      = errors.New("field name is empty")
	errDuplicateField = errors.New("duplicate field name")
	errNoSchema       = errors.New("nested field has no schema")
	errNotRegistered  = errors.New("schema is not registered")
	errNestedDefault  = errors.New("nested field cannot have a default literal")
	errNestingCycle   = errors.New("nesting cycle")
	errNotStruct      = errors.New("type is not a struct")
	errUnknownTagFlag = errors.New("unknown tag flag")
	errUnknownField   = errors.New("field is not defined in the schema")
	errNotLeaf        = errors.New("field is not a leaf")
	errNotMap         = errors.New("nested value is not a map")
	errNilLoader      = errors.New("cannot load config from nil loader")
	errNilConfig      = errors.New("cannot resolve nil Config")
)
