// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package partial

import (
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"
)

// Describe builds the schema of the struct type T from its exported fields.
//
// The field name comes from the `partial` tag, or the Go field name if the tag has no name.
// The tag may carry flags after a comma: `partial:"file,optional"` marks the field optional,
// and `partial:"-"` skips the field. The `default` tag provides the default literal,
// and the `doc` tag provides the description.
//
// Struct fields become nested fields, except time.Time and types implementing
// encoding.TextUnmarshaler which are leaves. A pointer to struct becomes an optional nested field.
// Optionality of leaves is never inferred from the Go type: a pointer leaf
// without the optional flag is still required.
func Describe[T any]() (*Schema, error) {
	return DescribeType(reflect.TypeFor[T]())
}

// DescribeType is like [Describe] but takes the struct type as reflect.Type.
func DescribeType(typ reflect.Type) (*Schema, error) {
	return describe(typ, nil)
}

func describe(typ reflect.Type, visiting []reflect.Type) (*Schema, error) { //nolint:cyclop,funlen
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	name := typ.Name()
	if name == "" {
		name = typ.String()
	}
	if typ.Kind() != reflect.Struct {
		return nil, &SchemaError{Schema: name, Err: errNotStruct}
	}
	visiting = append(visiting, typ)

	fields := make([]Field, 0, typ.NumField())
	for i := range typ.NumField() {
		structField := typ.Field(i)
		if !structField.IsExported() {
			continue
		}
		tag := structField.Tag.Get(tagName)
		if tag == "-" {
			continue
		}

		fieldName, flags, _ := strings.Cut(tag, ",")
		if fieldName == "" {
			fieldName = structField.Name
		}
		var opts []FieldOption
		for _, flag := range strings.Split(flags, ",") {
			switch strings.TrimSpace(flag) {
			case "":
			case "optional":
				opts = append(opts, Optional())
			default:
				return nil, &SchemaError{Schema: name, Field: fieldName, Err: fmt.Errorf("%s: %w", flag, errUnknownTagFlag)}
			}
		}
		if doc := structField.Tag.Get("doc"); doc != "" {
			opts = append(opts, Description(doc))
		}

		if !isNested(structField.Type) {
			if literal, ok := structField.Tag.Lookup("default"); ok {
				opts = append(opts, Default(literal))
			}
			fields = append(fields, leaf(fieldName, structField.Type, opts))

			continue
		}

		nestedType := structField.Type
		if nestedType.Kind() == reflect.Pointer {
			nestedType = nestedType.Elem()
			opts = append(opts, Optional())
		}
		if slices.Contains(visiting, nestedType) {
			return nil, &SchemaError{Schema: name, Field: fieldName, Err: fmt.Errorf("%s: %w", nestedType, errNestingCycle)}
		}
		schema, err := describe(nestedType, visiting)
		if err != nil {
			return nil, &SchemaError{Schema: name, Field: fieldName, Err: err}
		}
		fields = append(fields, Nested(fieldName, schema, opts...))
	}

	return NewSchema(name, fields...)
}

func isNested(typ reflect.Type) bool {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	return typ.Kind() == reflect.Struct &&
		typ != reflect.TypeFor[time.Time]() &&
		!reflect.PointerTo(typ).Implements(reflect.TypeFor[encoding.TextUnmarshaler]())
}

const tagName = "partial"
