// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package partial

import "errors"

// Finalize converts a merged Partial into a fully resolved Value.
//
// Fields are visited in declaration order and the first required leaf without value
// fails the resolution with a *MissingValueError, whose path is qualified
// by the names of the enclosing nested fields, e.g. `http.log.stdout`.
// Optional leaves without value resolve to nil, and so do optional nested fields
// whose whole sub-tree has no value.
func Finalize(partial *Partial) (Value, error) {
	fields := make([]any, len(partial.slots))
	for i, field := range partial.schema.fields {
		slot := partial.slots[i]
		switch {
		case field.nested:
			if field.optional && slot.nested.IsEmpty() {
				continue
			}

			value, err := Finalize(slot.nested)
			if err != nil {
				var missing *MissingValueError
				if errors.As(err, &missing) {
					return Value{}, &MissingValueError{Path: field.name + "." + missing.Path}
				}

				return Value{}, err
			}
			fields[i] = value
		case slot.present:
			fields[i] = slot.value
		case !field.optional:
			return Value{}, &MissingValueError{Path: field.name}
		}
	}

	return Value{schema: partial.schema, fields: fields}, nil
}
