// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package partial

import (
	"fmt"
	"strings"
)

// Partial is what one layer knows about a configuration:
// every field of its schema is either absent or has a value,
// and every nested field holds the Partial of its sub-schema.
//
// Absence is distinct from a present zero value.
type Partial struct {
	schema *Schema
	slots  []slot // One per schema field, in declaration order.
}

type slot struct {
	value   any
	present bool
	nested  *Partial
}

// Empty returns a Partial of the schema in which nothing is known:
// every leaf is absent and every nested field is recursively empty.
func Empty(schema *Schema) *Partial {
	partial := &Partial{schema: schema, slots: make([]slot, len(schema.fields))}
	for i, field := range schema.fields {
		if field.nested {
			partial.slots[i].nested = Empty(field.schema)
		}
	}

	return partial
}

// Defaults returns a Partial of the schema in which every leaf with a default
// holds the value materialized when the schema was built, other leaves are absent,
// and nested fields recursively hold their defaults.
func Defaults(schema *Schema) *Partial {
	partial := &Partial{schema: schema, slots: make([]slot, len(schema.fields))}
	for i, field := range schema.fields {
		switch {
		case field.nested:
			partial.slots[i].nested = Defaults(field.schema)
		case field.hasDefault:
			partial.slots[i] = slot{value: field.value, present: true}
		}
	}

	return partial
}

// Schema returns the schema the Partial is built from.
func (p *Partial) Schema() *Schema {
	return p.schema
}

// Get returns the value under the given dotted path and whether it's present.
// For a nested field, it returns the nested *Partial, which is always present.
func (p *Partial) Get(path string) (any, bool) {
	partial, index, ok := p.locate(path)
	if !ok {
		return nil, false
	}

	slot := partial.slots[index]
	if partial.schema.fields[index].nested {
		return slot.nested, true
	}

	return slot.value, slot.present
}

// Set sets the leaf under the given dotted path to the value
// decoded into the declared type of the leaf. A nil value makes the leaf absent.
//
// It is meant for building a layer before it is merged,
// and must not be called on a Partial that is shared with other goroutines.
func (p *Partial) Set(path string, value any) error {
	partial, index, ok := p.locate(path)
	if !ok {
		return fmt.Errorf("set %s: %w", path, errUnknownField)
	}
	field := partial.schema.fields[index]
	if field.nested {
		return fmt.Errorf("set %s: %w", path, errNotLeaf)
	}

	if value == nil {
		partial.slots[index] = slot{}

		return nil
	}
	converted, err := convert(value, field.typ)
	if err != nil {
		return &DecodeError{Path: path, Err: err}
	}
	partial.slots[index] = slot{value: converted, present: true}

	return nil
}

// IsEmpty reports whether no leaf in the whole tree is present.
func (p *Partial) IsEmpty() bool {
	for _, slot := range p.slots {
		if slot.present || slot.nested != nil && !slot.nested.IsEmpty() {
			return false
		}
	}

	return true
}

func (p *Partial) locate(path string) (*Partial, int, bool) {
	partial := p
	keys := strings.Split(path, ".")
	for i, key := range keys {
		index, ok := partial.schema.field(key)
		if !ok {
			return nil, 0, false
		}
		if i == len(keys)-1 {
			return partial, index, true
		}
		if !partial.schema.fields[index].nested {
			return nil, 0, false
		}
		partial = partial.slots[index].nested
	}

	return nil, 0, false
}
