// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package partial

// Merge combines two Partials of the same schema into a new one, field by field.
// A leaf takes the value of primary if present, otherwise the value of fallback.
// Nested fields are merged recursively.
//
// Neither input is modified. Leaf values are shared with the result.
// It panics if primary and fallback are built from different schemas.
func Merge(primary, fallback *Partial) *Partial {
	if primary.schema != fallback.schema {
		panic("cannot merge partial of schema " + primary.schema.name + " with partial of schema " + fallback.schema.name)
	}

	merged := &Partial{schema: primary.schema, slots: make([]slot, len(primary.slots))}
	for i, field := range primary.schema.fields {
		switch {
		case field.nested:
			merged.slots[i].nested = Merge(primary.slots[i].nested, fallback.slots[i].nested)
		case primary.slots[i].present:
			merged.slots[i] = primary.slots[i]
		default:
			merged.slots[i] = fallback.slots[i]
		}
	}

	return merged
}

// Fold merges the layers in priority order, where layers[0] has the highest priority,
// so that lower layers only fill the gaps left by higher ones.
// It is Merge(layers[0], Merge(layers[1], ... layers[n])).
//
// It panics if no layer is given.
func Fold(layers ...*Partial) *Partial {
	if len(layers) == 0 {
		panic("cannot fold zero layers")
	}

	merged := layers[len(layers)-1]
	for i := len(layers) - 2; i >= 0; i-- {
		merged = Merge(layers[i], merged)
	}

	return merged
}
