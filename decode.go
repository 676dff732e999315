// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package partial

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/nil-go/partial/internal/maps"
)

// Decode decodes the nested map returned by a [Loader] into a Partial of the schema.
//
// Keys are matched to field names exactly first, then through keyMap if it's not nil.
// Keys that are not defined in the schema are ignored, and nil values are treated as absent.
// It returns a *DecodeError with the dotted path of the first value that cannot be decoded
// into the declared type of its leaf.
func (s *Schema) Decode(values map[string]any, keyMap func(string) string) (*Partial, error) {
	partial := &Partial{schema: s, slots: make([]slot, len(s.fields))}
	for i, field := range s.fields {
		raw, _ := maps.Find(values, field.name, keyMap)

		if field.nested {
			if raw == nil {
				partial.slots[i].nested = Empty(field.schema)

				continue
			}

			sub, ok := raw.(map[string]any)
			if !ok {
				return nil, &DecodeError{Path: field.name, Err: fmt.Errorf("got %T: %w", raw, errNotMap)}
			}
			nested, err := field.schema.Decode(sub, keyMap)
			if err != nil {
				var decodeErr *DecodeError
				if errors.As(err, &decodeErr) {
					return nil, decodeErr.prefix(field.name)
				}

				return nil, err
			}
			partial.slots[i].nested = nested

			continue
		}

		if raw == nil {
			continue
		}
		value, err := convert(raw, field.typ)
		if err != nil {
			return nil, &DecodeError{Path: field.name, Err: err}
		}
		partial.slots[i] = slot{value: value, present: true}
	}

	return partial, nil
}

// convert decodes the raw value into a new value of the given type.
func convert(from any, typ reflect.Type) (any, error) {
	if from != nil && reflect.TypeOf(from) == typ {
		return from, nil
	}

	target := reflect.New(typ)
	if err := decode(from, target.Interface()); err != nil {
		return nil, err
	}

	return target.Elem().Interface(), nil
}

func decode(from, target any) error {
	decoder, err := mapstructure.NewDecoder(
		&mapstructure.DecoderConfig{
			Result:           target,
			WeaklyTypedInput: true,
			DecodeHook:       decodeHook,
			TagName:          tagName,
		},
	)
	if err != nil {
		return fmt.Errorf("new decoder: %w", err)
	}

	if err := decoder.Decode(from); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return nil
}

//nolint:gochecknoglobals
var decodeHook = mapstructure.ComposeDecodeHookFunc(
	mapstructure.StringToTimeDurationHookFunc(),
	mapstructure.StringToTimeHookFunc(time.RFC3339),
	mapstructure.StringToSliceHookFunc(","),
	mapstructure.TextUnmarshallerHookFunc(),
)
