// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package partial

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/nil-go/partial/internal"
)

// Config resolves a typed configuration of its schema from layers
// loaded by [Loader]s, on top of the defaults declared in the schema.
//
// To create a new Config, call [New].
type Config struct {
	nocopy internal.NoCopy[Config]

	// Options.
	schema *Schema
	logger *slog.Logger
	keyMap func(string) string

	// Loaded layers. The last one has the highest priority.
	layers      []*layer
	layersMutex sync.RWMutex

	// For watching changes.
	onChanges onChanges
	watched   atomic.Bool
}

// New creates a new Config of the given schema with the given Option(s).
//
// It panics if schema is nil.
func New(schema *Schema, opts ...Option) *Config {
	if schema == nil {
		panic("cannot create Config with nil schema")
	}

	option := &options{schema: schema}
	for _, opt := range opts {
		opt(option)
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}
	if option.keyMap == nil {
		option.keyMap = strings.ToLower
	}

	return (*Config)(option)
}

// Load loads configuration from the given loaders and decodes it as layers of the schema.
// Each loader takes precedence over the loaders before it.
//
// If a loader returns values that cannot be decoded into the schema,
// the returned error wraps a *DecodeError and names the loader.
//
// This method can be called multiple times but it is not concurrency-safe.
func (c *Config) Load(loaders ...Loader) error {
	c.nocopy.Check()

	for _, loader := range loaders {
		if loader == nil {
			return errNilLoader
		}

		values, err := loader.Load()
		if err != nil {
			return fmt.Errorf("load configuration from %v: %w", loader, err)
		}
		partial, err := c.schema.Decode(values, c.keyMap)
		if err != nil {
			return fmt.Errorf("decode configuration from %v: %w", loader, err)
		}

		c.layersMutex.Lock()
		c.layers = append(c.layers, &layer{loader: loader, values: values, partial: partial})
		c.layersMutex.Unlock()
		c.logger.Debug("Configuration has been loaded.", "loader", loader)
	}

	return nil
}

// Resolve merges the loaded layers, from the last loaded to the first,
// then the schema defaults, and finalizes the result.
//
// It returns a *MissingValueError with the dotted path of the first required leaf
// that no layer provides.
//
// This method is concurrency-safe.
func (c *Config) Resolve() (Value, error) {
	if c == nil {
		return Value{}, errNilConfig
	}
	c.nocopy.Check()

	return Finalize(c.merged())
}

// Unmarshal resolves the configuration and decodes it
// into the object pointed to by target.
// It supports `partial` tags on struct fields.
//
// This method is concurrency-safe.
func (c *Config) Unmarshal(target any) error {
	value, err := c.Resolve()
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}

	return value.Decode(target)
}

// Exists reports whether any loaded layer has a value under the given path.
// The defaults of the schema are not taken into account.
//
// This method is concurrency-safe.
func (c *Config) Exists(path []string) bool {
	if c == nil || len(path) == 0 {
		return false
	}

	c.layersMutex.RLock()
	defer c.layersMutex.RUnlock()

	key := strings.Join(path, ".")
	for _, layer := range c.layers {
		if layer.has(key) {
			return true
		}
	}

	return false
}

// merged folds the layers with the highest priority first and the defaults last.
func (c *Config) merged() *Partial {
	c.layersMutex.RLock()
	defer c.layersMutex.RUnlock()

	partials := make([]*Partial, 0, len(c.layers)+1)
	for i := len(c.layers) - 1; i >= 0; i-- {
		partials = append(partials, c.layers[i].partial)
	}
	partials = append(partials, Defaults(c.schema))

	return Fold(partials...)
}
