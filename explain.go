// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package partial

import (
	"fmt"
	"strings"

	"github.com/nil-go/partial/internal/credential"
)

// Explain provides information about how Config resolves each leaf
// under the given path from the loaders and the schema defaults.
// An empty path explains the whole configuration. It blurs sensitive information.
// The path is case-insensitive.
//
// This method is concurrency-safe.
func (c *Config) Explain(path string) string {
	if c == nil {
		return path + " has no configuration.\n\n"
	}
	c.nocopy.Check()

	explanation := &strings.Builder{}
	if path == "" {
		c.explainSchema(explanation, "", c.schema)

		return explanation.String()
	}

	field, ok := c.schema.Lookup(path)
	if !ok {
		return path + " is not defined in the schema.\n\n"
	}
	path = c.canonical(path)
	if field.nested {
		c.explainSchema(explanation, path+".", field.schema)
	} else {
		c.explain(explanation, path, field)
	}

	return explanation.String()
}

func (c *Config) explainSchema(explanation *strings.Builder, prefix string, schema *Schema) {
	for _, field := range schema.fields {
		if field.nested {
			c.explainSchema(explanation, prefix+field.name+".", field.schema)

			continue
		}
		c.explain(explanation, prefix+field.name, field)
	}
}

func (c *Config) explain(explanation *strings.Builder, path string, field Field) {
	type loaderValue struct {
		loader string
		value  any
	}
	var loaders []loaderValue

	c.layersMutex.RLock()
	for i := len(c.layers) - 1; i >= 0; i-- {
		if value, ok := c.layers[i].partial.Get(path); ok {
			loaders = append(loaders, loaderValue{fmt.Sprint(c.layers[i].loader), value})
		}
	}
	c.layersMutex.RUnlock()
	if field.hasDefault {
		loaders = append(loaders, loaderValue{"default", field.value})
	}

	if len(loaders) == 0 {
		explanation.WriteString(path)
		if field.optional {
			explanation.WriteString(" has no configuration and resolves to absent.\n\n")
		} else {
			explanation.WriteString(" has no configuration.\n\n")
		}

		return
	}
	explanation.WriteString(path)
	explanation.WriteString(" has value[")
	explanation.WriteString(credential.Blur(path, loaders[0].value))
	explanation.WriteString("] that is loaded by loader[")
	explanation.WriteString(loaders[0].loader)
	explanation.WriteString("].\n")
	if len(loaders) > 1 {
		explanation.WriteString("Here are other value(loader)s:\n")
		for _, loader := range loaders[1:] {
			explanation.WriteString("  - ")
			explanation.WriteString(credential.Blur(path, loader.value))
			explanation.WriteString("(")
			explanation.WriteString(loader.loader)
			explanation.WriteString(")\n")
		}
	}
	explanation.WriteString("\n")
}

// canonical returns the path with field names as declared in the schema.
func (c *Config) canonical(path string) string {
	keys := strings.Split(path, ".")
	schema := c.schema
	for i, key := range keys {
		index, _ := schema.field(key)
		field := schema.fields[index]
		keys[i] = field.name
		schema = field.schema
	}

	return strings.Join(keys, ".")
}
