// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package partial

import (
	"strings"
	"sync"
)

type layer struct {
	loader  Loader
	values  map[string]any
	partial *Partial
}

// has reports whether the layer has a leaf value, or any leaf value
// in the nested sub-tree, under the given path.
func (l *layer) has(path string) bool {
	value, ok := l.partial.Get(path)
	if !ok {
		return false
	}
	if nested, isNested := value.(*Partial); isNested {
		return !nested.IsEmpty()
	}

	return true
}

type onChanges struct {
	onChanges map[string][]func(Value)
	mutex     sync.RWMutex
}

func (c *onChanges) register(onChange func(Value), paths []string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.onChanges == nil {
		c.onChanges = make(map[string][]func(Value))
	}
	if len(paths) == 0 {
		paths = []string{""}
	}
	for _, path := range paths {
		path = strings.ToLower(path)
		c.onChanges[path] = append(c.onChanges[path], onChange)
	}
}

// filter returns the callbacks registered under the paths that match.
func (c *onChanges) filter(match func(path string) bool) []func(Value) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var callbacks []func(Value)
	for path, onChanges := range c.onChanges {
		if match(path) {
			callbacks = append(callbacks, onChanges...)
		}
	}

	return callbacks
}
