// Copyright (c) 2025 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

// Sub returns the value under the given path, or nil if it does not exist.
// Empty keys in the path are skipped.
func Sub(values map[string]any, path []string, keyMap func(string) string) any {
	var value any = values
	for _, key := range path {
		if key == "" {
			continue
		}

		mp, ok := value.(map[string]any)
		if !ok {
			return nil
		}
		if value, ok = Find(mp, key, keyMap); !ok {
			return nil
		}
	}

	return value
}

// Find returns the value of the given key. If there is no exact match,
// it compares keys after applying keyMap to both sides.
// If several keys match, the value of the smallest key is returned.
func Find(values map[string]any, key string, keyMap func(string) string) (any, bool) {
	if value, ok := values[key]; ok {
		return value, true
	}
	if keyMap == nil {
		return nil, false
	}

	mappedKey := keyMap(key)
	matched, found := "", false
	for k := range values {
		if keyMap(k) == mappedKey && (!found || k < matched) {
			matched, found = k, true
		}
	}
	if !found {
		return nil, false
	}

	return values[matched], true
}
