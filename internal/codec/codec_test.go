// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package codec_test

import (
	"testing"

	"github.com/nil-go/partial/internal/assert"
	"github.com/nil-go/partial/internal/codec"
)

func TestUnmarshalFor(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		name        string
		data        string
		err         bool
	}{
		{
			description: "yaml",
			name:        "config.yaml",
			data:        "http:\n  log:\n    file: /var/log/app.log\n",
		},
		{
			description: "yml upper case",
			name:        "dir/config.YML",
			data:        "http:\n  log:\n    file: /var/log/app.log\n",
		},
		{
			description: "json",
			name:        "config.json",
			data:        `{"http":{"log":{"file":"/var/log/app.log"}}}`,
		},
		{
			description: "json without extension",
			name:        "config",
			data:        `{"http":{"log":{"file":"/var/log/app.log"}}}`,
		},
		{
			description: "yaml content parsed as json",
			name:        "config.json",
			data:        "http:\n  log: {}\n",
			err:         true,
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			var values map[string]any
			err := codec.UnmarshalFor(testcase.name)([]byte(testcase.data), &values)
			if testcase.err {
				assert.True(t, err != nil)

				return
			}
			assert.NoError(t, err)
			expected := map[string]any{"http": map[string]any{"log": map[string]any{"file": "/var/log/app.log"}}}
			assert.Equal(t, expected, values)
		})
	}
}
