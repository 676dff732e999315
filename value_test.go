// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package partial_test

import (
	"testing"

	"github.com/nil-go/partial"
	"github.com/nil-go/partial/internal/assert"
)

func TestValue_Get(t *testing.T) {
	t.Parallel()

	value, err := partial.Finalize(partial.Defaults(confSchema))
	assert.NoError(t, err)
	assert.Equal(t, confSchema, value.Schema())

	testcases := []struct {
		description string
		path        string
		expected    any
		ok          bool
	}{
		{
			description: "leaf",
			path:        "http.headers.username",
			expected:    "x-username",
			ok:          true,
		},
		{
			description: "case insensitive",
			path:        "Http.Log.Stdout",
			expected:    true,
			ok:          true,
		},
		{
			description: "absent optional",
			path:        "http.log.file",
		},
		{
			description: "unknown",
			path:        "http.unknown",
		},
		{
			description: "under leaf",
			path:        "http.log.stdout.more",
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			actual, ok := value.Get(testcase.path)
			assert.Equal(t, testcase.ok, ok)
			assert.Equal(t, testcase.expected, actual)
		})
	}

	nested, ok := value.Get("http.log")
	assert.True(t, ok)
	logValue, isValue := nested.(partial.Value)
	assert.True(t, isValue)
	assert.Equal(t, logSchema, logValue.Schema())
}

func TestValue_zero(t *testing.T) {
	t.Parallel()

	var value partial.Value
	_, ok := value.Get("http")
	assert.True(t, !ok)
	assert.Nil(t, value.Map())
}

func TestValue_Decode(t *testing.T) {
	t.Parallel()

	type Headers struct {
		Username    string
		DisplayName string `partial:"display_name"`
	}
	type Log struct {
		Stdout bool
		File   *string
	}
	type Conf struct {
		HTTP struct {
			Headers Headers
			Log     Log
		} `partial:"http"`
	}

	value, err := partial.Finalize(partial.Defaults(confSchema))
	assert.NoError(t, err)

	var conf Conf
	assert.NoError(t, value.Decode(&conf))
	assert.Equal(t, Headers{Username: "x-username", DisplayName: "x-display-name"}, conf.HTTP.Headers)
	assert.Equal(t, Log{Stdout: true}, conf.HTTP.Log)

	assert.EqualError(t, value.Decode(conf), "decode Conf: new decoder: result must be a pointer")
}
