// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package fs loads configuration from file system.
//
// FS loads a file with the given path from the file system and returns
// a nested map[string]any that is parsed with the given unmarshal function.
// It works with any fs.FS, e.g. embed.FS for configuration built into the binary.
//
// The unmarshal function must be able to unmarshal the file content into a map[string]any.
// By default, files with `.yaml` or `.yml` extension are parsed as YAML,
// and other files are parsed as JSON.
package fs

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/nil-go/partial/internal/codec"
)

// FS is a Loader that loads configuration from file system.
//
// To create a new FS, call [New].
type FS struct {
	fs        fs.FS
	path      string
	unmarshal func([]byte, any) error
}

// New creates a FS with the given fs.FS, path and Option(s).
// If fs is nil, it reads from the current working directory.
func New(fs fs.FS, path string, opts ...Option) FS {
	option := &options{
		fs:   fs,
		path: path,
	}
	for _, opt := range opts {
		opt(option)
	}

	return FS(*option)
}

func (f FS) Load() (map[string]any, error) {
	fsys := f.fs
	if fsys == nil {
		// Ignore error: It uses whatever returned.
		dir, _ := os.Getwd()
		fsys = os.DirFS(dir)
	}

	bytes, err := fs.ReadFile(fsys, f.path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	unmarshal := f.unmarshal
	if unmarshal == nil {
		unmarshal = codec.UnmarshalFor(f.path)
	}
	var out map[string]any
	if err := unmarshal(bytes, &out); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	return out, nil
}

func (f FS) String() string {
	return "fs:" + f.path
}
