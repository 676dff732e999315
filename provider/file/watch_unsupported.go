// Copyright (c) 2023 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

//go:build appengine || !(darwin || dragonfly || freebsd || openbsd || linux || netbsd || solaris || windows)

package file

import (
	"context"
	"runtime"
)

// Watch does nothing as watching file is not supported on the platform.
func (f File) Watch(ctx context.Context, _ func(map[string]any)) error {
	f.logger.WarnContext(ctx, "File.Watch is not supported.", "os", runtime.GOOS)

	return nil
}
