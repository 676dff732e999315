// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package internal

import (
	"reflect"
	"sync/atomic"
)

// NoCopy detects whether the holding T has been copied by value after first use.
// It must be embedded as a value field and checked from pointer receivers.
type NoCopy[T any] struct {
	self atomic.Pointer[NoCopy[T]]
}

// Check records the address on first call and panics if
// a later call comes from a different address.
func (n *NoCopy[T]) Check() {
	if n.self.CompareAndSwap(nil, n) || n.self.Load() == n {
		return
	}

	panic("illegal use of non-zero " + reflect.TypeFor[T]().Name() + " copied by value")
}
