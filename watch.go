// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package partial

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/nil-go/partial/internal/maps"
)

// Watch watches the loaders that implement [Watcher] and re-resolves
// the configuration when any of them changes.
// The callbacks registered by [Config.OnChange] are executed for the paths
// whose values have changed in the changed loader.
// It blocks until ctx is done, or any watcher returns an error.
//
// A change that cannot be decoded into the schema is logged and ignored,
// so the layer keeps its previous values.
// WARNING: All loaders passed in Load after calling Watch do not get watched.
//
// It only can be called once. Call after first has no effects.
// It panics if ctx is nil.
func (c *Config) Watch(ctx context.Context) error { //nolint:cyclop,funlen
	if ctx == nil {
		panic("cannot watch change with nil context")
	}
	c.nocopy.Check()

	if c.watched.Swap(true) {
		c.logger.WarnContext(ctx, "Config has been watched, call Watch again has no effects.")

		return nil
	}

	c.layersMutex.RLock()
	layers := make([]*layer, 0, len(c.layers))
	for _, loaded := range c.layers {
		if _, ok := loaded.loader.(Watcher); ok {
			layers = append(layers, loaded)
		}
	}
	c.layersMutex.RUnlock()
	if len(layers) == 0 {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	onChangesChannel := make(chan []func(Value))

	var waitGroup sync.WaitGroup
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()

		for {
			select {
			case onChanges := <-onChangesChannel:
				value, err := c.Resolve()
				if err != nil {
					c.logger.ErrorContext(ctx, "Configuration cannot be resolved after change.", "error", err)

					continue
				}
				c.logger.DebugContext(ctx, "Configuration has been updated with change.")

				if len(onChanges) > 0 {
					c.apply(ctx, value, onChanges)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	errChan := make(chan error, len(layers))
	for _, watching := range layers {
		watcher := watching.loader.(Watcher) //nolint:forcetypeassert

		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()

			onChange := func(values map[string]any) {
				partial, err := c.schema.Decode(values, c.keyMap)
				if err != nil {
					c.logger.WarnContext(ctx, "Changed configuration cannot be decoded.", "loader", watcher, "error", err)

					return
				}

				c.layersMutex.Lock()
				oldValues := watching.values
				watching.values = values
				watching.partial = partial
				c.layersMutex.Unlock()

				// Find the onChanges should be triggered.
				onChanges := c.onChanges.filter(func(path string) bool {
					keys := strings.Split(path, ".")

					return path == "" ||
						!reflect.DeepEqual(maps.Sub(oldValues, keys, c.keyMap), maps.Sub(values, keys, c.keyMap))
				})
				c.logger.InfoContext(ctx, "Configuration has been changed.", "loader", watcher)

				select {
				case onChangesChannel <- onChanges:
				case <-ctx.Done():
				}
			}

			c.logger.DebugContext(ctx, "Watching configuration change.", "loader", watcher)
			if err := watcher.Watch(ctx, onChange); err != nil {
				errChan <- fmt.Errorf("watch configuration change on %v: %w", watcher, err)
				cancel()
			}
		}()
	}
	waitGroup.Wait()
	close(errChan)

	var errs []error
	for err := range errChan {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (c *Config) apply(ctx context.Context, value Value, onChanges []func(Value)) {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)

		for _, onChange := range onChanges {
			onChange(value)
		}
	}()

	select {
	case <-done:
		c.logger.DebugContext(ctx, "Configuration has been applied to onChanges.")
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			c.logger.WarnContext(ctx, "Configuration has not been fully applied to onChanges due to timeout."+
				" Please check if the onChanges is blocking or takes too long to complete.")
		}
	}
}

// OnChange registers a callback function that is executed with the newly resolved
// configuration when the value of any given path changes.
// It requires Config.Watch has been called. Without paths, it's executed on any change.
// The paths are case-insensitive.
//
// The onChange function must be non-blocking and usually completes instantly.
// If it requires a long time to complete, it should be executed in a separate goroutine.
//
// This method is concurrency-safe.
// It panics if onChange is nil.
func (c *Config) OnChange(onChange func(Value), paths ...string) {
	if onChange == nil {
		panic("cannot register nil onChange")
	}

	c.onChanges.register(onChange, paths)
}
