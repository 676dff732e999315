// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

/*
Package partial resolves a strongly-typed configuration from multiple layered,
partially-specified sources, such as defaults, files, environment variables
and command line flags.

A [Schema] describes the fields of one configuration type in declaration order.
Each field is either a leaf holding a value of a declared type, optionally with
a default literal, or a nested sub-configuration with its own Schema.
Schemas are built explicitly with [NewSchema], by name through a [Registry],
or from tagged Go structs with [Describe].

Every source contributes a [Partial], in which any field may be absent.
[Merge] and [Fold] combine Partials by priority, and [Finalize] converts the merged
Partial into a resolved [Value], or fails with a [MissingValueError] naming the dotted
path of the first required leaf without value, e.g. `http.log.stdout`.

[Config] drives the whole resolution from [Loader]s, which load configuration
as nested map[string]any, and can watch them for changes.
*/
package partial
