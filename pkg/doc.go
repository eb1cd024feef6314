// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of ypp.

From top-down, ypp code is layered in this way:

# Entry Point

	./cmd/ypp   // the command-line tool

# Commands

	pkg/cmd     // cobra commands (process, version) and flag wiring
	pkg/cmd/ui  // terminal output and debug writer

# Preprocessing

The heart of ypp is line-oriented expansion of directives embedded in a
YAML document.

	pkg/macro     // line classifier, block capture, include resolution,
	              // document expansion
	pkg/eval      // Starlark execution environment shared across one run
	pkg/eval/core // Starlark <-> Go value conversion
	pkg/library   // modules (yaml, json, toml, base64, version) injected
	              // into every execution

# Validation

	pkg/yamlfmt // parses the expanded output and re-serializes it
	            // canonically

# Utilities

	pkg/files      // input sources, includes, output files
	pkg/filepos    // source positions for error reporting
	pkg/orderedmap // maps that keep key order through YAML/JSON round trips
	pkg/version    // build version
*/
package pkg
