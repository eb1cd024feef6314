// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides the file-like sources and sinks of the processor:
the top-level input (a local path or standard input), the opener used to
resolve include directives against an include root, and output writing.

This keeps the rest of ypp free of filesystem details.
*/
package files
