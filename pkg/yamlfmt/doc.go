// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package yamlfmt validates expanded output by parsing it as YAML and
re-serializing it into a canonical form (2-space indent, key order and
scalar typing untouched).

A parse failure is reported as a *ParseError carrying the failing line
and the surrounding source lines. It is the only soft error in the
pipeline: callers receive it alongside empty text instead of a crash.
*/
package yamlfmt
