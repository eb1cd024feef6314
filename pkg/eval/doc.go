// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package eval provides the Starlark-backed statement executor and
expression evaluator used by the macro processor, together with the
closed Value type that makes the "stringify unless already text" rule
explicit.

One Starlark instance holds the environment for one run: globals
produced by each exec block are folded into it and are visible to every
later exec block and expression, across the top file and all includes.
*/
package eval
