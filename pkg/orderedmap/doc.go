// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a map implementation where the order of keys is
maintained (unlike the native Go map).

Dictionaries produced by directive expressions are converted into this
flavor of map before being rendered as YAML, JSON, or TOML, keeping the
expanded document deterministic and stable across runs.
*/
package orderedmap
