// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package library provides the builtin modules predeclared in every
directive's environment: yaml, json, toml, base64, and version.

These cover what directive authors most often reach for; anything beyond
them belongs in exec blocks in the document itself.
*/
package library
