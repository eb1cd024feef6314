// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package library

import (
	"github.com/k14s/starlark-go/starlark"
)

// All returns the builtin modules as one predeclared dict.
func All() starlark.StringDict {
	api := starlark.StringDict{}
	for _, module := range []starlark.StringDict{
		// Serializations
		Base64API,
		JSONAPI,
		YAMLAPI,
		TOMLAPI,

		// Versioning
		VersionAPI,
	} {
		for name, val := range module {
			api[name] = val
		}
	}
	return api
}
