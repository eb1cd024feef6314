// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package library

import (
	"fmt"

	"carvel.dev/ypp/pkg/eval/core"
	ourversion "carvel.dev/ypp/pkg/version"
	goversion "github.com/hashicorp/go-version"
	"github.com/k14s/starlark-go/starlark"
	"github.com/k14s/starlark-go/starlarkstruct"
)

var (
	// VersionAPI contains the definition of the version module
	VersionAPI = starlark.StringDict{
		"version": &starlarkstruct.Module{
			Name: "version",
			Members: starlark.StringDict{
				"require_at_least": starlark.NewBuiltin("version.require_at_least", core.ErrWrapper(versionModule{}.RequireAtLeast)),
			},
		},
	}
)

type versionModule struct{}

// RequireAtLeast fails the run when this binary is older than the given
// version; a document can guard newer directive features with it.
func (b versionModule) RequireAtLeast(thread *starlark.Thread, f *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if args.Len() != 1 {
		return starlark.None, fmt.Errorf("expected exactly one argument")
	}

	val, err := core.NewStarlarkValue(args.Index(0)).AsString()
	if err != nil {
		return starlark.None, err
	}

	requiredVersion, err := goversion.NewVersion(val)
	if err != nil {
		return starlark.None, fmt.Errorf("parsing required version: %s", err)
	}

	currentVersion, err := goversion.NewVersion(ourversion.Version)
	if err != nil {
		return starlark.None, fmt.Errorf("parsing binary version: %s", err)
	}

	if currentVersion.LessThan(requiredVersion) {
		return starlark.None, fmt.Errorf("ypp version '%s' does not meet the minimum required version '%s'", ourversion.Version, val)
	}

	return starlark.None, nil
}
