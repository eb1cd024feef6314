// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package version

// Version is the semver of this build of ypp. Directives may require a
// minimum version via version.require_at_least.
const Version = "0.3.0"
