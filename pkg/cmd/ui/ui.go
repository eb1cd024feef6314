// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"io"
)

type UI interface {
	// Printf writes to the result channel (the expanded document).
	Printf(str string, args ...interface{})
	// Warnf writes diagnostics that must not mix into the result.
	Warnf(str string, args ...interface{})
	// Debugf and DebugWriter carry directive print() output and other
	// debug detail; both are no-ops unless debug is enabled.
	Debugf(str string, args ...interface{})
	DebugWriter() io.Writer
}
