// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package macro

import (
	"fmt"

	"carvel.dev/ypp/pkg/filepos"
)

// UnterminatedBlockError is returned when an exec block is opened but the
// stream ends before a close line is seen. Fatal: no usable output.
type UnterminatedBlockError struct {
	Position *filepos.Position
}

func (e UnterminatedBlockError) Error() string {
	return fmt.Sprintf("Unterminated exec block (opened at %s)", e.Position.AsCompactString())
}

// IncludeNotFoundError is returned when an include directive names a file
// that cannot be opened. Fatal: no usable output.
type IncludeNotFoundError struct {
	Name     string
	Position *filepos.Position
	Cause    error
}

func (e IncludeNotFoundError) Error() string {
	return fmt.Sprintf("Include '%s' at %s: %s", e.Name, e.Position.AsCompactString(), e.Cause)
}

// ExecError is returned when statement execution or expression evaluation
// fails (e.g. an unresolved reference). Fatal: no usable output.
type ExecError struct {
	Position *filepos.Position
	Cause    error
}

func (e ExecError) Error() string {
	return fmt.Sprintf("Directive at %s: %s", e.Position.AsCompactString(), e.Cause)
}

func (e ExecError) Unwrap() error { return e.Cause }
