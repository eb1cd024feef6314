// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"io"
	"os"
)

var stdinConsumed bool

// Source is the top-level input document.
type Source struct {
	path string
}

// NewSource builds a Source from a CLI path argument; "-" means
// standard input.
func NewSource(path string) Source {
	return Source{path}
}

func (s Source) IsStdin() bool { return s.path == "-" }

// Description names the source in errors and positions.
func (s Source) Description() string {
	if s.IsStdin() {
		return "stdin"
	}
	return s.path
}

// Bytes reads the source. Standard input can only be consumed once per
// process; a second stdin source is an error rather than empty input.
func (s Source) Bytes() ([]byte, error) {
	if s.IsStdin() {
		if stdinConsumed {
			return nil, fmt.Errorf("Standard input has already been read, has the '-' argument been used more than once?")
		}
		stdinConsumed = true
		return io.ReadAll(os.Stdin)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("Reading file '%s': %s", s.path, err)
	}
	return data, nil
}
