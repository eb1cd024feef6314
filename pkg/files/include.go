// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"io"
	"os"
	"path/filepath"
)

// DirIncluder opens include names relative to a root directory.
// Absolute include names are taken as-is.
type DirIncluder struct {
	root string
}

func NewDirIncluder(root string) DirIncluder {
	return DirIncluder{root}
}

func (i DirIncluder) Open(name string) (io.ReadCloser, error) {
	if !filepath.IsAbs(name) {
		name = filepath.Join(i.root, name)
	}
	return os.Open(name)
}
