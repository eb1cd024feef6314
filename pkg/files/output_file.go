// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"os"
	"path/filepath"
)

type OutputFile struct {
	path string
	data []byte
}

func NewOutputFile(path string, data []byte) OutputFile {
	return OutputFile{path, data}
}

func (f OutputFile) Path() string  { return f.path }
func (f OutputFile) Bytes() []byte { return f.data }

func (f OutputFile) Create() error {
	err := os.MkdirAll(filepath.Dir(f.path), 0700)
	if err != nil {
		return err
	}

	fd, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	defer fd.Close()

	_, err = fd.Write(f.data)
	return err
}
