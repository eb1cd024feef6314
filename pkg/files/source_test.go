// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"carvel.dev/ypp/pkg/files"
	"github.com/stretchr/testify/require"
)

func TestSourceDescription(t *testing.T) {
	require.Equal(t, "stdin", files.NewSource("-").Description())
	require.Equal(t, "conf/doc.yml", files.NewSource("conf/doc.yml").Description())
	require.True(t, files.NewSource("-").IsStdin())
	require.False(t, files.NewSource("doc.yml").IsStdin())
}

func TestSourceBytesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0600))

	data, err := files.NewSource(path).Bytes()
	require.NoError(t, err)
	require.Equal(t, "a: 1\n", string(data))
}

func TestSourceBytesMissingFile(t *testing.T) {
	_, err := files.NewSource(filepath.Join(t.TempDir(), "nope.yml")).Bytes()
	require.Error(t, err)
	require.Contains(t, err.Error(), "nope.yml")
}

func TestDirIncluderResolvesRelativeNames(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "inc.yml"), []byte("k: v\n"), 0600))

	stream, err := files.NewDirIncluder(dir).Open("sub/inc.yml")
	require.NoError(t, err)
	defer stream.Close()

	data, err := io.ReadAll(stream)
	require.NoError(t, err)
	require.Equal(t, "k: v\n", string(data))
}

func TestDirIncluderKeepsAbsoluteNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abs.yml")
	require.NoError(t, os.WriteFile(path, []byte("abs: true\n"), 0600))

	stream, err := files.NewDirIncluder("/somewhere/else").Open(path)
	require.NoError(t, err)
	stream.Close()
}

func TestOutputFileCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "out.yml")

	require.NoError(t, files.NewOutputFile(path, []byte("done: true\n")).Create())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "done: true\n", string(data))
}
