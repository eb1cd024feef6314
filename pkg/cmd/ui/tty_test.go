// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui_test

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"carvel.dev/ypp/pkg/cmd/ui"
	"github.com/stretchr/testify/require"
)

func TestTTYChannelsStaySeparate(t *testing.T) {
	var out, err bytes.Buffer
	tty := ui.NewCustomWriterTTY(false, &out, &err)

	tty.Printf("result: %d\n", 1)
	tty.Warnf("warning\n")

	require.Equal(t, "result: 1\n", out.String())
	require.Equal(t, "warning\n", err.String())
}

func TestTTYDebugDisabledDiscardsOutput(t *testing.T) {
	var out, err bytes.Buffer
	tty := ui.NewCustomWriterTTY(false, &out, &err)

	tty.Debugf("hidden\n")
	fmt.Fprintf(tty.DebugWriter(), "also hidden\n")

	require.Empty(t, err.String())
	require.Equal(t, io.Discard, tty.DebugWriter())
}

func TestTTYDebugEnabledWritesToStderr(t *testing.T) {
	var out, err bytes.Buffer
	tty := ui.NewCustomWriterTTY(true, &out, &err)

	tty.Debugf("shown\n")
	fmt.Fprintf(tty.DebugWriter(), "print output\n")

	require.Equal(t, "shown\nprint output\n", err.String())
	require.Empty(t, out.String())
}
