// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt_test

import (
	"testing"

	"carvel.dev/ypp/pkg/yamlfmt"
	"github.com/stretchr/testify/require"
)

func TestCheckCanonicalDocumentIsStable(t *testing.T) {
	input := "key: value\nlist:\n  - 1\n  - 2\n"

	out, err := yamlfmt.Check(input)
	require.NoError(t, err)
	require.Equal(t, input, out)

	again, err := yamlfmt.Check(out)
	require.NoError(t, err)
	require.Equal(t, out, again)
}

func TestCheckKeepsKeyOrder(t *testing.T) {
	out, err := yamlfmt.Check("zebra: 1\napple: 2\nmango: 3\n")
	require.NoError(t, err)
	require.Equal(t, "zebra: 1\napple: 2\nmango: 3\n", out)
}

func TestCheckMultipleDocuments(t *testing.T) {
	out, err := yamlfmt.Check("a: 1\n---\nb: 2\n")
	require.NoError(t, err)
	require.Equal(t, "a: 1\n---\nb: 2\n", out)
}

func TestCheckEmptyInput(t *testing.T) {
	out, err := yamlfmt.Check("")
	require.NoError(t, err)
	require.Equal(t, "", out)
}

func TestCheckParseErrorReportsLine(t *testing.T) {
	input := "ok: 1\nalso_ok: 2\nbroken: @not yaml\n"

	_, err := yamlfmt.Check(input)
	require.Error(t, err)

	parseErr, ok := err.(*yamlfmt.ParseError)
	require.True(t, ok, "expected *ParseError, got %T", err)
	require.Equal(t, 3, parseErr.Pos.LineNum())
	require.Contains(t, parseErr.Error(), "line 3")
	require.Contains(t, parseErr.Context, "   3 | broken: @not yaml")
}

func TestCheckParseErrorContextWindow(t *testing.T) {
	input := "a: 1\nb: 2\nc: 3\nd: 4\ne: 5\nf: 6\ng: 7\nh: 8\nbad: @x\nj: 10\n"

	_, err := yamlfmt.Check(input)
	require.Error(t, err)

	parseErr, ok := err.(*yamlfmt.ParseError)
	require.True(t, ok)
	require.Equal(t, 9, parseErr.Pos.LineNum())
	// five lines of context on each side of the failure
	require.Equal(t, "   4 | d: 4", parseErr.Context[0])
	require.Equal(t, "  10 | j: 10", parseErr.Context[len(parseErr.Context)-1])
}
