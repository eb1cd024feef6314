// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package macro_test

import (
	"testing"

	"carvel.dev/ypp/pkg/filepos"
	"carvel.dev/ypp/pkg/macro"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

func classify(line string) macro.Match {
	return macro.NewClassifier().Classify(line, filepos.NewPosition(1))
}

func TestClassifyRegular(t *testing.T) {
	match := classify("foo: bar")
	require.Equal(t, macro.TokenRegular, match.Token.Kind)
	require.Equal(t, "foo: bar", match.Token.Body)
	require.False(t, match.OpensBlock)
}

func TestClassifyComment(t *testing.T) {
	for _, line := range []string{"# top", "   # indented", "#"} {
		match := classify(line)
		require.Equal(t, macro.TokenComment, match.Token.Kind, "line: %q", line)
		require.Equal(t, line, match.Token.Body)
		require.Empty(t, match.Token.Prefix)
		require.Empty(t, match.Token.Suffix)
	}
}

func TestClassifyCommentWinsOverDirectives(t *testing.T) {
	match := classify("# disabled: @%1+1%@")
	require.Equal(t, macro.TokenComment, match.Token.Kind)
}

func TestClassifyInclude(t *testing.T) {
	match := classify("  - @@include include.yaml@@")
	require.Equal(t, macro.TokenInclude, match.Token.Kind)
	require.Equal(t, "  - ", match.Token.Prefix)
	require.Equal(t, "include.yaml", match.Token.Body)
}

func TestClassifyIncludeWithoutCloseMarker(t *testing.T) {
	match := classify("  @@include sub/other.yaml")
	require.Equal(t, macro.TokenInclude, match.Token.Kind)
	require.Equal(t, "  ", match.Token.Prefix)
	require.Equal(t, "sub/other.yaml", match.Token.Body)
}

func TestClassifyExecInline(t *testing.T) {
	match := classify("@+x = 42+@")
	require.Equal(t, macro.TokenExecBlock, match.Token.Kind)
	require.Equal(t, "x = 42", match.Token.Body)
	require.False(t, match.OpensBlock)
}

func TestClassifyExecOpen(t *testing.T) {
	match := classify("  @+  ")
	require.Equal(t, macro.TokenExecBlock, match.Token.Kind)
	require.True(t, match.OpensBlock)
}

func TestClassifyExecClose(t *testing.T) {
	c := macro.NewClassifier()
	require.True(t, c.IsBlockClose("+@"))
	require.True(t, c.IsBlockClose("   +@  "))
	require.False(t, c.IsBlockClose("x = 1 +@ trailing"))
}

func TestClassifyEvalClosed(t *testing.T) {
	match := classify("a: @%1+1%@")
	require.Equal(t, macro.TokenEval, match.Token.Kind)
	require.Equal(t, "a: ", match.Token.Prefix)
	require.Equal(t, "1+1", match.Token.Body)
	require.Equal(t, "", match.Token.Suffix)
}

func TestClassifyEvalWithSuffix(t *testing.T) {
	match := classify("  foo: @%42%@42")
	require.Equal(t, macro.TokenEval, match.Token.Kind)
	require.Equal(t, "  foo: ", match.Token.Prefix)
	require.Equal(t, "42", match.Token.Body)
	require.Equal(t, "42", match.Token.Suffix)
}

func TestClassifyEvalOpenOnly(t *testing.T) {
	match := classify("b: @%x")
	require.Equal(t, macro.TokenEval, match.Token.Kind)
	require.Equal(t, "b: ", match.Token.Prefix)
	require.Equal(t, "x", match.Token.Body)
	require.Empty(t, match.Token.Suffix)
}

func TestClassifyExecWinsOverEval(t *testing.T) {
	// "@+..." also matches the lenient eval rule; precedence decides
	match := classify("@+y = 'val'+@")
	require.Equal(t, macro.TokenExecBlock, match.Token.Kind)
}

func TestClassifyNeverPanicsOnFuzzedInput(t *testing.T) {
	fuzzLines := fuzz.New().NumElements(0, 200)

	for i := 0; i < 500; i++ {
		var line string
		fuzzLines.Fuzz(&line)

		match := classify(line)
		require.LessOrEqual(t, match.Token.Kind, macro.TokenInclude)
	}
}
