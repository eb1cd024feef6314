// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package eval_test

import (
	"bytes"
	"testing"

	"carvel.dev/ypp/pkg/eval"
	"carvel.dev/ypp/pkg/filepos"
	"carvel.dev/ypp/pkg/library"
	"github.com/stretchr/testify/require"
)

func TestExecFoldsGlobalsIntoEnvironment(t *testing.T) {
	env := eval.NewStarlark(eval.StarlarkOpts{})

	err := env.Exec("x = 40\ny = 2", filepos.NewUnknownPosition())
	require.NoError(t, err)

	val, captured, err := env.Eval("x + y", filepos.NewUnknownPosition())
	require.NoError(t, err)
	require.Empty(t, captured)
	require.Equal(t, "42", val.EmbedText())
}

func TestExecSeesEarlierDefinitions(t *testing.T) {
	env := eval.NewStarlark(eval.StarlarkOpts{})

	err := env.Exec("base = 10", filepos.NewUnknownPosition())
	require.NoError(t, err)

	err = env.Exec("derived = base * 2", filepos.NewUnknownPosition())
	require.NoError(t, err)

	val, _, err := env.Eval("derived", filepos.NewUnknownPosition())
	require.NoError(t, err)
	require.Equal(t, "20", val.EmbedText())
}

func TestEvalStringEmbedsVerbatim(t *testing.T) {
	env := eval.NewStarlark(eval.StarlarkOpts{})

	val, _, err := env.Eval("'plain text'", filepos.NewUnknownPosition())
	require.NoError(t, err)
	require.Equal(t, eval.KindText, val.(eval.Value).Kind())
	require.Equal(t, "plain text", val.EmbedText())
}

func TestEvalScalarsUseDisplayForm(t *testing.T) {
	env := eval.NewStarlark(eval.StarlarkOpts{})

	for expr, expected := range map[string]string{
		"1 + 1":    "2",
		"1.5 * 2":  "3.0",
		"True":     "true",
		"not True": "false",
		"None":     "null",
	} {
		val, _, err := env.Eval(expr, filepos.NewUnknownPosition())
		require.NoError(t, err)
		require.Equal(t, eval.KindOther, val.(eval.Value).Kind(), "expr: %s", expr)
		require.Equal(t, expected, val.EmbedText(), "expr: %s", expr)
	}
}

func TestEvalDictRendersAsYAML(t *testing.T) {
	env := eval.NewStarlark(eval.StarlarkOpts{})

	val, _, err := env.Eval("{'a': 1, 'b': [2, 3]}", filepos.NewUnknownPosition())
	require.NoError(t, err)
	require.Equal(t, eval.KindData, val.(eval.Value).Kind())
	require.Equal(t, "a: 1\nb:\n  - 2\n  - 3", val.EmbedText())
}

func TestEvalListRendersAsYAML(t *testing.T) {
	env := eval.NewStarlark(eval.StarlarkOpts{})

	val, _, err := env.Eval("['x', 'y']", filepos.NewUnknownPosition())
	require.NoError(t, err)
	require.Equal(t, eval.KindData, val.(eval.Value).Kind())
	require.Equal(t, "- x\n- y", val.EmbedText())
}

func TestEvalCapturesPrintOutput(t *testing.T) {
	env := eval.NewStarlark(eval.StarlarkOpts{})

	err := env.Exec(
		"def noisy():\n"+
			"    print('first')\n"+
			"    print('second')\n"+
			"    return 7\n",
		filepos.NewUnknownPosition())
	require.NoError(t, err)

	val, captured, err := env.Eval("noisy()", filepos.NewUnknownPosition())
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second"}, captured)
	require.Equal(t, "7", val.EmbedText())

	// capture does not leak into the next evaluation
	_, captured, err = env.Eval("1", filepos.NewUnknownPosition())
	require.NoError(t, err)
	require.Empty(t, captured)
}

func TestExecPrintOutputGoesToDebugWriter(t *testing.T) {
	var debug bytes.Buffer
	env := eval.NewStarlark(eval.StarlarkOpts{DebugWriter: &debug})

	err := env.Exec("print('debugging')", filepos.NewUnknownPosition())
	require.NoError(t, err)
	require.Equal(t, "debugging\n", debug.String())
}

func TestEvalErrorDiscardsCapturedOutput(t *testing.T) {
	env := eval.NewStarlark(eval.StarlarkOpts{})

	_, _, err := env.Eval("undefined_name", filepos.NewUnknownPosition())
	require.Error(t, err)

	_, captured, err := env.Eval("1", filepos.NewUnknownPosition())
	require.NoError(t, err)
	require.Empty(t, captured)
}

func TestEnvironmentShadowsPredeclared(t *testing.T) {
	env := eval.NewStarlark(eval.StarlarkOpts{Predeclared: library.All()})

	val, _, err := env.Eval("base64.encode('hi')", filepos.NewUnknownPosition())
	require.NoError(t, err)
	require.Equal(t, "aGk=", val.EmbedText())

	err = env.Exec("base64 = 'mine now'", filepos.NewUnknownPosition())
	require.NoError(t, err)

	val, _, err = env.Eval("base64", filepos.NewUnknownPosition())
	require.NoError(t, err)
	require.Equal(t, "mine now", val.EmbedText())
}

func TestEvalErrorNamesSourcePosition(t *testing.T) {
	env := eval.NewStarlark(eval.StarlarkOpts{})

	pos := filepos.NewPosition(12)
	pos.SetFile("config.yml")

	_, _, err := env.Eval("1 +", pos)
	require.Error(t, err)
	require.Contains(t, err.Error(), "config.yml:12")
}
