// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package eval

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"carvel.dev/ypp/pkg/eval/core"
	"carvel.dev/ypp/pkg/filepos"
	"carvel.dev/ypp/pkg/macro"
	"github.com/k14s/starlark-go/resolve"
	"github.com/k14s/starlark-go/starlark"
	"gopkg.in/yaml.v3"
)

type StarlarkOpts struct {
	// Predeclared names (typically the library modules) visible to all
	// directives without being part of the mutable environment.
	Predeclared starlark.StringDict
	// DebugWriter receives print() output of exec blocks. Print output
	// of expressions is captured and returned by Eval instead.
	DebugWriter io.Writer
}

// Starlark implements macro.StatementExecutor and
// macro.ExpressionEvaluator over one shared environment.
type Starlark struct {
	opts     StarlarkOpts
	env      starlark.StringDict
	captured []string
}

var _ macro.StatementExecutor = &Starlark{}
var _ macro.ExpressionEvaluator = &Starlark{}

func NewStarlark(opts StarlarkOpts) *Starlark {
	// TODO package globals
	resolve.AllowFloat = true
	resolve.AllowSet = true
	resolve.AllowLambda = true
	resolve.AllowNestedDef = true
	resolve.AllowBitwise = true
	resolve.AllowRecursion = true
	resolve.AllowGlobalReassign = true

	if opts.DebugWriter == nil {
		opts.DebugWriter = io.Discard
	}

	return &Starlark{opts: opts, env: starlark.StringDict{}}
}

// Exec runs a block of statements for side effects; resulting globals
// are folded into the run environment.
func (s *Starlark) Exec(body string, pos *filepos.Position) error {
	globals, err := starlark.ExecFile(s.newThread(), s.sourceName(pos), body, s.environment())
	if err != nil {
		return err
	}

	for name, val := range globals {
		s.env[name] = val
	}

	for _, line := range s.drainCaptured() {
		fmt.Fprintf(s.opts.DebugWriter, "%s\n", line)
	}
	return nil
}

// Eval evaluates one expression against the run environment, returning
// its value and any print() output produced while evaluating.
func (s *Starlark) Eval(expr string, pos *filepos.Position) (macro.Value, []string, error) {
	val, err := starlark.Eval(s.newThread(), s.sourceName(pos), expr, s.environment())
	if err != nil {
		s.drainCaptured()
		return nil, nil, err
	}

	return s.embedValue(val), s.drainCaptured(), nil
}

// embedValue applies the stringify-unless-text rule: strings embed
// verbatim, dicts/lists render as YAML, everything else uses a display
// form valid in YAML.
func (s *Starlark) embedValue(val starlark.Value) Value {
	switch typedVal := val.(type) {
	case starlark.String:
		return NewTextValue(string(typedVal))

	case starlark.NoneType:
		return NewOtherValue("null")

	case starlark.Bool:
		if bool(typedVal) {
			return NewOtherValue("true")
		}
		return NewOtherValue("false")

	case starlark.Int, starlark.Float:
		return NewOtherValue(val.String())

	case *starlark.Dict, *starlark.List, starlark.Tuple, *starlark.Set:
		goVal, err := core.NewStarlarkValue(val).AsGoValue()
		if err != nil {
			return NewOtherValue(val.String())
		}
		rendered, err := renderYAML(goVal)
		if err != nil {
			return NewOtherValue(val.String())
		}
		return NewDataValue(goVal, rendered)

	default:
		return NewOtherValue(val.String())
	}
}

func (s *Starlark) newThread() *starlark.Thread {
	return &starlark.Thread{Name: "ypp", Print: func(_ *starlark.Thread, msg string) {
		s.captured = append(s.captured, strings.Split(msg, "\n")...)
	}}
}

// environment is the merged view seen by one directive: predeclared
// library names shadowed by anything the run has defined so far.
func (s *Starlark) environment() starlark.StringDict {
	merged := starlark.StringDict{}
	for name, val := range s.opts.Predeclared {
		merged[name] = val
	}
	for name, val := range s.env {
		merged[name] = val
	}
	return merged
}

func (s *Starlark) drainCaptured() []string {
	captured := s.captured
	s.captured = nil
	return captured
}

func (s *Starlark) sourceName(pos *filepos.Position) string {
	if pos.IsKnown() {
		return pos.AsCompactString()
	}
	return "<directive>"
}

func renderYAML(goVal interface{}) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	err := enc.Encode(goVal)
	if err != nil {
		return "", err
	}
	err = enc.Close()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
