// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"errors"
	"strings"

	"carvel.dev/ypp/pkg/cmd/ui"
	"carvel.dev/ypp/pkg/eval"
	"carvel.dev/ypp/pkg/files"
	"carvel.dev/ypp/pkg/library"
	"carvel.dev/ypp/pkg/macro"
	"carvel.dev/ypp/pkg/yamlfmt"
	"github.com/spf13/cobra"
)

type ProcessOptions struct {
	Check      bool
	OutputPath string
	Directory  string
	Debug      bool
}

func NewProcessOptions() *ProcessOptions {
	return &ProcessOptions{}
}

func NewProcessCmd(o *ProcessOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process [flags] FILE",
		Short: "Expand directives in one YAML file",
		Args:  cobra.ExactArgs(1),
		RunE:  func(_ *cobra.Command, args []string) error { return o.Run(args[0]) },
	}
	cmd.Flags().BoolVarP(&o.Check, "check", "c", false, "Check that expanded output is valid YAML and reformat it")
	cmd.Flags().StringVarP(&o.OutputPath, "output", "o", "", "Output file (default is standard output)")
	cmd.Flags().StringVarP(&o.Directory, "directory", "d", ".", "Include root for relative include names")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *ProcessOptions) Run(path string) error {
	ui := ui.NewTTY(o.Debug)

	env := eval.NewStarlark(eval.StarlarkOpts{
		Predeclared: library.All(),
		DebugWriter: ui.DebugWriter(),
	})

	processor := macro.NewProcessor(macro.ProcessorOpts{
		Executor:  env,
		Evaluator: env,
		Includer:  files.NewDirIncluder(o.Directory),
	})

	source := files.NewSource(path)

	var expanded string
	var err error

	if source.IsStdin() {
		data, readErr := source.Bytes()
		if readErr != nil {
			return readErr
		}
		expanded, err = processor.ProcessStream(bytes.NewReader(data), source.Description())
	} else {
		expanded, err = processor.ProcessFile(path)
	}
	if err != nil {
		return err
	}

	result := expanded
	if o.Check {
		result, err = yamlfmt.Check(expanded)
		if err != nil {
			var parseErr *yamlfmt.ParseError
			if errors.As(err, &parseErr) {
				for _, line := range parseErr.Context {
					ui.Warnf("%s\n", line)
				}
			}
			return err
		}
	}

	return o.writeResult(ui, result)
}

func (o *ProcessOptions) writeResult(ui ui.UI, result string) error {
	if len(o.OutputPath) > 0 {
		ui.Printf("Writing %d lines to '%s'\n", strings.Count(result, "\n"), o.OutputPath)
		return files.NewOutputFile(o.OutputPath, []byte(result)).Create()
	}

	ui.Printf("%s", result)
	return nil
}
