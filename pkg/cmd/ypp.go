// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/ypp/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

type YppOptions struct{}

func NewDefaultYppOptions() *YppOptions {
	return &YppOptions{}
}

func NewDefaultYppCmd() *cobra.Command {
	return NewYppCmd(NewDefaultYppOptions())
}

func NewYppCmd(o *YppOptions) *cobra.Command {
	cmd := NewProcessCmd(NewProcessOptions())

	cmd.Use = "ypp"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "ypp expands script directives embedded in YAML"
	cmd.Long = `ypp expands script directives embedded in YAML.

Exec blocks (@+ ... +@) run for side effects, eval markers (@% ... %@)
substitute their result in place, and @@include name@@ splices in another
file, all sharing one environment per run.`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(NewProcessCmd(NewProcessOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
