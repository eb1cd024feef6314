// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to ypp's "commands" -- instances of cobra.Command
(not to be confused with ./cmd which contains the bootstrapping for
executing ypp).

The default command is "process": expand directives in one YAML file.
*/
package cmd
