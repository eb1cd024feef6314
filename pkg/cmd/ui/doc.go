// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package ui separates the three output channels of a run: the expanded
document (stdout), warnings such as validation context (stderr), and
debug output from directives, which is discarded unless enabled.
*/
package ui
