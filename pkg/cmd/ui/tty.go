// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"io"
	"os"
)

// TTY writes results to stdout and diagnostics to stderr.
type TTY struct {
	debug bool
	outw  io.Writer
	errw  io.Writer
}

var _ UI = TTY{}

func NewTTY(debug bool) TTY {
	return TTY{debug: debug, outw: os.Stdout, errw: os.Stderr}
}

// NewCustomWriterTTY is used by tests to observe both channels.
func NewCustomWriterTTY(debug bool, outw, errw io.Writer) TTY {
	tty := NewTTY(debug)
	if outw != nil {
		tty.outw = outw
	}
	if errw != nil {
		tty.errw = errw
	}
	return tty
}

func (t TTY) Printf(str string, args ...interface{}) {
	fmt.Fprintf(t.outw, str, args...)
}

func (t TTY) Warnf(str string, args ...interface{}) {
	fmt.Fprintf(t.errw, str, args...)
}

func (t TTY) Debugf(str string, args ...interface{}) {
	if t.debug {
		fmt.Fprintf(t.errw, str, args...)
	}
}

func (t TTY) DebugWriter() io.Writer {
	if t.debug {
		return t.errw
	}
	return io.Discard
}
