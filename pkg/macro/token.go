// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package macro

import (
	"carvel.dev/ypp/pkg/filepos"
)

type TokenKind int

const (
	TokenRegular TokenKind = iota
	TokenComment
	TokenExecBlock
	TokenEval
	TokenInclude
)

func (k TokenKind) String() string {
	switch k {
	case TokenRegular:
		return "regular"
	case TokenComment:
		return "comment"
	case TokenExecBlock:
		return "exec"
	case TokenEval:
		return "eval"
	case TokenInclude:
		return "include"
	default:
		return "unknown"
	}
}

// Token is one classified logical unit of input. Prefix is the text
// before the marker (it defines the output column); Body is the raw
// line, expression, or include name depending on Kind; Suffix is the
// text after a close marker. Comment and exec-block tokens always have
// empty Prefix and Suffix.
type Token struct {
	Kind     TokenKind
	Prefix   string
	Body     string
	Suffix   string
	Position *filepos.Position
}
