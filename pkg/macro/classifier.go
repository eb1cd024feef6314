// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package macro

import (
	"regexp"

	"carvel.dev/ypp/pkg/filepos"
)

var (
	commentCheck = regexp.MustCompile(`^\s*#`)

	// closing @@ is optional; name must not contain whitespace
	includeMatch = regexp.MustCompile(`^(.*)@@include\s+(\S+?)(?:@@)?\s*$`)

	execInlineMatch = regexp.MustCompile(`^\s*@\+(.+)\+@\s*$`)
	execOpenCheck   = regexp.MustCompile(`^\s*@\+\s*$`)
	execCloseCheck  = regexp.MustCompile(`^\s*\+@\s*$`)

	evalClosedMatch = regexp.MustCompile(`^(.*)@%(.+?)%@(.*)$`)
	evalOpenMatch   = regexp.MustCompile(`^(.*)@%(.+)$`)
)

// Match is the result of classifying one physical line. When OpensBlock
// is set the Token is an incomplete exec-block token whose body must be
// captured from the stream before it can be processed.
type Match struct {
	Token      Token
	OpensBlock bool
}

type Classifier struct{}

func NewClassifier() Classifier { return Classifier{} }

// Classify applies the grammar rules in precedence order
// (comment > include > exec > eval > regular).
func (c Classifier) Classify(line string, pos *filepos.Position) Match {
	if commentCheck.MatchString(line) {
		return Match{Token: Token{Kind: TokenComment, Body: line, Position: pos}}
	}

	if m := includeMatch.FindStringSubmatch(line); m != nil {
		return Match{Token: Token{Kind: TokenInclude, Prefix: m[1], Body: m[2], Position: pos}}
	}

	if m := execInlineMatch.FindStringSubmatch(line); m != nil {
		return Match{Token: Token{Kind: TokenExecBlock, Body: m[1], Position: pos}}
	}

	if execOpenCheck.MatchString(line) {
		return Match{Token: Token{Kind: TokenExecBlock, Position: pos}, OpensBlock: true}
	}

	if m := evalClosedMatch.FindStringSubmatch(line); m != nil {
		return Match{Token: Token{Kind: TokenEval, Prefix: m[1], Body: m[2], Suffix: m[3], Position: pos}}
	}

	if m := evalOpenMatch.FindStringSubmatch(line); m != nil {
		// lenient open-only form: expression runs to end of line
		return Match{Token: Token{Kind: TokenEval, Prefix: m[1], Body: m[2], Position: pos}}
	}

	return Match{Token: Token{Kind: TokenRegular, Body: line, Position: pos}}
}

// IsBlockClose reports whether the line is entirely a block close marker.
func (c Classifier) IsBlockClose(line string) bool {
	return execCloseCheck.MatchString(line)
}
