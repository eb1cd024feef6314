// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package macro

import (
	"strings"
)

// captureBlock pulls raw lines from the active stream until a line that
// is entirely the close marker, accumulating them as the token's body.
func (p *Processor) captureBlock(open Token, frame *streamFrame) (Token, error) {
	var body strings.Builder

	for frame.Scan() {
		line := frame.Text()
		if p.classifier.IsBlockClose(line) {
			open.Body = body.String()
			return open, nil
		}
		body.WriteString(line)
		body.WriteString("\n")
	}
	if err := frame.Err(); err != nil {
		return Token{}, err
	}

	return Token{}, UnterminatedBlockError{Position: open.Position}
}

// dedent strips the common leading whitespace of all non-blank lines, so
// a block visually indented to match surrounding structure keeps its own
// internal indentation intact.
func dedent(text string) string {
	lines := strings.Split(text, "\n")

	margin := ""
	marginSet := false

	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if len(trimmed) == 0 {
			continue // blank lines do not constrain the margin
		}
		indent := line[:len(line)-len(trimmed)]
		if !marginSet {
			margin = indent
			marginSet = true
			continue
		}
		margin = commonPrefix(margin, indent)
	}

	if margin == "" {
		return text
	}

	for i, line := range lines {
		if strings.TrimLeft(line, " \t") == "" {
			continue
		}
		lines[i] = strings.TrimPrefix(line, margin)
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	max := len(a)
	if len(b) < max {
		max = len(b)
	}
	for i := 0; i < max; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:max]
}
