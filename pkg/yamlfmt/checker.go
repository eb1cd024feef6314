// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"carvel.dev/ypp/pkg/filepos"
	"gopkg.in/yaml.v3"
)

// eg "yaml: line 2: found character that cannot start any token"
var lineErrRegexp = regexp.MustCompile(`yaml: line (?P<num>\d+): (?P<msg>.+)`)

const errContextLines = 5

// ParseError describes where and why the expanded document failed to
// parse as YAML. Context holds the source lines around the failure.
type ParseError struct {
	Pos     *filepos.Position
	Msg     string
	Context []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Parsing expanded document: %s: %s", e.Pos.AsString(), e.Msg)
}

// Check parses text as one or more YAML documents and re-serializes them
// canonically. On parse failure it returns empty text and a *ParseError.
func Check(text string) (string, error) {
	var docs []*yaml.Node

	dec := yaml.NewDecoder(strings.NewReader(text))
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", newParseError(err, text)
		}
		docs = append(docs, &doc)
	}

	if len(docs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	for _, doc := range docs {
		err := enc.Encode(doc)
		if err != nil {
			return "", newParseError(err, text)
		}
	}

	err := enc.Close()
	if err != nil {
		return "", newParseError(err, text)
	}

	return buf.String(), nil
}

// newParseError recovers the failing line number from the yaml library's
// error string (it is not exposed in a structured way).
func newParseError(err error, text string) *ParseError {
	match := lineErrRegexp.FindStringSubmatch(err.Error())
	if match == nil {
		return &ParseError{
			Pos: filepos.NewUnknownPosition(),
			Msg: strings.TrimPrefix(err.Error(), "yaml: "),
		}
	}

	lineNum := 0
	fmt.Sscanf(match[1], "%d", &lineNum)

	pos := filepos.NewPosition(lineNum)
	lines := strings.Split(text, "\n")
	if lineNum >= 1 && lineNum <= len(lines) {
		pos.SetLine(lines[lineNum-1])
	}

	return &ParseError{Pos: pos, Msg: match[2], Context: contextLines(lines, lineNum)}
}

func contextLines(lines []string, lineNum int) []string {
	start := lineNum - 1 - errContextLines
	if start < 0 {
		start = 0
	}
	end := lineNum + errContextLines
	if end > len(lines) {
		end = len(lines)
	}

	var result []string
	for i := start; i < end; i++ {
		result = append(result, fmt.Sprintf("%4d | %s", i+1, lines[i]))
	}
	return result
}
