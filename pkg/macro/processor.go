// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package macro

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"carvel.dev/ypp/pkg/filepos"
)

// Value is an evaluated expression result. EmbedText must already be a
// representation valid in the target format; no escaping is applied.
type Value interface {
	EmbedText() string
}

// StatementExecutor runs a block of script source against the shared run
// environment for side effects.
type StatementExecutor interface {
	Exec(body string, pos *filepos.Position) error
}

// ExpressionEvaluator evaluates one expression against the shared run
// environment, returning a value plus captured incidental output lines.
type ExpressionEvaluator interface {
	Eval(expr string, pos *filepos.Position) (Value, []string, error)
}

// Includer opens the file named by an include directive.
type Includer interface {
	Open(name string) (io.ReadCloser, error)
}

type ProcessorOpts struct {
	Executor  StatementExecutor
	Evaluator ExpressionEvaluator
	Includer  Includer // defaults to opening names as local paths
}

// Processor drives classification, block capture, include resolution and
// reflow over a stack of input streams. One Processor serves one run;
// the executor and evaluator carry the environment shared across it.
type Processor struct {
	opts       ProcessorOpts
	classifier Classifier
	frames     []*streamFrame
}

func NewProcessor(opts ProcessorOpts) *Processor {
	if opts.Includer == nil {
		opts.Includer = osIncluder{}
	}
	return &Processor{opts: opts, classifier: NewClassifier()}
}

func (p *Processor) ProcessFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("Opening '%s': %s", path, err)
	}
	defer file.Close()

	return p.ProcessStream(file, path)
}

func (p *Processor) ProcessString(text string) (string, error) {
	return p.ProcessStream(strings.NewReader(text), "")
}

func (p *Processor) ProcessStream(stream io.Reader, name string) (string, error) {
	return p.processFrame(newStreamFrame(stream, name), "")
}

// processFrame runs the full pipeline over one stream. A non-empty
// indent means the stream is an included file being spliced in at that
// column; all but the first line (and all but comment/exec lines) are
// shifted right by it.
func (p *Processor) processFrame(frame *streamFrame, indent string) (string, error) {
	p.frames = append(p.frames, frame)
	defer func() { p.frames = p.frames[:len(p.frames)-1] }()

	var out strings.Builder
	firstLine := true

	for frame.Scan() {
		match := p.classifier.Classify(frame.Text(), frame.Position())
		token := match.Token

		if match.OpensBlock {
			var err error
			token, err = p.captureBlock(token, frame)
			if err != nil {
				return "", err
			}
		}

		if len(indent) > 0 {
			switch token.Kind {
			case TokenComment, TokenExecBlock:
				// opaque content; shifting it would corrupt embedded
				// code or comment semantics
			default:
				if firstLine {
					firstLine = false
				} else {
					token.Prefix = indent + token.Prefix
				}
			}
		}

		text, err := p.expand(token)
		if err != nil {
			return "", err
		}
		out.WriteString(text)
	}
	if err := frame.Err(); err != nil {
		return "", fmt.Errorf("Reading '%s': %s", frame.name, err)
	}

	return out.String(), nil
}

// expand turns one token into final output text (the reflow engine).
func (p *Processor) expand(token Token) (string, error) {
	switch token.Kind {
	case TokenRegular:
		return strings.TrimRight(token.Prefix+token.Body, " \t") + "\n", nil

	case TokenComment:
		return token.Body + "\n", nil

	case TokenExecBlock:
		err := p.opts.Executor.Exec(dedent(token.Body), token.Position)
		if err != nil {
			return "", ExecError{Position: token.Position, Cause: err}
		}
		// only the (usually empty) prefix survives, keeping column
		// alignment of any text that preceded the marker
		return token.Prefix, nil

	case TokenEval:
		return p.expandEval(token)

	case TokenInclude:
		return p.expandInclude(token)

	default:
		panic(fmt.Sprintf("unknown token kind %d", token.Kind))
	}
}

func (p *Processor) expandEval(token Token) (string, error) {
	val, captured, err := p.opts.Evaluator.Eval(token.Body, token.Position)
	if err != nil {
		return "", ExecError{Position: token.Position, Cause: err}
	}

	embedded := val.EmbedText()
	if len(captured) > 0 {
		embedded = strings.Join(append(captured, embedded), "\n")
	}

	if strings.Contains(embedded, "\n") {
		// continuation lines land under the directive's column
		embedded = strings.ReplaceAll(embedded, "\n", "\n"+strings.Repeat(" ", len(token.Prefix)))
	}

	return strings.TrimRight(token.Prefix+embedded+token.Suffix, " \t") + "\n", nil
}

func (p *Processor) expandInclude(token Token) (string, error) {
	stream, err := p.opts.Includer.Open(token.Body)
	if err != nil {
		return "", IncludeNotFoundError{Name: token.Body, Position: token.Position, Cause: err}
	}
	defer stream.Close()

	expanded, err := p.processFrame(
		newStreamFrame(stream, token.Body), strings.Repeat(" ", len(token.Prefix)))
	if err != nil {
		return "", err
	}

	return token.Prefix + expanded + "\n", nil
}

// streamFrame is one open input source plus its line cursor. The frame
// stack models include nesting; the top frame is the active source.
type streamFrame struct {
	name    string
	scanner *bufio.Scanner
	lineNum int
}

func newStreamFrame(stream io.Reader, name string) *streamFrame {
	scanner := bufio.NewScanner(stream)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &streamFrame{name: name, scanner: scanner}
}

func (f *streamFrame) Scan() bool {
	ok := f.scanner.Scan()
	if ok {
		f.lineNum++
	}
	return ok
}

func (f *streamFrame) Text() string { return f.scanner.Text() }
func (f *streamFrame) Err() error   { return f.scanner.Err() }

func (f *streamFrame) Position() *filepos.Position {
	if f.lineNum == 0 {
		return filepos.NewUnknownPosition()
	}
	if len(f.name) > 0 {
		return filepos.NewPositionInFile(f.lineNum, f.name)
	}
	return filepos.NewPosition(f.lineNum)
}

type osIncluder struct{}

func (osIncluder) Open(name string) (io.ReadCloser, error) { return os.Open(name) }
