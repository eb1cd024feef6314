// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package macro expands embedded script directives inside a YAML document
before the document is parsed as data.

Directives are line-shaped. Each physical line is classified against an
ordered set of grammar rules; the first match wins:

 1. Comment: the first non-blank character is '#'. The line is passed
    through verbatim.

 2. Include: "prefix @@include NAME@@" where the closing "@@" is optional
    and NAME contains no whitespace. The named file is expanded through
    the same pipeline and spliced in at the directive's column: every
    produced line except the first (and except comment and exec-block
    lines, whose content is opaque) is indented by the width of the
    directive's prefix, and exactly one line break follows the block.

 3. Exec block: "@+" alone on a line (only whitespace around it) opens a
    block which runs until a line that is entirely "+@"; the raw lines in
    between are de-indented and handed to the statement executor for side
    effects. "@+ code +@" on a single line is the same thing without the
    capture. Exec blocks produce no output.

 4. Eval: "prefix @% expr %@ suffix" evaluates expr and splices the
    result in place of the directive. The closing "%@" is optional; when
    absent the expression runs to the end of the line and the suffix is
    empty. Multi-line results are re-indented so continuation lines land
    under the directive's original column.

 5. Regular: anything else is passed through unchanged.

All directives in one run (the top file and every include, at any depth)
share a single mutable environment: a name defined by an earlier exec
block or expression is visible to every later directive.

Statement execution and expression evaluation are injected capabilities;
this package has no dependency on any particular script runtime.
*/
package macro
