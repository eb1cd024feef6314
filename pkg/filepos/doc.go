// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the concept of Position: a source name (usually a file)
and line number within that source.

Positions are attached to directive tokens as they are classified so that
fatal errors (an unterminated exec block, a failing expression) and soft
validation errors can point the author at the offending line. Validation
errors additionally carry a column when the YAML codec reports one.

Not all Position point within a file (e.g. a document processed from an
in-memory string). The zero-value of Position (can be created using
NewUnknownPosition()) represents this case.
*/
package filepos
