// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package eval

type ValueKind int

const (
	// KindText is a textual result, embedded verbatim.
	KindText ValueKind = iota
	// KindData is a structured result (dict/list), rendered as YAML.
	KindData
	// KindOther is any other result, rendered via its display form.
	KindOther
)

// Value is an evaluated expression result plus the text that stands in
// for it in the expanded document.
type Value struct {
	kind    ValueKind
	text    string
	goValue interface{}
}

func NewTextValue(text string) Value {
	return Value{kind: KindText, text: text, goValue: text}
}

func NewDataValue(goValue interface{}, rendered string) Value {
	return Value{kind: KindData, text: rendered, goValue: goValue}
}

func NewOtherValue(display string) Value {
	return Value{kind: KindOther, text: display}
}

func (v Value) Kind() ValueKind      { return v.kind }
func (v Value) GoValue() interface{} { return v.goValue }

// EmbedText returns the representation embedded into the document.
func (v Value) EmbedText() string { return v.text }
