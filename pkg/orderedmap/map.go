// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

type Map struct {
	items []MapItem
}

type MapItem struct {
	Key   interface{}
	Value interface{}
}

func NewMap() *Map {
	return &Map{}
}

func NewMapWithItems(items []MapItem) *Map {
	return &Map{items}
}

func (m *Map) Set(key, value interface{}) {
	for i, item := range m.items {
		if m.isKeyEq(item.Key, key) {
			item.Value = value
			m.items[i] = item
			return
		}
	}
	m.items = append(m.items, MapItem{key, value})
}

func (m *Map) Get(key interface{}) (interface{}, bool) {
	for _, item := range m.items {
		if m.isKeyEq(item.Key, key) {
			return item.Value, true
		}
	}
	return nil, false
}

func (m *Map) Delete(key interface{}) bool {
	for i, item := range m.items {
		if m.isKeyEq(item.Key, key) {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Map) isKeyEq(key1, key2 interface{}) bool {
	return reflect.DeepEqual(key1, key2)
}

func (m *Map) Keys() (keys []interface{}) {
	m.Iterate(func(k, _ interface{}) {
		keys = append(keys, k)
	})
	return
}

func (m *Map) Iterate(iterFunc func(k, v interface{})) {
	for _, item := range m.items {
		iterFunc(item.Key, item.Value)
	}
}

func (m *Map) IterateErr(iterFunc func(k, v interface{}) error) error {
	for _, item := range m.items {
		err := iterFunc(item.Key, item.Value)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Map) Len() int { return len(m.items) }

var _ yaml.Marshaler = &Map{}
var _ json.Marshaler = &Map{}

// MarshalYAML emits a mapping node directly so that yaml.v3 does not
// reorder keys the way it would for a native Go map.
func (m *Map) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, item := range m.items {
		var keyNode, valNode yaml.Node
		err := keyNode.Encode(item.Key)
		if err != nil {
			return nil, fmt.Errorf("Encoding map key '%v': %s", item.Key, err)
		}
		err = valNode.Encode(item.Value)
		if err != nil {
			return nil, fmt.Errorf("Encoding value of map key '%v': %s", item.Key, err)
		}
		node.Content = append(node.Content, &keyNode, &valNode)
	}
	return node, nil
}

func (m *Map) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBufferString("{")
	for i, item := range m.items {
		if i > 0 {
			buf.WriteString(",")
		}
		keyStr, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("Expected JSON object key to be string, but was %T", item.Key)
		}
		keyBs, err := json.Marshal(keyStr)
		if err != nil {
			return nil, err
		}
		valBs, err := json.Marshal(item.Value)
		if err != nil {
			return nil, fmt.Errorf("Encoding value of object key '%s': %s", keyStr, err)
		}
		buf.Write(keyBs)
		buf.WriteString(":")
		buf.Write(valBs)
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}
