// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"fmt"

	"carvel.dev/ypp/pkg/orderedmap"
	"github.com/k14s/starlark-go/starlark"
)

// GoValue converts a plain Go value (as produced by the codec libraries)
// into a starlark value.
type GoValue struct {
	val interface{}
}

func NewGoValue(val interface{}) GoValue {
	return GoValue{val}
}

func (e GoValue) AsStarlarkValue() starlark.Value {
	return e.asStarlarkValue(e.val)
}

func (e GoValue) asStarlarkValue(val interface{}) starlark.Value {
	switch typedVal := val.(type) {
	case nil:
		return starlark.None

	case bool:
		return starlark.Bool(typedVal)

	case string:
		return starlark.String(typedVal)

	case int:
		return starlark.MakeInt(typedVal)

	case int64:
		return starlark.MakeInt64(typedVal)

	case uint:
		return starlark.MakeUint(typedVal)

	case uint64:
		return starlark.MakeUint64(typedVal)

	case float64:
		return starlark.Float(typedVal)

	case *orderedmap.Map:
		return e.orderedMapAsStarlarkValue(typedVal)

	case map[string]interface{}:
		return e.orderedMapAsStarlarkValue(
			orderedmap.Conversion{Object: typedVal}.FromUnorderedMaps().(*orderedmap.Map))

	case map[interface{}]interface{}:
		return e.orderedMapAsStarlarkValue(
			orderedmap.Conversion{Object: typedVal}.FromUnorderedMaps().(*orderedmap.Map))

	case []interface{}:
		return e.listAsStarlarkValue(typedVal)

	case []map[string]interface{}:
		// the toml decoder shapes arrays of tables this way
		result := []interface{}{}
		for _, item := range typedVal {
			result = append(result, item)
		}
		return e.listAsStarlarkValue(result)

	default:
		panic(fmt.Sprintf("unknown type %T for conversion to starlark value", val))
	}
}

func (e GoValue) orderedMapAsStarlarkValue(val *orderedmap.Map) starlark.Value {
	result := &starlark.Dict{}
	val.Iterate(func(k, v interface{}) {
		result.SetKey(e.asStarlarkValue(k), e.asStarlarkValue(v))
	})
	return result
}

func (e GoValue) listAsStarlarkValue(val []interface{}) *starlark.List {
	result := []starlark.Value{}
	for _, v := range val {
		result = append(result, e.asStarlarkValue(v))
	}
	return starlark.NewList(result)
}
