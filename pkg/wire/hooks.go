// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package wire

import "github.com/beevik/etree"

// CustomXMLParser may replace a value parsed from node.
type CustomXMLParser[T any] func(node *etree.Element, candidate T) T

// CustomXMLSerializer may replace the element produced for value.
type CustomXMLSerializer[T any] func(value T, candidate *etree.Element) *etree.Element

// CustomJSONParser may replace a value parsed from obj.
type CustomJSONParser[T any] func(obj JSONObject, candidate T) T

// CustomJSONSerializer may replace the object produced for value.
type CustomJSONSerializer[T any] func(value T, candidate JSONObject) JSONObject

// Apply runs the hook on a successfully parsed value.
func (h CustomXMLParser[T]) Apply(node *etree.Element, v T) T {
	if h == nil {
		return v
	}
	return h(node, v)
}

// Apply runs the hook on a serialized element.
func (h CustomXMLSerializer[T]) Apply(v T, e *etree.Element) *etree.Element {
	if h == nil {
		return e
	}
	return h(v, e)
}

// Apply runs the hook on a successfully parsed value.
func (h CustomJSONParser[T]) Apply(obj JSONObject, v T) T {
	if h == nil {
		return v
	}
	return h(obj, v)
}

// Apply runs the hook on a serialized object.
func (h CustomJSONSerializer[T]) Apply(v T, obj JSONObject) JSONObject {
	if h == nil {
		return obj
	}
	return h(v, obj)
}
