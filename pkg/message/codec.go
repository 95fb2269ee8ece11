// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"github.com/beevik/etree"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
)

// listTexts returns the texts of every item element below container, and
// whether the container exists.
func listTexts(e *etree.Element, ns, container, item string) ([]string, bool) {
	c := wire.Child(e, ns, container)
	if c == nil {
		return nil, false
	}
	var out []string
	for _, i := range wire.Children(c, ns, item) {
		out = append(out, wire.Text(i))
	}
	return out, true
}

// addList appends a container holding one item per value. Nothing is
// written for an empty list.
func addList(parent *etree.Element, ns, container, item string, values []string) {
	if len(values) == 0 {
		return
	}
	c := wire.AddElement(parent, ns, container)
	for _, v := range values {
		wire.AddText(c, ns, item, v)
	}
}

// jsonObjects converts an array property into objects, failing on any
// non-object element.
func jsonObjects(obj wire.JSONObject, key string) ([]wire.JSONObject, bool, error) {
	a, ok, err := obj.Array(key)
	if err != nil || !ok {
		return nil, ok, err
	}
	out := make([]wire.JSONObject, 0, len(a))
	for _, v := range a {
		o, isObject := wire.AsObject(v)
		if !isObject {
			return nil, true, wire.ErrInvalidValue
		}
		out = append(out, o)
	}
	return out, true, nil
}

func optionalInt(v *int) (int, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

func optionalFloat(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
