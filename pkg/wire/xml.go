// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package wire

import (
	"strings"

	"github.com/beevik/etree"
)

// Is reports whether e is the element local in namespace ns. Unqualified
// elements without a resolvable namespace match any namespace.
func Is(e *etree.Element, ns, local string) bool {
	if e == nil || e.Tag != local {
		return false
	}
	if uri := e.NamespaceURI(); uri != "" {
		return uri == ns
	}
	return e.Space == "" || e.Space == Prefix(ns)
}

// Child returns the first child element of e matching ns and local.
func Child(e *etree.Element, ns, local string) *etree.Element {
	if e == nil {
		return nil
	}
	for _, c := range e.ChildElements() {
		if Is(c, ns, local) {
			return c
		}
	}
	return nil
}

// Children returns all child elements of e matching ns and local.
func Children(e *etree.Element, ns, local string) []*etree.Element {
	if e == nil {
		return nil
	}
	var out []*etree.Element
	for _, c := range e.ChildElements() {
		if Is(c, ns, local) {
			out = append(out, c)
		}
	}
	return out
}

// Text returns the trimmed text content of e.
func Text(e *etree.Element) string {
	if e == nil {
		return ""
	}
	return strings.TrimSpace(e.Text())
}

// ChildText returns the trimmed text of the first matching child and whether
// the child exists.
func ChildText(e *etree.Element, ns, local string) (string, bool) {
	c := Child(e, ns, local)
	if c == nil {
		return "", false
	}
	return Text(c), true
}

// RequiredText returns the text of a mandatory child element.
func RequiredText(e *etree.Element, ns, local string) (string, error) {
	c := Child(e, ns, local)
	if c == nil {
		return "", ErrMissingElement
	}
	return Text(c), nil
}

// AddElement appends a new child element to parent.
func AddElement(parent *etree.Element, ns, local string) *etree.Element {
	return parent.CreateElement(Name(ns, local))
}

// AddText appends a child element carrying text.
func AddText(parent *etree.Element, ns, local, text string) *etree.Element {
	c := AddElement(parent, ns, local)
	c.SetText(text)
	return c
}

// AddOptionalText appends a child element only when text is non-empty.
func AddOptionalText(parent *etree.Element, ns, local, text string) {
	if text != "" {
		AddText(parent, ns, local, text)
	}
}

// AddChild appends child to parent unless child is nil.
func AddChild(parent, child *etree.Element) {
	if child != nil {
		parent.AddChild(child)
	}
}
