// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
)

// WrapSOAP places body in a SOAP 1.1 envelope with an empty header and
// declares every OICP namespace on the envelope.
func WrapSOAP(body *etree.Element) *etree.Document {
	env := wire.NewElement(wire.NsSOAPEnv, "Envelope")
	wire.AddElement(env, wire.NsSOAPEnv, "Header")
	b := wire.AddElement(env, wire.NsSOAPEnv, "Body")
	if body != nil {
		b.AddChild(body)
	}
	return wire.Document(env)
}

// UnwrapSOAP parses a SOAP 1.1 document and returns the first element
// inside its Body. A document whose root is not an envelope is returned
// as is, so bare OICP payloads pass through.
func UnwrapSOAP(data []byte) (*etree.Element, error) {
	root, err := wire.ReadXML(data)
	if err != nil {
		return nil, err
	}
	if !wire.Is(root, wire.NsSOAPEnv, "Envelope") {
		return root, nil
	}
	body := wire.Child(root, wire.NsSOAPEnv, "Body")
	if body == nil {
		return nil, fmt.Errorf("SOAP Body: %w", wire.ErrMissingElement)
	}
	children := body.ChildElements()
	if len(children) == 0 {
		return nil, fmt.Errorf("SOAP Body: %w", wire.ErrEmptyDocument)
	}
	return children[0], nil
}
