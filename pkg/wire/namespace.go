// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package wire

import (
	"github.com/beevik/etree"
)

// Namespace constants for the OICP message families
const (
	NsSOAPEnv             = "http://schemas.xmlsoap.org/soap/envelope/"
	NsCommonTypes         = "http://www.hubject.com/b2b/services/commontypes/v2.0"
	NsEVSEData            = "http://www.hubject.com/b2b/services/evsedata/v2.1"
	NsEVSEStatus          = "http://www.hubject.com/b2b/services/evsestatus/v2.1"
	NsAuthorization       = "http://www.hubject.com/b2b/services/authorization/v2.0"
	NsReservation         = "http://www.hubject.com/b2b/services/reservation/v1.0"
	NsAuthenticationData  = "http://www.hubject.com/b2b/services/authenticationdata/v2.0"
	NsMobileAuthorization = "http://www.hubject.com/b2b/services/mobileauthorization/v2.0"
)

var prefixes = map[string]string{
	NsSOAPEnv:             "SOAP",
	NsCommonTypes:         "CommonTypes",
	NsEVSEData:            "EVSEData",
	NsEVSEStatus:          "EVSEStatus",
	NsAuthorization:       "Authorization",
	NsReservation:         "Reservation",
	NsAuthenticationData:  "AuthenticationData",
	NsMobileAuthorization: "MobileAuthorization",
}

// AllNamespaces lists the OICP namespaces in declaration order.
var AllNamespaces = []string{
	NsCommonTypes,
	NsEVSEData,
	NsEVSEStatus,
	NsAuthorization,
	NsReservation,
	NsAuthenticationData,
	NsMobileAuthorization,
}

// Prefix returns the canonical prefix of an OICP namespace, or "" if unknown.
func Prefix(ns string) string {
	return prefixes[ns]
}

// Name returns the prefixed element name for ns and local.
func Name(ns, local string) string {
	p := Prefix(ns)
	if p == "" {
		return local
	}
	return p + ":" + local
}

// NewElement creates a detached element in namespace ns.
func NewElement(ns, local string) *etree.Element {
	return etree.NewElement(Name(ns, local))
}

// DeclareNamespaces adds xmlns declarations for the given namespaces to e.
// With no arguments every OICP namespace is declared. Existing declarations
// are left alone.
func DeclareNamespaces(e *etree.Element, namespaces ...string) {
	if len(namespaces) == 0 {
		namespaces = AllNamespaces
	}
	for _, ns := range namespaces {
		key := "xmlns:" + Prefix(ns)
		if e.SelectAttr(key) == nil {
			e.CreateAttr(key, ns)
		}
	}
}

// Document wraps root in a new document carrying an XML declaration and
// xmlns declarations for every OICP namespace.
func Document(root *etree.Element) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	DeclareNamespaces(root)
	doc.SetRoot(root)
	return doc
}

// WriteXML serializes root as a standalone document.
func WriteXML(root *etree.Element, indent bool) ([]byte, error) {
	doc := Document(root)
	if indent {
		doc.Indent(2)
	}
	return doc.WriteToBytes()
}

// ReadXML parses data and returns the document root.
func ReadXML(data []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, ErrEmptyDocument
	}
	return root, nil
}
