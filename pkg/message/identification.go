// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"errors"
	"hash/fnv"
	"strings"

	"github.com/beevik/etree"
	"github.com/sirosfoundation/go-oicp/pkg/ids"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
)

// IdentificationKind names an Identification alternative. The declaration
// order is the comparison precedence.
type IdentificationKind int

const (
	IdentificationNone IdentificationKind = iota
	IdentificationRFIDUID
	IdentificationRFID
	IdentificationQRCode
	IdentificationPlugAndCharge
	IdentificationRemote
)

func (k IdentificationKind) String() string {
	switch k {
	case IdentificationRFIDUID:
		return "RFIDMifareFamilyIdentification"
	case IdentificationRFID:
		return "RFIDIdentification"
	case IdentificationQRCode:
		return "QRCodeIdentification"
	case IdentificationPlugAndCharge:
		return "PlugAndChargeIdentification"
	case IdentificationRemote:
		return "RemoteIdentification"
	}
	return "None"
}

// identificationNamespaces are the parent namespaces an Identification
// element is looked up in, in order.
var identificationNamespaces = []string{
	wire.NsAuthorization,
	wire.NsReservation,
	wire.NsAuthenticationData,
}

// Identification is the choice of ways a driver authenticates.
//
// The factories and IdentificationBuilder.Build produce exactly one
// alternative. Parsing is permissive and keeps every alternative found on
// the wire. Comparison walks the alternatives in precedence order
// (RFID UID, RFIDIdentification, QR code, Plug&Charge, remote) and the
// first alternative present on both sides decides. Without a shared
// alternative the String forms are compared.
type Identification struct {
	uid           ids.UID
	rfid          *RFIDIdentification
	qrCode        *QRCodeIdentification
	plugAndCharge ids.EVCOID
	remote        ids.EVCOID
}

// FromUID returns an Identification holding a Mifare family UID, or nil
// when uid is zero.
func FromUID(uid ids.UID) *Identification {
	if uid.IsZero() {
		return nil
	}
	return &Identification{uid: uid}
}

// FromRFID returns an Identification holding a full RFID description, or
// nil when r is nil.
func FromRFID(r *RFIDIdentification) *Identification {
	if r == nil {
		return nil
	}
	c := *r
	return &Identification{rfid: &c}
}

// FromQRCodeIdentification returns an Identification holding a QR code
// identification, or nil when q is nil.
func FromQRCodeIdentification(q *QRCodeIdentification) *Identification {
	if q == nil {
		return nil
	}
	c := *q
	return &Identification{qrCode: &c}
}

// FromPlugAndChargeIdentification returns an Identification for ISO 15118
// Plug&Charge, or nil when id is zero.
func FromPlugAndChargeIdentification(id ids.EVCOID) *Identification {
	if id.IsZero() {
		return nil
	}
	return &Identification{plugAndCharge: id}
}

// FromRemoteIdentification returns an Identification for a remote start,
// or nil when id is zero.
func FromRemoteIdentification(id ids.EVCOID) *Identification {
	if id.IsZero() {
		return nil
	}
	return &Identification{remote: id}
}

// UID returns the Mifare family UID alternative.
func (id Identification) UID() (ids.UID, bool) { return id.uid, !id.uid.IsZero() }

// RFID returns the RFIDIdentification alternative.
func (id Identification) RFID() (RFIDIdentification, bool) {
	if id.rfid == nil {
		return RFIDIdentification{}, false
	}
	return *id.rfid, true
}

// QRCode returns the QRCodeIdentification alternative.
func (id Identification) QRCode() (QRCodeIdentification, bool) {
	if id.qrCode == nil {
		return QRCodeIdentification{}, false
	}
	return *id.qrCode, true
}

// PlugAndCharge returns the Plug&Charge contract id.
func (id Identification) PlugAndCharge() (ids.EVCOID, bool) {
	return id.plugAndCharge, !id.plugAndCharge.IsZero()
}

// Remote returns the remote identification contract id.
func (id Identification) Remote() (ids.EVCOID, bool) { return id.remote, !id.remote.IsZero() }

// Kinds lists the alternatives present, in precedence order.
func (id Identification) Kinds() []IdentificationKind {
	var out []IdentificationKind
	if !id.uid.IsZero() {
		out = append(out, IdentificationRFIDUID)
	}
	if id.rfid != nil {
		out = append(out, IdentificationRFID)
	}
	if id.qrCode != nil {
		out = append(out, IdentificationQRCode)
	}
	if !id.plugAndCharge.IsZero() {
		out = append(out, IdentificationPlugAndCharge)
	}
	if !id.remote.IsZero() {
		out = append(out, IdentificationRemote)
	}
	return out
}

// Kind returns the first alternative present.
func (id Identification) Kind() IdentificationKind {
	if k := id.Kinds(); len(k) > 0 {
		return k[0]
	}
	return IdentificationNone
}

// IsZero reports whether no alternative is present.
func (id Identification) IsZero() bool { return id.Kind() == IdentificationNone }

// Compare orders by the first alternative present on both sides.
func (id Identification) Compare(other Identification) int {
	switch {
	case !id.uid.IsZero() && !other.uid.IsZero():
		return id.uid.Compare(other.uid)
	case id.rfid != nil && other.rfid != nil:
		return id.rfid.Compare(*other.rfid)
	case id.qrCode != nil && other.qrCode != nil:
		return id.qrCode.Compare(*other.qrCode)
	case !id.plugAndCharge.IsZero() && !other.plugAndCharge.IsZero():
		return id.plugAndCharge.Compare(other.plugAndCharge)
	case !id.remote.IsZero() && !other.remote.IsZero():
		return id.remote.Compare(other.remote)
	}
	return strings.Compare(id.String(), other.String())
}

// Equal reports whether Compare is zero.
func (id Identification) Equal(other Identification) bool {
	return id.Compare(other) == 0
}

// Hash derives a hash from the first alternative present.
func (id Identification) Hash() uint64 {
	h := fnv.New64a()
	kind := id.Kind()
	h.Write([]byte{byte(kind)})
	switch kind {
	case IdentificationRFIDUID:
		h.Write([]byte(strings.ToUpper(id.uid.String())))
	case IdentificationRFID:
		h.Write([]byte(strings.ToUpper(id.rfid.uid.String())))
	case IdentificationQRCode:
		h.Write([]byte(id.qrCode.evcoID.String()))
	case IdentificationPlugAndCharge:
		h.Write([]byte(id.plugAndCharge.String()))
	case IdentificationRemote:
		h.Write([]byte(id.remote.String()))
	}
	return h.Sum64()
}

// String renders the first alternative present.
func (id Identification) String() string {
	switch id.Kind() {
	case IdentificationRFIDUID:
		return "UID: " + id.uid.String()
	case IdentificationRFID:
		return "RFID: " + id.rfid.String()
	case IdentificationQRCode:
		return "QRCode: " + id.qrCode.String()
	case IdentificationPlugAndCharge:
		return "PlugAndCharge: " + id.plugAndCharge.String()
	case IdentificationRemote:
		return "Remote: " + id.remote.String()
	}
	return ""
}

// ToBuilder copies every alternative into a builder.
func (id Identification) ToBuilder() *IdentificationBuilder {
	b := &IdentificationBuilder{
		UID:           id.uid,
		PlugAndCharge: id.plugAndCharge,
		Remote:        id.remote,
	}
	if id.rfid != nil {
		r := *id.rfid
		b.RFID = &r
	}
	if id.qrCode != nil {
		q := *id.qrCode
		b.QRCode = &q
	}
	return b
}

// IdentificationBuilder is the mutable form of Identification.
type IdentificationBuilder struct {
	UID           ids.UID
	RFID          *RFIDIdentification
	QRCode        *QRCodeIdentification
	PlugAndCharge ids.EVCOID
	Remote        ids.EVCOID
}

// Build returns the Identification. Exactly one alternative must be set.
func (b *IdentificationBuilder) Build() (Identification, error) {
	id := Identification{
		uid:           b.UID,
		plugAndCharge: b.PlugAndCharge,
		remote:        b.Remote,
	}
	if b.RFID != nil {
		r := *b.RFID
		id.rfid = &r
	}
	if b.QRCode != nil {
		q := *b.QRCode
		id.qrCode = &q
	}
	switch n := len(id.Kinds()); {
	case n == 0:
		return Identification{}, fieldError("Identification", "alternative", ErrMissingField)
	case n > 1:
		return Identification{}, fieldError("Identification", "alternative",
			errors.New("exactly one alternative must be set"))
	}
	return id, nil
}

// ToXML renders a {parentNS}:Identification element holding every
// alternative that is set.
func (id Identification) ToXML(parentNS string, custom wire.CustomXMLSerializer[Identification]) *etree.Element {
	e := wire.NewElement(parentNS, "Identification")
	if !id.uid.IsZero() {
		m := wire.AddElement(e, wire.NsCommonTypes, "RFIDMifareFamilyIdentification")
		wire.AddText(m, wire.NsCommonTypes, "UID", id.uid.String())
	}
	if id.rfid != nil {
		e.AddChild(id.rfid.ToXML(nil))
	}
	if id.qrCode != nil {
		e.AddChild(id.qrCode.ToXML(nil))
	}
	if !id.plugAndCharge.IsZero() {
		p := wire.AddElement(e, wire.NsCommonTypes, "PlugAndChargeIdentification")
		wire.AddText(p, wire.NsCommonTypes, "EvcoID", id.plugAndCharge.String())
	}
	if !id.remote.IsZero() {
		r := wire.AddElement(e, wire.NsCommonTypes, "RemoteIdentification")
		wire.AddText(r, wire.NsCommonTypes, "EvcoID", id.remote.String())
	}
	return custom.Apply(id, e)
}

// findIdentification accepts either the Identification element itself or
// its parent, trying each known parent namespace in turn.
func findIdentification(e *etree.Element) *etree.Element {
	for _, ns := range identificationNamespaces {
		if wire.Is(e, ns, "Identification") {
			return e
		}
	}
	for _, ns := range identificationNamespaces {
		if c := wire.Child(e, ns, "Identification"); c != nil {
			return c
		}
	}
	return nil
}

func parseEVCOChild(e *etree.Element, local string) (ids.EVCOID, bool, error) {
	c := wire.Child(e, wire.NsCommonTypes, local)
	if c == nil {
		return ids.EVCOID{}, false, nil
	}
	text, err := wire.RequiredText(c, wire.NsCommonTypes, "EvcoID")
	if err != nil {
		return ids.EVCOID{}, true, err
	}
	evco, err := ids.ParseEVCOID(text)
	return evco, true, err
}

func parseIdentificationXML(e *etree.Element) (Identification, error) {
	const typ = "Identification"
	node := findIdentification(e)
	if node == nil {
		return Identification{}, parseError(typ, "", wire.ErrMissingElement)
	}
	var id Identification
	if m := wire.Child(node, wire.NsCommonTypes, "RFIDMifareFamilyIdentification"); m != nil {
		text, err := wire.RequiredText(m, wire.NsCommonTypes, "UID")
		if err != nil {
			return Identification{}, parseError(typ, "RFIDMifareFamilyIdentification", err)
		}
		if id.uid, err = ids.ParseUID(text); err != nil {
			return Identification{}, parseError(typ, "RFIDMifareFamilyIdentification", err)
		}
	}
	if c := wire.Child(node, wire.NsCommonTypes, "RFIDIdentification"); c != nil {
		r, err := parseRFIDIdentificationXML(c)
		if err != nil {
			return Identification{}, parseError(typ, "RFIDIdentification", err)
		}
		id.rfid = &r
	}
	if c := wire.Child(node, wire.NsCommonTypes, "QRCodeIdentification"); c != nil {
		q, err := parseQRCodeIdentificationXML(c)
		if err != nil {
			return Identification{}, parseError(typ, "QRCodeIdentification", err)
		}
		id.qrCode = &q
	}
	var err error
	if id.plugAndCharge, _, err = parseEVCOChild(node, "PlugAndChargeIdentification"); err != nil {
		return Identification{}, parseError(typ, "PlugAndChargeIdentification", err)
	}
	if id.remote, _, err = parseEVCOChild(node, "RemoteIdentification"); err != nil {
		return Identification{}, parseError(typ, "RemoteIdentification", err)
	}
	if id.IsZero() {
		return Identification{}, parseError(typ, "", wire.ErrMissingElement)
	}
	return id, nil
}

// ParseIdentificationXML reads an Identification element, or the element
// holding one, in the Authorization, Reservation or AuthenticationData
// namespace. It fails unless at least one alternative is recognized.
func ParseIdentificationXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[Identification]) (Identification, error) {
	id, err := parseIdentificationXML(e)
	return finish(id, err, e, onError, func(v Identification) Identification { return custom.Apply(e, v) })
}

// TryParseIdentificationXML is ParseIdentificationXML reporting success as a bool.
func TryParseIdentificationXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[Identification]) (Identification, bool) {
	id, err := ParseIdentificationXML(e, onError, custom)
	return id, err == nil
}

// ToJSON renders the JSON form, one property per alternative set.
func (id Identification) ToJSON(custom wire.CustomJSONSerializer[Identification]) wire.JSONObject {
	obj := wire.JSONObject{}
	if !id.uid.IsZero() {
		obj["rfidMifareFamilyIdentification"] = wire.JSONObject{"uid": id.uid.String()}
	}
	if id.rfid != nil {
		obj["rfidIdentification"] = id.rfid.ToJSON(nil)
	}
	if id.qrCode != nil {
		obj["qrCodeIdentification"] = id.qrCode.ToJSON(nil)
	}
	if !id.plugAndCharge.IsZero() {
		obj["plugAndChargeIdentification"] = wire.JSONObject{"evcoId": id.plugAndCharge.String()}
	}
	if !id.remote.IsZero() {
		obj["remoteIdentification"] = wire.JSONObject{"evcoId": id.remote.String()}
	}
	return custom.Apply(id, obj)
}

func parseEVCOProperty(obj wire.JSONObject, key string) (ids.EVCOID, error) {
	o, ok, err := obj.Object(key)
	if err != nil || !ok {
		return ids.EVCOID{}, err
	}
	text, err := o.RequiredText("evcoId")
	if err != nil {
		return ids.EVCOID{}, err
	}
	return ids.ParseEVCOID(text)
}

func parseIdentificationJSON(obj wire.JSONObject) (Identification, error) {
	const typ = "Identification"
	var id Identification
	m, ok, err := obj.Object("rfidMifareFamilyIdentification")
	if err != nil {
		return Identification{}, parseError(typ, "rfidMifareFamilyIdentification", err)
	}
	if ok {
		text, err := m.RequiredText("uid")
		if err != nil {
			return Identification{}, parseError(typ, "rfidMifareFamilyIdentification", err)
		}
		if id.uid, err = ids.ParseUID(text); err != nil {
			return Identification{}, parseError(typ, "rfidMifareFamilyIdentification", err)
		}
	}
	r, ok, err := obj.Object("rfidIdentification")
	if err != nil {
		return Identification{}, parseError(typ, "rfidIdentification", err)
	}
	if ok {
		rfid, err := parseRFIDIdentificationJSON(r)
		if err != nil {
			return Identification{}, parseError(typ, "rfidIdentification", err)
		}
		id.rfid = &rfid
	}
	q, ok, err := obj.Object("qrCodeIdentification")
	if err != nil {
		return Identification{}, parseError(typ, "qrCodeIdentification", err)
	}
	if ok {
		qr, err := parseQRCodeIdentificationJSON(q)
		if err != nil {
			return Identification{}, parseError(typ, "qrCodeIdentification", err)
		}
		id.qrCode = &qr
	}
	if id.plugAndCharge, err = parseEVCOProperty(obj, "plugAndChargeIdentification"); err != nil {
		return Identification{}, parseError(typ, "plugAndChargeIdentification", err)
	}
	if id.remote, err = parseEVCOProperty(obj, "remoteIdentification"); err != nil {
		return Identification{}, parseError(typ, "remoteIdentification", err)
	}
	if id.IsZero() {
		return Identification{}, parseError(typ, "", wire.ErrMissingElement)
	}
	return id, nil
}

// ParseIdentificationJSON reads the JSON form.
func ParseIdentificationJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[Identification]) (Identification, error) {
	id, err := parseIdentificationJSON(obj)
	return finish(id, err, obj, onError, func(v Identification) Identification { return custom.Apply(obj, v) })
}

// TryParseIdentificationJSON is ParseIdentificationJSON reporting success as a bool.
func TryParseIdentificationJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[Identification]) (Identification, bool) {
	id, err := ParseIdentificationJSON(obj, onError, custom)
	return id, err == nil
}
