// Package event implements the KERI event object model: inception,
// rotation, and interaction events, their canonical serialization,
// self-addressing identifier (SAID) derivation, and per-type
// validation.
package event

import "encoding/json"

// Type is the event-type tag carried in every event's "t" field.
type Type string

const (
	Inception   Type = "icp"
	Rotation    Type = "rot"
	Interaction Type = "ixn"

	// Reserved for a future delegation extension; recognized by the
	// type enum but refused by this core's validators and by KEL append.
	DelegatedInception Type = "dip"
	DelegatedRotation  Type = "drt"
)

// Anchor is an opaque JSON object, typically referencing an external
// credential or document. The core only validates that it is a JSON
// object carrying at least i, s, and d keys; its content is otherwise
// untouched, preserving whatever byte-for-byte shape the caller
// supplied.
type Anchor = json.RawMessage

// InceptionFields holds the fields unique to, and the shared header
// fields of, an inception event, in canonical wire order:
// json.Marshal emits struct fields in declaration order, so this
// order IS the canonical wire order.
type InceptionFields struct {
	V  string   `json:"v"`
	T  string   `json:"t"`
	D  string   `json:"d"`
	I  string   `json:"i"`
	S  string   `json:"s"`
	Kt string   `json:"kt"`
	K  []string `json:"k"`
	Nt string   `json:"nt"`
	N  []string `json:"n"`
	Bt string   `json:"bt"`
	B  []string `json:"b"`
	C  []string `json:"c"`
	A  []Anchor `json:"a"`
}

// RotationFields holds the fields of a rotation event, in canonical order.
type RotationFields struct {
	V  string   `json:"v"`
	T  string   `json:"t"`
	D  string   `json:"d"`
	I  string   `json:"i"`
	S  string   `json:"s"`
	P  string   `json:"p"`
	Kt string   `json:"kt"`
	K  []string `json:"k"`
	Nt string   `json:"nt"`
	N  []string `json:"n"`
	Bt string   `json:"bt"`
	Br []string `json:"br"`
	Ba []string `json:"ba"`
	A  []Anchor `json:"a"`
}

// InteractionFields holds the fields of an interaction event, in canonical order.
type InteractionFields struct {
	V string   `json:"v"`
	T string   `json:"t"`
	D string   `json:"d"`
	I string   `json:"i"`
	S string   `json:"s"`
	P string   `json:"p"`
	A []Anchor `json:"a"`
}

// Event is a tagged variant over the three event kinds this core
// supports. Exactly one of Icp, Rot, Ixn is non-nil, matching Type.
type Event struct {
	Type Type
	Icp  *InceptionFields
	Rot  *RotationFields
	Ixn  *InteractionFields
}
