package event

import (
	"encoding/json"
	"fmt"
)

// Prefix returns the event's identifier prefix (the "i" field).
func (e Event) Prefix() string {
	switch e.Type {
	case Inception:
		return e.Icp.I
	case Rotation:
		return e.Rot.I
	case Interaction:
		return e.Ixn.I
	default:
		return ""
	}
}

// Digest returns the event's own SAID (the "d" field).
func (e Event) Digest() string {
	switch e.Type {
	case Inception:
		return e.Icp.D
	case Rotation:
		return e.Rot.D
	case Interaction:
		return e.Ixn.D
	default:
		return ""
	}
}

// PriorDigest returns the "p" field, or "" for an inception event
// (which has no predecessor).
func (e Event) PriorDigest() string {
	switch e.Type {
	case Rotation:
		return e.Rot.P
	case Interaction:
		return e.Ixn.P
	default:
		return ""
	}
}

// Seq returns the event's sequence number, or an error if the "s"
// field is malformed.
func (e Event) Seq() (uint64, error) {
	switch e.Type {
	case Inception:
		return parseSeq(e.Icp.S)
	case Rotation:
		return parseSeq(e.Rot.S)
	case Interaction:
		return parseSeq(e.Ixn.S)
	case DelegatedInception, DelegatedRotation:
		return 0, newError(ErrUnsupportedType, string(e.Type))
	default:
		return 0, newError(ErrUnknownEventType, string(e.Type))
	}
}

// Anchors returns the event's anchor list.
func (e Event) Anchors() []Anchor {
	switch e.Type {
	case Inception:
		return e.Icp.A
	case Rotation:
		return e.Rot.A
	case Interaction:
		return e.Ixn.A
	default:
		return nil
	}
}

// CanonicalJSON serializes the event as it stands, with its SAID in d
// (and, for inception, in i): the bytes that are signed and compared
// for idempotent appends. These are not the bytes the SAID was
// computed over, since the builders digest the event while d (and,
// for inception, i) still hold the empty placeholder.
func (e Event) CanonicalJSON() ([]byte, error) {
	switch e.Type {
	case Inception:
		return json.Marshal(e.Icp)
	case Rotation:
		return json.Marshal(e.Rot)
	case Interaction:
		return json.Marshal(e.Ixn)
	default:
		return nil, newError(ErrUnknownEventType, string(e.Type))
	}
}

// Validate dispatches to the per-type structural validator.
func (e Event) Validate() error {
	switch e.Type {
	case Inception:
		return validateInception(e.Icp)
	case Rotation:
		return validateRotation(e.Rot)
	case Interaction:
		return validateInteraction(e.Ixn)
	case DelegatedInception, DelegatedRotation:
		return newError(ErrUnsupportedType, string(e.Type))
	case "":
		return newError(ErrMissingField, "t")
	default:
		return newError(ErrUnknownEventType, string(e.Type))
	}
}

// String renders the event for diagnostics: its type, prefix, and sequence.
func (e Event) String() string {
	seq, err := e.Seq()
	if err != nil {
		return fmt.Sprintf("<invalid %s event>", e.Type)
	}
	return fmt.Sprintf("%s/%s@%d", e.Prefix(), e.Type, seq)
}
