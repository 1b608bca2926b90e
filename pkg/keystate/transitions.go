package keystate

import (
	"strconv"
	"time"

	"github.com/certen/keri-core/pkg/event"
)

// FromInception constructs the initial KeyState for a prefix from its
// inception event. e must have Type == event.Inception.
func FromInception(e event.Event) (KeyState, error) {
	if e.Type != event.Inception {
		return KeyState{}, ErrWrongEventType
	}
	f := e.Icp

	kt, err := parseDecimalThreshold(f.Kt)
	if err != nil {
		return KeyState{}, err
	}
	nt, err := parseDecimalThreshold(f.Nt)
	if err != nil {
		return KeyState{}, err
	}
	bt, err := parseDecimalThreshold(f.Bt)
	if err != nil {
		return KeyState{}, err
	}

	return KeyState{
		Prefix:            f.I,
		Sequence:          0,
		Digest:            f.D,
		Keys:              append([]string(nil), f.K...),
		NextKeysDigest:    append([]string(nil), f.N...),
		Threshold:         kt,
		NextThreshold:     nt,
		Witnesses:         append([]string(nil), f.B...),
		WitnessThreshold:  bt,
		LastEventType:     event.Inception,
		EstablishmentOnly: hasConfigTrait(f.C, "EO"),
		Timestamp:         time.Now().UTC(),
	}, nil
}

// ApplyRotation validates and folds a rotation event onto state,
// returning the successor state. It checks the sequence link, the
// prior-digest link, and the rotation's keys against the commitment
// state published at the previous establishment event; it then
// applies the witness cut/add procedure.
func ApplyRotation(state KeyState, e event.Event) (KeyState, error) {
	if e.Type != event.Rotation {
		return KeyState{}, ErrWrongEventType
	}
	f := e.Rot

	seq, err := strconv.ParseUint(f.S, 16, 64)
	if err != nil {
		return KeyState{}, ErrSequenceMismatch
	}
	if seq != state.Sequence+1 {
		return KeyState{}, ErrSequenceMismatch
	}
	if f.P != state.Digest {
		return KeyState{}, ErrPriorDigestMismatch
	}

	nt, err := parseHexThreshold(f.Nt)
	if err != nil {
		return KeyState{}, err
	}
	if !event.VerifyCommitment(state.NextKeysDigest, f.K, nt) {
		return KeyState{}, ErrCommitmentMismatch
	}

	kt, err := parseHexThreshold(f.Kt)
	if err != nil {
		return KeyState{}, err
	}
	bt, err := parseHexThreshold(f.Bt)
	if err != nil {
		return KeyState{}, err
	}

	return KeyState{
		Prefix:            state.Prefix,
		Sequence:          seq,
		Digest:            f.D,
		Keys:              append([]string(nil), f.K...),
		NextKeysDigest:    append([]string(nil), f.N...),
		Threshold:         kt,
		NextThreshold:     nt,
		Witnesses:         rotateWitnesses(state.Witnesses, f.Br, f.Ba),
		WitnessThreshold:  bt,
		Delegator:         state.Delegator,
		LastEventType:     event.Rotation,
		EstablishmentOnly: state.EstablishmentOnly,
		Timestamp:         time.Now().UTC(),
	}, nil
}

// ApplyInteraction validates and folds an interaction event onto
// state. Only the sequence and prior-digest links are checked; keys,
// thresholds, and witnesses are carried forward unchanged. Refused
// when state.EstablishmentOnly is set.
func ApplyInteraction(state KeyState, e event.Event) (KeyState, error) {
	if e.Type != event.Interaction {
		return KeyState{}, ErrWrongEventType
	}
	if state.EstablishmentOnly {
		return KeyState{}, ErrEstablishmentOnly
	}
	f := e.Ixn

	seq, err := strconv.ParseUint(f.S, 16, 64)
	if err != nil {
		return KeyState{}, ErrSequenceMismatch
	}
	if seq != state.Sequence+1 {
		return KeyState{}, ErrSequenceMismatch
	}
	if f.P != state.Digest {
		return KeyState{}, ErrPriorDigestMismatch
	}

	next := state
	next.Sequence = seq
	next.Digest = f.D
	next.LastEventType = event.Interaction
	next.Timestamp = time.Now().UTC()
	return next, nil
}
