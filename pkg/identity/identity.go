// Package identity composes the event, keystate, and kel packages
// into the high-level operations a caller actually wants: create an
// identifier, rotate its keys, anchor data via interaction, verify
// its chain, and export/import it whole.
package identity

import (
	"fmt"
	"time"

	"github.com/certen/keri-core/pkg/event"
	"github.com/certen/keri-core/pkg/kel"
	"github.com/certen/keri-core/pkg/keys"
	"github.com/certen/keri-core/pkg/keystate"
)

// Identity is a thin facade over a single KEL instance.
type Identity struct {
	log *kel.KEL
}

// New wraps log in a facade.
func New(log *kel.KEL) *Identity {
	return &Identity{log: log}
}

// CreateIdentifierParams collects the inputs to CreateIdentifier.
type CreateIdentifierParams struct {
	Signer           keys.Signer
	NextSigner       keys.Signer
	Witnesses        []string
	WitnessThreshold int
	Config           []string
	Anchors          []event.Anchor
}

// CreateIdentifier derives a fresh self-addressing prefix from an
// inception event built over Signer/NextSigner, signs it, and appends
// it to the log, returning the resulting key state.
func (id *Identity) CreateIdentifier(p CreateIdentifierParams) (keystate.KeyState, error) {
	pubkey, err := p.Signer.Verfer().Export()
	if err != nil {
		return keystate.KeyState{}, fmt.Errorf("identity: export signing key: %w", err)
	}
	nextPubkey, err := p.NextSigner.Verfer().Export()
	if err != nil {
		return keystate.KeyState{}, fmt.Errorf("identity: export next key: %w", err)
	}
	commitment := event.ComputeCommitment([]string{nextPubkey}, 1)

	icp, err := event.BuildInception(event.InceptionParams{
		Keys:             []string{pubkey},
		NextKeysDigest:   commitment,
		Threshold:        1,
		NextThreshold:    1,
		Witnesses:        p.Witnesses,
		WitnessThreshold: p.WitnessThreshold,
		Config:           p.Config,
		Anchors:          p.Anchors,
	})
	if err != nil {
		return keystate.KeyState{}, err
	}

	serialization, err := icp.CanonicalJSON()
	if err != nil {
		return keystate.KeyState{}, err
	}
	signature := p.Signer.Sign(serialization)

	if _, err := id.log.Append(icp.Icp.I, icp, [][]byte{signature}); err != nil {
		return keystate.KeyState{}, err
	}
	return id.log.BuildKeyState(icp.Icp.I)
}

// RotateKeysParams collects the inputs to RotateKeys.
type RotateKeysParams struct {
	Prefix        string
	CurrentSigner keys.Signer
	NewSigner     keys.Signer
	NextSigner    keys.Signer
	WitnessCuts   []string
	WitnessAdds   []string
	Anchors       []event.Anchor
}

// RotateKeys builds and appends a rotation event extending prefix's
// current key state, committing to a fresh next-keys digest and
// applying any witness cuts/adds.
func (id *Identity) RotateKeys(p RotateKeysParams) (keystate.KeyState, error) {
	state, err := id.log.BuildKeyState(p.Prefix)
	if err != nil {
		return keystate.KeyState{}, err
	}

	newPubkey, err := p.NewSigner.Verfer().Export()
	if err != nil {
		return keystate.KeyState{}, fmt.Errorf("identity: export new key: %w", err)
	}
	nextPubkey, err := p.NextSigner.Verfer().Export()
	if err != nil {
		return keystate.KeyState{}, fmt.Errorf("identity: export next key: %w", err)
	}
	commitment := event.ComputeCommitment([]string{nextPubkey}, 1)

	rot, err := event.BuildRotation(event.RotationParams{
		Prefix:           state.Prefix,
		Sequence:         state.Sequence + 1,
		PriorDigest:      state.Digest,
		Keys:             []string{newPubkey},
		NextKeysDigest:   commitment,
		Threshold:        1,
		NextThreshold:    1,
		WitnessCuts:      p.WitnessCuts,
		WitnessAdds:      p.WitnessAdds,
		WitnessThreshold: state.WitnessThreshold,
		Anchors:          p.Anchors,
	})
	if err != nil {
		return keystate.KeyState{}, err
	}

	serialization, err := rot.CanonicalJSON()
	if err != nil {
		return keystate.KeyState{}, err
	}
	signature := p.CurrentSigner.Sign(serialization)

	if _, err := id.log.Append(state.Prefix, rot, [][]byte{signature}); err != nil {
		return keystate.KeyState{}, err
	}
	return id.log.BuildKeyState(state.Prefix)
}

// CreateInteractionParams collects the inputs to CreateInteraction.
type CreateInteractionParams struct {
	Prefix  string
	Signer  keys.Signer
	Anchors []event.Anchor
}

// CreateInteraction anchors data against prefix's current key state.
// Refused when the prefix's establishment_only trait is set.
func (id *Identity) CreateInteraction(p CreateInteractionParams) (keystate.KeyState, error) {
	state, err := id.log.BuildKeyState(p.Prefix)
	if err != nil {
		return keystate.KeyState{}, err
	}
	if state.EstablishmentOnly {
		return keystate.KeyState{}, keystate.ErrEstablishmentOnly
	}

	ixn, err := event.BuildInteraction(event.InteractionParams{
		Prefix:      state.Prefix,
		Sequence:    state.Sequence + 1,
		PriorDigest: state.Digest,
		Anchors:     p.Anchors,
	})
	if err != nil {
		return keystate.KeyState{}, err
	}

	serialization, err := ixn.CanonicalJSON()
	if err != nil {
		return keystate.KeyState{}, err
	}
	signature := p.Signer.Sign(serialization)

	if _, err := id.log.Append(state.Prefix, ixn, [][]byte{signature}); err != nil {
		return keystate.KeyState{}, err
	}
	return id.log.BuildKeyState(state.Prefix)
}

// VerifyIdentifier delegates to the log's chain-continuity check.
func (id *Identity) VerifyIdentifier(prefix string) error {
	return id.log.VerifyChain(prefix)
}

// ExportIdentifier serializes a snapshot of prefix's key state
// (sequence, keys, threshold, witnesses, witness threshold) and its
// full event history into a portable envelope.
func (id *Identity) ExportIdentifier(prefix string) (*Envelope, error) {
	state, err := id.log.BuildKeyState(prefix)
	if err != nil {
		return nil, err
	}
	entries, err := id.log.GetEvents(prefix, 0, 0, 0)
	if err != nil {
		return nil, err
	}

	events := make([]EventEnvelope, len(entries))
	for i, e := range entries {
		raw, err := marshalEvent(e.Event)
		if err != nil {
			return nil, err
		}
		events[i] = EventEnvelope{
			Sequence:   e.Sequence,
			Event:      raw,
			Signatures: encodeSignatures(e.Signatures),
			Receipts:   append([]string(nil), e.Receipts...),
			Timestamp:  e.Timestamp.UTC().Format(time.RFC3339),
		}
	}

	return &Envelope{
		Version:    EnvelopeVersion,
		Prefix:     prefix,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		KeyState: KeyStateSnapshot{
			Sequence:         state.Sequence,
			Keys:             state.Keys,
			Threshold:        state.Threshold,
			Witnesses:        state.Witnesses,
			WitnessThreshold: state.WitnessThreshold,
		},
		Events: events,
	}, nil
}

// ImportIdentifier clears env.Prefix and re-appends its events in
// order. It halts at the first event that fails to append, leaving
// whatever prefix earlier in the list already succeeded; callers
// needing all-or-nothing import must Clear the prefix themselves on
// failure.
func (id *Identity) ImportIdentifier(env *Envelope) error {
	id.log.Clear(env.Prefix)

	for _, ee := range env.Events {
		ev, err := event.ParseEvent(ee.Event)
		if err != nil {
			return fmt.Errorf("identity: import seq %d: %w", ee.Sequence, err)
		}
		sigs, err := decodeSignatures(ee.Signatures)
		if err != nil {
			return fmt.Errorf("identity: import seq %d: %w", ee.Sequence, err)
		}
		if _, err := id.log.Append(env.Prefix, ev, sigs); err != nil {
			return fmt.Errorf("identity: import seq %d: %w", ee.Sequence, err)
		}
	}
	return nil
}
