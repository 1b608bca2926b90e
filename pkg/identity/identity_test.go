package identity_test

import (
	"testing"

	"github.com/certen/keri-core/pkg/event"
	"github.com/certen/keri-core/pkg/identity"
	"github.com/certen/keri-core/pkg/kel"
	"github.com/certen/keri-core/pkg/keys"
)

func mustSigner(t *testing.T) keys.Signer {
	t.Helper()
	s, err := keys.NewRandomSigner(true)
	if err != nil {
		t.Fatalf("NewRandomSigner: %v", err)
	}
	return s
}

func TestCreateRotateInteractLifecycle(t *testing.T) {
	log := kel.New()
	id := identity.New(log)

	s1, s2, s3, s4 := mustSigner(t), mustSigner(t), mustSigner(t), mustSigner(t)

	state, err := id.CreateIdentifier(identity.CreateIdentifierParams{
		Signer:           s1,
		NextSigner:       s2,
		Witnesses:        []string{"w1", "w2"},
		WitnessThreshold: 2,
	})
	if err != nil {
		t.Fatalf("CreateIdentifier: %v", err)
	}
	if state.Sequence != 0 {
		t.Fatalf("sequence = %d, want 0", state.Sequence)
	}
	prefix := state.Prefix

	state, err = id.RotateKeys(identity.RotateKeysParams{
		Prefix:        prefix,
		CurrentSigner: s1,
		NewSigner:     s2,
		NextSigner:    s3,
		WitnessCuts:   []string{"w1"},
		WitnessAdds:   []string{"w3"},
	})
	if err != nil {
		t.Fatalf("RotateKeys: %v", err)
	}
	if state.Sequence != 1 {
		t.Fatalf("sequence = %d, want 1", state.Sequence)
	}
	wantWitnesses := []string{"w2", "w3"}
	if len(state.Witnesses) != 2 || state.Witnesses[0] != wantWitnesses[0] || state.Witnesses[1] != wantWitnesses[1] {
		t.Fatalf("witnesses = %v, want %v", state.Witnesses, wantWitnesses)
	}

	anchor := event.Anchor(`{"i":"Esome","s":"0","d":"Edigest"}`)
	state, err = id.CreateInteraction(identity.CreateInteractionParams{
		Prefix:  prefix,
		Signer:  s2,
		Anchors: []event.Anchor{anchor},
	})
	if err != nil {
		t.Fatalf("CreateInteraction: %v", err)
	}
	if state.Sequence != 2 {
		t.Fatalf("sequence = %d, want 2", state.Sequence)
	}

	if err := id.VerifyIdentifier(prefix); err != nil {
		t.Fatalf("VerifyIdentifier: %v", err)
	}

	_ = s4
}

func TestExportImportRoundTrip(t *testing.T) {
	log := kel.New()
	id := identity.New(log)
	s1, s2, s3 := mustSigner(t), mustSigner(t), mustSigner(t)

	state, err := id.CreateIdentifier(identity.CreateIdentifierParams{Signer: s1, NextSigner: s2})
	if err != nil {
		t.Fatalf("CreateIdentifier: %v", err)
	}
	prefix := state.Prefix

	if _, err := id.RotateKeys(identity.RotateKeysParams{
		Prefix:        prefix,
		CurrentSigner: s1,
		NewSigner:     s2,
		NextSigner:    s3,
	}); err != nil {
		t.Fatalf("RotateKeys: %v", err)
	}
	if _, err := id.CreateInteraction(identity.CreateInteractionParams{Prefix: prefix, Signer: s2}); err != nil {
		t.Fatalf("CreateInteraction: %v", err)
	}

	preClear, err := log.BuildKeyState(prefix)
	if err != nil {
		t.Fatalf("BuildKeyState before clear: %v", err)
	}

	env, err := id.ExportIdentifier(prefix)
	if err != nil {
		t.Fatalf("ExportIdentifier: %v", err)
	}
	if len(env.Events) != 3 {
		t.Fatalf("exported %d events, want 3", len(env.Events))
	}

	log.Clear(prefix)
	if err := id.ImportIdentifier(env); err != nil {
		t.Fatalf("ImportIdentifier: %v", err)
	}

	if err := id.VerifyIdentifier(prefix); err != nil {
		t.Fatalf("VerifyIdentifier after import: %v", err)
	}

	postImport, err := log.BuildKeyState(prefix)
	if err != nil {
		t.Fatalf("BuildKeyState after import: %v", err)
	}
	if postImport.Sequence != preClear.Sequence || postImport.Digest != preClear.Digest {
		t.Fatalf("key state not preserved across export/import: got %+v, want %+v", postImport, preClear)
	}
}
