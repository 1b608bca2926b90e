package kel_test

import (
	"errors"
	"testing"

	"github.com/certen/keri-core/pkg/event"
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

func mustExport(t *testing.T, v keys.Verfer) string {
	t.Helper()
	s, err := v.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	return s
}

func buildInceptionEvent(t *testing.T) event.Event {
	t.Helper()
	s1 := mustSigner(t)
	s2 := mustSigner(t)
	pub1 := mustExport(t, s1.Verfer())
	pub2 := mustExport(t, s2.Verfer())
	commitment := event.ComputeCommitment([]string{pub2}, 1)

	icp, err := event.BuildInception(event.InceptionParams{
		Keys:           []string{pub1},
		NextKeysDigest: commitment,
		Threshold:      1,
		NextThreshold:  1,
	})
	if err != nil {
		t.Fatalf("BuildInception: %v", err)
	}
	return icp
}

func TestAppendAndRetrieve(t *testing.T) {
	log := kel.New()
	icp := buildInceptionEvent(t)
	prefix := icp.Icp.I

	entry, err := log.Append(prefix, icp, [][]byte{[]byte("sig")})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if entry.Sequence != 0 {
		t.Errorf("sequence = %d, want 0", entry.Sequence)
	}

	got, err := log.GetEventAt(prefix, 0)
	if err != nil {
		t.Fatalf("GetEventAt: %v", err)
	}
	if got.Event.Digest() != icp.Icp.D {
		t.Error("retrieved event digest mismatch")
	}

	cur, err := log.CurrentSequence(prefix)
	if err != nil {
		t.Fatalf("CurrentSequence: %v", err)
	}
	if cur != 0 {
		t.Errorf("CurrentSequence = %d, want 0", cur)
	}
}

func TestAppendIsIdempotent(t *testing.T) {
	log := kel.New()
	icp := buildInceptionEvent(t)
	prefix := icp.Icp.I

	if _, err := log.Append(prefix, icp, nil); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if _, err := log.Append(prefix, icp, nil); err != nil {
		t.Fatalf("repeat append should be idempotent, got: %v", err)
	}
}

func TestAppendRejectsFirstEventNotZero(t *testing.T) {
	log := kel.New()
	icp := buildInceptionEvent(t)
	icp.Icp.S = "1"
	icp.Icp.I = "some-prefix"

	_, err := log.Append("some-prefix", icp, nil)
	if !errors.Is(err, kel.ErrFirstNotZero) {
		t.Fatalf("expected ErrFirstNotZero, got %v", err)
	}
}

func TestAppendRejectsConflict(t *testing.T) {
	log := kel.New()
	icp := buildInceptionEvent(t)
	prefix := icp.Icp.I

	if _, err := log.Append(prefix, icp, nil); err != nil {
		t.Fatalf("append: %v", err)
	}

	other := buildInceptionEvent(t)
	other.Icp.I = prefix
	other.Icp.S = "0"

	_, err := log.Append(prefix, other, nil)
	if !errors.Is(err, kel.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestVerifyChainAndBuildKeyState(t *testing.T) {
	log := kel.New()
	icp := buildInceptionEvent(t)
	prefix := icp.Icp.I
	if _, err := log.Append(prefix, icp, nil); err != nil {
		t.Fatalf("append icp: %v", err)
	}

	ixn, err := event.BuildInteraction(event.InteractionParams{
		Prefix:      prefix,
		Sequence:    1,
		PriorDigest: icp.Icp.D,
	})
	if err != nil {
		t.Fatalf("BuildInteraction: %v", err)
	}
	if _, err := log.Append(prefix, ixn, nil); err != nil {
		t.Fatalf("append ixn: %v", err)
	}

	if err := log.VerifyChain(prefix); err != nil {
		t.Fatalf("VerifyChain: %v", err)
	}

	state, err := log.BuildKeyState(prefix)
	if err != nil {
		t.Fatalf("BuildKeyState: %v", err)
	}
	if state.Sequence != 1 {
		t.Errorf("sequence = %d, want 1", state.Sequence)
	}
	if state.Digest != ixn.Ixn.D {
		t.Error("terminal digest mismatch")
	}
}

func TestClearRemovesAllEntries(t *testing.T) {
	log := kel.New()
	icp := buildInceptionEvent(t)
	prefix := icp.Icp.I
	if _, err := log.Append(prefix, icp, nil); err != nil {
		t.Fatalf("append: %v", err)
	}

	log.Clear(prefix)

	if _, err := log.CurrentSequence(prefix); !errors.Is(err, kel.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after clear, got %v", err)
	}
}

func TestGetStats(t *testing.T) {
	log := kel.New()
	icp := buildInceptionEvent(t)
	prefix := icp.Icp.I
	if _, err := log.Append(prefix, icp, nil); err != nil {
		t.Fatalf("append: %v", err)
	}

	stats := log.GetStats()
	if stats.TotalPrefixes != 1 {
		t.Errorf("TotalPrefixes = %d, want 1", stats.TotalPrefixes)
	}
	if stats.TotalEvents != 1 {
		t.Errorf("TotalEvents = %d, want 1", stats.TotalEvents)
	}
	if stats.ApproximateBytes <= 0 {
		t.Error("expected positive ApproximateBytes")
	}
}
