package event

import (
	"strings"
	"testing"

	"github.com/certen/keri-core/pkg/keys"
)

func testSigner(t *testing.T) keys.Signer {
	t.Helper()
	s, err := keys.NewRandomSigner(true)
	if err != nil {
		t.Fatalf("NewRandomSigner: %v", err)
	}
	return s
}

func buildTestInception(t *testing.T) (Event, keys.Signer, keys.Signer) {
	t.Helper()
	signer := testSigner(t)
	nextSigner := testSigner(t)

	verfer := signer.Verfer()
	nextVerfer := nextSigner.Verfer()

	verferQB64, err := verfer.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	nextVerferQB64, err := nextVerfer.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	commitment := ComputeCommitment([]string{nextVerferQB64}, 1)

	e, err := BuildInception(InceptionParams{
		Keys:             []string{verferQB64},
		NextKeysDigest:   commitment,
		Threshold:        1,
		NextThreshold:    1,
		WitnessThreshold: 0,
	})
	if err != nil {
		t.Fatalf("BuildInception: %v", err)
	}
	return e, signer, nextSigner
}

func TestBuildInceptionSaidSelfConsistent(t *testing.T) {
	e, _, _ := buildTestInception(t)

	if e.Icp.I != e.Icp.D {
		t.Fatalf("prefix %q != said %q", e.Icp.I, e.Icp.D)
	}
	if e.Icp.S != "0" {
		t.Fatalf("expected seq 0, got %q", e.Icp.S)
	}
	if err := e.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestBuildInceptionRejectsMultiKey(t *testing.T) {
	signer := testSigner(t)
	verfer := signer.Verfer()
	verferQB64, _ := verfer.Export()

	_, err := BuildInception(InceptionParams{
		Keys:           []string{verferQB64, verferQB64},
		NextKeysDigest: []string{"x"},
		Threshold:      1,
		NextThreshold:  1,
	})
	if err == nil || !strings.Contains(err.Error(), "single-key") {
		t.Fatalf("expected multi-key rejection, got %v", err)
	}
}

func TestBuildInceptionVersionStringReflectsSize(t *testing.T) {
	e, _, _ := buildTestInception(t)
	size, err := parseVersionString(e.Icp.V)
	if err != nil {
		t.Fatalf("parseVersionString: %v", err)
	}
	if size <= 0 {
		t.Fatalf("expected positive size, got %d", size)
	}
}

func TestBuildInceptionEmptyCollectionsRenderAsArrays(t *testing.T) {
	e, _, _ := buildTestInception(t)
	raw, err := e.CanonicalJSON()
	if err != nil {
		t.Fatalf("CanonicalJSON: %v", err)
	}
	s := string(raw)
	for _, field := range []string{`"b":null`, `"c":null`} {
		if strings.Contains(s, field) {
			t.Fatalf("expected no %q in serialization, got %s", field, s)
		}
	}
	for _, field := range []string{`"b":[]`, `"c":[]`} {
		if !strings.Contains(s, field) {
			t.Fatalf("expected %q in serialization, got %s", field, s)
		}
	}
}
