package cesr

import (
	"bytes"
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		code Code
		size int
	}{
		{"seed", CodeEd25519Seed, 32},
		{"nontrans pub", CodeEd25519NonTransPub, 32},
		{"trans pub", CodeEd25519TransPub, 32},
		{"digest", CodeBlake3Digest, 32},
		{"signature", CodeEd25519Sig, 64},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			raw := bytes.Repeat([]byte{0x05}, c.size)
			qb64, err := Encode(c.code, raw)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}

			decoded, err := Decode(qb64)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if decoded.Code != c.code {
				t.Errorf("code mismatch: got %q, want %q", decoded.Code, c.code)
			}
			if !bytes.Equal(decoded.Raw, raw) {
				t.Errorf("raw mismatch: got %x, want %x", decoded.Raw, raw)
			}
		})
	}
}

func TestQB64SizeAndPrefix(t *testing.T) {
	raw := make([]byte, 32)
	qb64, err := Encode(CodeBlake3Digest, raw)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(qb64) != 44 {
		t.Errorf("qb64 length = %d, want 44", len(qb64))
	}
	if !strings.HasPrefix(qb64, "E") {
		t.Errorf("qb64 = %q, want prefix E", qb64)
	}
}

func TestNewMatterInvalidSize(t *testing.T) {
	_, err := NewMatter(CodeBlake3Digest, make([]byte, 31))
	if err == nil {
		t.Fatal("expected error for wrong raw size")
	}
}

func TestDecodeInvalidCode(t *testing.T) {
	_, err := Decode("Zsomethingnotarealcode")
	if err == nil {
		t.Fatal("expected error for unknown code")
	}
}

func TestDecodeWrongLength(t *testing.T) {
	raw := make([]byte, 32)
	qb64, err := Encode(CodeBlake3Digest, raw)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	_, err = Decode(qb64[:len(qb64)-1])
	if err == nil {
		t.Fatal("expected error for truncated qb64")
	}
}
