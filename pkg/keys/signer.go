// Package keys wraps Ed25519 keypairs as opaque Signer / Verfer value
// types, encoded on the wire as CESR matters.
package keys

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/certen/keri-core/pkg/cesr"
)

// Signer is an Ed25519 private key (32-byte seed) plus the
// transferable flag that decides whether its derived Verfer takes
// code D (transferable) or B (non-transferable).
//
// Signer has value semantics: copying it copies the seed. There is no
// shared mutable state, so it may be passed freely across goroutines.
type Signer struct {
	seed         [32]byte
	transferable bool
}

// NewRandomSigner draws a fresh 32-byte seed from a cryptographically
// secure source. No shared RNG state is observable across calls.
func NewRandomSigner(transferable bool) (Signer, error) {
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return Signer{}, fmt.Errorf("keys: generate seed: %w", err)
	}
	return Signer{seed: seed, transferable: transferable}, nil
}

// ImportSigner parses a CESR-encoded (code A) seed.
func ImportSigner(qb64 string, transferable bool) (Signer, error) {
	m, err := cesr.Decode(qb64)
	if err != nil {
		return Signer{}, err
	}
	if m.Code != cesr.CodeEd25519Seed {
		return Signer{}, cesr.ErrInvalidCode
	}
	var seed [32]byte
	copy(seed[:], m.Raw)
	return Signer{seed: seed, transferable: transferable}, nil
}

// Export encodes the seed as a CESR code-A matter.
func (s Signer) Export() (string, error) {
	return cesr.Encode(cesr.CodeEd25519Seed, s.seed[:])
}

// Sign produces a deterministic 64-byte Ed25519 signature over message.
func (s Signer) Sign(message []byte) []byte {
	priv := ed25519.NewKeyFromSeed(s.seed[:])
	return ed25519.Sign(priv, message)
}

// Verfer derives the public-key counterpart of this signer.
func (s Signer) Verfer() Verfer {
	priv := ed25519.NewKeyFromSeed(s.seed[:])
	pub := priv.Public().(ed25519.PublicKey)

	code := cesr.CodeEd25519NonTransPub
	if s.transferable {
		code = cesr.CodeEd25519TransPub
	}

	var raw [32]byte
	copy(raw[:], pub)
	return Verfer{raw: raw, code: code}
}

// Transferable reports the signer's transferable flag.
func (s Signer) Transferable() bool {
	return s.transferable
}
