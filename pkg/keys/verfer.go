package keys

import (
	"crypto/ed25519"
	"fmt"

	"github.com/certen/keri-core/pkg/cesr"
)

// Verfer is an Ed25519 public key, tagged with the CESR code (B or D)
// that records whether its signer is transferable.
type Verfer struct {
	raw  [32]byte
	code cesr.Code
}

// ImportVerfer parses a CESR-encoded public key, code B or D.
func ImportVerfer(qb64 string) (Verfer, error) {
	m, err := cesr.Decode(qb64)
	if err != nil {
		return Verfer{}, err
	}
	if m.Code != cesr.CodeEd25519NonTransPub && m.Code != cesr.CodeEd25519TransPub {
		return Verfer{}, cesr.ErrInvalidCode
	}
	var raw [32]byte
	copy(raw[:], m.Raw)
	return Verfer{raw: raw, code: m.Code}, nil
}

// Export encodes the public key as its CESR matter (code B or D).
func (v Verfer) Export() (string, error) {
	return cesr.Encode(v.code, v.raw[:])
}

// Transferable reports whether this verfer's code is the transferable one (D).
func (v Verfer) Transferable() bool {
	return v.code == cesr.CodeEd25519TransPub
}

// Verify reports whether sig is a valid Ed25519 signature over message
// by this verfer's key. It returns an error only for malformed input
// (wrong signature length); a cryptographically invalid signature
// yields (false, nil), not an error.
func (v Verfer) Verify(sig, message []byte) (bool, error) {
	if len(sig) != ed25519.SignatureSize {
		return false, fmt.Errorf("%w: got %d bytes", ErrInvalidSignatureSize, len(sig))
	}
	return ed25519.Verify(v.raw[:], message, sig), nil
}
