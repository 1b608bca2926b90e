package keys

import "errors"

// Sentinel errors for signer/verfer construction.
var (
	// ErrInvalidSeedSize names a seed that is not exactly 32 bytes.
	// ImportSigner does not return it: a wrong-size seed fails in
	// cesr.Decode with cesr.ErrInvalidSize.
	ErrInvalidSeedSize = errors.New("keys: seed must be 32 bytes")

	// ErrInvalidPubKeySize names a public key that is not exactly 32
	// bytes. ImportVerfer does not return it: a wrong-size key fails in
	// cesr.Decode with cesr.ErrInvalidSize.
	ErrInvalidPubKeySize = errors.New("keys: public key must be 32 bytes")

	// ErrInvalidSignatureSize is returned when a signature is not exactly 64 bytes.
	ErrInvalidSignatureSize = errors.New("keys: signature must be 64 bytes")
)
