package cesr

import "errors"

// Sentinel errors for CESR matter encode/decode.
var (
	// ErrInvalidCode is returned when a qb64 string carries a code this
	// package does not recognize, or a caller asks to encode/decode an
	// unknown code.
	ErrInvalidCode = errors.New("cesr: invalid code")

	// ErrInvalidSize is returned when raw bytes don't match the fixed
	// raw size for their code.
	ErrInvalidSize = errors.New("cesr: invalid size")

	// ErrShortInput is returned when a qb64 string is too short to
	// contain even the code prefix.
	ErrShortInput = errors.New("cesr: input too short")

	// ErrMalformed is returned when the base64url tail of a qb64 string
	// fails to decode.
	ErrMalformed = errors.New("cesr: malformed qb64")
)
