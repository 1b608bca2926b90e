// Package cesr implements a small subset of Composable Event Streaming
// Representation (CESR): the text ("qb64") encoding used to carry
// cryptographic primitives in a KERI event.
//
// A "matter" is a (code, raw-bytes) pair. Each code has a fixed raw
// size and a fixed qb64 size; qb64 is the code prefixed to the
// unpadded base64url encoding of raw, left-padded with 'A' characters
// between the code and the data so the total always lands on the
// code's qb64 size.
package cesr

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Code identifies the kind of value a matter carries.
type Code string

// The minimum set of codes required by the KERI core.
const (
	CodeEd25519Seed        Code = "A"  // Ed25519 seed
	CodeEd25519NonTransPub Code = "B"  // Ed25519 non-transferable public key
	CodeEd25519TransPub    Code = "D"  // Ed25519 transferable public key
	CodeBlake3Digest       Code = "E"  // BLAKE3-256 digest
	CodeEd25519Sig         Code = "0B" // Ed25519 signature
)

type sizing struct {
	rawSize  int
	qb64Size int
}

var sizeTable = map[Code]sizing{
	CodeEd25519Seed:        {rawSize: 32, qb64Size: 44},
	CodeEd25519NonTransPub: {rawSize: 32, qb64Size: 44},
	CodeEd25519TransPub:    {rawSize: 32, qb64Size: 44},
	CodeBlake3Digest:       {rawSize: 32, qb64Size: 44},
	CodeEd25519Sig:         {rawSize: 64, qb64Size: 88},
}

// Matter is a decoded CESR value: the code that identifies its shape,
// and the raw bytes it carries.
type Matter struct {
	Code Code
	Raw  []byte
}

// NewMatter validates raw against the code's size table and returns a Matter.
func NewMatter(code Code, raw []byte) (Matter, error) {
	sz, ok := sizeTable[code]
	if !ok {
		return Matter{}, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	if len(raw) != sz.rawSize {
		return Matter{}, fmt.Errorf("%w: code %q wants %d raw bytes, got %d", ErrInvalidSize, code, sz.rawSize, len(raw))
	}
	return Matter{Code: code, Raw: raw}, nil
}

// QB64 encodes the matter as its CESR text form.
func (m Matter) QB64() (string, error) {
	sz, ok := sizeTable[m.Code]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCode, m.Code)
	}
	if len(m.Raw) != sz.rawSize {
		return "", fmt.Errorf("%w: code %q wants %d raw bytes, got %d", ErrInvalidSize, m.Code, sz.rawSize, len(m.Raw))
	}

	data := base64.RawURLEncoding.EncodeToString(m.Raw)
	full := string(m.Code) + data
	if len(full) < sz.qb64Size {
		pad := strings.Repeat("A", sz.qb64Size-len(full))
		full = string(m.Code) + pad + data
	}
	return full, nil
}

// Encode is a convenience wrapper combining NewMatter and QB64.
func Encode(code Code, raw []byte) (string, error) {
	m, err := NewMatter(code, raw)
	if err != nil {
		return "", err
	}
	return m.QB64()
}

// codeOf returns the code prefix of a qb64 string: two characters if
// the string starts with a soft-size selector digit, one otherwise.
func codeOf(qb64 string) (Code, error) {
	if len(qb64) == 0 {
		return "", ErrShortInput
	}
	if qb64[0] >= '0' && qb64[0] <= '9' {
		if len(qb64) < 2 {
			return "", ErrShortInput
		}
		return Code(qb64[:2]), nil
	}
	return Code(qb64[:1]), nil
}

// Decode parses a qb64 string into its Matter, validating the declared
// code's fixed sizes exactly.
func Decode(qb64 string) (Matter, error) {
	code, err := codeOf(qb64)
	if err != nil {
		return Matter{}, err
	}
	sz, ok := sizeTable[code]
	if !ok {
		return Matter{}, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	if len(qb64) != sz.qb64Size {
		return Matter{}, fmt.Errorf("%w: code %q wants qb64 length %d, got %d", ErrInvalidSize, code, sz.qb64Size, len(qb64))
	}

	tail := qb64[len(code):]
	wantDataLen := base64.RawURLEncoding.EncodedLen(sz.rawSize)
	if len(tail) < wantDataLen {
		return Matter{}, fmt.Errorf("%w: truncated data", ErrMalformed)
	}
	padLen := len(tail) - wantDataLen
	for i := 0; i < padLen; i++ {
		if tail[i] != 'A' {
			return Matter{}, fmt.Errorf("%w: expected 'A' padding", ErrMalformed)
		}
	}
	data := tail[padLen:]

	raw, err := base64.RawURLEncoding.DecodeString(data)
	if err != nil {
		return Matter{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(raw) != sz.rawSize {
		return Matter{}, fmt.Errorf("%w: code %q decoded %d raw bytes, want %d", ErrInvalidSize, code, len(raw), sz.rawSize)
	}

	return Matter{Code: code, Raw: raw}, nil
}
