// Package digest provides the BLAKE3-256 digest primitive used to
// derive KERI self-addressing identifiers (SAIDs).
package digest

import (
	"bytes"

	"github.com/certen/keri-core/pkg/cesr"
	"lukechampine.com/blake3"
)

// Diger is a computed digest, held as a CESR matter of code E.
type Diger struct {
	matter cesr.Matter
}

// Of computes the BLAKE3-256 digest of data.
func Of(data []byte) Diger {
	sum := blake3.Sum256(data)
	m, err := cesr.NewMatter(cesr.CodeBlake3Digest, sum[:])
	if err != nil {
		// sum[:] is always 32 bytes, matching CodeBlake3Digest's raw size.
		panic(err)
	}
	return Diger{matter: m}
}

// Raw returns the 32-byte digest.
func (d Diger) Raw() []byte {
	return d.matter.Raw
}

// QB64 returns the CESR text form ("E..." SAID) of the digest.
func (d Diger) QB64() string {
	qb64, err := d.matter.QB64()
	if err != nil {
		// d.matter was built by Of or FromQB64, both of which validate size.
		panic(err)
	}
	return qb64
}

// FromQB64 parses a CESR-encoded digest.
func FromQB64(qb64 string) (Diger, error) {
	m, err := cesr.Decode(qb64)
	if err != nil {
		return Diger{}, err
	}
	if m.Code != cesr.CodeBlake3Digest {
		return Diger{}, cesr.ErrInvalidCode
	}
	return Diger{matter: m}, nil
}

// Verify reports whether data digests to d.
func Verify(d Diger, data []byte) bool {
	return bytes.Equal(Of(data).Raw(), d.Raw())
}
