package event

import (
	"fmt"
	"strconv"
	"strings"
)

const versionPrefix = "KERI10JSON"

// versionString builds the v field for a canonical serialization of
// the given byte size.
func versionString(size int) string {
	return fmt.Sprintf("%s%06d_", versionPrefix, size)
}

// parseVersionString validates and extracts the size field from v.
func parseVersionString(v string) (int, error) {
	const wantLen = len(versionPrefix) + 6 + 1
	if len(v) != wantLen || !strings.HasPrefix(v, versionPrefix) || !strings.HasSuffix(v, "_") {
		return 0, newError(ErrMalformedVersion, v)
	}
	sizeStr := v[len(versionPrefix) : len(v)-1]
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		return 0, newError(ErrMalformedVersion, v)
	}
	return size, nil
}

// formatSeq renders a sequence number as lowercase hex with no
// leading zeros or "0x" prefix; seq 0 renders as "0", which doubles
// as inception's required decimal "0".
func formatSeq(seq uint64) string {
	return strconv.FormatUint(seq, 16)
}

// parseSeq parses s as hexadecimal, rejecting anything that isn't
// lowercase-hex-canonical (no leading zeros other than the literal "0").
func parseSeq(s string) (uint64, error) {
	if s == "" {
		return 0, newError(ErrBadSequence, "empty sequence")
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, newError(ErrBadSequence, "leading zero in "+s)
	}
	if strings.ToLower(s) != s {
		return 0, newError(ErrBadSequence, "not lowercase: "+s)
	}
	seq, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, newError(ErrBadSequence, s)
	}
	return seq, nil
}

// formatThreshold renders a threshold per the type-dependent encoding
// this KERI core quirk requires: decimal for inception, lowercase hex
// for rotation. Interaction events carry no threshold fields.
func formatThreshold(t Type, n int) string {
	if t == Inception {
		return strconv.Itoa(n)
	}
	return strconv.FormatInt(int64(n), 16)
}

// parseThreshold is the inverse of formatThreshold, keyed by event type.
func parseThreshold(t Type, s string) (int, error) {
	base := 10
	if t == Rotation {
		base = 16
	}
	n, err := strconv.ParseInt(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("event: bad threshold %q for %s: %w", s, t, err)
	}
	return int(n), nil
}
