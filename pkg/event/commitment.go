package event

import (
	"sort"
	"strconv"
	"strings"

	"github.com/certen/keri-core/pkg/digest"
)

// ComputeCommitment computes the pre-rotation commitment for a set of
// next keys and their threshold:
//
//	commitment_data = lowercase_hex(next_threshold) + concat(sort(next_keys))
//	commitment      = [ digest(commitment_data).qb64 ]
//
// This core restricts next-keys commitments to a single key with
// threshold 1; ComputeCommitment still accepts an arbitrary key set so
// the shape survives a future multi-key extension, but
// Build{Inception,Rotation} reject any key list or commitment that
// does not carry exactly one entry.
func ComputeCommitment(nextKeysQB64 []string, nextThreshold int) []string {
	sorted := append([]string(nil), nextKeysQB64...)
	sort.Strings(sorted)

	data := strconv.FormatInt(int64(nextThreshold), 16) + strings.Join(sorted, "")
	d := digest.Of([]byte(data))
	return []string{d.QB64()}
}

// VerifyCommitment reports whether the commitment the predecessor
// event published for (nextKeysQB64, nextThreshold) matches committed.
func VerifyCommitment(committed []string, nextKeysQB64 []string, nextThreshold int) bool {
	want := ComputeCommitment(nextKeysQB64, nextThreshold)
	if len(committed) != len(want) {
		return false
	}
	for i := range want {
		if committed[i] != want[i] {
			return false
		}
	}
	return true
}
