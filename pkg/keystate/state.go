// Package keystate folds an ordered sequence of events into the
// current KeyState for a prefix: the set of signing keys, the
// pre-rotation commitment, the witness set, and the bookkeeping
// needed to validate the next event in the chain.
package keystate

import (
	"time"

	"github.com/certen/keri-core/pkg/event"
)

// KeyState is the terminal result of replaying a prefix's events. It
// is a value type: copying it copies its slices' headers but callers
// should treat the slices as immutable, since transitions never mutate
// them in place (rotation allocates fresh ones; interaction carries
// the predecessor's slices forward).
type KeyState struct {
	Prefix            string
	Sequence          uint64
	Digest            string
	Keys              []string
	NextKeysDigest    []string
	Threshold         int
	NextThreshold     int
	Witnesses         []string
	WitnessThreshold  int
	Delegator         string
	LastEventType     event.Type
	EstablishmentOnly bool
	Timestamp         time.Time
}

// hasConfigTrait reports whether trait appears in the inception
// config traits list.
func hasConfigTrait(traits []string, trait string) bool {
	for _, t := range traits {
		if t == trait {
			return true
		}
	}
	return false
}
