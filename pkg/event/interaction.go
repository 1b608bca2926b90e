package event

import (
	"encoding/json"
	"fmt"

	"github.com/certen/keri-core/pkg/digest"
)

// InteractionParams collects the inputs to BuildInteraction.
type InteractionParams struct {
	Prefix      string
	Sequence    uint64
	PriorDigest string
	Anchors     []Anchor
}

// BuildInteraction constructs a self-addressing interaction event.
// Interaction events carry no key material of their own; they only
// anchor external data against the current key state.
func BuildInteraction(p InteractionParams) (Event, error) {
	if p.Sequence == 0 {
		return Event{}, newError(ErrBadSequence, "interaction sequence must be > 0")
	}

	anchors := p.Anchors
	if anchors == nil {
		anchors = []Anchor{}
	}

	f := &InteractionFields{
		T: string(Interaction),
		D: "",
		I: p.Prefix,
		S: formatSeq(p.Sequence),
		P: p.PriorDigest,
		A: anchors,
	}

	f.V = versionString(0)
	s0, err := json.Marshal(f)
	if err != nil {
		return Event{}, fmt.Errorf("event: marshal interaction S0: %w", err)
	}
	f.V = versionString(len(s0))
	s1, err := json.Marshal(f)
	if err != nil {
		return Event{}, fmt.Errorf("event: marshal interaction S1: %w", err)
	}

	f.D = digest.Of(s1).QB64()

	return Event{Type: Interaction, Ixn: f}, nil
}
