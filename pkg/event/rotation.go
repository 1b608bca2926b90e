package event

import (
	"encoding/json"
	"fmt"

	"github.com/certen/keri-core/pkg/digest"
)

// RotationParams collects the inputs to BuildRotation.
type RotationParams struct {
	Prefix           string
	Sequence         uint64
	PriorDigest      string
	Keys             []string // new qb64 signing public keys
	NextKeysDigest   []string // new pre-rotation commitment
	Threshold        int
	NextThreshold    int
	WitnessCuts      []string
	WitnessAdds      []string
	WitnessThreshold int
	Anchors          []Anchor
}

// BuildRotation constructs a self-addressing rotation event at
// Sequence (must be > 0), deriving its SAID the same way BuildInception does.
func BuildRotation(p RotationParams) (Event, error) {
	if p.Sequence == 0 {
		return Event{}, newError(ErrBadSequence, "rotation sequence must be > 0")
	}
	if len(p.Keys) != 1 || len(p.NextKeysDigest) != 1 {
		return Event{}, newError(ErrMultiKey, "")
	}
	if p.Threshold != 1 || p.NextThreshold != 1 {
		return Event{}, newError(ErrMultiKey, "threshold and next_threshold must be 1")
	}

	keys := append([]string(nil), p.Keys...)
	nextDigest := append([]string(nil), p.NextKeysDigest...)
	cuts := append([]string{}, p.WitnessCuts...)
	adds := append([]string{}, p.WitnessAdds...)
	anchors := p.Anchors
	if anchors == nil {
		anchors = []Anchor{}
	}

	f := &RotationFields{
		T:  string(Rotation),
		D:  "",
		I:  p.Prefix,
		S:  formatSeq(p.Sequence),
		P:  p.PriorDigest,
		Kt: formatThreshold(Rotation, p.Threshold),
		K:  keys,
		Nt: formatThreshold(Rotation, p.NextThreshold),
		N:  nextDigest,
		Bt: formatThreshold(Rotation, p.WitnessThreshold),
		Br: cuts,
		Ba: adds,
		A:  anchors,
	}

	f.V = versionString(0)
	s0, err := json.Marshal(f)
	if err != nil {
		return Event{}, fmt.Errorf("event: marshal rotation S0: %w", err)
	}
	f.V = versionString(len(s0))
	s1, err := json.Marshal(f)
	if err != nil {
		return Event{}, fmt.Errorf("event: marshal rotation S1: %w", err)
	}

	f.D = digest.Of(s1).QB64()

	return Event{Type: Rotation, Rot: f}, nil
}
