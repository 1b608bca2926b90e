package event

import (
	"encoding/json"
	"fmt"

	"github.com/certen/keri-core/pkg/digest"
)

// InceptionParams collects the inputs to BuildInception. Threshold and
// NextThreshold must both be 1 and Keys/NextKeysDigest must carry
// exactly one entry: this core supports only the single-key,
// threshold-1 configuration.
type InceptionParams struct {
	Keys             []string // qb64 signing public keys
	NextKeysDigest   []string // pre-rotation commitment, from ComputeCommitment
	Threshold        int
	NextThreshold    int
	Witnesses        []string
	WitnessThreshold int
	Config           []string // configuration traits, e.g. "EO"
	Anchors          []Anchor
}

// BuildInception constructs a self-addressing inception event: it
// serializes the event with d and i held to the empty placeholder,
// derives the SAID, and sets both d and i (the identifier prefix) to
// that SAID.
func BuildInception(p InceptionParams) (Event, error) {
	if len(p.Keys) != 1 || len(p.NextKeysDigest) != 1 {
		return Event{}, newError(ErrMultiKey, "")
	}
	if p.Threshold != 1 || p.NextThreshold != 1 {
		return Event{}, newError(ErrMultiKey, "threshold and next_threshold must be 1")
	}

	keys := append([]string(nil), p.Keys...)
	nextDigest := append([]string(nil), p.NextKeysDigest...)
	witnesses := append([]string{}, p.Witnesses...)
	config := append([]string{}, p.Config...)
	anchors := p.Anchors
	if anchors == nil {
		anchors = []Anchor{}
	}

	f := &InceptionFields{
		T:  string(Inception),
		D:  "",
		I:  "",
		S:  "0",
		Kt: formatThreshold(Inception, p.Threshold),
		K:  keys,
		Nt: formatThreshold(Inception, p.NextThreshold),
		N:  nextDigest,
		Bt: formatThreshold(Inception, p.WitnessThreshold),
		B:  witnesses,
		C:  config,
		A:  anchors,
	}

	f.V = versionString(0)
	s0, err := json.Marshal(f)
	if err != nil {
		return Event{}, fmt.Errorf("event: marshal inception S0: %w", err)
	}
	f.V = versionString(len(s0))
	s1, err := json.Marshal(f)
	if err != nil {
		return Event{}, fmt.Errorf("event: marshal inception S1: %w", err)
	}

	said := digest.Of(s1).QB64()
	f.D = said
	f.I = said

	return Event{Type: Inception, Icp: f}, nil
}
