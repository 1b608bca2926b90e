package identity

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/certen/keri-core/pkg/event"
)

// EnvelopeVersion is the "version" field stamped into every export.
const EnvelopeVersion = "1.0"

// KeyStateSnapshot is the reduced key-state view carried in an export
// envelope, per the wire schema: sequence, keys, threshold, witnesses,
// witness_threshold.
type KeyStateSnapshot struct {
	Sequence         uint64   `json:"sequence"`
	Keys             []string `json:"keys"`
	Threshold        int      `json:"threshold"`
	Witnesses        []string `json:"witnesses"`
	WitnessThreshold int      `json:"witness_threshold"`
}

// EventEnvelope is one exported log entry.
type EventEnvelope struct {
	Sequence   uint64          `json:"sequence"`
	Event      json.RawMessage `json:"event"`
	Signatures []string        `json:"signatures"`
	Receipts   []string        `json:"receipts"`
	Timestamp  string          `json:"timestamp"`
}

// Envelope is the full identifier-export document.
type Envelope struct {
	Version    string           `json:"version"`
	Prefix     string           `json:"prefix"`
	ExportedAt string           `json:"exported_at"`
	KeyState   KeyStateSnapshot `json:"key_state"`
	Events     []EventEnvelope  `json:"events"`
}

func encodeSignatures(sigs [][]byte) []string {
	out := make([]string, len(sigs))
	for i, s := range sigs {
		out[i] = base64.StdEncoding.EncodeToString(s)
	}
	return out
}

func decodeSignatures(sigs []string) ([][]byte, error) {
	out := make([][]byte, len(sigs))
	for i, s := range sigs {
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("identity: decode signature %d: %w", i, err)
		}
		out[i] = b
	}
	return out, nil
}

func marshalEvent(e event.Event) (json.RawMessage, error) {
	b, err := e.CanonicalJSON()
	if err != nil {
		return nil, err
	}
	return json.RawMessage(b), nil
}
