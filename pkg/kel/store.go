// Package kel implements the Key Event Log: a single, process-wide,
// append-only store of events keyed by (prefix, sequence), with chain
// continuity enforced at append time and key-state reconstruction by
// replay.
package kel

import (
	"fmt"
	"sync"
	"time"

	"github.com/certen/keri-core/pkg/event"
	"github.com/certen/keri-core/pkg/keystate"
)

// KEL owns every log entry and the per-prefix current-sequence index
// for the lifetime of the process.
//
// CONCURRENCY: KEL is safe for concurrent use by multiple goroutines.
// Append serializes writers against each other and against readers
// via a single RWMutex; GetEvents, GetEventAt, CurrentSequence, and
// BuildKeyState take only a read lock and may run concurrently with
// one another, but never concurrently with an in-flight Append.
type KEL struct {
	mu       sync.RWMutex
	entries  map[string]*Entry // key: entryKey(prefix, seq)
	current  map[string]uint64 // prefix -> highest appended sequence
}

// New returns an empty, ready-to-use KEL.
func New() *KEL {
	return &KEL{
		entries: make(map[string]*Entry),
		current: make(map[string]uint64),
	}
}

func entryKey(prefix string, seq uint64) string {
	return fmt.Sprintf("%s/%d", prefix, seq)
}

// sameEvent reports whether two events serialize to the same bytes,
// the idempotency test Append uses for a repeated write.
func sameEvent(a, b event.Event) bool {
	ab, errA := a.CanonicalJSON()
	bb, errB := b.CanonicalJSON()
	if errA != nil || errB != nil {
		return false
	}
	if len(ab) != len(bb) {
		return false
	}
	for i := range ab {
		if ab[i] != bb[i] {
			return false
		}
	}
	return true
}

// Append validates and inserts ev at its own (prefix, sequence). A
// repeated, byte-identical append is idempotent and succeeds without
// modifying storage further; a conflicting append at an occupied slot
// fails with ErrConflict. All other failures leave storage unmodified.
func (k *KEL) Append(prefix string, ev event.Event, signatures [][]byte) (*Entry, error) {
	seq, err := ev.Seq()
	if err != nil {
		return nil, err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	key := entryKey(prefix, seq)
	if existing, ok := k.entries[key]; ok {
		if sameEvent(existing.Event, ev) {
			return existing, nil
		}
		return nil, ErrConflict
	}

	cur, hasPrior := k.current[prefix]
	if !hasPrior {
		if seq != 0 {
			return nil, ErrFirstNotZero
		}
	} else {
		if seq != cur+1 {
			return nil, ErrOutOfOrder
		}
		priorKey := entryKey(prefix, cur)
		prior, ok := k.entries[priorKey]
		if !ok {
			return nil, ErrNotFound
		}
		if ev.PriorDigest() != prior.Event.Digest() {
			return nil, ErrPriorDigestMismatch
		}
	}

	entry := &Entry{
		Prefix:     prefix,
		Sequence:   seq,
		Event:      ev,
		Signatures: signatures,
		Receipts:   []string{},
		Timestamp:  time.Now().UTC(),
	}
	k.entries[key] = entry
	k.current[prefix] = seq
	return entry, nil
}

// GetEvents returns entries for prefix with seq in [from, to] (to=0
// meaning "up to the current sequence"), ascending by sequence,
// capped at limit entries (limit=0 meaning "no cap").
func (k *KEL) GetEvents(prefix string, from, to uint64, limit int) ([]*Entry, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	cur, ok := k.current[prefix]
	if !ok {
		return nil, ErrNotFound
	}
	if to == 0 || to > cur {
		to = cur
	}

	var out []*Entry
	for seq := from; seq <= to; seq++ {
		e, ok := k.entries[entryKey(prefix, seq)]
		if !ok {
			break
		}
		out = append(out, e)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// GetEventAt returns the single entry for (prefix, seq).
func (k *KEL) GetEventAt(prefix string, seq uint64) (*Entry, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	e, ok := k.entries[entryKey(prefix, seq)]
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

// CurrentSequence returns the highest sequence appended for prefix.
func (k *KEL) CurrentSequence(prefix string) (uint64, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	seq, ok := k.current[prefix]
	if !ok {
		return 0, ErrNotFound
	}
	return seq, nil
}

// AddReceipts appends to the receipts list of the entry at
// (prefix, seq), deduplicating against what is already recorded.
func (k *KEL) AddReceipts(prefix string, seq uint64, receipts []string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.entries[entryKey(prefix, seq)]
	if !ok {
		return ErrNotFound
	}

	seen := make(map[string]bool, len(e.Receipts))
	for _, r := range e.Receipts {
		seen[r] = true
	}
	for _, r := range receipts {
		if seen[r] {
			continue
		}
		seen[r] = true
		e.Receipts = append(e.Receipts, r)
	}
	return nil
}

// VerifyChain replays every entry for prefix and checks that the
// first is an inception event and that every subsequent entry's
// sequence and prior-digest correctly extend its predecessor. It does
// not re-verify signatures.
func (k *KEL) VerifyChain(prefix string) error {
	entries, err := k.GetEvents(prefix, 0, 0, 0)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return ErrNotFound
	}

	first := entries[0].Event
	if first.Type != event.Inception && first.Type != event.DelegatedInception {
		return ErrNotInception
	}

	for i := 1; i < len(entries); i++ {
		prev := entries[i-1].Event
		cur := entries[i].Event

		prevSeq, _ := prev.Seq()
		curSeq, err := cur.Seq()
		if err != nil || curSeq != prevSeq+1 {
			return ErrChainBroken
		}
		if cur.PriorDigest() != prev.Digest() {
			return ErrChainBroken
		}
	}
	return nil
}

// BuildKeyState folds from_inception followed by apply_rotation /
// apply_interaction over prefix's ordered entries, returning the
// terminal state.
func (k *KEL) BuildKeyState(prefix string) (keystate.KeyState, error) {
	entries, err := k.GetEvents(prefix, 0, 0, 0)
	if err != nil {
		return keystate.KeyState{}, err
	}
	if len(entries) == 0 {
		return keystate.KeyState{}, ErrNotFound
	}

	state, err := keystate.FromInception(entries[0].Event)
	if err != nil {
		return keystate.KeyState{}, err
	}

	for _, e := range entries[1:] {
		switch e.Event.Type {
		case event.Rotation:
			state, err = keystate.ApplyRotation(state, e.Event)
		case event.Interaction:
			state, err = keystate.ApplyInteraction(state, e.Event)
		default:
			err = keystate.ErrWrongEventType
		}
		if err != nil {
			return keystate.KeyState{}, err
		}
	}
	return state, nil
}

// Clear destructively removes every entry and the sequence index for prefix.
func (k *KEL) Clear(prefix string) {
	k.mu.Lock()
	defer k.mu.Unlock()

	cur, ok := k.current[prefix]
	if !ok {
		return
	}
	for seq := uint64(0); seq <= cur; seq++ {
		delete(k.entries, entryKey(prefix, seq))
	}
	delete(k.current, prefix)
}

// GetStats returns a snapshot of the log's current footprint. The
// byte count is approximate: the canonical serialization length of
// each entry's event, not counting signatures or receipts.
func (k *KEL) GetStats() Stats {
	k.mu.RLock()
	defer k.mu.RUnlock()

	var approxBytes int
	for _, e := range k.entries {
		if b, err := e.Event.CanonicalJSON(); err == nil {
			approxBytes += len(b)
		}
	}
	return Stats{
		TotalPrefixes:    len(k.current),
		TotalEvents:      len(k.entries),
		ApproximateBytes: approxBytes,
	}
}
