package kel

import "errors"

// Sentinel errors for the Key Event Log's append and lookup taxonomy.
var (
	// ErrConflict is returned by Append when (prefix, seq) already
	// holds an entry for a different event.
	ErrConflict = errors.New("kel: conflicting event already at this sequence")

	// ErrNotFound is returned when a prefix or (prefix, seq) has no entry.
	ErrNotFound = errors.New("kel: prefix or sequence not found")

	// ErrOutOfOrder is returned when an appended event's sequence does
	// not equal current_sequence(prefix)+1.
	ErrOutOfOrder = errors.New("kel: event sequence does not follow current sequence")

	// ErrFirstNotZero is returned when the first event appended for a
	// prefix does not carry sequence 0.
	ErrFirstNotZero = errors.New("kel: first event for a prefix must be sequence 0")

	// ErrPriorDigestMismatch is returned when an appended event's p
	// field does not match the digest of the entry at seq-1.
	ErrPriorDigestMismatch = errors.New("kel: prior digest does not match previous entry")

	// ErrNotInception is returned by VerifyChain when the first entry
	// for a prefix is not an inception (or delegated inception) event.
	ErrNotInception = errors.New("kel: first entry is not an inception event")

	// ErrChainBroken is returned by VerifyChain when sequence or
	// prior-digest continuity fails anywhere in a replay.
	ErrChainBroken = errors.New("kel: chain continuity broken")
)
