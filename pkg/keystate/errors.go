package keystate

import "errors"

// Sentinel kinds for the "chain violation" taxonomy entry: every
// error a transition function can return when an event does not
// correctly extend a prior key state.
var (
	ErrWrongEventType        = errors.New("keystate: wrong event type for this transition")
	ErrSequenceMismatch      = errors.New("keystate: event sequence does not extend state")
	ErrPriorDigestMismatch   = errors.New("keystate: event prior digest does not match state digest")
	ErrCommitmentMismatch    = errors.New("keystate: rotation keys do not match the prior commitment")
	ErrEstablishmentOnly     = errors.New("keystate: prefix is establishment-only, interaction refused")
	ErrMalformedThreshold    = errors.New("keystate: malformed threshold field")
)
