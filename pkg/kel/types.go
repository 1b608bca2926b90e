package kel

import (
	"time"

	"github.com/certen/keri-core/pkg/event"
)

// Entry is one appended record of the log: an event together with its
// signatures and whatever receipts have accumulated since.
type Entry struct {
	Prefix     string
	Sequence   uint64
	Event      event.Event
	Signatures [][]byte
	Receipts   []string
	Timestamp  time.Time
}

// Stats summarizes the log's current footprint.
type Stats struct {
	TotalPrefixes   int
	TotalEvents     int
	ApproximateBytes int
}
