package sequence

import "sync/atomic"

// Sequencer hands out strictly monotonic trade-event sequence IDs.
// Safe for concurrent use from any number of matchers.
type Sequencer struct {
	next atomic.Uint64
}

// New creates a sequencer; the first Next after New(start) returns start+1.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

// Next returns the next sequence ID.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last issued sequence, which once all matchers
// are quiet equals the total number of trades emitted.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}
